package auth

import (
	"github.com/labstack/echo/v4"
)

// publicPaths lists URL paths that should bypass authentication. These are
// infrastructure endpoints and the login endpoint itself, which must be
// reachable without credentials.
var publicPaths = map[string]bool{
	"/health":             true,
	"/api/hms/auth/login": true,
}

// AuthSkipper returns true for requests whose path should skip
// authentication. Pass this as the skipper on Middleware so that the health
// check and login remain accessible without a bearer token.
func AuthSkipper(c echo.Context) bool {
	return publicPaths[c.Path()]
}

// IsPublicPath reports whether the given path is a public endpoint that
// should bypass auth.
func IsPublicPath(path string) bool {
	return publicPaths[path]
}
