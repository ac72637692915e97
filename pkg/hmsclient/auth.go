package hmsclient

import (
	"context"
	"time"
)

// Session is the payload returned by a successful login.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Username  string    `json:"username"`
}

type AuthClient struct {
	c *Client
}

// Login exchanges credentials for a session token and installs it on the
// client so subsequent calls are authenticated.
func (a *AuthClient) Login(ctx context.Context, username, password string) (*Session, error) {
	body := map[string]string{"username": username, "password": password}
	var session Session
	if err := a.c.backend.Call(ctx, "POST", "/api/hms/auth/login", "", body, &session); err != nil {
		return nil, err
	}
	a.c.SetToken(session.Token)
	return &session, nil
}

// Logout discards the stored token. The server keeps no session state, so
// this is purely client-side.
func (a *AuthClient) Logout() {
	a.c.SetToken("")
}
