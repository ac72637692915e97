package hmsclient

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrSessionExpired is returned when the server rejects the bearer token.
// Callers should clear their stored token and re-authenticate.
var ErrSessionExpired = errors.New("hmsclient: session expired")

// APIError is a structured response indicating a non-2xx HTTP response.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hmsclient: status=%d: %s", e.Status, e.Message)
}

// newAPIError builds an *APIError from a response body. The server reports
// failures as {"message": "..."}; anything else falls back to a generic
// status line.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		apiErr.Message = payload.Message
	} else {
		apiErr.Message = fmt.Sprintf("HTTP error! Status: %d", status)
	}
	return apiErr
}
