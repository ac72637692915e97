// Package hmsclient is a Go client for the hospital management API. It wraps
// every endpoint the server exposes behind typed sub-clients and normalizes
// transport failures into *APIError values.
package hmsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// Backend is an interface for making calls against the HMS service.
// This interface exists to enable mocking during testing if needed.
type Backend interface {
	Call(ctx context.Context, method, path, token string, body, v interface{}) error
}

// BackendConfiguration is the internal implementation for making HTTP calls
// to the HMS server.
type BackendConfiguration struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewBackend returns a backend pointed at the given server base URL.
func NewBackend(baseURL string) Backend {
	return BackendConfiguration{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s BackendConfiguration) Call(ctx context.Context, method, path, token string, body, v interface{}) error {
	req, err := s.NewRequest(ctx, method, path, token, body)
	if err != nil {
		return err
	}
	return s.Do(req, v)
}

// NewRequest is used by Call to generate an http.Request.
func (s BackendConfiguration) NewRequest(ctx context.Context, method, path, token string, body interface{}) (*http.Request, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// Do executes an API request and parses the response into v. Non-2xx
// responses are converted to *APIError; a 401 becomes ErrSessionExpired so
// callers can discard their stored token and prompt for a fresh login.
func (s BackendConfiguration) Do(req *http.Request, v interface{}) error {
	res, err := s.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode == http.StatusUnauthorized {
		return ErrSessionExpired
	}

	if res.StatusCode >= 400 {
		return newAPIError(res.StatusCode, resBody)
	}

	// 204 and empty bodies decode to the zero value.
	if v == nil || res.StatusCode == http.StatusNoContent || len(resBody) == 0 {
		return nil
	}

	return json.Unmarshal(resBody, v)
}
