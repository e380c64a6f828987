package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// CredentialStore is the slice of the session store the client needs: a
// token to attach and a way to drop credentials when the backend rejects
// them. Keeping it an interface keeps this package free of session and
// navigation concerns.
type CredentialStore interface {
	Token() string
	Clear()
}

// Client is the single HTTP door to the backend. Every resource service goes
// through Do: one request per call, no retry, no caching.
type Client struct {
	baseURL string
	http    *http.Client
	creds   CredentialStore
}

// NewClient points the client at the API origin. All paths passed to Do are
// relative to <origin>/api.
func NewClient(origin string, creds CredentialStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(origin, "/") + "/api",
		http:    &http.Client{},
		creds:   creds,
	}
}

// Do issues a single request and decodes the JSON response into out (out may
// be nil). When a token is stored it rides along as a bearer credential. A
// 401 from any endpoint clears the stored credentials before the error is
// returned; routing back to the login screen belongs to the caller. All
// other non-2xx statuses come back as *Error carrying the backend's status
// and message.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}, query url.Values, out interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonData)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.creds.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.creds.Clear()
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{
			Status:  resp.StatusCode,
			Kind:    kindForStatus(resp.StatusCode),
			Message: messageFrom(data),
		}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// messageFrom pulls the human-readable part out of a backend error body.
// The backend uses both {"message": ...} and {"error": ...}.
func messageFrom(data []byte) string {
	var payload struct {
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Err != "" {
			return payload.Err
		}
	}
	return "request failed"
}
