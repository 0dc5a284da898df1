// Package authclient talks to the specFarm login endpoint.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
)

// ErrRejected is returned when the server answered but handed back no token,
// which is how it reports a wrong identifier or password.
var ErrRejected = errors.New("login rejected: response carried no token")

// TransportError covers every way the call can fail before a usable answer
// arrives: network errors, timeouts, non-2xx statuses and undecodable bodies.
type TransportError struct {
	Op     string
	Status int // 0 when no response was received
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("login %s (status %d): %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("login %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Credentials is the request body of POST /user/login.
type Credentials struct {
	UserID string `json:"userId"`
	UserPw string `json:"userPw"`
}

// LoginResponse is the part of the login answer we care about.
type LoginResponse struct {
	Token string `json:"token"`
}

// Client posts credentials to a fixed login URL.
type Client struct {
	loginURL   string
	httpClient *http.Client
}

// New creates a client for loginURL. Requests are bounded by timeout.
func New(loginURL string, timeout time.Duration) *Client {
	return &Client{
		loginURL: loginURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewWithHTTPClient lets callers bring their own transport.
func NewWithHTTPClient(loginURL string, hc *http.Client) *Client {
	return &Client{loginURL: loginURL, httpClient: hc}
}

// Login performs one login attempt. It returns the token on success,
// ErrRejected when the server answered without a token, and a
// *TransportError otherwise. It never retries.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return "", &TransportError{Op: "marshal request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.loginURL, bytes.NewReader(body))
	if err != nil {
		return "", &TransportError{Op: "create request", Err: err}
	}
	reqID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)

	logger.Debug("Login request started", "url", c.loginURL, "user_id", creds.UserID, "request_id", reqID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Op: "request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", &TransportError{
			Op:     "request",
			Status: resp.StatusCode,
			Err:    serr.New(fmt.Sprintf("unexpected status %d", resp.StatusCode)),
		}
	}

	var out LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &TransportError{Op: "decode response", Status: resp.StatusCode, Err: err}
	}
	if out.Token == "" {
		logger.Debug("Login rejected", "user_id", creds.UserID, "request_id", reqID)
		return "", ErrRejected
	}

	logger.Debug("Login request completed", "user_id", creds.UserID, "subject", TokenSubject(out.Token), "request_id", reqID)
	return out.Token, nil
}
