package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxResponseBytes bounds how much of a reply is read.
const maxResponseBytes = 1 << 20

// HTTPClient talks to the account server's JSON API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns a client for the server at baseURL
// (e.g. "http://localhost:3000"). timeout bounds each request; zero means no
// limit beyond the caller's context.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type signupPayload struct {
	UserName  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	Telephone string `json:"telephone,omitempty"`
}

type loginPayload struct {
	UserName string `json:"username"`
	Password string `json:"password"`
}

type requestResetPayload struct {
	Email string `json:"email"`
}

type resetPayload struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// reply is the union of all server responses.
type reply struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	ID         string `json:"id"`
	User       *User  `json:"user"`
	ResetToken string `json:"reset_token"`
}

func (c *HTTPClient) Signup(ctx context.Context, in SignupData) (string, error) {
	var r reply
	err := c.post(ctx, "/api/signup", signupPayload{
		UserName:  in.UserName,
		Password:  string(in.Password),
		Email:     in.Email,
		Telephone: in.Telephone,
	}, &r)
	if err != nil {
		return "", err
	}
	return r.ID, nil
}

func (c *HTTPClient) Login(ctx context.Context, username string, password []byte) (*User, error) {
	var r reply
	if err := c.post(ctx, "/api/login", loginPayload{UserName: username, Password: string(password)}, &r); err != nil {
		return nil, err
	}
	if r.User == nil {
		return nil, fmt.Errorf("%w: login reply without user", ErrUnavailable)
	}
	return r.User, nil
}

func (c *HTTPClient) RequestReset(ctx context.Context, email string) (string, error) {
	var r reply
	if err := c.post(ctx, "/api/request-reset", requestResetPayload{Email: email}, &r); err != nil {
		return "", err
	}
	return r.ResetToken, nil
}

func (c *HTTPClient) Reset(ctx context.Context, token string, newPassword []byte) error {
	var r reply
	return c.post(ctx, "/api/reset", resetPayload{Token: token, NewPassword: string(newPassword)}, &r)
}

// post sends payload as JSON and decodes the reply into out. Non-2xx replies
// become *APIError; anything that prevents a decoded reply is ErrUnavailable.
func (c *HTTPClient) post(ctx context.Context, path string, payload any, out *reply) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	decodeErr := json.Unmarshal(data, out)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr != nil {
			return newAPIError(resp.StatusCode, "")
		}
		return newAPIError(resp.StatusCode, out.Error)
	}

	if decodeErr != nil {
		return fmt.Errorf("%w: malformed reply: %v", ErrUnavailable, decodeErr)
	}
	return nil
}
