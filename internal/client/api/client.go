// Package api implements the remote client: a single RPC surface that
// calls named backend functions with positional parameters and returns
// the response envelope.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/leadsync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI defines the remote call surface the sync ledger and the lead
// service depend on
type ClientAPI interface {
	// Execute calls a named backend function with positional parameters
	// and returns the decoded response envelope. Transport and decoding
	// failures are returned as errors; application-level failures are
	// reported inside the envelope.
	Execute(ctx context.Context, function string, parameters ...any) (*api.Response, error)

	// Login authenticates and returns the issued token
	Login(ctx context.Context, username, password string) (*api.TokenResponse, error)
}

// Client is the HTTP implementation of ClientAPI
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a new API client for the given backend URL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// carry the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetToken sets the bearer token attached to subsequent requests
func (c *Client) SetToken(token string) {
	c.token = token
}

// Execute calls a named backend function
func (c *Client) Execute(ctx context.Context, function string, parameters ...any) (*api.Response, error) {
	params := make([]json.RawMessage, 0, len(parameters))
	for i, p := range parameters {
		raw, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal parameter %d: %w", i, err)
		}
		params = append(params, raw)
	}

	req := api.RPCRequest{
		Function:   function,
		Parameters: params,
	}

	var resp api.Response
	if err := c.doRequest(ctx, "/exec", &req, &resp); err != nil {
		return nil, fmt.Errorf("%s request failed: %w", function, err)
	}

	return &resp, nil
}

// Login authenticates against the backend and returns the issued token
func (c *Client) Login(ctx context.Context, username, password string) (*api.TokenResponse, error) {
	req := api.LoginRequest{
		Username: username,
		Password: password,
	}

	var token api.TokenResponse
	if err := c.doRequest(ctx, "/auth/login", &req, &token); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	c.SetToken(token.AccessToken)
	return &token, nil
}

// doRequest performs an HTTP POST against the given path
func (c *Client) doRequest(ctx context.Context, path string, body, result any) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.Response
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
