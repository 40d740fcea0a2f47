package arcade

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL  = "https://api.arcade.dev"
	defaultPollWait = 45 * time.Second
	maxPollWait     = 59 * time.Second
)

// NewClient instantiates an Arcade API client
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("arcade: api key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	pollWait := cfg.PollWait
	if pollWait <= 0 {
		pollWait = defaultPollWait
	}
	if pollWait > maxPollWait {
		pollWait = maxPollWait
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		pollWait:   pollWait,
	}, nil
}

// Authorize starts (or looks up) the authorization of toolName for userID
func (c *Client) Authorize(ctx context.Context, toolName, userID string) (AuthorizationResponse, error) {
	var out AuthorizationResponse
	err := c.do(ctx, http.MethodPost, "/v1/tools/authorize", authorizeRequest{ToolName: toolName, UserID: userID}, &out)
	return out, err
}

// Status fetches an authorization, long-polling up to wait while it is pending
func (c *Client) Status(ctx context.Context, id string, wait time.Duration) (AuthorizationResponse, error) {
	q := url.Values{}
	q.Set("id", id)
	if secs := int(wait / time.Second); secs > 0 {
		q.Set("wait", strconv.Itoa(secs))
	}

	var out AuthorizationResponse
	err := c.do(ctx, http.MethodGet, "/v1/auth/status?"+q.Encode(), nil, &out)
	return out, err
}

// WaitForCompletion polls until the authorization leaves the pending state or ctx ends
func (c *Client) WaitForCompletion(ctx context.Context, auth AuthorizationResponse) (AuthorizationResponse, error) {
	for auth.Status == StatusPending {
		if auth.ID == "" {
			return auth, fmt.Errorf("arcade: pending authorization has no id")
		}
		next, err := c.Status(ctx, auth.ID, c.pollWait)
		if err != nil {
			return auth, err
		}
		if next.URL == "" {
			next.URL = auth.URL
		}
		auth = next

		if auth.Status == StatusPending {
			select {
			case <-ctx.Done():
				return auth, ctx.Err()
			case <-time.After(time.Second):
			}
		}
	}
	return auth, nil
}

// Execute runs toolName with input on behalf of userID
func (c *Client) Execute(ctx context.Context, toolName string, input map[string]any, userID string) (ExecuteResponse, error) {
	var out ExecuteResponse
	if err := c.do(ctx, http.MethodPost, "/v1/tools/execute", executeRequest{ToolName: toolName, Input: input, UserID: userID}, &out); err != nil {
		return out, err
	}
	if !out.Success {
		msg := "tool execution failed"
		if out.Output != nil && out.Output.Error != nil && out.Output.Error.Message != "" {
			msg = out.Output.Error.Message
		}
		return out, fmt.Errorf("arcade: %s: %s", toolName, msg)
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("arcade: encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("arcade: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("arcade: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("arcade: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("arcade: decode response: %w", err)
	}
	return nil
}
