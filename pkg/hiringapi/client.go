package hiringapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// NewClient instantiates a hiring services client
func NewClient(cfg Config) (*Client, error) {
	if cfg.CandidateURL == "" || cfg.TailorURL == "" || cfg.EmailURL == "" {
		return nil, fmt.Errorf("hiringapi: candidate, tailor and email service URLs are required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		candidateURL: strings.TrimSuffix(cfg.CandidateURL, "/"),
		tailorURL:    strings.TrimSuffix(cfg.TailorURL, "/"),
		emailURL:     strings.TrimSuffix(cfg.EmailURL, "/"),
		linkBase:     strings.TrimSuffix(cfg.LinkBase, "/"),
		httpClient:   httpClient,
	}, nil
}

// FindCandidate asks the candidate service for the best match
func (c *Client) FindCandidate(ctx context.Context, req FindCandidateRequest) (FindCandidateResult, error) {
	var out FindCandidateResult
	if err := c.post(ctx, c.candidateURL+"/find-candidate", req, &out); err != nil {
		return out, err
	}

	if out.SelectedCandidateID == "" {
		out.SelectedCandidateID = SelectedID(out.Analysis)
	}
	if out.CandidateLink == "" && out.SelectedCandidateID != "" && c.linkBase != "" {
		out.CandidateLink = c.linkBase + "/candidate/" + out.SelectedCandidateID
	}
	return out, nil
}

func (c *Client) TailorMessage(ctx context.Context, req TailorMessageRequest) (TailorMessageResult, error) {
	var out TailorMessageResult
	err := c.post(ctx, c.tailorURL+"/tailor-message", req, &out)
	return out, err
}

func (c *Client) SendEmail(ctx context.Context, req SendEmailRequest) (SendEmailResult, error) {
	var out SendEmailResult
	err := c.post(ctx, c.emailURL+"/send-email", req, &out)
	return out, err
}

var selectedRe = regexp.MustCompile(`(?i)SELECTED\W*:\W*(?:candidate\s*#?\s*)?([A-Za-z0-9][\w-]*)`)

// SelectedID extracts the id from a "SELECTED: <id>" or "SELECTED: Candidate N" marker
func SelectedID(analysis string) string {
	m := selectedRe.FindStringSubmatch(analysis)
	if m == nil || strings.EqualFold(m[1], "none") {
		return ""
	}
	return m[1]
}

func (c *Client) post(ctx context.Context, url string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("hiringapi: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("hiringapi: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("hiringapi: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("hiringapi: API error (%d): %s", resp.StatusCode, detail(msg))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("hiringapi: decode response: %w", err)
	}
	return nil
}

// detail prefers the {"detail": ...} field of an error body
func detail(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Detail != nil {
		if s, ok := eb.Detail.(string); ok {
			return s
		}
		if b, err := json.Marshal(eb.Detail); err == nil {
			return string(b)
		}
	}
	return strings.TrimSpace(string(body))
}
