package hiringapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{CandidateURL: srv.URL, TailorURL: srv.URL, EmailURL: srv.URL + "/", LinkBase: "http://localhost:3000"})
	require.NoError(t, err)
	return c
}

func TestSelectedID(t *testing.T) {
	cases := map[string]string{
		"SELECTED: 42\nREASON: x":          "42",
		"SELECTED: Candidate 2\nREASON: x": "2",
		"**SELECTED:** [Candidate 1]":      "1",
		"selected: maya-okafor":            "maya-okafor",
		"SELECTED: NONE":                   "",
		"no marker here":                   "",
	}
	for in, want := range cases {
		assert.Equal(t, want, SelectedID(in), in)
	}
}

func TestFindCandidateFillsLinkFromMarker(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/find-candidate", r.URL.Path)
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "python dev", body["search_query"])
		_, _ = w.Write([]byte(`{"status":"success","analysis":"SELECTED: Candidate 2\nREASON: fits"}`))
	}))

	res, err := c.FindCandidate(context.Background(), FindCandidateRequest{SearchQuery: "python dev"})
	require.NoError(t, err)
	assert.Equal(t, "2", res.SelectedCandidateID)
	assert.Equal(t, "http://localhost:3000/candidate/2", res.CandidateLink)
}

func TestFindCandidateKeepsServiceLink(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","analysis":"SELECTED: 1","candidate_link":"http://web/candidate/1"}`))
	}))

	res, err := c.FindCandidate(context.Background(), FindCandidateRequest{SearchQuery: "q"})
	require.NoError(t, err)
	assert.Equal(t, "http://web/candidate/1", res.CandidateLink)
}

func TestErrorDetailIsSurfaced(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"Failed to send email: authorization incomplete"}`))
	}))

	_, err := c.SendEmail(context.Background(), SendEmailRequest{Subject: "s", Body: "b", Recipient: "a@example.com"})
	require.Error(t, err)
	assert.Equal(t, "hiringapi: API error (500): Failed to send email: authorization incomplete", err.Error())
}

func TestTailorMessage(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tailor-message", r.URL.Path)
		var req TailorMessageRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Acme", req.CompanyName)
		_, _ = w.Write([]byte(`{"status":"success","subject":"Hi","message":"Body"}`))
	}))

	res, err := c.TailorMessage(context.Background(), TailorMessageRequest{CompanyName: "Acme", JobTitle: "SWE"})
	require.NoError(t, err)
	assert.Equal(t, "Hi", res.Subject)
	assert.Equal(t, "Body", res.Message)
}

func TestNewClientNeedsURLs(t *testing.T) {
	_, err := NewClient(Config{CandidateURL: "http://x"})
	assert.Error(t, err)
}
