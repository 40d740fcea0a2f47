package arcade

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{APIKey: "arc-key", BaseURL: srv.URL + "/"})
	require.NoError(t, err)
	return c
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}

func TestAuthorizeAndWait(t *testing.T) {
	var polls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/tools/authorize", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer arc-key", r.Header.Get("Authorization"))

		var body authorizeRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Google.SendEmail@1.2.1", body.ToolName)
		assert.Equal(t, "recruiter@example.com", body.UserID)

		_ = json.NewEncoder(w).Encode(AuthorizationResponse{ID: "auth-1", Status: StatusPending, URL: "https://accounts.example/auth"})
	})
	mux.HandleFunc("/v1/auth/status", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "auth-1", r.URL.Query().Get("id"))
		assert.Equal(t, "45", r.URL.Query().Get("wait"))
		atomic.AddInt32(&polls, 1)
		_ = json.NewEncoder(w).Encode(AuthorizationResponse{ID: "auth-1", Status: StatusCompleted})
	})
	c := newTestClient(t, mux)

	auth, err := c.Authorize(context.Background(), "Google.SendEmail@1.2.1", "recruiter@example.com")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, auth.Status)

	done, err := c.WaitForCompletion(context.Background(), auth)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, done.Status)
	assert.Equal(t, "https://accounts.example/auth", done.URL)
	assert.Equal(t, int32(1), atomic.LoadInt32(&polls))
}

func TestWaitForCompletionSkipsWhenDone(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("no request expected")
	}))

	out, err := c.WaitForCompletion(context.Background(), AuthorizationResponse{ID: "a", Status: StatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, out.Status)
}

func TestExecute(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/tools/execute", r.URL.Path)
		var body executeRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alex@example.com", body.Input["recipient"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":           "exec-1",
			"execution_id": "e-1",
			"status":       "success",
			"success":      true,
			"output":       map[string]any{"value": map[string]any{"id": "msg-1"}},
		})
	}))

	out, err := c.Execute(context.Background(), "Google.SendEmail@1.2.1",
		map[string]any{"subject": "Hi", "body": "Hello", "recipient": "alex@example.com"}, "u")
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, map[string]any{"id": "msg-1"}, out.Output.Value)
}

func TestExecuteToolFailure(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "output": {"error": {"message": "invalid recipient"}}}`))
	}))

	_, err := c.Execute(context.Background(), "Google.SendEmail@1.2.1", nil, "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid recipient")
}

func TestAPIError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))

	_, err := c.Authorize(context.Background(), "tool", "user")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "arcade: API error (401): unauthorized")
}
