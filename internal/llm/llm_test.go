package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
)

func chatServer(t *testing.T, content string, calls *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			atomic.AddInt32(calls, 1)
		}
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "llama3-70b-8192", body.Model)
		if assert.Len(t, body.Messages, 2) {
			assert.Equal(t, "system", body.Messages[0].Role)
			assert.Equal(t, "user", body.Messages[1].Role)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   body.Model,
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAIGenerate(t *testing.T) {
	srv := chatServer(t, "SELECTED: 1", nil)

	gen, err := NewOpenAI(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL, Model: "llama3-70b-8192"})
	require.NoError(t, err)

	out, err := gen.Generate(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, "SELECTED: 1", out)
}

func TestOpenAIServerErrorIsDelegateFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"boom"}}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	gen, err := NewOpenAI(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "", "user")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDelegateUnavailable))
}

func TestMissingKeyIsNotConfigured(t *testing.T) {
	_, err := NewOpenAI(OpenAIConfig{KeyEnv: "GROQ_API_KEY"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotConfigured))
	assert.Equal(t, []string{"set GROQ_API_KEY"}, domain.Hints(err))

	_, err = NewGemini(context.Background(), " ", "")
	assert.True(t, errors.Is(err, domain.ErrNotConfigured))
}

func TestWithTimeout(t *testing.T) {
	slow := GeneratorFunc(func(ctx context.Context, _, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})

	_, err := WithTimeout(slow, 10*time.Millisecond).Generate(context.Background(), "s", "u")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDelegateUnavailable))
}

type memCache struct {
	mu   sync.Mutex
	data map[string]string
}

func (m *memCache) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memCache) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func TestWithCacheServesRepeatsAndCollapsesConcurrentCalls(t *testing.T) {
	var calls int32
	release := make(chan struct{})
	gen := GeneratorFunc(func(_ context.Context, _, user string) (string, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "answer to " + user, nil
	})

	c := WithCache(gen, &memCache{data: map[string]string{}}, "openai/test", nil)

	var wg sync.WaitGroup
	results := make([]string, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := c.Generate(context.Background(), "sys", "q")
			assert.NoError(t, err)
			results[i] = out
		}(i)
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "answer to q", r)
	}

	out, err := c.Generate(context.Background(), "sys", "q")
	require.NoError(t, err)
	assert.Equal(t, "answer to q", out)
	assert.LessOrEqual(t, atomic.LoadInt32(&calls), int32(2))

	_, err = c.Generate(context.Background(), "sys", "other")
	require.NoError(t, err)
}

func TestWithCacheCancelledCallerDoesNotFailOthers(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var once sync.Once
	gen := GeneratorFunc(func(ctx context.Context, _, _ string) (string, error) {
		once.Do(func() { close(started) })
		select {
		case <-release:
			return "shared answer", nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	})
	c := WithCache(gen, &memCache{data: map[string]string{}}, "ns", nil)

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() {
		_, err := c.Generate(ctx, "s", "u")
		first <- err
	}()
	<-started

	second := make(chan string, 1)
	go func() {
		out, err := c.Generate(context.Background(), "s", "u")
		assert.NoError(t, err)
		second <- out
	}()

	cancel()
	assert.ErrorIs(t, <-first, context.Canceled)

	close(release)
	assert.Equal(t, "shared answer", <-second)
}

func TestWithCacheDoesNotStoreErrors(t *testing.T) {
	cache := &memCache{data: map[string]string{}}
	failing := GeneratorFunc(func(context.Context, string, string) (string, error) {
		return "", errors.New("down")
	})

	_, err := WithCache(failing, cache, "ns", nil).Generate(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Empty(t, cache.data)
}

func TestCacheKeySeparatesFields(t *testing.T) {
	assert.NotEqual(t, CacheKey("ns", "ab", "c"), CacheKey("ns", "a", "bc"))
	assert.NotEqual(t, CacheKey("openai/a", "s", "u"), CacheKey("groq/a", "s", "u"))
	assert.Equal(t, CacheKey("ns", "s", "u"), CacheKey("ns", "s", "u"))
}
