package llm

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

type capturedRequest struct {
	Auth string
	Body struct {
		Model       string  `json:"model"`
		MaxTokens   int64   `json:"max_tokens"`
		Temperature float64 `json:"temperature"`
		Messages    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
}

func newFakeAPI(t *testing.T, status int, reply string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		captured.Auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured.Body))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   captured.Body.Model,
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": reply},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

func TestComplete_SendsConversation(t *testing.T) {
	srv, captured := newFakeAPI(t, http.StatusOK, "Hola")
	c := NewClient(Config{BaseURL: srv.URL, APIKey: "server-key"})

	out, err := c.Complete(context.Background(), "", []Message{
		{Role: RoleSystem, Content: "sys"},
		{Role: RoleUser, Content: "q"},
		{Role: RoleAssistant, Content: "a"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Hola", out)
	assert.Equal(t, "Bearer server-key", captured.Auth)
	assert.Equal(t, "gpt-3.5-turbo", captured.Body.Model)
	assert.EqualValues(t, 500, captured.Body.MaxTokens)
	assert.InDelta(t, 0.7, captured.Body.Temperature, 1e-9)
	require.Len(t, captured.Body.Messages, 3)
	assert.Equal(t, "system", captured.Body.Messages[0].Role)
	assert.Equal(t, "user", captured.Body.Messages[1].Role)
	assert.Equal(t, "assistant", captured.Body.Messages[2].Role)
}

func TestComplete_CallerKeyOverrides(t *testing.T) {
	srv, captured := newFakeAPI(t, http.StatusOK, "ok")
	c := NewClient(Config{BaseURL: srv.URL, APIKey: "server-key"})

	_, err := c.Complete(context.Background(), "caller-key", []Message{{Role: RoleUser, Content: "q"}})

	require.NoError(t, err)
	assert.Equal(t, "Bearer caller-key", captured.Auth)
}

func TestComplete_NoKey(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://127.0.0.1:1"})

	_, err := c.Complete(context.Background(), "", []Message{{Role: RoleUser, Content: "q"}})

	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestComplete_EmptyContent(t *testing.T) {
	srv, _ := newFakeAPI(t, http.StatusOK, "")
	c := NewClient(Config{BaseURL: srv.URL, APIKey: "k"})

	out, err := c.Complete(context.Background(), "", []Message{{Role: RoleUser, Content: "q"}})

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestComplete_APIError(t *testing.T) {
	srv, _ := newFakeAPI(t, http.StatusBadRequest, "")
	c := NewClient(Config{BaseURL: srv.URL, APIKey: "k"})

	_, err := c.Complete(context.Background(), "", []Message{{Role: RoleUser, Content: "q"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat completion")
}

func TestComplete_ServerErrorNotRetried(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"overloaded","type":"server_error"}}`))
	}))
	t.Cleanup(srv.Close)
	c := NewClient(Config{BaseURL: srv.URL, APIKey: "k"})

	_, err := c.Complete(context.Background(), "", []Message{{Role: RoleUser, Content: "q"}})

	require.Error(t, err)
	assert.Equal(t, int32(1), hits.Load())
}
