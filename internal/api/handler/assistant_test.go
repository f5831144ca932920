package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpac/coba/internal/assistant"
	"github.com/corpac/coba/internal/llm"
	"github.com/corpac/coba/internal/model"
)

type stubCompleter struct {
	answer string
	err    error
	gotKey string
}

func (s *stubCompleter) Complete(_ context.Context, apiKey string, _ []llm.Message) (string, error) {
	s.gotKey = apiKey
	return s.answer, s.err
}

func newAssistantHandler(c assistant.Completer) (*Assistant, *assistant.Service) {
	svc := assistant.NewService(c, time.Minute, zerolog.Nop())
	return NewAssistant(svc), svc
}

func TestAssistantStart(t *testing.T) {
	h, _ := newAssistantHandler(&stubCompleter{})
	rec := httptest.NewRecorder()

	h.Start(rec, newRequest(http.MethodPost, "/assistant/conversations", nil))

	require.Equal(t, http.StatusCreated, rec.Code)
	var conv model.Conversation
	require.NoError(t, decodeJSON(rec, &conv))
	require.Len(t, conv.Turns, 1)
	assert.Equal(t, assistant.Greeting, conv.Turns[0].Content)
}

func TestAssistantGet_NotFound(t *testing.T) {
	h, _ := newAssistantHandler(&stubCompleter{})
	rec := httptest.NewRecorder()

	h.Get(rec, withChiURLParam(newRequest(http.MethodGet, "/assistant/conversations/x", nil), "id", "x"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAssistantSend_UsesHeaderKey(t *testing.T) {
	c := &stubCompleter{answer: "Claro."}
	h, svc := newAssistantHandler(c)
	conv := svc.NewConversation()

	r := newRequest(http.MethodPost, "/assistant/conversations/"+conv.ID+"/messages", map[string]any{"content": "hola"})
	r.Header.Set(AssistantKeyHeader, "sk-user")
	rec := httptest.NewRecorder()
	h.Send(rec, withChiURLParam(r, "id", conv.ID))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sk-user", c.gotKey)
	var reply model.Reply
	require.NoError(t, decodeJSON(rec, &reply))
	assert.Equal(t, "Claro.", reply.Turn.Content)
	assert.False(t, reply.Fallback)
}

func TestAssistantSend_FallbackIs200(t *testing.T) {
	h, svc := newAssistantHandler(&stubCompleter{err: errors.New("rate limited")})
	conv := svc.NewConversation()

	rec := httptest.NewRecorder()
	r := newRequest(http.MethodPost, "/assistant/conversations/"+conv.ID+"/messages", map[string]any{"content": "hola"})
	h.Send(rec, withChiURLParam(r, "id", conv.ID))

	require.Equal(t, http.StatusOK, rec.Code)
	var reply model.Reply
	require.NoError(t, decodeJSON(rec, &reply))
	assert.True(t, reply.Fallback)
	assert.Equal(t, "rate limited", reply.Error)
	assert.Equal(t, assistant.FallbackReply, reply.Turn.Content)
}

func TestAssistantSend_BlankMessage(t *testing.T) {
	h, svc := newAssistantHandler(&stubCompleter{})
	conv := svc.NewConversation()

	rec := httptest.NewRecorder()
	r := newRequest(http.MethodPost, "/assistant/conversations/"+conv.ID+"/messages", map[string]any{"content": "  "})
	h.Send(rec, withChiURLParam(r, "id", conv.ID))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "is required", decodeErrorResponse(rec).Fields["content"])
}
