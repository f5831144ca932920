// Package assistant keeps chat conversations and answers user turns through
// a completion API. Conversations live in memory and expire after a period
// of inactivity.
package assistant

import (
	"context"
	_ "embed"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog"

	"github.com/corpac/coba/internal/llm"
	"github.com/corpac/coba/internal/metrics"
	"github.com/corpac/coba/internal/model"
	"github.com/corpac/coba/internal/platform"
)

//go:embed prompt.txt
var systemPrompt string

// Window is the number of prior turns sent with each new user turn.
const Window = 8

const (
	Greeting      = "¡Hola! Soy el asistente virtual de COBA Monitoring. ¿En qué puedo ayudarte hoy? Puedo responder preguntas sobre incidentes, SLAs, auditorías, riesgos y más."
	EmptyReply    = "Lo siento, no pude procesar tu consulta."
	FallbackReply = "Lo siento, hubo un error al procesar tu consulta. Por favor, verifica tu API Key e intenta nuevamente."
)

var (
	// ErrNotFound is returned for unknown or expired conversations.
	ErrNotFound = errors.New("conversation not found")
	// ErrEmptyMessage is returned when a user turn has no text.
	ErrEmptyMessage = errors.New("message is empty")
)

// Completer produces one assistant turn for a prompt.
type Completer interface {
	Complete(ctx context.Context, apiKey string, messages []llm.Message) (string, error)
}

type session struct {
	// mu serializes turns so each completion sees the previous reply.
	mu   sync.Mutex
	conv model.Conversation
}

type Service struct {
	completer Completer
	sessions  *ttlcache.Cache[string, *session]
	logger    zerolog.Logger
	now       func() time.Time
}

// NewService creates an assistant whose conversations expire after ttl
// without activity. Call Start to run expiry and Stop on shutdown.
func NewService(completer Completer, ttl time.Duration, logger zerolog.Logger) *Service {
	return &Service{
		completer: completer,
		sessions: ttlcache.New(
			ttlcache.WithTTL[string, *session](ttl),
			ttlcache.WithCapacity[string, *session](10000),
		),
		logger: logger.With().Str("component", "assistant").Logger(),
		now:    time.Now,
	}
}

func (s *Service) Start() { go s.sessions.Start() }

func (s *Service) Stop() { s.sessions.Stop() }

// NewConversation opens a conversation holding the greeting turn.
func (s *Service) NewConversation() model.Conversation {
	now := s.now()
	sess := &session{conv: model.Conversation{
		ID:        platform.NewID(),
		Turns:     []model.ChatTurn{{Role: model.RoleAssistant, Content: Greeting, Timestamp: now}},
		CreatedAt: now,
		UpdatedAt: now,
	}}
	s.sessions.Set(sess.conv.ID, sess, ttlcache.DefaultTTL)
	return snapshot(sess)
}

// Get returns a copy of the conversation.
func (s *Service) Get(id string) (model.Conversation, error) {
	sess, err := s.session(id)
	if err != nil {
		return model.Conversation{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return snapshot(sess), nil
}

// Send appends a user turn and the assistant's answer. A completion failure
// is not returned as an error: a fallback turn is appended and the reply is
// flagged. apiKey overrides the server's credential when set.
func (s *Service) Send(ctx context.Context, id, apiKey, content string) (*model.Reply, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	prompt := buildPrompt(sess.conv.Turns, content)
	sess.conv.Turns = append(sess.conv.Turns, model.ChatTurn{
		Role: model.RoleUser, Content: content, Timestamp: s.now(),
	})

	reply := &model.Reply{}
	answer, err := s.completer.Complete(ctx, apiKey, prompt)
	switch {
	case err != nil:
		s.logger.Warn().Err(err).Str("conversation", id).Msg("completion failed")
		metrics.AssistantCompletion("error")
		answer = FallbackReply
		reply.Fallback = true
		reply.Error = err.Error()
	case strings.TrimSpace(answer) == "":
		metrics.AssistantCompletion("empty")
		answer = EmptyReply
	default:
		metrics.AssistantCompletion("ok")
	}

	now := s.now()
	turn := model.ChatTurn{Role: model.RoleAssistant, Content: answer, Timestamp: now}
	sess.conv.Turns = append(sess.conv.Turns, turn)
	sess.conv.UpdatedAt = now

	reply.Turn = turn
	reply.Conversation = snapshot(sess)
	return reply, nil
}

func (s *Service) session(id string) (*session, error) {
	item := s.sessions.Get(id)
	if item == nil {
		return nil, ErrNotFound
	}
	return item.Value(), nil
}

// buildPrompt is the system instruction, the last Window turns of history,
// then the new user turn.
func buildPrompt(history []model.ChatTurn, content string) []llm.Message {
	if len(history) > Window {
		history = history[len(history)-Window:]
	}
	msgs := make([]llm.Message, 0, len(history)+2)
	msgs = append(msgs, llm.Message{Role: llm.RoleSystem, Content: systemPrompt})
	for _, t := range history {
		role := llm.RoleUser
		if t.Role == model.RoleAssistant {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: t.Content})
	}
	return append(msgs, llm.Message{Role: llm.RoleUser, Content: content})
}

func snapshot(sess *session) model.Conversation {
	c := sess.conv
	c.Turns = slices.Clone(c.Turns)
	return c
}
