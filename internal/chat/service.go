package chat

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/mythoslab/mythos-backend/internal/auth"
	"github.com/mythoslab/mythos-backend/internal/pkg/blobstore"
	"github.com/mythoslab/mythos-backend/internal/pkg/metrics"
)

// FallbackReply is substituted whenever the generator fails. Errors from the
// text-generation collaborator never reach the user.
const FallbackReply = "The oracle is silent right now. Please try again in a moment."

type Service interface {
	// Converse returns an assistant reply for the conversation. It always
	// returns something to show the user; failures become FallbackReply.
	Converse(ctx context.Context, turns []Turn, actor auth.Actor) string
	// SetAPIKey stores the key durably and swaps the generator. An empty key
	// clears the stored one and returns to demo mode.
	SetAPIKey(ctx context.Context, key string, actor auth.Actor) error
}

type service struct {
	mu    sync.Mutex
	store blobstore.Store
	gen   Generator
	model string
}

// NewService prefers a stored API key over the environment-provided one.
// Without either, the demo echo backend is used.
func NewService(ctx context.Context, store blobstore.Store, envKey, model string) Service {
	var key string
	store.Load(ctx, blobstore.KeyAPIKey, &key)
	if key == "" {
		key = envKey
	}

	return &service{
		store: store,
		gen:   buildGenerator(ctx, key, model),
		model: model,
	}
}

func buildGenerator(ctx context.Context, key, model string) Generator {
	if key == "" {
		return EchoGenerator{}
	}
	g, err := NewGeminiGenerator(ctx, key, model)
	if err != nil {
		log.Printf("chat: gemini unavailable, falling back to demo mode: %v", err)
		return EchoGenerator{}
	}
	return g
}

func (s *service) Converse(ctx context.Context, turns []Turn, actor auth.Actor) string {
	reply, err := s.generator().Reply(ctx, systemInstruction(actor), turns)
	if err != nil {
		log.Printf("chat: generator failed: %v", err)
		metrics.ChatReplies.WithLabelValues("fallback").Inc()
		return FallbackReply
	}

	metrics.ChatReplies.WithLabelValues("generated").Inc()
	return reply
}

func (s *service) SetAPIKey(ctx context.Context, key string, actor auth.Actor) error {
	if !actor.IsAdmin() {
		return ErrUnauthorized
	}

	key = strings.TrimSpace(key)
	s.store.Save(ctx, blobstore.KeyAPIKey, key)

	s.mu.Lock()
	s.gen = buildGenerator(ctx, key, s.model)
	s.mu.Unlock()
	return nil
}

func (s *service) generator() Generator {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// systemInstruction derives the assistant persona from the session's role.
func systemInstruction(actor auth.Actor) string {
	name := strings.TrimSpace(actor.Name)
	if name == "" {
		name = "there"
	}

	switch actor.Role {
	case auth.RoleTeacher:
		return "You are MythOS, an assistant for teachers. Help " + name +
			" plan lessons, draft quizzes, and explain topics at different levels. Be concise and practical."
	case auth.RoleAdmin:
		return "You are MythOS, an assistant for school administrators. Help " + name +
			" with announcements, scheduling, and day-to-day school operations. Be concise and practical."
	default:
		return "You are MythOS, a patient study assistant. Help " + name +
			" understand concepts step by step, ask guiding questions, and never just hand over homework answers."
	}
}
