package llm

import (
	"context"
	"fmt"

	"github.com/parksandresorts/backster-agent/internal/domain"
)

// MockLLM is a tool-less stand-in for local development: it echoes the last
// user turn and never requests capabilities.
type MockLLM struct{}

func NewMockLLM() *MockLLM {
	return &MockLLM{}
}

func (m *MockLLM) Generate(
	ctx context.Context,
	sctx domain.SessionContext,
	turns []domain.Turn,
	specs []domain.CapabilitySpec,
) (*domain.ModelReply, error) {
	var lastUser string
	for _, t := range turns {
		if t.Kind == domain.TurnUser {
			lastUser = t.Text
		}
	}
	return &domain.ModelReply{
		Text: fmt.Sprintf("Jag hör dig. Du skrev %q. Berätta gärna mer så hjälper jag dig vidare.", lastUser),
	}, nil
}

// ScriptedLLM replays a fixed sequence of replies, one per Generate call.
// Used by tests that need to drive the orchestrator through capability
// rounds deterministically.
type ScriptedLLM struct {
	Replies []*domain.ModelReply

	// Calls records every invocation for assertions.
	Calls [][]domain.Turn

	next int
}

func (s *ScriptedLLM) Generate(
	ctx context.Context,
	sctx domain.SessionContext,
	turns []domain.Turn,
	specs []domain.CapabilitySpec,
) (*domain.ModelReply, error) {
	s.Calls = append(s.Calls, append([]domain.Turn(nil), turns...))
	if s.next >= len(s.Replies) {
		return nil, fmt.Errorf("scripted llm: no reply for call %d", s.next+1)
	}
	reply := s.Replies[s.next]
	s.next++
	return reply, nil
}
