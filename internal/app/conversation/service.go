package conversation

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/parksandresorts/backster-agent/internal/app/agentflow"
	"github.com/parksandresorts/backster-agent/internal/app/capabilities"
	"github.com/parksandresorts/backster-agent/internal/domain"
	"github.com/parksandresorts/backster-agent/internal/observability"
)

// Service glues the session store to the turn orchestrator: one Chat call
// drives exactly one orchestrator run to completion.
type Service struct {
	orchestrator *agentflow.Orchestrator
	sessions     domain.SessionStore
	now          func() time.Time

	// Per-session locks serialize concurrent requests for the same session
	// id; without them interleaved runs would lose turns.
	mu    sync.Mutex
	locks map[domain.SessionID]*sync.Mutex
}

func NewService(llm domain.LLMClient, registry *capabilities.Registry, sessions domain.SessionStore) *Service {
	return &Service{
		orchestrator: agentflow.New(llm, registry),
		sessions:     sessions,
		now:          time.Now,
		locks:        make(map[domain.SessionID]*sync.Mutex),
	}
}

type ChatInput struct {
	SessionID      domain.SessionID
	Query          string
	Park           domain.Park
	EmploymentType domain.EmploymentType
}

type ChatOutput struct {
	Answer   string
	Sources  []string
	Contents []string
}

// Chat loads or creates the conversation for the session, refreshes its
// context from the request, runs the orchestrator and persists the result.
func (s *Service) Chat(ctx context.Context, in ChatInput) (*ChatOutput, error) {
	lock := s.sessionLock(in.SessionID)
	lock.Lock()
	defer lock.Unlock()

	ctx = observability.WithSessionID(ctx, string(in.SessionID))
	log := observability.LoggerFromContext(ctx).With("park", in.Park)

	now := s.now()

	conv, err := s.sessions.Get(in.SessionID)
	if errors.Is(err, domain.ErrSessionNotFound) {
		log.Info("starting new session")
		conv = &domain.Conversation{
			ID:        in.SessionID,
			CreatedAt: now,
		}
	} else if err != nil {
		log.Error("failed to load session", "error", err)
		return nil, err
	}

	conv.Context = domain.SessionContext{
		Park:           in.Park,
		EmploymentType: in.EmploymentType,
		CurrentDate:    now.Format("2006-01-02"),
		CurrentTime:    now.Format("15:04"),
	}

	answer, citations, err := s.orchestrator.Advance(ctx, conv, in.Query)
	if err != nil {
		log.Error("orchestrator failed", "error", err)
		return nil, err
	}

	conv.UpdatedAt = s.now()
	if err := s.sessions.Put(conv); err != nil {
		log.Error("failed to persist session", "error", err)
		return nil, err
	}

	sources, contents := collectCitations(citations)
	log.Info("chat completed", "sources", len(sources))

	return &ChatOutput{
		Answer:   answer,
		Sources:  sources,
		Contents: contents,
	}, nil
}

func (s *Service) sessionLock(id domain.SessionID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	return lock
}

// collectCitations dedupes sources and original contents, keeping first
// occurrence order.
func collectCitations(citations []domain.Citation) (sources, contents []string) {
	seenSource := make(map[string]bool)
	seenContent := make(map[string]bool)
	for _, c := range citations {
		if c.Source != "" && !seenSource[c.Source] {
			seenSource[c.Source] = true
			sources = append(sources, c.Source)
		}
		if c.OriginalContent != "" && !seenContent[c.OriginalContent] {
			seenContent[c.OriginalContent] = true
			contents = append(contents, c.OriginalContent)
		}
	}
	return sources, contents
}
