package agentflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/parksandresorts/backster-agent/internal/app/capabilities"
	"github.com/parksandresorts/backster-agent/internal/domain"
	"github.com/parksandresorts/backster-agent/internal/observability"
)

const (
	// maxEmptyReplies bounds the "respond with real output" re-prompt so a
	// misbehaving model cannot loop the request forever.
	maxEmptyReplies = 3

	repromptText   = "Respond with a real output."
	fallbackAnswer = "Jag kan tyvärr inte svara just nu. Försök gärna igen om en liten stund, eller kontakta Artistservice direkt."
)

// Orchestrator drives one user turn to a final answer: it invokes the
// language model, executes requested capabilities in emitted order, feeds
// the results back, and repeats until the model produces text.
type Orchestrator struct {
	llm      domain.LLMClient
	registry *capabilities.Registry
	now      func() time.Time
}

func New(llm domain.LLMClient, registry *capabilities.Registry) *Orchestrator {
	return &Orchestrator{
		llm:      llm,
		registry: registry,
		now:      time.Now,
	}
}

// Advance appends the user's text to the conversation and loops the model
// against the capability registry until a final answer is produced.
// Capability handlers never return errors; the only error path here is the
// model invocation itself.
func (o *Orchestrator) Advance(ctx context.Context, conv *domain.Conversation, userText string) (string, []domain.Citation, error) {
	log := observability.LoggerFromContext(ctx).With("session_id", conv.ID)
	log.Info("orchestrator started", "turns", len(conv.Turns))

	conv.Append(o.userTurn(userText))

	var citations []domain.Citation
	emptyReplies := 0

	for {
		start := o.now()
		observability.ModelInvocations.Inc()

		reply, err := o.llm.Generate(ctx, conv.Context, conv.Turns, o.registry.Specs())
		if err != nil {
			log.Error("model invocation failed", "error", err)
			return "", nil, fmt.Errorf("generate reply: %w", err)
		}
		log.Info("model replied", "elapsed_ms", o.now().Sub(start).Milliseconds(), "calls", len(reply.Calls))

		// Neither text nor capability calls: re-prompt the model itself,
		// but only a bounded number of times.
		if len(reply.Calls) == 0 && strings.TrimSpace(reply.Text) == "" {
			emptyReplies++
			if emptyReplies >= maxEmptyReplies {
				log.Error("model kept returning empty replies, giving up")
				conv.Append(o.assistantTurn(fallbackAnswer, nil))
				return fallbackAnswer, citations, nil
			}
			conv.Append(o.userTurn(repromptText))
			continue
		}

		if len(reply.Calls) > 0 {
			conv.Append(o.assistantTurn(reply.Text, reply.Calls))
			for _, call := range reply.Calls {
				log.Info("invoking capability", "capability", call.Name, "call_id", call.ID)
				res := o.registry.Invoke(ctx, call, conv.Context)
				citations = append(citations, res.Citations...)
				conv.Append(o.resultTurn(res))
			}
			// The model always sees the results before the next decision.
			continue
		}

		conv.Append(o.assistantTurn(reply.Text, nil))
		log.Info("orchestrator end", "citations", len(citations))
		return reply.Text, citations, nil
	}
}

func (o *Orchestrator) userTurn(text string) domain.Turn {
	return domain.Turn{
		ID:        domain.TurnID(uuid.NewString()),
		Kind:      domain.TurnUser,
		Text:      text,
		CreatedAt: o.now(),
	}
}

func (o *Orchestrator) assistantTurn(text string, calls []domain.CapabilityCall) domain.Turn {
	return domain.Turn{
		ID:        domain.TurnID(uuid.NewString()),
		Kind:      domain.TurnAssistant,
		Text:      text,
		Calls:     calls,
		CreatedAt: o.now(),
	}
}

func (o *Orchestrator) resultTurn(res domain.CapabilityResult) domain.Turn {
	return domain.Turn{
		ID:        domain.TurnID(uuid.NewString()),
		Kind:      domain.TurnCapabilityResult,
		Result:    &res,
		CreatedAt: o.now(),
	}
}
