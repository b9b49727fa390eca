package capabilities

import (
	"context"
	"fmt"

	"github.com/parksandresorts/backster-agent/internal/domain"
	"github.com/parksandresorts/backster-agent/internal/observability"
)

// Arguments is the raw argument mapping from a model capability call.
type Arguments map[string]any

// String extracts a string argument, tolerating absent or non-string values.
func (a Arguments) String(key string) string {
	if a == nil {
		return ""
	}
	if v, ok := a[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Outcome is what a capability hands back to the orchestrator: always plain
// text, never an error. Citations are set only by the knowledge lookup.
type Outcome struct {
	Content   string
	Citations []domain.Citation
}

// Capability is one named action the model can request.
type Capability interface {
	Spec() domain.CapabilitySpec
	Invoke(ctx context.Context, args Arguments, sctx domain.SessionContext) Outcome
}

// Registry holds the fixed capability set, defined at startup and immutable
// thereafter. Specs preserve registration order.
type Registry struct {
	order  []string
	byName map[string]Capability
}

func NewRegistry(caps ...Capability) *Registry {
	r := &Registry{byName: make(map[string]Capability, len(caps))}
	for _, c := range caps {
		name := c.Spec().Name
		r.order = append(r.order, name)
		r.byName[name] = c
	}
	return r
}

// Specs returns the schemas exposed to the language model.
func (r *Registry) Specs() []domain.CapabilitySpec {
	out := make([]domain.CapabilitySpec, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name].Spec())
	}
	return out
}

// Names returns the capability names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Invoke dispatches one capability call. Unknown names produce a result
// the model can recover from; they never crash the orchestrator.
func (r *Registry) Invoke(ctx context.Context, call domain.CapabilityCall, sctx domain.SessionContext) domain.CapabilityResult {
	observability.CapabilityInvocations.WithLabelValues(call.Name).Inc()

	cap, ok := r.byName[call.Name]
	if !ok {
		return domain.CapabilityResult{
			CallID:  call.ID,
			Name:    call.Name,
			Content: fmt.Sprintf("Error: unknown capability %q. Please fix your mistakes.", call.Name),
		}
	}

	out := cap.Invoke(ctx, Arguments(call.Args), sctx)
	return domain.CapabilityResult{
		CallID:    call.ID,
		Name:      call.Name,
		Content:   out.Content,
		Citations: out.Citations,
	}
}
