package domain

import (
	"context"
	"errors"
)

// ParameterSpec describes one capability parameter. All parameters are
// strings on the wire; Enum, when set, restricts the accepted values.
// Parameter order matters: handlers ask for the first missing required
// field in declared order.
type ParameterSpec struct {
	Name        string
	Description string
	Enum        []string
	Required    bool
}

// CapabilitySpec is the registry entry exposed to the language model.
type CapabilitySpec struct {
	Name        string
	Description string
	Parameters  []ParameterSpec
}

// ModelReply is the model's answer to one invocation: final text, a batch
// of capability calls, or (malformed case) neither.
type ModelReply struct {
	Text  string
	Calls []CapabilityCall
}

// LLMClient defines how the core application talks to the language model.
type LLMClient interface {
	Generate(ctx context.Context, sctx SessionContext, turns []Turn, capabilities []CapabilitySpec) (*ModelReply, error)
}

var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists conversation state keyed by session identifier.
type SessionStore interface {
	Get(id SessionID) (*Conversation, error)
	Put(conv *Conversation) error
}

// KnowledgeRecord is one entry returned by the knowledge search service.
type KnowledgeRecord struct {
	ID              string
	Title           string
	Content         string
	Park            Park
	Source          string
	OriginalContent string
}

// KnowledgeSearcher runs a hybrid (lexical + vector) search over the
// knowledge base, filtered by park and employment eligibility flags.
type KnowledgeSearcher interface {
	Search(ctx context.Context, query string, park Park, annual, seasonal bool) ([]KnowledgeRecord, error)
}

// Embedder turns a query into a vector for similarity search.
type Embedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// ErrParkClosed is the park-closed sentinel: the upstream answered 404 for
// the requested date, which is not an error.
var ErrParkClosed = errors.New("park not open on that date")

// ParkDataClient fetches the daily data table for a park and date.
type ParkDataClient interface {
	FetchDaily(ctx context.Context, park Park, date string) (map[string]any, error)
}

// OutboundMail is one notification email. The sender address is fixed by
// the mail adapter.
type OutboundMail struct {
	To       string
	Subject  string
	HTMLBody string
}

// MailSender dispatches a notification email. A nil error means the
// provider accepted the message.
type MailSender interface {
	Send(ctx context.Context, mail OutboundMail) error
}
