package domain

// TurnKind tags the variants of a conversation turn.
type TurnKind string

const (
	TurnUser             TurnKind = "user"
	TurnAssistant        TurnKind = "assistant"
	TurnCapabilityResult TurnKind = "capability_result"
)

// CapabilityCall is the model's request to invoke one capability.
// ID correlates the request with its eventual result turn.
type CapabilityCall struct {
	ID   CallID
	Name string
	Args map[string]any
}

// Citation points back at a knowledge base entry used to answer a question.
type Citation struct {
	Source          string
	OriginalContent string
}

// CapabilityResult is the outcome of one capability invocation. Content is
// always plain text; only lookup_faq attaches citations.
type CapabilityResult struct {
	CallID    CallID
	Name      string
	Content   string
	Citations []Citation
}

// Turn is one unit in a conversation timeline. Exactly one of the variant
// fields is meaningful for a given Kind: Text for user turns, Text and/or
// Calls for assistant turns, Result for capability result turns.
type Turn struct {
	ID        TurnID
	Kind      TurnKind
	Text      string
	Calls     []CapabilityCall
	Result    *CapabilityResult
	CreatedAt Timestamp
}

// SessionContext holds the per-session fields injected into every model
// invocation. CurrentDate and CurrentTime are informational strings.
type SessionContext struct {
	Park           Park
	EmploymentType EmploymentType
	CurrentDate    string
	CurrentTime    string
}

// Conversation is the full state for one session: an append-only turn
// sequence plus the session context. Turns are never reordered or pruned.
type Conversation struct {
	ID        SessionID
	Context   SessionContext
	Turns     []Turn
	CreatedAt Timestamp
	UpdatedAt Timestamp
}

func (c *Conversation) Append(t Turn) {
	c.Turns = append(c.Turns, t)
}
