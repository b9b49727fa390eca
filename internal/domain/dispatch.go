package domain

import "time"

// DispatchID identifies one recorded email dispatch
type DispatchID string

// DispatchStatus represents the outcome of a dispatch attempt
type DispatchStatus string

const (
	DispatchStatusSent   DispatchStatus = "sent"
	DispatchStatusFailed DispatchStatus = "failed"
)

// DispatchRecord is the audit trail entry for one outbound email. Failed
// dispatches are otherwise invisible outside the conversation text, so the
// log is the only place operations can see them.
type DispatchRecord struct {
	ID        DispatchID     `json:"id"`
	To        string         `json:"to"`
	Subject   string         `json:"subject"`
	Status    DispatchStatus `json:"status"`
	Error     string         `json:"error,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// DispatchLog defines the minimum operations to persist the audit trail
type DispatchLog interface {
	AppendDispatch(rec *DispatchRecord) error
	ListDispatches(limit int) ([]*DispatchRecord, error)
}
