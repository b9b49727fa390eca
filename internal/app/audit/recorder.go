package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/parksandresorts/backster-agent/internal/domain"
	"github.com/parksandresorts/backster-agent/internal/observability"
)

// RecordingSender wraps a MailSender and records every dispatch attempt in
// a DispatchLog. Handlers collapse failures into a generic apology, so the
// log is the only trace a failed email leaves behind.
type RecordingSender struct {
	next domain.MailSender
	log  domain.DispatchLog
	now  func() time.Time
}

func NewRecordingSender(next domain.MailSender, log domain.DispatchLog) *RecordingSender {
	return &RecordingSender{
		next: next,
		log:  log,
		now:  time.Now,
	}
}

func (s *RecordingSender) Send(ctx context.Context, mail domain.OutboundMail) error {
	err := s.next.Send(ctx, mail)

	rec := &domain.DispatchRecord{
		ID:        domain.DispatchID(uuid.NewString()),
		To:        mail.To,
		Subject:   mail.Subject,
		Status:    domain.DispatchStatusSent,
		CreatedAt: s.now(),
	}
	if err != nil {
		rec.Status = domain.DispatchStatusFailed
		rec.Error = err.Error()
	}
	observability.MailDispatches.WithLabelValues(string(rec.Status)).Inc()

	// The audit trail never blocks the dispatch outcome.
	if logErr := s.log.AppendDispatch(rec); logErr != nil {
		observability.LoggerFromContext(ctx).Error("failed to record dispatch", "error", logErr)
	}

	return err
}
