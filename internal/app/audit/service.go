package audit

import (
	"context"

	"github.com/parksandresorts/backster-agent/internal/domain"
)

// Service holds the logic of reading the dispatch audit trail
type Service struct {
	store domain.DispatchLog
}

// NewService creates an audit service from a DispatchLog
func NewService(store domain.DispatchLog) *Service {
	return &Service{
		store: store,
	}
}

// RecentDispatches returns the last `limit` dispatch records.
// If limit <= 0, a reasonable default value is used.
func (s *Service) RecentDispatches(ctx context.Context, limit int) ([]*domain.DispatchRecord, error) {
	if s.store == nil {
		return []*domain.DispatchRecord{}, nil
	}

	if limit <= 0 {
		limit = 20
	}

	return s.store.ListDispatches(limit)
}
