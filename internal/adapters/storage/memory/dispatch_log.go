package memory

import (
	"sync"

	"github.com/parksandresorts/backster-agent/internal/domain"
)

type DispatchLog struct {
	mu      sync.RWMutex
	records []*domain.DispatchRecord
}

func NewDispatchLog() *DispatchLog {
	return &DispatchLog{}
}

func (l *DispatchLog) AppendDispatch(rec *domain.DispatchRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append(l.records, rec)
	return nil
}

// ListDispatches returns the most recent records, newest first.
func (l *DispatchLog) ListDispatches(limit int) ([]*domain.DispatchRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []*domain.DispatchRecord
	for i := len(l.records) - 1; i >= 0; i-- {
		out = append(out, l.records[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
