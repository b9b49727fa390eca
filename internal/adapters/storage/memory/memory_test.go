package memory_test

import (
	"errors"
	"testing"
	"time"

	"github.com/parksandresorts/backster-agent/internal/adapters/storage/memory"
	"github.com/parksandresorts/backster-agent/internal/domain"
)

func TestSessionStoreGetMissing(t *testing.T) {
	store := memory.NewSessionStore()
	if _, err := store.Get("missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionStorePutGet(t *testing.T) {
	store := memory.NewSessionStore()
	conv := &domain.Conversation{ID: "sess-1"}
	conv.Append(domain.Turn{ID: "t1", Kind: domain.TurnUser, Text: "Hej"})

	if err := store.Put(conv); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	got, err := store.Get("sess-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != "sess-1" || len(got.Turns) != 1 {
		t.Fatalf("unexpected conversation: %+v", got)
	}
}

func TestDispatchLogNewestFirst(t *testing.T) {
	log := memory.NewDispatchLog()
	for _, id := range []string{"d1", "d2", "d3"} {
		err := log.AppendDispatch(&domain.DispatchRecord{
			ID:        domain.DispatchID(id),
			CreatedAt: time.Now(),
		})
		if err != nil {
			t.Fatalf("AppendDispatch failed: %v", err)
		}
	}

	recs, err := log.ListDispatches(0)
	if err != nil {
		t.Fatalf("ListDispatches failed: %v", err)
	}
	if len(recs) != 3 || recs[0].ID != "d3" || recs[2].ID != "d1" {
		t.Fatalf("expected newest first, got %+v", recs)
	}
}

func TestDispatchLogLimit(t *testing.T) {
	log := memory.NewDispatchLog()
	for _, id := range []string{"d1", "d2", "d3"} {
		if err := log.AppendDispatch(&domain.DispatchRecord{ID: domain.DispatchID(id)}); err != nil {
			t.Fatalf("AppendDispatch failed: %v", err)
		}
	}

	recs, err := log.ListDispatches(2)
	if err != nil {
		t.Fatalf("ListDispatches failed: %v", err)
	}
	if len(recs) != 2 || recs[0].ID != "d3" || recs[1].ID != "d2" {
		t.Fatalf("limit not honored newest first: %+v", recs)
	}
}
