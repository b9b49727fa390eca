package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/parksandresorts/backster-agent/internal/domain"
)

type Store struct {
	client *firestore.Client
}

// NewStore creates a Firestore store.
// Uses the project passed (BACKSTER_GCP_PROJECT).
func NewStore(ctx context.Context, projectID string) (*Store, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID is required for Firestore store")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	return &Store{client: client}, nil
}

// ─────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────

func (s *Store) sessionsCol() *firestore.CollectionRef {
	return s.client.Collection("sessions")
}

func (s *Store) sessionDoc(id domain.SessionID) *firestore.DocumentRef {
	return s.sessionsCol().Doc(string(id))
}

func (s *Store) turnsCol(sessionID domain.SessionID) *firestore.CollectionRef {
	return s.sessionDoc(sessionID).Collection("turns")
}

func (s *Store) dispatchesCol() *firestore.CollectionRef {
	return s.client.Collection("dispatches")
}

// ─────────────────────────────────────────
// Firestore Types
// ─────────────────────────────────────────

type conversationDoc struct {
	Park           string    `firestore:"park"`
	EmploymentType string    `firestore:"employment_type"`
	CurrentDate    string    `firestore:"current_date"`
	CurrentTime    string    `firestore:"current_time"`
	CreatedAt      time.Time `firestore:"created_at"`
	UpdatedAt      time.Time `firestore:"updated_at"`
}

type callDoc struct {
	ID   string         `firestore:"id"`
	Name string         `firestore:"name"`
	Args map[string]any `firestore:"args"`
}

type citationDoc struct {
	Source          string `firestore:"source"`
	OriginalContent string `firestore:"original_content"`
}

type resultDoc struct {
	CallID    string        `firestore:"call_id"`
	Name      string        `firestore:"name"`
	Content   string        `firestore:"content"`
	Citations []citationDoc `firestore:"citations"`
}

type turnDoc struct {
	Seq       int        `firestore:"seq"`
	Kind      string     `firestore:"kind"`
	Text      string     `firestore:"text"`
	Calls     []callDoc  `firestore:"calls"`
	Result    *resultDoc `firestore:"result"`
	CreatedAt time.Time  `firestore:"created_at"`
}

type dispatchDoc struct {
	To        string    `firestore:"to"`
	Subject   string    `firestore:"subject"`
	Status    string    `firestore:"status"`
	Error     string    `firestore:"error"`
	CreatedAt time.Time `firestore:"created_at"`
}

// ─────────────────────────────────────────
// SessionStore implementation
// ─────────────────────────────────────────

func (s *Store) Get(id domain.SessionID) (*domain.Conversation, error) {
	ctx := context.Background()

	snap, err := s.sessionDoc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("firestore Get session: %w", err)
	}

	var doc conversationDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("firestore Get session decode: %w", err)
	}

	turns, err := s.loadTurns(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.Conversation{
		ID: id,
		Context: domain.SessionContext{
			Park:           domain.Park(doc.Park),
			EmploymentType: domain.EmploymentType(doc.EmploymentType),
			CurrentDate:    doc.CurrentDate,
			CurrentTime:    doc.CurrentTime,
		},
		Turns:     turns,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

func (s *Store) Put(conv *domain.Conversation) error {
	ctx := context.Background()

	doc := conversationDoc{
		Park:           string(conv.Context.Park),
		EmploymentType: string(conv.Context.EmploymentType),
		CurrentDate:    conv.Context.CurrentDate,
		CurrentTime:    conv.Context.CurrentTime,
		CreatedAt:      conv.CreatedAt,
		UpdatedAt:      conv.UpdatedAt,
	}

	if _, err := s.sessionDoc(conv.ID).Set(ctx, doc); err != nil {
		return fmt.Errorf("firestore Put session: %w", err)
	}

	// Turns are append-only; rewriting by sequence number is idempotent.
	for seq, turn := range conv.Turns {
		td := toTurnDoc(seq, turn)
		docID := fmt.Sprintf("%06d", seq)
		if _, err := s.turnsCol(conv.ID).Doc(docID).Set(ctx, td); err != nil {
			return fmt.Errorf("firestore Put turn %d: %w", seq, err)
		}
	}
	return nil
}

func (s *Store) loadTurns(ctx context.Context, id domain.SessionID) ([]domain.Turn, error) {
	iter := s.turnsCol(id).OrderBy("seq", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var out []domain.Turn
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, fmt.Errorf("firestore loadTurns: %w", err)
		}

		var doc turnDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode turnDoc: %w", err)
		}

		out = append(out, fromTurnDoc(snap.Ref.ID, doc))
	}
	return out, nil
}

func toTurnDoc(seq int, turn domain.Turn) turnDoc {
	td := turnDoc{
		Seq:       seq,
		Kind:      string(turn.Kind),
		Text:      turn.Text,
		CreatedAt: turn.CreatedAt,
	}
	for _, c := range turn.Calls {
		td.Calls = append(td.Calls, callDoc{
			ID:   string(c.ID),
			Name: c.Name,
			Args: c.Args,
		})
	}
	if turn.Result != nil {
		rd := &resultDoc{
			CallID:  string(turn.Result.CallID),
			Name:    turn.Result.Name,
			Content: turn.Result.Content,
		}
		for _, cit := range turn.Result.Citations {
			rd.Citations = append(rd.Citations, citationDoc{
				Source:          cit.Source,
				OriginalContent: cit.OriginalContent,
			})
		}
		td.Result = rd
	}
	return td
}

func fromTurnDoc(id string, doc turnDoc) domain.Turn {
	turn := domain.Turn{
		ID:        domain.TurnID(id),
		Kind:      domain.TurnKind(doc.Kind),
		Text:      doc.Text,
		CreatedAt: doc.CreatedAt,
	}
	for _, c := range doc.Calls {
		turn.Calls = append(turn.Calls, domain.CapabilityCall{
			ID:   domain.CallID(c.ID),
			Name: c.Name,
			Args: c.Args,
		})
	}
	if doc.Result != nil {
		res := &domain.CapabilityResult{
			CallID:  domain.CallID(doc.Result.CallID),
			Name:    doc.Result.Name,
			Content: doc.Result.Content,
		}
		for _, cit := range doc.Result.Citations {
			res.Citations = append(res.Citations, domain.Citation{
				Source:          cit.Source,
				OriginalContent: cit.OriginalContent,
			})
		}
		turn.Result = res
	}
	return turn
}

// ─────────────────────────────────────────
// DispatchLog implementation
// ─────────────────────────────────────────

func (s *Store) AppendDispatch(rec *domain.DispatchRecord) error {
	ctx := context.Background()

	doc := dispatchDoc{
		To:        rec.To,
		Subject:   rec.Subject,
		Status:    string(rec.Status),
		Error:     rec.Error,
		CreatedAt: rec.CreatedAt,
	}

	if _, err := s.dispatchesCol().Doc(string(rec.ID)).Set(ctx, doc); err != nil {
		return fmt.Errorf("firestore AppendDispatch: %w", err)
	}
	return nil
}

func (s *Store) ListDispatches(limit int) ([]*domain.DispatchRecord, error) {
	ctx := context.Background()

	q := s.dispatchesCol().OrderBy("created_at", firestore.Desc)
	if limit > 0 {
		q = q.Limit(limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []*domain.DispatchRecord
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, fmt.Errorf("firestore ListDispatches: %w", err)
		}

		var doc dispatchDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode dispatchDoc: %w", err)
		}

		out = append(out, &domain.DispatchRecord{
			ID:        domain.DispatchID(snap.Ref.ID),
			To:        doc.To,
			Subject:   doc.Subject,
			Status:    domain.DispatchStatus(doc.Status),
			Error:     doc.Error,
			CreatedAt: doc.CreatedAt,
		})
	}
	return out, nil
}
