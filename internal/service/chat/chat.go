package chat

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/flttx/medi-manage-platform-sub000/internal/replication"
	"github.com/flttx/medi-manage-platform-sub000/internal/store"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SendRequest struct {
	PatientID string
	Sender    string
	Text      string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	History(ctx context.Context, patientID string) ([]store.ChatMessage, error)
	Send(ctx context.Context, req SendRequest) (store.ChatMessage, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type chatService struct {
	store *store.Store
	repl  *replication.Replicator
}

func New(st *store.Store, repl *replication.Replicator) Service {
	return &chatService{store: st, repl: repl}
}

func (s *chatService) History(_ context.Context, patientID string) ([]store.ChatMessage, error) {
	var out []store.ChatMessage
	s.store.View(func(st store.State) {
		for _, m := range st.Messages {
			if patientID == "" || m.PatientID == patientID {
				out = append(out, m)
			}
		}
	})
	return out, nil
}

func (s *chatService) Send(ctx context.Context, req SendRequest) (store.ChatMessage, error) {
	if _, ok := s.store.FindPatient(req.PatientID); !ok {
		return store.ChatMessage{}, ErrPatientNotFound
	}
	if req.Text == "" {
		return store.ChatMessage{}, ErrEmptyMessage
	}

	msg := store.ChatMessage{
		ID:        uuid.NewString(),
		PatientID: req.PatientID,
		Sender:    req.Sender,
		Text:      req.Text,
		SentAt:    time.Now().Format(time.RFC3339),
	}

	s.store.Update(func(st *store.State) {
		st.Messages = append(st.Messages, msg)
	})

	s.repl.Broadcast(ctx, store.SliceMessages)
	return msg, nil
}
