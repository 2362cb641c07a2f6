package appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/flttx/medi-manage-platform-sub000/internal/replication"
	"github.com/flttx/medi-manage-platform-sub000/internal/store"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type BookRequest struct {
	PatientID string
	Type      string
	Time      string // "15:04"
	Date      string // "2006-01-02"
}

type ListRequest struct {
	PatientID *string
	Status    *string
	Date      *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, req ListRequest) ([]store.Appointment, error)
	GetByID(ctx context.Context, apptID string) (store.Appointment, error)
	Book(ctx context.Context, req BookRequest) (store.Appointment, error)
	SetStatus(ctx context.Context, apptID, status string) error
	// StartVisit and FinishVisit are the practitioner terminal's session
	// flow: in-progress on open, completed on close.
	StartVisit(ctx context.Context, apptID string) error
	FinishVisit(ctx context.Context, apptID string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	store *store.Store
	repl  *replication.Replicator
}

func New(st *store.Store, repl *replication.Replicator) Service {
	return &appointmentService{store: st, repl: repl}
}

func (s *appointmentService) List(_ context.Context, req ListRequest) ([]store.Appointment, error) {
	var out []store.Appointment
	s.store.View(func(st store.State) {
		for _, a := range st.Appointments {
			if req.PatientID != nil && a.PatientID != *req.PatientID {
				continue
			}
			if req.Status != nil && a.Status != *req.Status {
				continue
			}
			if req.Date != nil && a.Date != *req.Date {
				continue
			}
			out = append(out, a)
		}
	})
	return out, nil
}

func (s *appointmentService) GetByID(_ context.Context, apptID string) (store.Appointment, error) {
	var (
		appt store.Appointment
		ok   bool
	)
	s.store.View(func(st store.State) {
		for _, a := range st.Appointments {
			if a.ID == apptID {
				appt, ok = a, true
				return
			}
		}
	})
	if !ok {
		return store.Appointment{}, ErrNotFound
	}
	return appt, nil
}

func (s *appointmentService) Book(ctx context.Context, req BookRequest) (store.Appointment, error) {
	p, ok := s.store.FindPatient(req.PatientID)
	if !ok {
		return store.Appointment{}, ErrPatientNotFound
	}

	appt := store.Appointment{
		ID:        uuid.NewString(),
		PatientID: p.ID,
		Patient:   p.Name,
		Type:      req.Type,
		Time:      req.Time,
		Date:      req.Date,
		Status:    store.ApptPending,
	}

	s.store.Update(func(st *store.State) {
		st.Appointments = append(st.Appointments, appt)
	})

	s.repl.Broadcast(ctx, store.SliceAppointments)
	return appt, nil
}

func (s *appointmentService) SetStatus(ctx context.Context, apptID, status string) error {
	switch status {
	case store.ApptPending, store.ApptConfirmed, store.ApptCancelled,
		store.ApptInProgress, store.ApptCompleted:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if err := s.mutate(apptID, func(a *store.Appointment) { a.Status = status }); err != nil {
		return err
	}
	s.repl.Broadcast(ctx, store.SliceAppointments)
	return nil
}

func (s *appointmentService) StartVisit(ctx context.Context, apptID string) error {
	return s.SetStatus(ctx, apptID, store.ApptInProgress)
}

func (s *appointmentService) FinishVisit(ctx context.Context, apptID string) error {
	return s.SetStatus(ctx, apptID, store.ApptCompleted)
}

func (s *appointmentService) mutate(apptID string, fn func(*store.Appointment)) error {
	found := false
	s.store.Update(func(st *store.State) {
		for i := range st.Appointments {
			if st.Appointments[i].ID == apptID {
				fn(&st.Appointments[i])
				found = true
				return
			}
		}
	})
	if !found {
		return ErrNotFound
	}
	return nil
}
