package patient

import (
	"context"
	"fmt"
	"time"

	"github.com/nyaruka/phonenumbers"

	"github.com/flttx/medi-manage-platform-sub000/internal/replication"
	"github.com/flttx/medi-manage-platform-sub000/internal/store"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Name   string
	Age    int
	Phone  string
	Gender string
}

type ListRequest struct {
	Status *string
	Risk   *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, req ListRequest) ([]store.Patient, error)
	GetByID(ctx context.Context, patientID string) (store.Patient, error)
	Create(ctx context.Context, req CreateRequest) (store.Patient, error)
	SetStatus(ctx context.Context, patientID, status string) error
	SetRisk(ctx context.Context, patientID, risk string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	store       *store.Store
	repl        *replication.Replicator
	phoneRegion string
}

func New(st *store.Store, repl *replication.Replicator, phoneRegion string) Service {
	if phoneRegion == "" {
		phoneRegion = "CN"
	}
	return &patientService{store: st, repl: repl, phoneRegion: phoneRegion}
}

func (s *patientService) List(_ context.Context, req ListRequest) ([]store.Patient, error) {
	var out []store.Patient
	s.store.View(func(st store.State) {
		for _, p := range st.Patients {
			if req.Status != nil && p.Status != *req.Status {
				continue
			}
			if req.Risk != nil && p.Risk != *req.Risk {
				continue
			}
			out = append(out, p)
		}
	})
	return out, nil
}

func (s *patientService) GetByID(_ context.Context, patientID string) (store.Patient, error) {
	p, ok := s.store.FindPatient(patientID)
	if !ok {
		return store.Patient{}, ErrNotFound
	}
	return p, nil
}

func (s *patientService) Create(ctx context.Context, req CreateRequest) (store.Patient, error) {
	if req.Name == "" {
		return store.Patient{}, ErrNameRequired
	}

	num, err := phonenumbers.Parse(req.Phone, s.phoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return store.Patient{}, ErrInvalidPhone
	}

	p := store.Patient{
		Name:      req.Name,
		Age:       req.Age,
		Phone:     req.Phone,
		Gender:    req.Gender,
		LastVisit: time.Now().Format("2006.01.02"),
		Status:    store.PatientPending,
		Risk:      store.RiskLow,
	}

	s.store.Update(func(st *store.State) {
		p.ID = mintPatientID(st.Patients)
		st.Patients = append(st.Patients, p)
	})

	s.repl.Broadcast(ctx, store.SlicePatients)
	return p, nil
}

func (s *patientService) SetStatus(ctx context.Context, patientID, status string) error {
	switch status {
	case store.PatientConfirmed, store.PatientPending, store.PatientCancelled:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if err := s.mutate(patientID, func(p *store.Patient) { p.Status = status }); err != nil {
		return err
	}
	s.repl.Broadcast(ctx, store.SlicePatients)
	return nil
}

func (s *patientService) SetRisk(ctx context.Context, patientID, risk string) error {
	switch risk {
	case store.RiskLow, store.RiskMedium, store.RiskHigh:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidRisk, risk)
	}

	if err := s.mutate(patientID, func(p *store.Patient) { p.Risk = risk }); err != nil {
		return err
	}
	s.repl.Broadcast(ctx, store.SlicePatients)
	return nil
}

func (s *patientService) mutate(patientID string, fn func(*store.Patient)) error {
	found := false
	s.store.Update(func(st *store.State) {
		for i := range st.Patients {
			if st.Patients[i].ID == patientID {
				fn(&st.Patients[i])
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

// mintPatientID continues the clinic's P<year><seq> numbering. It runs
// under the store write lock so the count is stable while we mint.
func mintPatientID(patients []store.Patient) string {
	return fmt.Sprintf("P%s%03d", time.Now().Format("2006"), len(patients)+1)
}
