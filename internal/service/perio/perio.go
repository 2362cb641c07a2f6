package perio

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

type ToothReading struct {
	Tooth int
	PD    int
	BOP   bool
}

type ExamRequest struct {
	PatientID string
	Teeth     []ToothReading
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, patientID string) ([]store.PerioExam, error)
	// RecordExam stores a charting pass and refreshes the patient's risk
	// grade from the new readings.
	RecordExam(ctx context.Context, req ExamRequest) (store.PerioExam, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type perioService struct {
	store *store.Store
	repl  *replication.Replicator
}

func New(st *store.Store, repl *replication.Replicator) Service {
	return &perioService{store: st, repl: repl}
}

func (s *perioService) List(_ context.Context, patientID string) ([]store.PerioExam, error) {
	var out []store.PerioExam
	s.store.View(func(st store.State) {
		for _, ex := range st.PerioRecords {
			if patientID == "" || ex.PatientID == patientID {
				out = append(out, ex)
			}
		}
	})
	return out, nil
}

func (s *perioService) RecordExam(ctx context.Context, req ExamRequest) (store.PerioExam, error) {
	if _, ok := s.store.FindPatient(req.PatientID); !ok {
		return store.PerioExam{}, ErrPatientNotFound
	}
	if len(req.Teeth) == 0 {
		return store.PerioExam{}, ErrNoReadings
	}

	teeth := make([]store.PerioTooth, 0, len(req.Teeth))
	for _, t := range req.Teeth {
		if t.PD < 0 {
			return store.PerioExam{}, ErrInvalidDepth
		}
		teeth = append(teeth, store.PerioTooth{Tooth: t.Tooth, PD: t.PD, BOP: t.BOP})
	}

	exam := store.PerioExam{
		ID:        "PE-" + uuid.NewString()[:8],
		PatientID: req.PatientID,
		Date:      time.Now().Format("2006.01.02"),
		Teeth:     teeth,
	}
	risk := EvaluateRisk(teeth)

	s.store.Update(func(st *store.State) {
		st.PerioRecords = append(st.PerioRecords, exam)
		for i := range st.Patients {
			if st.Patients[i].ID == req.PatientID {
				st.Patients[i].Risk = risk
				return
			}
		}
	})

	s.repl.Broadcast(ctx, store.SlicePerioRecords, store.SlicePatients)
	return exam, nil
}

// EvaluateRisk grades a charting pass. A pocket deeper than 4mm counts as
// deep; more than 6 deep pockets or more than 12 bleeding sites is high
// risk, more than 2 or more than 4 is medium.
func EvaluateRisk(teeth []store.PerioTooth) string {
	deep, bleeding := 0, 0
	for _, t := range teeth {
		if t.PD > 4 {
			deep++
		}
		if t.BOP {
			bleeding++
		}
	}
	switch {
	case deep > 6 || bleeding > 12:
		return store.RiskHigh
	case deep > 2 || bleeding > 4:
		return store.RiskMedium
	default:
		return store.RiskLow
	}
}
