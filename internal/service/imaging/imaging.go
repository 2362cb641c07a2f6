package imaging

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/flttx/medi-manage-platform-sub000/internal/bus"
	"github.com/flttx/medi-manage-platform-sub000/internal/replication"
	"github.com/flttx/medi-manage-platform-sub000/internal/store"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CaptureRequest struct {
	PatientID string
	Type      string
	URL       string
	Note      string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, patientID string) ([]store.Image, error)
	Capture(ctx context.Context, req CaptureRequest) (store.Image, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

var captureModes = map[string]bool{
	store.ImageIntraoral: true,
	store.ImageExtraoral: true,
	store.ImageXRay:      true,
}

type imagingService struct {
	store *store.Store
	repl  *replication.Replicator
}

func New(st *store.Store, repl *replication.Replicator) Service {
	return &imagingService{store: st, repl: repl}
}

func (s *imagingService) List(_ context.Context, patientID string) ([]store.Image, error) {
	var out []store.Image
	s.store.View(func(st store.State) {
		for _, img := range st.ImagingData {
			if patientID == "" || img.PatientID == patientID {
				out = append(out, img)
			}
		}
	})
	return out, nil
}

func (s *imagingService) Capture(ctx context.Context, req CaptureRequest) (store.Image, error) {
	patient, ok := s.store.FindPatient(req.PatientID)
	if !ok {
		return store.Image{}, ErrPatientNotFound
	}
	if !captureModes[req.Type] {
		return store.Image{}, ErrInvalidMode
	}

	img := store.Image{
		ID:        "IMG-" + uuid.NewString()[:8],
		PatientID: req.PatientID,
		Type:      req.Type,
		URL:       req.URL,
		Date:      time.Now().Format("2006.01.02"),
		Note:      req.Note,
	}

	s.store.Update(func(st *store.State) {
		st.ImagingData = append(st.ImagingData, img)
	})

	s.repl.Broadcast(ctx, store.SliceImagingData)
	s.repl.Notify(ctx, bus.Event{
		Kind:       bus.EventImageCaptured,
		Patient:    patient.Name,
		RecordType: img.Type,
		URL:        img.URL,
	})
	return img, nil
}
