// Package store holds the shared clinical dataset for one session. Every
// session owns its own Store; cross-session consistency is eventual and
// flows exclusively through snapshot replication over the bus.
package store

import "sync"

// State is the full set of slices a session holds in memory. Inventory and
// lab orders are session-local and never replicated; every other slice can
// travel in a Snapshot.
type State struct {
	Patients       []Patient
	Appointments   []Appointment
	MedicalRecords []MedicalRecord
	TreatmentPlans []TreatmentPlan
	Invoices       []Invoice
	Inventory      []InventoryItem
	PerioRecords   []PerioExam
	ImagingData    []Image
	Messages       []ChatMessage
	LabOrders      []LabOrder
}

// Store guards State for concurrent access. Local mutations happen on the
// session's own goroutines while bus deliveries arrive on transport
// callbacks, so a lock is required even though each UI loop is serial.
type Store struct {
	mu    sync.RWMutex
	state State
}

func New() *Store {
	return &Store{}
}

// NewSeeded returns a store preloaded with the demo dataset.
func NewSeeded() *Store {
	s := New()
	s.Update(func(st *State) { *st = Seed() })
	return s
}

// View runs fn under the read lock. fn must not retain references to the
// slices after it returns.
func (s *Store) View(fn func(State)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.state)
}

// Update runs fn under the write lock. All local mutations go through
// here, which gives read-your-writes within the session for free.
func (s *Store) Update(fn func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

// FindPatient returns a copy of the patient with the given id.
func (s *Store) FindPatient(id string) (Patient, bool) {
	var (
		p  Patient
		ok bool
	)
	s.View(func(st State) {
		for _, c := range st.Patients {
			if c.ID == id {
				p, ok = c, true
				return
			}
		}
	})
	return p, ok
}
