package store

import (
	"reflect"
	"testing"
)

func TestSnapshotCarriesOnlyNamedSlices(t *testing.T) {
	s := NewSeeded()

	sn := s.Snapshot(SlicePatients, SliceInvoices)
	if sn.Patients == nil || sn.Invoices == nil {
		t.Fatal("named slices should be present")
	}
	if sn.Appointments != nil || sn.MedicalRecords != nil || sn.TreatmentPlans != nil {
		t.Error("unnamed slices should be absent")
	}

	// Unknown names degrade quietly.
	if sn := s.Snapshot("inventory", "bogus"); !sn.IsEmpty() {
		t.Error("unknown slice names should produce an empty snapshot")
	}
}

func TestApplyReplacesWholeSlice(t *testing.T) {
	src := NewSeeded()
	dst := New()
	dst.Update(func(st *State) {
		st.Patients = []Patient{{ID: "LOCAL1", Name: "Only Here"}}
		st.Invoices = []Invoice{{ID: "INV-LOCAL", Amount: 42}}
	})

	dst.Apply(src.Snapshot(SlicePatients))

	dst.View(func(st State) {
		if len(st.Patients) != 5 {
			t.Errorf("patients = %d, want the sender's 5", len(st.Patients))
		}
		for _, p := range st.Patients {
			if p.ID == "LOCAL1" {
				t.Error("local-only patient should be gone: slices replace, they do not merge")
			}
		}
		// Absent slices stay untouched.
		if len(st.Invoices) != 1 || st.Invoices[0].ID != "INV-LOCAL" {
			t.Error("invoices were not in the snapshot and must be untouched")
		}
	})
}

func TestApplyIdempotent(t *testing.T) {
	src := NewSeeded()
	dst := New()

	sn := src.Snapshot(SlicePatients, SliceAppointments, SliceTreatmentPlans)
	dst.Apply(sn)

	var first State
	dst.View(func(st State) { first = st })

	dst.Apply(sn)
	dst.View(func(st State) {
		if !reflect.DeepEqual(st.Patients, first.Patients) ||
			!reflect.DeepEqual(st.Appointments, first.Appointments) ||
			!reflect.DeepEqual(st.TreatmentPlans, first.TreatmentPlans) {
			t.Error("applying the same snapshot twice must be a no-op")
		}
	})
}

func TestApplyEmptySnapshotIsNoop(t *testing.T) {
	s := NewSeeded()
	var before State
	s.View(func(st State) { before = st })

	s.Apply(Snapshot{})

	s.View(func(st State) {
		if !reflect.DeepEqual(st, before) {
			t.Error("empty snapshot must not change state")
		}
	})
}

func TestSnapshotDoesNotAliasLiveState(t *testing.T) {
	s := NewSeeded()
	sn := s.Snapshot(SliceTreatmentPlans)

	s.Update(func(st *State) {
		st.TreatmentPlans[0].Items[0].Teeth = append(st.TreatmentPlans[0].Items[0].Teeth, 11)
		st.TreatmentPlans[0].Status = PlanActive
	})

	plans := *sn.TreatmentPlans
	if plans[0].Status != PlanProposing {
		t.Error("snapshot saw a mutation made after it was taken")
	}
	if got := plans[0].Items[0].Teeth; len(got) != 1 {
		t.Errorf("snapshot teeth = %v, mutation leaked through shared backing array", got)
	}
}
