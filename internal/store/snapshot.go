package store

// Slice names as they appear on the wire. These are the keys of the
// STATE_UPDATE payload; a snapshot carries only the slices it names.
const (
	SlicePatients       = "patients"
	SliceAppointments   = "appointments"
	SliceInvoices       = "invoices"
	SliceImagingData    = "imagingData"
	SliceMedicalRecords = "medicalRecords"
	SlicePerioRecords   = "perioRecords"
	SliceMessages       = "messages"
	SliceTreatmentPlans = "treatmentPlans"
)

// Snapshot is a full copy of one or more slices. Nil fields are absent
// from the wire payload and are left untouched on merge. There is no
// version number or timestamp; receivers apply snapshots in arrival order.
type Snapshot struct {
	Patients       *[]Patient       `json:"patients,omitempty"`
	Appointments   *[]Appointment   `json:"appointments,omitempty"`
	Invoices       *[]Invoice       `json:"invoices,omitempty"`
	ImagingData    *[]Image         `json:"imagingData,omitempty"`
	MedicalRecords *[]MedicalRecord `json:"medicalRecords,omitempty"`
	PerioRecords   *[]PerioExam     `json:"perioRecords,omitempty"`
	Messages       *[]ChatMessage   `json:"messages,omitempty"`
	TreatmentPlans *[]TreatmentPlan `json:"treatmentPlans,omitempty"`
}

// IsEmpty reports whether no slice is present at all.
func (sn Snapshot) IsEmpty() bool {
	return sn.Patients == nil && sn.Appointments == nil && sn.Invoices == nil &&
		sn.ImagingData == nil && sn.MedicalRecords == nil && sn.PerioRecords == nil &&
		sn.Messages == nil && sn.TreatmentPlans == nil
}

// Snapshot copies the named slices out of the store. Unknown names are
// ignored so a sender built against a newer slice list degrades quietly.
func (s *Store) Snapshot(slices ...string) Snapshot {
	var sn Snapshot
	s.View(func(st State) {
		for _, name := range slices {
			switch name {
			case SlicePatients:
				v := clonePatients(st.Patients)
				sn.Patients = &v
			case SliceAppointments:
				v := cloneAppointments(st.Appointments)
				sn.Appointments = &v
			case SliceInvoices:
				v := cloneInvoices(st.Invoices)
				sn.Invoices = &v
			case SliceImagingData:
				v := cloneImages(st.ImagingData)
				sn.ImagingData = &v
			case SliceMedicalRecords:
				v := cloneRecords(st.MedicalRecords)
				sn.MedicalRecords = &v
			case SlicePerioRecords:
				v := cloneExams(st.PerioRecords)
				sn.PerioRecords = &v
			case SliceMessages:
				v := cloneMessages(st.Messages)
				sn.Messages = &v
			case SliceTreatmentPlans:
				v := clonePlans(st.TreatmentPlans)
				sn.TreatmentPlans = &v
			}
		}
	})
	return sn
}

// Apply merges a snapshot: every slice present replaces the local slice
// wholesale, absent slices stay as they are. Applying the same snapshot
// twice is a no-op the second time, and there is no schema validation of
// the incoming data beyond JSON decoding upstream.
func (s *Store) Apply(sn Snapshot) {
	if sn.IsEmpty() {
		return
	}
	s.Update(func(st *State) {
		if sn.Patients != nil {
			st.Patients = clonePatients(*sn.Patients)
		}
		if sn.Appointments != nil {
			st.Appointments = cloneAppointments(*sn.Appointments)
		}
		if sn.Invoices != nil {
			st.Invoices = cloneInvoices(*sn.Invoices)
		}
		if sn.ImagingData != nil {
			st.ImagingData = cloneImages(*sn.ImagingData)
		}
		if sn.MedicalRecords != nil {
			st.MedicalRecords = cloneRecords(*sn.MedicalRecords)
		}
		if sn.PerioRecords != nil {
			st.PerioRecords = cloneExams(*sn.PerioRecords)
		}
		if sn.Messages != nil {
			st.Messages = cloneMessages(*sn.Messages)
		}
		if sn.TreatmentPlans != nil {
			st.TreatmentPlans = clonePlans(*sn.TreatmentPlans)
		}
	})
}

// Clone helpers. Snapshots must not share backing arrays with the live
// state, otherwise a later local mutation would leak into an already
// published message.

func clonePatients(in []Patient) []Patient {
	out := make([]Patient, len(in))
	copy(out, in)
	return out
}

func cloneAppointments(in []Appointment) []Appointment {
	out := make([]Appointment, len(in))
	copy(out, in)
	return out
}

func cloneInvoices(in []Invoice) []Invoice {
	out := make([]Invoice, len(in))
	for i, inv := range in {
		inv.Items = append([]InvoiceLine(nil), inv.Items...)
		out[i] = inv
	}
	return out
}

func cloneImages(in []Image) []Image {
	out := make([]Image, len(in))
	copy(out, in)
	return out
}

func cloneRecords(in []MedicalRecord) []MedicalRecord {
	out := make([]MedicalRecord, len(in))
	for i, r := range in {
		r.AffectedTeeth = append([]int(nil), r.AffectedTeeth...)
		out[i] = r
	}
	return out
}

func cloneExams(in []PerioExam) []PerioExam {
	out := make([]PerioExam, len(in))
	for i, e := range in {
		e.Teeth = append([]PerioTooth(nil), e.Teeth...)
		out[i] = e
	}
	return out
}

func cloneMessages(in []ChatMessage) []ChatMessage {
	out := make([]ChatMessage, len(in))
	copy(out, in)
	return out
}

func clonePlans(in []TreatmentPlan) []TreatmentPlan {
	out := make([]TreatmentPlan, len(in))
	for i, p := range in {
		items := make([]PlanItem, len(p.Items))
		for j, it := range p.Items {
			it.Teeth = append([]int(nil), it.Teeth...)
			items[j] = it
		}
		p.Items = items
		out[i] = p
	}
	return out
}
