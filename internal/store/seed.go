package store

// Seed returns the demo dataset every session starts from. The ids are
// stable business ids so the three terminals agree on them before the
// first snapshot exchange.
func Seed() State {
	return State{
		Patients: []Patient{
			{ID: "P2026001", Name: "Lily Smith", Age: 32, Phone: "13511112222", Gender: "female", LastVisit: "2026.02.01", Status: PatientConfirmed, Risk: RiskLow},
			{ID: "P2026002", Name: "Michael Chen", Age: 45, Phone: "13611112222", Gender: "male", LastVisit: "2026.01.28", Status: PatientPending, Risk: RiskHigh},
			{ID: "P2026003", Name: "Emma Wilson", Age: 28, Phone: "13711112222", Gender: "female", LastVisit: "2026.02.03", Status: PatientConfirmed, Risk: RiskLow},
			{ID: "P2026004", Name: "David Zhang", Age: 38, Phone: "13811112222", Gender: "male", LastVisit: "2026.01.15", Status: PatientCancelled, Risk: RiskMedium},
			{ID: "P2026005", Name: "Sarah Lee", Age: 24, Phone: "13911112222", Gender: "female", LastVisit: "2026.02.04", Status: PatientConfirmed, Risk: RiskLow},
		},
		Appointments: []Appointment{
			{ID: "A001", PatientID: "P2026001", Patient: "Lily Smith", Type: "Extraction", Time: "09:00", Date: "2026-02-04", Status: ApptConfirmed},
			{ID: "A002", PatientID: "P2026002", Patient: "Michael Chen", Type: "Checkup", Time: "10:30", Date: "2026-02-04", Status: ApptPending},
			{ID: "A003", PatientID: "P2026003", Patient: "Emma Wilson", Type: "Cleaning", Time: "11:15", Date: "2026-02-04", Status: ApptConfirmed},
			{ID: "A004", PatientID: "P2026004", Patient: "David Zhang", Type: "Root Canal", Time: "14:00", Date: "2026-02-04", Status: ApptConfirmed},
			{ID: "A005", PatientID: "P2026005", Patient: "Sarah Lee", Type: "Consult", Time: "15:30", Date: "2026-02-04", Status: ApptPending},
		},
		MedicalRecords: []MedicalRecord{
			{
				ID: "R001", PatientID: "P2026001", Date: "2026.02.03",
				Type: "Routine Checkup", Doctor: "Sterling",
				CC:   "Toothache on the left side, sensitive to cold.",
				DX:   "K04.0 Irreversible pulpitis on 36",
				Plan: "Root Canal Treatment", HasImages: true,
			},
			{
				ID: "R002", PatientID: "P2026001", Date: "2026.01.15",
				Type: "Consultation", Doctor: "Sterling",
				CC:   "Routine check-up, requested scaling.",
				DX:   "Mild gingivitis, deep caries on 36 found",
				Plan: "Scaling & Full Exams", HasImages: false,
			},
		},
		TreatmentPlans: []TreatmentPlan{
			{
				ID: "T001", PatientID: "P2026001", Title: "Endodontic Treatment 36",
				Status:    PlanProposing,
				CreatedAt: "2026.02.03",
				Items: []PlanItem{
					{ID: "T001-1", Name: "Root Canal Treatment", UnitPrice: 3500, Teeth: []int{36}, Cost: 3500},
					{ID: "T001-2", Name: "Zirconia Crown", UnitPrice: 4000, Teeth: []int{36}, Cost: 4000},
				},
			},
		},
		Invoices: []Invoice{
			{
				ID: "INV-20260115-001", PatientID: "P2026001", Amount: 600,
				Status: InvoicePaid, Category: "Consultation", Date: "2026.01.15",
				Items: []InvoiceLine{{Label: "Consultation & Scaling", Amount: 600}},
			},
		},
		Inventory: []InventoryItem{
			{ID: "I001", Name: "Zirconia Block (A2)", Category: "CAD/CAM", Stock: 12, MinStock: 5, Unit: "block", Batch: "ZB-2025001"},
			{ID: "I002", Name: "Zirconia Block (A3)", Category: "CAD/CAM", Stock: 3, MinStock: 5, Unit: "block", Batch: "ZB-2025002"},
			{ID: "I003", Name: "Implant Post (Straumann)", Category: "Implant", Stock: 8, MinStock: 2, Unit: "piece", Batch: "IMP-ST-992"},
			{ID: "I004", Name: "Lidocaine", Category: "Anesthetics", Stock: 45, MinStock: 20, Unit: "ampule", Batch: "LIDO-009"},
			{ID: "I005", Name: "Nitrile Gloves (M)", Category: "Consumables", Stock: 1500, MinStock: 500, Unit: "pair", Batch: "GLV-M-88"},
		},
	}
}
