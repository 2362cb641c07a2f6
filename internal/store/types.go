package store

// Patient lifecycle statuses. Intake creates patients as pending; the
// approval workflow moves them to confirmed or cancelled.
const (
	PatientConfirmed = "confirmed"
	PatientPending   = "pending"
	PatientCancelled = "cancelled"
)

// Risk levels as rendered by the UI.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// Appointment statuses.
const (
	ApptPending    = "pending"
	ApptConfirmed  = "confirmed"
	ApptCancelled  = "cancelled"
	ApptInProgress = "in-progress"
	ApptCompleted  = "completed"
)

// Treatment plan statuses.
const (
	PlanProposing = "proposing"
	PlanActive    = "active"
	PlanRejected  = "rejected"
)

// Invoice statuses. Manual billing uses Paid/Pending; invoices minted by
// the automation engine carry the literal "unpaid" the desktop console
// renders as awaiting-collection. All three appear on the wire.
const (
	InvoicePaid    = "Paid"
	InvoicePending = "Pending"
	InvoiceUnpaid  = "unpaid"
)

// Imaging capture modes.
const (
	ImageIntraoral = "Intraoral"
	ImageExtraoral = "Extraoral"
	ImageXRay      = "X-Ray"
)

// Lab order statuses.
const (
	LabOrderPlaced  = "placed"
	LabOrderShipped = "shipped"
)

type Patient struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Phone     string `json:"phone"`
	Gender    string `json:"gender"`
	LastVisit string `json:"lastVisit"`
	Status    string `json:"status"`
	Risk      string `json:"risk"`
}

type Appointment struct {
	ID        string `json:"id"`
	PatientID string `json:"patientId"`
	Patient   string `json:"patient"`
	Type      string `json:"type"`
	Time      string `json:"time"`
	Date      string `json:"date"`
	Status    string `json:"status"`
}

// MedicalRecord is created once per visit and is immutable afterwards
// except through an explicit edit. Creation (and only creation) feeds the
// automation engine.
type MedicalRecord struct {
	ID            string `json:"id"`
	PatientID     string `json:"patientId"`
	SessionID     string `json:"sessionId,omitempty"`
	Date          string `json:"date"`
	Type          string `json:"type"`
	Doctor        string `json:"dr"`
	CC            string `json:"cc"`
	DX            string `json:"dx"`
	Plan          string `json:"plan"`
	AffectedTeeth []int  `json:"affectedTeeth,omitempty"`
	HasImages     bool   `json:"images"`
}

type PlanItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Teeth     []int  `json:"teeth,omitempty"`
	Cost      int64  `json:"cost"`
}

type TreatmentPlan struct {
	ID        string     `json:"id"`
	PatientID string     `json:"patientId"`
	Title     string     `json:"title"`
	Status    string     `json:"status"`
	Items     []PlanItem `json:"items"`
	CreatedAt string     `json:"createdAt,omitempty"`
}

// Total is the displayed plan cost. It is recomputed on read, never
// persisted, so it cannot drift from the item costs.
func (p TreatmentPlan) Total() int64 {
	var sum int64
	for _, it := range p.Items {
		sum += it.Cost
	}
	return sum
}

type InvoiceLine struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

type Invoice struct {
	ID        string        `json:"id"`
	PatientID string        `json:"patientId"`
	Amount    int64         `json:"amount"`
	Status    string        `json:"status"`
	Category  string        `json:"category"`
	Date      string        `json:"date"`
	Items     []InvoiceLine `json:"items,omitempty"`
}

type InventoryItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Stock    int    `json:"stock"`
	MinStock int    `json:"minStock"`
	Unit     string `json:"unit"`
	Batch    string `json:"batch"`
}

type PerioTooth struct {
	Tooth int  `json:"tooth"`
	PD    int  `json:"pd"`  // probing depth, mm
	BOP   bool `json:"bop"` // bleeding on probing
}

type PerioExam struct {
	ID        string       `json:"id"`
	PatientID string       `json:"patientId"`
	Date      string       `json:"date"`
	Teeth     []PerioTooth `json:"teeth"`
}

type Image struct {
	ID        string `json:"id"`
	PatientID string `json:"patientId"`
	Type      string `json:"type"` // Intraoral, Extraoral, X-Ray
	URL       string `json:"url"`
	Date      string `json:"date"`
	Note      string `json:"note,omitempty"`
}

type ChatMessage struct {
	ID        string `json:"id"`
	PatientID string `json:"patientId"`
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	SentAt    string `json:"sentAt"`
}

// LabOrder tracks work sent to an external dental lab. Orders live on the
// session that placed them; only the shipped event crosses the wire.
type LabOrder struct {
	ID        string `json:"id"`
	PatientID string `json:"patientId"`
	Item      string `json:"item"`
	Lab       string `json:"lab"`
	Status    string `json:"status"`
	PlacedAt  string `json:"placedAt"`
	ShippedAt string `json:"shippedAt,omitempty"`
}
