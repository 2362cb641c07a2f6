// Package bus is the origin-local broadcast channel tying the sessions
// together. It carries exactly two message kinds: whole-slice state
// snapshots and ephemeral notification events. Delivery is best effort —
// there are no acknowledgements, no ordering across publishers, and the
// sender hears its own broadcasts.
package bus

import (
	"context"

	"github.com/flttx/medi-manage-platform-sub000/internal/store"
)

// Wire-level message types.
const (
	MsgStateUpdate = "STATE_UPDATE"
	MsgNotify      = "NOTIFY_DESKTOP"
)

// Notification event kinds, keyed by the Event field of the envelope.
const (
	EventRecordSaved     = "RECORD_SAVED"
	EventImageCaptured   = "IMAGE_CAPTURED"
	EventPlanProposed    = "PLAN_PROPOSED"
	EventPlanApproved    = "PLAN_APPROVED"
	EventLabOrderShipped = "LAB_ORDER_SHIPPED"
)

// Event is the free-form notification payload. Which fields are set
// depends on Kind; receivers must tolerate missing fields.
type Event struct {
	Kind       string `json:"event,omitempty"`
	Patient    string `json:"patient,omitempty"`
	PlanID     string `json:"planId,omitempty"`
	RecordType string `json:"recordType,omitempty"`
	URL        string `json:"url,omitempty"`
	OrderID    string `json:"orderId,omitempty"`
	Text       string `json:"text,omitempty"`
}

// Message is the single envelope travelling on the channel. For
// STATE_UPDATE only State is set; for NOTIFY_DESKTOP the embedded Event
// fields are set and State is nil.
type Message struct {
	Type  string          `json:"type"`
	State *store.Snapshot `json:"state,omitempty"`
	Event
}

func NewSnapshotMessage(sn store.Snapshot) Message {
	return Message{Type: MsgStateUpdate, State: &sn}
}

func NewEventMessage(ev Event) Message {
	return Message{Type: MsgNotify, Event: ev}
}

// Handler receives every message on the channel, including the
// subscriber's own publishes.
type Handler func(Message)

// Bus abstracts the broadcast transport so the in-process emitter, NATS
// and Redis pub/sub are interchangeable without touching the core. Errors
// from Publish are informational: callers continue on local state when
// the bus is down.
type Bus interface {
	Publish(ctx context.Context, msg Message) error
	Subscribe(h Handler) (unsubscribe func(), err error)
	Close() error
}
