package bus

import (
	"context"
	"testing"

	"github.com/flttx/medi-manage-platform-sub000/internal/store"
)

func TestInprocDeliversToAllIncludingSender(t *testing.T) {
	b := NewInproc()
	defer b.Close()

	var got [2][]Message
	for i := 0; i < 2; i++ {
		i := i
		if _, err := b.Subscribe(func(m Message) { got[i] = append(got[i], m) }); err != nil {
			t.Fatalf("subscribe %d: %v", i, err)
		}
	}

	ev := Event{Kind: EventRecordSaved, Patient: "Lily Smith", RecordType: "Routine Checkup"}
	if err := b.Publish(context.Background(), NewEventMessage(ev)); err != nil {
		t.Fatalf("publish: %v", err)
	}

	for i := 0; i < 2; i++ {
		if len(got[i]) != 1 {
			t.Fatalf("receiver %d got %d messages, want 1 (sender included)", i, len(got[i]))
		}
		if got[i][0].Type != MsgNotify || got[i][0].Patient != "Lily Smith" {
			t.Errorf("receiver %d got %+v", i, got[i][0])
		}
	}
}

func TestInprocSnapshotDoesNotAliasPublisher(t *testing.T) {
	b := NewInproc()
	defer b.Close()

	var received store.Snapshot
	if _, err := b.Subscribe(func(m Message) {
		if m.State != nil {
			received = *m.State
		}
	}); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	patients := []store.Patient{{ID: "P1", Name: "Before"}}
	sn := store.Snapshot{Patients: &patients}
	if err := b.Publish(context.Background(), NewSnapshotMessage(sn)); err != nil {
		t.Fatalf("publish: %v", err)
	}

	patients[0].Name = "After"
	if received.Patients == nil {
		t.Fatal("snapshot not delivered")
	}
	if (*received.Patients)[0].Name != "Before" {
		t.Error("receiver aliased the publisher's slice")
	}
}

func TestInprocUnsubscribeAndClose(t *testing.T) {
	b := NewInproc()

	count := 0
	unsub, err := b.Subscribe(func(Message) { count++ })
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	msg := NewEventMessage(Event{Kind: EventImageCaptured})
	if err := b.Publish(context.Background(), msg); err != nil {
		t.Fatalf("publish: %v", err)
	}
	unsub()
	if err := b.Publish(context.Background(), msg); err != nil {
		t.Fatalf("publish after unsubscribe: %v", err)
	}
	if count != 1 {
		t.Errorf("handler ran %d times, want 1", count)
	}

	if err := b.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := b.Publish(context.Background(), msg); err == nil {
		t.Error("publish on a closed bus should fail")
	}
}
