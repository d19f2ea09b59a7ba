package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcherInvokesSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var seen []EventType
	d.Subscribe(EventTicketCreated, func(ctx context.Context, e Event) error {
		seen = append(seen, e.Type)
		return nil
	})
	d.Subscribe(EventTicketCreated, func(ctx context.Context, e Event) error {
		seen = append(seen, e.Type)
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventTicketCreated}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(seen) != 2 {
		t.Errorf("handlers invoked %d times, want 2", len(seen))
	}

	// No subscribers for this type: publish is a no-op.
	if err := d.Publish(context.Background(), Event{Type: EventPlanChanged}); err != nil {
		t.Fatalf("Publish without subscribers: %v", err)
	}
}

func TestDispatcherContinuesPastFailingHandler(t *testing.T) {
	d := NewInMemoryDispatcher()

	invoked := false
	d.Subscribe(EventCannedAdded, func(ctx context.Context, e Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventCannedAdded, func(ctx context.Context, e Event) error {
		invoked = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventCannedAdded}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if !invoked {
		t.Error("a failing handler must not stop the remaining handlers")
	}
}
