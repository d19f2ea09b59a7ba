// Package worker wires background-style subscribers onto the event
// dispatcher. Handlers run synchronously; there is no real background task in
// this engine.
package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/supporthub/helpdesk/internal/events"
)

// StartAuditLog subscribes a structured-log handler for every engine event,
// producing an audit trail of mutations.
func StartAuditLog(dispatcher events.Dispatcher, logger *zap.Logger) {
	if dispatcher == nil {
		return
	}
	for _, eventType := range []events.EventType{
		events.EventTicketCreated,
		events.EventTicketStatusChanged,
		events.EventTicketSnoozed,
		events.EventCannedAdded,
		events.EventCannedDeleted,
		events.EventPlanChanged,
		events.EventDraftSaved,
		events.EventSettingsUpdated,
	} {
		dispatcher.Subscribe(eventType, auditHandler(logger))
	}
}

func auditHandler(logger *zap.Logger) events.EventHandler {
	return func(ctx context.Context, event events.Event) error {
		logger.Info("audit",
			zap.String("event", string(event.Type)),
			zap.String("event_id", event.ID),
			zap.Time("at", event.Timestamp),
			zap.Any("payload", event.Payload))
		return nil
	}
}
