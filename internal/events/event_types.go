package events

import (
	"time"

	"github.com/supporthub/helpdesk/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated       EventType = "ticket_created"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventTicketSnoozed       EventType = "ticket_snoozed"
	EventCannedAdded         EventType = "canned_added"
	EventCannedDeleted       EventType = "canned_deleted"
	EventPlanChanged         EventType = "plan_changed"
	EventDraftSaved          EventType = "draft_saved"
	EventSettingsUpdated     EventType = "settings_updated"
)

// Event represents a domain event emitted by the engines.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	TicketID string                `json:"ticket_id"`
	Subject  string                `json:"subject"`
	Customer string                `json:"customer"`
	Priority domain.TicketPriority `json:"priority"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	TicketIDs []string            `json:"ticket_ids"`
	NewStatus domain.TicketStatus `json:"new_status"`
}

// TicketSnoozedPayload payload.
type TicketSnoozedPayload struct {
	TicketIDs []string  `json:"ticket_ids"`
	DueAt     time.Time `json:"due_at"`
}

// CannedAddedPayload payload.
type CannedAddedPayload struct {
	CannedID string `json:"canned_id"`
	Shortcut string `json:"shortcut"`
}

// CannedDeletedPayload payload.
type CannedDeletedPayload struct {
	CannedID string `json:"canned_id"`
}

// PlanChangedPayload payload.
type PlanChangedPayload struct {
	OldPlan domain.Plan `json:"old_plan"`
	NewPlan domain.Plan `json:"new_plan"`
}
