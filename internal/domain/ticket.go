package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen    TicketStatus = "Open"
	TicketStatusPending TicketStatus = "Pending"
	TicketStatusClosed  TicketStatus = "Closed"
	TicketStatusSnoozed TicketStatus = "Snoozed"
)

// TicketPriority enumerates SLA urgency.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "Low"
	TicketPriorityMedium TicketPriority = "Medium"
	TicketPriorityHigh   TicketPriority = "High"
	TicketPriorityUrgent TicketPriority = "Urgent"
)

// PriorityRank maps a priority to its sort weight. Unknown values rank 0 and
// sort first in ascending order.
func PriorityRank(p TicketPriority) int {
	switch p {
	case TicketPriorityLow:
		return 1
	case TicketPriorityMedium:
		return 2
	case TicketPriorityHigh:
		return 3
	case TicketPriorityUrgent:
		return 4
	default:
		return 0
	}
}

// Message is one entry in a ticket's conversation thread.
type Message struct {
	From string    `json:"from"`
	Body string    `json:"body"`
	At   time.Time `json:"at"`
}

// Ticket is the aggregate for support requests.
type Ticket struct {
	ID       string         `json:"id"`
	Subject  string         `json:"subject"`
	Customer string         `json:"customer"`
	Priority TicketPriority `json:"priority"`
	Tags     []string       `json:"tags"`
	Status   TicketStatus   `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DueAt     time.Time `json:"dueAt"`

	Starred bool `json:"starred"`

	// AssignedTo is a weak reference to a User id. It is never validated
	// against the user list; a dangling id is tolerated.
	AssignedTo string `json:"assignedTo,omitempty"`

	Messages []Message `json:"messages"`

	// FirstReplyMins is a synthetic first-response latency assigned once at
	// creation, not a measured value.
	FirstReplyMins int `json:"firstReplyMins"`
}
