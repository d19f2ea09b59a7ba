// Package query filters and sorts collections for display. It never mutates
// its inputs.
package query

import (
	"sort"
	"strings"

	"github.com/supporthub/helpdesk/internal/domain"
)

// Sort keys and directions.
const (
	SortByPriority  = "priority"
	SortByDueAt     = "dueAt"
	SortByUpdatedAt = "updatedAt"

	DirAsc  = "asc"
	DirDesc = "desc"
)

// Query selects tickets for display. Empty fields impose no constraint; the
// three predicates are ANDed.
type Query struct {
	Text     string
	Status   domain.TicketStatus
	Priority domain.TicketPriority
}

// Filter returns the tickets matching the query, preserving input order. Text
// matches case-insensitively against subject, customer, and tags.
func Filter(tickets []domain.Ticket, q Query) []domain.Ticket {
	text := strings.ToLower(q.Text)
	out := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if text != "" {
			hay := strings.ToLower(t.Subject + " " + t.Customer + " " + strings.Join(t.Tags, " "))
			if !strings.Contains(hay, text) {
				continue
			}
		}
		if q.Status != "" && t.Status != q.Status {
			continue
		}
		if q.Priority != "" && t.Priority != q.Priority {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Sort orders a copy of the tickets by the given key and direction. Ties keep
// their relative input order. An unrecognized key returns the input order
// unchanged, which is defined behavior rather than an error.
func Sort(tickets []domain.Ticket, key, direction string) []domain.Ticket {
	out := make([]domain.Ticket, len(tickets))
	copy(out, tickets)

	var less func(a, b domain.Ticket) bool
	switch key {
	case SortByPriority:
		less = func(a, b domain.Ticket) bool {
			return domain.PriorityRank(a.Priority) < domain.PriorityRank(b.Priority)
		}
	case SortByDueAt:
		less = func(a, b domain.Ticket) bool { return a.DueAt.Before(b.DueAt) }
	case SortByUpdatedAt:
		less = func(a, b domain.Ticket) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	default:
		return out
	}

	desc := direction == DirDesc
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// SearchInbox returns the messages whose subject, sender, recipient, or body
// contains the text, case-insensitively. Empty text matches everything.
func SearchInbox(messages []domain.InboxMessage, text string) []domain.InboxMessage {
	needle := strings.ToLower(text)
	out := make([]domain.InboxMessage, 0, len(messages))
	for _, m := range messages {
		hay := strings.ToLower(m.Subject + " " + m.From + " " + m.To + " " + m.Body)
		if needle != "" && !strings.Contains(hay, needle) {
			continue
		}
		out = append(out, m)
	}
	return out
}
