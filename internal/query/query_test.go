package query

import (
	"testing"
	"time"

	"github.com/supporthub/helpdesk/internal/domain"
)

func ticket(id, subject, customer string, priority domain.TicketPriority, tags ...string) domain.Ticket {
	return domain.Ticket{
		ID:       id,
		Subject:  subject,
		Customer: customer,
		Priority: priority,
		Tags:     tags,
		Status:   domain.TicketStatusOpen,
	}
}

func ids(tickets []domain.Ticket) []string {
	out := make([]string, len(tickets))
	for i, t := range tickets {
		out[i] = t.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterText(t *testing.T) {
	tickets := []domain.Ticket{
		ticket("t1", "Billing issue", "sam@acme.com", domain.TicketPriorityHigh),
		ticket("t2", "Login broken", "lisa@billing.co", domain.TicketPriorityLow),
		ticket("t3", "Feature request", "ceo@start.io", domain.TicketPriorityLow, "billing", "bug"),
		ticket("t4", "Dark mode", "mike@retail.me", domain.TicketPriorityLow),
	}

	got := Filter(tickets, Query{Text: "billing"})
	if !equal(ids(got), []string{"t1", "t2", "t3"}) {
		t.Errorf("Filter(billing) = %v, want subject, customer, and tag matches", ids(got))
	}

	if got := Filter(tickets, Query{Text: "BILLING"}); !equal(ids(got), []string{"t1", "t2", "t3"}) {
		t.Errorf("filter must be case-insensitive, got %v", ids(got))
	}

	if got := Filter(tickets, Query{}); len(got) != 4 {
		t.Errorf("empty query should match everything, got %d", len(got))
	}
}

func TestFilterPredicatesAreANDed(t *testing.T) {
	a := ticket("t1", "Billing issue", "sam@acme.com", domain.TicketPriorityHigh)
	b := ticket("t2", "Billing question", "lisa@blue.co", domain.TicketPriorityLow)
	b.Status = domain.TicketStatusClosed

	got := Filter([]domain.Ticket{a, b}, Query{
		Text:     "billing",
		Status:   domain.TicketStatusClosed,
		Priority: domain.TicketPriorityLow,
	})
	if !equal(ids(got), []string{"t2"}) {
		t.Errorf("ANDed filter = %v, want [t2]", ids(got))
	}

	got = Filter([]domain.Ticket{a, b}, Query{Status: domain.TicketStatusOpen})
	if !equal(ids(got), []string{"t1"}) {
		t.Errorf("status filter = %v, want [t1]", ids(got))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	tickets := []domain.Ticket{
		ticket("t1", "a", "x@y.z", domain.TicketPriorityLow),
		ticket("t2", "b", "x@y.z", domain.TicketPriorityHigh),
	}
	Filter(tickets, Query{Text: "a"})
	if tickets[0].ID != "t1" || tickets[1].ID != "t2" {
		t.Error("Filter must not reorder its input")
	}
}

func TestSortPriorityDesc(t *testing.T) {
	tickets := []domain.Ticket{
		ticket("t1", "a", "x@y.z", domain.TicketPriorityLow),
		ticket("t2", "b", "x@y.z", domain.TicketPriorityUrgent),
		ticket("t3", "c", "x@y.z", domain.TicketPriorityMedium),
	}

	got := Sort(tickets, SortByPriority, DirDesc)
	if !equal(ids(got), []string{"t2", "t3", "t1"}) {
		t.Errorf("priority desc = %v, want [t2 t3 t1]", ids(got))
	}
	if !equal(ids(tickets), []string{"t1", "t2", "t3"}) {
		t.Error("Sort must not mutate its input")
	}
}

func TestSortPriorityStable(t *testing.T) {
	tickets := []domain.Ticket{
		ticket("t1", "a", "x@y.z", domain.TicketPriorityMedium),
		ticket("t2", "b", "x@y.z", domain.TicketPriorityMedium),
		ticket("t3", "c", "x@y.z", domain.TicketPriorityMedium),
	}

	for _, dir := range []string{DirAsc, DirDesc} {
		got := Sort(tickets, SortByPriority, dir)
		if !equal(ids(got), []string{"t1", "t2", "t3"}) {
			t.Errorf("ties (%s) = %v, want pre-sort order kept", dir, ids(got))
		}
	}
}

func TestSortUnknownPriorityRanksFirst(t *testing.T) {
	tickets := []domain.Ticket{
		ticket("t1", "a", "x@y.z", domain.TicketPriorityLow),
		ticket("t2", "b", "x@y.z", domain.TicketPriority("Critical")),
	}
	got := Sort(tickets, SortByPriority, DirAsc)
	if !equal(ids(got), []string{"t2", "t1"}) {
		t.Errorf("unknown priority asc = %v, want it first", ids(got))
	}
}

func TestSortByTimestamps(t *testing.T) {
	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	a := ticket("t1", "a", "x@y.z", domain.TicketPriorityLow)
	a.DueAt = base.Add(2 * time.Hour)
	a.UpdatedAt = base
	b := ticket("t2", "b", "x@y.z", domain.TicketPriorityLow)
	b.DueAt = base.Add(time.Hour)
	b.UpdatedAt = base.Add(3 * time.Hour)

	if got := Sort([]domain.Ticket{a, b}, SortByDueAt, DirAsc); !equal(ids(got), []string{"t2", "t1"}) {
		t.Errorf("dueAt asc = %v", ids(got))
	}
	if got := Sort([]domain.Ticket{a, b}, SortByUpdatedAt, DirDesc); !equal(ids(got), []string{"t2", "t1"}) {
		t.Errorf("updatedAt desc = %v", ids(got))
	}
}

func TestSortUnknownKeyIsNoOp(t *testing.T) {
	tickets := []domain.Ticket{
		ticket("t1", "a", "x@y.z", domain.TicketPriorityUrgent),
		ticket("t2", "b", "x@y.z", domain.TicketPriorityLow),
	}
	got := Sort(tickets, "subject", DirAsc)
	if !equal(ids(got), []string{"t1", "t2"}) {
		t.Errorf("unknown key = %v, want input order unchanged", ids(got))
	}
}

func TestSearchInbox(t *testing.T) {
	messages := []domain.InboxMessage{
		{ID: "m1", Subject: "Refund", From: "a@b.com", To: "c@d.com", Body: "please refund"},
		{ID: "m2", Subject: "Hello", From: "refund@b.com", To: "c@d.com", Body: "hi"},
		{ID: "m3", Subject: "Other", From: "a@b.com", To: "c@d.com", Body: "nothing"},
	}

	got := SearchInbox(messages, "REFUND")
	if len(got) != 2 || got[0].ID != "m1" || got[1].ID != "m2" {
		t.Errorf("SearchInbox = %v", got)
	}
	if got := SearchInbox(messages, ""); len(got) != 3 {
		t.Errorf("empty search should match everything, got %d", len(got))
	}
}
