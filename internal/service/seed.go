package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/supporthub/helpdesk/internal/domain"
)

type demoTicket struct {
	to       string
	subject  string
	priority domain.TicketPriority
	tags     []string
	slaHours int
	starred  bool
}

var demoTickets = []demoTicket{
	{to: "sam@acme.com", subject: "Password reset not working", priority: domain.TicketPriorityLow, tags: []string{"onboarding"}, slaHours: 72},
	{to: "lisa@blue.co", subject: "Billing issue: double charge", priority: domain.TicketPriorityMedium, tags: []string{"billing"}, slaHours: 48},
	{to: "ceo@start.io", subject: "Feature request: dark mode", priority: domain.TicketPriorityHigh, tags: []string{"feature"}, slaHours: 24, starred: true},
	{to: "mike@retail.me", subject: "Unable to login on mobile", priority: domain.TicketPriorityUrgent, tags: []string{"bug"}, slaHours: 8},
}

// SeedDemoData populates an empty workspace with a handful of sample tickets
// so a fresh install has something on the dashboard. Does nothing when any
// ticket already exists.
func (s *TicketService) SeedDemoData(ctx context.Context) {
	if len(s.state.Tickets) > 0 {
		return
	}
	assignTo := ""
	if len(s.state.Users) > 0 {
		assignTo = s.state.Users[0].ID
	}
	for _, d := range demoTickets {
		_, _, err := s.Create(ctx, TicketCreateInput{
			To:       d.to,
			Subject:  d.subject,
			Body:     "Hi, we're investigating this issue and will update you shortly.",
			Priority: d.priority,
			Tags:     d.tags,
			SLAHours: d.slaHours,
			AssignTo: assignTo,
			Starred:  d.starred,
		})
		if err != nil {
			s.logger.Warn("demo seed failed", zap.Error(err))
			return
		}
	}
	s.logger.Info("seeded demo tickets", zap.Int("count", len(demoTickets)))
}
