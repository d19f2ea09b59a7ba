package service

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/supporthub/helpdesk/internal/domain"
	"github.com/supporthub/helpdesk/internal/events"
	"github.com/supporthub/helpdesk/internal/observability"
	"github.com/supporthub/helpdesk/internal/quota"
	"github.com/supporthub/helpdesk/internal/state"
	"github.com/supporthub/helpdesk/pkg/util"
)

// slaRiskWindow is how close to its due time a non-closed ticket may get
// before it counts as at risk. Overdue tickets are always at risk.
const slaRiskWindow = 2 * time.Hour

// defaultSLAHours applies when creation input carries no usable SLA.
const defaultSLAHours = 24

// ReplyEstimator supplies the synthetic first-reply latency assigned to new
// tickets. Tests inject a deterministic implementation.
type ReplyEstimator interface {
	FirstReplyMins() int
}

type randEstimator struct {
	rng *rand.Rand
}

// NewRandReplyEstimator returns the default estimator: a pseudo-random value
// in [5,35) minutes.
func NewRandReplyEstimator() ReplyEstimator {
	return &randEstimator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (e *randEstimator) FirstReplyMins() int {
	return 5 + e.rng.Intn(30)
}

// TicketService coordinates ticket lifecycle workflows.
type TicketService struct {
	state      *state.State
	estimator  ReplyEstimator
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
	now        func() time.Time
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	State      *state.State
	Estimator  ReplyEstimator
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
	Logger     *zap.Logger
	Now        func() time.Time
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	svc := &TicketService{
		state:      deps.State,
		estimator:  deps.Estimator,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     deps.Logger,
		now:        deps.Now,
	}
	if svc.estimator == nil {
		svc.estimator = NewRandReplyEstimator()
	}
	if svc.now == nil {
		svc.now = time.Now
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	return svc
}

// TicketCreateInput describes a ticket creation payload.
type TicketCreateInput struct {
	To       string
	Subject  string
	Body     string
	Priority domain.TicketPriority
	Tags     []string
	SLAHours int
	AssignTo string
	Starred  bool
}

// Create opens a new ticket and its paired inbox record. A nil ticket with a
// non-nil notice means the plan quota blocked the creation.
func (s *TicketService) Create(ctx context.Context, input TicketCreateInput) (*domain.Ticket, *util.Notice, error) {
	to := strings.TrimSpace(input.To)
	subject := strings.TrimSpace(input.Subject)
	if to == "" || subject == "" {
		return nil, nil, util.NewValidationError("to and subject are required", nil)
	}

	if !quota.Allows(s.state.Plan, quota.ResourceTickets, len(s.state.Tickets)) {
		notice := util.NewQuotaExceededNotice("ticket", quota.LimitFor(s.state.Plan, quota.ResourceTickets))
		s.metrics.RecordNotice("ticket_create", notice.Code)
		s.logger.Debug("ticket creation blocked by quota", zap.String("plan", string(s.state.Plan)))
		return nil, notice, nil
	}

	slaHours := input.SLAHours
	if slaHours <= 0 {
		slaHours = defaultSLAHours
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.TicketPriorityMedium
	}

	now := s.now()
	ticket := domain.Ticket{
		ID:         util.NewID(),
		Subject:    subject,
		Customer:   to,
		Priority:   priority,
		Tags:       filterBlank(input.Tags),
		Status:     domain.TicketStatusOpen,
		CreatedAt:  now,
		UpdatedAt:  now,
		DueAt:      now.Add(time.Duration(slaHours) * time.Hour),
		Starred:    input.Starred,
		AssignedTo: input.AssignTo,
		Messages: []domain.Message{
			{From: s.state.Settings.FromEmail, Body: input.Body, At: now},
		},
		FirstReplyMins: s.estimator.FirstReplyMins(),
	}

	s.state.Tickets = append([]domain.Ticket{ticket}, s.state.Tickets...)
	s.state.Inbox = append([]domain.InboxMessage{{
		ID:      util.NewID(),
		Subject: subject,
		From:    s.state.Settings.FromEmail,
		To:      to,
		Body:    input.Body,
		At:      now,
		Starred: input.Starred,
	}}, s.state.Inbox...)
	s.state.Save(ctx, state.KeyTickets, state.KeyInbox)

	s.metrics.RecordOperation("ticket_create")
	s.logger.Info("ticket created",
		zap.String("ticket_id", ticket.ID),
		zap.String("priority", string(ticket.Priority)))
	s.publishEvent(ctx, events.Event{
		Type: events.EventTicketCreated,
		Payload: events.TicketCreatedPayload{
			TicketID: ticket.ID,
			Subject:  ticket.Subject,
			Customer: ticket.Customer,
			Priority: ticket.Priority,
		},
	})
	// Return a copy so the caller's handle survives later edits to the slice.
	created := s.state.Tickets[0]
	return &created, nil, nil
}

// UpdateStatus moves the selected tickets to the target status. Any status is
// reachable from any other. Unknown ids are skipped; an empty selection is a
// notice, not an error.
func (s *TicketService) UpdateStatus(ctx context.Context, ids []string, status domain.TicketStatus) ([]domain.Ticket, *util.Notice) {
	if len(ids) == 0 {
		notice := util.NewEmptySelectionNotice()
		s.metrics.RecordNotice("ticket_update_status", notice.Code)
		return nil, notice
	}

	now := s.now()
	updated := s.applyToSelection(ids, func(t *domain.Ticket) {
		t.Status = status
		t.UpdatedAt = now
	})
	s.state.Save(ctx, state.KeyTickets)

	s.metrics.RecordOperation("ticket_update_status")
	s.logger.Info("ticket status updated",
		zap.Int("count", len(updated)),
		zap.String("status", string(status)))
	s.publishEvent(ctx, events.Event{
		Type: events.EventTicketStatusChanged,
		Payload: events.TicketStatusChangedPayload{
			TicketIDs: ticketIDs(updated),
			NewStatus: status,
		},
	})
	return updated, nil
}

// Snooze defers the selected tickets: status becomes Snoozed and the due time
// is pushed to now plus the given hours.
func (s *TicketService) Snooze(ctx context.Context, ids []string, hours int) ([]domain.Ticket, *util.Notice) {
	if len(ids) == 0 {
		notice := util.NewEmptySelectionNotice()
		s.metrics.RecordNotice("ticket_snooze", notice.Code)
		return nil, notice
	}

	now := s.now()
	dueAt := now.Add(time.Duration(hours) * time.Hour)
	updated := s.applyToSelection(ids, func(t *domain.Ticket) {
		t.Status = domain.TicketStatusSnoozed
		t.DueAt = dueAt
		t.UpdatedAt = now
	})
	s.state.Save(ctx, state.KeyTickets)

	s.metrics.RecordOperation("ticket_snooze")
	s.logger.Info("tickets snoozed", zap.Int("count", len(updated)), zap.Int("hours", hours))
	s.publishEvent(ctx, events.Event{
		Type: events.EventTicketSnoozed,
		Payload: events.TicketSnoozedPayload{
			TicketIDs: ticketIDs(updated),
			DueAt:     dueAt,
		},
	})
	return updated, nil
}

// TicketMetrics is a derived, recomputed-on-demand snapshot.
type TicketMetrics struct {
	Open            int
	SLAAtRisk       int
	AvgFirstReply   int
	AvgFirstReplyOK bool
	CreatedToday    int
	ClosedToday     int
}

// Metrics derives the dashboard numbers from the current collection.
// AvgFirstReplyOK is false when there are no tickets to average over.
func (s *TicketService) Metrics() TicketMetrics {
	now := s.now()
	var m TicketMetrics
	var replySum int

	for _, t := range s.state.Tickets {
		if t.Status == domain.TicketStatusOpen {
			m.Open++
		}
		if t.Status != domain.TicketStatusClosed && t.DueAt.Sub(now) < slaRiskWindow {
			m.SLAAtRisk++
		}
		replySum += t.FirstReplyMins
		if sameLocalDay(t.CreatedAt, now) {
			m.CreatedToday++
		}
		if t.Status == domain.TicketStatusClosed && sameLocalDay(t.UpdatedAt, now) {
			m.ClosedToday++
		}
	}

	if n := len(s.state.Tickets); n > 0 {
		m.AvgFirstReply = int(float64(replySum)/float64(n) + 0.5)
		m.AvgFirstReplyOK = true
	}
	return m
}

func (s *TicketService) applyToSelection(ids []string, mutate func(*domain.Ticket)) []domain.Ticket {
	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}
	var updated []domain.Ticket
	for i := range s.state.Tickets {
		if !selected[s.state.Tickets[i].ID] {
			continue
		}
		mutate(&s.state.Tickets[i])
		updated = append(updated, s.state.Tickets[i])
	}
	return updated
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func ticketIDs(tickets []domain.Ticket) []string {
	ids := make([]string, 0, len(tickets))
	for _, t := range tickets {
		ids = append(ids, t.ID)
	}
	return ids
}

func filterBlank(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			continue
		}
		out = append(out, tag)
	}
	return out
}

func sameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
