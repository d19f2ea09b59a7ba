// Package state holds the process-wide domain aggregate: settings, plan,
// users, tickets, canned replies, inbox messages, and drafts. The aggregate is
// loaded once at startup and written back through the persistence store after
// every mutation.
package state

import (
	"context"

	"go.uber.org/zap"

	"github.com/supporthub/helpdesk/internal/domain"
	"github.com/supporthub/helpdesk/internal/persistence"
	"github.com/supporthub/helpdesk/pkg/util"
)

// Persistence keys. Each names one stored JSON document.
const (
	KeySettings = "settings"
	KeyPlan     = "plan"
	KeyUsers    = "users"
	KeyTickets  = "tickets"
	KeyCanned   = "canned"
	KeyInbox    = "inbox"
	KeyDrafts   = "drafts"
)

// State is the single mutable aggregate the engines operate on. It is owned
// by exactly one logical actor at a time; no locking is required.
type State struct {
	Settings domain.Settings
	Plan     domain.Plan
	Users    []domain.User
	Tickets  []domain.Ticket
	Canned   []domain.CannedReply
	Inbox    []domain.InboxMessage
	Drafts   map[string]domain.ComposeDraft

	store  persistence.Store
	logger *zap.Logger
}

// Load builds a State seeded with documented defaults, then overlays whatever
// the store holds. Absent or corrupt values keep their defaults.
func Load(ctx context.Context, store persistence.Store, logger *zap.Logger) *State {
	s := &State{
		Settings: domain.Settings{
			FromName:  "Your Support",
			FromEmail: "support@example.com",
			Signature: "Thanks,\nSupport Team",
		},
		Plan: domain.PlanFree,
		Users: []domain.User{
			{ID: "u-admin", Name: "Admin", Email: "admin@example.com"},
		},
		Tickets: []domain.Ticket{},
		Canned: []domain.CannedReply{
			{
				ID:       util.NewID(),
				Title:    "Welcome",
				Shortcut: "/welcome",
				Body:     "Hi {{name}},\n\nThanks for reaching out! We're on it.\n\n— {{agent}}",
			},
		},
		Inbox:  []domain.InboxMessage{},
		Drafts: map[string]domain.ComposeDraft{},

		store:  store,
		logger: logger,
	}

	s.loadKey(ctx, KeySettings, &s.Settings)
	s.loadKey(ctx, KeyPlan, &s.Plan)
	s.loadKey(ctx, KeyUsers, &s.Users)
	s.loadKey(ctx, KeyTickets, &s.Tickets)
	s.loadKey(ctx, KeyCanned, &s.Canned)
	s.loadKey(ctx, KeyInbox, &s.Inbox)
	s.loadKey(ctx, KeyDrafts, &s.Drafts)
	if s.Drafts == nil {
		s.Drafts = map[string]domain.ComposeDraft{}
	}

	return s
}

func (s *State) loadKey(ctx context.Context, key string, into any) {
	if err := s.store.Load(ctx, key, into); err != nil {
		s.logger.Warn("load failed, keeping default", zap.String("key", key), zap.Error(err))
	}
}

// Save persists the named keys. Storage failures are logged, never propagated;
// the in-memory aggregate remains authoritative for the running process.
func (s *State) Save(ctx context.Context, keys ...string) {
	for _, key := range keys {
		var value any
		switch key {
		case KeySettings:
			value = s.Settings
		case KeyPlan:
			value = s.Plan
		case KeyUsers:
			value = s.Users
		case KeyTickets:
			value = s.Tickets
		case KeyCanned:
			value = s.Canned
		case KeyInbox:
			value = s.Inbox
		case KeyDrafts:
			value = s.Drafts
		default:
			continue
		}
		if err := s.store.Save(ctx, key, value); err != nil {
			s.logger.Warn("save failed", zap.String("key", key), zap.Error(err))
		}
	}
}

// SaveAll persists every key.
func (s *State) SaveAll(ctx context.Context) {
	s.Save(ctx, KeySettings, KeyPlan, KeyUsers, KeyTickets, KeyCanned, KeyInbox, KeyDrafts)
}

// RemoveKey deletes a stored document without touching the in-memory state.
func (s *State) RemoveKey(ctx context.Context, key string) {
	if err := s.store.Remove(ctx, key); err != nil {
		s.logger.Warn("remove failed", zap.String("key", key), zap.Error(err))
	}
}

// UserByID resolves an assignee id. Assignment is a weak reference, so a
// missing user is reported through ok rather than an error.
func (s *State) UserByID(id string) (domain.User, bool) {
	for _, u := range s.Users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

// TicketByID finds a ticket in the collection.
func (s *State) TicketByID(id string) (*domain.Ticket, bool) {
	for i := range s.Tickets {
		if s.Tickets[i].ID == id {
			return &s.Tickets[i], true
		}
	}
	return nil, false
}
