package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/supporthub/helpdesk/internal/domain"
	"github.com/supporthub/helpdesk/internal/events"
	"github.com/supporthub/helpdesk/internal/observability"
	"github.com/supporthub/helpdesk/internal/state"
)

// WorkspaceService covers the singleton aggregates: settings, plan, and the
// compose draft slot.
type WorkspaceService struct {
	state      *state.State
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// WorkspaceDependencies bundles collaborators for the workspace service.
type WorkspaceDependencies struct {
	State      *state.State
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
	Logger     *zap.Logger
}

// NewWorkspaceService constructs the service.
func NewWorkspaceService(deps WorkspaceDependencies) *WorkspaceService {
	svc := &WorkspaceService{
		state:      deps.State,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     deps.Logger,
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	return svc
}

// UpdateSettings replaces the sender identity and persists it.
func (s *WorkspaceService) UpdateSettings(ctx context.Context, settings domain.Settings) domain.Settings {
	s.state.Settings = settings
	s.state.Save(ctx, state.KeySettings)
	s.metrics.RecordOperation("settings_update")
	s.logger.Info("settings updated", zap.String("from_email", settings.FromEmail))
	s.publish(ctx, events.Event{Type: events.EventSettingsUpdated, Payload: settings})
	return s.state.Settings
}

// ChangePlan switches the subscription tier.
func (s *WorkspaceService) ChangePlan(ctx context.Context, plan domain.Plan) domain.Plan {
	old := s.state.Plan
	s.state.Plan = plan
	s.state.Save(ctx, state.KeyPlan)
	s.metrics.RecordOperation("plan_change")
	s.logger.Info("plan changed", zap.String("old", string(old)), zap.String("new", string(plan)))
	s.publish(ctx, events.Event{
		Type:    events.EventPlanChanged,
		Payload: events.PlanChangedPayload{OldPlan: old, NewPlan: plan},
	})
	return s.state.Plan
}

// SaveDraft overwrites the compose draft slot.
func (s *WorkspaceService) SaveDraft(ctx context.Context, draft domain.ComposeDraft) {
	s.state.Drafts[domain.DraftKeyCompose] = draft
	s.state.Save(ctx, state.KeyDrafts)
	s.metrics.RecordOperation("draft_save")
	s.publish(ctx, events.Event{Type: events.EventDraftSaved})
}

// LoadDraft returns the compose draft, if one was saved.
func (s *WorkspaceService) LoadDraft() (domain.ComposeDraft, bool) {
	draft, ok := s.state.Drafts[domain.DraftKeyCompose]
	return draft, ok
}

// ClearDraft removes the compose draft. When no drafts remain the stored
// document is removed entirely.
func (s *WorkspaceService) ClearDraft(ctx context.Context) {
	delete(s.state.Drafts, domain.DraftKeyCompose)
	if len(s.state.Drafts) == 0 {
		s.state.RemoveKey(ctx, state.KeyDrafts)
	} else {
		s.state.Save(ctx, state.KeyDrafts)
	}
	s.metrics.RecordOperation("draft_clear")
}

func (s *WorkspaceService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
