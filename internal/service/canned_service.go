package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/supporthub/helpdesk/internal/codec"
	"github.com/supporthub/helpdesk/internal/domain"
	"github.com/supporthub/helpdesk/internal/events"
	"github.com/supporthub/helpdesk/internal/observability"
	"github.com/supporthub/helpdesk/internal/quota"
	"github.com/supporthub/helpdesk/internal/state"
	"github.com/supporthub/helpdesk/pkg/util"
)

// CannedService manages reusable reply templates.
type CannedService struct {
	state      *state.State
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// CannedDependencies bundles collaborators for the canned reply service.
type CannedDependencies struct {
	State      *state.State
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
	Logger     *zap.Logger
}

// NewCannedService constructs the service.
func NewCannedService(deps CannedDependencies) *CannedService {
	svc := &CannedService{
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

// Add prepends a new canned reply. A nil reply with a non-nil notice means
// the plan quota blocked the creation.
func (s *CannedService) Add(ctx context.Context, title, shortcut, body string) (*domain.CannedReply, *util.Notice) {
	if !quota.Allows(s.state.Plan, quota.ResourceCannedReplies, len(s.state.Canned)) {
		notice := util.NewQuotaExceededNotice("canned reply", quota.LimitFor(s.state.Plan, quota.ResourceCannedReplies))
		s.metrics.RecordNotice("canned_add", notice.Code)
		return nil, notice
	}

	reply := domain.CannedReply{
		ID:       util.NewID(),
		Title:    title,
		Shortcut: shortcut,
		Body:     body,
	}
	s.state.Canned = append([]domain.CannedReply{reply}, s.state.Canned...)
	s.state.Save(ctx, state.KeyCanned)

	s.metrics.RecordOperation("canned_add")
	s.logger.Info("canned reply added", zap.String("shortcut", reply.Shortcut))
	s.publish(ctx, events.Event{
		Type:    events.EventCannedAdded,
		Payload: events.CannedAddedPayload{CannedID: reply.ID, Shortcut: reply.Shortcut},
	})
	// Return a copy so the caller's handle survives later edits to the slice.
	return &reply, nil
}

// Delete removes a canned reply by id. Deleting an absent id is a no-op.
func (s *CannedService) Delete(ctx context.Context, id string) {
	// Compact into a fresh array; filtering in place would overwrite slots
	// that replies handed out earlier still point into.
	kept := make([]domain.CannedReply, 0, len(s.state.Canned))
	removed := false
	for _, c := range s.state.Canned {
		if c.ID == id {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	s.state.Canned = kept
	if !removed {
		return
	}
	s.state.Save(ctx, state.KeyCanned)
	s.metrics.RecordOperation("canned_delete")
	s.publish(ctx, events.Event{
		Type:    events.EventCannedDeleted,
		Payload: events.CannedDeletedPayload{CannedID: id},
	})
}

// ByShortcut finds a canned reply by its exact shortcut.
func (s *CannedService) ByShortcut(shortcut string) (*domain.CannedReply, bool) {
	for i := range s.state.Canned {
		if s.state.Canned[i].Shortcut == shortcut {
			return &s.state.Canned[i], true
		}
	}
	return nil, false
}

// ExpandVars carries the substitution values for template expansion.
type ExpandVars struct {
	Agent string
	Name  string
}

// Expand substitutes every {{agent}} and {{name}} in the template. Any other
// placeholder is left verbatim; there is no recursion or nesting.
func Expand(template string, vars ExpandVars) string {
	return strings.NewReplacer(
		"{{agent}}", vars.Agent,
		"{{name}}", vars.Name,
	).Replace(template)
}

// ExportJSON serializes the collection as a pretty-printed JSON array.
func (s *CannedService) ExportJSON() (string, error) {
	return codec.CannedToJSON(s.state.Canned)
}

// ImportResult summarizes a canned reply import.
type ImportResult struct {
	Imported int
	Skipped  int
}

// ImportJSON parses a JSON array of canned replies and adds each item
// individually, re-applying the creation quota per item. Items blocked by the
// quota are skipped; a malformed payload fails the whole call with nothing
// applied. Ids on imported items are ignored.
func (s *CannedService) ImportJSON(ctx context.Context, text string) (ImportResult, error) {
	items, err := codec.CannedFromJSON(text)
	if err != nil {
		return ImportResult{}, err
	}

	var result ImportResult
	for _, item := range items {
		if _, notice := s.Add(ctx, item.Title, item.Shortcut, item.Body); notice != nil {
			result.Skipped++
			continue
		}
		result.Imported++
	}
	s.logger.Info("canned replies imported",
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped))
	return result, nil
}

func (s *CannedService) publish(ctx context.Context, event events.Event) {
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
