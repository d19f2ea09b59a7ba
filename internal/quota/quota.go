// Package quota maps subscription plans to resource limits.
package quota

import "github.com/supporthub/helpdesk/internal/domain"

// Resource identifies a quota-gated collection.
type Resource string

const (
	ResourceTickets       Resource = "tickets"
	ResourceCannedReplies Resource = "cannedReplies"
)

// Unlimited marks a plan with no upper bound for a resource.
const Unlimited = -1

type limits struct {
	tickets int
	canned  int
}

var planLimits = map[domain.Plan]limits{
	domain.PlanFree: {tickets: 25, canned: 3},
	domain.PlanPro:  {tickets: Unlimited, canned: Unlimited},
	domain.PlanTeam: {tickets: Unlimited, canned: Unlimited},
}

// LimitFor returns the maximum collection size for a plan and resource.
// Unknown plans fall back to Free limits: the plan value comes from persisted
// data that may be stale, and failing safe means gating, not unbounding.
func LimitFor(plan domain.Plan, resource Resource) int {
	l, ok := planLimits[plan]
	if !ok {
		l = planLimits[domain.PlanFree]
	}
	switch resource {
	case ResourceCannedReplies:
		return l.canned
	default:
		return l.tickets
	}
}

// Allows reports whether a collection of the given size may grow by one.
func Allows(plan domain.Plan, resource Resource, current int) bool {
	limit := LimitFor(plan, resource)
	return limit == Unlimited || current < limit
}
