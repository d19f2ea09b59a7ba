package domain

// Plan is a subscription tier gating resource quotas.
type Plan string

const (
	PlanFree Plan = "Free"
	PlanPro  Plan = "Pro"
	PlanTeam Plan = "Team"
)

// Settings holds the agent-facing sender identity.
type Settings struct {
	FromName  string `json:"fromName"`
	FromEmail string `json:"fromEmail"`
	Signature string `json:"signature"`
}

// User is an agent tickets can be assigned to.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DraftKeyCompose is the only draft slot this engine uses.
const DraftKeyCompose = "compose"

// ComposeDraft is a saved-but-unsent compose payload.
type ComposeDraft struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject"`
	Body     string         `json:"body"`
	Priority TicketPriority `json:"priority"`
	Tags     []string       `json:"tags"`
	SLAHours int            `json:"slaHrs"`
	AssignTo string         `json:"assignTo,omitempty"`
	Starred  bool           `json:"starred"`
}
