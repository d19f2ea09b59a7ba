package domain

// CannedReply is a reusable message template keyed by a shortcut.
type CannedReply struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Shortcut string `json:"shortcut"`
	Body     string `json:"body"`
}
