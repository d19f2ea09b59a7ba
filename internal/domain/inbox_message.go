package domain

import "time"

// InboxMessage is a denormalized record of a ticket's originating message.
// It is created alongside the ticket and never mutated afterwards; the two
// entities share creation-time data but hold no reference to each other.
type InboxMessage struct {
	ID      string    `json:"id"`
	Subject string    `json:"subject"`
	From    string    `json:"from"`
	To      string    `json:"to"`
	Body    string    `json:"body"`
	At      time.Time `json:"at"`
	Starred bool      `json:"starred"`
}
