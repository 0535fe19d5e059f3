package entities

import "time"

type QuoteEventType string

const (
	QuoteEventCreated QuoteEventType = "quote.created"
	QuoteEventUpdated QuoteEventType = "quote.updated"
	QuoteEventDeleted QuoteEventType = "quote.deleted"
)

// QuoteEvent carries the quote snapshot after a change. For deletions the
// snapshot is the last stored state.
type QuoteEvent struct {
	Type       QuoteEventType `json:"type"`
	Quote      Quote          `json:"quote"`
	ActorID    string         `json:"actor_id"`
	OccurredAt time.Time      `json:"occurred_at"`
}
