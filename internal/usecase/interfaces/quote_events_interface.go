package interfaces

import (
	"context"

	"coatingshop/internal/domain/entities"
)

// IQuoteEventBus receives a snapshot after every quote write.
type IQuoteEventBus interface {
	Publish(ctx context.Context, e entities.QuoteEvent) error
}

// ISubscription is a live stream of snapshots for one quote. Close releases it
// and closes the channel.
type ISubscription interface {
	C() <-chan entities.Quote
	Close()
}

// IQuoteSubscriber opens snapshot streams keyed by quote id.
type IQuoteSubscriber interface {
	Subscribe(quoteID string) ISubscription
}
