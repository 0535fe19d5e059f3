package events

import (
	"context"
	"errors"

	"coatingshop/internal/domain/entities"
	"coatingshop/internal/usecase/interfaces"
)

// Fanout publishes to every bus and joins their errors. One failing bus does
// not stop delivery to the others.
type Fanout []interfaces.IQuoteEventBus

var _ interfaces.IQuoteEventBus = Fanout(nil)

func (f Fanout) Publish(ctx context.Context, e entities.QuoteEvent) error {
	var errs []error
	for _, bus := range f {
		if bus == nil {
			continue
		}
		if err := bus.Publish(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
