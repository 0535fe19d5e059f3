package interfaces

import (
	"context"
	"errors"

	"coatingshop/internal/domain/entities"
)

// ErrStatusConflict is returned by a guarded write when the stored status is
// not one of the expected statuses.
var ErrStatusConflict = errors.New("quote status changed")

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Reads return the zero Quote (empty ID) when nothing matches. Every update
// writes only its own attribute group and stamps updated_at/updated_by, so
// concurrent commands touching different groups do not overwrite each other.
//
// UpdateStatus, UpdateContent and Delete take the statuses the stored quote
// must still be in. An empty list skips the check.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Quote, error)
	ListAll(ctx context.Context) ([]entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus, updatedBy string, expected []entities.QuoteStatus) (entities.Quote, error)
	UpdateTracking(ctx context.Context, id string, trackingNumber string, updatedBy string) (entities.Quote, error)
	UpdateContent(ctx context.Context, id string, content entities.QuoteDraft, updatedBy string, expected []entities.QuoteStatus) (entities.Quote, error)
	Delete(ctx context.Context, id string, expected []entities.QuoteStatus) (bool, error)
}
