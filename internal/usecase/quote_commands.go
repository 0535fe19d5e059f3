package usecase

import "coatingshop/internal/domain/entities"

// QuoteCommand is one kind of change to a stored quote. Each command carries
// its own permission rule and writes only its own fields.
type QuoteCommand interface {
	commandName() string
}

// SetStatus moves a quote to any status. Admins may pick any target; owners
// may only ask for cancelled while the quote is cancellable.
type SetStatus struct {
	Status entities.QuoteStatus
}

// SetTracking records the carrier tracking number. Admin only.
type SetTracking struct {
	TrackingNumber string
}

// UpdateContent replaces items, coating, services, promo code and contact
// details. Owners need the quote to be editable.
type UpdateContent struct {
	Content entities.QuoteDraft
}

func (SetStatus) commandName() string     { return "set_status" }
func (SetTracking) commandName() string   { return "set_tracking" }
func (UpdateContent) commandName() string { return "update_content" }
