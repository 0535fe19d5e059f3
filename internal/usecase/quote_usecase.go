package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"coatingshop/internal/domain/entities"
	"coatingshop/internal/domain/pricing"
	"coatingshop/internal/domain/validation"
	"coatingshop/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxTrackingNumberLength = 64

// IQuoteUseCase exposes operations on submitted quotes.
//
// Authorization lives here rather than in handlers so that every entry point
// (HTTP, the draft submit flow, the event stream) applies the same rules:
//   - admins may read, change and delete any quote
//   - owners may read their quotes, edit content while editable, cancel while
//     cancellable and delete while editable
type IQuoteUseCase interface {
	Submit(ctx context.Context, actor Actor, content entities.QuoteDraft) (entities.Quote, error)
	Get(ctx context.Context, actor Actor, id string) (entities.Quote, error)
	List(ctx context.Context, actor Actor, filter ListFilter) ([]entities.Quote, error)
	Apply(ctx context.Context, actor Actor, id string, cmd QuoteCommand) (entities.Quote, error)
	UpdateQuoteStatus(ctx context.Context, actor Actor, id string, status entities.QuoteStatus) (entities.Quote, error)
	Cancel(ctx context.Context, actor Actor, id string) (entities.Quote, error)
	Delete(ctx context.Context, actor Actor, id string) error
	Subscribe(ctx context.Context, actor Actor, id string) (entities.Quote, interfaces.ISubscription, error)
}

// ListFilter narrows a listing. Status filtering happens after the fetch since
// the store has no status index.
type ListFilter struct {
	Status entities.QuoteStatus
}

type QuoteUseCase struct {
	repo       interfaces.IQuoteRepository
	events     interfaces.IQuoteEventBus
	subscriber interfaces.IQuoteSubscriber
	strategy   pricing.ServiceStrategy
	editable   entities.EditablePredicate
	log        *zap.Logger
	now        func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

type QuoteOption func(*QuoteUseCase)

func WithServiceStrategy(s pricing.ServiceStrategy) QuoteOption {
	return func(u *QuoteUseCase) { u.strategy = s }
}

func WithEditablePolicy(p entities.EditablePredicate) QuoteOption {
	return func(u *QuoteUseCase) { u.editable = p }
}

func WithQuoteLogger(l *zap.Logger) QuoteOption {
	return func(u *QuoteUseCase) { u.log = l.Named("quote") }
}

func WithClock(now func() time.Time) QuoteOption {
	return func(u *QuoteUseCase) { u.now = now }
}

func NewQuoteUseCase(repo interfaces.IQuoteRepository, events interfaces.IQuoteEventBus, subscriber interfaces.IQuoteSubscriber, opts ...QuoteOption) *QuoteUseCase {
	u := &QuoteUseCase{
		repo:       repo,
		events:     events,
		subscriber: subscriber,
		strategy:   pricing.PercentageServices{},
		editable:   entities.EditableStrict,
		log:        zap.NewNop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *QuoteUseCase) Submit(ctx context.Context, actor Actor, content entities.QuoteDraft) (entities.Quote, error) {
	if !actor.Authenticated() {
		return entities.Quote{}, unauthenticated("submit_quote")
	}

	content, err := u.prepareContent(content)
	if err != nil {
		return entities.Quote{}, err
	}

	now := u.now().UTC()
	id := uuid.NewString()
	q := entities.Quote{
		QuoteDraft:  content,
		ID:          id,
		UserID:      actor.UserID,
		Status:      entities.QuoteStatusPending,
		OrderNumber: orderNumber(now, id),
		CreatedAt:   now,
		UpdatedAt:   now,
		UpdatedBy:   actor.UserID,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		u.log.Error("quote create failed", zap.String("user_id", actor.UserID), zap.Error(err))
		return entities.Quote{}, err
	}
	u.log.Info("quote submitted",
		zap.String("quote_id", created.ID),
		zap.String("order_number", created.OrderNumber),
		zap.String("user_id", created.UserID),
		zap.Float64("total", created.Total),
	)
	u.publish(ctx, entities.QuoteEventCreated, created, actor)
	return created, nil
}

func (u *QuoteUseCase) Get(ctx context.Context, actor Actor, id string) (entities.Quote, error) {
	if !actor.Authenticated() {
		return entities.Quote{}, unauthenticated("get_quote")
	}
	q, err := u.load(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if err := authorizeRead(actor, q, "get_quote"); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (u *QuoteUseCase) List(ctx context.Context, actor Actor, filter ListFilter) ([]entities.Quote, error) {
	if !actor.Authenticated() {
		return nil, unauthenticated("list_quotes")
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	var (
		quotes []entities.Quote
		err    error
	)
	if actor.IsAdmin() {
		quotes, err = u.repo.ListAll(ctx)
	} else {
		quotes, err = u.repo.ListByUserID(ctx, actor.UserID)
	}
	if err != nil {
		u.log.Error("quote list failed", zap.String("user_id", actor.UserID), zap.Error(err))
		return nil, err
	}

	if filter.Status == "" {
		return quotes, nil
	}
	out := make([]entities.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.Status == filter.Status {
			out = append(out, q)
		}
	}
	return out, nil
}

func (u *QuoteUseCase) Apply(ctx context.Context, actor Actor, id string, cmd QuoteCommand) (entities.Quote, error) {
	if cmd == nil {
		return entities.Quote{}, ErrUnknownCommand
	}
	op := cmd.commandName()
	if !actor.Authenticated() {
		return entities.Quote{}, unauthenticated(op)
	}

	current, err := u.load(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}

	var (
		updated  entities.Quote
		expected []entities.QuoteStatus
		conflict error
	)
	switch c := cmd.(type) {
	case SetStatus:
		if !c.Status.Valid() {
			return entities.Quote{}, ErrInvalidStatus
		}
		if !actor.IsAdmin() {
			if current.UserID != actor.UserID {
				return entities.Quote{}, permissionDenied(op, "not the quote owner")
			}
			if c.Status != entities.QuoteStatusCancelled {
				return entities.Quote{}, permissionDenied(op, "only admins may change the status")
			}
			if !current.Status.IsCancellable() {
				return entities.Quote{}, ErrQuoteNotCancellable
			}
			expected = entities.QuoteStatusesWhere(entities.QuoteStatus.IsCancellable)
			conflict = ErrQuoteNotCancellable
		}
		updated, err = u.repo.UpdateStatus(ctx, current.ID, c.Status, actor.UserID, expected)

	case SetTracking:
		if !actor.IsAdmin() {
			return entities.Quote{}, permissionDenied(op, "only admins may set tracking numbers")
		}
		tracking := strings.TrimSpace(c.TrackingNumber)
		if len(tracking) > maxTrackingNumberLength {
			return entities.Quote{}, ErrInvalidTracking
		}
		updated, err = u.repo.UpdateTracking(ctx, current.ID, tracking, actor.UserID)

	case UpdateContent:
		if !actor.IsAdmin() {
			if current.UserID != actor.UserID {
				return entities.Quote{}, permissionDenied(op, "not the quote owner")
			}
			if !u.editable(current.Status) {
				return entities.Quote{}, ErrQuoteNotEditable
			}
			expected = entities.QuoteStatusesWhere(u.editable)
			conflict = ErrQuoteNotEditable
		}
		content, perr := u.prepareContent(c.Content)
		if perr != nil {
			return entities.Quote{}, perr
		}
		updated, err = u.repo.UpdateContent(ctx, current.ID, content, actor.UserID, expected)

	default:
		return entities.Quote{}, ErrUnknownCommand
	}

	if errors.Is(err, interfaces.ErrStatusConflict) && conflict != nil {
		u.log.Info("quote status moved before update", zap.String("quote_id", current.ID), zap.String("command", op))
		return entities.Quote{}, conflict
	}
	if err != nil {
		u.log.Error("quote update failed", zap.String("quote_id", current.ID), zap.String("command", op), zap.Error(err))
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	u.log.Info("quote updated",
		zap.String("quote_id", updated.ID),
		zap.String("command", op),
		zap.String("status", string(updated.Status)),
		zap.String("actor_id", actor.UserID),
	)
	u.publish(ctx, entities.QuoteEventUpdated, updated, actor)
	return updated, nil
}

// UpdateQuoteStatus is the admin status surface. Any target is accepted; the
// forward/backward discipline belongs to the admin screens.
func (u *QuoteUseCase) UpdateQuoteStatus(ctx context.Context, actor Actor, id string, status entities.QuoteStatus) (entities.Quote, error) {
	if !actor.Authenticated() {
		return entities.Quote{}, unauthenticated("update_quote_status")
	}
	if !actor.IsAdmin() {
		return entities.Quote{}, permissionDenied("update_quote_status", "admin role required")
	}
	return u.Apply(ctx, actor, id, SetStatus{Status: status})
}

// Cancel moves a quote to cancelled. Non-admins are held to the cancellable predicate.
func (u *QuoteUseCase) Cancel(ctx context.Context, actor Actor, id string) (entities.Quote, error) {
	return u.Apply(ctx, actor, id, SetStatus{Status: entities.QuoteStatusCancelled})
}

func (u *QuoteUseCase) Delete(ctx context.Context, actor Actor, id string) error {
	if !actor.Authenticated() {
		return unauthenticated("delete_quote")
	}
	current, err := u.load(ctx, id)
	if err != nil {
		return err
	}
	var expected []entities.QuoteStatus
	if !actor.IsAdmin() {
		if current.UserID != actor.UserID {
			return permissionDenied("delete_quote", "not the quote owner")
		}
		if !u.editable(current.Status) {
			return ErrQuoteNotEditable
		}
		expected = entities.QuoteStatusesWhere(u.editable)
	}

	deleted, err := u.repo.Delete(ctx, current.ID, expected)
	if errors.Is(err, interfaces.ErrStatusConflict) {
		return ErrQuoteNotEditable
	}
	if err != nil {
		u.log.Error("quote delete failed", zap.String("quote_id", current.ID), zap.Error(err))
		return err
	}
	if !deleted {
		return ErrQuoteNotFound
	}
	u.log.Info("quote deleted", zap.String("quote_id", current.ID), zap.String("actor_id", actor.UserID))
	u.publish(ctx, entities.QuoteEventDeleted, current, actor)
	return nil
}

// Subscribe returns the current snapshot and a stream of later ones. The
// caller must Close the subscription.
func (u *QuoteUseCase) Subscribe(ctx context.Context, actor Actor, id string) (entities.Quote, interfaces.ISubscription, error) {
	q, err := u.Get(ctx, actor, id)
	if err != nil {
		return entities.Quote{}, nil, err
	}
	if u.subscriber == nil {
		return entities.Quote{}, nil, errors.New("quote subscriptions not configured")
	}
	return q, u.subscriber.Subscribe(q.ID), nil
}

func (u *QuoteUseCase) load(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		u.log.Error("quote load failed", zap.String("quote_id", id), zap.Error(err))
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) publish(ctx context.Context, typ entities.QuoteEventType, q entities.Quote, actor Actor) {
	if u.events == nil {
		return
	}
	e := entities.QuoteEvent{Type: typ, Quote: q, ActorID: actor.UserID, OccurredAt: u.now().UTC()}
	if err := u.events.Publish(ctx, e); err != nil {
		u.log.Warn("quote event publish failed", zap.String("quote_id", q.ID), zap.String("type", string(typ)), zap.Error(err))
	}
}

// prepareContent validates client supplied content and rebuilds every derived
// value from the catalog: base prices, the coating multiplier and the totals.
func (u *QuoteUseCase) prepareContent(d entities.QuoteDraft) (entities.QuoteDraft, error) {
	out := d.Clone()
	if len(out.Items) == 0 {
		return entities.QuoteDraft{}, fmt.Errorf("%w: at least one item is required", ErrInvalidQuoteContent)
	}
	for i, it := range out.Items {
		if errs := validation.Item(it); len(errs) > 0 {
			return entities.QuoteDraft{}, fmt.Errorf("%w: item %d: %s", ErrInvalidQuoteContent, i, firstError(errs))
		}
		itemType, _ := entities.LookupItemType(it.Type)
		out.Items[i].BasePrice = itemType.BasePrice
	}

	if errs := validation.Coating(out.Coating); len(errs) > 0 {
		return entities.QuoteDraft{}, fmt.Errorf("%w: %s", ErrInvalidQuoteContent, firstError(errs))
	}
	coatingType, _ := entities.LookupCoatingType(out.Coating.Type)
	out.Coating.PriceMultiplier = coatingType.PriceMultiplier

	out.PromoCode = entities.NormalizePromoCode(out.PromoCode)
	if msg := validation.Field(validation.FieldPromoCode, out.PromoCode); msg != "" {
		return entities.QuoteDraft{}, fmt.Errorf("%w: %s", ErrInvalidQuoteContent, msg)
	}

	out.ContactInfo.Name = strings.TrimSpace(out.ContactInfo.Name)
	out.ContactInfo.Email = strings.TrimSpace(out.ContactInfo.Email)
	out.ContactInfo.Phone = strings.TrimSpace(out.ContactInfo.Phone)
	if errs := validation.Contact(out.ContactInfo); len(errs) > 0 {
		return entities.QuoteDraft{}, fmt.Errorf("%w: %s", ErrInvalidQuoteContent, firstError(errs))
	}

	return pricing.Apply(out, u.strategy), nil
}

// firstError picks a deterministic message from a field error map.
func firstError(errs map[string]string) string {
	best := ""
	for field := range errs {
		if best == "" || field < best {
			best = field
		}
	}
	return best + ": " + errs[best]
}

func authorizeRead(actor Actor, q entities.Quote, op string) error {
	if actor.IsAdmin() || q.UserID == actor.UserID {
		return nil
	}
	return permissionDenied(op, "not the quote owner")
}

// orderNumber is a human friendly reference such as PC-261016-1A2B3C.
func orderNumber(at time.Time, id string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(suffix) > 6 {
		suffix = suffix[:6]
	}
	return "PC-" + at.Format("060102") + "-" + suffix
}
