package usecase

import (
	"context"
	"strings"

	"coatingshop/internal/domain/builder"
	"coatingshop/internal/domain/entities"
	"coatingshop/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Draft is a stored builder session.
type Draft struct {
	ID     string
	Wizard builder.Wizard
}

// IDraftUseCase drives the quote builder for sessions kept on the server.
// Every mutator loads the session, applies one builder transition and saves
// the result; the draft id is the only handle a client needs.
type IDraftUseCase interface {
	Start(ctx context.Context) (Draft, error)
	Get(ctx context.Context, id string) (Draft, error)
	Discard(ctx context.Context, id string) error

	SetItemForm(ctx context.Context, id string, form builder.ItemForm) (Draft, error)
	SaveItem(ctx context.Context, id string) (Draft, bool, error)
	EditItem(ctx context.Context, id string, index int) (Draft, error)
	CancelEdit(ctx context.Context, id string) (Draft, error)
	RemoveItem(ctx context.Context, id string, index int) (Draft, error)
	SetCoating(ctx context.Context, id string, c entities.Coating) (Draft, error)
	SetServices(ctx context.Context, id string, s entities.AdditionalServices) (Draft, error)
	ToggleService(ctx context.Context, id string, name string) (Draft, error)
	ApplyPromoCode(ctx context.Context, id string, code string) (Draft, error)
	SetContact(ctx context.Context, id string, c entities.ContactInfo) (Draft, error)
	Touch(ctx context.Context, id string, field string) (Draft, error)
	Next(ctx context.Context, id string) (Draft, bool, error)
	Previous(ctx context.Context, id string) (Draft, error)

	Submit(ctx context.Context, actor Actor, id string) (entities.Quote, error)
}

type DraftUseCase struct {
	repo        interfaces.IDraftRepository
	quotes      IQuoteUseCase
	serviceMode string
	log         *zap.Logger
}

var _ IDraftUseCase = (*DraftUseCase)(nil)

func NewDraftUseCase(repo interfaces.IDraftRepository, quotes IQuoteUseCase, serviceMode string, log *zap.Logger) *DraftUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &DraftUseCase{repo: repo, quotes: quotes, serviceMode: serviceMode, log: log.Named("draft")}
}

func (u *DraftUseCase) Start(ctx context.Context) (Draft, error) {
	d := Draft{ID: uuid.NewString(), Wizard: builder.New(u.serviceMode)}
	if err := u.repo.Save(ctx, d.ID, d.Wizard); err != nil {
		u.log.Error("draft save failed", zap.String("draft_id", d.ID), zap.Error(err))
		return Draft{}, err
	}
	u.log.Debug("draft started", zap.String("draft_id", d.ID), zap.String("service_mode", d.Wizard.ServiceMode))
	return d, nil
}

func (u *DraftUseCase) Get(ctx context.Context, id string) (Draft, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Draft{}, ErrInvalidDraftID
	}
	w, ok, err := u.repo.Get(ctx, id)
	if err != nil {
		u.log.Error("draft load failed", zap.String("draft_id", id), zap.Error(err))
		return Draft{}, err
	}
	if !ok {
		return Draft{}, ErrDraftNotFound
	}
	return Draft{ID: id, Wizard: w}, nil
}

func (u *DraftUseCase) Discard(ctx context.Context, id string) error {
	d, err := u.Get(ctx, id)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, d.ID)
}

func (u *DraftUseCase) mutate(ctx context.Context, id string, fn func(builder.Wizard) (builder.Wizard, error)) (Draft, error) {
	d, err := u.Get(ctx, id)
	if err != nil {
		return Draft{}, err
	}
	next, err := fn(d.Wizard)
	if err != nil {
		return Draft{}, err
	}
	if err := u.repo.Save(ctx, d.ID, next); err != nil {
		u.log.Error("draft save failed", zap.String("draft_id", d.ID), zap.Error(err))
		return Draft{}, err
	}
	return Draft{ID: d.ID, Wizard: next}, nil
}

func (u *DraftUseCase) SetItemForm(ctx context.Context, id string, form builder.ItemForm) (Draft, error) {
	return u.mutate(ctx, id, func(w builder.Wizard) (builder.Wizard, error) {
		return w.SetItemForm(form), nil
	})
}

// SaveItem commits the item form. saved is false when the form is invalid;
// the draft then carries the field errors.
func (u *DraftUseCase) SaveItem(ctx context.Context, id string) (Draft, bool, error) {
	saved := false
	d, err := u.mutate(ctx, id, func(w builder.Wizard) (builder.Wizard, error) {
		next, ok := w.SaveItem()
		saved = ok
		return next, nil
	})
	return d, saved, err
}

func (u *DraftUseCase) EditItem(ctx context.Context, id string, index int) (Draft, error) {
	return u.mutate(ctx, id, func(w builder.Wizard) (builder.Wizard, error) {
		return w.EditItem(index)
	})
}

func (u *DraftUseCase) CancelEdit(ctx context.Context, id string) (Draft, error) {
	return u.mutate(ctx, id, func(w builder.Wizard) (builder.Wizard, error) {
		return w.CancelEdit(), nil
	})
}

func (u *DraftUseCase) RemoveItem(ctx context.Context, id string, index int) (Draft, error) {
	return u.mutate(ctx, id, func(w builder.Wizard) (builder.Wizard, error) {
		return w.RemoveItem(index)
	})
}

func (u *DraftUseCase) SetCoating(ctx context.Context, id string, c entities.Coating) (Draft, error) {
	return u.mutate(ctx, id, func(w builder.Wizard) (builder.Wizard, error) {
		return w.SetCoating(c), nil
	})
}

func (u *DraftUseCase) SetServices(ctx context.Context, id string, s entities.AdditionalServices) (Draft, error) {
	return u.mutate(ctx, id, func(w builder.Wizard) (builder.Wizard, error) {
		return w.SetServices(s), nil
	})
}

func (u *DraftUseCase) ToggleService(ctx context.Context, id string, name string) (Draft, error) {
	return u.mutate(ctx, id, func(w builder.Wizard) (builder.Wizard, error) {
		return w.ToggleService(name)
	})
}

func (u *DraftUseCase) ApplyPromoCode(ctx context.Context, id string, code string) (Draft, error) {
	return u.mutate(ctx, id, func(w builder.Wizard) (builder.Wizard, error) {
		return w.ApplyPromoCode(code), nil
	})
}

func (u *DraftUseCase) SetContact(ctx context.Context, id string, c entities.ContactInfo) (Draft, error) {
	return u.mutate(ctx, id, func(w builder.Wizard) (builder.Wizard, error) {
		return w.SetContact(c), nil
	})
}

func (u *DraftUseCase) Touch(ctx context.Context, id string, field string) (Draft, error) {
	return u.mutate(ctx, id, func(w builder.Wizard) (builder.Wizard, error) {
		return w.Touch(field), nil
	})
}

// Next advances one step. advanced is false when the current step is invalid.
func (u *DraftUseCase) Next(ctx context.Context, id string) (Draft, bool, error) {
	advanced := false
	d, err := u.mutate(ctx, id, func(w builder.Wizard) (builder.Wizard, error) {
		next, errs := w.Next()
		advanced = len(errs) == 0
		return next, nil
	})
	return d, advanced, err
}

func (u *DraftUseCase) Previous(ctx context.Context, id string) (Draft, error) {
	return u.mutate(ctx, id, func(w builder.Wizard) (builder.Wizard, error) {
		return w.Previous(), nil
	})
}

// Submit turns a ready draft into a pending quote and drops the session.
func (u *DraftUseCase) Submit(ctx context.Context, actor Actor, id string) (entities.Quote, error) {
	if !actor.Authenticated() {
		return entities.Quote{}, unauthenticated("submit_draft")
	}
	d, err := u.Get(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if ok, errs := d.Wizard.Ready(); !ok {
		return entities.Quote{}, &IncompleteDraftError{Errors: errs}
	}

	q, err := u.quotes.Submit(ctx, actor, d.Wizard.Draft)
	if err != nil {
		return entities.Quote{}, err
	}
	if err := u.repo.Delete(ctx, d.ID); err != nil {
		u.log.Warn("draft delete after submit failed", zap.String("draft_id", d.ID), zap.Error(err))
	}
	u.log.Info("draft submitted", zap.String("draft_id", d.ID), zap.String("quote_id", q.ID))
	return q, nil
}
