package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"coatingshop/internal/domain/builder"
	"coatingshop/internal/domain/entities"
	"coatingshop/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	draftKeyPrefix  = "draft:"
	DefaultDraftTTL = 24 * time.Hour
)

// RedisDraftRepository keeps builder sessions as JSON with a sliding TTL:
// every save pushes the expiry out again.
type RedisDraftRepository struct {
	client redis.Cmdable
	ttl    time.Duration
}

var _ interfaces.IDraftRepository = (*RedisDraftRepository)(nil)

func NewRedisDraftRepository(client redis.Cmdable, ttl time.Duration) *RedisDraftRepository {
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}
	return &RedisDraftRepository{client: client, ttl: ttl}
}

func (r *RedisDraftRepository) Save(ctx context.Context, id string, w builder.Wizard) error {
	b, err := json.Marshal(w)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, draftKeyPrefix+id, b, r.ttl).Err()
}

func (r *RedisDraftRepository) Get(ctx context.Context, id string) (builder.Wizard, bool, error) {
	b, err := r.client.Get(ctx, draftKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return builder.Wizard{}, false, nil
	}
	if err != nil {
		return builder.Wizard{}, false, err
	}
	var w builder.Wizard
	if err := json.Unmarshal(b, &w); err != nil {
		return builder.Wizard{}, false, err
	}
	normalizeWizard(&w)
	return w, true, nil
}

func (r *RedisDraftRepository) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, draftKeyPrefix+id).Err()
}

// normalizeWizard restores the non-nil maps and slices a decoded wizard may lack.
func normalizeWizard(w *builder.Wizard) {
	if w.Errors == nil {
		w.Errors = map[string]string{}
	}
	if w.Touched == nil {
		w.Touched = map[string]bool{}
	}
	if w.Draft.Items == nil {
		w.Draft.Items = []entities.QuoteItem{}
	}
}
