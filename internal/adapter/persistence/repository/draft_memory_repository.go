package repository

import (
	"context"
	"sync"
	"time"

	"coatingshop/internal/domain/builder"
	"coatingshop/internal/usecase/interfaces"
)

type memoryDraft struct {
	wizard    builder.Wizard
	expiresAt time.Time
}

// MemoryDraftRepository is the single-process draft store used when Redis is
// not configured. Expired sessions are dropped lazily on access.
type MemoryDraftRepository struct {
	mu     sync.Mutex
	drafts map[string]memoryDraft
	ttl    time.Duration
	now    func() time.Time
}

var _ interfaces.IDraftRepository = (*MemoryDraftRepository)(nil)

func NewMemoryDraftRepository(ttl time.Duration) *MemoryDraftRepository {
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}
	return &MemoryDraftRepository{drafts: map[string]memoryDraft{}, ttl: ttl, now: time.Now}
}

func (r *MemoryDraftRepository) Save(_ context.Context, id string, w builder.Wizard) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drafts[id] = memoryDraft{wizard: w, expiresAt: r.now().Add(r.ttl)}
	return nil
}

func (r *MemoryDraftRepository) Get(_ context.Context, id string) (builder.Wizard, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.drafts[id]
	if !ok {
		return builder.Wizard{}, false, nil
	}
	if !r.now().Before(d.expiresAt) {
		delete(r.drafts, id)
		return builder.Wizard{}, false, nil
	}
	return d.wizard, true, nil
}

func (r *MemoryDraftRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drafts, id)
	return nil
}
