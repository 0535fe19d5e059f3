package repository

import (
	"context"
	"testing"
	"time"

	"coatingshop/internal/domain/builder"
)

func TestMemoryDraftRepository(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	repo := NewMemoryDraftRepository(time.Hour)
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	w := builder.New("").ApplyPromoCode("welcome10")
	if err := repo.Save(ctx, "d-1", w); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	got, ok, err := repo.Get(ctx, "d-1")
	if err != nil || !ok || got.Draft.PromoCode != "WELCOME10" {
		t.Fatalf("unexpected get: %+v %v %v", got.Draft, ok, err)
	}

	t.Run("missing", func(t *testing.T) {
		_, ok, err := repo.Get(ctx, "nope")
		if err != nil || ok {
			t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		now = now.Add(2 * time.Hour)
		_, ok, err := repo.Get(ctx, "d-1")
		if err != nil || ok {
			t.Fatalf("expected expiry, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		_ = repo.Save(ctx, "d-2", w)
		if err := repo.Delete(ctx, "d-2"); err != nil {
			t.Fatalf("unexpected delete error: %v", err)
		}
		if _, ok, _ := repo.Get(ctx, "d-2"); ok {
			t.Fatalf("expected draft to be gone")
		}
	})
}
