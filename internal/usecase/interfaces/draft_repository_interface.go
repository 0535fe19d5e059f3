package interfaces

import (
	"context"

	"coatingshop/internal/domain/builder"
)

// IDraftRepository keeps in-progress quote builders between requests.
// Drafts expire on their own; Get reports ok=false for missing or expired ones.
type IDraftRepository interface {
	Save(ctx context.Context, id string, w builder.Wizard) error
	Get(ctx context.Context, id string) (w builder.Wizard, ok bool, err error)
	Delete(ctx context.Context, id string) error
}
