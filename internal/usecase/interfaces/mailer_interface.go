package interfaces

import (
	"context"

	"coatingshop/internal/domain/entities"
)

// IMailer delivers one templated email. Implementations may retry; a returned
// error is terminal.
type IMailer interface {
	Send(ctx context.Context, n entities.EmailNotification) error
}
