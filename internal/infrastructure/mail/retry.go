package mail

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coatingshop/internal/domain/entities"
	"coatingshop/internal/usecase/interfaces"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

const (
	DefaultAttempts        = 3
	DefaultInitialInterval = time.Second
	DefaultMaxInterval     = 5 * time.Second
)

// ErrDeliveryFailed wraps the last send error once every attempt is used up.
var ErrDeliveryFailed = errors.New("email delivery failed")

// RetryingMailer retries a wrapped mailer with exponential backoff.
type RetryingMailer struct {
	next            interfaces.IMailer
	attempts        int
	initialInterval time.Duration
	maxInterval     time.Duration
	log             *zap.Logger
}

var _ interfaces.IMailer = (*RetryingMailer)(nil)

type RetryOption func(*RetryingMailer)

func WithAttempts(n int) RetryOption {
	return func(r *RetryingMailer) {
		if n > 0 {
			r.attempts = n
		}
	}
}

func WithIntervals(initial, maxInterval time.Duration) RetryOption {
	return func(r *RetryingMailer) {
		r.initialInterval = initial
		r.maxInterval = maxInterval
	}
}

func NewRetryingMailer(next interfaces.IMailer, log *zap.Logger, opts ...RetryOption) *RetryingMailer {
	r := &RetryingMailer{
		next:            next,
		attempts:        DefaultAttempts,
		initialInterval: DefaultInitialInterval,
		maxInterval:     DefaultMaxInterval,
		log:             log.Named("mail"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *RetryingMailer) Send(ctx context.Context, n entities.EmailNotification) error {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = r.initialInterval
	eb.MaxInterval = r.maxInterval
	eb.MaxElapsedTime = 0

	policy := backoff.WithContext(backoff.WithMaxRetries(eb, uint64(r.attempts-1)), ctx)

	attempt := 0
	var lastErr error
	op := func() error {
		attempt++
		err := r.next.Send(ctx, n)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil || isPermanent(err) {
				return backoff.Permanent(err)
			}
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		r.log.Warn("email send failed, retrying",
			zap.String("template", n.Template),
			zap.Int("attempt", attempt),
			zap.Duration("wait", wait),
			zap.Error(err))
	}

	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		if lastErr == nil {
			lastErr = err
		}
		r.log.Error("email delivery failed",
			zap.String("template", n.Template),
			zap.Int("attempts", attempt),
			zap.Error(lastErr))
		return fmt.Errorf("%w after %d attempts: %w", ErrDeliveryFailed, attempt, lastErr)
	}
	return nil
}

// isPermanent reports errors that another attempt cannot fix.
func isPermanent(err error) bool {
	return errors.Is(err, ErrUnknownTemplate) || errors.Is(err, ErrRender)
}
