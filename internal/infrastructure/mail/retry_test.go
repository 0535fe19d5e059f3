package mail

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"coatingshop/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type flakyMailer struct {
	failures int
	calls    int
	err      error
}

func (f *flakyMailer) Send(_ context.Context, _ entities.EmailNotification) error {
	f.calls++
	if f.calls <= f.failures {
		return f.err
	}
	return nil
}

func fastRetry(next *flakyMailer) *RetryingMailer {
	return NewRetryingMailer(next, zap.NewNop(), WithIntervals(time.Millisecond, 2*time.Millisecond))
}

func TestRetryingMailer_Send(t *testing.T) {
	n := entities.EmailNotification{To: "jane@example.com", Template: "contact_confirmation"}

	t.Run("first attempt succeeds", func(t *testing.T) {
		f := &flakyMailer{}
		assert.NoError(t, fastRetry(f).Send(context.Background(), n))
		assert.Equal(t, 1, f.calls)
	})

	t.Run("succeeds on the last attempt", func(t *testing.T) {
		f := &flakyMailer{failures: 2, err: errors.New("smtp 451")}
		assert.NoError(t, fastRetry(f).Send(context.Background(), n))
		assert.Equal(t, 3, f.calls)
	})

	t.Run("gives up after three attempts", func(t *testing.T) {
		smtpErr := errors.New("smtp 554")
		f := &flakyMailer{failures: 10, err: smtpErr}
		err := fastRetry(f).Send(context.Background(), n)
		assert.ErrorIs(t, err, ErrDeliveryFailed)
		assert.ErrorIs(t, err, smtpErr)
		assert.Equal(t, 3, f.calls)
	})

	t.Run("custom attempt count", func(t *testing.T) {
		f := &flakyMailer{failures: 10, err: errors.New("down")}
		r := NewRetryingMailer(f, zap.NewNop(), WithAttempts(5), WithIntervals(time.Millisecond, time.Millisecond))
		assert.Error(t, r.Send(context.Background(), n))
		assert.Equal(t, 5, f.calls)
	})

	t.Run("unknown template is not retried", func(t *testing.T) {
		f := &flakyMailer{failures: 10, err: fmt.Errorf("render html: %w: quote_receipt", ErrUnknownTemplate)}
		err := fastRetry(f).Send(context.Background(), n)
		assert.ErrorIs(t, err, ErrDeliveryFailed)
		assert.ErrorIs(t, err, ErrUnknownTemplate)
		assert.Equal(t, 1, f.calls)
	})

	t.Run("render failure is not retried", func(t *testing.T) {
		f := &flakyMailer{failures: 10, err: fmt.Errorf("%w: contact_confirmation: missing key", ErrRender)}
		err := fastRetry(f).Send(context.Background(), n)
		assert.ErrorIs(t, err, ErrRender)
		assert.Equal(t, 1, f.calls)
	})

	t.Run("cancelled context stops retrying", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		f := &flakyMailer{failures: 10, err: errors.New("down")}
		err := fastRetry(f).Send(ctx, n)
		assert.ErrorIs(t, err, ErrDeliveryFailed)
		assert.LessOrEqual(t, f.calls, 1)
	})
}
