package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"coatingshop/internal/domain/entities"
	mock_interfaces "coatingshop/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validContactMessage() entities.ContactMessage {
	return entities.ContactMessage{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Service: "wheels",
		Message: "I need four wheels coated in gloss black.",
	}
}

func TestValidateContactMessage(t *testing.T) {
	t.Run("valid without phone", func(t *testing.T) {
		if errs := ValidateContactMessage(validContactMessage()); len(errs) != 0 {
			t.Fatalf("expected no errors, got %+v", errs)
		}
	})

	t.Run("every field in form order", func(t *testing.T) {
		errs := ValidateContactMessage(entities.ContactMessage{Name: "J", Email: "nope", Phone: "12", Message: "short"})
		want := []string{"name", "email", "phone", "service", "message"}
		if len(errs) != len(want) {
			t.Fatalf("expected %d errors, got %+v", len(want), errs)
		}
		for i, f := range want {
			if errs[i].Field != f || errs[i].Message == "" {
				t.Fatalf("error %d: expected field %s, got %+v", i, f, errs[i])
			}
		}
	})
}

func TestContactUseCase_Submit(t *testing.T) {
	t.Run("validation error skips mail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mailer := mock_interfaces.NewMockIMailer(ctrl)
		uc := NewContactUseCase(mailer, "shop@example.com", nil)

		msg := validContactMessage()
		msg.Message = "hi"
		err := uc.Submit(context.Background(), msg)
		if !errors.Is(err, ErrContactValidation) {
			t.Fatalf("expected ErrContactValidation, got %v", err)
		}
		var verr *ContactValidationError
		if !errors.As(err, &verr) || len(verr.Errors) != 1 || verr.Errors[0].Field != "message" {
			t.Fatalf("unexpected validation error %#v", err)
		}
	})

	t.Run("sends notification and confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mailer := mock_interfaces.NewMockIMailer(ctrl)
		uc := NewContactUseCase(mailer, "shop@example.com", nil)

		var (
			mu   sync.Mutex
			sent = map[string]entities.EmailNotification{}
		)
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(func(_ context.Context, n entities.EmailNotification) error {
			mu.Lock()
			defer mu.Unlock()
			sent[n.Template] = n
			return nil
		})

		if err := uc.Submit(context.Background(), validContactMessage()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		notify, ok := sent[TemplateContactNotification]
		if !ok || notify.To != "shop@example.com" || notify.ReplyTo != "jane@example.com" {
			t.Fatalf("unexpected notification %+v", notify)
		}
		confirm, ok := sent[TemplateContactConfirmation]
		if !ok || confirm.To != "jane@example.com" {
			t.Fatalf("unexpected confirmation %+v", confirm)
		}
	})

	t.Run("one failed send fails the request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mailer := mock_interfaces.NewMockIMailer(ctrl)
		uc := NewContactUseCase(mailer, "shop@example.com", nil)

		smtpErr := errors.New("smtp down")
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(func(_ context.Context, n entities.EmailNotification) error {
			if n.Template == TemplateContactConfirmation {
				return smtpErr
			}
			return nil
		})

		err := uc.Submit(context.Background(), validContactMessage())
		if !errors.Is(err, smtpErr) {
			t.Fatalf("expected smtp error, got %v", err)
		}
	})

	t.Run("failed notification leaves confirmation running", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mailer := mock_interfaces.NewMockIMailer(ctrl)
		uc := NewContactUseCase(mailer, "shop@example.com", nil)

		smtpErr := errors.New("mailbox unavailable")
		failed := make(chan struct{})
		var confirmErr error
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(func(ctx context.Context, n entities.EmailNotification) error {
			if n.Template == TemplateContactNotification {
				close(failed)
				return smtpErr
			}
			<-failed
			select {
			case <-ctx.Done():
				confirmErr = ctx.Err()
			case <-time.After(50 * time.Millisecond):
			}
			return confirmErr
		})

		err := uc.Submit(context.Background(), validContactMessage())
		if !errors.Is(err, smtpErr) {
			t.Fatalf("expected notification error, got %v", err)
		}
		if confirmErr != nil {
			t.Fatalf("confirmation context was cancelled: %v", confirmErr)
		}
	})

	t.Run("mailer not configured", func(t *testing.T) {
		uc := NewContactUseCase(nil, "shop@example.com", nil)
		err := uc.Submit(context.Background(), validContactMessage())
		if err == nil || err.Error() != "mailer not configured" {
			t.Fatalf("expected mailer not configured, got %v", err)
		}
	})
}
