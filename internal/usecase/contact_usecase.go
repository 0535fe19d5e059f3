package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"coatingshop/internal/domain/entities"
	"coatingshop/internal/domain/validation"
	"coatingshop/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	TemplateContactNotification = "contact_notification"
	TemplateContactConfirmation = "contact_confirmation"

	minContactMessageLength = 10
)

var ErrContactValidation = errors.New("validation failed")

// FieldError is one rejected contact form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ContactValidationError lists every rejected field in form order.
type ContactValidationError struct {
	Errors []FieldError
}

func (e *ContactValidationError) Error() string { return ErrContactValidation.Error() }

func (e *ContactValidationError) Unwrap() error { return ErrContactValidation }

type IContactUseCase interface {
	Submit(ctx context.Context, msg entities.ContactMessage) error
}

// ContactUseCase relays contact form messages: one notification to the shop
// and one confirmation to the sender. Both must be delivered.
type ContactUseCase struct {
	mailer   interfaces.IMailer
	notifyTo string
	log      *zap.Logger
}

var _ IContactUseCase = (*ContactUseCase)(nil)

func NewContactUseCase(mailer interfaces.IMailer, notifyTo string, log *zap.Logger) *ContactUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ContactUseCase{mailer: mailer, notifyTo: notifyTo, log: log.Named("contact")}
}

func (u *ContactUseCase) Submit(ctx context.Context, msg entities.ContactMessage) error {
	msg = normalizeContact(msg)
	if errs := ValidateContactMessage(msg); len(errs) > 0 {
		return &ContactValidationError{Errors: errs}
	}
	if u.mailer == nil {
		return errors.New("mailer not configured")
	}

	data := map[string]any{
		"Name":    msg.Name,
		"Email":   msg.Email,
		"Phone":   msg.Phone,
		"Service": msg.Service,
		"Message": msg.Message,
	}
	notification := entities.EmailNotification{
		To:       u.notifyTo,
		ReplyTo:  msg.Email,
		Subject:  fmt.Sprintf("New contact request: %s", msg.Service),
		Template: TemplateContactNotification,
		Data:     data,
	}
	confirmation := entities.EmailNotification{
		To:       msg.Email,
		Subject:  "We received your message",
		Template: TemplateContactConfirmation,
		Data:     data,
	}

	// A plain group: one failed send must not cancel the other's retries.
	var g errgroup.Group
	g.Go(func() error {
		if err := u.mailer.Send(ctx, notification); err != nil {
			return fmt.Errorf("send notification: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := u.mailer.Send(ctx, confirmation); err != nil {
			return fmt.Errorf("send confirmation: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		u.log.Error("contact relay failed", zap.String("email", msg.Email), zap.Error(err))
		return err
	}

	u.log.Info("contact relayed", zap.String("email", msg.Email), zap.String("service", msg.Service))
	return nil
}

func normalizeContact(m entities.ContactMessage) entities.ContactMessage {
	return entities.ContactMessage{
		Name:    strings.TrimSpace(m.Name),
		Email:   strings.TrimSpace(m.Email),
		Phone:   strings.TrimSpace(m.Phone),
		Service: strings.TrimSpace(m.Service),
		Message: strings.TrimSpace(m.Message),
	}
}

// ValidateContactMessage checks a contact form. Phone is optional but must be
// well formed when present.
func ValidateContactMessage(m entities.ContactMessage) []FieldError {
	var errs []FieldError
	add := func(field, msg string) {
		if msg != "" {
			errs = append(errs, FieldError{Field: field, Message: msg})
		}
	}

	add("name", validation.Field(validation.FieldName, m.Name))
	add("email", validation.Field(validation.FieldEmail, m.Email))
	if strings.TrimSpace(m.Phone) != "" {
		add("phone", validation.Field(validation.FieldPhone, m.Phone))
	}
	if strings.TrimSpace(m.Service) == "" {
		add("service", "Please select a service")
	}
	if len([]rune(strings.TrimSpace(m.Message))) < minContactMessageLength {
		add("message", fmt.Sprintf("Message must be at least %d characters", minContactMessageLength))
	}
	return errs
}
