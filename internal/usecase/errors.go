package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrQuoteNotFound       = errors.New("quote not found")
	ErrInvalidQuoteID      = errors.New("invalid quote id")
	ErrInvalidStatus       = errors.New("invalid quote status")
	ErrInvalidTracking     = errors.New("invalid tracking number")
	ErrInvalidQuoteContent = errors.New("invalid quote content")
	ErrQuoteNotEditable    = errors.New("quote can no longer be edited")
	ErrQuoteNotCancellable = errors.New("quote can no longer be cancelled")
	ErrUnknownCommand      = errors.New("unknown quote command")

	ErrDraftNotFound   = errors.New("draft not found")
	ErrInvalidDraftID  = errors.New("invalid draft id")
	ErrDraftIncomplete = errors.New("draft is incomplete")
)

// IncompleteDraftError lists the field errors that block a draft submit.
type IncompleteDraftError struct {
	Errors map[string]string
}

func (e *IncompleteDraftError) Error() string { return ErrDraftIncomplete.Error() }

func (e *IncompleteDraftError) Unwrap() error { return ErrDraftIncomplete }

const (
	CodePermissionDenied = "PERMISSION_DENIED"
	CodeUnauthenticated  = "UNAUTHENTICATED"
)

// OperationError is an authorization failure on a named operation. Callers
// should not retry it.
type OperationError struct {
	Code   string
	Op     string
	Reason string
}

func (e *OperationError) Error() string {
	if e.Op == "" {
		return e.Code
	}
	if e.Reason == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Code)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Code, e.Reason)
}

// Is matches any OperationError carrying the same code.
func (e *OperationError) Is(target error) bool {
	t, ok := target.(*OperationError)
	return ok && t.Code == e.Code
}

var (
	ErrPermissionDenied = &OperationError{Code: CodePermissionDenied}
	ErrUnauthenticated  = &OperationError{Code: CodeUnauthenticated}
)

func permissionDenied(op, reason string) error {
	return &OperationError{Code: CodePermissionDenied, Op: op, Reason: reason}
}

func unauthenticated(op string) error {
	return &OperationError{Code: CodeUnauthenticated, Op: op}
}
