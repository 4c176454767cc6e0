// internal/bank/errors.go
//
// Domain errors raised synchronously by the core. The shell catches them,
// renders a one-line message and re-prompts; none of them is fatal.
// Declines (insufficient balance, invalid login) are not errors, see Decline.

package bank

import (
	"errors"
	"fmt"
)

// ErrorCategory groups error codes by the kind of failure.
type ErrorCategory string

const (
	CategoryValidation ErrorCategory = "VALIDATION"
	CategoryConflict   ErrorCategory = "CONFLICT"
)

// DomainError is an error carrying a stable code and category. errors.Is
// compares codes, so a sentinel still matches after WithCause.
type DomainError interface {
	error
	Code() string
	Category() ErrorCategory
	Message() string
	Unwrap() error
	WithCause(cause error) DomainError
}

type domainError struct {
	code     string
	category ErrorCategory
	message  string
	cause    error
}

func (e *domainError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *domainError) Code() string            { return e.code }
func (e *domainError) Category() ErrorCategory { return e.category }
func (e *domainError) Message() string         { return e.message }
func (e *domainError) Unwrap() error           { return e.cause }

// Is matches on code so that errors.Is(ErrX.WithCause(c), ErrX) holds.
func (e *domainError) Is(target error) bool {
	var t *domainError
	if !errors.As(target, &t) {
		return false
	}
	return e.code == t.code
}

func (e *domainError) WithCause(cause error) DomainError {
	return &domainError{
		code:     e.code,
		category: e.category,
		message:  e.message,
		cause:    cause,
	}
}

// NewDomainError builds a sentinel with no cause.
func NewDomainError(code string, category ErrorCategory, message string) DomainError {
	return &domainError{code: code, category: category, message: message}
}

// AsDomainError finds the first DomainError in err's chain.
func AsDomainError(err error) (DomainError, bool) {
	var de DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

var (
	// ErrInvalidInput: empty name/password, unparsable amount, unhashable password.
	ErrInvalidInput = NewDomainError("INVALID_INPUT", CategoryValidation, "invalid input")

	// ErrInvalidAmount: deposit or withdrawal amount <= 0.
	ErrInvalidAmount = NewDomainError("INVALID_AMOUNT", CategoryValidation, "amount must be > 0")

	// ErrDuplicateIdentifier: a record already exists for the customer id.
	ErrDuplicateIdentifier = NewDomainError("DUPLICATE_IDENTIFIER", CategoryConflict, "customer id already exists")
)
