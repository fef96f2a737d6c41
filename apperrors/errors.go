// apperrors/errors.go - Error taxonomy and HTTP mapping
package apperrors

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Kind classifies an error into the categories the API reports.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindExpired
	KindUnavailable
	KindRegistrationClosed
)

// Error carries a kind and a user-facing message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(message string) *Error  { return New(KindValidation, message) }
func Conflict(message string) *Error    { return New(KindConflict, message) }
func NotFound(message string) *Error    { return New(KindNotFound, message) }
func Expired(message string) *Error     { return New(KindExpired, message) }
func Unavailable(message string) *Error { return New(KindUnavailable, message) }

// RegistrationClosed is a business-rule rejection, not a technical failure.
// The client renders a terminal "registration unavailable" screen for it.
func RegistrationClosed(message string) *Error {
	return New(KindRegistrationClosed, message)
}

// StatusOf maps an error to its HTTP status code.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		switch e.Kind {
		case KindValidation:
			return fiber.StatusBadRequest
		case KindConflict:
			return fiber.StatusConflict
		case KindNotFound:
			return fiber.StatusNotFound
		case KindExpired:
			return fiber.StatusGone
		case KindUnavailable:
			return fiber.StatusServiceUnavailable
		case KindRegistrationClosed:
			return fiber.StatusUnprocessableEntity
		}
	}
	return fiber.StatusInternalServerError
}

// Classify translates database errors into taxonomy entries. Unique
// violations become conflicts, missing rows become not-found; anything else
// is internal.
func Classify(err error, message string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Wrap(KindConflict, "A record with this data already exists", err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return Wrap(KindNotFound, "The requested resource was not found", err)
	default:
		return Wrap(KindInternal, message, err)
	}
}

// MessageOf returns the user-facing message for an error.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal server error"
}
