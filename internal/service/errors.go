package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/recipebook/backend/internal/models"
)

// Kind classifies a service failure so the API layer can pick a status code
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindForbidden
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindForbidden:
		return "forbidden"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "internal"
	}
}

// Error is the typed failure returned by every service operation
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

func newError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

func validationError(msg string) error { return newError(KindValidation, msg, nil) }
func notFound(msg string) error { return newError(KindNotFound, msg, nil) }
func conflict(msg string) error { return newError(KindConflict, msg, nil) }
func forbidden(msg string) error { return newError(KindForbidden, msg, nil) }
func unauthorized(msg string) error { return newError(KindUnauthorized, msg, nil) }
func internal(msg string, err error) error { return newError(KindInternal, msg, err) }

// KindOf returns the kind of err, treating untyped errors as internal
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

// IsKind reports whether err is a service error of the given kind
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// MessageOf returns the client-facing message of err
func MessageOf(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Message
	}
	return "Server error"
}

// parseID turns a path identifier into a UUID. Malformed ids are reported
// exactly like missing ones.
func parseID(raw, notFoundMsg string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, notFound(notFoundMsg)
	}
	return id, nil
}

// storeError maps a gorm failure onto the service taxonomy
func storeError(err error, notFoundMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return newError(KindNotFound, notFoundMsg, nil)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return newError(KindConflict, "Resource already exists", err)
	default:
		return internal("Server error", err)
	}
}

// modelError converts model validation failures to a validation error
func modelError(err error) error {
	var verrs models.ValidationErrors
	if errors.As(err, &verrs) {
		return newError(KindValidation, verrs.Error(), nil)
	}
	return err
}
