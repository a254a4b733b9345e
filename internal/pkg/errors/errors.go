package errors

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnauthorized
	KindForbidden
)

type Error string

func (e Error) Error() string {
	return string(e)
}

func (e Error) Kind() Kind {
	if kind, ok := kinds[e]; ok {
		return kind
	}
	return KindInternal
}

const (
	ErrCarNotFound        Error = "car does not exist"
	ErrCarPlateNotFound   Error = "no car with that plate number"
	ErrRentalNotFound     Error = "no ongoing rental for that car and renter"
	ErrCarNotAvailable    Error = "car not available for the requested period"
	ErrCustomerNotFound   Error = "customer does not exist"
	ErrPlateAlreadyExists Error = "plate number already registered"
	ErrUnauthorized       Error = "unauthenticated"
	ErrForbidden          Error = "insufficient permissions"
	ErrDb                 Error = "database error"
)

var kinds = map[Error]Kind{
	ErrCarNotFound:        KindNotFound,
	ErrCarPlateNotFound:   KindNotFound,
	ErrRentalNotFound:     KindNotFound,
	ErrCarNotAvailable:    KindConflict,
	ErrCustomerNotFound:   KindNotFound,
	ErrPlateAlreadyExists: KindConflict,
	ErrUnauthorized:       KindUnauthorized,
	ErrForbidden:          KindForbidden,
	ErrDb:                 KindInternal,
}

// ValidationError holds human-readable messages for every rejected field.
type ValidationError struct {
	Messages []string
}

func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, " ")
}

func KindOf(err error) Kind {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return KindValidation
	}

	var domainErr Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind()
	}

	return KindInternal
}

// HTTPStatus maps err to the response status. An unavailable rental window is
// reported as 404 for compatibility with existing clients.
func HTTPStatus(err error) int {
	if errors.Is(err, ErrCarNotAvailable) {
		return http.StatusNotFound
	}

	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing text for err. Domain errors report their
// own text even when wrapped; everything else reports the full chain.
func Message(err error) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Error()
	}

	var domainErr Error
	if errors.As(err, &domainErr) && domainErr.Kind() != KindInternal {
		return domainErr.Error()
	}

	return err.Error()
}

func As(err error, target any) bool {
	return errors.As(err, target)
}
