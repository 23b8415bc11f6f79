package exception

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error so callers can branch on it
// without comparing messages.
type Kind string

const (
	KindBuild        Kind = "build"
	KindRateLimit    Kind = "rate_limit"
	KindAuth         Kind = "auth"
	KindValidation   Kind = "validation"
	KindProvider     Kind = "provider"
	KindInvalidToken Kind = "invalid_token"
	KindTokenExpired Kind = "token_expired"
	KindNoOptions    Kind = "no_options"
	KindNotFound     Kind = "not_found"
	KindBadRequest   Kind = "bad_request"
)

// ApplicationError handles application level errors.
type ApplicationError struct {
	Kind       Kind
	Message    string
	StatusCode int
	Cause      error
}

// New creates an application error of the given kind with the status code
// registered for that kind.
func New(kind Kind, message string) ApplicationError {
	return ApplicationError{
		Kind:       kind,
		Message:    message,
		StatusCode: StatusCodeFor(kind),
	}
}

// Wrap is New with an underlying cause attached.
func Wrap(kind Kind, message string, cause error) ApplicationError {
	appErr := New(kind, message)
	appErr.Cause = cause

	return appErr
}

// Error interface implementation.
func (e ApplicationError) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Cause)
}

func (e ApplicationError) Unwrap() error {
	if e.Cause == nil {
		return errors.New(e.Message)
	}

	return e.Cause
}

// Is matches on Kind when the target has one, otherwise on Message and Cause.
func (e ApplicationError) Is(target error) bool {
	var targetErr ApplicationError

	if !errors.As(target, &targetErr) {
		return false
	}

	if targetErr.Kind != "" {
		return e.Kind == targetErr.Kind
	}

	return e.Cause == targetErr.Cause &&
		e.Message == targetErr.Message
}

// ErrorCode returns error code for an application error.
func (e ApplicationError) ErrorCode() int {
	return e.StatusCode
}

// StatusCodeFor maps an error kind to the HTTP status returned to callers.
// Upstream credential failures map to 502.
func StatusCodeFor(kind Kind) int {
	switch kind {
	case KindBuild, KindValidation, KindInvalidToken, KindBadRequest:
		return http.StatusBadRequest
	case KindRateLimit:
		return http.StatusTooManyRequests
	case KindTokenExpired:
		return http.StatusGone
	case KindNoOptions, KindNotFound:
		return http.StatusNotFound
	case KindAuth, KindProvider:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// KindOf returns the kind of the first ApplicationError in err's chain.
func KindOf(err error) Kind {
	var appErr ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}

	return ""
}
