// Package errs holds the error taxonomy shared by every scoring-engine module.
//
// Validation and authorization failures carry user-facing message text; the
// HTTP layer and the UI both match on those phrases, so messages are kept
// verbatim when errors are wrapped.
package errs

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed input. It is always raised before any write.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports a missing game, entry, league, season or match.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// AuthorizationError reports a caller lacking the required role or membership.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	return e.Reason
}

// Validation builds a ValidationError with a formatted message.
func Validation(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFound builds a NotFoundError for the given resource and identifier.
func NotFound(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// Unauthorized builds an AuthorizationError.
func Unauthorized(reason string) error {
	return &AuthorizationError{Reason: reason}
}

// IsValidation reports whether err wraps a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsAuthorization reports whether err wraps an AuthorizationError.
func IsAuthorization(err error) bool {
	var a *AuthorizationError
	return errors.As(err, &a)
}

// IsDomain reports whether err is one of the taxonomy errors, as opposed to an
// infrastructure failure.
func IsDomain(err error) bool {
	return IsValidation(err) || IsNotFound(err) || IsAuthorization(err)
}
