package session

import (
	"errors"
	"fmt"
)

// ErrSuperseded is returned by an operation whose result arrived after a newer
// operation (or a sign-out) had already taken over the store.
var ErrSuperseded = errors.New("session: request superseded by a newer one")

// ValidationError is a client-side input problem; no backend call was made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError means the account already exists.
type ConflictError struct {
	Email string
}

func (e *ConflictError) Error() string {
	return "an account with this email already exists"
}

// AuthError means the credentials or token were rejected.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	if e.Reason == "" {
		return "invalid email or password"
	}
	return e.Reason
}

// NetworkError means the backend could not be reached or failed internally.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: backend unavailable: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// UserMessage turns any store error into the text shown in a toast.
func UserMessage(err error) string {
	var (
		validationErr *ValidationError
		conflictErr   *ConflictError
		authErr       *AuthError
		networkErr    *NetworkError
	)
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.As(err, &conflictErr):
		return conflictErr.Error()
	case errors.As(err, &authErr):
		return authErr.Error()
	case errors.As(err, &networkErr):
		return "We couldn't reach the server. Please try again."
	case errors.Is(err, ErrSuperseded):
		return "This request was cancelled by a newer one."
	}
	return "Something went wrong. Please try again."
}
