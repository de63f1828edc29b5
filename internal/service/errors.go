package service

import (
	"errors"
	"fmt"
)

// Sentinel errors for the client-facing failure classes. Handlers map these
// onto HTTP statuses with errors.Is; anything else is a server error.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// validationf wraps ErrValidation with a human-readable reason.
func validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
