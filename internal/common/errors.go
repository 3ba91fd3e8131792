// Package common defines shared constants and sentinel errors used across
// the client and server layers. Callers should use errors.Is to match them.
package common

import (
	"errors"
	"fmt"
)

var (
	// repository-level errors
	ErrorNotFound = errors.New("not found")

	// validation errors, raised before any write is attempted
	ErrValidation    = errors.New("validation error")
	ErrUsernameTaken = fmt.Errorf("%w: username already taken", ErrValidation)

	// auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// root-admin protection, enforced by the backend only
	ErrForbidden = errors.New("forbidden")
)
