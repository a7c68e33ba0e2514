package services

import (
	"errors"
	"strings"
)

// Error taxonomy surfaced to the controllers: not-found, conflict, forbidden,
// bad credentials. Controllers map these onto status codes.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrItemNotFound       = errors.New("item not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrEmailConflict      = errors.New("email conflicts with a concurrently created user")
	ErrForbidden          = errors.New("not the owner")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// isDuplicateKey reports whether err is the database's own unique-constraint
// violation. Email uniqueness is checked before insert, but a concurrent
// create can still slip past the check; the constraint is the backstop.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "duplicate") ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}
