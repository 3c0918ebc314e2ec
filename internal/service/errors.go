package service

import "errors"

// Every failure a service can produce maps to exactly one of these kinds.
// Handlers translate them to status codes in one place; raw store errors
// never reach the API boundary.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrNoteNotFound       = errors.New("note not found")
	ErrInvalidCredentials = errors.New("incorrect password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotNoteOwner       = errors.New("note does not belong to user")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
