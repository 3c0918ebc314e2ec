package handler

import (
	"errors"
	"net/http"

	"writeit-server/internal/service"
	"writeit-server/pkg/response"
)

// writeServiceError is the one place domain failures become status codes.
// Anything not in the taxonomy is an internal failure and stays opaque to
// the caller.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(w, "User not found")
	case errors.Is(err, service.ErrNoteNotFound):
		response.NotFound(w, "Note not found")
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(w, "Incorrect password")
	case errors.Is(err, service.ErrEmailTaken):
		response.Conflict(w, "Email already registered")
	case errors.Is(err, service.ErrNotNoteOwner):
		response.Forbidden(w, "Note does not belong to user")
	case errors.Is(err, service.ErrInvalidToken):
		response.Unauthorized(w, "Invalid or expired token")
	default:
		response.InternalError(w, "Internal server error")
	}
}
