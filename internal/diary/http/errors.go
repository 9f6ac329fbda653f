package http

import (
	"errors"
	"net/http"

	"github.com/openroam/traveldiary/internal/diary/service"
	"github.com/openroam/traveldiary/internal/diary/store"
	"github.com/openroam/traveldiary/pkg/cryptox"
	"github.com/openroam/traveldiary/pkg/httpx"
	"github.com/openroam/traveldiary/pkg/slogx"
)

// writeServiceError maps service errors onto the wire contract. Anything
// unrecognised is treated as a 500: the cause goes to the log, the client
// gets a generic body.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrInvalidToken):
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid token")
	case errors.Is(err, service.ErrTokenConfig):
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid token configuration")
	case errors.Is(err, service.ErrTokenUnavailable):
		httpx.WriteError(w, http.StatusServiceUnavailable, "Error generating token")
	case errors.Is(err, cryptox.ErrHashUnavailable):
		httpx.WriteError(w, http.StatusServiceUnavailable, "Error hashing password")
	case errors.Is(err, service.ErrEmailTaken):
		httpx.WriteError(w, http.StatusConflict, "Email already exists")
	case errors.Is(err, service.ErrSelfFollow):
		httpx.WriteError(w, http.StatusBadRequest, "You cannot follow yourself")
	case errors.Is(err, service.ErrAlreadyFollowing):
		httpx.WriteError(w, http.StatusBadRequest, "You are already following this user")
	case errors.Is(err, service.ErrNotFollowing):
		httpx.WriteError(w, http.StatusNotFound, "You are not following this user")
	case errors.Is(err, service.ErrAlreadyLiked):
		httpx.WriteError(w, http.StatusBadRequest, "Post already liked")
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Not found")
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}
