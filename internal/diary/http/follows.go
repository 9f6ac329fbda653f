package http

import (
	"net/http"

	"github.com/openroam/traveldiary/internal/diary/service"
	"github.com/openroam/traveldiary/pkg/httpx"
)

type FollowsHandler struct {
	FollowService *service.FollowService
}

// HandleFollow godoc
//
//	@Summary		Follow a user
//	@Tags			Follows
//	@Security		BearerAuth
//	@Param			id	path	string	true	"User ID to follow"
//	@Success		204
//	@Failure		400	{object}	httpx.ErrorBody	"Self-follow or already following"
//	@Failure		404	{object}	httpx.ErrorBody	"Target user not found"
//	@Router			/follow/{id} [post].
func (h *FollowsHandler) HandleFollow(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	if err := h.FollowService.Follow(r.Context(), userID, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleUnfollow godoc
//
//	@Summary		Unfollow a user
//	@Tags			Follows
//	@Security		BearerAuth
//	@Param			id	path	string	true	"User ID to unfollow"
//	@Success		204
//	@Failure		404	{object}	httpx.ErrorBody	"Not following this user"
//	@Router			/unfollow/{id} [delete].
func (h *FollowsHandler) HandleUnfollow(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	if err := h.FollowService.Unfollow(r.Context(), userID, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleFollowers godoc
//
//	@Summary		List the caller's followers
//	@Tags			Follows
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int	false	"Page number (1-based)"
//	@Success		200		{object}	domain.Paginated[domain.Summary]
//	@Failure		401		{object}	httpx.ErrorBody
//	@Router			/followers [get].
func (h *FollowsHandler) HandleFollowers(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	page, err := h.FollowService.Followers(r.Context(), userID, pageParam(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, page)
}

// HandleFollowing godoc
//
//	@Summary		List who the caller follows
//	@Tags			Follows
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int	false	"Page number (1-based)"
//	@Success		200		{object}	domain.Paginated[domain.Summary]
//	@Failure		401		{object}	httpx.ErrorBody
//	@Router			/following [get].
func (h *FollowsHandler) HandleFollowing(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	page, err := h.FollowService.Following(r.Context(), userID, pageParam(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, page)
}
