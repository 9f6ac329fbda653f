package http

import (
	"net/http"

	"github.com/openroam/traveldiary/internal/diary/service"
	"github.com/openroam/traveldiary/pkg/httpx"
)

type LikesHandler struct {
	LikeService *service.LikeService
}

// HandleLike godoc
//
//	@Summary		Like a post
//	@Tags			Likes
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Post ID"
//	@Success		204
//	@Failure		400	{object}	httpx.ErrorBody	"Already liked"
//	@Failure		404	{object}	httpx.ErrorBody	"Post not found"
//	@Router			/posts/{id}/like [post].
func (h *LikesHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	if err := h.LikeService.Like(r.Context(), userID, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleUnlike godoc
//
//	@Summary		Remove a like
//	@Description	Removing a like that was never set still succeeds.
//	@Tags			Likes
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Post ID"
//	@Success		204
//	@Failure		404	{object}	httpx.ErrorBody	"Post not found"
//	@Router			/posts/{id}/unlike [delete].
func (h *LikesHandler) HandleUnlike(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	if err := h.LikeService.Unlike(r.Context(), userID, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleLiked godoc
//
//	@Summary		Posts the caller has liked
//	@Description	Published posts only, most recently liked first.
//	@Tags			Likes
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int	false	"Page number (1-based)"
//	@Success		200		{object}	domain.Paginated[domain.Post]
//	@Failure		401		{object}	httpx.ErrorBody
//	@Router			/posts/likes [get].
func (h *LikesHandler) HandleLiked(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	page, err := h.LikeService.LikedPosts(r.Context(), userID, pageParam(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, page)
}
