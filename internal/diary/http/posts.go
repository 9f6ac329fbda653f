package http

import (
	"net/http"

	"github.com/openroam/traveldiary/internal/diary/service"
	"github.com/openroam/traveldiary/pkg/httpx"
)

type PostsHandler struct {
	PostService *service.PostService
}

type createPostRequest struct {
	Title    string `json:"title"    validate:"required,max=200"`
	Content  string `json:"content"  validate:"required"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url"`
}

type updatePostRequest struct {
	Title    *string `json:"title"    validate:"omitempty,max=200"`
	Content  *string `json:"content"  validate:"omitempty"`
	ImageURL *string `json:"imageUrl" validate:"omitempty,url"`
}

type publishPostRequest struct {
	Published *bool `json:"published" validate:"required"`
}

// HandleCreate godoc
//
//	@Summary		Create a diary post
//	@Description	The authenticated user becomes the author. Posts start published.
//	@Tags			Posts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		createPostRequest	true	"Post content"
//	@Success		201		{object}	domain.Post
//	@Failure		400		{object}	httpx.ErrorBody
//	@Failure		401		{object}	httpx.ErrorBody
//	@Router			/posts [post].
func (h *PostsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	req, ok := decodeValid[createPostRequest](w, r)
	if !ok {
		return
	}

	post, err := h.PostService.Create(r.Context(), userID, req.Title, req.Content, req.ImageURL)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, post)
}

// HandleList godoc
//
//	@Summary		List published posts
//	@Description	Newest first, 10 per page, enriched with author and like count.
//	@Tags			Posts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int	false	"Page number (1-based)"
//	@Success		200		{object}	domain.Paginated[domain.Post]
//	@Failure		401		{object}	httpx.ErrorBody
//	@Router			/posts [get].
func (h *PostsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, err := h.PostService.List(r.Context(), pageParam(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, page)
}

// HandleFeed godoc
//
//	@Summary		Posts from followed authors
//	@Description	Published posts by users the caller follows. Following nobody yields an empty page.
//	@Tags			Posts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int	false	"Page number (1-based)"
//	@Success		200		{object}	domain.Paginated[domain.Post]
//	@Failure		401		{object}	httpx.ErrorBody
//	@Router			/posts/following [get].
func (h *PostsHandler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	page, err := h.PostService.Feed(r.Context(), userID, pageParam(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, page)
}

// HandleGet godoc
//
//	@Summary		Get a post
//	@Tags			Posts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Post ID"
//	@Success		200	{object}	domain.Post
//	@Failure		404	{object}	httpx.ErrorBody
//	@Router			/posts/{id} [get].
func (h *PostsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	post, err := h.PostService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, post)
}

// HandleUpdate godoc
//
//	@Summary		Update a post
//	@Description	Partial content update; publication state is managed via PATCH.
//	@Tags			Posts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Post ID"
//	@Param			request	body		updatePostRequest	true	"Fields to change"
//	@Success		200		{object}	domain.Post
//	@Failure		404		{object}	httpx.ErrorBody
//	@Router			/posts/{id} [put].
func (h *PostsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeValid[updatePostRequest](w, r)
	if !ok {
		return
	}

	post, err := h.PostService.Update(r.Context(), r.PathValue("id"), service.PostUpdateInput{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, post)
}

// HandlePublish godoc
//
//	@Summary		Publish or archive a post
//	@Description	Toggles visibility in public listings without touching content.
//	@Tags			Posts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Post ID"
//	@Param			request	body		publishPostRequest	true	"Desired state"
//	@Success		200		{object}	domain.Post
//	@Failure		404		{object}	httpx.ErrorBody
//	@Router			/posts/{id} [patch].
func (h *PostsHandler) HandlePublish(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeValid[publishPostRequest](w, r)
	if !ok {
		return
	}

	post, err := h.PostService.SetPublished(r.Context(), r.PathValue("id"), *req.Published)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, post)
}

// HandleDelete godoc
//
//	@Summary		Delete a post
//	@Tags			Posts
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Post ID"
//	@Success		204
//	@Failure		404	{object}	httpx.ErrorBody
//	@Router			/posts/{id} [delete].
func (h *PostsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.PostService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
