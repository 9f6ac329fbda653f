package http

import (
	"net/http"

	"github.com/openroam/traveldiary/internal/diary/service"
	"github.com/openroam/traveldiary/pkg/httpx"
)

type UsersHandler struct {
	UserService *service.UserService
}

type updateUserRequest struct {
	Name         *string `json:"name"         validate:"omitempty,max=100"`
	Email        *string `json:"email"        validate:"omitempty,email"`
	ProfilePhoto *string `json:"profilePhoto" validate:"omitempty,url"`
	Password     *string `json:"password"     validate:"omitempty,min=6,max=72"`
}

// HandleCreate godoc
//
//	@Summary		Create an account
//	@Description	Same contract as /auth/register; kept as the resource-style entry point.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		registerRequest	true	"Account details"
//	@Success		201		{object}	domain.Profile
//	@Failure		400		{object}	httpx.ErrorBody
//	@Failure		409		{object}	httpx.ErrorBody	"Email already exists"
//	@Failure		503		{object}	httpx.ErrorBody	"Hashing unavailable"
//	@Router			/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeValid[registerRequest](w, r)
	if !ok {
		return
	}

	profile, err := h.UserService.Create(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, profile)
}

// HandleSearch godoc
//
//	@Summary		Search users by name
//	@Description	Case-insensitive substring match, 10 per page. No matches is an empty page, not a 404.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			name	query		string	false	"Name fragment"
//	@Param			page	query		int		false	"Page number (1-based)"
//	@Success		200		{object}	domain.Paginated[domain.Summary]
//	@Failure		401		{object}	httpx.ErrorBody
//	@Router			/users [get].
func (h *UsersHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	page, err := h.UserService.Search(r.Context(), r.URL.Query().Get("name"), pageParam(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, page)
}

// HandleGet godoc
//
//	@Summary		Get a user profile
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"User ID"
//	@Success		200	{object}	domain.Profile
//	@Failure		404	{object}	httpx.ErrorBody
//	@Router			/users/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	profile, err := h.UserService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, profile)
}

// HandleUpdate godoc
//
//	@Summary		Update a user
//	@Description	Partial update; a new password is rehashed before storage.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"User ID"
//	@Param			request	body		updateUserRequest	true	"Fields to change"
//	@Success		200		{object}	domain.Profile
//	@Failure		404		{object}	httpx.ErrorBody
//	@Failure		409		{object}	httpx.ErrorBody	"Email already exists"
//	@Failure		503		{object}	httpx.ErrorBody	"Hashing unavailable"
//	@Router			/users/{id} [patch].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeValid[updateUserRequest](w, r)
	if !ok {
		return
	}

	profile, err := h.UserService.Update(r.Context(), r.PathValue("id"), service.UserUpdateInput{
		Name:         req.Name,
		Email:        req.Email,
		ProfilePhoto: req.ProfilePhoto,
		Password:     req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, profile)
}

// HandleDelete godoc
//
//	@Summary		Delete a user
//	@Tags			Users
//	@Security		BearerAuth
//	@Param			id	path	string	true	"User ID"
//	@Success		204
//	@Failure		404	{object}	httpx.ErrorBody
//	@Router			/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.UserService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
