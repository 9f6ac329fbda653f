package http

import (
	"net/http"

	"github.com/openroam/traveldiary/internal/diary/service"
	"github.com/openroam/traveldiary/pkg/httpx"
)

type AuthHandler struct {
	AuthService *service.AuthService
	UserService *service.UserService
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// HandleRegister godoc
//
//	@Summary		Register a new account
//	@Description	Creates an account and returns its public profile. Log in afterwards for tokens.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		registerRequest	true	"Account details"
//	@Success		201		{object}	domain.Profile
//	@Failure		400		{object}	httpx.ErrorBody	"Validation failure"
//	@Failure		409		{object}	httpx.ErrorBody	"Email already exists"
//	@Failure		503		{object}	httpx.ErrorBody	"Hashing unavailable"
//	@Router			/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeValid[registerRequest](w, r)
	if !ok {
		return
	}

	profile, err := h.AuthService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, profile)
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Verifies credentials and returns an access/refresh token pair.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		loginRequest	true	"Credentials"
//	@Success		200		{object}	service.TokenPair
//	@Failure		400		{object}	httpx.ErrorBody	"Validation failure"
//	@Failure		401		{object}	httpx.ErrorBody	"Invalid credentials"
//	@Router			/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeValid[loginRequest](w, r)
	if !ok {
		return
	}

	pair, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, pair)
}

// HandleRefresh godoc
//
//	@Summary		Refresh the access token
//	@Description	Exchanges a valid refresh token for a new access token. The refresh token is not rotated.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		refreshRequest	true	"Refresh token"
//	@Success		200		{object}	refreshResponse
//	@Failure		401		{object}	httpx.ErrorBody	"Invalid or expired refresh token"
//	@Router			/auth/refresh [post].
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeValid[refreshRequest](w, r)
	if !ok {
		return
	}

	token, err := h.AuthService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, refreshResponse{AccessToken: token})
}

// HandleMe godoc
//
//	@Summary		Current account profile
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	domain.Profile
//	@Failure		401	{object}	httpx.ErrorBody
//	@Router			/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	profile, err := h.UserService.GetByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, profile)
}
