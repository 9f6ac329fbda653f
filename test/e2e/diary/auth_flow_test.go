package diary_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openroam/traveldiary/internal/diary/domain"
	"github.com/openroam/traveldiary/internal/diary/service"
)

func TestRegisterLoginMeRefreshFlow(t *testing.T) {
	srv := newTestServer(t)

	// Register.
	status, raw := doJSON(t, srv, http.MethodPost, "/auth/register", "", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, status, string(raw))

	var profile domain.Profile
	decodeInto(t, raw, &profile)
	require.NotEmpty(t, profile.ID)
	require.Equal(t, "alice@example.com", profile.Email)

	// The response never carries credential material.
	require.NotContains(t, string(raw), "password")

	// Login yields both tokens.
	status, raw = doJSON(t, srv, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, status, string(raw))

	var pair service.TokenPair
	decodeInto(t, raw, &pair)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	// Access token opens the guarded profile endpoint.
	status, raw = doJSON(t, srv, http.MethodGet, "/auth/me", pair.AccessToken, nil)
	require.Equal(t, http.StatusOK, status, string(raw))

	var me domain.Profile
	decodeInto(t, raw, &me)
	require.Equal(t, profile.ID, me.ID)

	// Refresh mints a new working access token.
	status, raw = doJSON(t, srv, http.MethodPost, "/auth/refresh", "", map[string]string{
		"refreshToken": pair.RefreshToken,
	})
	require.Equal(t, http.StatusOK, status, string(raw))

	var refreshed struct {
		AccessToken string `json:"accessToken"`
	}
	decodeInto(t, raw, &refreshed)
	require.NotEmpty(t, refreshed.AccessToken)

	status, _ = doJSON(t, srv, http.MethodGet, "/auth/me", refreshed.AccessToken, nil)
	require.Equal(t, http.StatusOK, status)

	// The original refresh token is still accepted afterwards.
	status, _ = doJSON(t, srv, http.MethodPost, "/auth/refresh", "", map[string]string{
		"refreshToken": pair.RefreshToken,
	})
	require.Equal(t, http.StatusOK, status)
}

func TestDuplicateRegistration(t *testing.T) {
	srv := newTestServer(t)
	registerAndLogin(t, srv, "Alice", "alice@example.com")

	status, raw := doJSON(t, srv, http.MethodPost, "/auth/register", "", map[string]string{
		"name":     "Alice Again",
		"email":    "alice@example.com",
		"password": "secret456",
	})
	require.Equal(t, http.StatusConflict, status)

	var body errorBody
	decodeInto(t, raw, &body)
	require.Equal(t, http.StatusConflict, body.StatusCode)
	require.Equal(t, "Email already exists", body.Message)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	srv := newTestServer(t)
	registerAndLogin(t, srv, "Alice", "alice@example.com")

	// Wrong password and unknown email produce the same response shape.
	for _, creds := range []map[string]string{
		{"email": "alice@example.com", "password": "wrong-password"},
		{"email": "nobody@example.com", "password": "secret123"},
	} {
		status, raw := doJSON(t, srv, http.MethodPost, "/auth/login", "", creds)
		require.Equal(t, http.StatusUnauthorized, status)

		var body errorBody
		decodeInto(t, raw, &body)
		require.Equal(t, "Invalid credentials", body.Message)
	}
}

func TestGuardRejectsBadTokens(t *testing.T) {
	srv := newTestServer(t)

	// No Authorization header.
	status, raw := doJSON(t, srv, http.MethodGet, "/auth/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, status)

	var body errorBody
	decodeInto(t, raw, &body)
	require.Equal(t, "Token not found", body.Message)

	// Garbage token.
	status, raw = doJSON(t, srv, http.MethodGet, "/auth/me", "garbage.token.value", nil)
	require.Equal(t, http.StatusUnauthorized, status)

	decodeInto(t, raw, &body)
	require.Equal(t, http.StatusUnauthorized, body.StatusCode)
	require.Equal(t, "Invalid token", body.Message)
}

func TestGuardRejectsDeletedUser(t *testing.T) {
	srv := newTestServer(t)
	profile, pair := registerAndLogin(t, srv, "Alice", "alice@example.com")

	status, _ := doJSON(t, srv, http.MethodDelete, "/users/"+profile.ID, pair.AccessToken, nil)
	require.Equal(t, http.StatusNoContent, status)

	// The signature still verifies but the subject is gone.
	status, raw := doJSON(t, srv, http.MethodGet, "/auth/me", pair.AccessToken, nil)
	require.Equal(t, http.StatusUnauthorized, status)

	var body errorBody
	decodeInto(t, raw, &body)
	require.Equal(t, "Invalid token", body.Message)
}

func TestHashingFailureIsServiceUnavailable(t *testing.T) {
	srv := newTestServer(t)

	// 72 multibyte runes pass field validation but exceed bcrypt's 72-byte
	// input limit, so the failure comes from the hashing primitive itself.
	oversized := strings.Repeat("é", 72)

	status, raw := doJSON(t, srv, http.MethodPost, "/auth/register", "", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": oversized,
	})
	require.Equal(t, http.StatusServiceUnavailable, status, string(raw))

	var body errorBody
	decodeInto(t, raw, &body)
	require.Equal(t, "Error hashing password", body.Message)

	// The rehash on profile update goes through the same primitive.
	profile, pair := registerAndLogin(t, srv, "Bob", "bob@example.com")
	status, raw = doJSON(t, srv, http.MethodPatch, "/users/"+profile.ID, pair.AccessToken, map[string]string{
		"password": oversized,
	})
	require.Equal(t, http.StatusServiceUnavailable, status, string(raw))

	decodeInto(t, raw, &body)
	require.Equal(t, "Error hashing password", body.Message)
}

func TestValidationFailures(t *testing.T) {
	srv := newTestServer(t)

	// Short password.
	status, _ := doJSON(t, srv, http.MethodPost, "/auth/register", "", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "abc",
	})
	require.Equal(t, http.StatusBadRequest, status)

	// Bad email.
	status, _ = doJSON(t, srv, http.MethodPost, "/auth/register", "", map[string]string{
		"name":     "Alice",
		"email":    "not-an-email",
		"password": "secret123",
	})
	require.Equal(t, http.StatusBadRequest, status)

	// Malformed JSON body.
	status, _ = doJSON(t, srv, http.MethodPost, "/auth/login", "", "not-an-object")
	require.Equal(t, http.StatusBadRequest, status)
}
