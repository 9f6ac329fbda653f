package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openroam/traveldiary/internal/diary/service"
	"github.com/openroam/traveldiary/pkg/jwtx"
)

func TestLoginIssuesBothTokens(t *testing.T) {
	s := newTestStore(t)
	auth := newAuthService(s)
	profile := createUser(t, auth.Users, "Alice", "alice@example.com")

	pair, err := auth.Login(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	access, err := auth.Codec.Verify(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, profile.ID, access.Subject)
	require.Equal(t, "alice@example.com", access.Email)
	require.Equal(t, "Alice", access.Name)

	refresh, err := auth.Codec.Verify(pair.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, profile.ID, refresh.Subject)
	require.Empty(t, refresh.Email)
	require.Empty(t, refresh.Name)
	require.True(t, refresh.ExpiresAt.After(access.ExpiresAt.Time))
}

func TestLoginUnknownEmailAndWrongPasswordCollapse(t *testing.T) {
	s := newTestStore(t)
	auth := newAuthService(s)
	createUser(t, auth.Users, "Alice", "alice@example.com")

	_, errUnknown := auth.Login(context.Background(), "nobody@example.com", "secret123")
	require.ErrorIs(t, errUnknown, service.ErrInvalidCredentials)

	_, errWrong := auth.Login(context.Background(), "alice@example.com", "wrong")
	require.ErrorIs(t, errWrong, service.ErrInvalidCredentials)
}

func TestRefreshMintsFreshAccessToken(t *testing.T) {
	s := newTestStore(t)
	auth := newAuthService(s)
	profile := createUser(t, auth.Users, "Alice", "alice@example.com")

	pair, err := auth.Login(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)

	token, err := auth.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)

	claims, err := auth.Codec.Verify(token)
	require.NoError(t, err)
	require.Equal(t, profile.ID, claims.Subject)
	require.Equal(t, "alice@example.com", claims.Email)
}

func TestRefreshDoesNotRotate(t *testing.T) {
	s := newTestStore(t)
	auth := newAuthService(s)
	createUser(t, auth.Users, "Alice", "alice@example.com")

	pair, err := auth.Login(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)

	_, err = auth.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)

	// Same refresh token stays valid after use.
	_, err = auth.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	s := newTestStore(t)
	auth := newAuthService(s)

	_, err := auth.Refresh(context.Background(), "not-a-token")
	require.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestRefreshRejectsExpiredToken(t *testing.T) {
	s := newTestStore(t)
	auth := newAuthService(s)
	profile := createUser(t, auth.Users, "Alice", "alice@example.com")

	expired, err := auth.Codec.Issue(profile.ID, -time.Minute, "", "")
	require.NoError(t, err)

	_, err = auth.Refresh(context.Background(), expired)
	require.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestRefreshRejectsDeletedUser(t *testing.T) {
	s := newTestStore(t)
	auth := newAuthService(s)
	profile := createUser(t, auth.Users, "Alice", "alice@example.com")

	pair, err := auth.Login(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, auth.Users.Delete(context.Background(), profile.ID))

	_, err = auth.Refresh(context.Background(), pair.RefreshToken)
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginReportsBrokenSigningConfig(t *testing.T) {
	s := newTestStore(t)
	auth := newAuthService(s)
	createUser(t, auth.Users, "Alice", "alice@example.com")

	auth.Codec = jwtx.NewCodec(jwtx.Config{}) // no secret

	_, err := auth.Login(context.Background(), "alice@example.com", "secret123")
	require.ErrorIs(t, err, service.ErrTokenConfig)
}
