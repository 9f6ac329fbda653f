package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/openroam/traveldiary/internal/diary/domain"
	"github.com/openroam/traveldiary/internal/diary/store"
	"github.com/openroam/traveldiary/pkg/cryptox"
	"github.com/openroam/traveldiary/pkg/jwtx"
)

// TokenPair is the login result: a short-lived access token plus a longer
// refresh token minted in the same call.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthService owns credential verification and token issuance. Sessions are
// stateless: nothing is persisted per token and refresh tokens are not
// rotated, so a refresh token stays valid until it expires on its own.
type AuthService struct {
	Store  store.Store
	Hasher cryptox.Hasher
	Codec  *jwtx.Codec
	Users  *UserService

	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Register creates the account and returns its public profile. No tokens
// are issued; the client logs in afterwards.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (domain.Profile, error) {
	return s.Users.Create(ctx, name, email, password)
}

// Login verifies the credentials and mints both tokens concurrently. Unknown
// email and wrong password collapse into the same error so the response
// cannot be used to probe for accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (TokenPair, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TokenPair{}, ErrInvalidCredentials
		}
		return TokenPair{}, err
	}
	if !s.Hasher.Verify(password, user.PasswordHash) {
		return TokenPair{}, ErrInvalidCredentials
	}

	var pair TokenPair
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		token, err := s.generateToken(user.ID, s.AccessTTL, user.Email, user.Name)
		pair.AccessToken = token
		return err
	})
	g.Go(func() error {
		// Refresh tokens carry the subject only.
		token, err := s.generateToken(user.ID, s.RefreshTTL, "", "")
		pair.RefreshToken = token
		return err
	})
	if err := g.Wait(); err != nil {
		return TokenPair{}, err
	}
	return pair, nil
}

// Refresh exchanges a valid refresh token for a fresh access token. The
// presented token keeps working afterwards. The subject is re-resolved so a
// deleted account cannot keep refreshing.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.Codec.Verify(refreshToken)
	if err != nil {
		return "", ErrInvalidToken
	}

	user, err := s.Store.Users().GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	return s.generateToken(user.ID, s.AccessTTL, user.Email, user.Name)
}

// generateToken wraps signing failures: a broken signing setup is reported
// as misconfiguration, anything else as the service being unable to mint.
func (s *AuthService) generateToken(subject string, ttl time.Duration, email, name string) (string, error) {
	token, err := s.Codec.Issue(subject, ttl, email, name)
	if err != nil {
		if jwtx.IsConfigError(err) {
			return "", ErrTokenConfig
		}
		return "", ErrTokenUnavailable
	}
	return token, nil
}
