package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/openroam/traveldiary/pkg/idx"
)

// Default token TTL constants. Overridden per-process from configuration.
const (
	// DefaultAccessTokenTTL is the default lifetime for access tokens.
	DefaultAccessTokenTTL = time.Hour

	// DefaultRefreshTokenTTL is the default lifetime for refresh tokens.
	// Refresh tokens are not rotated, so a stolen one is usable until it
	// expires naturally. Keep this short enough to live with that.
	DefaultRefreshTokenTTL = 24 * time.Hour
)

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")

	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrAudience     = errors.New("jwtx: audience mismatch")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")

	// ErrBadConfig indicates the codec itself is misconfigured (e.g. empty
	// secret), as opposed to an infrastructure failure while signing.
	ErrBadConfig = errors.New("jwtx: invalid signing configuration")
)

// Config is the process-wide token configuration. It is constructed once at
// startup and never mutated; issuance and verification must agree on all
// four of secret, issuer, audience and expiry or verification fails.
type Config struct {
	Secret     string
	Issuer     string
	Audience   string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Claims are the token payload. Access tokens carry Email and Name so
// handlers can render identity without a lookup; refresh tokens carry only
// the registered subject.
type Claims struct {
	jwt.RegisteredClaims

	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// Codec signs and verifies compact HS256 tokens under a shared secret.
type Codec struct {
	cfg Config
}

func NewCodec(cfg Config) *Codec {
	return &Codec{cfg: cfg}
}

// Issue signs a token for subject with the given lifetime. Email and name
// are optional identity claims; pass empty strings for a bare refresh token.
func (c *Codec) Issue(subject string, ttl time.Duration, email, name string) (string, error) {
	if c.cfg.Secret == "" {
		return "", ErrBadConfig
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.cfg.Issuer,
			Subject:   subject,
			Audience:  jwt.ClaimStrings{c.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        idx.New().String(),
		},
		Email: email,
		Name:  name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(c.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning its claims. Failures are
// classified (malformed, bad signature, expired, issuer/audience mismatch)
// so callers can log the real cause even when they surface a uniform
// unauthorized response.
func (c *Codec) Verify(raw string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (any, error) { return []byte(c.cfg.Secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.cfg.Issuer),
		jwt.WithAudience(c.cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Claims{}, classify(err)
	}
	return claims, nil
}

// IsConfigError reports whether a signing failure stems from bad codec
// configuration rather than an infrastructure fault. The distinction matters
// to callers: misconfiguration is actionable, an outage is not.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrBadConfig) ||
		errors.Is(err, jwt.ErrInvalidKey) ||
		errors.Is(err, jwt.ErrInvalidKeyType) ||
		errors.Is(err, jwt.ErrHashUnavailable)
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet), errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ErrIssuer
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return ErrAudience
	default:
		return fmt.Errorf("%w: %w", ErrInvalidClaim, err)
	}
}
