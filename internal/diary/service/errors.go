package service

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// callers cannot enumerate accounts, and a refresh token whose subject
	// no longer exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is any refresh-token verification failure: malformed,
	// bad signature or expired. Kept distinct from ErrInvalidCredentials
	// internally; both surface as 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrEmailTaken is the unique-constraint signal from registration.
	ErrEmailTaken = errors.New("email already exists")

	// ErrTokenConfig means the signing configuration is broken (bad secret
	// or key type). Actionable misconfiguration, not an outage.
	ErrTokenConfig = errors.New("invalid token configuration")

	// ErrTokenUnavailable is an unexpected signing failure; the only error
	// class in the auth core treated as an infrastructure fault (503).
	ErrTokenUnavailable = errors.New("error generating token")

	ErrSelfFollow       = errors.New("you cannot follow yourself")
	ErrAlreadyFollowing = errors.New("you are already following this user")
	ErrNotFollowing     = errors.New("you are not following this user")
	ErrAlreadyLiked     = errors.New("post already liked")
)
