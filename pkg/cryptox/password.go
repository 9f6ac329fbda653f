package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used for new hashes. Verification
// reads the cost out of the stored hash, so raising this later only affects
// passwords hashed from that point on.
const DefaultCost = 12

// ErrHashUnavailable is returned when the underlying primitive fails in a way
// that is not the caller's fault (e.g. entropy exhaustion). Treated as a
// service-unavailable condition, never retried.
var ErrHashUnavailable = errors.New("cryptox: hashing unavailable")

// Hasher is the one-way credential hashing capability. Hash output embeds a
// random salt, so hashing the same password twice yields different strings.
// Verify reports whether plaintext matches an existing hash; malformed hashes
// verify as false rather than erroring, so callers cannot distinguish a bad
// password from a corrupt record by the response shape.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) bool
}

// BcryptHasher is the production Hasher. The zero value uses DefaultCost.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashUnavailable, err)
	}
	return string(hash), nil
}

func (h BcryptHasher) Verify(password, encodedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)) == nil
}
