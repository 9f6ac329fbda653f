package idx

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// New returns a lexicographically sortable unique identifier. Used for
// request ids and token jti values; entity rows use UUIDs so the two are
// easy to tell apart in logs.
func New() ulid.ULID {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader)
}
