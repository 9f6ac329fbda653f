package idx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_Unique(t *testing.T) {
	const count = 1000
	seen := make(map[string]bool, count)

	for range count {
		id := New().String()
		require.Len(t, id, 26)
		require.NotContains(t, seen, id, "duplicate id generated")
		seen[id] = true
	}
}

func TestNew_Sortable(t *testing.T) {
	a := New()
	b := New()
	require.LessOrEqual(t, a.Time(), b.Time())
}
