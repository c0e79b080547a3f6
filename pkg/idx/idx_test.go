package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew_Unique(t *testing.T) {
	seen := make(map[ID]bool)
	for range 1000 {
		id := New()
		require.False(t, id.IsZero())
		require.False(t, seen[id], "duplicate id generated")
		seen[id] = true
	}
}

func TestNew_Sortable(t *testing.T) {
	earlier := NewAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	later := NewAt(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.Less(t, earlier.String(), later.String())
}

func TestParse(t *testing.T) {
	id := New()

	parsed, err := Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)

	parsed, err = Parse("  " + id.String() + "  ")
	require.NoError(t, err)
	require.Equal(t, id, parsed)

	for _, bad := range []string{"", "not-a-ulid", "01ARZ3NDEKTSV4RRFFQ69G5FA"} {
		_, err := Parse(bad)
		require.ErrorIs(t, err, ErrInvalid, "input %q", bad)
	}
}

func TestMustParse_Panics(t *testing.T) {
	require.Panics(t, func() { MustParse("nope") })
	require.NotPanics(t, func() { MustParse(New().String()) })
}

func TestTime(t *testing.T) {
	at := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	id := NewAt(at)

	// ULID time precision is milliseconds
	require.WithinDuration(t, at, id.Time(), time.Millisecond)
	require.True(t, Zero.Time().IsZero())
}
