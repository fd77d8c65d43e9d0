package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDueDate_RFC3339(t *testing.T) {
	got, err := ParseDueDate("2025-03-01T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), got.UTC())
}

func TestParseDueDate_ExplicitOffset(t *testing.T) {
	got, err := ParseDueDate("2025-03-01T10:00:00+07:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 3, 0, 0, 0, time.UTC), got.UTC())
}

func TestParseDueDate_NoOffset(t *testing.T) {
	got, err := ParseDueDate("2025-03-01T10:00:00")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour())
}

func TestParseDueDate_DateOnly(t *testing.T) {
	got, err := ParseDueDate("2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 1, got.Day())
}

func TestParseDueDate_Rejects(t *testing.T) {
	for _, in := range []string{"March 1 2025", "01/03/2025", "not a date", ""} {
		_, err := ParseDueDate(in)
		assert.ErrorIs(t, err, ErrBadDate, "input %q", in)
	}
}
