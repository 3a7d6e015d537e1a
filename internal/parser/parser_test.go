package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// ParseDateTime
// ============================================================================

func TestParseDateTimeFixedLayouts(t *testing.T) {
	cases := []struct {
		input string
		want  time.Time
	}{
		{"2025-01-10T08:00:00", time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local)},
		{"2025-01-10 08:00", time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local)},
		{"2025-01-10T08:00", time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local)},
		{"01/10/2025 08:00", time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local)},
	}
	for _, tc := range cases {
		got, err := ParseDateTime(tc.input)
		require.NoError(t, err, tc.input)
		assert.True(t, tc.want.Equal(got), "%s: got %v", tc.input, got)
	}
}

func TestParseDateTimeRFC3339(t *testing.T) {
	got, err := ParseDateTime("2025-01-10T08:00:00Z")
	require.NoError(t, err)
	assert.True(t, time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC).Equal(got))
}

func TestParseDateTimeEmpty(t *testing.T) {
	_, err := ParseDateTime("")
	assert.Error(t, err)
}

func TestParseDateTimeGarbage(t *testing.T) {
	_, err := ParseDateTime("not a time at all xyzzy")
	assert.Error(t, err)
}

// ============================================================================
// ParseMonth
// ============================================================================

func TestParseMonthNumeric(t *testing.T) {
	year, month, err := ParseMonth("2025-01")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.January, month)
}

func TestParseMonthName(t *testing.T) {
	year, month, err := ParseMonth("January 2025")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.January, month)
}

func TestParseMonthAbbrev(t *testing.T) {
	year, month, err := ParseMonth("Mar 2024")
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.March, month)
}

func TestParseMonthSlash(t *testing.T) {
	year, month, err := ParseMonth("03/2024")
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.March, month)
}

func TestParseMonthBareName(t *testing.T) {
	year, month, err := ParseMonth("march")
	require.NoError(t, err)
	assert.Equal(t, time.Now().Year(), year)
	assert.Equal(t, time.March, month)
}

func TestParseMonthEmpty(t *testing.T) {
	_, _, err := ParseMonth("")
	assert.Error(t, err)
}
