package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rostrahealth/shiftbook/internal/model"
)

func testFormatter(buf *bytes.Buffer) *Formatter {
	return &Formatter{
		Writer:    buf,
		Format:    FormatCLI,
		ColorMode: ColorNever,
	}
}

// ============================================================================
// Formatter
// ============================================================================

func TestColorModeNever(t *testing.T) {
	var buf bytes.Buffer
	f := testFormatter(&buf)
	assert.False(t, f.IsColorEnabled())
}

func TestColorModeAlways(t *testing.T) {
	var buf bytes.Buffer
	f := testFormatter(&buf)
	f.ColorMode = ColorAlways
	assert.True(t, f.IsColorEnabled())
}

func TestColorModeAutoNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	f := testFormatter(&buf)
	f.ColorMode = ColorAuto
	assert.False(t, f.IsColorEnabled())
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	f := testFormatter(&buf)
	require.NoError(t, f.JSON(map[string]int{"count": 3}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 3, decoded["count"])
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "8h", FormatDuration(8*time.Hour))
	assert.Equal(t, "8h 30m", FormatDuration(8*time.Hour+30*time.Minute))
	assert.Equal(t, "45m", FormatDuration(45*time.Minute))
	assert.Equal(t, "24h", FormatDuration(24*time.Hour))
}

func TestFormatMonth(t *testing.T) {
	assert.Equal(t, "January 2025", FormatMonth(2025, time.January))
}

// ============================================================================
// CLIFormatter
// ============================================================================

func TestSuccessMessage(t *testing.T) {
	var buf bytes.Buffer
	cli := NewCLIFormatter(testFormatter(&buf))
	cli.Success("shift added")
	assert.Equal(t, "✓ shift added\n", buf.String())
}

func TestErrorMessage(t *testing.T) {
	var buf bytes.Buffer
	cli := NewCLIFormatter(testFormatter(&buf))
	cli.Error("shift not found")
	assert.Equal(t, "✗ shift not found\n", buf.String())
}

func TestShiftLabelPlain(t *testing.T) {
	var buf bytes.Buffer
	cli := NewCLIFormatter(testFormatter(&buf))
	assert.Equal(t, "Dr. Alice Stone @ Riverside Hospital",
		cli.ShiftLabel("Dr. Alice Stone", "Riverside Hospital"))
}

func TestPrintShift(t *testing.T) {
	var buf bytes.Buffer
	cli := NewCLIFormatter(testFormatter(&buf))

	start := time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local)
	s := &model.Shift{
		ID:         "s1",
		ProviderID: "P001",
		ClientID:   "C001",
		Start:      start,
		End:        start.Add(24 * time.Hour),
		Notes:      "bring badge",
	}
	cli.PrintShift(s, "Dr. Alice Stone", "Riverside Hospital")

	out := buf.String()
	assert.Contains(t, out, "Dr. Alice Stone @ Riverside Hospital")
	assert.Contains(t, out, "Call: yes")
	assert.Contains(t, out, "bring badge")
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	cli := NewCLIFormatter(testFormatter(&buf))

	cli.PrintTable([]string{"ID", "Name"}, []TableRow{
		{Columns: []string{"P001", "Dr. Alice Stone"}},
		{Columns: []string{"P002", "Dr. Ben Okafor"}},
	})

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4) // header, separator, two rows
	assert.Contains(t, lines[2], "Dr. Alice Stone")
}

func TestPrintTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	cli := NewCLIFormatter(testFormatter(&buf))
	cli.PrintTable([]string{"ID"}, nil)
	assert.Empty(t, buf.String())
}

// ============================================================================
// JSONFormatter
// ============================================================================

func TestNewShiftOutput(t *testing.T) {
	start := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	s := &model.Shift{
		ID:       "s1",
		ClientID: "C001",
		Start:    start,
		End:      start.Add(8 * time.Hour),
	}
	out := NewShiftOutput(s, "Unassigned", "Riverside Hospital")
	assert.Equal(t, "2025-01-10T08:00:00Z", out.Start)
	assert.Equal(t, 8.0, out.DurationHours)
	assert.True(t, out.IsUnfilled)
	assert.False(t, out.IsCall)
}

func TestPrintErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	j := NewJSONFormatter(testFormatter(&buf))
	require.NoError(t, j.PrintError("error", "not_found", "shift not found"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "not_found", resp.Error)
}
