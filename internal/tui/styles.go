// Package tui provides the terminal dashboard for Shiftbook.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI dashboard.
var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#10B981") // Green
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorWarning   = lipgloss.Color("#F59E0B") // Yellow
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorSuccess   = lipgloss.Color("#10B981") // Green
	ColorBorder    = lipgloss.Color("#4B5563") // Dark gray
)

// Base styles for the TUI.
var (
	// StyleTitle is used for section titles.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	// StyleSubtitle is used for subtitles and secondary information.
	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleProvider is used for provider names.
	StyleProvider = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleClient is used for client names.
	StyleClient = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	// StyleUnfilled is used for unfilled shift markers.
	StyleUnfilled = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWarning)

	// StyleMuted is used for de-emphasized text.
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleWarning is used for warning messages.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleError is used for error messages.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleHelp is used for help text at the bottom.
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	// StyleHelpKey is used for keyboard shortcut keys.
	StyleHelpKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	// StyleHelpDesc is used for keyboard shortcut descriptions.
	StyleHelpDesc = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Box styles for dashboard sections.
var (
	// StyleSummaryBox frames the month summary section.
	StyleSummaryBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2).
			MarginBottom(1)

	// StyleAlertBox frames the summary when the month has unfilled shifts.
	StyleAlertBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorWarning).
			Padding(1, 2).
			MarginBottom(1)

	// StyleSitesBox frames the per-site coverage section.
	StyleSitesBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2).
			MarginBottom(1)
)

// HelpBar renders the keyboard shortcut bar.
func HelpBar() string {
	entries := []struct{ key, desc string }{
		{"←/→", "prev/next month"},
		{"r", "refresh"},
		{"q", "quit"},
	}

	bar := ""
	for i, e := range entries {
		if i > 0 {
			bar += StyleHelpDesc.Render("  •  ")
		}
		bar += StyleHelpKey.Render(e.key) + StyleHelpDesc.Render(" "+e.desc)
	}
	return StyleHelp.Render(bar)
}

// FormatAssignment formats "provider @ client" notation with styles.
func FormatAssignment(providerName, clientName string) string {
	return StyleProvider.Render(providerName) + " @ " + StyleClient.Render(clientName)
}
