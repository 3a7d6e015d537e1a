package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rostrahealth/shiftbook/internal/output"
	"github.com/rostrahealth/shiftbook/internal/parser"
	"github.com/rostrahealth/shiftbook/internal/schedule"
)

// Calendar command flags.
var (
	calendarFlagProvider string
	calendarFlagClient   string
)

// Calendar styles.
var (
	calStyleHeader = lipgloss.NewStyle().Bold(true)
	calStyleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	calStyleOpen   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B"))
	calStyleToday  = lipgloss.NewStyle().Bold(true).Reverse(true)
)

// calendarCmd renders a month grid with per-day shift counts.
var calendarCmd = &cobra.Command{
	Use:     "calendar [MONTH]",
	Aliases: []string{"cal"},
	Short:   "Show a month calendar of shifts",
	Long: `Render a calendar for the given month (current month if omitted). Each
day shows the number of shifts; days with unfilled shifts are highlighted.

Examples:
  shiftbook calendar
  shiftbook calendar 2025-01
  shiftbook calendar "January 2025" --client "Riverside Hospital"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCalendar,
}

func init() {
	calendarCmd.Flags().StringVar(&calendarFlagProvider, "provider", "", "Filter by provider name")
	calendarCmd.Flags().StringVar(&calendarFlagClient, "client", "", "Filter by client name")
	rootCmd.AddCommand(calendarCmd)
}

// dayCell holds per-day counts for the grid.
type dayCell struct {
	total    int
	unfilled int
}

func runCalendar(cmd *cobra.Command, args []string) error {
	year, month := time.Now().Year(), time.Now().Month()
	if len(args) == 1 {
		var err error
		year, month, err = parser.ParseMonth(args[0])
		if err != nil {
			return err
		}
	}

	view, err := ctx.Query.VisibleShifts(year, month, calendarFlagProvider, calendarFlagClient)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return printCalendarJSON(view)
	}

	cli := ctx.CLIFormatter()
	cli.Title(output.FormatMonth(year, month))
	printCalendarGrid(view, year, month)
	return nil
}

func printCalendarJSON(view *schedule.MonthView) error {
	days := map[string]*dayCell{}
	for _, s := range view.Shifts {
		key := output.FormatDate(s.Start)
		cell := days[key]
		if cell == nil {
			cell = &dayCell{}
			days[key] = cell
		}
		cell.total++
		if s.IsUnfilled() {
			cell.unfilled++
		}
	}

	type dayOut struct {
		Date     string `json:"date"`
		Shifts   int    `json:"shifts"`
		Unfilled int    `json:"unfilled"`
	}
	out := struct {
		Year  int      `json:"year"`
		Month string   `json:"month"`
		Days  []dayOut `json:"days"`
	}{Year: view.Year, Month: view.Month.String()}

	first, next := schedule.MonthWindow(view.Year, view.Month)
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		key := output.FormatDate(d)
		cell := days[key]
		if cell == nil {
			continue
		}
		out.Days = append(out.Days, dayOut{Date: key, Shifts: cell.total, Unfilled: cell.unfilled})
	}
	return ctx.Formatter.JSON(out)
}

// cellWidth is the rendered width of one calendar day.
const cellWidth = 9

func printCalendarGrid(view *schedule.MonthView, year int, month time.Month) {
	days := map[int]*dayCell{}
	for _, s := range view.Shifts {
		day := s.Start.Day()
		cell := days[day]
		if cell == nil {
			cell = &dayCell{}
			days[day] = cell
		}
		cell.total++
		if s.IsUnfilled() {
			cell.unfilled++
		}
	}

	cli := ctx.CLIFormatter()
	compact := terminalWidth() < cellWidth*7

	// Weekday header, Monday first
	names := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	if compact {
		for i, n := range names {
			names[i] = n[:2]
		}
	}
	header := ""
	for _, n := range names {
		header += pad(n, cellColumns(compact))
	}
	cli.Println(calStyleHeader.Render(header))

	first, next := schedule.MonthWindow(year, month)
	today := time.Now()

	// Leading blanks up to the first weekday
	line := strings.Repeat(" ", cellColumns(compact)*mondayIndex(first.Weekday()))
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		line += renderDay(d, days[d.Day()], today, compact)
		if d.Weekday() == time.Sunday {
			cli.Println(strings.TrimRight(line, " "))
			line = ""
		}
	}
	if line != "" {
		cli.Println(strings.TrimRight(line, " "))
	}

	total, unfilled := 0, 0
	for _, c := range days {
		total += c.total
		unfilled += c.unfilled
	}
	cli.Println("")
	cli.Printf("%d shifts", total)
	if unfilled > 0 {
		cli.Printf(", %s", calStyleOpen.Render(fmt.Sprintf("%d unfilled", unfilled)))
	}
	cli.Println("")
}

func cellColumns(compact bool) int {
	if compact {
		return 5
	}
	return cellWidth
}

func renderDay(d time.Time, cell *dayCell, today time.Time, compact bool) string {
	label := fmt.Sprintf("%2d", d.Day())
	if cell != nil {
		if compact {
			label = fmt.Sprintf("%2d*", d.Day())
		} else {
			label = fmt.Sprintf("%2d (%d)", d.Day(), cell.total)
		}
	}

	styled := label
	switch {
	case d.Year() == today.Year() && d.YearDay() == today.YearDay():
		styled = calStyleToday.Render(label)
	case cell != nil && cell.unfilled > 0:
		styled = calStyleOpen.Render(label)
	case cell == nil:
		styled = calStyleDim.Render(label)
	}

	// Pad on the unstyled label so ANSI codes don't break alignment.
	return styled + strings.Repeat(" ", max(cellColumns(compact)-len(label), 0))
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// mondayIndex maps a weekday to its offset in a Monday-first week.
func mondayIndex(w time.Weekday) int {
	if w == time.Sunday {
		return 6
	}
	return int(w) - 1
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
