package cmd

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rostrahealth/shiftbook/internal/output"
	"github.com/rostrahealth/shiftbook/internal/parser"
	"github.com/rostrahealth/shiftbook/internal/tui"
)

// Dashboard command flags.
var dashboardFlagWatch bool

// dashboardCmd represents the dashboard command.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard [MONTH]",
	Aliases: []string{"dash", "d"},
	Short:   "Show the staffing dashboard",
	Long: `Show unfilled shifts, available providers, and per-site coverage for a
month. With --watch, opens a live terminal dashboard.

Examples:
  shiftbook dashboard
  shiftbook dashboard 2025-01
  shiftbook dashboard --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDashboard,
}

func init() {
	dashboardCmd.Flags().BoolVarP(&dashboardFlagWatch, "watch", "w", false,
		"Live dashboard that refreshes automatically")
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	year, month := time.Now().Year(), time.Now().Month()
	if len(args) == 1 {
		var err error
		year, month, err = parser.ParseMonth(args[0])
		if err != nil {
			return err
		}
	}

	if dashboardFlagWatch {
		return tui.Run(tui.DashboardConfig{
			Query: ctx.Query,
			Year:  year,
			Month: month,
		})
	}

	return printSnapshot(year, month)
}

// runDashboardOnce is the root command's default action.
func runDashboardOnce(cmd *cobra.Command, args []string) error {
	now := time.Now()
	return printSnapshot(now.Year(), now.Month())
}

func printSnapshot(year int, month time.Month) error {
	snapshot, err := ctx.Query.Snapshot(year, month)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(snapshot)
	}

	cli := ctx.CLIFormatter()
	cli.Title(output.FormatMonth(year, month))
	cli.Printf("Unfilled shifts: %d\n", len(snapshot.Unfilled))
	cli.Printf("Available providers: %d\n", len(snapshot.AvailableProviders))

	if len(snapshot.Sites) == 0 {
		cli.Muted("No shifts scheduled this month.")
		return nil
	}

	cli.Println("")
	rows := make([]output.TableRow, len(snapshot.Sites))
	for i, site := range snapshot.Sites {
		rows[i] = output.TableRow{Columns: []string{
			site.ClientName,
			strconv.Itoa(site.TotalShifts),
			strconv.Itoa(site.Unfilled),
		}}
	}
	cli.PrintTable([]string{"Site", "Shifts", "Unfilled"}, rows)
	return nil
}
