package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rostrahealth/shiftbook/internal/csvio"
	apperrors "github.com/rostrahealth/shiftbook/internal/errors"
	"github.com/rostrahealth/shiftbook/internal/output"
	"github.com/rostrahealth/shiftbook/internal/parser"
)

// Export command flags.
var (
	exportFlagFrom   string
	exportFlagUntil  string
	exportFlagOutput string
	exportFlagBackup bool
)

// exportCmd represents the export command group.
var exportCmd = &cobra.Command{
	Use:     "export [COLLECTION]",
	Aliases: []string{"ex", "dump"},
	Short:   "Export schedule data",
	Long: `Export data as CSV. Without arguments, writes the QGenda-style schedule
report. A collection name (providers, clients, credentials, shifts) writes
that collection in import-compatible form. Use --backup for a full JSON
backup.

Examples:
  shiftbook export
  shiftbook export --from 2025-01-01 --until 2025-02-01 -o january.csv
  shiftbook export providers -o providers.csv
  shiftbook export --backup -o backup.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFlagFrom, "from", "", "Include shifts starting at or after this time")
	exportCmd.Flags().StringVar(&exportFlagUntil, "until", "", "Include shifts ending at or before this time")
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "", "Output file (stdout if omitted)")
	exportCmd.Flags().BoolVarP(&exportFlagBackup, "backup", "b", false, "Full database backup as JSON")

	rootCmd.AddCommand(exportCmd)
}

// exportWriter opens the output destination.
func exportWriter() (*os.File, func(), error) {
	if exportFlagOutput == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(exportFlagOutput)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportFlagBackup {
		return runBackupExport()
	}

	w, closeFn, err := exportWriter()
	if err != nil {
		return err
	}
	defer closeFn()

	if len(args) == 1 {
		var rows int
		switch args[0] {
		case "providers":
			rows, err = csvio.ExportProviders(w, ctx.Store)
		case "clients":
			rows, err = csvio.ExportClients(w, ctx.Store)
		case "credentials":
			rows, err = csvio.ExportCredentials(w, ctx.Store)
		case "shifts":
			rows, err = csvio.ExportShifts(w, ctx.Store)
		default:
			return apperrors.NewValidationErrorWithValue(
				"collection", args[0], "unknown collection",
				"One of: providers, clients, credentials, shifts")
		}
		if err != nil {
			return err
		}
		return printExportResult(rows)
	}

	var from, until time.Time
	if exportFlagFrom != "" {
		from, err = parser.ParseDateTime(exportFlagFrom)
		if err != nil {
			return err
		}
	}
	if exportFlagUntil != "" {
		until, err = parser.ParseDateTime(exportFlagUntil)
		if err != nil {
			return err
		}
	}

	rows, err := csvio.ExportSchedule(w, ctx.Store, from, until)
	if err != nil {
		return err
	}
	return printExportResult(rows)
}

func printExportResult(rows int) error {
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.ExportResponse{
			Status: "exported",
			Rows:   rows,
			Output: exportFlagOutput,
		})
	}
	if exportFlagOutput != "" {
		cli := ctx.CLIFormatter()
		cli.Success("Export written: " + exportFlagOutput)
		cli.Printf("  Rows: %d\n", rows)
	}
	return nil
}

func runBackupExport() error {
	w, closeFn, err := exportWriter()
	if err != nil {
		return err
	}
	defer closeFn()

	backup, err := csvio.WriteBackup(w, ctx.Store)
	if err != nil {
		return err
	}

	if exportFlagOutput != "" && !ctx.IsJSON() {
		cli := ctx.CLIFormatter()
		cli.Success("Backup created: " + exportFlagOutput)
		cli.Printf("  Providers: %d\n", len(backup.Providers))
		cli.Printf("  Clients: %d\n", len(backup.Clients))
		cli.Printf("  Credentials: %d\n", len(backup.Credentials))
		cli.Printf("  Shifts: %d\n", len(backup.Shifts))
	}
	return nil
}
