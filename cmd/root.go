// Package cmd provides the CLI commands for Shiftbook.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	apperrors "github.com/rostrahealth/shiftbook/internal/errors"
	"github.com/rostrahealth/shiftbook/internal/output"
	"github.com/rostrahealth/shiftbook/internal/runtime"
	"github.com/rostrahealth/shiftbook/internal/schedule"
	"github.com/rostrahealth/shiftbook/internal/storage"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat       string
	flagColor        string
	flagDebug        bool
	flagBackend      string
	flagDB           string
	flagFilterPolicy string
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "shiftbook",
	Short:         "A scheduling book for healthcare staffing",
	SilenceErrors: true,
	SilenceUsage:  true,
	Long: `Shiftbook manages providers, client sites, credentials, and monthly
shift schedules from the command line.

Examples:
  shiftbook provider add P001 "Dr. Alice Stone" --specialty "Emergency Medicine"
  shiftbook shift add --client C001 --provider P001 --start "2025-01-10 08:00" --end "2025-01-10 16:00"
  shiftbook shift list --month 2025-01 --client "Riverside Hospital"
  shiftbook calendar 2025-01
  shiftbook export qgenda --from 2025-01-01 -o january.csv`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}

		// Parse format flag
		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		// Parse color flag
		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug
		opts.DBPath = flagDB
		if flagBackend != "" {
			opts.Backend = storage.Backend(flagBackend)
		}
		if flagFilterPolicy != "" {
			opts.FilterPolicy = schedule.FilterPolicy(flagFilterPolicy)
		}

		var err error
		ctx, err = runtime.New(opts)
		if err != nil {
			return err
		}

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show the current month summary
		return runDashboardOnce(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Failed commands report through Die.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		Die(err)
	}
	return nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "",
		"Storage backend: document, sqlite")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "",
		"Database path (overrides the default location)")
	rootCmd.PersistentFlags().StringVar(&flagFilterPolicy, "filter-policy", "",
		"Unknown filter name handling: safe, strict")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("shiftbook %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// Die prints an error and exits.
func Die(err error) {
	if ctx != nil && ctx.IsJSON() {
		ctx.JSONFormatter().PrintError("error", err.Error(), apperrors.GetSuggestion(err))
	} else {
		os.Stderr.WriteString("Error: " + apperrors.FormatError(err) + "\n")
	}
	os.Exit(1)
}
