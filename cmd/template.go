package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rostrahealth/shiftbook/internal/csvio"
)

// Template command flags.
var templateFlagOutput string

// templateCmd writes CSV import templates.
var templateCmd = &cobra.Command{
	Use:   "template COLLECTION",
	Short: "Write a CSV import template",
	Long: `Write the CSV header and one example row for a collection, ready to
fill in and feed back through 'shiftbook import'.

Collections: ` + strings.Join(csvio.Collections(), ", ") + `

Examples:
  shiftbook template providers
  shiftbook template shifts -o shifts.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runTemplate,
}

func init() {
	templateCmd.Flags().StringVarP(&templateFlagOutput, "output", "o", "", "Output file (stdout if omitted)")
	rootCmd.AddCommand(templateCmd)
}

func runTemplate(cmd *cobra.Command, args []string) error {
	w := os.Stdout
	if templateFlagOutput != "" {
		f, err := os.Create(templateFlagOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if err := csvio.WriteTemplate(w, args[0]); err != nil {
		return err
	}

	if templateFlagOutput != "" && !ctx.IsJSON() {
		ctx.CLIFormatter().Success("Template written: " + templateFlagOutput)
	}
	return nil
}
