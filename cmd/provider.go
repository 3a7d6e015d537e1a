package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rostrahealth/shiftbook/internal/model"
	"github.com/rostrahealth/shiftbook/internal/output"
)

// Provider command flags.
var (
	providerFlagSpecialty string
	providerFlagStart     string
	providerFlagEnd       string
	providerFlagDays      string
)

// providerCmd represents the provider command group.
var providerCmd = &cobra.Command{
	Use:     "provider",
	Aliases: []string{"providers", "p"},
	Short:   "Manage providers",
	RunE:    runProviderList,
}

var providerAddCmd = &cobra.Command{
	Use:   "add PROVIDER_ID NAME",
	Short: "Add or update a provider",
	Long: `Add a provider to the roster. Adding an existing provider id replaces
the record.

Examples:
  shiftbook provider add P001 "Dr. Alice Stone" --specialty "Emergency Medicine"
  shiftbook provider add P002 "Dr. Ben Okafor" --preferred-start 08:00 --preferred-end 16:00 --preferred-days "Mon;Tue;Wed"`,
	Args: cobra.ExactArgs(2),
	RunE: runProviderAdd,
}

var providerListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List providers",
	RunE:    runProviderList,
}

var providerShowCmd = &cobra.Command{
	Use:   "show PROVIDER_ID",
	Short: "Show a provider",
	Args:  cobra.ExactArgs(1),
	RunE:  runProviderShow,
}

var providerRmCmd = &cobra.Command{
	Use:     "rm PROVIDER_ID",
	Aliases: []string{"delete", "remove"},
	Short:   "Delete a provider",
	Args:    cobra.ExactArgs(1),
	RunE:    runProviderRm,
}

func init() {
	providerAddCmd.Flags().StringVar(&providerFlagSpecialty, "specialty", "", "Provider specialty")
	providerAddCmd.Flags().StringVar(&providerFlagStart, "preferred-start", "", "Preferred shift start (HH:MM)")
	providerAddCmd.Flags().StringVar(&providerFlagEnd, "preferred-end", "", "Preferred shift end (HH:MM)")
	providerAddCmd.Flags().StringVar(&providerFlagDays, "preferred-days", "", "Preferred days, semicolon separated (e.g. Mon;Tue)")

	providerCmd.AddCommand(providerAddCmd)
	providerCmd.AddCommand(providerListCmd)
	providerCmd.AddCommand(providerShowCmd)
	providerCmd.AddCommand(providerRmCmd)
	rootCmd.AddCommand(providerCmd)
}

func runProviderAdd(cmd *cobra.Command, args []string) error {
	p := model.NewProvider(args[0], args[1], providerFlagSpecialty)
	p.PreferredStart = providerFlagStart
	p.PreferredEnd = providerFlagEnd
	p.PreferredDays = model.SplitDays(providerFlagDays)

	if err := ctx.Service.AddProvider(p); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewProviderOutput(p))
	}
	ctx.CLIFormatter().Success("Provider saved: " + p.ID + " (" + p.Name + ")")
	return nil
}

func runProviderList(cmd *cobra.Command, args []string) error {
	providers, err := ctx.Store.Providers().List()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		outputs := make([]*output.ProviderOutput, len(providers))
		for i, p := range providers {
			outputs[i] = output.NewProviderOutput(p)
		}
		return ctx.Formatter.JSON(map[string]interface{}{
			"providers": outputs,
			"count":     len(outputs),
		})
	}

	cli := ctx.CLIFormatter()
	if len(providers) == 0 {
		cli.Muted("No providers on file.")
		cli.Muted("Use 'shiftbook provider add <id> <name>' to add one.")
		return nil
	}

	rows := make([]output.TableRow, len(providers))
	for i, p := range providers {
		rows[i] = output.TableRow{Columns: []string{
			p.ID, p.Name, p.Specialty, p.PreferredStart, p.PreferredEnd,
			model.JoinDays(p.PreferredDays),
		}}
	}
	cli.PrintTable([]string{"ID", "Name", "Specialty", "Start", "End", "Days"}, rows)
	return nil
}

func runProviderShow(cmd *cobra.Command, args []string) error {
	p, err := ctx.Store.Providers().Get(args[0])
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewProviderOutput(p))
	}

	cli := ctx.CLIFormatter()
	cli.Printf("%s\n", cli.ProviderName(p.Name))
	cli.Printf("  ID: %s\n", p.ID)
	if p.Specialty != "" {
		cli.Printf("  Specialty: %s\n", p.Specialty)
	}
	if p.PreferredStart != "" || p.PreferredEnd != "" {
		cli.Printf("  Preferred hours: %s–%s\n", p.PreferredStart, p.PreferredEnd)
	}
	if len(p.PreferredDays) > 0 {
		cli.Printf("  Preferred days: %s\n", strings.Join(p.PreferredDays, ", "))
	}
	return nil
}

func runProviderRm(cmd *cobra.Command, args []string) error {
	if err := ctx.Service.DeleteProvider(args[0]); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "deleted", "provider_id": args[0]})
	}
	ctx.CLIFormatter().Success("Provider deleted: " + args[0])
	return nil
}
