package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rostrahealth/shiftbook/internal/output"
)

// credentialCmd represents the credential command group.
var credentialCmd = &cobra.Command{
	Use:     "credential",
	Aliases: []string{"credentials", "cred"},
	Short:   "Manage provider-client credentials",
	RunE:    runCredentialList,
}

var credentialAddCmd = &cobra.Command{
	Use:   "add PROVIDER_ID CLIENT_ID",
	Short: "Credential a provider for a client site",
	Long: `Record that a provider is credentialed to work at a client site. Each
provider-client pair can only be recorded once.

Examples:
  shiftbook credential add P001 C001`,
	Args: cobra.ExactArgs(2),
	RunE: runCredentialAdd,
}

var credentialListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List credentials",
	RunE:    runCredentialList,
}

var credentialRmCmd = &cobra.Command{
	Use:     "rm CREDENTIAL_ID",
	Aliases: []string{"delete", "remove"},
	Short:   "Delete a credential by its numeric id",
	Args:    cobra.ExactArgs(1),
	RunE:    runCredentialRm,
}

func init() {
	credentialCmd.AddCommand(credentialAddCmd)
	credentialCmd.AddCommand(credentialListCmd)
	credentialCmd.AddCommand(credentialRmCmd)
	rootCmd.AddCommand(credentialCmd)
}

func runCredentialAdd(cmd *cobra.Command, args []string) error {
	cred, err := ctx.Service.AddCredential(args[0], args[1])
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewCredentialOutput(cred))
	}
	ctx.CLIFormatter().Success("Credential added: " + cred.ProviderID + " → " + cred.ClientID)
	return nil
}

func runCredentialList(cmd *cobra.Command, args []string) error {
	credentials, err := ctx.Store.Credentials().List()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		outputs := make([]*output.CredentialOutput, len(credentials))
		for i, c := range credentials {
			outputs[i] = output.NewCredentialOutput(c)
		}
		return ctx.Formatter.JSON(map[string]interface{}{
			"credentials": outputs,
			"count":       len(outputs),
		})
	}

	cli := ctx.CLIFormatter()
	if len(credentials) == 0 {
		cli.Muted("No credentials on file.")
		cli.Muted("Use 'shiftbook credential add <provider> <client>' to add one.")
		return nil
	}

	rows := make([]output.TableRow, len(credentials))
	for i, c := range credentials {
		rows[i] = output.TableRow{Columns: []string{
			strconv.FormatInt(c.ID, 10),
			ctx.Query.ProviderDisplay(c.ProviderID),
			ctx.Query.ClientDisplay(c.ClientID),
		}}
	}
	cli.PrintTable([]string{"ID", "Provider", "Client"}, rows)
	return nil
}

func runCredentialRm(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return err
	}

	if err := ctx.Service.DeleteCredential(id); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "deleted", "credential_id": args[0]})
	}
	ctx.CLIFormatter().Success("Credential deleted: " + args[0])
	return nil
}
