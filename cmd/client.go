package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rostrahealth/shiftbook/internal/model"
	"github.com/rostrahealth/shiftbook/internal/output"
)

// Client command flags.
var clientFlagLocation string

// clientCmd represents the client command group.
var clientCmd = &cobra.Command{
	Use:     "client",
	Aliases: []string{"clients", "site", "c"},
	Short:   "Manage client sites",
	RunE:    runClientList,
}

var clientAddCmd = &cobra.Command{
	Use:   "add CLIENT_ID NAME",
	Short: "Add or update a client site",
	Long: `Add a client site. Adding an existing client id replaces the record.

Examples:
  shiftbook client add C001 "Riverside Hospital" --location "Portland, OR"`,
	Args: cobra.ExactArgs(2),
	RunE: runClientAdd,
}

var clientListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List client sites",
	RunE:    runClientList,
}

var clientRmCmd = &cobra.Command{
	Use:     "rm CLIENT_ID",
	Aliases: []string{"delete", "remove"},
	Short:   "Delete a client site",
	Args:    cobra.ExactArgs(1),
	RunE:    runClientRm,
}

func init() {
	clientAddCmd.Flags().StringVar(&clientFlagLocation, "location", "", "Site location")

	clientCmd.AddCommand(clientAddCmd)
	clientCmd.AddCommand(clientListCmd)
	clientCmd.AddCommand(clientRmCmd)
	rootCmd.AddCommand(clientCmd)
}

func runClientAdd(cmd *cobra.Command, args []string) error {
	c := model.NewClient(args[0], args[1], clientFlagLocation)

	if err := ctx.Service.AddClient(c); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewClientOutput(c))
	}
	ctx.CLIFormatter().Success("Client saved: " + c.ID + " (" + c.Name + ")")
	return nil
}

func runClientList(cmd *cobra.Command, args []string) error {
	clients, err := ctx.Store.Clients().List()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		outputs := make([]*output.ClientOutput, len(clients))
		for i, c := range clients {
			outputs[i] = output.NewClientOutput(c)
		}
		return ctx.Formatter.JSON(map[string]interface{}{
			"clients": outputs,
			"count":   len(outputs),
		})
	}

	cli := ctx.CLIFormatter()
	if len(clients) == 0 {
		cli.Muted("No clients on file.")
		cli.Muted("Use 'shiftbook client add <id> <name>' to add one.")
		return nil
	}

	rows := make([]output.TableRow, len(clients))
	for i, c := range clients {
		rows[i] = output.TableRow{Columns: []string{c.ID, c.Name, c.Location}}
	}
	cli.PrintTable([]string{"ID", "Name", "Location"}, rows)
	return nil
}

func runClientRm(cmd *cobra.Command, args []string) error {
	if err := ctx.Service.DeleteClient(args[0]); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "deleted", "client_id": args[0]})
	}
	ctx.CLIFormatter().Success("Client deleted: " + args[0])
	return nil
}
