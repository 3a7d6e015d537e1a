package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	apperrors "github.com/rostrahealth/shiftbook/internal/errors"
	"github.com/rostrahealth/shiftbook/internal/model"
	"github.com/rostrahealth/shiftbook/internal/output"
	"github.com/rostrahealth/shiftbook/internal/parser"
	"github.com/rostrahealth/shiftbook/internal/schedule"
)

// Shift mutation flags, shared by add/edit/duplicate.
var (
	shiftFlagProvider string
	shiftFlagClient   string
	shiftFlagStart    string
	shiftFlagEnd      string
	shiftFlagType     string
	shiftFlagNotes    string
	shiftFlagCall     bool
)

// Shift list flags.
var (
	shiftListFlagMonth    string
	shiftListFlagProvider string
	shiftListFlagClient   string
	shiftListFlagAllTime  bool
)

// shiftCmd represents the shift command group.
var shiftCmd = &cobra.Command{
	Use:     "shift",
	Aliases: []string{"shifts", "s"},
	Short:   "Manage scheduled shifts",
	RunE:    runShiftList,
}

var shiftAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a shift",
	Long: `Schedule a shift. Omitting --provider creates an unfilled shift. The
--call flag makes the shift a 24-hour call, overriding --end.

Examples:
  shiftbook shift add --client C001 --provider P001 --start "2025-01-10 08:00" --end "2025-01-10 16:00"
  shiftbook shift add --client C001 --start "2025-01-11 08:00" --call
  shiftbook shift add --client C002 --provider P002 --start "2025-01-12 19:00" --end "2025-01-13 07:00" --type Night`,
	RunE: runShiftAdd,
}

var shiftEditCmd = &cobra.Command{
	Use:   "edit SHIFT_ID",
	Short: "Edit a shift",
	Long: `Replace a shift's fields under the same id. All fields must be given
again; this is a full replacement, not a patch.

Examples:
  shiftbook shift edit 0194fdc2 --client C001 --provider P002 --start "2025-01-10 08:00" --end "2025-01-10 16:00"`,
	Args: cobra.ExactArgs(1),
	RunE: runShiftEdit,
}

var shiftDuplicateCmd = &cobra.Command{
	Use:     "duplicate SHIFT_ID",
	Aliases: []string{"dup", "copy"},
	Short:   "Duplicate a shift under a new id",
	Long: `Create a new shift from the given fields, keeping the source shift
untouched. Useful for repeating a shift on another day.

Examples:
  shiftbook shift duplicate 0194fdc2 --client C001 --provider P001 --start "2025-01-17 08:00" --end "2025-01-17 16:00"`,
	Args: cobra.ExactArgs(1),
	RunE: runShiftDuplicate,
}

var shiftShowCmd = &cobra.Command{
	Use:   "show SHIFT_ID",
	Short: "Show a shift",
	Args:  cobra.ExactArgs(1),
	RunE:  runShiftShow,
}

var shiftRmCmd = &cobra.Command{
	Use:     "rm SHIFT_ID",
	Aliases: []string{"delete", "remove"},
	Short:   "Delete a shift",
	Args:    cobra.ExactArgs(1),
	RunE:    runShiftRm,
}

var shiftListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List shifts for a month",
	Long: `List shifts, scoped to one month (the current month unless --month is
given). Provider and client filters match by display name. Use --all-time
to drop the month scope.

Examples:
  shiftbook shift list
  shiftbook shift list --month 2025-01
  shiftbook shift list --month "January 2025" --client "Riverside Hospital"
  shiftbook shift list --provider "Dr. Alice Stone" --all-time`,
	RunE: runShiftList,
}

func init() {
	for _, c := range []*cobra.Command{shiftAddCmd, shiftEditCmd, shiftDuplicateCmd} {
		c.Flags().StringVar(&shiftFlagProvider, "provider", "", "Provider id (empty = unfilled)")
		c.Flags().StringVar(&shiftFlagClient, "client", "", "Client id (required)")
		c.Flags().StringVar(&shiftFlagStart, "start", "", "Start timestamp")
		c.Flags().StringVar(&shiftFlagEnd, "end", "", "End timestamp")
		c.Flags().StringVar(&shiftFlagType, "type", "", "Shift type label (e.g. Day, Night)")
		c.Flags().StringVar(&shiftFlagNotes, "notes", "", "Free-form notes")
		c.Flags().BoolVar(&shiftFlagCall, "call", false, "24-hour call shift (end = start + 24h)")
	}

	shiftListCmd.Flags().StringVarP(&shiftListFlagMonth, "month", "m", "", "Month to list (e.g. 2025-01, \"January 2025\")")
	shiftListCmd.Flags().StringVar(&shiftListFlagProvider, "provider", "", "Filter by provider name")
	shiftListCmd.Flags().StringVar(&shiftListFlagClient, "client", "", "Filter by client name")
	shiftListCmd.Flags().BoolVar(&shiftListFlagAllTime, "all-time", false, "List across all months")

	shiftCmd.AddCommand(shiftAddCmd)
	shiftCmd.AddCommand(shiftEditCmd)
	shiftCmd.AddCommand(shiftDuplicateCmd)
	shiftCmd.AddCommand(shiftShowCmd)
	shiftCmd.AddCommand(shiftRmCmd)
	shiftCmd.AddCommand(shiftListCmd)
	rootCmd.AddCommand(shiftCmd)
}

// shiftInputFromFlags parses the mutation flags into a ShiftInput.
func shiftInputFromFlags() (schedule.ShiftInput, error) {
	var in schedule.ShiftInput

	if shiftFlagStart == "" {
		return in, apperrors.NewValidationError("start", "start timestamp is required")
	}
	start, err := parser.ParseDateTime(shiftFlagStart)
	if err != nil {
		return in, err
	}

	var end time.Time
	if !shiftFlagCall {
		if shiftFlagEnd == "" {
			return in, apperrors.NewValidationError("end", "end timestamp is required unless --call is set")
		}
		end, err = parser.ParseDateTime(shiftFlagEnd)
		if err != nil {
			return in, err
		}
	}

	return schedule.ShiftInput{
		ProviderID: shiftFlagProvider,
		ClientID:   shiftFlagClient,
		Start:      start,
		End:        end,
		Type:       shiftFlagType,
		Notes:      shiftFlagNotes,
		Call:       shiftFlagCall,
	}, nil
}

func printShiftResult(status string, s *model.Shift) error {
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.MutationResponse{
			Status: status,
			Shift: output.NewShiftOutput(s,
				ctx.Query.ProviderDisplay(s.ProviderID),
				ctx.Query.ClientDisplay(s.ClientID)),
		})
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Shift %s: %s", status, s.ID))
	cli.PrintShift(s, ctx.Query.ProviderDisplay(s.ProviderID), ctx.Query.ClientDisplay(s.ClientID))
	return nil
}

func runShiftAdd(cmd *cobra.Command, args []string) error {
	in, err := shiftInputFromFlags()
	if err != nil {
		return err
	}

	shift, err := ctx.Service.AddShift(in)
	if err != nil {
		return err
	}
	return printShiftResult("added", shift)
}

func runShiftEdit(cmd *cobra.Command, args []string) error {
	in, err := shiftInputFromFlags()
	if err != nil {
		return err
	}

	shift, err := ctx.Service.EditShift(args[0], in)
	if err != nil {
		return err
	}
	return printShiftResult("updated", shift)
}

func runShiftDuplicate(cmd *cobra.Command, args []string) error {
	in, err := shiftInputFromFlags()
	if err != nil {
		return err
	}

	shift, err := ctx.Service.DuplicateShift(args[0], in)
	if err != nil {
		return err
	}
	return printShiftResult("duplicated", shift)
}

func runShiftShow(cmd *cobra.Command, args []string) error {
	shift, err := ctx.Service.GetShift(args[0])
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewShiftOutput(shift,
			ctx.Query.ProviderDisplay(shift.ProviderID),
			ctx.Query.ClientDisplay(shift.ClientID)))
	}

	ctx.CLIFormatter().PrintShift(shift,
		ctx.Query.ProviderDisplay(shift.ProviderID),
		ctx.Query.ClientDisplay(shift.ClientID))
	return nil
}

func runShiftRm(cmd *cobra.Command, args []string) error {
	if err := ctx.Service.DeleteShift(args[0]); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "deleted", "shift_id": args[0]})
	}
	ctx.CLIFormatter().Success("Shift deleted: " + args[0])
	return nil
}

func runShiftList(cmd *cobra.Command, args []string) error {
	var (
		view *schedule.ShiftView
		year int
		mon  time.Month
	)

	if shiftListFlagAllTime {
		v, err := ctx.Query.FilteredShifts(shiftListFlagProvider, shiftListFlagClient)
		if err != nil {
			return err
		}
		view = v
	} else {
		year, mon = time.Now().Year(), time.Now().Month()
		if shiftListFlagMonth != "" {
			var err error
			year, mon, err = parser.ParseMonth(shiftListFlagMonth)
			if err != nil {
				return err
			}
		}

		mv, err := ctx.Query.VisibleShifts(year, mon, shiftListFlagProvider, shiftListFlagClient)
		if err != nil {
			return err
		}
		view = &mv.ShiftView
	}

	if ctx.IsJSON() {
		resp := output.ShiftsResponse{
			Shifts: make([]*output.ShiftOutput, len(view.Shifts)),
			Count:  len(view.Shifts),
		}
		if !shiftListFlagAllTime {
			resp.Year = year
			resp.Month = mon.String()
		}
		for i, s := range view.Shifts {
			resp.Shifts[i] = output.NewShiftOutput(s,
				ctx.Query.ProviderDisplay(s.ProviderID),
				ctx.Query.ClientDisplay(s.ClientID))
			resp.TotalHours += s.Duration().Hours()
		}
		return ctx.Formatter.JSON(resp)
	}

	cli := ctx.CLIFormatter()
	if view.ProviderFilterReset {
		cli.Warning(fmt.Sprintf("Unknown provider %q, showing all providers", shiftListFlagProvider))
	}
	if view.ClientFilterReset {
		cli.Warning(fmt.Sprintf("Unknown client %q, showing all clients", shiftListFlagClient))
	}

	if shiftListFlagAllTime {
		cli.Title("All shifts")
	} else {
		cli.Title("Shifts for " + output.FormatMonth(year, mon))
	}

	if len(view.Shifts) == 0 {
		cli.Muted("No shifts found.")
		return nil
	}

	rows := make([]output.TableRow, len(view.Shifts))
	for i, s := range view.Shifts {
		kind := s.Type
		if s.IsCall() {
			kind = "Call"
		}
		rows[i] = output.TableRow{Columns: []string{
			s.ID,
			output.FormatTime(s.Start),
			output.FormatTime(s.End),
			ctx.Query.ProviderDisplay(s.ProviderID),
			ctx.Query.ClientDisplay(s.ClientID),
			kind,
		}}
	}
	cli.PrintTable([]string{"ID", "Start", "End", "Provider", "Client", "Type"}, rows)
	return nil
}
