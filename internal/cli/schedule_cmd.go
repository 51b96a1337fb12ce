package cli

import (
	"fmt"

	"github.com/alexanderramin/daybill/internal/app"
	"github.com/alexanderramin/daybill/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newScheduleCmd(a *App) *cobra.Command {
	var setNum int

	cmd := &cobra.Command{
		Use:   "schedule FILE",
		Short: "Show the day-by-day schedule of one project set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := a.loadInputs(args[0])
			if err != nil {
				return err
			}
			if setNum < 1 || setNum > len(inputs) {
				return fmt.Errorf("--set %d out of range: %s has %d project sets", setNum, args[0], len(inputs))
			}

			resp, err := a.Billing.Schedule(cmd.Context(), app.ScheduleRequest{Set: inputs[setNum-1]})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchedule(resp, a.plain))
			return nil
		},
	}

	cmd.Flags().IntVar(&setNum, "set", 1, "1-based position of the project set in the file")

	return cmd
}
