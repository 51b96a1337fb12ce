package cli

import (
	"fmt"

	"github.com/alexanderramin/daybill/internal/app"
	"github.com/alexanderramin/daybill/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCalcCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "calc [FILE]",
		Short: "Price every project set in a fixture file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := DefaultFixturesPath
			if len(args) == 1 {
				path = args[0]
			}

			inputs, err := a.loadInputs(path)
			if err != nil {
				return err
			}

			resp, err := a.Billing.Evaluate(cmd.Context(), app.EvaluateRequest{Sets: inputs})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(resp.Reports, a.plain))
			return nil
		},
	}
}
