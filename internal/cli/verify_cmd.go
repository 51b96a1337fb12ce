package cli

import (
	"fmt"

	"github.com/alexanderramin/daybill/internal/app"
	"github.com/alexanderramin/daybill/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newVerifyCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "verify FILE",
		Short: "Check each project set against its expected evaluation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := a.loadInputs(args[0])
			if err != nil {
				return err
			}

			resp, err := a.Billing.Verify(cmd.Context(), app.VerifyRequest{Sets: inputs})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatVerify(resp, a.plain))
			if !resp.OK() {
				return fmt.Errorf("%d of %d project sets failed verification", resp.Failed, len(resp.Results))
			}
			return nil
		},
	}
}
