package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/daybill/internal/app"
	"github.com/alexanderramin/daybill/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// ErrNotInteractive is returned by quote when stdin is not a terminal.
var ErrNotInteractive = errors.New("quote needs an interactive terminal; use calc with a fixture file instead")

func newQuoteCmd(a *App) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Enter projects interactively and price them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := a.QuoteInput
			if input == nil {
				if !a.StdinIsTerminal {
					return ErrNotInteractive
				}
				input = runQuoteForms
			}

			records, err := input()
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Quote cancelled.")
				return nil
			}
			if err != nil {
				return err
			}

			resp, err := a.Billing.Evaluate(cmd.Context(), app.EvaluateRequest{Sets: []app.ProjectSetInput{
				{Description: description, Records: records},
			}})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.plain {
				fmt.Fprint(out, formatter.FormatReport(resp.Reports, true))
				return nil
			}
			fmt.Fprintln(out, formatter.FormatSetReport(resp.Reports[0]))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "Quote", "Label shown on the report")

	return cmd
}
