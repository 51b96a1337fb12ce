package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/daybill/internal/billing"
	"github.com/alexanderramin/daybill/internal/config"
	"github.com/alexanderramin/daybill/internal/logger"
	"github.com/alexanderramin/daybill/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// DefaultFixturesPath is read by calc when no file is given.
const DefaultFixturesPath = "data/projects.fixtures.yml"

// App holds the services and terminal facts used by CLI commands.
type App struct {
	// Billing is built from configuration on first use when nil.
	Billing service.BillingService
	Log     zerolog.Logger

	// StdinIsTerminal gates the interactive quote form.
	StdinIsTerminal bool
	// StdoutIsTerminal selects styled output unless --plain is given.
	StdoutIsTerminal bool

	// QuoteInput collects quote projects; nil uses the huh forms.
	QuoteInput func() ([]billing.Record, error)

	plain bool
}

// NewRootCmd creates the top-level "daybill" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var configPath, logLevel string

	root := &cobra.Command{
		Use:           "daybill",
		Short:         "Billing calculator for overlapping project schedules",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app.plain = resolvePlain(cmd.Flags(), app.StdoutIsTerminal)
			if app.Billing != nil {
				return nil
			}
			return app.bootstrap(cmd, configPath, logLevel)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", os.Getenv("DAYBILL_CONFIG"), "Path to a YAML or JSON config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level")
	root.PersistentFlags().Bool("plain", false, "Disable colors and boxes (default when stdout is not a terminal)")

	root.AddCommand(
		newCalcCmd(app),
		newVerifyCmd(app),
		newScheduleCmd(app),
		newQuoteCmd(app),
		newVersionCmd(),
	)

	return root
}

// resolvePlain honours an explicit --plain and otherwise renders plain text
// whenever stdout is not a terminal.
func resolvePlain(flags *pflag.FlagSet, stdoutIsTerminal bool) bool {
	if flags.Changed("plain") {
		plain, err := flags.GetBool("plain")
		return err == nil && plain
	}
	return !stdoutIsTerminal
}

// bootstrap loads configuration and wires the billing service.
func (app *App) bootstrap(cmd *cobra.Command, configPath, logLevel string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	log, err := logger.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	app.Log = logger.Component(log, "cli")
	app.Billing = service.NewBillingService(
		cfg.CostTable(),
		log,
		service.NewLogUseCaseObserver(log),
	)
	app.Log.Debug().Str("config", configPath).Msg("billing service ready")
	return nil
}
