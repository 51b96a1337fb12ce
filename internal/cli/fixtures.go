package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/daybill/internal/app"
	"github.com/alexanderramin/daybill/internal/importer"
)

// loadInputs reads and validates a fixture file, reporting every problem at once.
func (a *App) loadInputs(path string) ([]app.ProjectSetInput, error) {
	sets, err := importer.LoadFixtures(path)
	if err != nil {
		return nil, err
	}
	if errs := importer.ValidateFixtures(sets); len(errs) > 0 {
		return nil, fmt.Errorf("invalid fixtures in %s:\n%w", path, errors.Join(errs...))
	}
	a.Log.Debug().Str("path", path).Int("sets", len(sets)).Msg("fixtures loaded")
	return app.NewProjectSetInputs(sets), nil
}
