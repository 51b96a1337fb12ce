package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/daybill/internal/domain"
)

// ValidateFixtures checks every project set before conversion.
// Returns a slice of all validation errors found.
func ValidateFixtures(sets []ProjectSetImport) []error {
	var errs []error
	for i := range sets {
		errs = append(errs, ValidateProjectSet(fmt.Sprintf("sets[%d]", i), &sets[i])...)
	}
	return errs
}

// ValidateProjectSet checks a single set; prefix is used in error paths.
func ValidateProjectSet(prefix string, set *ProjectSetImport) []error {
	var errs []error

	if set.Description == "" {
		errs = append(errs, fmt.Errorf("%s.description is required", prefix))
	}
	for j := range set.Projects {
		errs = append(errs, validateProject(fmt.Sprintf("%s.projects[%d]", prefix, j), &set.Projects[j])...)
	}
	errs = append(errs, validateEvaluation(prefix+".evaluation", set.Evaluation)...)

	return errs
}

func validateProject(prefix string, p *ProjectImport) []error {
	var errs []error

	if p.Name == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", prefix))
	}
	if p.City == "" {
		errs = append(errs, fmt.Errorf("%s.city is required", prefix))
	} else if _, err := domain.ParseTier(p.City); err != nil {
		errs = append(errs, fmt.Errorf("%s.city: %w", prefix, err))
	}

	start, startErr := parseRequiredDate(prefix+".start_date", p.StartDate)
	if startErr != nil {
		errs = append(errs, startErr)
	}
	end, endErr := parseRequiredDate(prefix+".end_date", p.EndDate)
	if endErr != nil {
		errs = append(errs, endErr)
	}
	if startErr == nil && endErr == nil && end.Before(start) {
		errs = append(errs, fmt.Errorf("%s.end_date %q: %w %q", prefix, p.EndDate, domain.ErrInvalidDateRange, p.StartDate))
	}

	return errs
}

func parseRequiredDate(field, value string) (t time.Time, err error) {
	if value == "" {
		return t, fmt.Errorf("%s is required", field)
	}
	t, err = domain.ParseDate(value)
	if err != nil {
		return t, fmt.Errorf("%s: %w", field, err)
	}
	return t, nil
}

func validateEvaluation(prefix string, e *EvaluationImport) []error {
	if e == nil {
		return nil
	}
	var errs []error

	checks := []struct {
		field string
		value int
	}{
		{"low.travel", e.Low.Travel},
		{"low.full", e.Low.Full},
		{"high.travel", e.High.Travel},
		{"high.full", e.High.Full},
		{"total", e.Total},
	}
	for _, c := range checks {
		if c.value < 0 {
			errs = append(errs, fmt.Errorf("%s.%s must be non-negative, got %d", prefix, c.field, c.value))
		}
	}

	return errs
}
