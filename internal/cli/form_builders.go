package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/daybill/internal/billing"
	"github.com/alexanderramin/daybill/internal/domain"
	"github.com/charmbracelet/huh"
)

// quoteDraft holds the raw form values for one quoted project.
type quoteDraft struct {
	Name  string
	Tier  string
	Start string
	End   string
}

func (d quoteDraft) record() billing.Record {
	return billing.Record{
		Name:      strings.TrimSpace(d.Name),
		Tier:      d.Tier,
		StartDate: strings.TrimSpace(d.Start),
		EndDate:   strings.TrimSpace(d.End),
	}
}

// dateInput returns a huh.Input for a required M/D/YY date.
func dateInput(title string, value *string, validate func(string) error) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("9/1/15").
		Value(value).
		Validate(validate)
}

// tierSelect returns a huh.Select over the city tiers.
func tierSelect(value *string) *huh.Select[string] {
	options := make([]huh.Option[string], 0, len(domain.Tiers))
	for _, t := range domain.Tiers {
		label := string(t)
		options = append(options, huh.NewOption(strings.ToUpper(label[:1])+label[1:]+" cost city", label))
	}
	return huh.NewSelect[string]().
		Title("City").
		Options(options...).
		Value(value)
}

// quoteProjectForm returns a themed form collecting one project.
func quoteProjectForm(d *quoteDraft, n int) *huh.Form {
	if d.Tier == "" {
		d.Tier = string(domain.TierLow)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(projectTitle(n)).
				Placeholder("Project name").
				Value(&d.Name).
				Validate(validateRequired),
			tierSelect(&d.Tier),
			dateInput("Start Date (M/D/YY)", &d.Start, validateDate),
			dateInput("End Date (M/D/YY)", &d.End, func(s string) error {
				return validateEndDate(d.Start, s)
			}),
		),
	).WithTheme(daybillHuhTheme()).WithShowHelp(false)
}

// runQuoteForms prompts for projects until the user declines to add another.
func runQuoteForms() ([]billing.Record, error) {
	var records []billing.Record
	for {
		var d quoteDraft
		if err := quoteProjectForm(&d, len(records)+1).Run(); err != nil {
			return nil, err
		}
		records = append(records, d.record())

		more := false
		if err := wizardConfirm("Add another project?", &more).Run(); err != nil {
			return nil, err
		}
		if !more {
			return records, nil
		}
	}
}

func projectTitle(n int) string {
	return fmt.Sprintf("Project %d Name", n)
}
