package app

import (
	"fmt"
	"time"

	"github.com/alexanderramin/daybill/internal/billing"
	"github.com/alexanderramin/daybill/internal/domain"
	"github.com/alexanderramin/daybill/internal/importer"
	"github.com/alexanderramin/daybill/internal/schedule"
)

// ProjectSetInput is one project set to evaluate, with its optional
// expected outcome.
type ProjectSetInput struct {
	Description string
	Records     []billing.Record
	Expected    *Expectation
}

// Expectation is the outcome a project set is expected to produce.
type Expectation struct {
	Counts schedule.Counts
	Total  int
}

// NewProjectSetInputs converts fixture sets into use-case inputs.
func NewProjectSetInputs(sets []importer.ProjectSetImport) []ProjectSetInput {
	inputs := make([]ProjectSetInput, 0, len(sets))
	for _, set := range sets {
		in := ProjectSetInput{
			Description: set.Description,
			Records:     importer.ToRecords(set),
		}
		if set.Evaluation != nil {
			in.Expected = &Expectation{
				Counts: set.Evaluation.Counts(),
				Total:  set.Evaluation.Total,
			}
		}
		inputs = append(inputs, in)
	}
	return inputs
}

// SetReport is the aggregate result of one evaluated project set.
type SetReport struct {
	Description string
	Projects    int
	Days        int
	Counts      schedule.Counts
	Total       int
}

// ProjectView is one input project with its dates as written in the record.
type ProjectView struct {
	Name     string
	Tier     domain.Tier
	StartRaw string
	EndRaw   string
	Days     int
}

// DayView is one priced day of a schedule.
type DayView struct {
	Date  time.Time
	Tier  domain.Tier
	Type  domain.DayType
	Price int
}

// SetError reports which project set failed to build.
type SetError struct {
	Index       int
	Description string
	Err         error
}

func (e *SetError) Error() string {
	return fmt.Sprintf("project set %d (%s): %v", e.Index, e.Description, e.Err)
}

func (e *SetError) Unwrap() error {
	return e.Err
}
