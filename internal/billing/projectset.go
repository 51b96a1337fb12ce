package billing

import (
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/daybill/internal/domain"
	"github.com/alexanderramin/daybill/internal/schedule"
	"github.com/rs/zerolog"
)

// Record is one raw project entry as received from a record loader.
type Record struct {
	Name      string
	Tier      string
	StartDate string
	EndDate   string
}

// Summary is the reporting view of an evaluated project set.
type Summary struct {
	Projects int
	Days     int
	Counts   schedule.Counts
	Total    int
}

// Option configures a ProjectSet.
type Option func(*ProjectSet)

// WithCostTable prices the schedule with table instead of DefaultCostTable.
func WithCostTable(table CostTable) Option {
	return func(ps *ProjectSet) {
		ps.costs = table.Clone()
	}
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(ps *ProjectSet) {
		ps.log = log.With().Str("component", "billing").Logger()
	}
}

// ProjectSet owns a list of projects and derives a merged schedule and its
// total cost from them. The schedule and the cost are computed on first
// access and cached; both are safe to read from several goroutines.
type ProjectSet struct {
	projects []*domain.Project
	costs    CostTable
	log      zerolog.Logger

	scheduleOnce sync.Once
	schedule     *schedule.Schedule

	costOnce sync.Once
	cost     int
}

// NewProjectSet parses and validates records into projects. Any invalid
// record fails the whole set; the error names the offending record.
func NewProjectSet(records []Record, opts ...Option) (*ProjectSet, error) {
	projects := make([]*domain.Project, 0, len(records))
	for i, rec := range records {
		p, err := projectFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i, rec.Name, err)
		}
		projects = append(projects, p)
	}
	return NewProjectSetFromProjects(projects, opts...)
}

// NewProjectSetFromProjects builds a set from already validated projects.
func NewProjectSetFromProjects(projects []*domain.Project, opts ...Option) (*ProjectSet, error) {
	ps := &ProjectSet{
		projects: append([]*domain.Project(nil), projects...),
		costs:    DefaultCostTable(),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(ps)
	}
	if err := ps.costs.Validate(); err != nil {
		return nil, err
	}
	return ps, nil
}

func projectFromRecord(rec Record) (*domain.Project, error) {
	return domain.ParseProject(rec.Name, rec.Tier, rec.StartDate, rec.EndDate)
}

// Projects returns the projects in input order.
func (ps *ProjectSet) Projects() []*domain.Project {
	return append([]*domain.Project(nil), ps.projects...)
}

// CostTable returns a copy of the prices in use.
func (ps *ProjectSet) CostTable() CostTable {
	return ps.costs.Clone()
}

// Schedule expands every project into its days and returns the finalized,
// merged schedule. The result is built once.
func (ps *ProjectSet) Schedule() *schedule.Schedule {
	ps.scheduleOnce.Do(func() {
		b := schedule.NewBuilder()
		for _, p := range ps.projects {
			p.EachDay(func(day time.Time) {
				b.Add(day, p.Tier())
			})
		}
		contributions := b.Len()
		ps.schedule = b.Finalize()

		ps.log.Debug().
			Int("projects", len(ps.projects)).
			Int("contributions", contributions).
			Int("days", ps.schedule.Len()).
			Msg("schedule built")
	})
	return ps.schedule
}

// Cost returns the total price of the schedule.
func (ps *ProjectSet) Cost() int {
	ps.costOnce.Do(func() {
		ps.cost = schedule.Fold(ps.Schedule(), 0, func(total int, d schedule.Day) int {
			return total + ps.costs.Price(d.Tier, d.Type)
		})
	})
	return ps.cost
}

// Summary returns the day counts and total for reporting.
func (ps *ProjectSet) Summary() Summary {
	s := ps.Schedule()
	return Summary{
		Projects: len(ps.projects),
		Days:     s.Len(),
		Counts:   s.Counts(),
		Total:    ps.Cost(),
	}
}
