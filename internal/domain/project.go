package domain

import (
	"fmt"
	"strings"
	"time"
)

// Project is one assignment: a named, tiered, inclusive date range.
// Projects are immutable once built; use NewProject.
type Project struct {
	name  string
	tier  Tier
	start time.Time
	end   time.Time

	// Date text as received, for reporting.
	startRaw string
	endRaw   string
}

// NewProject validates and builds a Project. Dates are truncated to their
// calendar day. The end date may equal, but not precede, the start date.
func NewProject(name string, tier Tier, start, end time.Time) (*Project, error) {
	if !tier.Valid() {
		return nil, fmt.Errorf("project %q: %w: %q", name, ErrUnknownTier, string(tier))
	}
	start, end = Midnight(start), Midnight(end)
	if end.Before(start) {
		return nil, fmt.Errorf("project %q: %w (%s > %s)",
			name, ErrInvalidDateRange, FormatDate(start), FormatDate(end))
	}
	return &Project{
		name:     name,
		tier:     tier,
		start:    start,
		end:      end,
		startRaw: FormatDate(start),
		endRaw:   FormatDate(end),
	}, nil
}

// ParseProject builds a Project from record text. The tier is parsed with
// ParseTier and the dates with ParseDate; the trimmed date text is kept and
// returned by StartRaw and EndRaw.
func ParseProject(name, tier, startRaw, endRaw string) (*Project, error) {
	t, err := ParseTier(tier)
	if err != nil {
		return nil, err
	}
	start, err := ParseDate(startRaw)
	if err != nil {
		return nil, fmt.Errorf("start date: %w", err)
	}
	end, err := ParseDate(endRaw)
	if err != nil {
		return nil, fmt.Errorf("end date: %w", err)
	}
	p, err := NewProject(name, t, start, end)
	if err != nil {
		return nil, err
	}
	p.startRaw = strings.TrimSpace(startRaw)
	p.endRaw = strings.TrimSpace(endRaw)
	return p, nil
}

// Name returns the project name.
func (p *Project) Name() string { return p.name }

// Tier returns the city tier the project is billed at.
func (p *Project) Tier() Tier { return p.tier }

// Start returns the first day of the project at UTC midnight.
func (p *Project) Start() time.Time { return p.start }

// End returns the last day of the project at UTC midnight.
func (p *Project) End() time.Time { return p.end }

// StartRaw returns the start date text as received. Projects built with
// NewProject report the formatted start date.
func (p *Project) StartRaw() string { return p.startRaw }

// EndRaw returns the end date text as received.
func (p *Project) EndRaw() string { return p.endRaw }

// Days returns the number of calendar days the project covers, inclusive.
func (p *Project) Days() int {
	return int(p.end.Sub(p.start).Hours()/24) + 1
}

// EachDay calls fn for every calendar day in [Start, End] in order.
func (p *Project) EachDay(fn func(day time.Time)) {
	for d := p.start; !d.After(p.end); d = NextDay(d) {
		fn(d)
	}
}
