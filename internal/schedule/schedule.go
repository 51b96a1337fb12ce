package schedule

import (
	"sync"
	"time"

	"github.com/alexanderramin/daybill/internal/domain"
)

// Day is one calendar day of a schedule.
type Day struct {
	Date time.Time
	Tier domain.Tier
	Type domain.DayType
}

// Counts holds the number of days per (tier, day type) pair.
type Counts struct {
	LowTravel  int
	LowFull    int
	HighTravel int
	HighFull   int
}

// Total returns the number of days across all categories.
func (c Counts) Total() int {
	return c.LowTravel + c.LowFull + c.HighTravel + c.HighFull
}

// Get returns the count for a single (tier, day type) pair.
func (c Counts) Get(tier domain.Tier, dayType domain.DayType) int {
	switch {
	case tier == domain.TierLow && dayType == domain.DayTravel:
		return c.LowTravel
	case tier == domain.TierLow && dayType == domain.DayFull:
		return c.LowFull
	case tier == domain.TierHigh && dayType == domain.DayTravel:
		return c.HighTravel
	case tier == domain.TierHigh && dayType == domain.DayFull:
		return c.HighFull
	default:
		return 0
	}
}

// Schedule is a finalized, read-only sequence of days with strictly
// increasing, unique dates. It is safe for concurrent use.
type Schedule struct {
	days []Day

	countsOnce sync.Once
	counts     Counts
}

// Len returns the number of days in the schedule.
func (s *Schedule) Len() int {
	return len(s.days)
}

// Days returns a copy of the schedule in date order.
func (s *Schedule) Days() []Day {
	out := make([]Day, len(s.days))
	copy(out, s.days)
	return out
}

// Counts returns the per-category day counts, computed on first use.
func (s *Schedule) Counts() Counts {
	s.countsOnce.Do(func() {
		s.counts = Fold(s, Counts{}, func(c Counts, d Day) Counts {
			switch {
			case d.Tier == domain.TierLow && d.Type == domain.DayTravel:
				c.LowTravel++
			case d.Tier == domain.TierLow && d.Type == domain.DayFull:
				c.LowFull++
			case d.Tier == domain.TierHigh && d.Type == domain.DayTravel:
				c.HighTravel++
			case d.Tier == domain.TierHigh && d.Type == domain.DayFull:
				c.HighFull++
			}
			return c
		})
	})
	return s.counts
}

// Count returns the number of days matching tier and day type.
func (s *Schedule) Count(tier domain.Tier, dayType domain.DayType) int {
	return s.Counts().Get(tier, dayType)
}

// LowTravelDays returns the number of low-cost travel days.
func (s *Schedule) LowTravelDays() int { return s.Counts().LowTravel }

// LowFullDays returns the number of low-cost full days.
func (s *Schedule) LowFullDays() int { return s.Counts().LowFull }

// HighTravelDays returns the number of high-cost travel days.
func (s *Schedule) HighTravelDays() int { return s.Counts().HighTravel }

// HighFullDays returns the number of high-cost full days.
func (s *Schedule) HighFullDays() int { return s.Counts().HighFull }

// Fold reduces the schedule in date order, starting from init.
func Fold[T any](s *Schedule, init T, fn func(acc T, d Day) T) T {
	acc := init
	for _, d := range s.days {
		acc = fn(acc, d)
	}
	return acc
}

// Run is a maximal stretch of consecutive calendar days.
type Run struct {
	Start time.Time
	End   time.Time
	Days  int
}

// Runs splits the schedule into maximal runs of consecutive calendar days.
func (s *Schedule) Runs() []Run {
	var runs []Run
	for i, d := range s.days {
		if i > 0 && domain.NextDay(s.days[i-1].Date).Equal(d.Date) {
			last := &runs[len(runs)-1]
			last.End = d.Date
			last.Days++
			continue
		}
		runs = append(runs, Run{Start: d.Date, End: d.Date, Days: 1})
	}
	return runs
}
