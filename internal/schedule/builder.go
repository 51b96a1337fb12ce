package schedule

import (
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/daybill/internal/domain"
)

// Builder collects (date, tier) contributions from any number of projects
// and turns them into a finalized Schedule.
//
// Add may be called any number of times before Finalize. Finalize runs the
// dedup, sort and classify pipeline exactly once; later calls return the
// same Schedule.
type Builder struct {
	mu       sync.Mutex
	entries  []Day
	once     sync.Once
	schedule *Schedule
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add records that a project with the given tier covers date.
// It panics on an unrecognised tier or after Finalize.
func (b *Builder) Add(date time.Time, tier domain.Tier) {
	if !tier.Valid() {
		panic(fmt.Sprintf("schedule: add %s with unknown tier %q", domain.FormatDate(date), string(tier)))
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.schedule != nil {
		panic("schedule: add after finalize")
	}
	b.entries = append(b.entries, Day{Date: domain.Midnight(date), Tier: tier})
}

// Len returns the number of raw contributions, duplicates included.
func (b *Builder) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Finalize deduplicates, sorts and classifies the contributions.
// It is idempotent.
func (b *Builder) Finalize() *Schedule {
	b.once.Do(func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		days := deduplicate(b.entries)
		SortByDate(days)
		classify(days)

		b.entries = nil
		b.schedule = &Schedule{days: days}
	})
	return b.schedule
}

// deduplicate keeps one entry per date. A later entry replaces the current
// winner only when its tier has strictly higher priority, so among entries of
// equal priority the first one added wins.
func deduplicate(entries []Day) []Day {
	winners := make(map[time.Time]int, len(entries))
	days := make([]Day, 0, len(entries))

	for _, e := range entries {
		idx, seen := winners[e.Date]
		if !seen {
			winners[e.Date] = len(days)
			days = append(days, e)
			continue
		}
		if e.Tier.Priority() > days[idx].Tier.Priority() {
			days[idx] = e
		}
	}
	return days
}
