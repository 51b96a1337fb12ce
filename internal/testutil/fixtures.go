package testutil

import (
	"time"

	"github.com/alexanderramin/daybill/internal/billing"
	"github.com/alexanderramin/daybill/internal/domain"
)

// Date returns a calendar date at UTC midnight.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Record options
type RecordOption func(*billing.Record)

// WithTier sets a valid tier.
func WithTier(t domain.Tier) RecordOption {
	return func(r *billing.Record) {
		r.Tier = string(t)
	}
}

// WithRawTier sets the tier text verbatim, valid or not.
func WithRawTier(tier string) RecordOption {
	return func(r *billing.Record) {
		r.Tier = tier
	}
}

// WithDates sets both ends of the record's range from calendar dates.
func WithDates(start, end time.Time) RecordOption {
	return func(r *billing.Record) {
		r.StartDate = domain.FormatDate(start)
		r.EndDate = domain.FormatDate(end)
	}
}

// WithRawDates sets the record's date strings verbatim.
func WithRawDates(start, end string) RecordOption {
	return func(r *billing.Record) {
		r.StartDate = start
		r.EndDate = end
	}
}

// NewTestRecord returns a single-day, low-tier record on 9/1/15 unless
// overridden by opts.
func NewTestRecord(name string, opts ...RecordOption) billing.Record {
	r := billing.Record{
		Name:      name,
		Tier:      string(domain.TierLow),
		StartDate: "9/1/15",
		EndDate:   "9/1/15",
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// NewTestProject builds a validated project, panicking on invalid input.
func NewTestProject(name string, tier domain.Tier, start, end time.Time) *domain.Project {
	p, err := domain.NewProject(name, tier, start, end)
	if err != nil {
		panic(err)
	}
	return p
}
