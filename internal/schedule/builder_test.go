package schedule

import (
	"testing"
	"time"

	"github.com/alexanderramin/daybill/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// addRange adds every day in [from, to] with the given tier.
func addRange(b *Builder, from, to time.Time, tier domain.Tier) {
	for cur := from; !cur.After(to); cur = domain.NextDay(cur) {
		b.Add(cur, tier)
	}
}

func dayTypes(s *Schedule) []domain.DayType {
	return Fold(s, []domain.DayType{}, func(acc []domain.DayType, day Day) []domain.DayType {
		return append(acc, day.Type)
	})
}

func TestFinalize_Empty(t *testing.T) {
	s := NewBuilder().Finalize()

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Days())
	assert.Equal(t, Counts{}, s.Counts())
	assert.Empty(t, s.Runs())
}

func TestFinalize_SingleDayIsTravel(t *testing.T) {
	b := NewBuilder()
	b.Add(d(9, 1), domain.TierLow)
	s := b.Finalize()

	require.Equal(t, 1, s.Len())
	assert.Equal(t, domain.DayTravel, s.Days()[0].Type)
	assert.Equal(t, 1, s.LowTravelDays())
	assert.Equal(t, 0, s.LowFullDays())
	assert.Equal(t, 0, s.HighTravelDays())
	assert.Equal(t, 0, s.HighFullDays())
}

func TestFinalize_TwoConsecutiveDaysAreBothTravel(t *testing.T) {
	b := NewBuilder()
	addRange(b, d(9, 1), d(9, 2), domain.TierLow)

	assert.Equal(t, []domain.DayType{domain.DayTravel, domain.DayTravel}, dayTypes(b.Finalize()))
}

func TestFinalize_ThreeConsecutiveDays(t *testing.T) {
	b := NewBuilder()
	addRange(b, d(9, 1), d(9, 3), domain.TierHigh)
	s := b.Finalize()

	want := []domain.DayType{domain.DayTravel, domain.DayFull, domain.DayTravel}
	if diff := cmp.Diff(want, dayTypes(s)); diff != "" {
		t.Errorf("day types mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, s.HighTravelDays())
	assert.Equal(t, 1, s.HighFullDays())
}

func TestFinalize_IsolatedInteriorDayIsTravel(t *testing.T) {
	b := NewBuilder()
	addRange(b, d(9, 1), d(9, 3), domain.TierLow)
	b.Add(d(9, 5), domain.TierLow)
	addRange(b, d(9, 7), d(9, 9), domain.TierLow)
	s := b.Finalize()

	want := []Day{
		{Date: d(9, 1), Tier: domain.TierLow, Type: domain.DayTravel},
		{Date: d(9, 2), Tier: domain.TierLow, Type: domain.DayFull},
		{Date: d(9, 3), Tier: domain.TierLow, Type: domain.DayTravel},
		{Date: d(9, 5), Tier: domain.TierLow, Type: domain.DayTravel},
		{Date: d(9, 7), Tier: domain.TierLow, Type: domain.DayTravel},
		{Date: d(9, 8), Tier: domain.TierLow, Type: domain.DayFull},
		{Date: d(9, 9), Tier: domain.TierLow, Type: domain.DayTravel},
	}
	if diff := cmp.Diff(want, s.Days()); diff != "" {
		t.Errorf("schedule mismatch (-want +got):\n%s", diff)
	}
}

func TestFinalize_GapBreaksContiguity(t *testing.T) {
	// A covers 1-3, B covers 5-7: days 3 and 5 border the gap.
	b := NewBuilder()
	addRange(b, d(9, 1), d(9, 3), domain.TierLow)
	addRange(b, d(9, 5), d(9, 7), domain.TierHigh)
	s := b.Finalize()

	days := s.Days()
	require.Len(t, days, 6)
	assert.Equal(t, domain.DayTravel, days[2].Type, "day 3 borders the gap")
	assert.Equal(t, domain.DayTravel, days[3].Type, "day 5 borders the gap")
	assert.Equal(t, Counts{LowTravel: 2, LowFull: 1, HighTravel: 2, HighFull: 1}, s.Counts())
}

func TestFinalize_AdjacentProjectsFormOneRun(t *testing.T) {
	b := NewBuilder()
	addRange(b, d(9, 1), d(9, 3), domain.TierLow)
	addRange(b, d(9, 4), d(9, 6), domain.TierHigh)
	s := b.Finalize()

	assert.Equal(t, Counts{LowTravel: 1, LowFull: 2, HighTravel: 1, HighFull: 2}, s.Counts())
	require.Len(t, s.Runs(), 1)
	assert.Equal(t, 6, s.Runs()[0].Days)
}

func TestFinalize_HighTierWinsOverlapRegardlessOfOrder(t *testing.T) {
	for _, order := range [][]domain.Tier{
		{domain.TierLow, domain.TierHigh},
		{domain.TierHigh, domain.TierLow},
	} {
		b := NewBuilder()
		for _, tier := range order {
			b.Add(d(9, 3), tier)
		}
		s := b.Finalize()

		require.Equal(t, 1, s.Len())
		assert.Equal(t, domain.TierHigh, s.Days()[0].Tier, "input order %v", order)
	}
}

func TestFinalize_OverlapDeduplicatesSharedDay(t *testing.T) {
	b := NewBuilder()
	addRange(b, d(9, 1), d(9, 3), domain.TierLow)
	addRange(b, d(9, 3), d(9, 5), domain.TierHigh)
	s := b.Finalize()

	days := s.Days()
	require.Len(t, days, 5)
	assert.Equal(t, d(9, 3), days[2].Date)
	assert.Equal(t, domain.TierHigh, days[2].Tier)
	assert.Equal(t, domain.DayFull, days[2].Type)
}

func TestFinalize_Idempotent(t *testing.T) {
	b := NewBuilder()
	addRange(b, d(9, 1), d(9, 4), domain.TierLow)

	first := b.Finalize()
	second := b.Finalize()

	assert.Same(t, first, second)
	assert.Equal(t, first.Days(), second.Days())
	assert.Equal(t, first.Counts(), second.Counts())
}

func TestFinalize_UnsortedInput(t *testing.T) {
	b := NewBuilder()
	b.Add(d(9, 3), domain.TierLow)
	b.Add(d(9, 1), domain.TierLow)
	b.Add(d(9, 2), domain.TierLow)

	assert.Equal(t, []domain.DayType{domain.DayTravel, domain.DayFull, domain.DayTravel}, dayTypes(b.Finalize()))
}

func TestFinalize_NormalizesTimeOfDay(t *testing.T) {
	b := NewBuilder()
	b.Add(time.Date(2015, 9, 1, 8, 0, 0, 0, time.UTC), domain.TierLow)
	b.Add(time.Date(2015, 9, 1, 17, 0, 0, 0, time.UTC), domain.TierHigh)

	s := b.Finalize()
	require.Equal(t, 1, s.Len())
	assert.Equal(t, d(9, 1), s.Days()[0].Date)
	assert.Equal(t, domain.TierHigh, s.Days()[0].Tier)
}

func TestAdd_UnknownTierPanics(t *testing.T) {
	b := NewBuilder()
	assert.Panics(t, func() { b.Add(d(9, 1), domain.Tier("medium")) })
}

func TestAdd_AfterFinalizePanics(t *testing.T) {
	b := NewBuilder()
	b.Add(d(9, 1), domain.TierLow)
	b.Finalize()
	assert.Panics(t, func() { b.Add(d(9, 2), domain.TierLow) })
}

func TestBuilderLen_CountsDuplicates(t *testing.T) {
	b := NewBuilder()
	b.Add(d(9, 1), domain.TierLow)
	b.Add(d(9, 1), domain.TierHigh)
	assert.Equal(t, 2, b.Len())
}

func TestDays_ReturnsCopy(t *testing.T) {
	b := NewBuilder()
	b.Add(d(9, 1), domain.TierLow)
	s := b.Finalize()

	days := s.Days()
	days[0].Tier = domain.TierHigh

	assert.Equal(t, domain.TierLow, s.Days()[0].Tier)
}

func TestCount_MatchesCounts(t *testing.T) {
	b := NewBuilder()
	addRange(b, d(9, 1), d(9, 5), domain.TierHigh)
	s := b.Finalize()

	for _, tier := range domain.Tiers {
		for _, dt := range domain.DayTypes {
			assert.Equal(t, s.Counts().Get(tier, dt), s.Count(tier, dt), "%s/%s", tier, dt)
		}
	}
	assert.Equal(t, 5, s.Counts().Total())
}

func TestRuns(t *testing.T) {
	b := NewBuilder()
	addRange(b, d(9, 1), d(9, 3), domain.TierLow)
	b.Add(d(9, 10), domain.TierHigh)
	s := b.Finalize()

	want := []Run{
		{Start: d(9, 1), End: d(9, 3), Days: 3},
		{Start: d(9, 10), End: d(9, 10), Days: 1},
	}
	if diff := cmp.Diff(want, s.Runs()); diff != "" {
		t.Errorf("runs mismatch (-want +got):\n%s", diff)
	}
}
