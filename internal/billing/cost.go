package billing

import (
	"fmt"

	"github.com/alexanderramin/daybill/internal/domain"
)

// CostTable maps a (tier, day type) pair to a daily price.
type CostTable map[domain.Tier]map[domain.DayType]int

// DefaultCostTable returns the standard daily rates.
func DefaultCostTable() CostTable {
	return CostTable{
		domain.TierLow:  {domain.DayTravel: 45, domain.DayFull: 75},
		domain.TierHigh: {domain.DayTravel: 55, domain.DayFull: 85},
	}
}

// Validate checks that every (tier, day type) cell is present and non-negative.
func (c CostTable) Validate() error {
	for _, tier := range domain.Tiers {
		row, ok := c[tier]
		if !ok {
			return fmt.Errorf("cost table: missing tier %q", tier)
		}
		for _, dt := range domain.DayTypes {
			price, ok := row[dt]
			if !ok {
				return fmt.Errorf("cost table: missing %s/%s", tier, dt)
			}
			if price < 0 {
				return fmt.Errorf("cost table: %s/%s must be non-negative, got %d", tier, dt, price)
			}
		}
	}
	return nil
}

// Price returns the daily price for tier and day type. It panics when the
// pair is not in the table; pricing an unknown tier or an unclassified day
// would silently misprice the schedule.
func (c CostTable) Price(tier domain.Tier, dayType domain.DayType) int {
	row, ok := c[tier]
	if !ok {
		panic(fmt.Sprintf("billing: no prices for tier %q", tier))
	}
	price, ok := row[dayType]
	if !ok {
		panic(fmt.Sprintf("billing: no %s price for day type %q", tier, dayType))
	}
	return price
}

// Clone returns a deep copy of the table.
func (c CostTable) Clone() CostTable {
	out := make(CostTable, len(c))
	for tier, row := range c {
		r := make(map[domain.DayType]int, len(row))
		for dt, price := range row {
			r[dt] = price
		}
		out[tier] = r
	}
	return out
}
