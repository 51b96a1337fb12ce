package schedule

import "sort"

// SortByDate orders days chronologically, earliest first.
// Dates are unique after deduplication, so the order is total.
func SortByDate(days []Day) {
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
}
