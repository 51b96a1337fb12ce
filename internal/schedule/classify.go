package schedule

import "github.com/alexanderramin/daybill/internal/domain"

// classify assigns a day type to every entry of a date-sorted, deduplicated
// slice. The first and last days are always travel days. An interior day is a
// full day only when both calendar neighbours are present in the schedule.
func classify(days []Day) {
	n := len(days)
	switch n {
	case 0:
		return
	case 1:
		days[0].Type = domain.DayTravel
		return
	}

	days[0].Type = domain.DayTravel
	for i := 1; i < n-1; i++ {
		prevAdjacent := domain.NextDay(days[i-1].Date).Equal(days[i].Date)
		nextAdjacent := domain.NextDay(days[i].Date).Equal(days[i+1].Date)
		if prevAdjacent && nextAdjacent {
			days[i].Type = domain.DayFull
		} else {
			days[i].Type = domain.DayTravel
		}
	}
	days[n-1].Type = domain.DayTravel
}
