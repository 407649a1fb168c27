package profile

import "time"

// TotalMonths counts the distinct calendar months covered by the given
// work periods. Overlapping roles are common in self-reported
// employment histories, so months are collected as a set of
// (year, month) identities instead of summing per-period lengths.
//
// Periods without a parseable start are skipped, as are periods whose
// end precedes their start. An open end is anchored at now.
func TotalMonths(periods []WorkPeriod, now time.Time) int {
	months := make(map[int]struct{})

	for _, p := range periods {
		if p.Start == nil {
			continue
		}
		end := now
		if p.End != nil {
			end = *p.End
		}
		if end.Before(*p.Start) {
			continue
		}

		// Both bounds normalized to month precision, walk inclusive.
		first := monthIndex(*p.Start)
		last := monthIndex(end)
		for m := first; m <= last; m++ {
			months[m] = struct{}{}
		}
	}

	return len(months)
}

func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}
