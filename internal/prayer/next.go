package prayer

import "time"

// NextPrayer returns the first slot strictly after now's wall-clock time.
// now is read as-is; converting it to the mosque's zone is the caller's job.
// After Isyak the answer is Subuh with today's time. A nil table yields nil.
func NextPrayer(table *DailyTable, now time.Time) *Upcoming {
	if table == nil {
		return nil
	}
	current := now.Hour()*60 + now.Minute()
	for _, n := range Order {
		t := table.Time(n)
		m, ok := minutes(t)
		if !ok {
			continue
		}
		if m > current {
			return &Upcoming{Name: n, Time: t}
		}
	}
	return &Upcoming{Name: Subuh, Time: table.Subuh}
}
