package prayer

import "fmt"

// Row is one line of a rendered prayer schedule.
type Row struct {
	Name   Name   `json:"name"`
	Time   string `json:"time"`   // "13:15"
	Clock  string `json:"clock"`  // "01:15"
	Period string `json:"period"` // "AM" or "PM"
	Iqamah string `json:"iqamah"` // "13:25", or "-" for Syuruk
}

// BuildSchedule lays out a table in canonical order with iqamah times.
func BuildSchedule(table *DailyTable, offsets IqamahOffsets) []Row {
	if table == nil {
		return nil
	}
	rows := make([]Row, 0, len(Order))
	for _, n := range Order {
		t := table.Time(n)
		clock, period := To12Hour(t)
		iqamah := NotApplicable
		if off, ok := offsets.For(n); ok {
			iqamah = IqamahTime(t, off)
		}
		rows = append(rows, Row{
			Name:   n,
			Time:   t,
			Clock:  clock,
			Period: period,
			Iqamah: iqamah,
		})
	}
	return rows
}

// To12Hour converts "17:30" to ("05:30", "PM"). Unparseable input comes back
// unchanged with an empty period.
func To12Hour(t string) (string, string) {
	m, ok := minutes(t)
	if !ok {
		return t, ""
	}
	h, mm := (m/60)%24, m%60
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%02d:%02d", h, mm), period
}
