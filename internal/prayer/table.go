// Package prayer normalizes daily prayer tables, computes iqamah times and
// picks the next upcoming prayer. Everything here except Times is pure.
package prayer

// Name is a prayer slot in Malay naming.
type Name string

const (
	Subuh   Name = "Subuh"
	Syuruk  Name = "Syuruk"
	Zohor   Name = "Zohor"
	Asar    Name = "Asar"
	Maghrib Name = "Maghrib"
	Isyak   Name = "Isyak"
)

// Order is the canonical chronological order of a day's slots.
var Order = []Name{Subuh, Syuruk, Zohor, Asar, Maghrib, Isyak}

// Unavailable is shown in place of a clock value the provider left empty.
const Unavailable = "--:--"

// DailyTable is one day's prayer times as "HH:MM" 24-hour strings.
type DailyTable struct {
	Date    string `json:"date"`
	Hijri   string `json:"hijri"`
	Day     string `json:"day,omitempty"`
	Subuh   string `json:"subuh"`
	Syuruk  string `json:"syuruk"`
	Zohor   string `json:"zohor"`
	Asar    string `json:"asar"`
	Maghrib string `json:"maghrib"`
	Isyak   string `json:"isyak"`
}

// Time returns the clock value for a slot.
func (t *DailyTable) Time(n Name) string {
	switch n {
	case Subuh:
		return t.Subuh
	case Syuruk:
		return t.Syuruk
	case Zohor:
		return t.Zohor
	case Asar:
		return t.Asar
	case Maghrib:
		return t.Maghrib
	case Isyak:
		return t.Isyak
	}
	return ""
}

// Upcoming is the result of NextPrayer.
type Upcoming struct {
	Name Name   `json:"name"`
	Time string `json:"time"`
}
