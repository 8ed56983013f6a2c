package prayer

import (
	"strings"
	"time"
)

// StatusOK is the provider's success literal.
const StatusOK = "OK!"

// ProviderDateLayout is the provider's Gregorian date format, e.g. "17-Oct-2026".
const ProviderDateLayout = "02-Jan-2006"

// ProviderResponse mirrors the time-table provider's JSON body.
type ProviderResponse struct {
	Status     string        `json:"status"`
	Zone       string        `json:"zone,omitempty"`
	PeriodType string        `json:"periodType,omitempty"`
	PrayerTime []ProviderDay `json:"prayerTime"`
}

// ProviderDay is one day's raw record; clocks come as "HH:MM:SS" or "HH:MM".
type ProviderDay struct {
	Date    string `json:"date"`
	Hijri   string `json:"hijri"`
	Day     string `json:"day"`
	Imsak   string `json:"imsak"`
	Fajr    string `json:"fajr"`
	Syuruk  string `json:"syuruk"`
	Dhuhr   string `json:"dhuhr"`
	Asr     string `json:"asr"`
	Maghrib string `json:"maghrib"`
	Isha    string `json:"isha"`
}

// Normalize builds a table from the first record of a successful response.
// The provider returns today first when asked for period=today, so no date
// comparison is made. Nil means prayer times are unavailable.
func Normalize(resp *ProviderResponse) *DailyTable {
	if !usable(resp) {
		return nil
	}
	return fromDay(resp.PrayerTime[0])
}

// NormalizeForDate is Normalize with the record chosen by matching its date
// against day's calendar date. Nil when no record matches.
func NormalizeForDate(resp *ProviderResponse, day time.Time) *DailyTable {
	if !usable(resp) {
		return nil
	}
	want := day.Format(ProviderDateLayout)
	for _, d := range resp.PrayerTime {
		if strings.EqualFold(strings.TrimSpace(d.Date), want) {
			return fromDay(d)
		}
	}
	return nil
}

func usable(resp *ProviderResponse) bool {
	return resp != nil && resp.Status == StatusOK && len(resp.PrayerTime) > 0
}

func fromDay(d ProviderDay) *DailyTable {
	return &DailyTable{
		Date:    d.Date,
		Hijri:   d.Hijri,
		Day:     d.Day,
		Subuh:   Clock(d.Fajr),
		Syuruk:  Clock(d.Syuruk),
		Zohor:   Clock(d.Dhuhr),
		Asar:    Clock(d.Asr),
		Maghrib: Clock(d.Maghrib),
		Isyak:   Clock(d.Isha),
	}
}

// Clock keeps the first two colon-separated components of a raw clock
// value. Empty input becomes Unavailable.
func Clock(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Unavailable
	}
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) < 2 {
		return raw
	}
	return parts[0] + ":" + parts[1]
}
