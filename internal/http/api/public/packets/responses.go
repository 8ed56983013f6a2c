package packets

import "github.com/Nixie-Tech-LLC/masjidsite/internal/prayer"

type ZonePrayerTimesResponse struct {
	Zone  string             `json:"zone"`
	Table *prayer.DailyTable `json:"table"`
	Next  *prayer.Upcoming   `json:"next"`
}
