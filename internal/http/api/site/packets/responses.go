package packets

import "github.com/Nixie-Tech-LLC/masjidsite/internal/prayer"

type TenantResponse struct {
	Subdomain string  `json:"subdomain"`
	Name      string  `json:"name"`
	ZoneCode  string  `json:"zone_code"`
	LogoURL   *string `json:"logo_url"`
}

// PrayerTimesResponse keeps Table, Schedule and Next null when the day's
// times are unavailable.
type PrayerTimesResponse struct {
	Tenant   TenantResponse     `json:"tenant"`
	Table    *prayer.DailyTable `json:"table"`
	Schedule []prayer.Row       `json:"schedule"`
	Next     *prayer.Upcoming   `json:"next"`
}
