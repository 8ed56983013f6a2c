package model

import "github.com/Nixie-Tech-LLC/masjidsite/internal/prayer"

// SitePageData feeds the tenant home page template. Prayers is empty and
// Next nil when the day's table is unavailable; the template then omits the
// prayer section.
type SitePageData struct {
	Name    string
	LogoURL string
	Date    string // "SATURDAY, OCTOBER 17, 2026"
	Hijri   string // "1448-04-26"
	Zone    string
	Prayers []prayer.Row
	Next    *prayer.Upcoming
}
