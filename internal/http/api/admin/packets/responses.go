package packets

import "github.com/Nixie-Tech-LLC/masjidsite/internal/prayer"

type IqamahResponse struct {
	Subuh   int `json:"subuh"`
	Zohor   int `json:"zohor"`
	Asar    int `json:"asar"`
	Maghrib int `json:"maghrib"`
	Isyak   int `json:"isyak"`
}

// TenantSettingsResponse mirrors model.Tenant minus ownership, with times
// flattened to RFC3339.
type TenantSettingsResponse struct {
	ID            int            `json:"id"`
	Subdomain     string         `json:"subdomain"`
	Name          string         `json:"name"`
	ZoneCode      string         `json:"zone_code"`
	IqamahEnabled bool           `json:"iqamah_enabled"`
	Iqamah        IqamahResponse `json:"iqamah"`
	LogoURL       *string        `json:"logo_url"`
	UpdatedAt     string         `json:"updated_at"`
}

type PreviewResponse struct {
	ZoneCode string             `json:"zone_code"`
	Table    *prayer.DailyTable `json:"table"`
	Schedule []prayer.Row       `json:"schedule"`
	Next     *prayer.Upcoming   `json:"next"`
}

type LogoResponse struct {
	LogoURL string `json:"logo_url"`
}
