package model

import (
	"time"

	"github.com/Nixie-Tech-LLC/masjidsite/internal/prayer"
)

// Tenant is one mosque's site record.
type Tenant struct {
	ID            int       `db:"id"              json:"id"`
	Subdomain     string    `db:"subdomain"       json:"subdomain"`
	Name          string    `db:"name"            json:"name"`
	ZoneCode      string    `db:"zone_code"       json:"zone_code"`
	IqamahEnabled bool      `db:"iqamah_enabled"  json:"iqamah_enabled"`
	IqamahSubuh   int       `db:"iqamah_subuh"    json:"iqamah_subuh"`
	IqamahZohor   int       `db:"iqamah_zohor"    json:"iqamah_zohor"`
	IqamahAsar    int       `db:"iqamah_asar"     json:"iqamah_asar"`
	IqamahMaghrib int       `db:"iqamah_maghrib"  json:"iqamah_maghrib"`
	IqamahIsyak   int       `db:"iqamah_isyak"    json:"iqamah_isyak"`
	LogoURL       *string   `db:"logo_url"        json:"logo_url"`
	OwnerID       string    `db:"owner_id"        json:"owner_id"`
	CreatedAt     time.Time `db:"created_at"      json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"      json:"updated_at"`
}

// Offsets returns the tenant's iqamah configuration.
func (t *Tenant) Offsets() prayer.IqamahOffsets {
	return prayer.IqamahOffsets{
		Enabled: t.IqamahEnabled,
		Subuh:   t.IqamahSubuh,
		Zohor:   t.IqamahZohor,
		Asar:    t.IqamahAsar,
		Maghrib: t.IqamahMaghrib,
		Isyak:   t.IqamahIsyak,
	}
}
