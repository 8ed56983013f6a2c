package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/masjidsite/internal/model"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/prayer"
)

const tenantColumns = `
	id, subdomain, name, zone_code,
	iqamah_enabled, iqamah_subuh, iqamah_zohor, iqamah_asar, iqamah_maghrib, iqamah_isyak,
	logo_url, owner_id, created_at, updated_at`

// GetTenantBySubdomain resolves a router label to its tenant.
func (s *pgStore) GetTenantBySubdomain(ctx context.Context, subdomain string) (*model.Tenant, error) {
	var t model.Tenant
	err := s.db.GetContext(ctx, &t, `
		SELECT`+tenantColumns+`
		FROM tenants
		WHERE subdomain = $1`, subdomain)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTenantNotFound
	}
	if err != nil {
		log.Error().Err(err).Str("subdomain", subdomain).Msg("failed to get tenant by subdomain")
		return nil, err
	}
	return &t, nil
}

// UpdateTenantPrayerSettings stores zone and offsets and returns the row's
// new updated_at.
func (s *pgStore) UpdateTenantPrayerSettings(ctx context.Context, id int, zone string, offsets prayer.IqamahOffsets) (time.Time, error) {
	var updatedAt time.Time
	err := s.db.GetContext(ctx, &updatedAt, `
		UPDATE tenants
		SET zone_code = $2,
			iqamah_enabled = $3,
			iqamah_subuh = $4,
			iqamah_zohor = $5,
			iqamah_asar = $6,
			iqamah_maghrib = $7,
			iqamah_isyak = $8,
			updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		id, zone, offsets.Enabled,
		offsets.Subuh, offsets.Zohor, offsets.Asar, offsets.Maghrib, offsets.Isyak,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrTenantNotFound
	}
	if err != nil {
		log.Error().Err(err).Int("tenant", id).Msg("failed to update tenant prayer settings")
		return time.Time{}, err
	}
	return updatedAt, nil
}

func (s *pgStore) UpdateTenantLogo(ctx context.Context, id int, url string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE tenants
		SET logo_url = $2,
			updated_at = now()
		WHERE id = $1`, id, url)
	if err != nil {
		log.Error().Err(err).Int("tenant", id).Msg("failed to update tenant logo")
		return err
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTenantNotFound
	}
	return nil
}
