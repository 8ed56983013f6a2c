package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/masjidsite/internal/prayer"
)

var tenantCols = []string{
	"id", "subdomain", "name", "zone_code",
	"iqamah_enabled", "iqamah_subuh", "iqamah_zohor", "iqamah_asar", "iqamah_maghrib", "iqamah_isyak",
	"logo_url", "owner_id", "created_at", "updated_at",
}

func setupMockStore(t *testing.T) (sqlmock.Sqlmock, Store) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return mock, NewStore(sqlx.NewDb(conn, "postgres"))
}

func TestGetTenantBySubdomain_Success(t *testing.T) {
	mock, store := setupMockStore(t)
	now := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(tenantCols).
		AddRow(7, "annur", "Masjid An-Nur", "SGR01", true, 20, 10, 10, 5, 10, "https://cdn.example.com/uploads/logo.png", "b6c1a6c2-user", now, now)
	mock.ExpectQuery(`SELECT .* FROM tenants WHERE subdomain = \$1`).
		WithArgs("annur").
		WillReturnRows(rows)

	tenant, err := store.GetTenantBySubdomain(context.Background(), "annur")
	require.NoError(t, err)
	assert.Equal(t, 7, tenant.ID)
	assert.Equal(t, "Masjid An-Nur", tenant.Name)
	assert.Equal(t, "SGR01", tenant.ZoneCode)
	require.NotNil(t, tenant.LogoURL)
	assert.Equal(t, "https://cdn.example.com/uploads/logo.png", *tenant.LogoURL)
	assert.Equal(t, prayer.IqamahOffsets{Enabled: true, Subuh: 20, Zohor: 10, Asar: 10, Maghrib: 5, Isyak: 10}, tenant.Offsets())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTenantBySubdomain_NotFound(t *testing.T) {
	mock, store := setupMockStore(t)

	mock.ExpectQuery(`SELECT .* FROM tenants WHERE subdomain = \$1`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(tenantCols))

	tenant, err := store.GetTenantBySubdomain(context.Background(), "ghost")
	assert.Nil(t, tenant)
	assert.ErrorIs(t, err, ErrTenantNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTenantBySubdomain_QueryError(t *testing.T) {
	mock, store := setupMockStore(t)
	boom := errors.New("connection reset")

	mock.ExpectQuery(`SELECT .* FROM tenants`).
		WithArgs("annur").
		WillReturnError(boom)

	_, err := store.GetTenantBySubdomain(context.Background(), "annur")
	assert.ErrorIs(t, err, boom)
}

func TestUpdateTenantPrayerSettings(t *testing.T) {
	mock, store := setupMockStore(t)
	offsets := prayer.IqamahOffsets{Enabled: true, Subuh: 15, Zohor: 10, Asar: 10, Maghrib: 5, Isyak: 10}
	stamped := time.Date(2026, 10, 17, 1, 2, 3, 0, time.UTC)

	mock.ExpectQuery(`UPDATE tenants SET zone_code = \$2 .* RETURNING updated_at`).
		WithArgs(7, "WLY01", true, 15, 10, 10, 5, 10).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(stamped))

	updatedAt, err := store.UpdateTenantPrayerSettings(context.Background(), 7, "WLY01", offsets)
	require.NoError(t, err)
	assert.Equal(t, stamped, updatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTenantPrayerSettings_NoRow(t *testing.T) {
	mock, store := setupMockStore(t)

	mock.ExpectQuery(`UPDATE tenants`).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

	_, err := store.UpdateTenantPrayerSettings(context.Background(), 99, "WLY01", prayer.DefaultOffsets())
	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestUpdateTenantLogo(t *testing.T) {
	mock, store := setupMockStore(t)

	mock.ExpectExec(`UPDATE tenants SET logo_url = \$2`).
		WithArgs(7, "/uploads/logo_20261017_090000.png").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.UpdateTenantLogo(context.Background(), 7, "/uploads/logo_20261017_090000.png"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
