// Package db is the tenant persistence layer over PostgreSQL.
package db

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Nixie-Tech-LLC/masjidsite/internal/model"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/prayer"
)

// ErrTenantNotFound is returned when no tenant matches a lookup.
var ErrTenantNotFound = errors.New("tenant not found")

type Store interface {
	GetTenantBySubdomain(ctx context.Context, subdomain string) (*model.Tenant, error)
	UpdateTenantPrayerSettings(ctx context.Context, id int, zone string, offsets prayer.IqamahOffsets) (time.Time, error)
	UpdateTenantLogo(ctx context.Context, id int, url string) error
}

type pgStore struct {
	db *sqlx.DB
}

var _ Store = (*pgStore)(nil)

func NewStore(conn *sqlx.DB) Store {
	return &pgStore{db: conn}
}
