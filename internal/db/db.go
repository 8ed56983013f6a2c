package db

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

var DB *sqlx.DB

const (
	connectAttempts = 10
	connectInterval = 2 * time.Second
)

// Init opens the PostgreSQL pool and assigns it to DB, retrying while the
// database container comes up.
func Init(databaseURL string) error {
	var err error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		DB, err = sqlx.Connect("postgres", databaseURL)
		if err == nil {
			DB.SetMaxOpenConns(20)
			DB.SetConnMaxIdleTime(5 * time.Minute)
			log.Info().Msg("connected to database")
			return nil
		}
		log.Error().Err(err).
			Int("attempt", attempt).
			Msgf("failed to connect to database, retrying in %s", connectInterval)
		time.Sleep(connectInterval)
	}
	return fmt.Errorf("could not connect to database after %d attempts: %w", connectAttempts, err)
}

const migrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	name       TEXT PRIMARY KEY,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

// RunMigrations applies every "*.up.sql" in dir that schema_migrations has not
// recorded yet, in file-name order. Each file runs in its own transaction.
func RunMigrations(conn *sqlx.DB, dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
	if err != nil {
		return fmt.Errorf("failed to glob migrations: %w", err)
	}
	if len(files) == 0 {
		return nil
	}
	sort.Strings(files)

	if _, err := conn.Exec(migrationsTable); err != nil {
		return fmt.Errorf("could not create schema_migrations: %w", err)
	}

	var applied []string
	if err := conn.Select(&applied, `SELECT name FROM schema_migrations`); err != nil {
		return fmt.Errorf("could not read schema_migrations: %w", err)
	}
	done := make(map[string]bool, len(applied))
	for _, name := range applied {
		done[name] = true
	}

	for _, file := range files {
		name := filepath.Base(file)
		if done[name] {
			continue
		}
		body, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("could not read migration %q: %w", name, err)
		}
		if strings.TrimSpace(string(body)) == "" {
			continue
		}

		tx, err := conn.Beginx()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(body)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("error executing migration %q: %w", name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations (name) VALUES ($1)`, name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("could not record migration %q: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}
		log.Info().Str("migration", name).Msg("applied migration")
	}
	return nil
}
