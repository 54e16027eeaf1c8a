package database

import (
	"context"
	"fmt"

	pgx "github.com/jackc/pgx/v5"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Idempotent bootstrap of the two tables. Not a migration system:
// statements only ever create what is missing.

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS author (
		id          BIGSERIAL PRIMARY KEY,
		name        VARCHAR(255) NOT NULL,
		last_name   VARCHAR(255) NOT NULL,
		birth_date  DATE NOT NULL,
		nationality VARCHAR(255)
	)`,
	`CREATE TABLE IF NOT EXISTS book (
		id               BIGSERIAL PRIMARY KEY,
		title            VARCHAR(255) NOT NULL,
		publication_date DATE NOT NULL,
		number_pages     INTEGER NOT NULL CHECK (number_pages > 0),
		authors_id       BIGINT NOT NULL REFERENCES author (id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_book_authors_id ON book (authors_id)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS author (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		name        TEXT NOT NULL,
		last_name   TEXT NOT NULL,
		birth_date  DATE NOT NULL,
		nationality TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS book (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		title            TEXT NOT NULL,
		publication_date DATE NOT NULL,
		number_pages     INTEGER NOT NULL CHECK (number_pages > 0),
		authors_id       INTEGER NOT NULL REFERENCES author (id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_book_authors_id ON book (authors_id)`,
}

func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	err := db.ExecuteInTransaction(ctx, nil, func(tx pgx.Tx) error {
		for _, stmt := range postgresSchema {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("apply schema: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Str("driver", DriverPostgres).Msg("[DATABASE] Schema ready")
	return nil
}

func (db *SQLiteDB) EnsureSchema(ctx context.Context) error {
	err := db.ExecuteInTransaction(ctx, func(tx *sqlx.Tx) error {
		for _, stmt := range sqliteSchema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("apply schema: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Str("driver", DriverSQLite).Str("path", db.Config.Path).Msg("[DATABASE] Schema ready")
	return nil
}
