package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

const MemoryPath = ":memory:"

type SQLiteConfig struct {
	// Path to the database file, or ":memory:"
	Path        string
	BusyTimeout time.Duration
}

// SQLiteDB is the embedded backend. It keeps a single connection:
// sqlite serializes writers anyway, and an in-memory database lives only as long as its connection.
type SQLiteDB struct {
	DB     *sqlx.DB
	Config *SQLiteConfig
}

var _ Store = (*SQLiteDB)(nil)

func NewSQLiteDB(config *SQLiteConfig) *SQLiteDB {
	return &SQLiteDB{Config: config}
}

func (db *SQLiteDB) Driver() string {
	return DriverSQLite
}

// dsn always turns foreign keys on, cascades depend on it
func (db *SQLiteDB) dsn() string {
	params := []string{"_foreign_keys=on"}

	if db.Config.Path == MemoryPath || db.Config.Path == "" {
		return "file::memory:?" + strings.Join(params, "&")
	}

	busy := db.Config.BusyTimeout
	if busy <= 0 {
		busy = 5 * time.Second
	}
	params = append(params,
		fmt.Sprintf("_busy_timeout=%d", busy.Milliseconds()),
		"_journal_mode=WAL",
	)
	return "file:" + db.Config.Path + "?" + strings.Join(params, "&")
}

func (db *SQLiteDB) Connect(ctx context.Context) error {
	log.Info().Str("path", db.Config.Path).Msg("[DATABASE] Opening SQLite database...")

	conn, err := sqlx.Open("sqlite3", db.dsn())
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	db.DB = conn
	if err := db.Ping(ctx); err != nil {
		conn.Close()
		db.DB = nil
		return err
	}

	log.Info().Msg("[DATABASE] SQLite database ready")
	return nil
}

func (db *SQLiteDB) Ping(ctx context.Context) error {
	if db.DB == nil {
		return fmt.Errorf("sqlite database is not initialized")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.DB.PingContext(pingCtx); err != nil {
		return fmt.Errorf("sqlite ping failed: %w", err)
	}
	return nil
}

func (db *SQLiteDB) Close() error {
	if db.DB == nil {
		return nil
	}

	log.Info().Msg("[DATABASE] Closing SQLite database...")
	err := db.DB.Close()
	db.DB = nil
	return err
}

// ExecuteInTransaction mirrors PostgresDB.ExecuteInTransaction.
// fn must only use tx: the pool has one connection and tx holds it.
func (db *SQLiteDB) ExecuteInTransaction(ctx context.Context, fn func(*sqlx.Tx) error) error {
	if db.DB == nil {
		return fmt.Errorf("sqlite database is not initialized")
	}

	tx, err := db.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Error().Err(rbErr).Msg("[DATABASE] Transaction rollback error")
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("transaction commit failed: %w", err)
	}
	return nil
}
