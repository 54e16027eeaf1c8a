package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	pgx "github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

// Ping checks the pool is alive, bounded to 5s
func (db *PostgresDB) Ping(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close is safe to call more than once
func (db *PostgresDB) Close() error {
	if db.Pool == nil {
		return nil
	}

	log.Info().Msg("[DATABASE] Closing database connection pool...")
	db.Pool.Close()
	db.Pool = nil
	log.Info().Msg("[DATABASE] Connection pool closed successfully")

	return nil
}

// TxOptions maps onto pgx.TxOptions
type TxOptions struct {
	IsoLevel   TxIsoLevel
	AccessMode TxAccessMode
}

type TxIsoLevel string

const (
	ReadCommitted  TxIsoLevel = "read committed"
	RepeatableRead TxIsoLevel = "repeatable read"
	Serializable   TxIsoLevel = "serializable"
)

type TxAccessMode string

const (
	ReadWrite TxAccessMode = "read write"
	ReadOnly  TxAccessMode = "read only"
)

func (opts *TxOptions) toPgx() pgx.TxOptions {
	pgxOpts := pgx.TxOptions{
		IsoLevel:   pgx.ReadCommitted,
		AccessMode: pgx.ReadWrite,
	}
	if opts == nil {
		return pgxOpts
	}

	switch opts.IsoLevel {
	case RepeatableRead:
		pgxOpts.IsoLevel = pgx.RepeatableRead
	case Serializable:
		pgxOpts.IsoLevel = pgx.Serializable
	}

	if opts.AccessMode == ReadOnly {
		pgxOpts.AccessMode = pgx.ReadOnly
	}

	return pgxOpts
}

// BeginTx starts a transaction. The caller must commit or roll back.
func (db *PostgresDB) BeginTx(ctx context.Context, opts *TxOptions) (pgx.Tx, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	tx, err := db.Pool.BeginTx(ctx, opts.toPgx())
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// ExecuteInTransaction runs fn inside a transaction.
// Any error from fn (or a panic) rolls back; otherwise the transaction is committed.
// The error returned by fn is passed through unwrapped so callers can match sentinels.
func (db *PostgresDB) ExecuteInTransaction(ctx context.Context, opts *TxOptions, fn func(pgx.Tx) error) error {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			log.Error().Err(err).Msg("[DATABASE] Transaction rollback error")
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("transaction commit failed: %w", err)
	}
	return nil
}
