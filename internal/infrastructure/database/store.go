package database

import "context"

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Store is the lifecycle surface shared by both backends.
// Repositories receive the concrete type for their driver.
type Store interface {
	Driver() string
	Ping(ctx context.Context) error
	EnsureSchema(ctx context.Context) error
	Close() error
}
