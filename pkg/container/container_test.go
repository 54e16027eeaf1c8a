package container

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biblioteca-api/internal/config"
	authorModel "biblioteca-api/internal/domains/author/model"
	"biblioteca-api/internal/infrastructure/database"
	"biblioteca-api/pkg/cache"
)

func memoryConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "test", Environment: "test", Port: "0"},
		Database: config.DatabaseConfig{
			Driver:      database.DriverSQLite,
			SQLitePath:  database.MemoryPath,
			AutoMigrate: true,
		},
		// nothing listens here; the container must fall back to no cache
		Redis: config.RedisConfig{Enabled: true, Host: "127.0.0.1:1", TTL: time.Minute},
	}
}

func TestBuildWithSQLite(t *testing.T) {
	ctx := context.Background()

	c, err := Build(ctx, memoryConfig())
	require.NoError(t, err)
	t.Cleanup(c.Cleanup)

	assert.Equal(t, database.DriverSQLite, c.Store.Driver())
	assert.IsType(t, cache.Noop{}, c.Cache)
	require.NotNil(t, c.AuthorHandler)
	require.NotNil(t, c.BookHandler)

	birth := time.Date(1902, 10, 31, 0, 0, 0, 0, time.UTC)
	name, last := "Carlos", "Drummond"
	created, err := c.AuthorService.Create(ctx, &authorModel.AuthorInput{Name: &name, LastName: &last, BirthDate: &birth})
	require.NoError(t, err)

	got, err := c.AuthorService.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Drummond", got.LastName)
}

func TestBuildRejectsUnknownDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.Database.Driver = "oracle"

	_, err := Build(context.Background(), cfg)
	assert.Error(t, err)
}

func TestCleanupTwice(t *testing.T) {
	cfg := memoryConfig()
	cfg.Redis.Enabled = false

	c, err := Build(context.Background(), cfg)
	require.NoError(t, err)

	c.Cleanup()
	c.Cleanup()
	assert.Error(t, c.Store.Ping(context.Background()))
}
