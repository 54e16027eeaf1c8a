package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"biblioteca-api/internal/config"
	infraCache "biblioteca-api/internal/infrastructure/cache"
	"biblioteca-api/internal/infrastructure/database"
	"biblioteca-api/pkg/cache"

	authorHandler "biblioteca-api/internal/domains/author/handler"
	authorRepo "biblioteca-api/internal/domains/author/repository"
	authorService "biblioteca-api/internal/domains/author/service"
	bookHandler "biblioteca-api/internal/domains/book/handler"
	bookRepo "biblioteca-api/internal/domains/book/repository"
	bookService "biblioteca-api/internal/domains/book/service"
)

// Container holds the application's dependency graph.
// Everything in it is a singleton built once at start-up.
type Container struct {
	// Infrastructure
	Config *config.Config
	Store  database.Store
	Cache  cache.Cache
	redis  *infraCache.RedisCache

	// Repositories
	AuthorRepo authorRepo.RepositoryInterface
	BookRepo   bookRepo.RepositoryInterface

	// Services
	AuthorService authorService.ServiceInterface
	BookService   bookService.ServiceInterface

	// Handlers
	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
}

// NewContainer loads configuration from the environment and builds the graph
func NewContainer(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log.Info().Str("environment", cfg.App.Environment).Msg("Config loaded")

	return Build(ctx, cfg)
}

// Build initializes, in order: store, cache, repositories, services, handlers.
// A failing store aborts; a failing cache only degrades to no caching.
func Build(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	if err := c.initStore(ctx); err != nil {
		return nil, err
	}

	c.initCache(ctx)

	if err := c.initRepositories(); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to init repositories: %w", err)
	}
	c.initServices()
	c.initHandlers()

	log.Info().Str("driver", c.Store.Driver()).Msg("DI container initialized")
	return c, nil
}

func (c *Container) initStore(ctx context.Context) error {
	dbCfg := c.Config.Database

	switch dbCfg.Driver {
	case database.DriverPostgres:
		db := database.NewPostgresDB(dbCfg.PostgresConfig())
		if err := db.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		c.Store = db
	case database.DriverSQLite:
		db := database.NewSQLiteDB(dbCfg.SQLiteConfig())
		if err := db.Connect(ctx); err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		c.Store = db
	default:
		return fmt.Errorf("unsupported database driver %q", dbCfg.Driver)
	}

	if dbCfg.AutoMigrate {
		if err := c.Store.EnsureSchema(ctx); err != nil {
			_ = c.Store.Close()
			return fmt.Errorf("failed to prepare schema: %w", err)
		}
	}
	return nil
}

func (c *Container) initCache(ctx context.Context) {
	c.Cache = cache.NewNoop()

	if !c.Config.Redis.Enabled {
		log.Info().Msg("Redis disabled, author lookups are not cached")
		return
	}

	rc := infraCache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := rc.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("Redis connection failed (non-critical), continuing without cache")
		_ = rc.Close()
		return
	}

	c.redis = rc
	c.Cache = rc
}

func (c *Container) initRepositories() error {
	switch db := c.Store.(type) {
	case *database.PostgresDB:
		c.AuthorRepo = authorRepo.NewPostgresRepository(db)
		c.BookRepo = bookRepo.NewPostgresRepository(db)
	case *database.SQLiteDB:
		c.AuthorRepo = authorRepo.NewSQLiteRepository(db)
		c.BookRepo = bookRepo.NewSQLiteRepository(db)
	default:
		return fmt.Errorf("no repositories for store %T", c.Store)
	}

	c.AuthorRepo = authorRepo.NewCachedRepository(c.AuthorRepo, c.Cache, c.cacheTTL())
	return nil
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	// books resolve authors through the same repository, cache bypassed for Exists
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
}

func (c *Container) cacheTTL() time.Duration {
	if c.Config.Redis.TTL > 0 {
		return c.Config.Redis.TTL
	}
	return authorRepo.DefaultCacheTTL
}

// Cleanup releases the store and cache connections; safe to call twice
func (c *Container) Cleanup() {
	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close database")
		} else {
			log.Info().Msg("Database connections closed")
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		} else {
			log.Info().Msg("Redis connections closed")
		}
		c.redis = nil
	}
}
