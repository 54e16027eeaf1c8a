package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"biblioteca-api/internal/domains/author/model"
	"biblioteca-api/pkg/cache"
)

const (
	authorCacheKeyPrefix = "author:"
	DefaultCacheTTL      = 15 * time.Minute
)

// cachedRepository puts a read-through cache in front of GetByID.
// Writes go to the wrapped repository first, then evict.
// Cache failures are logged and never fail the call.
type cachedRepository struct {
	next  RepositoryInterface
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedRepository(next RepositoryInterface, c cache.Cache, ttl time.Duration) RepositoryInterface {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &cachedRepository{next: next, cache: c, ttl: ttl}
}

func cacheKey(id int64) string {
	return authorCacheKeyPrefix + strconv.FormatInt(id, 10)
}

func (r *cachedRepository) List(ctx context.Context) ([]model.Author, error) {
	return r.next.List(ctx)
}

func (r *cachedRepository) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	key := cacheKey(id)

	var a model.Author
	found, err := r.cache.Get(ctx, key, &a)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache get failed")
	}
	if err == nil && found {
		return &a, nil
	}

	fetched, err := r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, fetched, r.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
	return fetched, nil
}

// Exists always asks the store, it guards foreign keys
func (r *cachedRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.next.Exists(ctx, id)
}

func (r *cachedRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	return r.next.Create(ctx, a)
}

func (r *cachedRepository) Update(ctx context.Context, id int64, fn UpdateFunc) (*model.Author, error) {
	updated, err := r.next.Update(ctx, id, fn)
	if err != nil {
		return nil, err
	}
	r.evict(ctx, id)
	return updated, nil
}

func (r *cachedRepository) Delete(ctx context.Context, id int64) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.evict(ctx, id)
	return nil
}

func (r *cachedRepository) evict(ctx context.Context, id int64) {
	if err := r.cache.Delete(ctx, cacheKey(id)); err != nil {
		log.Warn().Err(err).Int64("author_id", id).Msg("cache eviction failed")
	}
}
