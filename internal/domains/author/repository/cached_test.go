package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biblioteca-api/internal/domains/author/model"
)

// memoryCache stores JSON like the redis implementation does
type memoryCache struct {
	items   map[string][]byte
	gets    int
	hits    int
	failGet bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	m.gets++
	if m.failGet {
		return false, errors.New("connection refused")
	}
	raw, ok := m.items[key]
	if !ok {
		return false, nil
	}
	m.hits++
	return true, json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.items[key] = raw
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.items, k)
	}
	return nil
}

func (m *memoryCache) Ping(context.Context) error { return nil }

func TestCachedRepositoryReadThrough(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCache()
	repo := NewCachedRepository(NewSQLiteRepository(setupStore(t)), c, time.Minute)

	created, err := repo.Create(ctx, newAuthor("Lygia"))
	require.NoError(t, err)

	first, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, c.hits)
	assert.Contains(t, c.items, cacheKey(created.ID))

	second, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, c.hits)
	assert.Equal(t, first.Name, second.Name)
	assert.True(t, first.BirthDate.Equal(second.BirthDate))
}

func TestCachedRepositoryEvictsOnWrite(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCache()
	repo := NewCachedRepository(NewSQLiteRepository(setupStore(t)), c, time.Minute)

	created, err := repo.Create(ctx, newAuthor("Hilda"))
	require.NoError(t, err)
	_, err = repo.GetByID(ctx, created.ID)
	require.NoError(t, err)

	_, err = repo.Update(ctx, created.ID, func(a *model.Author) error {
		a.LastName = "Hilst"
		return nil
	})
	require.NoError(t, err)
	assert.Empty(t, c.items)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hilst", got.LastName)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.Empty(t, c.items)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestCachedRepositoryIgnoresCacheFailures(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCache()
	c.failGet = true
	repo := NewCachedRepository(NewSQLiteRepository(setupStore(t)), c, 0)

	created, err := repo.Create(ctx, newAuthor("Adélia"))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Adélia", got.Name)
}
