package menu

import (
	"context"
	"os"
	"testing"

	"tacoloco/internal/db"
	"tacoloco/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresRepository(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	pool, err := db.ConnectPostgres(ctx, dsn, logger.Discard())
	require.NoError(t, err)
	defer pool.Close()

	repo := NewPostgresRepository(pool)
	const name = "Integration Test Taco"
	t.Cleanup(func() { _ = repo.Delete(context.Background(), name) })

	require.NoError(t, repo.Upsert(ctx, Item{Name: name, UnitPrice: 1.25}))
	require.NoError(t, repo.Upsert(ctx, Item{Name: name, UnitPrice: 1.75}))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, items, Item{Name: name, UnitPrice: 1.75})

	require.NoError(t, repo.Delete(ctx, name))
	assert.ErrorIs(t, repo.Delete(ctx, name), ErrItemNotFound)

	seeded, err := repo.SeedIfEmpty(ctx, DefaultItems())
	require.NoError(t, err)
	if seeded {
		items, err = repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, items, len(DefaultItems()))
	}
}
