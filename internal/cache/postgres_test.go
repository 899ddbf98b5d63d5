package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haikubot/internal/models"
	"haikubot/internal/testutil"
)

func TestPostgresStore(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	store := NewPostgres(database)
	ctx := context.Background()

	got, err := store.Get(ctx, "pond")
	require.NoError(t, err)
	assert.Nil(t, got)

	testutil.CreateTestEntry(t, database, "pond", 1, false)
	testutil.CreateTestEntry(t, database, "zyzzyva", 1, true)

	got, err = store.Get(ctx, "pond")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.CacheEntry{Word: "pond", Syllables: 1}, *got)

	n, err := store.CountNeedingReview(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	assert.NoError(t, store.Ping(ctx))
}
