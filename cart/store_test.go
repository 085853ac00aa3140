package cart

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewStore(rdb)
}

func product(id string, stock int) models.Product {
	return models.Product{ID: id, Name: "Product " + id, Price: 1000000, Stock: stock}
}

func TestGetMissingCartIsEmpty(t *testing.T) {
	store := newTestStore(t)

	items, err := store.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAddMergesAndCapsAtStock(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	items, err := store.Add(ctx, 1, product("PH_001", 5), 4)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)

	// 4 + 3 would exceed stock 5, so the line caps at 5
	items, err = store.Add(ctx, 1, product("PH_001", 5), 3)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddZeroStockRejected(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Add(context.Background(), 1, product("PH_001", 0), 1)
	assert.ErrorIs(t, err, ErrOutOfStock)

	items, err := store.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	store := newTestStore(t)

	items, err := store.Add(context.Background(), 1, product("PH_001", 5), 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestUpdateQuantityClampsBothWays(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Add(ctx, 1, product("PH_001", 5), 2)
	require.NoError(t, err)

	// Above stock clamps down
	items, err := store.UpdateQuantity(ctx, 1, "PH_001", 99)
	require.NoError(t, err)
	assert.Equal(t, 5, items[0].Quantity)

	// Below one clamps up
	items, err = store.UpdateQuantity(ctx, 1, "PH_001", -3)
	require.NoError(t, err)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Add(ctx, 1, product("PH_001", 5), 2)
	require.NoError(t, err)

	items, err := store.UpdateQuantity(ctx, 1, "NOPE", 3)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestRemove(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Add(ctx, 1, product("PH_001", 5), 1)
	require.NoError(t, err)
	_, err = store.Add(ctx, 1, product("TV_001", 3), 1)
	require.NoError(t, err)

	items, err := store.Remove(ctx, 1, "PH_001")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "TV_001", items[0].Product.ID)
}

func TestCartSurvivesReload(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Add(ctx, 7, product("PH_001", 5), 2)
	require.NoError(t, err)

	// A fresh read (new session, same buyer) sees the same cart
	items, err := store.Get(ctx, 7)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	// Carts are per buyer
	other, err := store.Get(ctx, 8)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestClear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Add(ctx, 1, product("PH_001", 5), 2)
	require.NoError(t, err)

	require.NoError(t, store.Clear(ctx, 1))

	items, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, items)
}
