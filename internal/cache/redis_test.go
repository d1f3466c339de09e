package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/domain"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis server and returns a RedisCache instance
func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis, func()) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	cache := NewRedisCache(client)

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return cache, mr, cleanup
}

func TestGetCart_Success(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	ownerID := "user123"

	cart := &domain.Cart{
		OwnerID: ownerID,
		Items: []domain.LineItem{
			{ProductID: "prod-1", UnitPrice: 7999, Quantity: 2},
			{ProductID: "prod-2", UnitPrice: 500, Quantity: 3},
		},
		TotalAmount: 17498,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	cartJSON, _ := json.Marshal(cart)
	mr.Set(cartKey(ownerID), string(cartJSON))

	result, err := cache.GetCart(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, ownerID, result.OwnerID)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, "prod-1", result.Items[0].ProductID)
	assert.Equal(t, int64(17498), result.TotalAmount)
}

func TestGetCart_CacheMiss(t *testing.T) {
	cache, _, cleanup := setupTestRedis(t)
	defer cleanup()

	result, err := cache.GetCart(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Nil(t, result)
}

func TestGetCart_InvalidJSON(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	mr.Set(cartKey("user123"), "{not json")

	result, err := cache.GetCart(context.Background(), "user123")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
	assert.Nil(t, result)
}

func TestSetCart_RoundTrip(t *testing.T) {
	cache, _, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	cart := &domain.Cart{
		OwnerID: "user123",
		Items: []domain.LineItem{
			{ProductID: "prod-1", Name: "Banarasi Silk", UnitPrice: 7999, Quantity: 1},
		},
		TotalAmount: 7999,
	}

	require.NoError(t, cache.SetCart(ctx, "user123", cart))

	got, err := cache.GetCart(ctx, "user123")
	require.NoError(t, err)
	assert.Equal(t, cart.Items, got.Items)
}

func TestDeleteCart(t *testing.T) {
	cache, _, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, cache.SetCart(ctx, "user123", &domain.Cart{OwnerID: "user123"}))
	require.NoError(t, cache.DeleteCart(ctx, "user123"))

	_, err := cache.GetCart(ctx, "user123")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestWishlist_RoundTrip(t *testing.T) {
	cache, _, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	wishlist := &domain.Wishlist{
		OwnerID: "user456",
		Items: []domain.WishlistItem{
			{ProductID: "prod-9", Name: "Kanjivaram", UnitPrice: 12999},
		},
	}

	require.NoError(t, cache.SetWishlist(ctx, "user456", wishlist))

	got, err := cache.GetWishlist(ctx, "user456")
	require.NoError(t, err)
	assert.Equal(t, wishlist.Items, got.Items)

	require.NoError(t, cache.DeleteWishlist(ctx, "user456"))
	_, err = cache.GetWishlist(ctx, "user456")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCacheKeys_DoNotCollide(t *testing.T) {
	cache, _, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, cache.SetCart(ctx, "u1", &domain.Cart{OwnerID: "u1"}))
	require.NoError(t, cache.SetWishlist(ctx, "u1", &domain.Wishlist{OwnerID: "u1"}))

	require.NoError(t, cache.DeleteCart(ctx, "u1"))

	// The wishlist entry for the same owner survives a cart invalidation.
	_, err := cache.GetWishlist(ctx, "u1")
	assert.NoError(t, err)
}
