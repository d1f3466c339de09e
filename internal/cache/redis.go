package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/domain"
	"github.com/redis/go-redis/v9"
)

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client:  client,
		baseTTL: 15 * time.Minute,
	}
}

type RedisCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func (r *RedisCache) GetCart(ctx context.Context, ownerID string) (*domain.Cart, error) {
	var cart domain.Cart
	if err := r.get(ctx, cartKey(ownerID), &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *RedisCache) SetCart(ctx context.Context, ownerID string, cart *domain.Cart) error {
	return r.set(ctx, cartKey(ownerID), cart)
}

func (r *RedisCache) DeleteCart(ctx context.Context, ownerID string) error {
	return r.delete(ctx, cartKey(ownerID))
}

func (r *RedisCache) GetWishlist(ctx context.Context, ownerID string) (*domain.Wishlist, error) {
	var wishlist domain.Wishlist
	if err := r.get(ctx, wishlistKey(ownerID), &wishlist); err != nil {
		return nil, err
	}
	return &wishlist, nil
}

func (r *RedisCache) SetWishlist(ctx context.Context, ownerID string, wishlist *domain.Wishlist) error {
	return r.set(ctx, wishlistKey(ownerID), wishlist)
}

func (r *RedisCache) DeleteWishlist(ctx context.Context, ownerID string) error {
	return r.delete(ctx, wishlistKey(ownerID))
}

func (r *RedisCache) get(ctx context.Context, key string, dst any) error {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("redis get failed: %w", err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("unmarshal cached value failed: %w", err)
	}

	return nil
}

func (r *RedisCache) set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cached value failed: %w", err)
	}

	// Jitter the TTL so a burst of writes does not expire all at once.
	jitter := time.Duration(rand.Intn(5)) * time.Minute
	if err := r.client.Set(ctx, key, data, r.baseTTL+jitter).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisCache) delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func cartKey(ownerID string) string {
	return fmt.Sprintf("cart:%s", ownerID)
}

func wishlistKey(ownerID string) string {
	return fmt.Sprintf("wishlist:%s", ownerID)
}
