package cache

import (
	"context"
	"errors"

	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/domain"
)

type CartCache interface {
	GetCart(ctx context.Context, ownerID string) (*domain.Cart, error)
	SetCart(ctx context.Context, ownerID string, cart *domain.Cart) error
	DeleteCart(ctx context.Context, ownerID string) error
}

type WishlistCache interface {
	GetWishlist(ctx context.Context, ownerID string) (*domain.Wishlist, error)
	SetWishlist(ctx context.Context, ownerID string, wishlist *domain.Wishlist) error
	DeleteWishlist(ctx context.Context, ownerID string) error
}

var ErrCacheMiss = errors.New("cache miss")
