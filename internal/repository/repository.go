package repository

import (
	"context"
	"errors"

	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/domain"
)

var (
	ErrCartNotFound     = errors.New("cart not found")
	ErrWishlistNotFound = errors.New("wishlist not found")
	ErrItemNotFound     = errors.New("item not found")
	ErrProductNotFound  = errors.New("product not found")
)

// CartRepository defines the interface for cart data operations.
// Consumers define this interface, not the MongoDB implementation.
type CartRepository interface {
	GetCart(ctx context.Context, ownerID string) (*domain.Cart, error)

	// InsertItem appends a new line item, creating the cart document if the
	// owner has none. totalDelta is added to the materialized total_amount.
	InsertItem(ctx context.Context, ownerID string, item domain.LineItem, totalDelta int64) error

	// IncrementItemQuantity atomically bumps an existing item's quantity and
	// the cart total in one update, so concurrent merges cannot lose a write.
	IncrementItemQuantity(ctx context.Context, ownerID, productID string, delta int, totalDelta int64) error

	// SetItemQuantity sets an absolute quantity and rewrites total_amount.
	SetItemQuantity(ctx context.Context, ownerID, productID string, quantity int, totalAmount int64) error

	// RemoveItem pulls the item and rewrites total_amount.
	RemoveItem(ctx context.Context, ownerID, productID string, totalAmount int64) error

	DeleteCart(ctx context.Context, ownerID string) error
}

// WishlistRepository mirrors CartRepository without quantities.
type WishlistRepository interface {
	GetWishlist(ctx context.Context, ownerID string) (*domain.Wishlist, error)
	AddItem(ctx context.Context, ownerID string, item domain.WishlistItem) error
	RemoveItem(ctx context.Context, ownerID, productID string) error
	DeleteWishlist(ctx context.Context, ownerID string) error
}

// ProductLookup is the read-only catalog view this subsystem depends on.
type ProductLookup interface {
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
}
