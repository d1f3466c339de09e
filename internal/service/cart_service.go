package service

import (
	"context"
	"errors"
	"time"

	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/cache"
	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/domain"
	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/pricing"
	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

const opTimeout = 5 * time.Second

type CartService struct {
	repo     repository.CartRepository
	products repository.ProductLookup
	cache    cache.CartCache
	logger   zerolog.Logger
	sfg      singleflight.Group // Prevents cache stampede
	locks    keyedMutex
}

func NewCartService(repo repository.CartRepository, products repository.ProductLookup, cache cache.CartCache, logger zerolog.Logger) *CartService {
	return &CartService{
		repo:     repo,
		products: products,
		cache:    cache,
		logger:   logger.With().Str("component", "cart-service").Logger(),
	}
}

// GetCart returns the owner's cart, or an empty cart when none is persisted.
// Absence of a cart document is a valid state, never an error.
func (s *CartService) GetCart(ctx context.Context, ownerID string) (*domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// Use singleflight so concurrent cache misses for one owner hit Mongo once
	v, err, _ := s.sfg.Do(ownerID, func() (interface{}, error) {
		cart, err := s.cache.GetCart(ctx, ownerID)
		if err == nil {
			return cart, nil
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn().Err(err).Str("owner_id", ownerID).Msg("cache get failed, falling through to store")
		}

		cart, errGet := s.repo.GetCart(ctx, ownerID)
		if errors.Is(errGet, repository.ErrCartNotFound) {
			return emptyCart(ownerID), nil
		}
		if errGet != nil {
			return nil, errGet
		}

		go func() {
			if errSet := s.cache.SetCart(context.Background(), ownerID, cart); errSet != nil {
				s.logger.Warn().Err(errSet).Str("owner_id", ownerID).Msg("cache set failed")
			}
		}()

		return cart, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*domain.Cart), nil
}

// AddItem validates the product against live stock, then merges into an
// existing line item or appends a new one carrying a fresh price snapshot.
func (s *CartService) AddItem(ctx context.Context, ownerID, productID string, quantity int) (*domain.Cart, error) {
	if productID == "" || quantity < 1 {
		return nil, ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Stock == 0 {
		return nil, ErrOutOfStock
	}
	if quantity > product.Stock {
		return nil, ErrInsufficientStock
	}

	unlock := s.locks.lock(ownerID)
	defer unlock()

	cart, err := s.repo.GetCart(ctx, ownerID)
	if errors.Is(err, repository.ErrCartNotFound) {
		cart = emptyCart(ownerID)
	} else if err != nil {
		return nil, err
	}

	if idx := cart.FindItem(productID); idx >= 0 {
		item := cart.Items[idx]
		if item.Quantity+quantity > product.Stock {
			return nil, ErrInsufficientStock
		}
		// Merge keeps the original snapshot; the total moves by snapshot
		// price, not live price.
		delta := item.UnitPrice * int64(quantity)
		if err := s.repo.IncrementItemQuantity(ctx, ownerID, productID, quantity, delta); err != nil {
			s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("increment item quantity failed")
			return nil, err
		}
	} else {
		item := domain.LineItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Image:     product.Image,
			Quantity:  quantity,
			AddedAt:   time.Now(),
		}
		if err := s.repo.InsertItem(ctx, ownerID, item, item.UnitPrice*int64(quantity)); err != nil {
			s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("insert item failed")
			return nil, err
		}
	}

	s.invalidateCache(ownerID)
	return s.repo.GetCart(ctx, ownerID)
}

// UpdateQuantity sets an absolute quantity; zero removes the item. Raising the
// quantity is re-validated against live stock.
func (s *CartService) UpdateQuantity(ctx context.Context, ownerID, productID string, quantity int) (*domain.Cart, error) {
	if productID == "" || quantity < 0 {
		return nil, ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	unlock := s.locks.lock(ownerID)
	defer unlock()

	cart, err := s.repo.GetCart(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	idx := cart.FindItem(productID)
	if idx < 0 {
		return nil, repository.ErrItemNotFound
	}
	item := cart.Items[idx]

	if quantity == 0 {
		return s.removeLocked(ctx, cart, productID)
	}

	if quantity > item.Quantity {
		product, err := s.products.GetProduct(ctx, productID)
		if err != nil {
			return nil, err
		}
		if quantity > product.Stock {
			return nil, ErrInsufficientStock
		}
	}

	cart.Items[idx].Quantity = quantity
	if err := s.repo.SetItemQuantity(ctx, ownerID, productID, quantity, pricing.Subtotal(cart.Items)); err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("set item quantity failed")
		return nil, err
	}

	s.invalidateCache(ownerID)
	return s.repo.GetCart(ctx, ownerID)
}

// RemoveItem deletes one line item; the order of the remaining items holds.
func (s *CartService) RemoveItem(ctx context.Context, ownerID, productID string) (*domain.Cart, error) {
	if productID == "" {
		return nil, ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	unlock := s.locks.lock(ownerID)
	defer unlock()

	cart, err := s.repo.GetCart(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if cart.FindItem(productID) < 0 {
		return nil, repository.ErrItemNotFound
	}

	return s.removeLocked(ctx, cart, productID)
}

// removeLocked performs the removal; the owner lock must already be held.
func (s *CartService) removeLocked(ctx context.Context, cart *domain.Cart, productID string) (*domain.Cart, error) {
	remaining := make([]domain.LineItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.ProductID != productID {
			remaining = append(remaining, item)
		}
	}

	if err := s.repo.RemoveItem(ctx, cart.OwnerID, productID, pricing.Subtotal(remaining)); err != nil {
		s.logger.Error().Err(err).Str("owner_id", cart.OwnerID).Msg("remove item failed")
		return nil, err
	}

	s.invalidateCache(cart.OwnerID)
	return s.repo.GetCart(ctx, cart.OwnerID)
}

// ClearCart is idempotent; clearing an absent cart succeeds.
func (s *CartService) ClearCart(ctx context.Context, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := s.repo.DeleteCart(ctx, ownerID); err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("delete cart failed")
		return err
	}

	s.invalidateCache(ownerID)
	return nil
}

func (s *CartService) invalidateCache(ownerID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.DeleteCart(ctx, ownerID); err != nil {
		s.logger.Warn().Err(err).Str("owner_id", ownerID).Msg("cache invalidate failed")
	}
}

func emptyCart(ownerID string) *domain.Cart {
	now := time.Now()
	return &domain.Cart{
		OwnerID:   ownerID,
		Items:     nil,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
