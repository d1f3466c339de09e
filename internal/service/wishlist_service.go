package service

import (
	"context"
	"errors"
	"time"

	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/cache"
	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/domain"
	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

type WishlistService struct {
	repo     repository.WishlistRepository
	products repository.ProductLookup
	cache    cache.WishlistCache
	logger   zerolog.Logger
	sfg      singleflight.Group
	locks    keyedMutex
}

func NewWishlistService(repo repository.WishlistRepository, products repository.ProductLookup, cache cache.WishlistCache, logger zerolog.Logger) *WishlistService {
	return &WishlistService{
		repo:     repo,
		products: products,
		cache:    cache,
		logger:   logger.With().Str("component", "wishlist-service").Logger(),
	}
}

// GetWishlist follows the same empty-is-valid convention as the cart.
func (s *WishlistService) GetWishlist(ctx context.Context, ownerID string) (*domain.Wishlist, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	v, err, _ := s.sfg.Do(ownerID, func() (interface{}, error) {
		wishlist, err := s.cache.GetWishlist(ctx, ownerID)
		if err == nil {
			return wishlist, nil
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn().Err(err).Str("owner_id", ownerID).Msg("cache get failed, falling through to store")
		}

		wishlist, errGet := s.repo.GetWishlist(ctx, ownerID)
		if errors.Is(errGet, repository.ErrWishlistNotFound) {
			return emptyWishlist(ownerID), nil
		}
		if errGet != nil {
			return nil, errGet
		}

		go func() {
			if errSet := s.cache.SetWishlist(context.Background(), ownerID, wishlist); errSet != nil {
				s.logger.Warn().Err(errSet).Str("owner_id", ownerID).Msg("cache set failed")
			}
		}()

		return wishlist, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*domain.Wishlist), nil
}

// AddItem rejects duplicates outright; unlike the cart there is no quantity to
// merge into.
func (s *WishlistService) AddItem(ctx context.Context, ownerID, productID string) (*domain.Wishlist, error) {
	if productID == "" {
		return nil, ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(ownerID)
	defer unlock()

	wishlist, err := s.repo.GetWishlist(ctx, ownerID)
	if errors.Is(err, repository.ErrWishlistNotFound) {
		wishlist = emptyWishlist(ownerID)
	} else if err != nil {
		return nil, err
	}

	if wishlist.Contains(productID) {
		return nil, ErrDuplicateItem
	}

	item := domain.WishlistItem{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Image:     product.Image,
		AddedAt:   time.Now(),
	}
	if err := s.repo.AddItem(ctx, ownerID, item); err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("add wishlist item failed")
		return nil, err
	}

	s.invalidateCache(ownerID)
	return s.repo.GetWishlist(ctx, ownerID)
}

func (s *WishlistService) RemoveItem(ctx context.Context, ownerID, productID string) (*domain.Wishlist, error) {
	if productID == "" {
		return nil, ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	unlock := s.locks.lock(ownerID)
	defer unlock()

	wishlist, err := s.repo.GetWishlist(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if !wishlist.Contains(productID) {
		return nil, repository.ErrItemNotFound
	}

	if err := s.repo.RemoveItem(ctx, ownerID, productID); err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("remove wishlist item failed")
		return nil, err
	}

	s.invalidateCache(ownerID)
	return s.repo.GetWishlist(ctx, ownerID)
}

// ClearWishlist is idempotent, mirroring ClearCart.
func (s *WishlistService) ClearWishlist(ctx context.Context, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := s.repo.DeleteWishlist(ctx, ownerID); err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("delete wishlist failed")
		return err
	}

	s.invalidateCache(ownerID)
	return nil
}

func (s *WishlistService) invalidateCache(ownerID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.DeleteWishlist(ctx, ownerID); err != nil {
		s.logger.Warn().Err(err).Str("owner_id", ownerID).Msg("cache invalidate failed")
	}
}

func emptyWishlist(ownerID string) *domain.Wishlist {
	now := time.Now()
	return &domain.Wishlist{
		OwnerID:   ownerID,
		Items:     nil,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
