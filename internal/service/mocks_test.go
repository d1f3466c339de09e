package service

import (
	"context"
	"sync"

	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/cache"
	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/domain"
	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/repository"
)

type mockCartRepo struct {
	m     sync.RWMutex
	carts map[string]*domain.Cart
	err   error
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{carts: make(map[string]*domain.Cart)}
}

func copyCart(c *domain.Cart) *domain.Cart {
	cp := *c
	cp.Items = append([]domain.LineItem(nil), c.Items...)
	return &cp
}

func (m *mockCartRepo) GetCart(_ context.Context, ownerID string) (*domain.Cart, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	cart, ok := m.carts[ownerID]
	if !ok {
		return nil, repository.ErrCartNotFound
	}
	return copyCart(cart), nil
}

func (m *mockCartRepo) InsertItem(_ context.Context, ownerID string, item domain.LineItem, totalDelta int64) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	cart, ok := m.carts[ownerID]
	if !ok {
		cart = &domain.Cart{OwnerID: ownerID}
		m.carts[ownerID] = cart
	}
	cart.Items = append(cart.Items, item)
	cart.TotalAmount += totalDelta
	return nil
}

func (m *mockCartRepo) IncrementItemQuantity(_ context.Context, ownerID, productID string, delta int, totalDelta int64) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	cart, ok := m.carts[ownerID]
	if !ok {
		return repository.ErrItemNotFound
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity += delta
			cart.TotalAmount += totalDelta
			return nil
		}
	}
	return repository.ErrItemNotFound
}

func (m *mockCartRepo) SetItemQuantity(_ context.Context, ownerID, productID string, quantity int, totalAmount int64) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	cart, ok := m.carts[ownerID]
	if !ok {
		return repository.ErrItemNotFound
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			cart.TotalAmount = totalAmount
			return nil
		}
	}
	return repository.ErrItemNotFound
}

func (m *mockCartRepo) RemoveItem(_ context.Context, ownerID, productID string, totalAmount int64) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	cart, ok := m.carts[ownerID]
	if !ok {
		return repository.ErrCartNotFound
	}
	for i, item := range cart.Items {
		if item.ProductID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			cart.TotalAmount = totalAmount
			return nil
		}
	}
	return repository.ErrCartNotFound
}

func (m *mockCartRepo) DeleteCart(_ context.Context, ownerID string) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	delete(m.carts, ownerID)
	return nil
}

type mockWishlistRepo struct {
	m         sync.RWMutex
	wishlists map[string]*domain.Wishlist
	err       error
}

func newMockWishlistRepo() *mockWishlistRepo {
	return &mockWishlistRepo{wishlists: make(map[string]*domain.Wishlist)}
}

func (m *mockWishlistRepo) GetWishlist(_ context.Context, ownerID string) (*domain.Wishlist, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	wl, ok := m.wishlists[ownerID]
	if !ok {
		return nil, repository.ErrWishlistNotFound
	}
	cp := *wl
	cp.Items = append([]domain.WishlistItem(nil), wl.Items...)
	return &cp, nil
}

func (m *mockWishlistRepo) AddItem(_ context.Context, ownerID string, item domain.WishlistItem) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	wl, ok := m.wishlists[ownerID]
	if !ok {
		wl = &domain.Wishlist{OwnerID: ownerID}
		m.wishlists[ownerID] = wl
	}
	wl.Items = append(wl.Items, item)
	return nil
}

func (m *mockWishlistRepo) RemoveItem(_ context.Context, ownerID, productID string) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	wl, ok := m.wishlists[ownerID]
	if !ok {
		return repository.ErrWishlistNotFound
	}
	for i, item := range wl.Items {
		if item.ProductID == productID {
			wl.Items = append(wl.Items[:i], wl.Items[i+1:]...)
			return nil
		}
	}
	return repository.ErrWishlistNotFound
}

func (m *mockWishlistRepo) DeleteWishlist(_ context.Context, ownerID string) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	delete(m.wishlists, ownerID)
	return nil
}

type mockProductLookup struct {
	m        sync.RWMutex
	products map[string]domain.Product
	err      error
}

func newMockProductLookup(products ...domain.Product) *mockProductLookup {
	m := &mockProductLookup{products: make(map[string]domain.Product)}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockProductLookup) GetProduct(_ context.Context, productID string) (*domain.Product, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.products[productID]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return &p, nil
}

func (m *mockProductLookup) setPrice(productID string, price int64) {
	m.m.Lock()
	defer m.m.Unlock()
	p := m.products[productID]
	p.Price = price
	m.products[productID] = p
}

type mockCartCache struct {
	m     sync.RWMutex
	carts map[string]*domain.Cart
	err   error
}

func newMockCartCache() *mockCartCache {
	return &mockCartCache{carts: make(map[string]*domain.Cart)}
}

func (m *mockCartCache) GetCart(_ context.Context, ownerID string) (*domain.Cart, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	cart, ok := m.carts[ownerID]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return cart, nil
}

func (m *mockCartCache) SetCart(_ context.Context, ownerID string, cart *domain.Cart) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.carts[ownerID] = cart
	return m.err
}

func (m *mockCartCache) DeleteCart(_ context.Context, ownerID string) error {
	m.m.Lock()
	defer m.m.Unlock()
	delete(m.carts, ownerID)
	return m.err
}

type mockWishlistCache struct {
	m         sync.RWMutex
	wishlists map[string]*domain.Wishlist
	err       error
}

func newMockWishlistCache() *mockWishlistCache {
	return &mockWishlistCache{wishlists: make(map[string]*domain.Wishlist)}
}

func (m *mockWishlistCache) GetWishlist(_ context.Context, ownerID string) (*domain.Wishlist, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	wl, ok := m.wishlists[ownerID]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return wl, nil
}

func (m *mockWishlistCache) SetWishlist(_ context.Context, ownerID string, wishlist *domain.Wishlist) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.wishlists[ownerID] = wishlist
	return m.err
}

func (m *mockWishlistCache) DeleteWishlist(_ context.Context, ownerID string) error {
	m.m.Lock()
	defer m.m.Unlock()
	delete(m.wishlists, ownerID)
	return m.err
}
