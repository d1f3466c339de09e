package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/domain"
	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/repository"
	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/service"
	"github.com/go-chi/chi/v5"
)

type WishlistService interface {
	GetWishlist(ctx context.Context, ownerID string) (*domain.Wishlist, error)
	AddItem(ctx context.Context, ownerID, productID string) (*domain.Wishlist, error)
	RemoveItem(ctx context.Context, ownerID, productID string) (*domain.Wishlist, error)
	ClearWishlist(ctx context.Context, ownerID string) error
}

type WishlistHandler struct {
	service WishlistService
}

func NewWishlistHandler(service WishlistService) *WishlistHandler {
	return &WishlistHandler{service: service}
}

type wishlistItemRequest struct {
	ProductID string `json:"productId"`
}

type wishlistPayload struct {
	Items      []domain.WishlistItem `json:"items"`
	TotalItems int                   `json:"total_items"`
}

func toWishlistPayload(wl *domain.Wishlist) wishlistPayload {
	items := wl.Items
	if items == nil {
		items = []domain.WishlistItem{}
	}
	return wishlistPayload{
		Items:      items,
		TotalItems: len(items),
	}
}

func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	wl, err := h.service.GetWishlist(r.Context(), ownerFromContext(r.Context()))
	if err != nil {
		respondWishlistError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toWishlistPayload(wl))
}

func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req wishlistItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "ProductId is required", nil)
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "ProductId is required", nil)
		return
	}

	wl, err := h.service.AddItem(r.Context(), ownerFromContext(r.Context()), req.ProductID)
	if err != nil {
		respondWishlistError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toWishlistPayload(wl))
}

func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "ProductId is required", nil)
		return
	}

	wl, err := h.service.RemoveItem(r.Context(), ownerFromContext(r.Context()), productID)
	if err != nil {
		respondWishlistError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toWishlistPayload(wl))
}

func (h *WishlistHandler) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearWishlist(r.Context(), ownerFromContext(r.Context())); err != nil {
		respondWishlistError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toWishlistPayload(&domain.Wishlist{}))
}

func respondWishlistError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, "ProductId is required", nil)
	case errors.Is(err, repository.ErrProductNotFound):
		respondError(w, http.StatusNotFound, "Product not found", nil)
	case errors.Is(err, service.ErrDuplicateItem):
		respondError(w, http.StatusBadRequest, "Item already in wishlist", nil)
	case errors.Is(err, repository.ErrWishlistNotFound), errors.Is(err, repository.ErrItemNotFound):
		respondError(w, http.StatusNotFound, "Item not found in wishlist", nil)
	default:
		respondError(w, http.StatusInternalServerError, "Something went wrong", err)
	}
}
