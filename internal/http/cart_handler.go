package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/domain"
	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/pricing"
	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/repository"
	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/service"
	"github.com/go-chi/chi/v5"
)

// CartService is what the handlers need from the cart subsystem.
// Consumers define this interface, not the service implementation.
type CartService interface {
	GetCart(ctx context.Context, ownerID string) (*domain.Cart, error)
	AddItem(ctx context.Context, ownerID, productID string, quantity int) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, ownerID, productID string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, ownerID, productID string) (*domain.Cart, error)
	ClearCart(ctx context.Context, ownerID string) error
}

type CartHandler struct {
	service    CartService
	pricingCfg pricing.Config
}

func NewCartHandler(service CartService, pricingCfg pricing.Config) *CartHandler {
	return &CartHandler{
		service:    service,
		pricingCfg: pricingCfg,
	}
}

type cartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// cartPayload is the response body: the line items plus the totals derived
// from them on every read.
type cartPayload struct {
	Items []domain.LineItem `json:"items"`
	pricing.Totals
}

func (h *CartHandler) toPayload(cart *domain.Cart) cartPayload {
	items := cart.Items
	if items == nil {
		items = []domain.LineItem{}
	}
	return cartPayload{
		Items:  items,
		Totals: pricing.Compute(cart.Items, h.pricingCfg),
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.GetCart(r.Context(), ownerFromContext(r.Context()))
	if err != nil {
		h.respondCartError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.toPayload(cart))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "ProductId and quantity are required", nil)
		return
	}
	if req.ProductID == "" || req.Quantity < 1 {
		respondError(w, http.StatusBadRequest, "ProductId and quantity are required", nil)
		return
	}

	cart, err := h.service.AddItem(r.Context(), ownerFromContext(r.Context()), req.ProductID, req.Quantity)
	if err != nil {
		h.respondCartError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.toPayload(cart))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "ProductId and quantity are required", nil)
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "ProductId and quantity are required", nil)
		return
	}
	if req.Quantity < 0 {
		respondError(w, http.StatusBadRequest, "Quantity cannot be negative", nil)
		return
	}

	cart, err := h.service.UpdateQuantity(r.Context(), ownerFromContext(r.Context()), req.ProductID, req.Quantity)
	if err != nil {
		h.respondCartError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.toPayload(cart))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "ProductId is required", nil)
		return
	}

	cart, err := h.service.RemoveItem(r.Context(), ownerFromContext(r.Context()), productID)
	if err != nil {
		h.respondCartError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.toPayload(cart))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ownerID := ownerFromContext(r.Context())
	if err := h.service.ClearCart(r.Context(), ownerID); err != nil {
		h.respondCartError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.toPayload(&domain.Cart{OwnerID: ownerID}))
}

func (h *CartHandler) respondCartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, "ProductId and quantity are required", nil)
	case errors.Is(err, repository.ErrProductNotFound):
		respondError(w, http.StatusNotFound, "Product not found", nil)
	case errors.Is(err, service.ErrOutOfStock):
		respondError(w, http.StatusBadRequest, "Product is out of stock", nil)
	case errors.Is(err, service.ErrInsufficientStock):
		respondError(w, http.StatusBadRequest, "Insufficient stock", nil)
	case errors.Is(err, repository.ErrCartNotFound), errors.Is(err, repository.ErrItemNotFound):
		respondError(w, http.StatusNotFound, "Item not found in cart", nil)
	default:
		respondError(w, http.StatusInternalServerError, "Something went wrong", err)
	}
}
