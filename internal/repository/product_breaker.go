package repository

import (
	"context"
	"errors"

	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/domain"
	"github.com/sony/gobreaker/v2"
)

// breakerProductLookup guards catalog reads with a circuit breaker so a dead
// catalog store fails cart mutations fast instead of queueing them up.
type breakerProductLookup struct {
	next    ProductLookup
	breaker *gobreaker.CircuitBreaker[*domain.Product]
}

func NewBreakerProductLookup(next ProductLookup) ProductLookup {
	settings := gobreaker.Settings{
		Name: "product-lookup",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// A missing product is an answer, not a catalog failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrProductNotFound)
		},
	}

	return &breakerProductLookup{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker[*domain.Product](settings),
	}
}

func (b *breakerProductLookup) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	return b.breaker.Execute(func() (*domain.Product, error) {
		return b.next.GetProduct(ctx, productID)
	})
}
