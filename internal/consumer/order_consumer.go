// Package consumer empties a buyer's cart once their order is placed. The
// order subsystem publishes the event; this is the cart lifecycle's
// "destroyed on successful checkout" hook.
package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

type CartClearer interface {
	ClearCart(ctx context.Context, ownerID string) error
}

type OrderPlacedConsumer struct {
	carts  CartClearer
	reader *kafka.Reader
	logger zerolog.Logger
}

func NewOrderPlacedConsumer(carts CartClearer, logger zerolog.Logger, topic, groupID string, brokers ...string) *OrderPlacedConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MaxBytes: 10e6, // 10MB
	})
	return &OrderPlacedConsumer{
		carts:  carts,
		reader: reader,
		logger: logger.With().Str("component", "order-consumer").Logger(),
	}
}

func (c *OrderPlacedConsumer) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			c.logger.Error().Err(err).Msg("failed to read message")
			continue
		}

		if err := c.processMessage(ctx, m.Value); err != nil {
			c.logger.Error().Err(err).Msg("failed to process order event")
		}
	}
}

func (c *OrderPlacedConsumer) Close() error {
	return c.reader.Close()
}

type orderPlacedEvent struct {
	OwnerID string `json:"owner_id"`
	OrderID string `json:"order_id"`
}

func (c *OrderPlacedConsumer) processMessage(ctx context.Context, value []byte) error {
	var event orderPlacedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return fmt.Errorf("failed to parse order event: %w", err)
	}
	if event.OwnerID == "" {
		return errors.New("order event missing owner_id")
	}

	if err := c.carts.ClearCart(ctx, event.OwnerID); err != nil {
		return fmt.Errorf("failed to clear cart for order %s: %w", event.OrderID, err)
	}

	c.logger.Info().Str("owner_id", event.OwnerID).Str("order_id", event.OrderID).Msg("cart cleared after order")
	return nil
}
