package consumer

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clearerMock struct {
	cleared []string
	err     error
}

func (m *clearerMock) ClearCart(_ context.Context, ownerID string) error {
	if m.err != nil {
		return m.err
	}
	m.cleared = append(m.cleared, ownerID)
	return nil
}

func newTestConsumer(clearer CartClearer) *OrderPlacedConsumer {
	return &OrderPlacedConsumer{
		carts:  clearer,
		logger: zerolog.Nop(),
	}
}

func TestProcessMessage_ClearsCart(t *testing.T) {
	clearer := &clearerMock{}
	c := newTestConsumer(clearer)

	err := c.processMessage(context.Background(), []byte(`{"owner_id":"u1","order_id":"ord-42"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, clearer.cleared)
}

func TestProcessMessage_InvalidJSON(t *testing.T) {
	clearer := &clearerMock{}
	c := newTestConsumer(clearer)

	err := c.processMessage(context.Background(), []byte(`{broken`))
	assert.Error(t, err)
	assert.Empty(t, clearer.cleared)
}

func TestProcessMessage_MissingOwner(t *testing.T) {
	clearer := &clearerMock{}
	c := newTestConsumer(clearer)

	err := c.processMessage(context.Background(), []byte(`{"order_id":"ord-42"}`))
	assert.Error(t, err)
	assert.Empty(t, clearer.cleared)
}

func TestProcessMessage_ClearFails(t *testing.T) {
	clearer := &clearerMock{err: errors.New("mongo down")}
	c := newTestConsumer(clearer)

	err := c.processMessage(context.Background(), []byte(`{"owner_id":"u1"}`))
	assert.Error(t, err)
}
