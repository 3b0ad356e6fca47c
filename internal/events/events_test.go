package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroconnect/internal/domain"
)

func TestNewOrderPlaced(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	o := domain.Order{
		ID: "order_1_abc", UserID: "u1", CreatedAt: at,
		Items:           []domain.OrderLine{{ProductID: 1, Quantity: 2, Price: decimal.NewFromInt(90), ProductName: "Organic Tomatoes"}},
		Total:           decimal.NewFromInt(180),
		ShippingAddress: domain.ShippingAddress{State: "Maharashtra", Pincode: "411001"},
	}
	ev := NewOrderPlaced(o)
	assert.Equal(t, TypeOrderPlaced, ev.Type)
	assert.Equal(t, "411001", ev.Pincode)
	require.Len(t, ev.Items, 1)

	b, err := json.Marshal(ev)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, float64(180), m["total"])
	assert.Equal(t, "order_1_abc", m["orderId"])
}

func TestNew_NoBrokersIsNoop(t *testing.T) {
	p := New(nil, "orders")
	_, ok := p.(Noop)
	assert.True(t, ok)
	assert.NoError(t, p.Publish(context.Background(), "k", struct{}{}))
	assert.NoError(t, p.Close())
}

func TestNew_WithBrokers(t *testing.T) {
	p := New([]string{"localhost:9092"}, "orders")
	kp, ok := p.(*KafkaPublisher)
	require.True(t, ok)
	assert.Equal(t, "orders", kp.writer.Topic)
	assert.NoError(t, kp.Close())
}
