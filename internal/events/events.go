package events

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"agroconnect/internal/domain"
)

const TypeOrderPlaced = "order.placed"

// Publisher hands domain events to a message bus.
type Publisher interface {
	Publish(ctx context.Context, key string, event any) error
	Close() error
}

type OrderPlacedLine struct {
	ProductID int             `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// OrderPlaced is published once an order is in the profile's log.
type OrderPlaced struct {
	Type       string            `json:"type"`
	OrderID    string            `json:"orderId"`
	UserID     string            `json:"userId"`
	Total      decimal.Decimal   `json:"total"`
	Items      []OrderPlacedLine `json:"items"`
	State      string            `json:"state"`
	Pincode    string            `json:"pincode"`
	OccurredAt time.Time         `json:"occurredAt"`
}

func NewOrderPlaced(o domain.Order) OrderPlaced {
	lines := make([]OrderPlacedLine, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, OrderPlacedLine{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price})
	}
	return OrderPlaced{
		Type:       TypeOrderPlaced,
		OrderID:    o.ID,
		UserID:     o.UserID,
		Total:      o.Total,
		Items:      lines,
		State:      o.ShippingAddress.State,
		Pincode:    o.ShippingAddress.Pincode,
		OccurredAt: o.CreatedAt,
	}
}

// Noop drops every event. Used when no brokers are configured.
type Noop struct{}

func (Noop) Publish(context.Context, string, any) error { return nil }
func (Noop) Close() error                               { return nil }
