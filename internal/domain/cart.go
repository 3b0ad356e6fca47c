package domain

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type LineItem struct {
	ID       string  `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (l LineItem) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart keeps lines in insertion order with at most one line per product.
// Count and Total are always derived from the lines.
type Cart struct {
	Lines []LineItem `json:"items"`

	now func() time.Time
}

func NewCart(lines []LineItem) *Cart {
	c := &Cart{}
	for _, l := range lines {
		if l.Quantity < 1 {
			continue
		}
		c.Lines = append(c.Lines, l)
	}
	return c
}

func (c *Cart) clock() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}

// WithClock overrides the time source used for new line ids.
func (c *Cart) WithClock(now func() time.Time) *Cart {
	c.now = now
	return c
}

func (c *Cart) Count() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func (c *Cart) Empty() bool { return len(c.Lines) == 0 }

// Add merges quantity into the line for p.ID, creating the line if needed.
func (c *Cart) Add(p Product, quantity int) LineItem {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Lines {
		if c.Lines[i].Product.ID == p.ID {
			c.Lines[i].Quantity += quantity
			return c.Lines[i]
		}
	}
	line := LineItem{
		ID:       strconv.Itoa(p.ID) + "-" + strconv.FormatInt(c.clock().UnixMilli(), 10),
		Product:  p,
		Quantity: quantity,
	}
	c.Lines = append(c.Lines, line)
	return line
}

// Remove deletes the line if present and reports whether it existed.
func (c *Cart) Remove(lineID string) bool {
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}
	return false
}

// SetQuantity replaces a line's quantity. Below 1 it removes the line.
// It never creates a line.
func (c *Cart) SetQuantity(lineID string, quantity int) bool {
	if quantity < 1 {
		return c.Remove(lineID)
	}
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			c.Lines[i].Quantity = quantity
			return true
		}
	}
	return false
}

func (c *Cart) Clear() { c.Lines = nil }

// Snapshot returns a copy that shares no slice storage with c.
func (c *Cart) Snapshot() CartSnapshot {
	lines := make([]LineItem, len(c.Lines))
	copy(lines, c.Lines)
	return CartSnapshot{Items: lines, Total: c.Total()}
}

// CartSnapshot is the cart as captured at checkout.
type CartSnapshot struct {
	Items []LineItem      `json:"items"`
	Total decimal.Decimal `json:"total"`
}
