package repos

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"agroconnect/internal/domain"
)

// OrderRepo keeps the profile's order log: one JSON array under userOrders
// holding the orders of every identity that signed in on that profile.
type OrderRepo struct{ locks *keyedMutex }

func NewOrderRepo() *OrderRepo { return &OrderRepo{locks: newKeyedMutex()} }

func (r *OrderRepo) all(ctx context.Context, kv KV) ([]domain.Order, error) {
	raw, ok, err := kv.Load(ctx, KeyUserOrders)
	if err != nil {
		return nil, err
	}
	if !ok || len(raw) == 0 {
		return nil, nil
	}
	var orders []domain.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, fmt.Errorf("decode order log: %w", err)
	}
	return orders, nil
}

// Append adds o to the log. The whole array is written in one Save, so a
// failed write leaves the previous log in place.
func (r *OrderRepo) Append(ctx context.Context, kv KV, o domain.Order) error {
	unlock := r.locks.Lock(kv.Profile())
	defer unlock()

	orders, err := r.all(ctx, kv)
	if err != nil {
		return err
	}
	for _, existing := range orders {
		if existing.ID == o.ID {
			return fmt.Errorf("order id %s already in log", o.ID)
		}
	}
	orders = append(orders, o)
	b, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return kv.Save(ctx, KeyUserOrders, b)
}

// Count returns the number of records in the log.
func (r *OrderRepo) Count(ctx context.Context, kv KV) (int, error) {
	orders, err := r.all(ctx, kv)
	return len(orders), err
}

// ListByUser returns the user's orders, newest first.
func (r *OrderRepo) ListByUser(ctx context.Context, kv KV, userID string) ([]domain.Order, error) {
	orders, err := r.all(ctx, kv)
	if err != nil {
		return nil, err
	}
	out := []domain.Order{}
	for _, o := range orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *OrderRepo) Get(ctx context.Context, kv KV, userID, orderID string) (domain.Order, error) {
	orders, err := r.all(ctx, kv)
	if err != nil {
		return domain.Order{}, err
	}
	for _, o := range orders {
		if o.ID == orderID && o.UserID == userID {
			return o, nil
		}
	}
	return domain.Order{}, domain.ErrNotFound
}
