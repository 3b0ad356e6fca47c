package repos

import (
	"context"
	"encoding/json"
	"log"

	"agroconnect/internal/domain"
)

// CartRepo persists the cart snapshot kept for signed-out profiles.
type CartRepo struct{ locks *keyedMutex }

func NewCartRepo() *CartRepo { return &CartRepo{locks: newKeyedMutex()} }

// Load returns the saved lines. A snapshot that does not parse is dropped.
func (r *CartRepo) Load(ctx context.Context, kv KV) ([]domain.LineItem, error) {
	raw, ok, err := kv.Load(ctx, KeyCart)
	if err != nil || !ok {
		return nil, err
	}
	var lines []domain.LineItem
	if err := json.Unmarshal(raw, &lines); err != nil {
		log.Printf("[cart] dropping unreadable snapshot for profile %s: %v", kv.Profile(), err)
		return nil, kv.Clear(ctx, KeyCart)
	}
	return lines, nil
}

func (r *CartRepo) Save(ctx context.Context, kv KV, lines []domain.LineItem) error {
	if lines == nil {
		lines = []domain.LineItem{}
	}
	b, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return kv.Save(ctx, KeyCart, b)
}

func (r *CartRepo) Clear(ctx context.Context, kv KV) error {
	return kv.Clear(ctx, KeyCart)
}

// Mutate runs fn against the saved cart and writes the result back while
// holding the profile lock.
func (r *CartRepo) Mutate(ctx context.Context, kv KV, fn func(*domain.Cart)) (*domain.Cart, error) {
	unlock := r.locks.Lock(kv.Profile())
	defer unlock()

	lines, err := r.Load(ctx, kv)
	if err != nil {
		return nil, err
	}
	cart := domain.NewCart(lines)
	fn(cart)
	if err := r.Save(ctx, kv, cart.Lines); err != nil {
		return nil, err
	}
	return cart, nil
}
