package repos

import (
	"context"
	"encoding/json"

	"agroconnect/internal/domain"
)

type FavoritesRepo struct{ locks *keyedMutex }

func NewFavoritesRepo() *FavoritesRepo { return &FavoritesRepo{locks: newKeyedMutex()} }

func (r *FavoritesRepo) load(ctx context.Context, kv KV) ([]domain.Product, error) {
	raw, ok, err := kv.Load(ctx, KeyFavorites)
	if err != nil || !ok {
		return nil, err
	}
	var out []domain.Product
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, kv.Clear(ctx, KeyFavorites)
	}
	return out, nil
}

func (r *FavoritesRepo) save(ctx context.Context, kv KV, items []domain.Product) error {
	if items == nil {
		items = []domain.Product{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return kv.Save(ctx, KeyFavorites, b)
}

// Add is idempotent per product id.
func (r *FavoritesRepo) Add(ctx context.Context, kv KV, p domain.Product) error {
	unlock := r.locks.Lock(kv.Profile())
	defer unlock()
	items, err := r.load(ctx, kv)
	if err != nil {
		return err
	}
	for _, it := range items {
		if it.ID == p.ID {
			return nil
		}
	}
	return r.save(ctx, kv, append(items, p))
}

func (r *FavoritesRepo) Remove(ctx context.Context, kv KV, productID int) error {
	unlock := r.locks.Lock(kv.Profile())
	defer unlock()
	items, err := r.load(ctx, kv)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, it := range items {
		if it.ID != productID {
			kept = append(kept, it)
		}
	}
	return r.save(ctx, kv, kept)
}

func (r *FavoritesRepo) List(ctx context.Context, kv KV) ([]domain.Product, error) {
	items, err := r.load(ctx, kv)
	if items == nil {
		items = []domain.Product{}
	}
	return items, err
}
