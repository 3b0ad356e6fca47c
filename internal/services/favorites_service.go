package services

import (
	"context"

	"agroconnect/internal/domain"
	"agroconnect/internal/repos"
)

type FavoritesService struct {
	Repo  *repos.FavoritesRepo
	Prods *repos.ProductRepo
}

func NewFavoritesService(r *repos.FavoritesRepo, prods *repos.ProductRepo) *FavoritesService {
	return &FavoritesService{Repo: r, Prods: prods}
}

func (s *FavoritesService) Save(ctx context.Context, sess Session, productID int) error {
	p, err := s.Prods.Get(productID)
	if err != nil {
		return err
	}
	return s.Repo.Add(ctx, sess.KV, p)
}

func (s *FavoritesService) Unsave(ctx context.Context, sess Session, productID int) error {
	return s.Repo.Remove(ctx, sess.KV, productID)
}

func (s *FavoritesService) List(ctx context.Context, sess Session) ([]domain.Product, error) {
	return s.Repo.List(ctx, sess.KV)
}
