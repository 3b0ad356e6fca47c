package repos

import (
	"strings"

	"agroconnect/internal/domain"
)

type CategoryRepo struct{ items []domain.Category }

func NewCategoryRepo() *CategoryRepo { return &CategoryRepo{items: seedCategories} }

func (r *CategoryRepo) List() []domain.Category {
	return append([]domain.Category(nil), r.items...)
}

func (r *CategoryRepo) BySlug(slug string) (domain.Category, bool) {
	for _, c := range r.items {
		if strings.EqualFold(c.Slug, slug) {
			return c, true
		}
	}
	return domain.Category{}, false
}
