package repos

import (
	"strings"

	"github.com/shopspring/decimal"

	"agroconnect/internal/domain"
)

// ProductFilter narrows a catalog listing. Zero values mean "no constraint".
type ProductFilter struct {
	Category string
	Q        string
	Organic  bool
	OnSale   bool
	Badges   []string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// ProductRepo serves the static catalog. Products are reference data and
// never change while the process runs.
type ProductRepo struct {
	items []domain.Product
	byID  map[int]domain.Product
}

func NewProductRepo() *ProductRepo { return newProductRepo(seedProducts) }

func newProductRepo(items []domain.Product) *ProductRepo {
	r := &ProductRepo{byID: make(map[int]domain.Product, len(items))}
	for _, p := range items {
		if !p.Valid() {
			continue
		}
		r.items = append(r.items, p)
		r.byID[p.ID] = p
	}
	return r
}

func (r *ProductRepo) Get(id int) (domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, nil
}

// All returns the catalog in its seed order.
func (r *ProductRepo) All() []domain.Product {
	return append([]domain.Product(nil), r.items...)
}

// Search returns the products matching every constraint of f, in seed order.
func (r *ProductRepo) Search(f ProductFilter) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(f.Q))
	out := []domain.Product{}
	for _, p := range r.items {
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		if f.Organic && !p.Organic {
			continue
		}
		if f.OnSale && !p.Discount {
			continue
		}
		if !badgeMatch(p.Badge, f.Badges) {
			continue
		}
		if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// badgeMatch requires the product to carry every requested badge. A product
// has at most one, so two different requested badges match nothing.
func badgeMatch(badge string, want []string) bool {
	for _, b := range want {
		if badge != b {
			return false
		}
	}
	return true
}
