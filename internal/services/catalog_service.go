package services

import (
	"sort"
	"strings"

	"agroconnect/internal/domain"
	"agroconnect/internal/repos"
)

const featuredLimit = 8

type CatalogService struct {
	Cats    *repos.CategoryRepo
	Prods   *repos.ProductRepo
	Regions *repos.RegionRepo
}

func NewCatalogService(cats *repos.CategoryRepo, prods *repos.ProductRepo, regions *repos.RegionRepo) *CatalogService {
	return &CatalogService{Cats: cats, Prods: prods, Regions: regions}
}

func (s *CatalogService) ListCategories() []domain.Category {
	return s.Cats.List()
}

// KnownCategory reports whether name is a category slug or name.
func (s *CatalogService) KnownCategory(name string) bool {
	_, ok := s.Cats.BySlug(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
	return ok
}

func (s *CatalogService) GetProduct(id int) (domain.Product, error) {
	return s.Prods.Get(id)
}

// Search filters the catalog and applies sortBy. Unknown or empty sort keys
// keep catalog order.
func (s *CatalogService) Search(f repos.ProductFilter, sortBy string) []domain.Product {
	out := s.Prods.Search(f)
	if less := sortFunc(sortBy, out); less != nil {
		sort.SliceStable(out, less)
	}
	return out
}

func sortFunc(sortBy string, p []domain.Product) func(i, j int) bool {
	switch sortBy {
	case "name":
		return func(i, j int) bool { return strings.ToLower(p[i].Name) < strings.ToLower(p[j].Name) }
	case "name-desc":
		return func(i, j int) bool { return strings.ToLower(p[i].Name) > strings.ToLower(p[j].Name) }
	case "price-low":
		return func(i, j int) bool { return p[i].Price.LessThan(p[j].Price) }
	case "price-high":
		return func(i, j int) bool { return p[i].Price.GreaterThan(p[j].Price) }
	case "category":
		return func(i, j int) bool { return strings.ToLower(p[i].Category) < strings.ToLower(p[j].Category) }
	case "organic":
		return func(i, j int) bool { return p[i].Organic && !p[j].Organic }
	case "discount":
		return func(i, j int) bool { return p[i].Discount && !p[j].Discount }
	}
	return nil
}

type Featured struct {
	Tab      string           `json:"tab"`
	Tabs     []string         `json:"tabs"`
	Products []domain.Product `json:"products"`
}

// Featured returns up to eight products for a tab: "all" or a lower-case
// category name. Tabs are "all" plus the first three categories in catalog
// order.
func (s *CatalogService) Featured(tab string) Featured {
	tab = strings.ToLower(strings.TrimSpace(tab))
	if tab == "" {
		tab = "all"
	}
	all := s.Prods.All()
	tabs := []string{"all"}
	seen := map[string]bool{}
	for _, p := range all {
		c := strings.ToLower(p.Category)
		if !seen[c] {
			seen[c] = true
			tabs = append(tabs, c)
		}
	}
	if len(tabs) > 4 {
		tabs = tabs[:4]
	}

	picked := all
	if tab != "all" {
		picked = s.Prods.Search(repos.ProductFilter{Category: tab})
	}
	if len(picked) > featuredLimit {
		picked = picked[:featuredLimit]
	}
	return Featured{Tab: tab, Tabs: tabs, Products: picked}
}

func (s *CatalogService) States() []domain.State { return s.Regions.States() }

func (s *CatalogService) KnownState(state string) bool { return s.Regions.KnownState(state) }

func (s *CatalogService) Cities(state string) []string { return s.Regions.Cities(state) }
