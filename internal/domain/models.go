package domain

import "github.com/shopspring/decimal"

func init() {
	// Prices travel as JSON numbers, the shape the storefront already reads.
	decimal.MarshalJSONWithoutQuotes = true
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Badge values used by the catalog filters.
const (
	BadgePremium      = "Premium"
	BadgeLocal        = "Local"
	BadgeNew          = "New"
	BadgeSuperfood    = "Superfood"
	BadgeHeartHealthy = "Heart Healthy"
	BadgeProteinRich  = "Protein-Rich"
)

type Product struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Category    string           `json:"category"`
	Price       decimal.Decimal  `json:"price"`
	Unit        string           `json:"unit"`
	Image       string           `json:"image,omitempty"`
	Discount    bool             `json:"discount,omitempty"`
	OldPrice    *decimal.Decimal `json:"oldPrice,omitempty"`
	Badge       string           `json:"badge,omitempty"`
	Organic     bool             `json:"organic,omitempty"`
	Description string           `json:"description"`
}

// Valid reports whether p satisfies the catalog invariants.
func (p Product) Valid() bool {
	if !p.Price.IsPositive() {
		return false
	}
	if p.Discount && (p.OldPrice == nil || !p.OldPrice.GreaterThan(p.Price)) {
		return false
	}
	return true
}

type State struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
