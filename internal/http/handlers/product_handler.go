package handlers

import (
	"strconv"
	"strings"

	"agroconnect/internal/domain"
	applog "agroconnect/internal/log"
	"agroconnect/internal/repos"
	"agroconnect/internal/services"
	"agroconnect/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// badgeFlags maps boolean query flags to the badge they select.
var badgeFlags = []struct{ param, badge string }{
	{"premium", domain.BadgePremium},
	{"local", domain.BadgeLocal},
	{"newProducts", domain.BadgeNew},
	{"superfood", domain.BadgeSuperfood},
	{"heartHealthy", domain.BadgeHeartHealthy},
	{"proteinRich", domain.BadgeProteinRich},
}

func queryBool(c *fiber.Ctx, key string) bool {
	b, _ := strconv.ParseBool(c.Query(key))
	return b
}

func queryPrice(c *fiber.Ctx, key string) (*decimal.Decimal, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, true
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return nil, false
	}
	return &d, true
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	f := repos.ProductFilter{
		Category: strings.TrimSpace(c.Query("category")),
		Organic:  queryBool(c, "organic"),
		OnSale:   queryBool(c, "onSale"),
	}
	if raw := c.Query("q"); strings.TrimSpace(raw) != "" {
		q, ok := validate.Q(raw)
		if !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "q", "value": raw})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Enter a valid keyword (letters/numbers only)"})
		}
		f.Q = q
	}
	if f.Category != "" && !strings.EqualFold(f.Category, "all") {
		if !h.Catalog.KnownCategory(f.Category) {
			applog.Security(c, "validation.fail", map[string]any{"field": "category"})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category"})
		}
	} else {
		f.Category = ""
	}
	for _, b := range badgeFlags {
		if queryBool(c, b.param) {
			f.Badges = append(f.Badges, b.badge)
		}
	}
	var ok bool
	if f.MinPrice, ok = queryPrice(c, "minPrice"); !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "minPrice"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid price range"})
	}
	if f.MaxPrice, ok = queryPrice(c, "maxPrice"); !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "maxPrice"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid price range"})
	}

	sortBy := ""
	if raw := c.Query("sort"); raw != "" {
		if sortBy, ok = validate.Sort(raw); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "sort"})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid sort"})
		}
	}

	products := h.Catalog.Search(f, sortBy)
	return c.JSON(fiber.Map{"products": products, "count": len(products)})
}

func (h *ProductHandler) Featured(c *fiber.Ctx) error {
	return c.JSON(h.Catalog.Featured(c.Query("tab")))
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ProductID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "This item is no longer available"})
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "This item is no longer available"})
	}
	return c.JSON(p)
}
