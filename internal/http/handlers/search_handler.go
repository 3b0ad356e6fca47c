package handlers

import (
	"strings"

	applog "agroconnect/internal/log"
	"agroconnect/internal/repos"
	"agroconnect/internal/services"
	"agroconnect/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type SearchHandler struct {
	Catalog *services.CatalogService
}

// Search is the header search box: a keyword over names and descriptions.
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	rawQ := c.Query("q")
	if strings.TrimSpace(rawQ) == "" {
		return c.JSON(fiber.Map{"q": "", "products": []any{}, "count": 0})
	}
	q, ok := validate.Q(rawQ)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "q", "value": rawQ})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"q": "", "products": []any{}, "count": 0, "error": "Enter a valid keyword (letters/numbers only)",
		})
	}
	products := h.Catalog.Search(repos.ProductFilter{Q: q}, "")
	return c.JSON(fiber.Map{"q": q, "products": products, "count": len(products)})
}
