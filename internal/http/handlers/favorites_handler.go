package handlers

import (
	applog "agroconnect/internal/log"
	"agroconnect/internal/services"
	"agroconnect/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type FavoritesHandler struct {
	Fav *services.FavoritesService
}

type favoriteRequest struct {
	ProductID int `json:"productId"`
}

func (h *FavoritesHandler) List(c *fiber.Ctx) error {
	items, err := h.Fav.List(c.UserContext(), sessionOf(c))
	if err != nil {
		return apiError(c, "favorites.list", err, "Could not load favorites")
	}
	return c.JSON(fiber.Map{"items": items, "count": len(items)})
}

func (h *FavoritesHandler) Save(c *fiber.Ctx) error {
	var req favoriteRequest
	if err := c.BodyParser(&req); err != nil || req.ProductID < 1 {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	if err := h.Fav.Save(c.UserContext(), sessionOf(c), req.ProductID); err != nil {
		return apiError(c, "favorites.save", err, "Could not update favorites")
	}
	applog.Audit(c, "favorites.save", map[string]any{"product_id": req.ProductID})
	return h.List(c)
}

func (h *FavoritesHandler) Unsave(c *fiber.Ctx) error {
	id, ok := validate.ProductID(c.Params("productId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	if err := h.Fav.Unsave(c.UserContext(), sessionOf(c), id); err != nil {
		return apiError(c, "favorites.unsave", err, "Could not update favorites")
	}
	applog.Audit(c, "favorites.unsave", map[string]any{"product_id": id})
	return h.List(c)
}
