package handlers

import (
	"agroconnect/internal/services"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": h.Catalog.ListCategories()})
}

type RegionHandler struct {
	Catalog *services.CatalogService
}

func (h *RegionHandler) States(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"states": h.Catalog.States()})
}

// Cities lists the cities of a state. A state without a city list gets an
// empty one.
func (h *RegionHandler) Cities(c *fiber.Ctx) error {
	state := c.Params("state")
	if !h.Catalog.KnownState(state) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown state"})
	}
	return c.JSON(fiber.Map{"state": state, "cities": h.Catalog.Cities(state)})
}
