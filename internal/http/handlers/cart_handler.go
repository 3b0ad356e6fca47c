package handlers

import (
	applog "agroconnect/internal/log"
	"agroconnect/internal/services"
	"agroconnect/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Cart *services.CartService
}

type addItemRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	cv, err := h.Cart.View(c.UserContext(), sessionOf(c))
	if err != nil {
		return apiError(c, "cart.view", err, "Could not load your cart")
	}
	return c.JSON(cv)
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.ProductID < 1 {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	qty := validate.ClampQty(req.Quantity)

	cv, line, err := h.Cart.Add(c.UserContext(), sessionOf(c), req.ProductID, qty)
	if err != nil {
		return apiError(c, "cart.add", err, "Could not update your cart")
	}
	applog.Audit(c, "cart.add", map[string]any{"product_id": req.ProductID, "qty": qty})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"cart": cv, "item": line})
}

// Update sets the quantity of a line. Zero or less removes it.
func (h *CartHandler) Update(c *fiber.Ctx) error {
	lineID, ok := validate.ID(c.Params("lineId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "lineId"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid item"})
	}
	var req quantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	cv, err := h.Cart.SetQuantity(c.UserContext(), sessionOf(c), lineID, req.Quantity)
	if err != nil {
		return apiError(c, "cart.update", err, "Could not update your cart")
	}
	applog.Audit(c, "cart.update", map[string]any{"line_id": lineID, "qty": req.Quantity})
	return c.JSON(cv)
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	lineID, ok := validate.ID(c.Params("lineId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "lineId"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid item"})
	}
	cv, err := h.Cart.Remove(c.UserContext(), sessionOf(c), lineID)
	if err != nil {
		return apiError(c, "cart.remove", err, "Could not update your cart")
	}
	applog.Audit(c, "cart.remove", map[string]any{"line_id": lineID})
	return c.JSON(cv)
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	cv, err := h.Cart.Clear(c.UserContext(), sessionOf(c))
	if err != nil {
		return apiError(c, "cart.clear", err, "Could not update your cart")
	}
	applog.Audit(c, "cart.clear", nil)
	return c.JSON(cv)
}
