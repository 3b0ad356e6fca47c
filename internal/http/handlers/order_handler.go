package handlers

import (
	"errors"

	"agroconnect/internal/domain"
	applog "agroconnect/internal/log"
	"agroconnect/internal/services"
	"agroconnect/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	Cart  *services.CartService
	Order *services.OrderService
}

type checkoutRequest struct {
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
}

// Place turns the caller's cart into an order. The cart is only cleared once
// the order is stored.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	sess := sessionOf(c)
	if !sess.SignedIn() {
		return apiError(c, "order.place", domain.ErrUnauthenticated, msgOrderFailed)
	}
	snap, err := h.Cart.Snapshot(c.UserContext(), sess)
	if err != nil {
		return apiError(c, "order.place", err, msgOrderFailed)
	}

	o, err := h.Order.Place(c.UserContext(), sess, snap, req.ShippingAddress)
	if err != nil {
		return apiError(c, "order.place", err, msgOrderFailed)
	}
	if _, err := h.Cart.Clear(c.UserContext(), sess); err != nil {
		applog.Error(c, "order.cart.clear", err, map[string]any{"order_id": o.ID})
	}
	applog.Audit(c, "order.place", map[string]any{
		"order_id": o.ID,
		"total":    o.Total.String(),
		"items":    len(o.Items),
	})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"orderId": o.ID,
		"shortId": o.ShortID(),
		"order":   o,
	})
}

// History lists the caller's orders, newest first.
func (h *OrderHandler) History(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"orders": h.Order.History(c.UserContext(), sessionOf(c))})
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	oid, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}
	o, err := h.Order.Get(c.UserContext(), sessionOf(c), oid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			applog.Security(c, "access.denied.order", map[string]any{"order_id": oid})
		}
		return apiError(c, "order.get", err, "")
	}
	return c.JSON(o)
}

// Receipt renders a printable receipt for an order the caller owns.
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	notFound := func() error {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Order not found"}, "layout")
	}
	oid, ok := validate.ID(c.Params("id"))
	if !ok {
		return notFound()
	}
	sess := sessionOf(c)
	if !sess.SignedIn() {
		return c.Redirect("/")
	}
	o, err := h.Order.Get(c.UserContext(), sess, oid)
	if err != nil {
		applog.Security(c, "access.denied.order", map[string]any{"order_id": oid})
		return notFound()
	}
	return render(c, "order_receipt", fiber.Map{"Order": o, "ShortID": o.ShortID()})
}
