package handlers

import (
	"agroconnect/internal/services"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves the farmer dashboard. Routes are mounted behind
// RequireRole(farmer).
type DashboardHandler struct {
	Dash *services.DashboardService
}

func (h *DashboardHandler) JSON(c *fiber.Ctx) error {
	d, err := h.Dash.For(sessionOf(c).Identity)
	if err != nil {
		return apiError(c, "dashboard.load", err, "")
	}
	return c.JSON(d)
}

func (h *DashboardHandler) Page(c *fiber.Ctx) error {
	d, err := h.Dash.For(sessionOf(c).Identity)
	if err != nil {
		return c.Redirect("/")
	}
	return render(c, "farmer_dashboard", fiber.Map{"Dash": d})
}
