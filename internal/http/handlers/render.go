package handlers

import (
	"errors"

	"agroconnect/internal/domain"
	applog "agroconnect/internal/log"

	"github.com/gofiber/fiber/v2"
)

const (
	msgSignIn       = "You need to sign in to continue."
	msgOrderFailed  = "There was an error processing your order. Please try again."
	msgGenericError = "Something went wrong. Please try again."
)

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// Inject identity if present
	if id, ok := c.Locals(applog.LocalIdentity).(*domain.Identity); ok && id != nil {
		data["User"] = id
	}
	if tok := c.Cookies("csrf_"); tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data, "layout")
}

// apiError maps a service error onto a JSON response. fallback is the
// message for anything unexpected; details of such errors only reach the log.
func apiError(c *fiber.Ctx, action string, err error, fallback string) error {
	var ae *domain.AddressError
	switch {
	case errors.As(err, &ae):
		applog.Security(c, "validation.fail", map[string]any{"action": action, "fields": ae.Fields})
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "Please correct the highlighted fields.",
			"fields": ae.Fields,
		})
	case errors.Is(err, domain.ErrUnauthenticated):
		applog.Security(c, action+".unauthenticated", nil)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msgSignIn})
	case errors.Is(err, domain.ErrEmptyCart):
		applog.Security(c, action+".empty_cart", nil)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Your cart is empty."})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	case errors.Is(err, domain.ErrBadCredentials):
		applog.Security(c, action+".fail", nil)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	case errors.Is(err, domain.ErrInvalidRole):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	applog.Error(c, action+".fail", err, nil)
	if fallback == "" {
		fallback = msgGenericError
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fallback})
}
