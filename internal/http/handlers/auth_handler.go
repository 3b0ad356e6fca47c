package handlers

import (
	"agroconnect/internal/domain"
	applog "agroconnect/internal/log"
	"agroconnect/internal/services"
	"agroconnect/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) badLogin(c *fiber.Ctx, email, reason string) error {
	applog.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": reason})
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		return h.badLogin(c, req.Email, "bad_format")
	}
	if !validate.Password(req.Password) {
		return h.badLogin(c, email, "bad_password_format")
	}

	id, err := h.Auth.Login(c.UserContext(), sessionOf(c).KV, email, req.Password)
	if err != nil {
		return apiError(c, "auth.login", err, "")
	}
	c.Locals(applog.LocalIdentity, id)
	applog.Audit(c, "auth.login.success", map[string]any{"email": email, "role": id.Role})
	return c.JSON(fiber.Map{"user": id, "redirect": services.RedirectFor(id.Role)})
}

// Logout signs the profile out. The sid cookie is kept so the order log of
// the profile stays reachable.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	s := sessionOf(c)
	if err := h.Auth.Logout(c.UserContext(), s.KV); err != nil {
		return apiError(c, "auth.logout", err, "")
	}
	applog.Audit(c, "auth.logout", map[string]any{"profile": s.ProfileID})
	return c.JSON(fiber.Map{"ok": true})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	s := sessionOf(c)
	if !s.SignedIn() {
		return c.JSON(fiber.Map{"user": nil})
	}
	return c.JSON(fiber.Map{"user": s.Identity})
}

type roleRequest struct {
	Role string `json:"role"`
}

func (h *AuthHandler) SetRole(c *fiber.Ctx) error {
	var req roleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	role, ok := validate.Role(req.Role)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "role"})
		return apiError(c, "auth.role", domain.ErrInvalidRole, "")
	}
	s := sessionOf(c)
	if err := h.Auth.SetRole(c.UserContext(), s, role); err != nil {
		return apiError(c, "auth.role", err, "")
	}
	applog.Audit(c, "auth.role.set", map[string]any{"role": role})
	return c.JSON(fiber.Map{"user": s.Identity, "redirect": services.RedirectFor(role)})
}
