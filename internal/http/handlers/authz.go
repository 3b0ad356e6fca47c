package handlers

import (
	"agroconnect/internal/domain"
	applog "agroconnect/internal/log"
	"agroconnect/internal/repos"
	"agroconnect/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

const (
	sidCookie    = "sid"
	localSession = "session"
)

func ensureSID(c *fiber.Ctx, secure bool) string {
	sid := utils.CopyString(c.Cookies(sidCookie))
	if _, err := uuid.Parse(sid); err != nil {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     sidCookie,
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   secure,
			MaxAge:   365 * 24 * 60 * 60,
		})
	}
	return sid
}

// Identify binds the request to a browser profile and resolves the caller.
// A store failure while resolving leaves the caller signed out.
func Identify(store repos.Store, authSvc *services.AuthService, secure bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := ensureSID(c, secure)
		c.Locals(applog.LocalProfile, sid)
		kv := repos.Scope(store, sid)

		id, err := authSvc.Resolve(c.UserContext(), kv, c.Get(fiber.HeaderAuthorization))
		if err != nil {
			applog.Error(c, "auth.resolve.fail", err, nil)
			id = nil
		}
		if id != nil {
			c.Locals(applog.LocalIdentity, id)
		}
		c.Locals(localSession, services.Session{ProfileID: sid, KV: kv, Identity: id})
		return c.Next()
	}
}

func sessionOf(c *fiber.Ctx) services.Session {
	s, _ := c.Locals(localSession).(services.Session)
	return s
}

// RequireUser enforces that a user is signed in.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !sessionOf(c).SignedIn() {
			applog.Security(c, "access.denied.anonymous", nil)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msgSignIn})
		}
		return c.Next()
	}
}

// RequireRole enforces a signed-in caller with the given role. Pages get a
// redirect, API routes a JSON error.
func RequireRole(role domain.Role, page bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := sessionOf(c)
		if !s.SignedIn() {
			if page {
				return c.Redirect("/")
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msgSignIn})
		}
		if s.Identity.Role != role {
			applog.Security(c, "access.denied.role", map[string]any{"want": role, "have": s.Identity.Role})
			if page {
				return c.Redirect("/")
			}
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
		}
		return c.Next()
	}
}
