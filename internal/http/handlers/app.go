package handlers

import (
	"net/http"
	"strings"
	"time"

	"agroconnect/internal/config"
	"agroconnect/internal/domain"
	applog "agroconnect/internal/log"
	"agroconnect/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
)

func isAPI(c *fiber.Ctx) bool {
	p := c.Path()
	return strings.HasPrefix(p, "/api/") || strings.HasPrefix(p, "/functions/")
}

// errorHandler logs the failure and answers without internals.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := msgGenericError
	if fe, ok := err.(*fiber.Error); ok && fe.Code < 500 {
		code, msg = fe.Code, fe.Message
	} else {
		applog.Error(c, "server.error", err, nil)
	}
	if isAPI(c) {
		return c.Status(code).JSON(fiber.Map{"error": msg})
	}
	if rerr := c.Status(code).Render("notfound", fiber.Map{"Message": msg}, "layout"); rerr != nil {
		return c.Status(code).SendString(msg)
	}
	return nil
}

// NewApp builds the HTTP server: middleware, pages and the JSON API.
func NewApp(cfg config.Config, deps *Deps) *fiber.App {
	engine := html.NewFileSystem(http.FS(web.Templates()), ".html")

	app := fiber.New(fiber.Config{
		Views:        engine,
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: errorHandler,
		// request strings outlive the handler as store keys and cart owners
		Immutable: true,
	})

	// ---------- Middlewares ----------
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/healthz"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.global.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}))
	// The assistant proxies are called cross-origin by the storefront.
	app.Use("/functions", cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "authorization, x-client-info, apikey, content-type",
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "header:X-Csrf-Token",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   cfg.SecureCookies,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/functions/")
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", map[string]any{"err": err.Error()})
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(Identify(deps.Store, deps.Auth, deps.SecureCookies))

	// ---------- Pages ----------
	app.Get("/farmer-dashboard", RequireRole(domain.RoleFarmer, true), deps.DashboardHandler.Page)
	app.Get("/orders/:id/receipt", deps.OrderHandler.Receipt)

	// ---------- API ----------
	api := app.Group("/api/v1")

	authG := api.Group("/auth")
	authG.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Too many attempts. Please try again later."})
		},
	}), deps.AuthHandler.Login)
	authG.Post("/logout", deps.AuthHandler.Logout)
	authG.Get("/me", deps.AuthHandler.Me)
	authG.Post("/role", deps.AuthHandler.SetRole)

	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/featured", deps.ProductHandler.Featured)
	api.Get("/products/:id", deps.ProductHandler.Detail)
	api.Get("/categories", deps.CategoryHandler.List)
	api.Get("/regions/states", deps.RegionHandler.States)
	api.Get("/regions/states/:state/cities", deps.RegionHandler.Cities)
	api.Get("/search", limiter.New(limiter.Config{
		Max:        20,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|search"
		},
	}), deps.SearchHandler.Search)

	cart := api.Group("/cart")
	cart.Get("/", deps.CartHandler.View)
	cart.Delete("/", deps.CartHandler.Clear)
	cart.Post("/items", deps.CartHandler.Add)
	cart.Patch("/items/:lineId", deps.CartHandler.Update)
	cart.Delete("/items/:lineId", deps.CartHandler.Remove)

	api.Post("/orders", deps.OrderHandler.Place)
	api.Get("/orders", deps.OrderHandler.History)
	api.Get("/orders/:id", RequireUser(), deps.OrderHandler.Get)

	api.Get("/favorites", deps.FavoritesHandler.List)
	api.Post("/favorites", deps.FavoritesHandler.Save)
	api.Delete("/favorites/:productId", deps.FavoritesHandler.Unsave)

	api.Get("/farmer/dashboard", RequireRole(domain.RoleFarmer, false), deps.DashboardHandler.JSON)

	fn := app.Group("/functions/v1")
	fn.Post("/chatbot", deps.AssistantHandler.Chat)
	fn.Post("/analyze-image", deps.AssistantHandler.Analyze)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		if isAPI(c) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
		}
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Page not found"}, "layout")
	})

	return app
}
