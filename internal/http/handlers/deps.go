package handlers

import (
	"agroconnect/internal/auth"
	"agroconnect/internal/config"
	"agroconnect/internal/events"
	"agroconnect/internal/openrouter"
	"agroconnect/internal/repos"
	"agroconnect/internal/services"
)

type Deps struct {
	Store         repos.Store
	Auth          *services.AuthService
	SecureCookies bool

	AuthHandler      *AuthHandler
	CartHandler      *CartHandler
	OrderHandler     *OrderHandler
	ProductHandler   *ProductHandler
	CategoryHandler  *CategoryHandler
	SearchHandler    *SearchHandler
	RegionHandler    *RegionHandler
	FavoritesHandler *FavoritesHandler
	DashboardHandler *DashboardHandler
	AssistantHandler *AssistantHandler
}

func NewDeps(cfg config.Config, store repos.Store, pub events.Publisher) (*Deps, error) {
	userRepo := repos.NewUserRepo()
	catRepo := repos.NewCategoryRepo()
	prodRepo := repos.NewProductRepo()
	regionRepo := repos.NewRegionRepo()
	cartRepo := repos.NewCartRepo()
	orderRepo := repos.NewOrderRepo()
	favRepo := repos.NewFavoritesRepo()
	dashRepo := repos.NewDashboardRepo()

	authSvc, err := services.NewAuthService(userRepo, auth.NewVerifier(cfg.JWTSecret), cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	catalogSvc := services.NewCatalogService(catRepo, prodRepo, regionRepo)
	cartSvc := services.NewCartService(cartRepo, prodRepo)
	orderSvc := services.NewOrderService(orderRepo, pub)
	favSvc := services.NewFavoritesService(favRepo, prodRepo)
	dashSvc := services.NewDashboardService(dashRepo, authSvc)
	assistantSvc := services.NewAssistantService(
		openrouter.NewClient(cfg.OpenRouterURL, cfg.OpenRouterKey, cfg.SiteURL, cfg.ProxyTimeout),
		cfg.ChatModel, cfg.VisionModel,
	)
	authSvc.OnSignOut = cartSvc.Forget

	return &Deps{
		Store:         store,
		Auth:          authSvc,
		SecureCookies: cfg.SecureCookies,

		AuthHandler:      &AuthHandler{Auth: authSvc},
		CartHandler:      &CartHandler{Cart: cartSvc},
		OrderHandler:     &OrderHandler{Cart: cartSvc, Order: orderSvc},
		ProductHandler:   &ProductHandler{Catalog: catalogSvc},
		CategoryHandler:  &CategoryHandler{Catalog: catalogSvc},
		SearchHandler:    &SearchHandler{Catalog: catalogSvc},
		RegionHandler:    &RegionHandler{Catalog: catalogSvc},
		FavoritesHandler: &FavoritesHandler{Fav: favSvc},
		DashboardHandler: &DashboardHandler{Dash: dashSvc},
		AssistantHandler: &AssistantHandler{Assistant: assistantSvc},
	}, nil
}
