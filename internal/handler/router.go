package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"eiffel-bike-client/internal/domain/identity"
	"eiffel-bike-client/internal/handler/api"
	"eiffel-bike-client/internal/handler/middleware"
	"eiffel-bike-client/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	rentalHandler *api.RentalHandler,
	marketplaceHandler *api.MarketplaceHandler,
	offerHandler *api.OfferHandler,
	appHandler *api.AppHandler,
	gate *middleware.SessionGate,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, rentalHandler, marketplaceHandler, offerHandler, appHandler, gate)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	rentalHandler *api.RentalHandler,
	marketplaceHandler *api.MarketplaceHandler,
	offerHandler *api.OfferHandler,
	appHandler *api.AppHandler,
	gate *middleware.SessionGate,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(gate.RequireSession())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		// The dashboard and rental actions are for customers who can rent:
		// corporate accounts see them too since a corp can rent like anyone.
		rentals := apiGroup.Group("")
		rentals.Use(gate.RequireRoles(identity.RoleStudent, identity.RoleEmployee, identity.RoleEiffelBikeCorp))
		{
			addRoutes(rentals, []route{
				{Method: http.MethodGet, Path: "/dashboard", Handler: rentalHandler.Dashboard},
				{Method: http.MethodPost, Path: "/rentals", Handler: rentalHandler.Rent},
				{Method: http.MethodPost, Path: "/rentals/payment", Handler: rentalHandler.ConfirmPayment},
				{Method: http.MethodDelete, Path: "/rentals/payment", Handler: rentalHandler.CancelPayment},
				{Method: http.MethodPost, Path: "/rentals/:id/return", Handler: rentalHandler.Return},
				{Method: http.MethodGet, Path: "/waitlist", Handler: rentalHandler.Waitlist},
			})
		}

		// Marketplace browsing and buying is open to any logged-in customer.
		sales := apiGroup.Group("")
		sales.Use(gate.RequireSession())
		{
			addRoutes(sales, []route{
				{Method: http.MethodGet, Path: "/sales", Handler: marketplaceHandler.Offers},
				{Method: http.MethodGet, Path: "/basket", Handler: marketplaceHandler.Basket},
				{Method: http.MethodPost, Path: "/basket/items", Handler: marketplaceHandler.AddToBasket},
				{Method: http.MethodDelete, Path: "/basket/items/:saleOfferId", Handler: marketplaceHandler.RemoveFromBasket},
				{Method: http.MethodPost, Path: "/basket/checkout", Handler: marketplaceHandler.Checkout},
				{Method: http.MethodPost, Path: "/basket/payment", Handler: marketplaceHandler.PayPurchase},
				{Method: http.MethodGet, Path: "/basket/pending", Handler: marketplaceHandler.PendingPurchase},
			})
		}

		// Listing bikes for rent is a provider feature; selling on the
		// marketplace is restricted to the corporate account.
		offer := apiGroup.Group("/offer")
		offer.Use(gate.RequireRoles(identity.RoleStudent, identity.RoleEmployee, identity.RoleEiffelBikeCorp))
		{
			addRoutes(offer, []route{
				{Method: http.MethodGet, Path: "/bikes", Handler: offerHandler.MyBikes},
				{Method: http.MethodPost, Path: "/bikes", Handler: offerHandler.ListForRent},
				{Method: http.MethodGet, Path: "/bikes/:id/return-notes", Handler: offerHandler.ReturnNotes},
				{
					Method:  http.MethodPost,
					Path:    "/sales",
					Handler: offerHandler.ListForSale,
					Mw:      []gin.HandlerFunc{gate.RequireRoles(identity.RoleEiffelBikeCorp)},
				},
			})
		}

		app := apiGroup.Group("")
		{
			addRoutes(app, []route{
				{Method: http.MethodGet, Path: "/alert", Handler: appHandler.Alert},
				{Method: http.MethodDelete, Path: "/alert", Handler: appHandler.DismissAlert},
				{Method: http.MethodGet, Path: "/currencies", Handler: appHandler.Currencies},
				{Method: http.MethodPut, Path: "/currencies", Handler: appHandler.SelectCurrency},
				{Method: http.MethodPost, Path: "/currencies/refresh", Handler: appHandler.RefreshRates},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the client surface is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
