package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/organilive/storefront/api/handler"
)

type Handlers struct {
	Account *apiHandler.AccountHandler
	Profile *apiHandler.ProfileHandler
	Catalog *apiHandler.CatalogHandler
	Cart    *apiHandler.CartHandler
	Contact *apiHandler.ContactHandler
	Health  *apiHandler.HealthHandler
}

func New(handlers Handlers, sessionGuard func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Account routes
	r.POST("/api/v1/account/register", handlers.Account.Register)
	r.POST("/api/v1/account/login", handlers.Account.Login)
	r.POST("/api/v1/account/logout", handlers.Account.Logout)

	// Session-guarded routes
	r.GET("/api/v1/account/session", sessionGuard(handlers.Account.Session))
	r.PUT("/api/v1/account/profile", sessionGuard(handlers.Profile.UpdateProfile))
	r.PUT("/api/v1/account/preferences", sessionGuard(handlers.Profile.UpdatePreferences))
	r.POST("/api/v1/account/activity", sessionGuard(handlers.Profile.AddActivity))

	// Catalog and cart
	r.GET("/api/v1/products", handlers.Catalog.List)
	r.GET("/api/v1/products/stats", handlers.Catalog.Stats)
	r.POST("/api/v1/products/reload", handlers.Catalog.Reload)
	r.GET("/api/v1/cart", handlers.Cart.Get)
	r.POST("/api/v1/cart/items", handlers.Cart.AddItem)
	r.DELETE("/api/v1/cart", handlers.Cart.Clear)

	// Contact
	r.POST("/api/v1/contact", handlers.Contact.Submit)
	r.GET("/api/v1/contact/info", handlers.Contact.Info)

	return r
}
