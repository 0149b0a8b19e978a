package httpserver

import (
	"log"

	"aurora-store/internal/service/cart"
	"aurora-store/internal/service/catalog"
	"aurora-store/internal/service/checkout"
	"aurora-store/internal/service/comment"
	"aurora-store/internal/service/reconcile"
	"aurora-store/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps carries the wired services the router hands to handlers.
type Deps struct {
	CatalogSvc   *catalog.Service
	CartSvc      *cart.Service
	CommentSvc   *comment.Service
	Checkout     checkout.Initiator
	Reconciler   *reconcile.Service // nil when the webhook secret is absent
	Sessions     *session.Manager
	Currency     string
	CookieSecure bool
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))
	router.Use(securityHeaders())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	// The provider callback carries its own authentication and must not
	// depend on a browser session.
	router.POST("/webhook", webhookHandler(deps.Reconciler, logger))

	h := &handlers{deps: deps, logger: logger}

	withSession := router.Group("/")
	withSession.Use(sessionMiddleware(deps.Sessions, deps.CookieSecure))
	{
		withSession.GET("/api/products", h.listProducts)
		withSession.GET("/api/products/:id", h.getProduct)

		withSession.GET("/api/cart", h.viewCart)
		withSession.POST("/api/cart/add", h.addToCart)
		withSession.POST("/api/cart/remove", h.removeFromCart)
		withSession.POST("/api/cart/clear", h.clearCart)

		withSession.POST("/checkout/session", h.startCheckout)
		withSession.GET("/checkout/success", h.checkoutSuccess)
		withSession.GET("/checkout/cancel", h.checkoutCancel)

		withSession.POST("/api/products/:id/comments", h.createComment)
		withSession.POST("/api/comments/:id", h.editComment)
		withSession.DELETE("/api/comments/:id", h.deleteComment)
	}

	return router
}

type handlers struct {
	deps   Deps
	logger *log.Logger
}
