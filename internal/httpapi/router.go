package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	authapp "github.com/stonique/storefront/internal/auth/app"
	catalogapp "github.com/stonique/storefront/internal/catalog/app"
)

type handlers struct {
	catalog  *catalogapp.Service
	sessions *Sessions
	shipping float64
	log      *slog.Logger
}

// NewRouter wires the storefront API.
func NewRouter(catalog *catalogapp.Service, sessions *Sessions, shipping float64, log *slog.Logger) *gin.Engine {
	registerValidations()

	h := &handlers{
		catalog:  catalog,
		sessions: sessions,
		shipping: shipping,
		log:      log,
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/readyz", func(c *gin.Context) { c.Status(http.StatusOK) })

	api := r.Group("/api", sessions.Middleware)

	api.GET("/products", h.listProducts)
	api.GET("/categories", h.listCategories)

	api.POST("/auth/signup", h.signup)
	api.POST("/auth/login", h.login)
	api.POST("/auth/logout", h.logout)
	api.GET("/auth/me", h.me)

	api.GET("/preferences/theme", h.getTheme)
	api.PUT("/preferences/theme", h.setTheme)

	private := api.Group("", requireAuth)
	private.GET("/cart", h.getCart)
	private.POST("/cart/items", h.addItem)
	private.PUT("/cart/items/:id", h.setQuantity)
	private.DELETE("/cart/items/:id", h.removeItem)
	private.DELETE("/cart", h.clearCart)
	private.POST("/cart/selection", h.updateSelection)
	private.POST("/cart/selection/remove", h.removeSelected)
	private.GET("/checkout/summary", h.summary)

	return r
}

// registerValidations adds the signup password policy as a binding rule so
// requests fail fast at the transport edge.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("accountpassword", func(fl validator.FieldLevel) bool {
		return authapp.CheckPassword(fl.Field().String()) == nil
	})
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("took", time.Since(start)),
		)
	}
}
