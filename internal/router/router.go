package router

import (
	"log/slog"
	"net/http"
	"time"

	"tacoloco/internal/auth"
	"tacoloco/internal/menu"
	"tacoloco/internal/middleware"
	"tacoloco/internal/order"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps holds the handlers the router mounts. Auth and Tokens may be nil, in
// which case the admin routes are not registered.
type Deps struct {
	Logger       *slog.Logger
	AllowOrigins []string

	Orders    *order.Handler
	Menu      *menu.Handler
	AdminMenu *menu.AdminHandler
	Auth      *auth.Handler
	Tokens    middleware.TokenValidator
}

func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(deps.Logger),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ───────────────────────── ORDERS ─────────────────────────
	r.POST("/calculateTotal", deps.Orders.CalculateTotal)
	r.POST("/calculateTotal/", deps.Orders.CalculateTotal)

	// ───────────────────────── MENU ─────────────────────────
	r.GET("/menu", deps.Menu.List)

	if deps.Auth == nil || deps.Tokens == nil {
		return r
	}

	// ───────────────────────── ADMIN ─────────────────────────
	r.POST("/auth/token", deps.Auth.Login)

	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(deps.Tokens),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		admin.PUT("/menu/:name", deps.AdminMenu.Upsert)
		admin.DELETE("/menu/:name", deps.AdminMenu.Delete)
		admin.POST("/menu/reload", deps.AdminMenu.Reload)
		admin.POST("/menu/import", deps.AdminMenu.Import)
		admin.POST("/menu/export", deps.AdminMenu.Export)
	}

	return r
}
