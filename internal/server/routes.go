package server

import (
	"parkreg/internal/api"
	"parkreg/internal/auth"
	"parkreg/internal/config"

	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, h Handlers) (*gin.Engine, error) {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := api.RegisterValidators(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		RequestLoggingMiddleware(),
		MetricsMiddleware(),
		corsMiddleware(cfg.CORSAllowedOrigins),
	)

	router.GET("/health", Health(h.DB))
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	limited := RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)
	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret, h.Sessions)

	public := router.Group("/auth", limited)
	{
		public.POST("/login", h.Operators.Login)
		public.POST("/refresh", h.Operators.RefreshToken)
	}

	protected := router.Group("/", limited, authMiddleware)
	{
		protected.POST("/auth/logout", h.Operators.Logout)
		protected.GET("/me", h.Operators.GetMe)

		protected.POST("/vehicles/entry", h.Parking.RegisterEntry)
		protected.POST("/vehicles/exit", h.Parking.RegisterExit)

		protected.GET("/sessions/open", h.Parking.ListOpen)
		protected.GET("/sessions/:id", h.Parking.Get)
		protected.GET("/sessions/:id/ticket.png", h.Parking.Ticket)

		protected.GET("/subscriptions", h.Subscriptions.List)
		protected.POST("/subscriptions", h.Subscriptions.Add)
		protected.GET("/subscriptions/:id", h.Subscriptions.Get)
		protected.PUT("/subscriptions/:id/renew", h.Subscriptions.Renew)
		protected.DELETE("/subscriptions/:id", h.Subscriptions.Remove)

		protected.GET("/reports/daily", h.Reports.Daily)
		protected.GET("/reports/daily.xlsx", h.Reports.DailyXLSX)
	}

	admin := router.Group("/admin", limited, authMiddleware, auth.RequireRole(auth.RoleAdmin))
	{
		admin.POST("/operators", h.Operators.Create)
		admin.GET("/operators", h.Operators.List)
	}

	return router, nil
}
