package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/terraview/authd/internal/api/handlers"
	"github.com/terraview/authd/internal/api/middleware"
	"github.com/terraview/authd/internal/auth"
	"github.com/terraview/authd/internal/viewport"
	"gorm.io/gorm"
)

type Router struct {
	chi.Router
}

type RouterConfig struct {
	DB              *gorm.DB
	Redis           *redis.Client
	Logger          *slog.Logger
	JWTService      *auth.JWTService
	AuthService     *auth.Service
	ViewportService *viewport.Service
	AsynqClient     *asynq.Client
	AllowedOrigins  []string // CORS allowed origins
	RateLimitReqs   int      // Rate limit requests per window
	RateLimitSecs   int      // Rate limit window in seconds
}

func NewRouter(cfg RouterConfig) *Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	if cfg.RateLimitReqs > 0 {
		r.Use(middleware.RateLimit(cfg.RateLimitReqs, cfg.RateLimitSecs))
	}

	// The viewer frontend is served from a separate origin; default to
	// localhost for development and configure explicitly in production.
	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:8080"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg.DB, cfg.Redis)
	authHandler := handlers.NewAuthHandler(cfg.AuthService, cfg.AsynqClient, cfg.Logger)
	adminHandler := handlers.NewAdminHandler(cfg.AuthService, cfg.Logger)
	viewportHandler := handlers.NewViewportHandler(cfg.ViewportService, cfg.Logger)

	// Health endpoints (no auth required)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// Public auth endpoints
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
	r.Post("/forgot-password", authHandler.ForgotPassword)
	r.Post("/reset-password", authHandler.ResetPassword)

	// Admin endpoints
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWTService))
		r.Use(middleware.RequireAdmin)
		r.Get("/users", adminHandler.ListUsers)
		r.Put("/users/{id}/approve", adminHandler.ApproveUser)
	})

	// Viewport preference (unauthenticated, see DESIGN.md)
	r.Post("/api/viewport/update", viewportHandler.Update)

	return &Router{r}
}
