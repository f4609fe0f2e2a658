package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/tomekh/stockledger/internal/adapter/http/handler"
	"github.com/tomekh/stockledger/internal/adapter/http/middleware"
	"github.com/tomekh/stockledger/internal/domain"
	"github.com/tomekh/stockledger/internal/infrastructure/auth"
	"github.com/tomekh/stockledger/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	ProductHandler   *handler.ProductHandler
	PurchaseHandler  *handler.PurchaseHandler
	SaleHandler      *handler.SaleHandler
	InventoryHandler *handler.InventoryHandler
	AuthHandler      *handler.AuthHandler
	UserHandler      *handler.UserHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore

	// JWTManager enables authentication when set together with AuthEnabled.
	JWTManager  *auth.JWTManager
	AuthEnabled bool

	// LoginRateLimiter guards the login endpoint when set.
	LoginRateLimiter *middleware.RateLimiter

	Logger zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	authRequired := cfg.AuthEnabled && cfg.JWTManager != nil

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Authentication
		if cfg.AuthHandler != nil {
			r.Route("/auth", func(r chi.Router) {
				if cfg.LoginRateLimiter != nil {
					r.With(cfg.LoginRateLimiter.Limit).Post("/login", cfg.AuthHandler.Login)
				} else {
					r.Post("/login", cfg.AuthHandler.Login)
				}
				r.Post("/refresh", cfg.AuthHandler.Refresh)
				r.Post("/logout", cfg.AuthHandler.Logout)

				if authRequired {
					r.With(middleware.AuthMiddleware(cfg.JWTManager)).Get("/me", cfg.AuthHandler.GetCurrentUser)
				} else {
					r.Get("/me", cfg.AuthHandler.GetCurrentUser)
				}
			})
		}

		r.Group(func(r chi.Router) {
			if authRequired {
				r.Use(middleware.AuthMiddleware(cfg.JWTManager))
			}

			// Products and their ledgers
			r.Route("/products", func(r chi.Router) {
				r.Get("/", cfg.ProductHandler.List)
				r.Get("/{id}", cfg.ProductHandler.Get)
				r.Get("/{id}/stock", cfg.InventoryHandler.Stock)
				r.Get("/{id}/inventories", cfg.InventoryHandler.Feed)
				r.Get("/{id}/purchases", cfg.PurchaseHandler.ListByProduct)
				r.Get("/{id}/sales", cfg.SaleHandler.ListByProduct)

				if authRequired {
					r.With(middleware.RequireRole(domain.RoleClerk)).Post("/", cfg.ProductHandler.Create)
					r.With(middleware.RequireRole(domain.RoleClerk)).Put("/{id}", cfg.ProductHandler.Update)
					r.With(middleware.RequireRole(domain.RoleAdmin)).Delete("/{id}", cfg.ProductHandler.Delete)
				} else {
					r.Post("/", cfg.ProductHandler.Create)
					r.Put("/{id}", cfg.ProductHandler.Update)
					r.Delete("/{id}", cfg.ProductHandler.Delete)
				}
			})

			// Ledger entries
			if authRequired {
				r.With(middleware.RequireRole(domain.RoleClerk)).Post("/purchases", cfg.PurchaseHandler.Create)
				r.With(middleware.RequireRole(domain.RoleClerk)).Post("/sales", cfg.SaleHandler.Create)
			} else {
				r.Post("/purchases", cfg.PurchaseHandler.Create)
				r.Post("/sales", cfg.SaleHandler.Create)
			}

			// User management (admin only)
			if cfg.UserHandler != nil {
				r.Route("/users", func(r chi.Router) {
					if authRequired {
						r.Use(middleware.RequireRole(domain.RoleAdmin))
					}
					r.Post("/", cfg.UserHandler.Create)
					r.Get("/", cfg.UserHandler.List)
					r.Get("/{id}", cfg.UserHandler.Get)
					r.Delete("/{id}", cfg.UserHandler.Delete)
				})
			}
		})
	})

	return r
}
