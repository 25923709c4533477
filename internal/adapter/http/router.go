package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mfgops/stockledger/internal/adapter/http/handler"
	"github.com/mfgops/stockledger/internal/adapter/http/middleware"
	"github.com/mfgops/stockledger/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	MovementHandler  *handler.MovementHandler
	StockHandler     *handler.StockHandler
	ItemHandler      *handler.ItemHandler
	ReportHandler    *handler.ReportHandler
	LedgerHandler    *handler.LedgerHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	RateLimiter      *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.Liveness)
		r.Get("/ready", cfg.HealthHandler.Readiness)
	}
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Movement ledger
		r.Route("/movements", func(r chi.Router) {
			r.Post("/", cfg.MovementHandler.Create)
			r.Get("/", cfg.MovementHandler.List)
		})

		// Derived stock levels
		r.Route("/stock", func(r chi.Router) {
			r.Get("/levels", cfg.StockHandler.ListLevels)
			r.Get("/levels/{id}", cfg.StockHandler.GetLevel)
			r.Get("/items/{id}/balance", cfg.StockHandler.GetBalance)
		})

		// Item catalog
		r.Route("/items", func(r chi.Router) {
			r.Post("/", cfg.ItemHandler.Create)
			r.Get("/", cfg.ItemHandler.List)
			r.Get("/{id}", cfg.ItemHandler.Get)
		})

		// Reports
		r.Post("/reports/dashboard", cfg.ReportHandler.Dashboard)

		// Ledger verification
		r.Get("/ledger/verify", cfg.LedgerHandler.Verify)
	})

	return r
}
