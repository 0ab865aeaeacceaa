// Package http provides the REST API surface of the backend.
package http

import (
	"github.com/gin-gonic/gin"

	"jaego/internal/domain/catalog"
	"jaego/internal/domain/stock"
	"jaego/internal/server/http/handlers"
	"jaego/internal/server/http/middleware"
	"jaego/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Logger for request logging
	Logger *logger.Logger

	// DB is pinged by the readiness probe
	DB handlers.Pinger

	// Catalog serves the reference lists
	Catalog catalog.Repository

	// Ledger serves record CRUD for both kinds
	Ledger handlers.LedgerService

	// Stock serves the net-quantity rollup
	Stock stock.Repository
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no scope required)
	healthHandler := handlers.NewHealthHandler(cfg.DB)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	base := handlers.NewBaseHandler()

	// API v1 - every route carries the data-partition scope
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Scope())
	{
		catalogHandler := handlers.NewCatalogHandler(base, cfg.Catalog)
		catalogHandler.RegisterRoutes(v1.Group("/catalog"))

		ledgerHandler := handlers.NewLedgerHandler(base, cfg.Ledger)
		ledgerHandler.RegisterRoutes(v1.Group("/ledger/:kind"))

		stockHandler := handlers.NewStockHandler(base, cfg.Stock)
		stockHandler.RegisterRoutes(v1.Group("/stock"))
	}

	return router
}
