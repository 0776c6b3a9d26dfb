package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes mounts the ledger API on e. importLimiter guards the upload
// endpoint only; gatherer backs /metrics and may be nil to omit it.
func RegisterRoutes(
	e *echo.Echo,
	transactions *TransactionHandler,
	health *HealthCheckHandler,
	importLimiter echo.MiddlewareFunc,
	gatherer prometheus.Gatherer,
) {
	e.GET("/health", health.HealthCheck)
	if gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	v1 := e.Group("/api/v1")
	v1.GET("/transactions", transactions.ListTransactions)
	v1.POST("/transactions", transactions.CreateTransaction)

	importMiddleware := []echo.MiddlewareFunc{}
	if importLimiter != nil {
		importMiddleware = append(importMiddleware, importLimiter)
	}
	v1.POST("/transactions/import", transactions.ImportTransactions, importMiddleware...)
}
