package handler

import (
	"net/http"

	"fx-deals/internal/adapter/http/middleware"
	"fx-deals/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// MetricsExporter records HTTP metrics and serves the scrape endpoint.
type MetricsExporter interface {
	middleware.HTTPObserver
	Handler() http.Handler
}

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	DealSvc        ports.DealService
	AuditSvc       ports.AuditService   // nil = audit logging disabled
	RateLimitStore ports.RateLimitStore // nil = rate limiting disabled
	RateLimit      middleware.RateLimitRule
	HealthCheckers []ports.HealthChecker
	Metrics        MetricsExporter // nil = metrics disabled
	MetricsPath    string
	MaxBodyBytes   int64
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	r.Use(middleware.MaxBodySize(deps.MaxBodyBytes))

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Health check (deep: verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	if deps.Metrics != nil {
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(deps.Metrics.Handler()))
	}

	rl := func(c *gin.Context) { c.Next() }
	if deps.RateLimitStore != nil {
		rl = middleware.RateLimiter(deps.RateLimitStore, "deals", deps.RateLimit, deps.Logger)
	}

	dealHandler := NewDealHandler(deps.DealSvc)
	mountDeals := func(g *gin.RouterGroup) {
		deals := g.Group("/deals", rl)
		{
			deals.POST("", dealHandler.Create)
			deals.GET("", dealHandler.List)
			deals.GET("/:dealId", dealHandler.Get)
		}
	}

	mountDeals(&r.RouterGroup)
	mountDeals(r.Group("/api/v1"))

	return r
}
