package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"kalaa-saarathi-api/internal/config"
	"kalaa-saarathi-api/internal/middleware"
)

// Route names, also used to pick the handler of a single-purpose function
const (
	RouteHome     = "home"
	RouteHealth   = "health"
	RouteWhatsApp = "whatsapp"
	RouteAPI      = "api"
	RoutePing     = "ping"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	ServiceName string
	Logger      logrus.FieldLogger
}

// DefaultRoutes returns the route table of the service
func DefaultRoutes(cfg *RouterConfig) []Route {
	home := NewHomeHandler()
	health := NewHealthHandler(cfg.ServiceName)
	whatsApp := NewWhatsAppHandler(cfg.Logger)
	api := NewAPIHandler()

	whatsAppCORS := WhatsAppCORS
	apiCORS := APICORS

	return []Route{
		{
			Name:    RouteHome,
			Path:    PathHome,
			Handler: home.Banner,
		},
		{
			Name:    RouteHealth,
			Path:    PathHealth,
			Handler: health.Handle,
		},
		{
			Name:    RouteWhatsApp,
			Path:    PathWhatsApp,
			CORS:    &whatsAppCORS,
			Handler: whatsApp.Handle,
		},
		{
			Name:    RouteAPI,
			Path:    PathAPI,
			CORS:    &apiCORS,
			Handler: api.Handle,
		},
		{
			Name:    RoutePing,
			Path:    PathPing,
			Handler: home.Ping,
		},
	}
}

// NewDefaultRouter builds the router serving DefaultRoutes
func NewDefaultRouter(cfg *RouterConfig) (*Router, error) {
	return NewRouter(DefaultRoutes(cfg)...)
}

// SetupRoutes registers every route of the router on a gin engine. Each path
// accepts any method so the handlers, not gin, decide what a method means.
// Paths match exactly, so "/api/" is a 404 here just as it is on Lambda.
func SetupRoutes(engine *gin.Engine, router *Router, enableSwagger bool) {
	engine.RedirectTrailingSlash = false
	engine.RedirectFixedPath = false

	if enableSwagger {
		SetupSwagger(engine)
	}

	for _, route := range router.Routes() {
		engine.Any(route.Path, Gin(route.handler()))
	}

	engine.NoRoute(Gin(NotFound))
}

// SetupMiddleware configures global middleware
func SetupMiddleware(engine *gin.Engine, cfg config.HTTPConfig) {
	engine.Use(middleware.Recovery())

	// Request ID and correlation ID
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CorrelationID())

	// Security headers
	engine.Use(middleware.SecurityHeaders())

	engine.Use(middleware.RequestSizeLimit(cfg.MaxBodyBytes))
	engine.Use(middleware.RateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst))

	// Structured logging
	engine.Use(middleware.StructuredLogger())
	engine.Use(middleware.PerformanceMonitor(cfg.SlowRequestThreshold))

	engine.Use(middleware.ErrorHandler())
}
