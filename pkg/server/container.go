package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"kalaa-saarathi-api/internal/config"
	"kalaa-saarathi-api/internal/handlers"
	"kalaa-saarathi-api/internal/logger"
	"kalaa-saarathi-api/pkg/lambda"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Router *handlers.Router
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	log, err := logger.Setup(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	return NewContainerWithLogger(cfg, log)
}

// NewContainerWithLogger creates a container around an existing logger
func NewContainerWithLogger(cfg *config.Config, log *logrus.Logger) (*Container, error) {
	router, err := handlers.NewDefaultRouter(&handlers.RouterConfig{
		ServiceName: cfg.ServiceName,
		Logger:      log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build router: %w", err)
	}

	return &Container{
		Config: cfg,
		Logger: log,
		Router: router,
	}, nil
}

// Engine builds the gin engine of the long-running server
func (c *Container) Engine() *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	handlers.SetupMiddleware(engine, c.Config.HTTP)
	handlers.SetupRoutes(engine, c.Router, c.Config.HTTP.EnableSwagger)

	return engine
}

// Handler returns the serverless handler for a named route, or the full
// exact-match dispatcher when name is empty.
func (c *Container) Handler(name string) (lambda.HandlerFunc, error) {
	if name == "" {
		return lambda.WithLogging(c.Logger, c.Router.Dispatch), nil
	}

	route, ok := c.Router.Route(name)
	if !ok {
		return nil, fmt.Errorf("unknown route %q", name)
	}
	return lambda.WithLogging(c.Logger, route.Serve), nil
}
