package server

import (
	"context"
	nethttp "net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/calckit/numerics/internal/api/http"
	"github.com/calckit/numerics/internal/api/middleware"
	"github.com/calckit/numerics/internal/infrastructure/config"
	"github.com/calckit/numerics/internal/infrastructure/logging"
	"github.com/calckit/numerics/internal/infrastructure/monitoring"
	"github.com/calckit/numerics/internal/numeric"
	numericProvider "github.com/calckit/numerics/internal/providers/numeric"
	"github.com/calckit/numerics/internal/service"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	registry *service.Registry
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
	httpSrv  *nethttp.Server
}

// New creates a new server instance
func New(cfg *config.Config) (*Server, error) {
	// Initialize logger
	logCfg := logging.DefaultConfig()
	if cfg.Logging.Development {
		logCfg = logging.DevelopmentConfig()
	}
	if cfg.Logging.Level != "" {
		logCfg.Level = cfg.Logging.Level
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return nil, err
	}

	logger.Info("Initializing numerics server",
		zap.String("port", cfg.Server.Port),
		zap.Float64("epsilon", cfg.Numeric.Epsilon),
	)

	// Initialize metrics first (needed by handlers)
	metrics := monitoring.NewMetrics()

	// Register service providers
	registry := service.NewRegistry()
	calc := numeric.New(numeric.WithEpsilon(cfg.Numeric.Epsilon))
	if err := registry.Register(numericProvider.NewProvider(calc)); err != nil {
		return nil, err
	}

	stats := registry.Stats()
	logger.Info("Registered services",
		zap.Any("total_services", stats["total_services"]),
		zap.Any("total_tools", stats["total_tools"]),
	)

	// Create router
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	// Create handlers
	handlers := apihttp.NewHandlers(registry, metrics)

	// Register routes
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Service management
	router.GET("/services", handlers.ListServices)
	router.POST("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)

	return &Server{
		router:   router,
		registry: registry,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}, nil
}

// Run starts the server and blocks until it stops
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting numerics server", zap.String("addr", addr))

	s.httpSrv = &nethttp.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	if err := s.httpSrv.ListenAndServe(); err != nil && err != nethttp.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down numerics server")
	defer func() {
		_ = s.logger.Sync()
	}()

	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// Registry exposes the service registry (used by integration tests)
func (s *Server) Registry() *service.Registry {
	return s.registry
}
