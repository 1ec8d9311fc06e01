package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/praneeth-grandhi/Hostel-Management/config"
	database "github.com/praneeth-grandhi/Hostel-Management/internal/core"
	"github.com/praneeth-grandhi/Hostel-Management/internal/core/credential"
	"github.com/praneeth-grandhi/Hostel-Management/internal/core/repository/psql"
	"github.com/praneeth-grandhi/Hostel-Management/internal/core/token"
	logicv1 "github.com/praneeth-grandhi/Hostel-Management/internal/logic/v1"
	v1 "github.com/praneeth-grandhi/Hostel-Management/internal/web/v1"
	"github.com/praneeth-grandhi/Hostel-Management/middleware"
)

func main() {
	// Load configuration from environment variables (with .env file support for local dev)
	cfg, err := config.Load()
	if err != nil {
		panic("Configuration load failed: " + err.Error())
	}
	if err := cfg.Validate(); err != nil {
		panic("Configuration validation failed: " + err.Error())
	}

	logger, err := middleware.NewLogger(cfg.Logging)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	logger.Info("Service starting",
		zap.String("service", cfg.Service.Name),
		zap.String("version", cfg.Service.Version),
		zap.String("env", cfg.Service.Env),
		zap.String("port", cfg.Service.Port),
	)

	if cfg.Tracing.Enabled {
		if err := middleware.InitTracing(cfg); err != nil {
			logger.Warn("Failed to initialize tracing", zap.Error(err))
		} else {
			logger.Info("Tracing initialized",
				zap.String("endpoint", cfg.Tracing.Endpoint),
				zap.Float64("sample_rate", cfg.Tracing.SampleRate),
			)
		}
	} else {
		logger.Info("Tracing disabled (TRACING_ENABLED=false)")
	}

	if cfg.Profiling.Enabled {
		if err := middleware.InitProfiling(cfg, logger); err != nil {
			logger.Warn("Failed to initialize profiling", zap.Error(err))
		} else {
			logger.Info("Profiling initialized", zap.String("endpoint", cfg.Profiling.Endpoint))
			defer middleware.StopProfiling()
		}
	} else {
		logger.Info("Profiling disabled (PROFILING_ENABLED=false)")
	}

	startupCtx := context.Background()

	pool, err := database.Connect(startupCtx, cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()
	logger.Info("Database connection pool established",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Name),
	)

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(startupCtx, pool); err != nil {
			logger.Fatal("Failed to apply schema", zap.Error(err))
		}
		logger.Info("Database schema applied")
	}

	revoked := token.NewNoopRevocationStore()
	var closeRedis func() error
	if cfg.Redis.Enabled {
		client, err := token.NewRedisClient(startupCtx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		closeRedis = client.Close
		revoked = token.NewRedisRevocationStore(client)
		logger.Info("Token revocation store connected", zap.String("addr", cfg.Redis.Addr))
	} else {
		logger.Warn("Redis disabled (REDIS_ENABLED=false); logout will not revoke tokens")
	}

	tokens, err := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL)
	if err != nil {
		logger.Fatal("Failed to initialize token manager", zap.Error(err))
	}
	hasher := credential.NewBcryptHasher(cfg.Auth.BcryptCost)

	userRepo := psql.NewUserRepository(pool)
	adminRepo := psql.NewAdminRepository(pool)
	hostelRepo := psql.NewHostelRepository(pool)

	handlers := v1.Handlers{
		Users:   v1.NewUserHandler(logicv1.NewUserService(userRepo, hasher, cfg.Auth.ProfileSelfOnly)),
		Admins:  v1.NewAdminHandler(logicv1.NewAdminService(adminRepo, hostelRepo, hasher)),
		Hostels: v1.NewHostelHandler(logicv1.NewHostelService(hostelRepo)),
		Auth:    v1.NewAuthHandler(logicv1.NewAuthService(userRepo, hasher, tokens, revoked)),
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	var isShuttingDown atomic.Bool

	// Tracing middleware (must be first for context propagation)
	r.Use(middleware.TracingMiddleware())

	// Logging middleware (must be before Prometheus middleware)
	r.Use(middleware.LoggingMiddleware(logger))

	if cfg.Metrics.Enabled {
		r.Use(middleware.PrometheusMiddleware())
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Returns 503 once shutdown has started, to drain traffic before HTTP shutdown.
	r.GET("/ready", func(c *gin.Context) {
		if isShuttingDown.Load() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "shutting_down"})
			return
		}
		if err := pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "database_unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1.Mount(r.Group("/api/v1"), v1.Routes(handlers), middleware.AuthMiddleware(token.NewAuthenticator(tokens, revoked), logger))

	srv := &http.Server{
		Addr:    ":" + cfg.Service.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Starting hostel service", zap.String("port", cfg.Service.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	// Fail readiness first and wait for propagation
	isShuttingDown.Store(true)
	if cfg.ReadinessDrainDelay > 0 {
		logger.Info("Readiness drain delay started", zap.Duration("delay", cfg.ReadinessDrainDelay))
		time.Sleep(cfg.ReadinessDrainDelay)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	logger.Info("Shutting down server...", zap.Duration("timeout", cfg.ShutdownTimeout))

	// Cleanup order: HTTP server, then stores, then tracer
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	} else {
		logger.Info("HTTP server shutdown complete")
	}

	pool.Close()
	logger.Info("Database pool closed")

	if closeRedis != nil {
		if err := closeRedis(); err != nil {
			logger.Error("Redis close error", zap.Error(err))
		} else {
			logger.Info("Redis client closed")
		}
	}

	if err := middleware.Shutdown(shutdownCtx); err != nil {
		logger.Error("Tracer shutdown error", zap.Error(err))
	} else if cfg.Tracing.Enabled {
		logger.Info("Tracer shutdown complete")
	}

	logger.Info("Graceful shutdown complete")
}
