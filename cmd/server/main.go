package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	shippingapp "github.com/hacom/backend/internal/application/shipping"
	"github.com/hacom/backend/internal/domain/shipping"
	"github.com/hacom/backend/internal/infrastructure/cache"
	"github.com/hacom/backend/internal/infrastructure/config"
	"github.com/hacom/backend/internal/infrastructure/logger"
	"github.com/hacom/backend/internal/infrastructure/persistence"
	"github.com/hacom/backend/internal/infrastructure/telemetry"
	"github.com/hacom/backend/internal/interfaces/http/handler"
	"github.com/hacom/backend/internal/interfaces/http/middleware"
	"github.com/hacom/backend/internal/interfaces/http/router"
	"go.uber.org/zap"

	_ "github.com/hacom/backend/docs"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

//	@title			HACOM Shipping API
//	@version		1.0
//	@description	Shipping fee quotes and the warehouse, zone and rate tables behind them.

//	@contact.name	HACOM Platform Team
//	@contact.url	https://hacom.vn

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting shipping service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("version", version),
	)

	ctx := context.Background()

	tp, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}

	mp, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.Enabled && cfg.Telemetry.MetricsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    cfg.Telemetry.MetricsInterval,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh))
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	log.Info("Database connected",
		zap.String("host", cfg.Database.Host),
		zap.Int("port", cfg.Database.Port),
		zap.String("database", cfg.Database.DBName),
	)

	dbTracing := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
		SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
		DBSystem:        "postgresql",
	}, log)
	if err := dbTracing.RegisterOtelGorm(db.DB); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	dbMetrics, err := telemetry.RegisterDBMetrics(db.DB, mp, cfg.Telemetry.DBSlowQueryThresh, log)
	if err != nil {
		log.Fatal("Failed to register database metrics", zap.Error(err))
	}

	// Repositories
	warehouseRepo := persistence.NewGormWarehouseRepository(db.DB)
	rateRepo := persistence.NewGormRateRepository(db.DB)
	var zoneRepo shipping.ZoneRepository = persistence.NewGormZoneRepository(db.DB)

	zoneCache, err := cache.NewZoneCacheFactory(cfg.Redis, cache.WithLogger(log)).
		Create(cfg.Shipping.ZoneCacheDriver)
	if err != nil {
		log.Fatal("Failed to initialize zone cache", zap.Error(err))
	}
	if zoneCache != nil {
		zoneRepo = cache.NewCachingZoneRepository(zoneRepo, zoneCache, cfg.Shipping.ZoneCacheTTL, log)
		log.Info("Zone cache enabled",
			zap.String("driver", cfg.Shipping.ZoneCacheDriver),
			zap.Duration("ttl", cfg.Shipping.ZoneCacheTTL),
		)
	}

	// Services
	provinces := shipping.NewProvinceDirectory(cfg.Shipping.DefaultProvinceID)
	feeService := shippingapp.NewFeeService(warehouseRepo, zoneRepo, rateRepo, provinces, shippingapp.FeeConfig{
		FallbackFee:           cfg.Shipping.FallbackFee,
		FallbackFreeThreshold: cfg.Shipping.FallbackFreeThreshold,
		FallbackZoneName:      cfg.Shipping.FallbackZoneName,
	}, log)
	if mp.IsEnabled() {
		quoteMetrics, err := telemetry.NewShippingMetrics(mp.Meter("hacom-shipping/quotes"))
		if err != nil {
			log.Fatal("Failed to initialize shipping metrics", zap.Error(err))
		}
		feeService.SetMetrics(quoteMetrics)
	}
	warehouseService := shippingapp.NewWarehouseService(warehouseRepo, zoneRepo)
	zoneService := shippingapp.NewZoneService(zoneRepo, warehouseRepo)
	rateService := shippingapp.NewRateService(rateRepo, zoneRepo, log)

	var calculateLimiter *middleware.RateLimiter
	if cfg.Shipping.CalculateRateLimit > 0 {
		calculateLimiter = middleware.NewRateLimiter(cfg.Shipping.CalculateRateLimit, cfg.Shipping.CalculateRateWindow)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	opts := router.Options{
		ServiceName: cfg.Telemetry.ServiceName,
		Logger:      log,
		CORS: middleware.CORSConfig{
			AllowOrigins: cfg.HTTP.CORSAllowOrigins,
			AllowMethods: cfg.HTTP.CORSAllowMethods,
			AllowHeaders: cfg.HTTP.CORSAllowHeaders,
			MaxAge:       12 * time.Hour,
		},
		MaxBodySize:      cfg.HTTP.MaxBodySize,
		TrustedProxies:   cfg.HTTP.TrustedProxies,
		Swagger:          middleware.SwaggerConfig{Enabled: cfg.Swagger.Enabled, AllowedIPs: cfg.Swagger.AllowedIPs},
		CalculateLimiter: calculateLimiter,
	}
	if mp.IsEnabled() {
		opts.Meter = mp.Meter("hacom-shipping/http")
	}

	engine, err := router.NewEngine(opts, router.Handlers{
		ShippingFee: handler.NewShippingFeeHandler(feeService),
		Province:    handler.NewProvinceHandler(provinces),
		Warehouse:   handler.NewWarehouseHandler(warehouseService),
		Zone:        handler.NewZoneHandler(zoneService),
		Rate:        handler.NewRateHandler(rateService),
		System:      handler.NewSystemHandler(db, cfg.App.Name, version),
	})
	if err != nil {
		log.Fatal("Failed to build HTTP engine", zap.Error(err))
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if calculateLimiter != nil {
		calculateLimiter.Stop()
	}
	if zoneCache != nil {
		if err := zoneCache.Close(); err != nil {
			log.Warn("Failed to close zone cache", zap.Error(err))
		}
	}
	if dbMetrics != nil {
		if err := dbMetrics.Stop(); err != nil {
			log.Warn("Failed to stop database metrics", zap.Error(err))
		}
	}
	if err := db.Close(); err != nil {
		log.Warn("Failed to close database", zap.Error(err))
	}
	if err := mp.Shutdown(shutdownCtx); err != nil {
		log.Warn("Failed to shut down meter provider", zap.Error(err))
	}
	if err := tp.Shutdown(shutdownCtx); err != nil {
		log.Warn("Failed to shut down tracer provider", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
