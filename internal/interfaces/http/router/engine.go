package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hacom/backend/internal/infrastructure/logger"
	"github.com/hacom/backend/internal/interfaces/http/dto"
	"github.com/hacom/backend/internal/interfaces/http/handler"
	"github.com/hacom/backend/internal/interfaces/http/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Options configures the HTTP engine
type Options struct {
	ServiceName    string
	Logger         *zap.Logger
	Meter          metric.Meter // nil disables HTTP metrics
	CORS           middleware.CORSConfig
	MaxBodySize    int64
	TrustedProxies []string
	Swagger        middleware.SwaggerConfig
	// CalculateLimiter throttles quote requests per client IP, nil disables it
	CalculateLimiter *middleware.RateLimiter
}

// Handlers groups the HTTP handlers mounted by NewEngine
type Handlers struct {
	ShippingFee *handler.ShippingFeeHandler
	Province    *handler.ProvinceHandler
	Warehouse   *handler.WarehouseHandler
	Zone        *handler.ZoneHandler
	Rate        *handler.RateHandler
	System      *handler.SystemHandler
}

// NewEngine builds the gin engine with the middleware stack and every route
func NewEngine(opts Options, h Handlers) (*gin.Engine, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	middleware.SetupValidator()
	engine := gin.New()
	if err := engine.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, err
	}

	httpMetrics, err := middleware.HTTPMetrics(opts.Meter)
	if err != nil {
		return nil, err
	}

	engine.Use(middleware.RequestID())
	engine.Use(middleware.Tracing(opts.ServiceName)...)
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(httpMetrics)
	engine.Use(middleware.SecureHeaders())
	engine.Use(middleware.CORS(opts.CORS))
	engine.Use(middleware.BodyLimit(opts.MaxBodySize))

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.ErrCodeNotFound, "Route not found", middleware.GetRequestID(c)))
	})

	engine.GET("/health", h.System.Health)
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(opts.Swagger),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	calculate := []gin.HandlerFunc{h.ShippingFee.Calculate}
	if opts.CalculateLimiter != nil {
		calculate = append([]gin.HandlerFunc{middleware.RateLimit(opts.CalculateLimiter)}, calculate...)
	}

	shippingRoutes := NewDomainGroup("shipping", "/shipping")
	shippingRoutes.POST("/calculate", calculate...)
	shippingRoutes.GET("/provinces", h.Province.List)

	shippingRoutes.Group("warehouses", "/warehouses").
		GET("", h.Warehouse.List).
		POST("", h.Warehouse.Create).
		GET("/:id", h.Warehouse.GetByID).
		PUT("/:id", h.Warehouse.Update).
		DELETE("/:id", h.Warehouse.Delete).
		POST("/:id/default", h.Warehouse.SetDefault)

	shippingRoutes.Group("zones", "/zones").
		GET("", h.Zone.List).
		POST("", h.Zone.Create).
		GET("/:id", h.Zone.GetByID).
		PUT("/:id", h.Zone.Update).
		DELETE("/:id", h.Zone.Delete).
		GET("/:id/rates", h.Rate.ListByZone).
		POST("/:id/rates", h.Rate.Create)

	shippingRoutes.Group("rates", "/rates").
		PUT("/:id", h.Rate.Update).
		DELETE("/:id", h.Rate.Delete)

	systemRoutes := NewDomainGroup("system", "/system").
		GET("/info", h.System.GetSystemInfo)

	NewRouter(engine, WithAPIVersion("v1")).
		Register(shippingRoutes).
		Register(systemRoutes).
		Setup()

	return engine, nil
}
