package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/bikeworks/assembly-tracker/docs"
	"github.com/bikeworks/assembly-tracker/internal/api/handler"
	"github.com/bikeworks/assembly-tracker/internal/api/middleware"
	"github.com/bikeworks/assembly-tracker/internal/core/ports"
	"github.com/bikeworks/assembly-tracker/internal/core/service"
	"github.com/bikeworks/assembly-tracker/internal/infrastructure/db/postgres"
	redisdb "github.com/bikeworks/assembly-tracker/internal/infrastructure/db/redis"
	"github.com/bikeworks/assembly-tracker/internal/pkg/config"
)

// Dependencies are the live backing services the router wires into handlers.
// Redis is nil when the login throttle is disabled.
type Dependencies struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Config *config.Config
	Log    zerolog.Logger
}

// Options control the route table independently of the concrete services.
type Options struct {
	JWTSecret    string
	AuthRequired bool
	ReportRoles  []string
	Log          zerolog.Logger

	// Registerer and Gatherer default to the prometheus globals.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// Services are the use cases exposed over HTTP.
type Services struct {
	Auth    ports.AuthService
	Session ports.SessionService
	Report  ports.ReportService
	Catalog ports.CatalogService
	Checks  map[string]handler.DependencyCheck
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	cfg := deps.Config

	// --- Dependencies ---
	var throttle ports.LoginThrottle
	checks := map[string]handler.DependencyCheck{
		"postgres": func(ctx context.Context) error { return postgres.Ping(ctx, deps.DB) },
	}
	if deps.Redis != nil {
		throttle = redisdb.NewLoginThrottle(deps.Redis, cfg.Redis.MaxAttempts, cfg.Redis.Lockout)
		checks["redis"] = func(ctx context.Context) error { return deps.Redis.Ping(ctx).Err() }
	}

	svcs := Services{
		Auth:    service.NewAuthService(postgres.NewAuthRepository(deps.DB), throttle, cfg.JWTSecret, deps.Log),
		Session: service.NewSessionService(postgres.NewSessionRepository(deps.DB), deps.Log),
		Report:  service.NewReportService(postgres.NewReportRepository(deps.DB), deps.Log),
		Catalog: service.NewCatalogService(postgres.NewCatalogRepository(deps.DB), deps.Log),
		Checks:  checks,
	}

	return newEcho(svcs, Options{
		JWTSecret:    cfg.JWTSecret,
		AuthRequired: cfg.Auth.Required,
		ReportRoles:  cfg.Auth.ReportRoles,
		Log:          deps.Log,
	})
}

func newEcho(svcs Services, opts Options) *echo.Echo {
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(opts.Log))
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "assembly",
		Subsystem:  "http",
		Registerer: opts.Registerer,
	}))

	// --- Ops endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(svcs.Checks)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: opts.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authHandler := handler.NewAuthHandler(svcs.Auth)
	sessionHandler := handler.NewSessionHandler(svcs.Session)
	reportHandler := handler.NewReportHandler(svcs.Report)
	catalogHandler := handler.NewCatalogHandler(svcs.Catalog)

	api := e.Group("/api")
	api.POST("/login", authHandler.Login)

	// Everything past login is optionally behind a bearer token.
	protected := api.Group("")
	if opts.AuthRequired {
		protected.Use(middleware.Auth(opts.JWTSecret))
	}

	protected.POST("/logout", sessionHandler.Logout)
	protected.POST("/postbikeId", sessionHandler.ReassignBike)

	protected.GET("/employees", catalogHandler.Employees)
	protected.GET("/bikes", catalogHandler.Bikes)
	protected.GET("/assemble", catalogHandler.AssemblyRecords)

	reports := protected.Group("/employee")
	if opts.AuthRequired {
		reports.Use(middleware.RBAC(opts.ReportRoles...))
	}
	reports.GET("/production", reportHandler.ProductionByRange)
	reports.GET("/specificDateProduction", reportHandler.ProductionByDate)

	return e
}
