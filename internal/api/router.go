package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/api/handler"
	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/api/middleware"
	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"
	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/ports"
)

// Dependencies are the services the HTTP layer is built on.
type Dependencies struct {
	Auth      ports.AuthService
	Packages  ports.PackageService
	Tracking  ports.TrackingService
	Contact   ports.ContactService
	Resolver  ports.LocationResolver
	Readiness []handler.DependencyCheck
	JWTSecret string
	Log       zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddleware("swiftcargo"))

	authHandler := handler.NewAuthHandler(deps.Auth)
	packageHandler := handler.NewPackageHandler(deps.Packages, deps.Log)
	trackingHandler := handler.NewTrackingHandler(deps.Tracking)
	contactHandler := handler.NewContactHandler(deps.Contact)
	geoHandler := handler.NewGeoHandler(deps.Resolver)

	requireAuth := middleware.Auth(deps.JWTSecret)
	staff := middleware.RBAC(domain.RoleAdmin, domain.RoleOperator)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/api/track/:tracking_number", trackingHandler.Track)
	e.POST("/api/contact", contactHandler.Submit)

	// --- Back office ---
	e.POST("/auth/register", authHandler.Register, requireAuth, adminOnly)

	admin := e.Group("/api", requireAuth, staff)
	admin.POST("/register-package", packageHandler.Register)
	admin.POST("/update-status", packageHandler.UpdateStatus)
	admin.GET("/admin/packages", packageHandler.List)
	admin.PUT("/admin/package/:tracking_number", packageHandler.UpdateDetails)
	admin.DELETE("/admin/package/:tracking_number", packageHandler.Delete)
	admin.GET("/geo/resolve", geoHandler.Resolve)
	admin.GET("/geo/distance", geoHandler.Distance)

	// --- Ops ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(deps.Readiness...).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger writes one structured line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
