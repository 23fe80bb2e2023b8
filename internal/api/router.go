package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/eventback/auth-server/docs"
	"github.com/eventback/auth-server/internal/api/handler"
	"github.com/eventback/auth-server/internal/api/middleware"
	"github.com/eventback/auth-server/internal/core/ports"
	"github.com/eventback/auth-server/internal/core/service"
	mongorepo "github.com/eventback/auth-server/internal/infrastructure/db/mongo"
	"github.com/eventback/auth-server/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, issuer ports.TokenIssuer, hasher ports.PasswordHasher, log zerolog.Logger) *echo.Echo {
	e := newEcho(log)

	registerRoutes(e, mongorepo.NewUserRepository(db), issuer, hasher)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}

func newEcho(log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("auth"))

	return e
}

// registerRoutes wires the auth and user endpoints against the given store.
func registerRoutes(e *echo.Echo, userRepo ports.UserRepository, issuer ports.TokenIssuer, hasher ports.PasswordHasher) {
	authService := service.NewAuthService(userRepo, hasher, issuer)
	userService := service.NewUserService(userRepo, hasher)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	authenticated := middleware.Auth(issuer)

	e.POST("/auth/signin", authHandler.SignIn)
	e.GET("/auth/profile", authHandler.Profile, authenticated, middleware.RequireOperation(middleware.OpProfile))
	e.GET("/auth/admin", authHandler.AdminData, authenticated, middleware.RequireOperation(middleware.OpAdminData))
	e.POST("/auth/check", authHandler.Check, authenticated, middleware.RequireOperation(middleware.OpCheckToken))

	e.POST("/users/signup", userHandler.SignUp)
	e.GET("/users/:id", userHandler.GetByID)
}
