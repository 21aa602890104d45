package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fencewise/field-service/internal/api/handler"
	"github.com/fencewise/field-service/internal/api/middleware"
	"github.com/fencewise/field-service/internal/core/domain"
	"github.com/fencewise/field-service/internal/core/service"
	"github.com/fencewise/field-service/internal/infrastructure/config"
	mongodb "github.com/fencewise/field-service/internal/infrastructure/db/mongo"
	redisdb "github.com/fencewise/field-service/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("fieldservice"))
	// CORS is deliberately wide open for this deployment; it is not a
	// security boundary.
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"*"},
		AllowHeaders: []string{"*"},
	}))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	jobRepo := mongodb.NewJobRepository(db)
	timesheetRepo := mongodb.NewTimesheetRepository(db)
	messageRepo := mongodb.NewMessageRepository(db)
	photoRepo := mongodb.NewPhotoRepository(db)

	// --- Services ---
	var throttle service.LoginThrottle
	if rdb != nil {
		throttle = redisdb.NewLoginThrottle(rdb, cfg.Throttle.MaxFailures, cfg.Throttle.Window)
	}
	authService := service.NewAuthService(userRepo, throttle, cfg.JWTSecret, cfg.TokenTTL, log)
	jobService := service.NewJobService(jobRepo, log)
	timesheetService := service.NewTimesheetService(timesheetRepo, log)
	messageService := service.NewMessageService(messageRepo, log)
	photoService := service.NewPhotoService(photoRepo, jobRepo, log)
	userService := service.NewUserService(userRepo, jobRepo, timesheetRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(jobService)
	timesheetHandler := handler.NewTimesheetHandler(timesheetService)
	messageHandler := handler.NewMessageHandler(messageService)
	photoHandler := handler.NewPhotoHandler(photoService)
	userHandler := handler.NewUserHandler(userService)

	authRequired := middleware.Auth(authService, userRepo)
	elevatedOnly := middleware.RequireRole(domain.RoleSupervisor, domain.RoleAdmin)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- API routes ---
	apiGroup := e.Group("/api")

	apiGroup.POST("/auth/register", authHandler.Register)
	apiGroup.POST("/auth/login", authHandler.Login)
	apiGroup.GET("/auth/me", authHandler.Me, authRequired)

	apiGroup.POST("/jobs", jobHandler.Create, authRequired)
	apiGroup.GET("/jobs", jobHandler.List, authRequired)
	apiGroup.GET("/jobs/:id", jobHandler.Get, authRequired)
	apiGroup.PUT("/jobs/:id", jobHandler.Update, authRequired)
	apiGroup.DELETE("/jobs/:id", jobHandler.Delete, authRequired)

	apiGroup.POST("/timesheets", timesheetHandler.Create, authRequired)
	apiGroup.GET("/timesheets", timesheetHandler.List, authRequired)
	apiGroup.PUT("/timesheets/:id/approve", timesheetHandler.Approve, authRequired, elevatedOnly)

	apiGroup.POST("/messages", messageHandler.Send, authRequired)
	apiGroup.GET("/messages/:channel", messageHandler.ListChannel, authRequired)

	apiGroup.POST("/photos", photoHandler.Upload, authRequired)
	apiGroup.GET("/photos/job/:id", photoHandler.ListByJob, authRequired)

	apiGroup.GET("/users", userHandler.List, authRequired, adminOnly)
	apiGroup.PUT("/users/:id/suspend", userHandler.Suspend, authRequired, adminOnly)
	apiGroup.PUT("/users/:id/activate", userHandler.Activate, authRequired, adminOnly)

	apiGroup.GET("/dashboard/stats", userHandler.Stats, authRequired)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
