package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/modublog/blog-api/docs"
	"github.com/modublog/blog-api/internal/api/handler"
	"github.com/modublog/blog-api/internal/api/middleware"
	"github.com/modublog/blog-api/internal/core/service"
	"github.com/modublog/blog-api/internal/infrastructure/config"
	mongodb "github.com/modublog/blog-api/internal/infrastructure/db/mongo"
	"github.com/modublog/blog-api/internal/infrastructure/db/redis"
	httphandlers "github.com/modublog/blog-api/internal/infrastructure/http/handlers"
)

const (
	authRateLimit  = 10
	authRateWindow = time.Minute
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *goredis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, log)
	postService := service.NewPostService(postRepo, userRepo, log)
	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	authMiddleware := middleware.Auth(tokenService)
	authLimiter := redis.NewRateLimiter(rdb, authRateLimit, authRateWindow)

	apiGroup := e.Group("/api")

	// --- Auth routes (rate limited per client IP) ---
	authGroup := apiGroup.Group("/auth", middleware.RateLimit(authLimiter, "auth", log))
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", authHandler.Me, authMiddleware)

	// --- Post routes (reads public, writes behind auth) ---
	apiGroup.GET("/posts", postHandler.List)
	apiGroup.GET("/posts/:id", postHandler.Get)
	apiGroup.POST("/posts", postHandler.Create, authMiddleware)
	apiGroup.PUT("/posts/:id", postHandler.Update, authMiddleware)
	apiGroup.DELETE("/posts/:id", postHandler.Delete, authMiddleware)

	// Smoke-test route the browser client pings during development.
	apiGroup.GET("/test", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "backend is working"})
	})

	// --- Operational endpoints ---
	healthHandler := httphandlers.NewHealthHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness)    // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
