package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cyberforum/forum-api/internal/api/handler"
	"github.com/cyberforum/forum-api/internal/core/service"
	mongodb "github.com/cyberforum/forum-api/internal/infrastructure/db/mongo"
	redisdb "github.com/cyberforum/forum-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the post list then runs uncached.
func NewRouter(db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("forum"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	userService := service.NewUserService(userRepo, log)
	userHandler := handler.NewUserHandler(userService)

	postRepo := mongodb.NewPostRepository(db)
	var cache service.RecentPostsCache
	if rdb != nil {
		cache = redisdb.NewPostCache(rdb)
	}
	postService := service.NewPostService(postRepo, cache, log)
	postHandler := handler.NewPostHandler(postService)

	// --- User directory ---
	e.POST("/users", userHandler.Register)
	e.GET("/users", userHandler.Get)
	e.POST("/session", userHandler.Login)

	// --- Post store ---
	e.GET("/posts", postHandler.List)
	e.POST("/posts", postHandler.Create)
	e.POST("/posts/:postId/replies", postHandler.AddReply)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
