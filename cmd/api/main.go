// @title Trivia API
// @version 1.0
// @description Categories, paginated questions, search and quiz rounds.
// @host localhost:5000
// @BasePath /api
// @schemes http
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"trivia-api/cmd/api/docs"
	"trivia-api/internal/adapter"
	"trivia-api/internal/cache"
	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/domain"
	"trivia-api/internal/handler"
	"trivia-api/internal/logger"
	"trivia-api/internal/metrics"
	"trivia-api/internal/repository"
	"trivia-api/internal/server"
	"trivia-api/internal/service"
	"trivia-api/internal/validation"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	// Connect to database
	db, err := database.NewSQLXPostgresDB(ctx, cfg.DB, cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL", zap.String("host", cfg.DB.Host), zap.String("database", cfg.DB.DBName))

	// Redis is optional; without it the category map is read from the database every time.
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("RedisCacheAdapter initialized", zap.String("address", cfg.Redis.Address))
	} else {
		appLogger.Info("Redis address not configured, category caching disabled")
	}

	// Initialize repositories
	categoryRepository := repository.NewCategoryDatabaseAdapter(db)
	questionRepository := repository.NewQuestionDatabaseAdapter(db)

	// Initialize services
	validator := validation.NewValidator()
	categoryService := service.NewCategoryService(categoryRepository, cacheAdapter, cfg.Redis.CategoryTTL)
	questionService := service.NewQuestionService(questionRepository, categoryRepository, categoryService, validator, cfg.Pagination.PageSize)
	quizService := service.NewQuizService(service.NewQuizSelector(questionRepository), validator)

	// Initialize handlers
	handlers := server.Handlers{
		Category: handler.NewCategoryHandler(categoryService, questionService),
		Question: handler.NewQuestionHandler(questionService),
		Quiz:     handler.NewQuizHandler(quizService),
		Index:    handler.NewIndexHandler(cfg.Server.RoutePrefix),
		Health:   handler.NewHealthHandler(db, cacheAdapter),
	}

	docs.SwaggerInfo.BasePath = cfg.Server.RoutePrefix
	if docs.SwaggerInfo.BasePath == "" {
		docs.SwaggerInfo.BasePath = "/"
	}

	app := server.NewApp(cfg.Server, handlers, metrics.New())

	go func() {
		appLogger.Info("Starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("route_prefix", cfg.Server.RoutePrefix),
			zap.Int("page_size", cfg.Pagination.PageSize),
		)
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
		return
	}
	appLogger.Info("Server exited gracefully")
}
