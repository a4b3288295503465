package server

import (
	"strings"

	"trivia-api/internal/config"
	"trivia-api/internal/handler"
	"trivia-api/internal/metrics"
	"trivia-api/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// Handlers groups the HTTP handlers mounted by NewApp.
type Handlers struct {
	Category *handler.CategoryHandler
	Question *handler.QuestionHandler
	Quiz     *handler.QuizHandler
	Index    *handler.IndexHandler
	Health   *handler.HealthHandler
}

// NewApp builds the fiber app: middleware chain, operational endpoints and the trivia routes
// under cfg.RoutePrefix.
func NewApp(cfg config.ServerConfig, h Handlers, m *metrics.Metrics) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "trivia-api",
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())
	app.Use(middleware.Metrics(m))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.AllowedOrigins, ","),
		AllowMethods: "GET,PUT,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Content-Type",
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", m.Handler())
	app.Get("/health", h.Health.Health)

	RegisterRoutes(app, cfg.RoutePrefix, h)
	return app
}

// RegisterRoutes mounts the trivia endpoints under prefix. An empty prefix mounts them at the root.
func RegisterRoutes(app *fiber.App, prefix string, h Handlers) {
	index := prefix
	if index == "" {
		index = "/"
	}
	app.Get(index, h.Index.Index)

	api := app.Group(prefix)
	api.Get("/categories", h.Category.GetCategories)
	api.Get("/categories/:id<int>/questions", h.Category.GetCategoryQuestions)

	api.Get("/questions", h.Question.ListQuestions)
	api.Post("/questions", h.Question.PostQuestions)
	api.Delete("/questions/:id<int>", h.Question.DeleteQuestion)

	api.Post("/quizzes", h.Quiz.NextQuestion)
}
