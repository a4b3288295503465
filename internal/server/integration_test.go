//go:build integration

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"

	"trivia-api/internal/adapter"
	"trivia-api/internal/cache"
	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/handler"
	"trivia-api/internal/logger"
	"trivia-api/internal/metrics"
	"trivia-api/internal/repository"
	"trivia-api/internal/service"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests need a disposable PostgreSQL database (and optionally Redis) reachable with the
// config.yaml / environment settings: go test -tags integration ./internal/server/...

var (
	integrationApp *fiber.App
	integrationDB  *sqlx.DB
)

func TestMain(m *testing.M) {
	os.Setenv("ENV", "test")

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	ctx := context.Background()
	integrationDB, err = database.NewSQLXPostgresDB(ctx, cfg.DB, cfg.GetDSN())
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
		redisClient.FlushDB(ctx)
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
	}

	categoryRepo := repository.NewCategoryDatabaseAdapter(integrationDB)
	questionRepo := repository.NewQuestionDatabaseAdapter(integrationDB)
	validator := validation.NewValidator()
	categorySvc := service.NewCategoryService(categoryRepo, cacheAdapter, cfg.Redis.CategoryTTL)
	questionSvc := service.NewQuestionService(questionRepo, categoryRepo, categorySvc, validator, cfg.Pagination.PageSize)
	quizSvc := service.NewQuizService(service.NewQuizSelector(questionRepo), validator)

	cfg.Server.RoutePrefix = "/api"
	integrationApp = NewApp(cfg.Server, Handlers{
		Category: handler.NewCategoryHandler(categorySvc, questionSvc),
		Question: handler.NewQuestionHandler(questionSvc),
		Quiz:     handler.NewQuizHandler(quizSvc),
		Index:    handler.NewIndexHandler("/api"),
		Health:   handler.NewHealthHandler(integrationDB, cacheAdapter),
	}, metrics.New())

	exitVal := m.Run()

	_ = integrationDB.Close()
	_ = logger.Sync()
	os.Exit(exitVal)
}

// resetDatabase drops everything and re-applies the schema and seed migrations.
func resetDatabase(t *testing.T) {
	t.Helper()
	require.NoError(t, database.RollbackMigrations(integrationDB.DB))
	require.NoError(t, database.RunMigrations(integrationDB.DB))
}

func TestIntegration_Pagination(t *testing.T) {
	resetDatabase(t)
	for i := 0; i < 5; i++ {
		status, _, _ := send(t, integrationApp, "POST", "/api/questions",
			fmt.Sprintf(`{"question": "History question %d", "answer": "A", "category": 4, "difficulty": 1}`, i), nil)
		require.Equal(t, 200, status)
	}

	status, raw, _ := send(t, integrationApp, "GET", "/api/questions?page=1", "", nil)
	require.Equal(t, 200, status)
	page1 := decodeBody[dto.QuestionPageResponse](t, raw)
	assert.Len(t, page1.Questions, 10)
	assert.Equal(t, 24, page1.TotalQuestions)
	assert.Len(t, page1.Categories, 6)

	status, raw, _ = send(t, integrationApp, "GET", "/api/questions?page=3", "", nil)
	require.Equal(t, 200, status)
	assert.Len(t, decodeBody[dto.QuestionPageResponse](t, raw).Questions, 4)

	status, _, _ = send(t, integrationApp, "GET", "/api/questions?page=4", "", nil)
	assert.Equal(t, 404, status)
}

func TestIntegration_SearchAndCategories(t *testing.T) {
	resetDatabase(t)

	status, raw, _ := send(t, integrationApp, "POST", "/api/questions", `{"searchTerm": "TITLE"}`, nil)
	require.Equal(t, 200, status)
	search := decodeBody[dto.SearchQuestionsResponse](t, raw)
	assert.Equal(t, 1, search.TotalQuestions)
	assert.Equal(t, "Maya Angelou", search.Questions[0].Answer)

	status, raw, _ = send(t, integrationApp, "POST", "/api/questions", `{"searchTerm": "100%"}`, nil)
	require.Equal(t, 200, status)
	assert.Zero(t, decodeBody[dto.SearchQuestionsResponse](t, raw).TotalQuestions)

	status, raw, _ = send(t, integrationApp, "GET", "/api/categories/2/questions", "", nil)
	require.Equal(t, 200, status)
	byCategory := decodeBody[dto.CategoryQuestionsResponse](t, raw)
	assert.Equal(t, 4, byCategory.TotalQuestions)
	for _, q := range byCategory.Questions {
		assert.Equal(t, int64(2), q.Category)
	}

	status, _, _ = send(t, integrationApp, "GET", "/api/categories/1000/questions", "", nil)
	assert.Equal(t, 404, status)
}

func TestIntegration_CreateAndDelete(t *testing.T) {
	resetDatabase(t)

	status, _, _ := send(t, integrationApp, "POST", "/api/questions", `{"question": "Q", "answer": "A", "category": 99}`, nil)
	assert.Equal(t, 422, status, "unknown category violates the foreign key")

	status, _, _ = send(t, integrationApp, "DELETE", "/api/questions/999999", "", nil)
	assert.Equal(t, 422, status)

	status, _, _ = send(t, integrationApp, "DELETE", "/api/questions/5", "", nil)
	assert.Equal(t, 200, status)
	status, _, _ = send(t, integrationApp, "DELETE", "/api/questions/5", "", nil)
	assert.Equal(t, 422, status)
}

func TestIntegration_QuizRound(t *testing.T) {
	resetDatabase(t)

	var previous []int64
	for {
		body, err := json.Marshal(dto.QuizRequest{
			PreviousQuestions: previous,
			QuizCategory:      &dto.QuizCategory{ID: func() *dto.FlexInt { id := dto.FlexInt(6); return &id }()},
		})
		require.NoError(t, err)

		status, raw, _ := send(t, integrationApp, "POST", "/api/quizzes", string(body), nil)
		require.Equal(t, 200, status)
		resp := decodeBody[dto.QuizResponse](t, raw)
		assert.Equal(t, 2, resp.TotalQuestions)
		if resp.Question == nil {
			break
		}
		assert.Equal(t, int64(6), resp.Question.Category)
		assert.NotContains(t, previous, resp.Question.ID)
		previous = append(previous, resp.Question.ID)
	}
	assert.Len(t, previous, 2)
}

func decodeBody[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}
