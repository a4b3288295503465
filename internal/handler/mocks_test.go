package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"trivia-api/internal/dto"
	"trivia-api/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

// MockCategoryService
type MockCategoryService struct {
	GetCategoriesFunc  func(ctx context.Context) (*dto.CategoriesResponse, error)
	GetCategoryMapFunc func(ctx context.Context) (map[int64]string, error)
}

func (m *MockCategoryService) GetCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	if m.GetCategoriesFunc != nil {
		return m.GetCategoriesFunc(ctx)
	}
	panic("MockCategoryService.GetCategoriesFunc not implemented")
}
func (m *MockCategoryService) GetCategoryMap(ctx context.Context) (map[int64]string, error) {
	if m.GetCategoryMapFunc != nil {
		return m.GetCategoryMapFunc(ctx)
	}
	panic("MockCategoryService.GetCategoryMapFunc not implemented")
}

// MockQuestionService
type MockQuestionService struct {
	ListQuestionsFunc           func(ctx context.Context, page int) (*dto.QuestionPageResponse, error)
	SearchQuestionsFunc         func(ctx context.Context, term string) (*dto.SearchQuestionsResponse, error)
	ListQuestionsByCategoryFunc func(ctx context.Context, categoryID int64) (*dto.CategoryQuestionsResponse, error)
	CreateQuestionFunc          func(ctx context.Context, req *dto.QuestionsRequest) (*dto.SuccessResponse, error)
	DeleteQuestionFunc          func(ctx context.Context, id int64) (*dto.SuccessResponse, error)
}

func (m *MockQuestionService) ListQuestions(ctx context.Context, page int) (*dto.QuestionPageResponse, error) {
	if m.ListQuestionsFunc != nil {
		return m.ListQuestionsFunc(ctx, page)
	}
	panic("MockQuestionService.ListQuestionsFunc not implemented")
}
func (m *MockQuestionService) SearchQuestions(ctx context.Context, term string) (*dto.SearchQuestionsResponse, error) {
	if m.SearchQuestionsFunc != nil {
		return m.SearchQuestionsFunc(ctx, term)
	}
	panic("MockQuestionService.SearchQuestionsFunc not implemented")
}
func (m *MockQuestionService) ListQuestionsByCategory(ctx context.Context, categoryID int64) (*dto.CategoryQuestionsResponse, error) {
	if m.ListQuestionsByCategoryFunc != nil {
		return m.ListQuestionsByCategoryFunc(ctx, categoryID)
	}
	panic("MockQuestionService.ListQuestionsByCategoryFunc not implemented")
}
func (m *MockQuestionService) CreateQuestion(ctx context.Context, req *dto.QuestionsRequest) (*dto.SuccessResponse, error) {
	if m.CreateQuestionFunc != nil {
		return m.CreateQuestionFunc(ctx, req)
	}
	panic("MockQuestionService.CreateQuestionFunc not implemented")
}
func (m *MockQuestionService) DeleteQuestion(ctx context.Context, id int64) (*dto.SuccessResponse, error) {
	if m.DeleteQuestionFunc != nil {
		return m.DeleteQuestionFunc(ctx, id)
	}
	panic("MockQuestionService.DeleteQuestionFunc not implemented")
}

// MockQuizService
type MockQuizService struct {
	NextQuestionFunc func(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error)
}

func (m *MockQuizService) NextQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	if m.NextQuestionFunc != nil {
		return m.NextQuestionFunc(ctx, req)
	}
	panic("MockQuizService.NextQuestionFunc not implemented")
}

// MockPinger
type MockPinger struct {
	Err error
}

func (m *MockPinger) PingContext(ctx context.Context) error { return m.Err }

// MockCache
type MockCache struct {
	PingErr error
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) { return "", nil }
func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return nil
}
func (m *MockCache) Ping(ctx context.Context) error { return m.PingErr }

// --- Helpers ---

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, []byte) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}
