package handler_test

import (
	"context"
	"testing"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/handler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizHandler_NextQuestion(t *testing.T) {
	var got *dto.QuizRequest
	h := handler.NewQuizHandler(&MockQuizService{
		NextQuestionFunc: func(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
			got = req
			if req.QuizCategory == nil {
				return nil, domain.NewNotFoundError("quiz_category is required")
			}
			if int64(*req.QuizCategory.ID) == 2 {
				return &dto.QuizResponse{Success: true, Previous: req.PreviousQuestions, TotalQuestions: 3}, nil
			}
			return &dto.QuizResponse{
				Success:        true,
				Question:       &dto.QuestionResponse{ID: 7, Question: "Q", Answer: "A", Category: 1, Difficulty: 1},
				Previous:       req.PreviousQuestions,
				TotalQuestions: 5,
			}, nil
		},
	})
	app := newTestApp()
	app.Post("/quizzes", h.NextQuestion)

	t.Run("next question", func(t *testing.T) {
		status, raw := doRequest(t, app, "POST", "/quizzes",
			`{"previous_questions": [1, 3], "quiz_category": {"type": "click", "id": 0}}`)

		require.Equal(t, 200, status)
		assert.Equal(t, []int64{1, 3}, got.PreviousQuestions)
		assert.True(t, got.QuizCategory.Filter().IsAll())
		resp := decode[dto.QuizResponse](t, raw)
		require.NotNil(t, resp.Question)
		assert.Equal(t, int64(7), resp.Question.ID)
		assert.Equal(t, 5, resp.TotalQuestions)
	})

	t.Run("exhausted round has a null question", func(t *testing.T) {
		status, raw := doRequest(t, app, "POST", "/quizzes",
			`{"previous_questions": [4, 5, 6], "quiz_category": {"type": "Art", "id": "2"}}`)

		require.Equal(t, 200, status)
		assert.JSONEq(t, `{"success":true,"question":null,"previous":[4,5,6],"total_questions":3}`, string(raw))
	})

	t.Run("missing quiz category", func(t *testing.T) {
		status, raw := doRequest(t, app, "POST", "/quizzes", `{"previous_questions": []}`)

		assert.Equal(t, 404, status)
		assert.JSONEq(t, `{"success":false,"message":"resource not found","error":404}`, string(raw))
	})

	t.Run("empty body", func(t *testing.T) {
		status, _ := doRequest(t, app, "POST", "/quizzes", nil)
		assert.Equal(t, 404, status)
	})

	t.Run("invalid previous questions", func(t *testing.T) {
		status, _ := doRequest(t, app, "POST", "/quizzes", `{"previous_questions": ["a"], "quiz_category": {"id": 1}}`)
		assert.Equal(t, 400, status)
	})
}
