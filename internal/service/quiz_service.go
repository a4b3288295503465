package service

import (
	"context"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"
	"trivia-api/internal/validation"

	"go.uber.org/zap"
)

// QuizService serves quiz rounds one question at a time
type QuizService interface {
	NextQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error)
}

type quizService struct {
	selector  *QuizSelector
	validator *validation.Validator
}

// NewQuizService creates a new QuizService
func NewQuizService(selector *QuizSelector, validator *validation.Validator) QuizService {
	return &quizService{
		selector:  selector,
		validator: validator,
	}
}

// NextQuestion implements QuizService. A missing quiz_category is reported as not found.
func (s *quizService) NextQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	if errs := s.validator.ValidateQuizRequest(req); len(errs) > 0 {
		return nil, domain.NewError(domain.CodeNotFound, "quiz_category is required", errs)
	}

	previous := req.PreviousQuestions
	if previous == nil {
		previous = []int64{}
	}
	category := req.QuizCategory.Filter()

	question, total, err := s.selector.SelectNext(ctx, category, previous)
	if err != nil {
		logger.Get().Error("QuizService: failed to select next question",
			zap.Stringer("category", category), zap.Int("previousCount", len(previous)), zap.Error(err))
		return nil, domain.NewInternalError("failed to select next question", err)
	}

	resp := &dto.QuizResponse{
		Success:        true,
		Previous:       previous,
		TotalQuestions: total,
	}
	if question != nil {
		q := dto.NewQuestionResponse(question)
		resp.Question = &q
	}
	return resp, nil
}
