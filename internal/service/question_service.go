package service

import (
	"context"
	"errors"
	"strings"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"
	"trivia-api/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// QuestionService defines the question listing, search and mutation operations
type QuestionService interface {
	ListQuestions(ctx context.Context, page int) (*dto.QuestionPageResponse, error)
	SearchQuestions(ctx context.Context, term string) (*dto.SearchQuestionsResponse, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int64) (*dto.CategoryQuestionsResponse, error)
	CreateQuestion(ctx context.Context, req *dto.QuestionsRequest) (*dto.SuccessResponse, error)
	DeleteQuestion(ctx context.Context, id int64) (*dto.SuccessResponse, error)
}

type questionService struct {
	questions  domain.QuestionRepository
	categories domain.CategoryRepository
	categorySv CategoryService
	validator  *validation.Validator
	pageSize   int
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(
	questions domain.QuestionRepository,
	categories domain.CategoryRepository,
	categorySvc CategoryService,
	validator *validation.Validator,
	pageSize int,
) QuestionService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &questionService{
		questions:  questions,
		categories: categories,
		categorySv: categorySvc,
		validator:  validator,
		pageSize:   pageSize,
	}
}

// ListQuestions implements QuestionService
func (s *questionService) ListQuestions(ctx context.Context, page int) (*dto.QuestionPageResponse, error) {
	var (
		all        []*domain.Question
		categories map[int64]string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		all, err = s.questions.FindQuestions(gctx, domain.QuestionFilter{Category: domain.AllCategories()})
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categorySv.GetCategoryMap(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Get().Error("QuestionService: failed to load question page", zap.Int("page", page), zap.Error(err))
		return nil, domain.NewInternalError("failed to load questions", err)
	}

	current := Paginate(all, page, s.pageSize)
	if len(current) == 0 {
		return nil, domain.NewNotFoundError("no questions on this page")
	}

	return &dto.QuestionPageResponse{
		Success:         true,
		Questions:       dto.NewQuestionResponses(current),
		TotalQuestions:  len(all),
		Categories:      categories,
		CurrentCategory: "",
	}, nil
}

// SearchQuestions implements QuestionService. An empty term matches every question.
func (s *questionService) SearchQuestions(ctx context.Context, term string) (*dto.SearchQuestionsResponse, error) {
	matches, err := s.questions.FindQuestions(ctx, domain.QuestionFilter{
		Category:   domain.AllCategories(),
		SearchTerm: &term,
	})
	if err != nil {
		logger.Get().Error("QuestionService: search failed", zap.String("searchTerm", term), zap.Error(err))
		return nil, domain.NewUnprocessableError("failed to search questions", err)
	}

	current := ""
	if term != "" {
		current = "All"
	}

	return &dto.SearchQuestionsResponse{
		Success:         true,
		Questions:       dto.NewQuestionResponses(matches),
		TotalQuestions:  len(matches),
		CurrentCategory: current,
	}, nil
}

// ListQuestionsByCategory implements QuestionService
func (s *questionService) ListQuestionsByCategory(ctx context.Context, categoryID int64) (*dto.CategoryQuestionsResponse, error) {
	category, err := s.categories.GetCategoryByID(ctx, categoryID)
	if err != nil {
		logger.Get().Error("QuestionService: failed to load category", zap.Int64("categoryID", categoryID), zap.Error(err))
		return nil, domain.NewInternalError("failed to load category", err)
	}
	if category == nil {
		return nil, domain.NewNotFoundError("category not found")
	}

	questions, err := s.questions.FindQuestions(ctx, domain.QuestionFilter{
		Category: domain.SpecificCategory(categoryID),
	})
	if err != nil {
		logger.Get().Error("QuestionService: failed to load category questions", zap.Int64("categoryID", categoryID), zap.Error(err))
		return nil, domain.NewInternalError("failed to load questions", err)
	}

	return &dto.CategoryQuestionsResponse{
		Success:         true,
		TotalQuestions:  len(questions),
		CurrentCategory: categoryID,
		Questions:       dto.NewQuestionResponses(questions),
	}, nil
}

// CreateQuestion implements QuestionService
func (s *questionService) CreateQuestion(ctx context.Context, req *dto.QuestionsRequest) (*dto.SuccessResponse, error) {
	if errs := s.validator.ValidateCreateQuestion(req); len(errs) > 0 {
		return nil, errs
	}

	difficulty := 0
	if req.Difficulty != nil {
		difficulty = int(*req.Difficulty)
	}
	question := domain.NewQuestion(
		strings.TrimSpace(*req.Question),
		strings.TrimSpace(*req.Answer),
		int64(*req.Category),
		difficulty,
	)

	if err := s.questions.SaveQuestion(ctx, question); err != nil {
		logger.Get().Error("QuestionService: failed to save question",
			zap.Int64("categoryID", question.CategoryID), zap.Error(err))
		return nil, domain.NewUnprocessableError("failed to create question", err)
	}

	logger.Get().Info("Question created",
		zap.Int64("questionID", question.ID), zap.Int64("categoryID", question.CategoryID))
	return &dto.SuccessResponse{Success: true}, nil
}

// DeleteQuestion implements QuestionService
func (s *questionService) DeleteQuestion(ctx context.Context, id int64) (*dto.SuccessResponse, error) {
	if err := s.questions.DeleteQuestion(ctx, id); err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return nil, domain.NewUnprocessableError("question not found", err)
		}
		logger.Get().Error("QuestionService: failed to delete question", zap.Int64("questionID", id), zap.Error(err))
		return nil, domain.NewUnprocessableError("failed to delete question", err)
	}

	logger.Get().Info("Question deleted", zap.Int64("questionID", id))
	return &dto.SuccessResponse{Success: true}, nil
}
