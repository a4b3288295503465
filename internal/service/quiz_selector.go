package service

import (
	"context"
	"fmt"
	"math/rand"

	"trivia-api/internal/domain"
)

// DefaultRoundSize is the number of questions in a quiz round.
const DefaultRoundSize = 5

// QuizSelector picks the next quiz question of a round. It keeps no state between calls:
// the client sends every question id it has already been shown.
type QuizSelector struct {
	repo      domain.QuestionRepository
	roundSize int
	intn      func(n int) int
}

// QuizSelectorOption configures a QuizSelector.
type QuizSelectorOption func(*QuizSelector)

// WithRandomSource replaces the uniform random index generator.
func WithRandomSource(intn func(n int) int) QuizSelectorOption {
	return func(s *QuizSelector) {
		s.intn = intn
	}
}

// NewQuizSelector creates a new QuizSelector
func NewQuizSelector(repo domain.QuestionRepository, opts ...QuizSelectorOption) *QuizSelector {
	s := &QuizSelector{
		repo:      repo,
		roundSize: DefaultRoundSize,
		intn:      rand.Intn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SelectNext returns a random question of the category that is not in previous, together with
// the round size. The question is nil when every eligible question has been asked.
func (s *QuizSelector) SelectNext(ctx context.Context, category domain.CategoryFilter, previous []int64) (*domain.Question, int, error) {
	roundSize, err := s.RoundSize(ctx, category)
	if err != nil {
		return nil, 0, err
	}

	pool, err := s.repo.FindQuestions(ctx, domain.QuestionFilter{
		Category:   category,
		ExcludeIDs: previous,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load candidate questions: %w", err)
	}

	if len(pool) == 0 {
		return nil, roundSize, nil
	}
	return pool[s.intn(len(pool))], roundSize, nil
}

// RoundSize is fixed for all categories and capped by the category's total question count
// (asked or not) for a specific one.
func (s *QuizSelector) RoundSize(ctx context.Context, category domain.CategoryFilter) (int, error) {
	if category.IsAll() {
		return s.roundSize, nil
	}

	total, err := s.repo.CountQuestions(ctx, domain.QuestionFilter{Category: category})
	if err != nil {
		return 0, fmt.Errorf("failed to count questions for %s: %w", category, err)
	}
	return min(s.roundSize, total), nil
}
