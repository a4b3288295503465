package domain

import (
	"fmt"
	"strings"
)

// DefaultDifficulty is used when a question is created without a difficulty.
const DefaultDifficulty = 1

// Category is a read-only trivia category. Type is its display label.
type Category struct {
	ID   int64
	Type string
}

// Question is a trivia question belonging to one category.
type Question struct {
	ID         int64
	Question   string
	Answer     string
	CategoryID int64
	Difficulty int
}

// NewQuestion creates a new Question instance
func NewQuestion(question, answer string, categoryID int64, difficulty int) *Question {
	if difficulty == 0 {
		difficulty = DefaultDifficulty
	}
	return &Question{
		Question:   question,
		Answer:     answer,
		CategoryID: categoryID,
		Difficulty: difficulty,
	}
}

// Validate validates the question
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return NewValidationError("question is required")
	}
	if strings.TrimSpace(q.Answer) == "" {
		return NewValidationError("answer is required")
	}
	return nil
}

// CategoryFilter restricts a query either to all categories or to one specific category.
// The zero value means all categories.
type CategoryFilter struct {
	id       int64
	specific bool
}

// AllCategories matches questions in every category.
func AllCategories() CategoryFilter {
	return CategoryFilter{}
}

// SpecificCategory matches questions in the category with the given id.
func SpecificCategory(id int64) CategoryFilter {
	return CategoryFilter{id: id, specific: true}
}

// IsAll reports whether the filter spans every category.
func (f CategoryFilter) IsAll() bool {
	return !f.specific
}

// CategoryID returns the category id and true for a specific filter.
func (f CategoryFilter) CategoryID() (int64, bool) {
	return f.id, f.specific
}

func (f CategoryFilter) String() string {
	if f.IsAll() {
		return "all"
	}
	return fmt.Sprintf("category:%d", f.id)
}

// QuestionFilter describes which questions a store query returns.
// Results are always ordered by ascending id.
type QuestionFilter struct {
	Category CategoryFilter
	// SearchTerm nil means no text predicate. A non-nil empty term matches every question.
	SearchTerm *string
	ExcludeIDs []int64
}
