package domain

import "context"

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// GetAllCategories returns all categories ordered by id
	GetAllCategories(ctx context.Context) ([]*Category, error)

	// GetCategoryByID returns nil, nil when the category does not exist
	GetCategoryByID(ctx context.Context, id int64) (*Category, error)
}

// QuestionRepository defines the interface for question persistence
type QuestionRepository interface {
	// FindQuestions returns the questions matching filter ordered by ascending id
	FindQuestions(ctx context.Context, filter QuestionFilter) ([]*Question, error)

	CountQuestions(ctx context.Context, filter QuestionFilter) (int, error)

	// SaveQuestion inserts the question and sets its ID
	SaveQuestion(ctx context.Context, question *Question) error

	// DeleteQuestion returns ErrQuestionNotFound when no row was deleted
	DeleteQuestion(ctx context.Context, id int64) error
}
