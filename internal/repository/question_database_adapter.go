package repository

import (
	"context"
	"fmt"
	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx.
type QuestionDatabaseAdapter struct {
	db Querier
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

// FindQuestions implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) FindQuestions(ctx context.Context, filter domain.QuestionFilter) ([]*domain.Question, error) {
	where, args, err := buildQuestionWhere(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to build question query: %w", err)
	}

	query := a.db.Rebind("SELECT " + questionColumns + " FROM questions" + where + " ORDER BY id")

	var rows []models.Question
	if err := a.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find questions (%s): %w", filter.Category, err)
	}

	questions := make([]*domain.Question, len(rows))
	for i := range rows {
		questions[i] = toDomainQuestion(&rows[i])
	}
	return questions, nil
}

// CountQuestions implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) CountQuestions(ctx context.Context, filter domain.QuestionFilter) (int, error) {
	where, args, err := buildQuestionWhere(filter)
	if err != nil {
		return 0, fmt.Errorf("failed to build question count query: %w", err)
	}

	var count int
	query := a.db.Rebind("SELECT COUNT(*) FROM questions" + where)
	if err := a.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count questions (%s): %w", filter.Category, err)
	}
	return count, nil
}

// SaveQuestion implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) SaveQuestion(ctx context.Context, question *domain.Question) error {
	if question == nil {
		return fmt.Errorf("cannot save nil question")
	}
	if err := question.Validate(); err != nil {
		return fmt.Errorf("cannot save question: %w", err)
	}
	row := toModelQuestion(question)

	query := a.db.Rebind(`INSERT INTO questions (question, answer, category, difficulty)
		VALUES (?, ?, ?, ?) RETURNING id`)

	var id int64
	if err := a.db.GetContext(ctx, &id, query, row.Question, row.Answer, row.Category, row.Difficulty); err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}

	question.ID = id
	return nil
}

// DeleteQuestion implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) DeleteQuestion(ctx context.Context, id int64) error {
	query := a.db.Rebind("DELETE FROM questions WHERE id = ?")
	result, err := a.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete question %d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

func toDomainQuestion(q *models.Question) *domain.Question {
	return &domain.Question{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		CategoryID: q.Category,
		Difficulty: q.Difficulty,
	}
}

func toModelQuestion(q *domain.Question) *models.Question {
	return &models.Question{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.CategoryID,
		Difficulty: q.Difficulty,
	}
}
