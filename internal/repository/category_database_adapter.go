package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// CategoryDatabaseAdapter implements domain.CategoryRepository using sqlx.
type CategoryDatabaseAdapter struct {
	db Querier
}

// NewCategoryDatabaseAdapter creates a new instance of CategoryDatabaseAdapter
func NewCategoryDatabaseAdapter(db *sqlx.DB) domain.CategoryRepository {
	return &CategoryDatabaseAdapter{db: db}
}

// GetAllCategories returns all categories
func (r *CategoryDatabaseAdapter) GetAllCategories(ctx context.Context) ([]*domain.Category, error) {
	var categories []models.Category
	query := "SELECT id, type FROM categories ORDER BY id"
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*domain.Category{}, nil
		}
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	domainCategories := make([]*domain.Category, len(categories))
	for i := range categories {
		domainCategories[i] = toDomainCategory(&categories[i])
	}
	return domainCategories, nil
}

// GetCategoryByID returns the category or nil when it does not exist
func (r *CategoryDatabaseAdapter) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	var category models.Category
	query := r.db.Rebind("SELECT id, type FROM categories WHERE id = ?")
	if err := r.db.GetContext(ctx, &category, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category %d: %w", id, err)
	}
	return toDomainCategory(&category), nil
}

func toDomainCategory(category *models.Category) *domain.Category {
	return &domain.Category{
		ID:   category.ID,
		Type: category.Type,
	}
}
