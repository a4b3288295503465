package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"trivia-api/internal/cache"
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
)

var categoryMapCacheKey = cache.CategoryMapKey()

// CategoryService defines the category read operations
type CategoryService interface {
	GetCategories(ctx context.Context) (*dto.CategoriesResponse, error)
	// GetCategoryMap returns category id -> display label
	GetCategoryMap(ctx context.Context) (map[int64]string, error)
}

type categoryService struct {
	repo  domain.CategoryRepository
	cache domain.Cache
	ttl   time.Duration
}

// NewCategoryService creates a new CategoryService. cache may be nil.
func NewCategoryService(repo domain.CategoryRepository, cache domain.Cache, ttl time.Duration) CategoryService {
	return &categoryService{
		repo:  repo,
		cache: cache,
		ttl:   ttl,
	}
}

// GetCategories implements CategoryService
func (s *categoryService) GetCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	categories, err := s.GetCategoryMap(ctx)
	if err != nil {
		return nil, domain.NewError(domain.CodeNotFound, "failed to load categories", err)
	}
	return &dto.CategoriesResponse{
		Success:    true,
		Categories: categories,
	}, nil
}

// GetCategoryMap implements CategoryService
func (s *categoryService) GetCategoryMap(ctx context.Context) (map[int64]string, error) {
	if cached, ok := s.cachedCategoryMap(ctx); ok {
		return cached, nil
	}

	categories, err := s.repo.GetAllCategories(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[int64]string, len(categories))
	for _, c := range categories {
		result[c.ID] = c.Type
	}

	s.storeCategoryMap(ctx, result)
	return result, nil
}

func (s *categoryService) cachedCategoryMap(ctx context.Context) (map[int64]string, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, categoryMapCacheKey)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("CategoryService: cache read failed, falling back to database",
				zap.String("key", categoryMapCacheKey), zap.Error(err))
		}
		return nil, false
	}

	var categories map[int64]string
	if err := json.Unmarshal([]byte(raw), &categories); err != nil {
		logger.Get().Warn("CategoryService: discarding malformed cache entry",
			zap.String("key", categoryMapCacheKey), zap.Error(err))
		return nil, false
	}
	return categories, true
}

func (s *categoryService) storeCategoryMap(ctx context.Context, categories map[int64]string) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(categories)
	if err != nil {
		logger.Get().Warn("CategoryService: failed to encode categories for cache", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, categoryMapCacheKey, string(raw), s.ttl); err != nil {
		logger.Get().Warn("CategoryService: cache write failed",
			zap.String("key", categoryMapCacheKey), zap.Error(err))
	}
}
