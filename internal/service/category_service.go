package service

import (
	"fmt"

	"github.com/triviahub/trivia-api/internal/domain/repository"
	apperrors "github.com/triviahub/trivia-api/internal/pkg/errors"
)

// CategoryService предоставляет операции над категориями
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService создает новый сервис категорий
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// ListCategories возвращает отображение ID категории -> отображаемое имя.
// Клиенты индексируются по ID, порядок не является частью контракта.
// Пустая таблица категорий трактуется как "не найдено" (поведение
// исходного API).
func (s *CategoryService) ListCategories() (map[uint]string, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	if len(categories) == 0 {
		return nil, apperrors.ErrNotFound
	}

	result := make(map[uint]string, len(categories))
	for _, category := range categories {
		result[category.ID] = category.Type
	}
	return result, nil
}
