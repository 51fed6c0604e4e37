package repository

import (
	"github.com/triviahub/trivia-api/internal/domain/entity"
)

// CategoryRepository определяет методы для работы с категориями
type CategoryRepository interface {
	// GetAll возвращает все категории, упорядоченные по ID
	GetAll() ([]entity.Category, error)
	// GetByID возвращает категорию по ID
	GetByID(id uint) (*entity.Category, error)
}
