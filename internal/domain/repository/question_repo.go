package repository

import (
	"github.com/triviahub/trivia-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	Create(question *entity.Question) error
	Delete(id uint) error

	// Постраничное чтение: limit/offset, сортировка по ID
	ListPage(offset, limit int) ([]entity.Question, error)
	ListPageByCategory(categoryID uint, offset, limit int) ([]entity.Question, error)
	Count() (int64, error)
	CountByCategory(categoryID uint) (int64, error)

	// SearchByText возвращает все вопросы, текст которых содержит term
	// (без учёта регистра). Пустой term матчит всё.
	SearchByText(term string) ([]entity.Question, error)

	// GetRandomUnseen возвращает равновероятно случайный вопрос в рамках
	// категории (categoryID = 0 означает все категории), исключая excludeIDs.
	// Если кандидатов не осталось, возвращает (nil, nil).
	GetRandomUnseen(categoryID uint, excludeIDs []uint) (*entity.Question, error)

	// ListAll возвращает весь банк вопросов, упорядоченный по ID
	// (используется экспортом)
	ListAll() ([]entity.Question, error)
}
