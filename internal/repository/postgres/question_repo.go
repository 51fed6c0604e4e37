package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/triviahub/trivia-api/internal/domain/entity"
	apperrors "github.com/triviahub/trivia-api/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос; ID присваивается базой (serial)
func (r *QuestionRepo) Create(question *entity.Question) error {
	return r.db.Create(question).Error
}

// Delete удаляет вопрос по ID. Возвращает ErrNotFound, если записи нет.
func (r *QuestionRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.Question{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListPage возвращает страницу вопросов, упорядоченных по ID
func (r *QuestionRepo) ListPage(offset, limit int) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Order("id").Offset(offset).Limit(limit).Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// ListPageByCategory возвращает страницу вопросов указанной категории
func (r *QuestionRepo) ListPageByCategory(categoryID uint, offset, limit int) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("category = ?", categoryID).
		Order("id").Offset(offset).Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Count возвращает общее количество вопросов
func (r *QuestionRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Question{}).Count(&count).Error
	return count, err
}

// CountByCategory возвращает количество вопросов в категории
func (r *QuestionRepo) CountByCategory(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Question{}).
		Where("category = ?", categoryID).
		Count(&count).Error
	return count, err
}

// SearchByText возвращает все вопросы, текст которых содержит term.
// ILIKE делает поиск регистронезависимым; матчится только текст вопроса,
// не ответ. Пустой term матчит всё.
func (r *QuestionRepo) SearchByText(term string) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("question ILIKE ?", "%"+term+"%").
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// GetRandomUnseen возвращает равновероятно случайный вопрос, не входящий
// в excludeIDs. categoryID = 0 означает выбор по всем категориям.
// Если кандидатов не осталось, возвращает (nil, nil) — вызывающий
// трактует это как "вопросы закончились", а не как ошибку.
func (r *QuestionRepo) GetRandomUnseen(categoryID uint, excludeIDs []uint) (*entity.Question, error) {
	var question entity.Question

	query := r.db.Model(&entity.Question{})
	if categoryID != 0 {
		query = query.Where("category = ?", categoryID)
	}
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	err := query.Order("RANDOM()").First(&question).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// ListAll возвращает весь банк вопросов, упорядоченный по ID
func (r *QuestionRepo) ListAll() ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}
