package entity

import (
	"fmt"
	"strings"

	apperrors "github.com/triviahub/trivia-api/internal/pkg/errors"
)

// Question представляет вопрос викторины
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	CategoryID uint   `gorm:"column:category;not null;index" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// Normalize обрезает пробельные символы в тексте вопроса и ответа.
// Вызывается до Validate, чтобы "   " не проходил как непустой текст.
func (q *Question) Normalize() {
	q.Question = strings.TrimSpace(q.Question)
	q.Answer = strings.TrimSpace(q.Answer)
}

// Validate проверяет доменные инварианты вопроса.
// Текст вопроса и ответа обязаны быть непустыми; difficulty ожидается
// в диапазоне 1-5, но строго не валидируется.
func (q *Question) Validate() error {
	if q.Question == "" {
		return fmt.Errorf("%w: question text must not be empty", apperrors.ErrValidation)
	}
	if q.Answer == "" {
		return fmt.Errorf("%w: answer text must not be empty", apperrors.ErrValidation)
	}
	return nil
}
