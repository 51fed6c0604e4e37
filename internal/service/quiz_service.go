package service

import (
	"fmt"

	"github.com/triviahub/trivia-api/internal/domain/entity"
	"github.com/triviahub/trivia-api/internal/domain/repository"
)

// AllCategories — сентинельное значение "все категории" для выбора
// вопроса викторины
const AllCategories uint = 0

// QuizService выбирает следующий вопрос викторины.
// Сервис полностью stateless: история показанных вопросов живёт на
// клиенте и передаётся в каждом запросе; сервер её не хранит и не
// проверяет сверх использования как фильтра текущего вызова.
type QuizService struct {
	questionRepo repository.QuestionRepository
}

// NewQuizService создает новый сервис викторины
func NewQuizService(questionRepo repository.QuestionRepository) *QuizService {
	return &QuizService{questionRepo: questionRepo}
}

// NextQuestion возвращает равновероятно случайный вопрос в рамках
// категории (AllCategories = без фильтра), не входящий в previousIDs.
// Если непоказанных вопросов не осталось, возвращает (nil, nil) —
// викторина для этой категории завершена.
func (s *QuizService) NextQuestion(categoryID uint, previousIDs []uint) (*entity.Question, error) {
	question, err := s.questionRepo.GetRandomUnseen(categoryID, previousIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to pick quiz question: %w", err)
	}
	return question, nil
}
