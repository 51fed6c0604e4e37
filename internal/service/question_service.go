package service

import (
	"fmt"

	"github.com/triviahub/trivia-api/internal/domain/entity"
	"github.com/triviahub/trivia-api/internal/domain/repository"
	apperrors "github.com/triviahub/trivia-api/internal/pkg/errors"
)

// QuestionsPerPage — фиксированный размер страницы для постраничных выборок
const QuestionsPerPage = 10

// QuestionPage представляет одну страницу вопросов вместе с общим
// количеством записей в выборке (для total_questions в ответе)
type QuestionPage struct {
	Questions []entity.Question
	Total     int64
}

// QuestionService предоставляет операции над банком вопросов
type QuestionService struct {
	questionRepo repository.QuestionRepository
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(questionRepo repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

// ListQuestions возвращает страницу вопросов, упорядоченных по ID.
// page нумеруется с 1; страница за пределами данных даёт ErrNotFound —
// запрос несуществующей страницы считается ошибкой клиента.
func (s *QuestionService) ListQuestions(page int) (*QuestionPage, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: page must be a positive integer", apperrors.ErrBadRequest)
	}

	offset := (page - 1) * QuestionsPerPage
	questions, err := s.questionRepo.ListPage(offset, QuestionsPerPage)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: page %d is out of range", apperrors.ErrNotFound, page)
	}

	total, err := s.questionRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}

	return &QuestionPage{Questions: questions, Total: total}, nil
}

// ListQuestionsByCategory возвращает страницу вопросов одной категории.
// Контракт пагинации тот же, что и у ListQuestions; Total — количество
// вопросов в категории, а не во всём банке.
func (s *QuestionService) ListQuestionsByCategory(categoryID uint, page int) (*QuestionPage, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: page must be a positive integer", apperrors.ErrBadRequest)
	}

	offset := (page - 1) * QuestionsPerPage
	questions, err := s.questionRepo.ListPageByCategory(categoryID, offset, QuestionsPerPage)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions for category %d: %w", categoryID, err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: page %d is out of range for category %d", apperrors.ErrNotFound, page, categoryID)
	}

	total, err := s.questionRepo.CountByCategory(categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions for category %d: %w", categoryID, err)
	}

	return &QuestionPage{Questions: questions, Total: total}, nil
}

// SearchQuestions возвращает все вопросы, текст которых содержит term
// (без учёта регистра), без пагинации. Ноль совпадений — не ошибка,
// а успешный пустой список.
func (s *QuestionService) SearchQuestions(term string) ([]entity.Question, error) {
	questions, err := s.questionRepo.SearchByText(term)
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	return questions, nil
}

// CreateQuestion валидирует и сохраняет новый вопрос.
// Возвращает присвоенный ID и обновлённое общее количество вопросов.
func (s *QuestionService) CreateQuestion(question *entity.Question) (uint, int64, error) {
	question.Normalize()
	if err := question.Validate(); err != nil {
		return 0, 0, err
	}

	if err := s.questionRepo.Create(question); err != nil {
		return 0, 0, fmt.Errorf("failed to create question: %w", err)
	}

	total, err := s.questionRepo.Count()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count questions: %w", err)
	}

	return question.ID, total, nil
}

// DeleteQuestion удаляет вопрос по ID (жёсткое удаление, ID не
// переиспользуется). Несуществующий ID даёт ErrNotFound.
func (s *QuestionService) DeleteQuestion(id uint) error {
	if err := s.questionRepo.Delete(id); err != nil {
		return err
	}
	return nil
}

// ListAllQuestions возвращает весь банк вопросов (для экспорта)
func (s *QuestionService) ListAllQuestions() ([]entity.Question, error) {
	questions, err := s.questionRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list all questions: %w", err)
	}
	return questions, nil
}
