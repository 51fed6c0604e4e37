package dto

import (
	"github.com/triviahub/trivia-api/internal/domain/entity"
)

// ErrorResponse — единый конверт ошибки: числовой код дублирует HTTP
// статус, message — человекочитаемое описание. Ни одна ошибка не
// покидает API в другом виде.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// NewErrorResponse создает конверт ошибки с заданным кодом и сообщением
func NewErrorResponse(code int, message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: code, Message: message}
}

// CategoriesResponse — ответ GET /categories
type CategoriesResponse struct {
	Success    bool            `json:"success"`
	Categories map[uint]string `json:"categories"`
}

// QuestionListResponse — ответ GET /questions: страница вопросов плюс
// полная карта категорий (фронтенд строит по ней фильтры)
type QuestionListResponse struct {
	Success        bool              `json:"success"`
	Questions      []entity.Question `json:"questions"`
	TotalQuestions int64             `json:"total_questions"`
	Categories     map[uint]string   `json:"categories"`
}

// CategoryQuestionsResponse — ответ GET /categories/:id/questions.
// Карта категорий здесь не возвращается, только текущая категория.
type CategoryQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []entity.Question `json:"questions"`
	TotalQuestions  int64             `json:"total_questions"`
	CurrentCategory uint              `json:"current_category"`
}

// SearchResponse — ответ POST /questions/search; total_questions равен
// количеству совпадений (выдача не пагинируется)
type SearchResponse struct {
	Success        bool              `json:"success"`
	Questions      []entity.Question `json:"questions"`
	TotalQuestions int64             `json:"total_questions"`
}

// CreateQuestionResponse — ответ POST /questions
type CreateQuestionResponse struct {
	Success        bool  `json:"success"`
	Created        uint  `json:"created"`
	TotalQuestions int64 `json:"total_questions"`
}

// DeleteQuestionResponse — ответ DELETE /questions/:id
type DeleteQuestionResponse struct {
	Success bool `json:"success"`
	Deleted uint `json:"deleted"`
}

// QuizResponse — ответ POST /quizzes. Question отсутствует в JSON,
// когда непоказанных вопросов не осталось: так клиент понимает, что
// викторина завершена.
type QuizResponse struct {
	Success  bool             `json:"success"`
	Question *entity.Question `json:"question,omitempty"`
}
