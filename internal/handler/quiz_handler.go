package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/triviahub/trivia-api/internal/handler/dto"
	"github.com/triviahub/trivia-api/internal/service"
)

// QuizHandler обрабатывает запросы игры в викторину
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// QuizCategoryPayload — категория, выбранная игроком.
// ID = 0 означает "все категории".
type QuizCategoryPayload struct {
	ID   dto.FlexInt `json:"id"`
	Type string      `json:"type"`
}

// NextQuestionRequest представляет запрос следующего вопроса викторины.
// previous_questions — ID уже показанных в этой сессии вопросов; история
// живёт только на клиенте и присылается с каждым запросом.
type NextQuestionRequest struct {
	PreviousQuestions *[]uint              `json:"previous_questions"`
	QuizCategory      *QuizCategoryPayload `json:"quiz_category"`
}

// NextQuestion возвращает случайный непоказанный вопрос категории
// либо успешный ответ без вопроса, когда вопросы исчерпаны
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req NextQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Malformed request body"))
		return
	}

	if req.QuizCategory == nil || req.PreviousQuestions == nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest,
			"Fields quiz_category and previous_questions are required"))
		return
	}

	if req.QuizCategory.ID.Int() < 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid quiz_category id"))
		return
	}

	question, err := h.quizService.NextQuestion(uint(req.QuizCategory.ID.Int()), *req.PreviousQuestions)
	if err != nil {
		log.Printf("[QuizHandler] Internal server error: %v", err)
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Internal server error"))
		return
	}

	// question == nil — непоказанных вопросов не осталось; поле question
	// опускается, success остаётся true
	c.JSON(http.StatusOK, dto.QuizResponse{
		Success:  true,
		Question: question,
	})
}
