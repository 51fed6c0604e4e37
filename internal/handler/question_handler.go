package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/triviahub/trivia-api/internal/domain/entity"
	"github.com/triviahub/trivia-api/internal/handler/dto"
	apperrors "github.com/triviahub/trivia-api/internal/pkg/errors"
	"github.com/triviahub/trivia-api/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с банком вопросов
type QuestionHandler struct {
	questionService *service.QuestionService
	categoryService *service.CategoryService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(
	questionService *service.QuestionService,
	categoryService *service.CategoryService,
) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		categoryService: categoryService,
	}
}

// pageFromQuery извлекает номер страницы из query-параметра page.
// Отсутствующий параметр означает первую страницу; нечисловое значение —
// ошибка клиента.
func pageFromQuery(c *gin.Context) (int, error) {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid page %q", apperrors.ErrBadRequest, pageStr)
	}
	return page, nil
}

// GetQuestions возвращает страницу вопросов вместе с картой категорий
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	page, err := pageFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid page parameter"))
		return
	}

	questionPage, err := h.questionService.ListQuestions(page)
	if err != nil {
		h.handleError(c, err)
		return
	}

	// Карта категорий отдается вместе со списком — фронтенд строит по
	// ней фильтры без отдельного запроса
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuestionListResponse{
		Success:        true,
		Questions:      questionPage.Questions,
		TotalQuestions: questionPage.Total,
		Categories:     categories,
	})
}

// GetQuestionsByCategory возвращает страницу вопросов одной категории
func (h *QuestionHandler) GetQuestionsByCategory(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint) // Получаем из контекста

	page, err := pageFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid page parameter"))
		return
	}

	questionPage, err := h.questionService.ListQuestionsByCategory(categoryID, page)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoryQuestionsResponse{
		Success:         true,
		Questions:       questionPage.Questions,
		TotalQuestions:  questionPage.Total,
		CurrentCategory: categoryID,
	})
}

// CreateQuestionRequest представляет запрос на создание вопроса.
// Поля объявлены указателями, чтобы отличать отсутствующее поле (400)
// от присутствующего, но пустого (422 после валидации).
type CreateQuestionRequest struct {
	Question   *string      `json:"question"`
	Answer     *string      `json:"answer"`
	Category   *dto.FlexInt `json:"category"`
	Difficulty *dto.FlexInt `json:"difficulty"`
}

// CreateQuestion обрабатывает запрос на создание вопроса
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Malformed request body"))
		return
	}

	if req.Question == nil || req.Answer == nil || req.Category == nil || req.Difficulty == nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest,
			"Fields question, answer, category and difficulty are required"))
		return
	}

	if req.Category.Int() < 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid category id"))
		return
	}

	question := &entity.Question{
		Question:   *req.Question,
		Answer:     *req.Answer,
		CategoryID: uint(req.Category.Int()),
		Difficulty: req.Difficulty.Int(),
	}

	created, total, err := h.questionService.CreateQuestion(question)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreateQuestionResponse{
		Success:        true,
		Created:        created,
		TotalQuestions: total,
	})
}

// DeleteQuestion обрабатывает запрос на удаление вопроса
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint) // Получаем из контекста

	if err := h.questionService.DeleteQuestion(questionID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteQuestionResponse{
		Success: true,
		Deleted: questionID,
	})
}

// SearchQuestionsRequest представляет запрос текстового поиска.
// Указатель отличает отсутствующее поле от пустой строки: пустая строка
// разрешена и матчит все вопросы.
type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

// SearchQuestions обрабатывает поиск по подстроке текста вопроса
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Malformed request body"))
		return
	}

	if req.SearchTerm == nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Field searchTerm is required"))
		return
	}

	questions, err := h.questionService.SearchQuestions(*req.SearchTerm)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SearchResponse{
		Success:        true,
		Questions:      questions,
		TotalQuestions: int64(len(questions)),
	})
}

// handleError переводит ошибки сервисного слоя в HTTP статусы
func (h *QuestionHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Resource not found"))
	} else if errors.Is(err, apperrors.ErrBadRequest) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error()))
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, err.Error()))
	} else {
		log.Printf("[QuestionHandler] Internal server error: %v", err)
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Internal server error"))
	}
}
