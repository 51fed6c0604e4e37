package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/triviahub/trivia-api/internal/handler/dto"
	apperrors "github.com/triviahub/trivia-api/internal/pkg/errors"
	"github.com/triviahub/trivia-api/internal/service"
)

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// GetCategories возвращает карту всех категорий (id -> имя)
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoriesResponse{
		Success:    true,
		Categories: categories,
	})
}

// handleError переводит ошибки сервисного слоя в HTTP статусы
func (h *CategoryHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Resource not found"))
		return
	}
	log.Printf("[CategoryHandler] Internal server error: %v", err)
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Internal server error"))
}
