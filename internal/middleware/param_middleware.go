package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/triviahub/trivia-api/internal/handler/dto"
)

// ExtractUintParam создает middleware для извлечения и валидации числового
// параметра URL. paramName — имя параметра в маршруте (например, "id"),
// contextKey — ключ, под которым значение сохраняется в контексте Gin.
// Нечисловой параметр сразу даёт 400, до вызова обработчика.
func ExtractUintParam(paramName, contextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param(paramName)
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest,
				fmt.Sprintf("Invalid %s", paramName)))
			c.Abort()
			return
		}
		// Сохраняем как uint для единообразия
		c.Set(contextKey, uint(id))
		c.Next()
	}
}
