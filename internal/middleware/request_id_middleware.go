package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader — заголовок, в котором передается идентификатор запроса
const RequestIDHeader = "X-Request-ID"

// RequestID создает middleware, присваивающее каждому запросу
// идентификатор. Переданный клиентом X-Request-ID сохраняется,
// иначе генерируется новый UUID. Идентификатор кладется в контекст
// и возвращается в заголовке ответа.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set("requestID", requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Next()
	}
}
