package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PeterSoManLung/FindDinning-sub001/internal/logger"
)

// Recovery returns a middleware that converts panics into a generic JSON
// 500 response. No partial result ever reaches the client.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("panic recovered",
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"error", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}
