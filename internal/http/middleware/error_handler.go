package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pixelhunt/design-backend/internal/logger"
	"github.com/pixelhunt/design-backend/internal/pkg/apperror"
)

// ErrorHandler обрабатывает ошибки централизованно. Коды и статусы берутся
// из AppError, внутренние ошибки маскируются общим сообщением.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		if logger.Log != nil {
			logger.Log.WithFields(logrus.Fields{
				"error":  err.Error(),
				"path":   c.Request.URL.Path,
				"method": c.Request.Method,
			}).Error("Request error")
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status := appErr.HTTPStatus
			message := appErr.Message

			// Причину внутренних ошибок клиенту не раскрываем
			if status >= http.StatusInternalServerError {
				message = "внутренняя ошибка сервера"
			}

			c.JSON(status, gin.H{"error": message, "code": string(appErr.Code)})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "внутренняя ошибка сервера"})
	}
}
