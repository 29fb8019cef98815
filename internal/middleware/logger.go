package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RequestLogger пишет каждый запрос в logrus вместо стандартного логгера gin
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		entry := log.WithFields(log.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"query":    c.Request.URL.RawQuery,
			"status":   status,
			"duration": time.Since(start).String(),
			"ip":       c.ClientIP(),
		})

		switch {
		case status >= 500:
			entry.Error("Запрос завершился ошибкой")
		case status >= 400:
			entry.Warn("Запрос отклонён")
		default:
			entry.Info("Запрос обработан")
		}
	}
}
