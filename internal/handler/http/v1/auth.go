package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/report_intake/internal/config"
	"github.com/sirupsen/logrus"
)

const (
	// ReporterHeader - заголовок с идентификатором заявителя из сессии приложения
	ReporterHeader = "X-Reporter-ID"
	reporterKey    = "reporter"
)

// APIKeyAuthMiddleware - middleware для аутентификации по API-ключу
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			// Проверяем также заголовок Authorization: Bearer
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		isValid := false
		for _, key := range cfg.APIKeys {
			if key == apiKey {
				isValid = true
				break
			}
		}

		if !isValid {
			log.WithField("key_prefix", keyPrefix(apiKey)).Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}

// ReporterMiddleware извлекает идентификатор заявителя. Сам мастер его не редактирует.
func ReporterMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reporter := strings.TrimSpace(c.GetHeader(ReporterHeader))
		if reporter == "" {
			log.Warn("Reporter id missing from request")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": ReporterHeader + " header required"})
			return
		}
		c.Set(reporterKey, reporter)
		c.Next()
	}
}

func reporterFrom(c *gin.Context) string {
	return c.GetString(reporterKey)
}

func keyPrefix(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return key[:4] + "****"
}
