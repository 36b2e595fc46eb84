package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты мастера заявления, требуют API-ключ и заявителя
	wiz := api.Group("/wizard", APIKeyAuthMiddleware(h.cfg, h.logger), ReporterMiddleware(h.logger))
	{
		wiz.GET("/draft", h.getDraft)

		wiz.POST("/steps/person", h.advancePerson)
		wiz.POST("/steps/location", h.advanceLocation)
		wiz.POST("/steps/station", h.advanceStation)
		wiz.POST("/back", h.goBack)

		wiz.POST("/attachments", h.uploadAttachment)
		wiz.POST("/images", h.addImage)
		wiz.DELETE("/images/:index", h.removeImage)

		wiz.POST("/station/auto", h.useAutomaticStation)
		wiz.POST("/station/manual", h.useManualStation)
		wiz.POST("/station/search", h.searchStations)
		wiz.POST("/station/select", h.selectStation)

		wiz.GET("/consent", h.consentPrompt)
		wiz.POST("/consent", h.decideConsent)

		wiz.POST("/submit", h.submit)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
