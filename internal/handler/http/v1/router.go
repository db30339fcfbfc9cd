package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check доступен без аутентификации
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		// Прием телеметрии
		protected.POST("/telemetry/batch", h.ingestBatch)

		// Выборки результатов анализа
		protected.GET("/hotspots", h.listHotspots)
		protected.GET("/violations", h.listViolations)
		protected.GET("/stats", h.getStats)

		// Сброс окна анализа
		protected.POST("/window/reset", h.resetWindow)
	}
}
