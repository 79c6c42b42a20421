package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hseinsb/estimate-analyzer/service"
)

const healthWindow = 24 * time.Hour

type HealthHandler struct {
	estimateService *service.EstimateService
}

func NewHealthHandler(estimateService *service.EstimateService) *HealthHandler {
	return &HealthHandler{estimateService: estimateService}
}

// Check handles GET /health. Counts cover the trailing 24 hours.
func (h *HealthHandler) Check(c *gin.Context) {
	total, failed, err := h.estimateService.HealthCounts(c.Request.Context(), healthWindow)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service":          "Estimate Analyzer",
		"recent_estimates": total,
		"recent_errors":    failed,
	})
}
