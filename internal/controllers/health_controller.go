package controllers

import (
	"net/http"

	"github.com/rdSoftInc/DevConnect/internal/services"

	"github.com/gin-gonic/gin"
)

// HealthController health check endpoint
type HealthController struct {
	healthService services.HealthService
}

// NewHealthController creates a HealthController
func NewHealthController(healthService services.HealthService) *HealthController {
	return &HealthController{
		healthService: healthService,
	}
}

// Check reports uptime and whether the store answers
func (c *HealthController) Check(ctx *gin.Context) {
	status, healthy := c.healthService.GetStatus(ctx.Request.Context())
	if !healthy {
		ctx.JSON(http.StatusServiceUnavailable, status)
		return
	}
	ctx.JSON(http.StatusOK, status)
}
