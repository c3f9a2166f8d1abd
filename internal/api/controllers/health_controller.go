package controllers

import (
	"github.com/gin-gonic/gin"

	"gotrip/pkg/utils"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (h *HealthController) Health(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"status": "healthy"}, "Service is up")
}

func (h *HealthController) Info(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{
		"api_name": "GoTrip Smart Trip Planning API",
		"version":  "1.0.0",
		"algorithms_used": gin.H{
			"scoring":      "Multi-factor weighted scoring (rating + preferences + popularity + distance)",
			"selection":    "Greedy algorithm respecting budget and time constraints",
			"distribution": "Round-robin or proximity clustering across days",
			"optimization": "Nearest Neighbor heuristic for the Traveling Salesman Problem",
			"weather":      "Rule-based admissibility filter (fail-open)",
		},
	}, "API information")
}
