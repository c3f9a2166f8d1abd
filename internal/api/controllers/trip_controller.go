package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gotrip/internal/models/request_models"
	"gotrip/internal/services"
	"gotrip/pkg/utils"
)

type TripController struct {
	plannerService services.PlannerServiceInterface
}

func NewTripController(plannerService services.PlannerServiceInterface) *TripController {
	return &TripController{
		plannerService: plannerService,
	}
}

func (t *TripController) PlanTrip(c *gin.Context) {
	var request request_models.PlanTripRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	plan, err := t.plannerService.PlanTrip(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Trip planned successfully")
}
