package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/travel-budget-estimator/internal/dataset"
	"github.com/anyulbade/travel-budget-estimator/internal/dto"
	"github.com/anyulbade/travel-budget-estimator/internal/service"
)

type CalculationHandler struct {
	svc *service.CalculationService
}

func NewCalculationHandler(svc *service.CalculationService) *CalculationHandler {
	return &CalculationHandler{svc: svc}
}

func (h *CalculationHandler) Calculate(c *gin.Context) {
	var req dto.CalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("validation failed: "+err.Error()))
		return
	}

	data, err := h.svc.Calculate(c.Request.Context(), &req)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			c.JSON(http.StatusBadRequest, dto.Fail(ve.Error()))
		case errors.Is(err, dataset.ErrCountryNotFound):
			c.JSON(http.StatusNotFound, dto.Fail("no data for the selected country"))
		default:
			log.Error().Err(err).Str("country", req.Country).Msg("calculation failed")
			c.JSON(http.StatusInternalServerError, dto.Fail("failed to calculate budget"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.OK(data))
}
