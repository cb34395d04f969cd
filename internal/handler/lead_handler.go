package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/travel-budget-estimator/internal/dto"
	"github.com/anyulbade/travel-budget-estimator/internal/service"
)

type LeadHandler struct {
	svc *service.LeadService
}

func NewLeadHandler(svc *service.LeadService) *LeadHandler {
	return &LeadHandler{svc: svc}
}

func (h *LeadHandler) Submit(c *gin.Context) {
	var req dto.LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("validation failed: "+err.Error()))
		return
	}

	lead, err := h.svc.Submit(c.Request.Context(), &req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, dto.Fail(ve.Error()))
			return
		}
		log.Error().Err(err).Str("session_id", req.SessionID).Msg("lead persistence failed")
		c.JSON(http.StatusInternalServerError, dto.Fail("failed to save the form submission"))
		return
	}

	c.JSON(http.StatusCreated, dto.Response{
		Success: true,
		Data:    dto.LeadData{ID: lead.ID, CreatedAt: lead.CreatedAt.Format("2006-01-02T15:04:05Z07:00")},
		Message: "Formulario enviado correctamente. Recibirás tu plan de ahorro en las próximas horas.",
	})
}
