package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anyulbade/travel-budget-estimator/internal/dto"
	"github.com/anyulbade/travel-budget-estimator/internal/service"
)

type UsageHandler struct {
	svc *service.UsageService
}

func NewUsageHandler(svc *service.UsageService) *UsageHandler {
	return &UsageHandler{svc: svc}
}

// Record accepts a client analytics event. The endpoint always reports
// success, including for malformed payloads, so older clients never surface
// tracking failures to the user.
func (h *UsageHandler) Record(c *gin.Context) {
	var req dto.UsageEventRequest
	if err := c.ShouldBindJSON(&req); err == nil {
		h.svc.Record(c.Request.Context(), &req)
	}
	c.JSON(http.StatusOK, dto.Response{Success: true, Message: "OK"})
}
