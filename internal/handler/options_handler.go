package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anyulbade/travel-budget-estimator/internal/dto"
	"github.com/anyulbade/travel-budget-estimator/internal/trip"
)

type OptionsHandler struct{}

func NewOptionsHandler() *OptionsHandler {
	return &OptionsHandler{}
}

// Get returns the selectable months, years and typical durations for the
// trip selectors.
func (h *OptionsHandler) Get(c *gin.Context) {
	now := time.Now()
	c.JSON(http.StatusOK, dto.OK(dto.OptionsData{
		Months:    trip.AvailableMonths(),
		Years:     trip.AvailableYears(now),
		Durations: trip.TypicalDurations,
	}))
}
