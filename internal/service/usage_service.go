package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/anyulbade/travel-budget-estimator/internal/dto"
)

// UsageService accepts client analytics events. Events are logged but not
// stored; the endpoint exists so older clients keep working.
type UsageService struct{}

func NewUsageService() *UsageService {
	return &UsageService{}
}

func (s *UsageService) Record(_ context.Context, event *dto.UsageEventRequest) {
	log.Debug().
		Str("event_type", event.EventType).
		Str("event_page", event.EventPage).
		Str("session_id", event.SessionID).
		Msg("usage event")
}
