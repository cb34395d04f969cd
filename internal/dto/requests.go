package dto

import "github.com/anyulbade/travel-budget-estimator/internal/model"

// CalculationRequest is one trip-budget computation call. CountryData may be
// inlined by the client; when absent the record is resolved from the
// ingested dataset. Year and range checks happen in the service so they can
// report field-specific messages.
type CalculationRequest struct {
	Country        string               `json:"country" binding:"required"`
	CountryData    *model.CountryRecord `json:"countryData"`
	Duration       int                  `json:"duration" binding:"required,gt=0"`
	StartMonth     int                  `json:"startMonth" binding:"required,min=1,max=12"`
	StartYear      int                  `json:"startYear" binding:"required"`
	NumberOfEvents int                  `json:"numberOfEvents" binding:"gte=0"`
	SessionID      string               `json:"sessionId"`
}

// LeadRequest is one lead-generation form submission. Amount fields are
// pointers so an explicit 0 is distinguishable from a missing field.
type LeadRequest struct {
	Continent        string   `json:"continent" binding:"required"`
	Country          string   `json:"country" binding:"required"`
	DurationWeeks    int      `json:"durationWeeks" binding:"required,min=1"`
	Month            int      `json:"month" binding:"required,min=1,max=12"`
	Year             int      `json:"year" binding:"required"`
	TotalAmount      *float64 `json:"totalAmount" binding:"required"`
	TotalSavings     *float64 `json:"totalSavings" binding:"required"`
	FullName         string   `json:"fullName" binding:"required"`
	Email            string   `json:"email" binding:"required"`
	PreferredBenefit string   `json:"preferredBenefit" binding:"required,oneof=A B C D"`
	SessionID        string   `json:"sessionId"`
}

// UsageEventRequest is a client analytics event. Events are accepted for
// client compatibility but not persisted.
type UsageEventRequest struct {
	EventType    string                 `json:"eventType" binding:"required,oneof=page_view calculation_started calculation_completed form_submitted"`
	EventPage    string                 `json:"eventPage"`
	SessionID    string                 `json:"sessionId"`
	EventPayload map[string]interface{} `json:"eventPayload"`
}
