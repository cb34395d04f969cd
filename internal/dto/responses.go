package dto

import (
	"github.com/anyulbade/travel-budget-estimator/internal/benefits"
	"github.com/anyulbade/travel-budget-estimator/internal/trip"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// OK wraps a successful payload.
func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// Fail wraps an error message.
func Fail(msg string) Response {
	return Response{Success: false, Error: msg}
}

// OneOffCosts are the per-trip costs converted to MXN. Event-dependent
// entries are already multiplied by the requested number of events.
type OneOffCosts struct {
	Flights       float64 `json:"flights"`
	DataWifi      float64 `json:"dataWifi"`
	EventTickets  float64 `json:"eventTickets"`
	InsuranceVisa float64 `json:"insuranceVisa"`
	BebidasEvento float64 `json:"bebidasEvento"`
	Souvenirs     float64 `json:"souvenirs"`
}

// CalculationData is the payload of a successful computation.
type CalculationData struct {
	DailyCostMXN   float64         `json:"dailyCostMXN"`
	DailyCostLocal float64         `json:"dailyCostLocal"`
	LocalCurrency  string          `json:"localCurrency"`
	Benefits       benefits.Result `json:"benefits"`
	OneOffCosts    OneOffCosts     `json:"oneOffCosts"`
}

// LeadData is the payload of a persisted lead submission.
type LeadData struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
}

// OptionsData feeds the client's trip selectors.
type OptionsData struct {
	Months    []trip.MonthOption `json:"months"`
	Years     []int              `json:"years"`
	Durations []int              `json:"durations"`
}
