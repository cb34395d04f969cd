package service

import (
	"context"
	"fmt"
	"time"

	"github.com/anyulbade/travel-budget-estimator/internal/benefits"
	"github.com/anyulbade/travel-budget-estimator/internal/dataset"
	"github.com/anyulbade/travel-budget-estimator/internal/dto"
	"github.com/anyulbade/travel-budget-estimator/internal/model"
	"github.com/anyulbade/travel-budget-estimator/internal/trip"
)

// CalculationService validates a trip request and assembles daily costs,
// the four benefit projections, and the one-off cost totals. Each call is
// independent and idempotent for identical inputs.
type CalculationService struct {
	store *dataset.Store
	now   func() time.Time
}

func NewCalculationService(store *dataset.Store) *CalculationService {
	return &CalculationService{store: store, now: time.Now}
}

func (s *CalculationService) Calculate(ctx context.Context, req *dto.CalculationRequest) (*dto.CalculationData, error) {
	now := s.now()
	if err := s.validate(req, now); err != nil {
		return nil, err
	}

	record := req.CountryData
	if record == nil {
		var err error
		record, err = s.store.Country(ctx, req.Country)
		if err != nil {
			return nil, err
		}
	}
	if err := validateRecord(record); err != nil {
		return nil, err
	}

	dailyMXN := trip.DailyCost(record.MonthlyTotalMXN)
	dailyLocal := trip.LocalEquivalent(dailyMXN, record.ExchangeRate)

	daysUntilStart := trip.DaysUntilStart(req.StartMonth, req.StartYear, now)
	result := benefits.Calculate(record, req.Duration, daysUntilStart)

	events := float64(req.NumberOfEvents)
	rate := record.ExchangeRate
	oneOff := dto.OneOffCosts{
		Flights:       record.OneTimeCosts.Vuelo * rate,
		DataWifi:      record.OneTimeCosts.Comunicaciones * rate,
		EventTickets:  record.OneTimeCosts.Entradas * events * rate,
		InsuranceVisa: record.MonthlyCosts.Seguros * rate,
		BebidasEvento: record.OneTimeCosts.BebidasEvento * events * rate,
		Souvenirs:     record.OneTimeCosts.Souvenirs * rate,
	}

	return &dto.CalculationData{
		DailyCostMXN:   dailyMXN,
		DailyCostLocal: dailyLocal,
		LocalCurrency:  record.CurrencyCode,
		Benefits:       result,
		OneOffCosts:    oneOff,
	}, nil
}

func (s *CalculationService) validate(req *dto.CalculationRequest, now time.Time) error {
	if req.Country == "" {
		return invalid("country", "country is required")
	}
	if req.Duration <= 0 {
		return invalid("duration", "duration must be a positive number of days")
	}
	if req.StartMonth < 1 || req.StartMonth > 12 {
		return invalid("startMonth", "start month must be between 1 and 12")
	}
	if req.StartYear < now.Year() {
		return invalid("startYear", fmt.Sprintf("start year must be %d or later", now.Year()))
	}
	if req.NumberOfEvents < 0 {
		return invalid("numberOfEvents", "number of events cannot be negative")
	}
	return nil
}

// validateRecord guards the arithmetic: a non-positive exchange rate or a
// negative monthly total would otherwise produce NaN or infinite results.
func validateRecord(record *model.CountryRecord) error {
	if record.ExchangeRate <= 0 {
		return invalid("countryData.exchangeRate", "exchange rate must be positive")
	}
	if record.MonthlyTotalMXN < 0 {
		return invalid("countryData.monthlyTotalMXN", "monthly total cannot be negative")
	}
	return nil
}
