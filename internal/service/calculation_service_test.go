package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyulbade/travel-budget-estimator/internal/dataset"
	"github.com/anyulbade/travel-budget-estimator/internal/dto"
	"github.com/anyulbade/travel-budget-estimator/internal/ingest"
	"github.com/anyulbade/travel-budget-estimator/internal/model"
	"github.com/anyulbade/travel-budget-estimator/internal/trip"
)

var fixedNow = time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

func calcRecord() *model.CountryRecord {
	return &model.CountryRecord{
		Continent:    "Europa",
		Country:      "Francia",
		CurrencyCode: "EUR",
		ExchangeRate: 20.0,
		MonthlyCosts: model.MonthlyCosts{
			Hospedaje: 800, Alimentos: 400, Transporte: 150, Entretenimiento: 100, Seguros: 60,
		},
		OneTimeCosts: model.OneTimeCosts{
			Vuelo: 450, Comunicaciones: 30, Entradas: 80, BebidasEvento: 40, Souvenirs: 50, FeesTarjetas: 15,
		},
		MonthlyTotalLocal: 1521.85,
		MonthlyTotalMXN:   30437,
	}
}

func calcService(records ...model.CountryRecord) *CalculationService {
	store := dataset.New(func(context.Context) (*ingest.Dataset, error) {
		return &ingest.Dataset{
			Countries:  records,
			Currencies: map[string]model.CurrencyInfo{},
		}, nil
	})
	svc := NewCalculationService(store)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func validCalcRequest() *dto.CalculationRequest {
	return &dto.CalculationRequest{
		Country:        "Francia",
		Duration:       10,
		StartMonth:     9,
		StartYear:      2026,
		NumberOfEvents: 2,
		SessionID:      "session-1",
	}
}

func TestCalculationService_HappyPath(t *testing.T) {
	svc := calcService(*calcRecord())

	data, err := svc.Calculate(context.Background(), validCalcRequest())
	require.NoError(t, err)

	assert.InDelta(t, 1000.00, data.DailyCostMXN, 1e-9, "30437 monthly is 1000/day")
	assert.InDelta(t, 50.00, data.DailyCostLocal, 1e-9)
	assert.Equal(t, "EUR", data.LocalCurrency)

	// One-off costs are local costs converted to MXN; event-driven entries
	// scale with the event count.
	assert.InDelta(t, 450*20.0, data.OneOffCosts.Flights, 1e-9)
	assert.InDelta(t, 30*20.0, data.OneOffCosts.DataWifi, 1e-9)
	assert.InDelta(t, 80*2*20.0, data.OneOffCosts.EventTickets, 1e-9)
	assert.InDelta(t, 60*20.0, data.OneOffCosts.InsuranceVisa, 1e-9)
	assert.InDelta(t, 40*2*20.0, data.OneOffCosts.BebidasEvento, 1e-9)
	assert.InDelta(t, 50*20.0, data.OneOffCosts.Souvenirs, 1e-9)

	assert.Greater(t, data.Benefits.TotalBenefits, 0.0)
	assert.Greater(t, data.Benefits.BenefitB.TotalAmount, 0.0, "September trip leaves time to save")
}

func TestCalculationService_InlineCountryData(t *testing.T) {
	// No record in the dataset; the client inlines one.
	svc := calcService()

	req := validCalcRequest()
	req.Country = "Italia"
	rec := calcRecord()
	rec.Country = "Italia"
	req.CountryData = rec

	data, err := svc.Calculate(context.Background(), req)
	require.NoError(t, err)
	assert.InDelta(t, 1000.00, data.DailyCostMXN, 1e-9)
}

func TestCalculationService_UnknownCountry(t *testing.T) {
	svc := calcService(*calcRecord())

	req := validCalcRequest()
	req.Country = "Atlántida"

	_, err := svc.Calculate(context.Background(), req)
	assert.ErrorIs(t, err, dataset.ErrCountryNotFound)
}

func TestCalculationService_Validation(t *testing.T) {
	svc := calcService(*calcRecord())

	cases := []struct {
		name   string
		mutate func(*dto.CalculationRequest)
		field  string
	}{
		{"missing country", func(r *dto.CalculationRequest) { r.Country = "" }, "country"},
		{"zero duration", func(r *dto.CalculationRequest) { r.Duration = 0 }, "duration"},
		{"negative duration", func(r *dto.CalculationRequest) { r.Duration = -3 }, "duration"},
		{"month too low", func(r *dto.CalculationRequest) { r.StartMonth = 0 }, "startMonth"},
		{"month too high", func(r *dto.CalculationRequest) { r.StartMonth = 13 }, "startMonth"},
		{"year in the past", func(r *dto.CalculationRequest) { r.StartYear = 2025 }, "startYear"},
		{"negative events", func(r *dto.CalculationRequest) { r.NumberOfEvents = -1 }, "numberOfEvents"},
	}

	for _, tc := range cases {
		t.Run("bad: "+tc.name, func(t *testing.T) {
			req := validCalcRequest()
			tc.mutate(req)

			_, err := svc.Calculate(context.Background(), req)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestCalculationService_ZeroExchangeRateRejected(t *testing.T) {
	rec := calcRecord()
	rec.ExchangeRate = 0
	svc := calcService(*rec)

	_, err := svc.Calculate(context.Background(), validCalcRequest())
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "countryData.exchangeRate", ve.Field)
}

func TestCalculationService_Idempotent(t *testing.T) {
	svc := calcService(*calcRecord())

	first, err := svc.Calculate(context.Background(), validCalcRequest())
	require.NoError(t, err)
	second, err := svc.Calculate(context.Background(), validCalcRequest())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalculationService_EquivalentDaysIdentity(t *testing.T) {
	svc := calcService(*calcRecord())

	data, err := svc.Calculate(context.Background(), validCalcRequest())
	require.NoError(t, err)

	daily := trip.DailyCost(30437)
	assert.InDelta(t, data.Benefits.TotalBenefits, data.Benefits.EquivalentDays*daily, 1e-6)
}
