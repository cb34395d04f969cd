package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyulbade/travel-budget-estimator/internal/dataset"
	"github.com/anyulbade/travel-budget-estimator/internal/dto"
	"github.com/anyulbade/travel-budget-estimator/internal/ingest"
	"github.com/anyulbade/travel-budget-estimator/internal/model"
	"github.com/anyulbade/travel-budget-estimator/internal/service"
)

func testStore(records ...model.CountryRecord) *dataset.Store {
	return dataset.New(func(context.Context) (*ingest.Dataset, error) {
		return &ingest.Dataset{
			Countries: records,
			Currencies: map[string]model.CurrencyInfo{
				"EUR": {Code: "EUR", Symbol: "€", Name: "Euro"},
			},
		}, nil
	})
}

func franceRecord() model.CountryRecord {
	return model.CountryRecord{
		Continent:    "Europa",
		Country:      "Francia",
		CurrencyCode: "EUR",
		ExchangeRate: 20.0,
		MonthlyCosts: model.MonthlyCosts{
			Hospedaje: 800, Alimentos: 400, Transporte: 150, Entretenimiento: 100, Seguros: 60,
		},
		OneTimeCosts: model.OneTimeCosts{
			Vuelo: 450, Comunicaciones: 30, Entradas: 80, BebidasEvento: 40, Souvenirs: 50,
		},
		MonthlyTotalLocal: 1521.85,
		MonthlyTotalMXN:   30437,
	}
}

func setupCalculationRouter(store *dataset.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewCalculationHandler(service.NewCalculationService(store))
	router.POST("/api/v1/calculations", h.Calculate)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCalculationHandler_Calculate(t *testing.T) {
	router := setupCalculationRouter(testStore(franceRecord()))
	nextYear := time.Now().Year() + 1

	t.Run("happy: full computation", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/calculations", dto.CalculationRequest{
			Country:        "Francia",
			Duration:       10,
			StartMonth:     6,
			StartYear:      nextYear,
			NumberOfEvents: 1,
			SessionID:      "session-1",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool                `json:"success"`
			Data    dto.CalculationData `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.InDelta(t, 1000.00, resp.Data.DailyCostMXN, 1e-6)
		assert.InDelta(t, 50.00, resp.Data.DailyCostLocal, 1e-6)
		assert.Equal(t, "EUR", resp.Data.LocalCurrency)
		assert.Greater(t, resp.Data.Benefits.TotalBenefits, 0.0)
		assert.Greater(t, resp.Data.Benefits.BenefitB.TotalAmount, 0.0,
			"a trip a year out leaves time for savings interest")
		assert.InDelta(t, 450*20.0, resp.Data.OneOffCosts.Flights, 1e-6)
	})

	t.Run("happy: inlined country data", func(t *testing.T) {
		rec := franceRecord()
		rec.Country = "Italia"
		w := postJSON(t, router, "/api/v1/calculations", dto.CalculationRequest{
			Country:     "Italia",
			CountryData: &rec,
			Duration:    7,
			StartMonth:  3,
			StartYear:   nextYear,
		})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad: missing required fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/calculations", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.NotEmpty(t, resp.Error)
	})

	t.Run("bad: start year in the past", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/calculations", dto.CalculationRequest{
			Country:    "Francia",
			Duration:   10,
			StartMonth: 6,
			StartYear:  2020,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad: unknown country", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/calculations", dto.CalculationRequest{
			Country:    "Atlántida",
			Duration:   10,
			StartMonth: 6,
			StartYear:  nextYear,
		})

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
	})
}
