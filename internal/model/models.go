package model

import (
	"time"
)

// MonthlyCosts holds per-category recurring costs in the destination's local
// currency, per month. Field names follow the source workbook's columns.
type MonthlyCosts struct {
	Hospedaje       float64 `json:"hospedaje"`
	Alimentos       float64 `json:"alimentos"`
	Transporte      float64 `json:"transporte"`
	Entretenimiento float64 `json:"entretenimiento"`
	Seguros         float64 `json:"seguros"`
}

// OneTimeCosts holds per-trip costs in local currency (incurred once,
// not per day or per month).
type OneTimeCosts struct {
	Vuelo          float64 `json:"vuelo"`
	Comunicaciones float64 `json:"comunicaciones"`
	Entradas       float64 `json:"entradas"`
	BebidasEvento  float64 `json:"bebidasEvento"`
	Souvenirs      float64 `json:"souvenirs"`
	FeesTarjetas   float64 `json:"feesTarjetas"`
}

// CountryRecord is one destination's normalized cost profile, produced once
// by ingestion and read-only afterward. ExchangeRate is units of local
// currency per 1 MXN.
type CountryRecord struct {
	Continent                 string       `json:"continent"`
	Country                   string       `json:"country"`
	CurrencyCode              string       `json:"currencyCode"`
	ExchangeRate              float64      `json:"exchangeRate"`
	MonthlyCosts              MonthlyCosts `json:"monthlyCosts"`
	OneTimeCosts              OneTimeCosts `json:"oneTimeCosts"`
	MonthlyTotalLocal         float64      `json:"monthlyTotalLocal"`
	MonthlyTotalMXN           float64      `json:"monthlyTotalMXN"`
	MonthlyTotalMXNWithBuffer float64      `json:"monthlyTotalMXNWithBuffer,omitempty"`
	ImageURL                  string       `json:"imageUrl"`
}

// CurrencyInfo is display metadata for one ISO currency code.
type CurrencyInfo struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Lead is one persisted lead-generation form submission. Leads are
// append-only: they are inserted once and never updated or deleted.
type Lead struct {
	ID               string    `json:"id"`
	Continent        string    `json:"continent"`
	Country          string    `json:"country"`
	DurationWeeks    int       `json:"duration_weeks"`
	Month            int       `json:"month"`
	Year             int       `json:"year"`
	TotalAmount      float64   `json:"total_amount"`
	TotalSavings     float64   `json:"total_savings"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	PreferredBenefit string    `json:"preferred_benefit"`
	SessionID        string    `json:"session_id,omitempty"`
	IPHash           string    `json:"-"`
	UserAgent        string    `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
