// Package ingest parses the cost workbook into normalized country records
// and a currency lookup. The workbook carries one currency-metadata sheet
// plus one sheet per continent, with one row per city; ingestion averages a
// country's city rows into a single record.
package ingest

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/anyulbade/travel-budget-estimator/internal/model"
)

// CurrencySheet is the workbook sheet holding currency metadata. Every other
// sheet whose name does not start with "_" is treated as a continent sheet.
const CurrencySheet = "TiposDeCambios"

// Dataset is the full output of one ingestion run.
type Dataset struct {
	Countries  []model.CountryRecord         `json:"countries"`
	Currencies map[string]model.CurrencyInfo `json:"currencies"`
}

// ErrEmptyWorkbook is returned when the workbook yields no country records.
var ErrEmptyWorkbook = errors.New("workbook contains no country rows")

// ParseWorkbook reads an XLSX workbook and builds the dataset. A malformed
// country is skipped with a warning; the parse only fails when the workbook
// itself is unreadable or produces no countries at all.
func ParseWorkbook(r io.Reader) (*Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	ds := &Dataset{Currencies: make(map[string]model.CurrencyInfo)}

	for _, sheet := range f.GetSheetList() {
		if sheet == CurrencySheet {
			parseCurrencySheet(f, sheet, ds.Currencies)
			continue
		}
		if strings.HasPrefix(sheet, "_") {
			continue
		}
		if err := parseContinentSheet(f, sheet, ds); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet, err)
		}
	}

	if len(ds.Countries) == 0 {
		return nil, ErrEmptyWorkbook
	}
	return ds, nil
}

func parseCurrencySheet(f *excelize.File, sheet string, out map[string]model.CurrencyInfo) {
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		return
	}

	header := headerIndex(rows[0])
	for _, row := range rows[1:] {
		// The source is not consistent about header casing across versions.
		code := cell(row, header, "Código ISO", "código", "Código")
		symbol := cell(row, header, "Moneda", "moneda")
		if code == "" || symbol == "" {
			continue
		}
		name := cell(row, header, "nombre", "Nombre")
		if name == "" {
			name = symbol
		}
		out[code] = model.CurrencyInfo{Code: code, Symbol: symbol, Name: name}
	}
}

func parseContinentSheet(f *excelize.File, sheet string, ds *Dataset) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil
	}

	header := headerIndex(rows[0])

	// Group city rows by country, preserving first-seen order.
	groups := make(map[string][][]string)
	var order []string
	for _, row := range rows[1:] {
		country := cell(row, header, "País", "País ")
		if country == "" {
			continue
		}
		if _, ok := groups[country]; !ok {
			order = append(order, country)
		}
		groups[country] = append(groups[country], row)
	}

	seen := make(map[string]bool, len(ds.Countries))
	for _, rec := range ds.Countries {
		seen[rec.Country] = true
	}

	for _, country := range order {
		if seen[country] {
			// First sheet to mention a country wins.
			log.Warn().Str("country", country).Str("sheet", sheet).
				Msg("duplicate country across sheets, keeping first")
			continue
		}
		rec, err := buildCountry(sheet, country, groups[country], header)
		if err != nil {
			log.Warn().Err(err).Str("country", country).Str("sheet", sheet).
				Msg("skipping malformed country")
			continue
		}
		ds.Countries = append(ds.Countries, *rec)
	}
	return nil
}

// buildCountry averages a country's city rows into one record. Non-numeric
// fields come from the first row; missing numeric cells count as 0.
func buildCountry(sheet, country string, cityRows [][]string, header map[string]int) (*model.CountryRecord, error) {
	first := cityRows[0]

	rate, err := strconv.ParseFloat(strings.TrimSpace(cell(first, header, "Tipo de cambio (Real)")), 64)
	if err != nil || rate <= 0 {
		return nil, fmt.Errorf("invalid exchange rate %q", cell(first, header, "Tipo de cambio (Real)"))
	}

	avg := func(names ...string) float64 {
		var sum float64
		for _, row := range cityRows {
			sum += numericCell(row, header, names...)
		}
		return sum / float64(len(cityRows))
	}

	monthlyTotalLocal := avg("Total mensual (Moneda local)")

	currency := cell(first, header, "Divisa")
	if currency == "" {
		currency = "USD"
	}
	continent := cell(first, header, "Continente")
	if continent == "" {
		continent = sheet
	}

	return &model.CountryRecord{
		Continent:    continent,
		Country:      country,
		CurrencyCode: currency,
		ExchangeRate: rate,
		MonthlyCosts: model.MonthlyCosts{
			Hospedaje:       avg("Costo de hospedaje mensual (Moneda local)"),
			Alimentos:       avg("Costo de comida mensual (Moneda local)"),
			Transporte:      avg("Costo de transportación mensual (Moneda local)"),
			Entretenimiento: avg("Costo por Entretenimiento mensual (Moneda local)"),
			Seguros:         avg("Costo de seguros, trámites, visas y permisos al mes (Moneda local)"),
		},
		OneTimeCosts: model.OneTimeCosts{
			Vuelo:          avg("Costo de vuelo ida y vuelta (Moneda local)"),
			Comunicaciones: avg("Costo de comunicaciones (SIM local/wifi portatil) (Moneda local)"),
			Entradas:       avg("Costo Entradas (Moneda local)"),
			BebidasEvento:  avg("Costo Bebidas y comida dentro del evento (Moneda local)"),
			Souvenirs:      avg("Costo Souvenirs o merchandising oficial (Moneda local)"),
			FeesTarjetas:   avg("Costo promedio de uso de cuenta o tarjetas nacionales (fees, retiros) (Moneda local)"),
		},
		MonthlyTotalLocal:         monthlyTotalLocal,
		MonthlyTotalMXN:           monthlyTotalLocal * rate,
		MonthlyTotalMXNWithBuffer: numericCell(first, header, "Total mensual (MXN con TC Acolchonado)"),
		ImageURL:                  cell(first, header, "URL de imagen"),
	}, nil
}

func headerIndex(headerRow []string) map[string]int {
	idx := make(map[string]int, len(headerRow))
	for i, name := range headerRow {
		idx[name] = i
	}
	return idx
}

func cell(row []string, header map[string]int, names ...string) string {
	for _, name := range names {
		i, ok := header[name]
		if !ok || i >= len(row) {
			continue
		}
		if v := strings.TrimSpace(row[i]); v != "" {
			return v
		}
	}
	return ""
}

func numericCell(row []string, header map[string]int, names ...string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(cell(row, header, names...), ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}
