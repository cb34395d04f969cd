// Package trip provides the pure currency and date helpers shared by the
// cost calculator and the benefits engine.
package trip

import (
	"math"
	"strconv"
	"time"
)

// DaysPerMonth is the average month length used for every month-to-day
// conversion in the estimator.
const DaysPerMonth = 30.437

// TypicalDurations are the trip lengths (in days) offered by the selector UI.
var TypicalDurations = []int{3, 5, 7, 10, 14, 21, 28}

var spanishMonths = []string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// DailyCost converts a monthly MXN total into its per-day equivalent.
func DailyCost(monthlyMXN float64) float64 {
	return monthlyMXN / DaysPerMonth
}

// LocalEquivalent converts an MXN amount into the destination's local
// currency. The exchange rate is local units per 1 MXN and must be positive;
// callers validate it at the request boundary.
func LocalEquivalent(amountMXN, exchangeRate float64) float64 {
	if exchangeRate <= 0 {
		return 0
	}
	return amountMXN / exchangeRate
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DaysUntilStart returns the number of whole days between now and the first
// day of the given month, never negative. A trip starting this month or in
// the past yields 0.
func DaysUntilStart(month, year int, now time.Time) int {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, now.Location())
	diff := start.Sub(now).Hours() / 24
	days := int(math.Ceil(diff))
	if days < 0 {
		return 0
	}
	return days
}

// FormatMonthYear renders a month/year pair the way the client displays it,
// e.g. "Marzo 2026". Out-of-range months return an empty string.
func FormatMonthYear(month, year int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return spanishMonths[month-1] + " " + strconv.Itoa(year)
}

// MonthOption is one entry of the month selector.
type MonthOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// AvailableMonths lists the twelve selectable months with display labels.
func AvailableMonths() []MonthOption {
	opts := make([]MonthOption, len(spanishMonths))
	for i, label := range spanishMonths {
		opts[i] = MonthOption{Value: i + 1, Label: label}
	}
	return opts
}

// AvailableYears lists the current year and the five after it.
func AvailableYears(now time.Time) []int {
	years := make([]int, 6)
	for i := range years {
		years[i] = now.Year() + i
	}
	return years
}
