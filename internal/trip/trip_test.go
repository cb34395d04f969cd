package trip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDailyCost(t *testing.T) {
	t.Run("happy: 30437 monthly is 1000 per day", func(t *testing.T) {
		assert.InDelta(t, 1000.00, DailyCost(30437), 1e-9)
	})

	t.Run("happy: zero monthly is zero daily", func(t *testing.T) {
		assert.Equal(t, 0.0, DailyCost(0))
	})
}

func TestLocalEquivalent(t *testing.T) {
	t.Run("happy: converts by dividing by the rate", func(t *testing.T) {
		assert.InDelta(t, 50.0, LocalEquivalent(1000, 20), 1e-9)
	})

	t.Run("bad: non-positive rate yields zero, not Inf", func(t *testing.T) {
		assert.Equal(t, 0.0, LocalEquivalent(1000, 0))
		assert.Equal(t, 0.0, LocalEquivalent(1000, -3))
	})
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 2.30, Round2(2.299))
	assert.Equal(t, 2.29, Round2(2.294))
	assert.Equal(t, -1.5, Round2(-1.499))
}

func TestDaysUntilStart(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	t.Run("happy: future month counts whole days, rounded up", func(t *testing.T) {
		// March 15 12:00 to April 1 00:00 is 16.5 days
		assert.Equal(t, 17, DaysUntilStart(4, 2026, now))
	})

	t.Run("happy: current month is zero", func(t *testing.T) {
		assert.Equal(t, 0, DaysUntilStart(3, 2026, now))
	})

	t.Run("happy: past month is clamped to zero", func(t *testing.T) {
		assert.Equal(t, 0, DaysUntilStart(1, 2026, now))
		assert.Equal(t, 0, DaysUntilStart(12, 2025, now))
	})
}

func TestFormatMonthYear(t *testing.T) {
	assert.Equal(t, "Enero 2026", FormatMonthYear(1, 2026))
	assert.Equal(t, "Diciembre 2030", FormatMonthYear(12, 2030))
	assert.Equal(t, "", FormatMonthYear(0, 2026))
	assert.Equal(t, "", FormatMonthYear(13, 2026))
}

func TestAvailableOptions(t *testing.T) {
	now := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)

	months := AvailableMonths()
	assert.Len(t, months, 12)
	assert.Equal(t, 1, months[0].Value)
	assert.Equal(t, "Enero", months[0].Label)
	assert.Equal(t, "Diciembre", months[11].Label)

	years := AvailableYears(now)
	assert.Equal(t, []int{2026, 2027, 2028, 2029, 2030, 2031}, years)
}
