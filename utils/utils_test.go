package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "LKR 0.00"},
		{"999.5", "LKR 999.50"},
		{"12500", "LKR 12,500.00"},
		{"1234567.891", "LKR 1,234,567.89"},
		{"-1000", "-LKR 1,000.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount("LKR", decimal.RequireFromString(tt.amount)))
	}
	assert.Equal(t, "100.00", FormatAmount("", decimal.NewFromInt(100)))
}

func TestPercentChange(t *testing.T) {
	pc := func(cur, prev string) string {
		return PercentChange(decimal.RequireFromString(cur), decimal.RequireFromString(prev)).StringFixed(2)
	}
	assert.Equal(t, "0.00", pc("5000", "0"))
	assert.Equal(t, "25.00", pc("5000", "4000"))
	assert.Equal(t, "-50.00", pc("500", "1000"))
	assert.Equal(t, "-200.00", pc("1000", "-1000"))
	assert.Equal(t, "-150.00", pc("500", "-1000"))
	assert.Equal(t, "50.00", pc("-1500", "-1000"))
	assert.Equal(t, "33.33", pc("4", "3"))
}

func TestCents(t *testing.T) {
	assert.Equal(t, "10.13", Cents(decimal.RequireFromString("10.125")).String())
	assert.Equal(t, "-10.13", Cents(decimal.RequireFromString("-10.125")).String())
}

func TestDates(t *testing.T) {
	assert.Equal(t, 29, DaysIn(2024, time.February))
	assert.Equal(t, 28, DaysIn(2023, time.February))
	assert.Equal(t, 31, DaysIn(2024, time.December))

	from := MonthStart(2024, time.March)
	assert.Equal(t, 2, NightsBetween(from, from.AddDate(0, 0, 2)))
	assert.Equal(t, 0, NightsBetween(from, from))
	assert.Equal(t, 0, NightsBetween(from.AddDate(0, 0, 1), from))

	colombo := time.FixedZone("+0530", 5*3600+1800)
	late := time.Date(2024, 3, 31, 23, 45, 0, 0, colombo)
	assert.Equal(t, "2024-03-31", FormatDate(DateOf(late)))

	d, err := ParseDate("2024-03-01")
	assert.NoError(t, err)
	assert.Equal(t, from, d)
	_, err = ParseDate("01-03-2024")
	assert.Error(t, err)
}
