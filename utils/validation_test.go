package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+14155552671"))
	assert.True(t, ValidatePhone("91 98765 43210"))
	assert.True(t, ValidatePhone("(415) 555-2671"))
	assert.False(t, ValidatePhone("not-a-phone"))
	assert.False(t, ValidatePhone("0"))
}

func TestValidateTimeOfDay(t *testing.T) {
	assert.True(t, ValidateTimeOfDay("09:00"))
	assert.True(t, ValidateTimeOfDay("17:30"))
	assert.True(t, ValidateTimeOfDay("23:59"))
	assert.False(t, ValidateTimeOfDay("24:00"))
	assert.False(t, ValidateTimeOfDay("9:00"))
	assert.False(t, ValidateTimeOfDay("10:61"))
	assert.False(t, ValidateTimeOfDay("10.30"))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	assert.NoError(t, err)
	assert.Equal(t, time.June, d.Month())

	_, err = ParseDate("01/06/2024")
	assert.Error(t, err)
}

func TestWeekdayName(t *testing.T) {
	// 2024-06-01 is a Saturday
	assert.Equal(t, "saturday", WeekdayName(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "sunday", WeekdayName(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "monday", WeekdayName(time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)))
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 3, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, DaysBetween(start, end))
}
