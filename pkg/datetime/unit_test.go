package datetime

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTimeUnit_String(t *testing.T) {
	tests := []struct {
		unit DateTimeUnit
		want string
	}{
		{UnitNanosecond, "NANOSECOND"},
		{UnitMicrosecond, "MICROSECOND"},
		{UnitMillisecond, "MILLISECOND"},
		{UnitSecond, "SECOND"},
		{UnitMinute, "MINUTE"},
		{UnitHour, "HOUR"},
		{UnitDay, "DAY"},
		{UnitWeek, "WEEK"},
		{UnitMonth, "MONTH"},
		{UnitQuarter, "QUARTER"},
		{UnitYear, "YEAR"},
		{UnitCentury, "CENTURY"},
		{TimeBasedUnit{nanoseconds: 2 * nanosPerHour}, "2-HOUR"},
		{TimeBasedUnit{nanoseconds: 90 * nanosPerSecond}, "90-SECOND"},
		{DayBasedUnit{days: 3}, "3-DAY"},
		{DayBasedUnit{days: 14}, "2-WEEK"},
		{MonthBasedUnit{months: 6}, "2-QUARTER"},
		{MonthBasedUnit{months: 24}, "2-YEAR"},
		{MonthBasedUnit{months: 5}, "5-MONTH"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.unit.String())

			parsed, err := ParseDateTimeUnit(tt.want)
			require.NoError(t, err)
			assert.Equal(t, tt.unit, parsed)
		})
	}
}

func TestParseDateTimeUnit(t *testing.T) {
	u, err := ParseDateTimeUnit("days")
	require.NoError(t, err)
	assert.Equal(t, UnitDay, u)

	u, err = ParseDateTimeUnit("2-centuries")
	require.NoError(t, err)
	assert.Equal(t, MonthBasedUnit{months: 2400}, u)

	for _, s := range []string{"", "FORTNIGHT", "0-DAY", "-1-DAY", "x-DAY", "3000000000-DAY"} {
		_, err := ParseDateTimeUnit(s)
		assert.Error(t, err, "%q must be rejected", s)
	}
}

func TestUnit_Times(t *testing.T) {
	u, err := UnitHour.Times(3)
	require.NoError(t, err)
	assert.Equal(t, 3*nanosPerHour, u.Nanoseconds())

	_, err = UnitHour.Times(math.MaxInt64)
	assert.ErrorIs(t, err, ErrArithmetic)

	_, err = UnitCentury.Times(2_000_000)
	assert.ErrorIs(t, err, ErrArithmetic)

	_, err = UnitWeek.Times(math.MaxInt32)
	assert.ErrorIs(t, err, ErrArithmetic)

	_, err = UnitDay.Times(0)
	assert.ErrorIs(t, err, ErrIllegalArgument)

	_, err = UnitMonth.Times(-1)
	assert.ErrorIs(t, err, ErrIllegalArgument)

	_, err = NewTimeBasedUnit(0)
	assert.ErrorIs(t, err, ErrIllegalArgument)

	d, err := NewDayBasedUnit(10)
	require.NoError(t, err)
	assert.Equal(t, 10, d.Days())

	m, err := NewMonthBasedUnit(18)
	require.NoError(t, err)
	assert.Equal(t, "6-QUARTER", m.String())
}
