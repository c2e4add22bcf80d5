package datetime

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratik-mahalle/calendrical/internal/testutil"
)

func mustInstant(t *testing.T, s string) Instant {
	t.Helper()
	i, err := ParseInstant(s)
	require.NoError(t, err)
	return i
}

func mustPeriod(t *testing.T, s string) DateTimePeriod {
	t.Helper()
	p, err := ParseDateTimePeriod(s)
	require.NoError(t, err)
	return p
}

func TestInstant_PlusIn(t *testing.T) {
	zones, _ := newTestZones(t)
	spring := mustZone(t, zones, testutil.ZoneSpring)
	kolkata := mustZone(t, zones, testutil.ZoneKolkata)

	tests := []struct {
		name  string
		start string
		n     int64
		unit  DateTimeUnit
		zone  TimeZone
		want  string
	}{
		{name: "a day across the spring gap keeps the wall clock", start: "2021-03-27T12:00+01:00", n: 1, unit: UnitDay, zone: spring, want: "2021-03-28T10:00:00Z"},
		{name: "24 hours across the spring gap is exact", start: "2021-03-27T12:00+01:00", n: 24, unit: UnitHour, zone: spring, want: "2021-03-28T11:00:00Z"},
		{name: "a day back across the fall overlap", start: "2021-11-01T12:00+01:00", n: -1, unit: UnitDay, zone: spring, want: "2021-10-31T11:00:00Z"},
		{name: "month end clamps", start: "2021-01-31T10:00+05:30", n: 1, unit: UnitMonth, zone: kolkata, want: "2021-02-28T04:30:00Z"},
		{name: "leap month end", start: "2020-01-31T10:00+05:30", n: 1, unit: UnitMonth, zone: kolkata, want: "2020-02-29T04:30:00Z"},
		{name: "into the gap moves forward", start: "2021-03-27T02:30+01:00", n: 1, unit: UnitDay, zone: spring, want: "2021-03-28T01:30:00Z"},
		{name: "scaled unit", start: "2021-01-01T00:00Z", n: 2, unit: mustScale(t, UnitDay, 3), zone: UTC, want: "2021-01-07T00:00:00Z"},
		{name: "years in a fixed zone", start: "2020-02-29T00:00Z", n: 4, unit: UnitYear, zone: UTC, want: "2024-02-29T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mustInstant(t, tt.start).PlusIn(tt.n, tt.unit, tt.zone)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func mustScale(t *testing.T, unit DateTimeUnit, n int64) DateTimeUnit {
	t.Helper()
	u, err := ScaleUnit(unit, n)
	require.NoError(t, err)
	return u
}

func TestInstant_PlusInPreservesOffsetInOverlap(t *testing.T) {
	zones, _ := newTestZones(t)
	spring := mustZone(t, zones, testutil.ZoneSpring)

	// 02:30 on the second pass through the repeated hour
	secondPass := mustInstant(t, "2021-10-31T02:30+01:00")
	dayBefore, err := secondPass.MinusIn(1, UnitDay, spring)
	require.NoError(t, err)
	assert.Equal(t, "2021-10-30T00:30:00Z", dayBefore.String())

	back, err := dayBefore.PlusIn(1, UnitDay, spring)
	require.NoError(t, err)
	assert.Equal(t, "2021-10-31T00:30:00Z", back.String(), "the summer offset of the start is preferred")

	again, err := secondPass.PlusIn(0, UnitDay, spring)
	require.NoError(t, err)
	assert.Equal(t, secondPass, again, "the winter reading keeps its own offset")
}

func TestInstant_PlusInFailures(t *testing.T) {
	epoch := InstantOfEpochSeconds(0, 0)

	_, err := epoch.PlusIn(math.MaxInt64, UnitHour, UTC)
	assert.ErrorIs(t, err, ErrArithmetic, "n * unit overflow is reported")

	_, err = epoch.PlusIn(math.MaxInt64, UnitDay, UTC)
	assert.ErrorIs(t, err, ErrArithmetic)

	_, err = epoch.PlusIn(1_000_000*12, UnitMonth, UTC)
	assert.ErrorIs(t, err, ErrArithmetic, "civil result out of range")

	_, err = epoch.MinusIn(math.MinInt64, UnitWeek, UTC)
	assert.ErrorIs(t, err, ErrArithmetic)

	_, err = MaxInstant.PlusIn(1, UnitDay, UTC)
	assert.ErrorIs(t, err, ErrArithmetic, "the start has no civil reading")

	// time-based units saturate once the count itself fits
	got, err := epoch.PlusIn(1<<40, UnitHour, UTC)
	require.NoError(t, err)
	assert.Equal(t, MaxInstant, got)

	got, err = epoch.MinusIn(1<<40, UnitHour, UTC)
	require.NoError(t, err)
	assert.Equal(t, MinInstant, got)
}

func TestInstant_UntilIn(t *testing.T) {
	zones, _ := newTestZones(t)
	spring := mustZone(t, zones, testutil.ZoneSpring)

	a := mustInstant(t, "2021-03-27T12:00+01:00")
	b := mustInstant(t, "2021-03-28T12:00+02:00")

	days, err := a.UntilIn(b, UnitDay, spring)
	require.NoError(t, err)
	assert.Equal(t, int64(1), days)

	hours, err := a.UntilIn(b, UnitHour, spring)
	require.NoError(t, err)
	assert.Equal(t, int64(23), hours)

	// one nanosecond short of a whole day
	c := b.Minus(Nanoseconds(1))
	days, err = a.UntilIn(c, UnitDay, spring)
	require.NoError(t, err)
	assert.Equal(t, int64(0), days)

	days, err = c.UntilIn(a, UnitDay, spring)
	require.NoError(t, err)
	assert.Equal(t, int64(0), days)

	months, err := mustInstant(t, "2021-01-31T10:00Z").UntilIn(mustInstant(t, "2021-03-01T09:00Z"), UnitMonth, UTC)
	require.NoError(t, err)
	assert.Equal(t, int64(0), months)

	_, err = MaxInstant.UntilIn(a, UnitDay, UTC)
	assert.ErrorIs(t, err, ErrArithmetic)
}

func TestInstant_PeriodUntil(t *testing.T) {
	zones, _ := newTestZones(t)
	spring := mustZone(t, zones, testutil.ZoneSpring)

	tests := []struct {
		name  string
		start string
		end   string
		zone  TimeZone
		want  string
	}{
		{name: "months then days", start: "2021-01-01T00:00Z", end: "2021-03-15T00:00Z", zone: UTC, want: "P2M14D"},
		{name: "time of day pulls back a day", start: "2021-01-31T10:00Z", end: "2021-03-01T09:00Z", zone: UTC, want: "P28DT23H"},
		{name: "negative", start: "2021-03-15T00:00Z", end: "2021-01-01T00:00Z", zone: UTC, want: "-P2M14D"},
		{name: "across the spring gap", start: "2021-03-27T12:00+01:00", end: "2021-03-28T13:30+02:00", zone: spring, want: "P1DT1H30M"},
		{name: "same instant", start: "2021-03-27T12:00+01:00", end: "2021-03-27T12:00+01:00", zone: spring, want: "P0D"},
		{name: "years", start: "2001-05-05T05:05:05.5Z", end: "2021-06-07T05:05:06Z", zone: UTC, want: "P20Y1M2DT0.5S"},
		{name: "a day into the gap", start: "2021-03-27T02:30+01:00", end: "2021-03-28T03:15+02:00", zone: spring, want: "PT23H45M"},
		{name: "a month into the gap", start: "2021-02-28T02:30+01:00", end: "2021-03-28T03:15+02:00", zone: spring, want: "P27DT23H45M"},
		{name: "back across the gap", start: "2021-03-28T03:15+02:00", end: "2021-03-27T02:30+01:00", zone: spring, want: "-P1DT45M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := mustInstant(t, tt.start)
			end := mustInstant(t, tt.end)

			p, err := start.PeriodUntil(end, tt.zone)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.String())

			back, err := start.PlusPeriod(p, tt.zone)
			require.NoError(t, err)
			assert.Equal(t, end, back, "re-applying %s", p)
		})
	}
}

func TestInstant_PeriodUntilIsReversible(t *testing.T) {
	zones, _ := newTestZones(t)
	kolkata := mustZone(t, zones, testutil.ZoneKolkata)

	tests := []struct {
		start  string
		period string
	}{
		{start: "2021-01-15T08:00Z", period: "P1M2DT3H"},
		{start: "2019-06-10T00:00+05:30", period: "P1Y"},
		{start: "2021-02-01T12:00Z", period: "P3DT0.000000001S"},
		{start: "2021-07-20T23:59:59Z", period: "PT1S"},
	}

	for _, tt := range tests {
		t.Run(tt.start+" "+tt.period, func(t *testing.T) {
			start := mustInstant(t, tt.start)
			p := mustPeriod(t, tt.period)

			end, err := start.PlusPeriod(p, kolkata)
			require.NoError(t, err)

			forward, err := start.PeriodUntil(end, kolkata)
			require.NoError(t, err)
			assert.Equal(t, p, forward)

			backward, err := end.PeriodUntil(start, kolkata)
			require.NoError(t, err)
			neg, err := p.Negate()
			require.NoError(t, err)
			assert.Equal(t, neg, backward)

			restored, err := end.MinusPeriod(p, kolkata)
			require.NoError(t, err)
			assert.Equal(t, start, restored)
		})
	}
}

func TestInstant_PlusPeriodFailures(t *testing.T) {
	_, err := MaxInstant.PlusPeriod(mustPeriod(t, "P1D"), UTC)
	assert.ErrorIs(t, err, ErrArithmetic)

	near := mustInstant(t, "+999999-12-31T00:00Z")
	_, err = near.PlusPeriod(mustPeriod(t, "PT24H"), UTC)
	assert.ErrorIs(t, err, ErrArithmetic, "time part leaves the civil range")

	got, err := near.PlusPeriod(mustPeriod(t, "PT23H"), UTC)
	require.NoError(t, err)
	assert.Equal(t, "+999999-12-31T23:00:00Z", got.String())
}

func TestLocalDateTime_Until(t *testing.T) {
	a := MustLocalDateTime(2021, January, 31, 10, 0, 0, 0)
	b := MustLocalDateTime(2021, February, 28, 10, 0, 0, 0)
	c := MustLocalDateTime(2021, February, 28, 9, 59, 59, 999_999_999)

	days, err := a.Until(b, UnitDay)
	require.NoError(t, err)
	assert.Equal(t, int64(28), days)

	days, err = a.Until(c, UnitDay)
	require.NoError(t, err)
	assert.Equal(t, int64(27), days)

	days, err = c.Until(a, UnitDay)
	require.NoError(t, err)
	assert.Equal(t, int64(-27), days)

	next, err := a.Plus(1, UnitMonth)
	require.NoError(t, err)
	assert.Equal(t, MustLocalDateTime(2021, February, 28, 10, 0, 0, 0), next)
}
