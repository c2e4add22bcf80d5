package datetime

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratik-mahalle/calendrical/internal/testutil"
)

func newTestZones(t *testing.T) (*Zones, *testutil.MockZoneRules) {
	t.Helper()
	rules := testutil.NewMockZoneRules()
	return NewZones(rules), rules
}

func mustZone(t *testing.T, zones *Zones, id string) TimeZone {
	t.Helper()
	zone, err := zones.Of(id)
	require.NoError(t, err)
	return zone
}

func TestZones_Of(t *testing.T) {
	zones, _ := newTestZones(t)

	tests := []struct {
		id         string
		wantID     string
		wantOffset int
		fixed      bool
	}{
		{id: "Z", wantID: "Z", fixed: true},
		{id: "+05:30", wantID: "+05:30", wantOffset: 19_800, fixed: true},
		{id: "-0800", wantID: "-08:00", wantOffset: -28_800, fixed: true},
		{id: "UTC", wantID: "UTC", fixed: true},
		{id: "GMT", wantID: "GMT", fixed: true},
		{id: "UT", wantID: "UT", fixed: true},
		{id: "GMT+01:00", wantID: "GMT+01:00", wantOffset: 3600, fixed: true},
		{id: "UTC-5", wantID: "UTC-05:00", wantOffset: -18_000, fixed: true},
		{id: "UT+03", wantID: "UT+03:00", wantOffset: 10_800, fixed: true},
		{id: "UTC+00:00", wantID: "UTC", fixed: true},
		{id: testutil.ZoneSpring, wantID: testutil.ZoneSpring},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			zone, err := zones.Of(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, zone.ID())

			fixed, isFixed := zone.(FixedOffsetZone)
			assert.Equal(t, tt.fixed, isFixed)
			if isFixed {
				assert.Equal(t, tt.wantOffset, fixed.Offset().TotalSeconds())
			}
		})
	}
}

func TestZones_OfInvalid(t *testing.T) {
	zones, _ := newTestZones(t)

	for _, id := range []string{"", "X", "+25:00", "UTC+", "GMT+1:30", "Nowhere/City"} {
		t.Run(id, func(t *testing.T) {
			_, err := zones.Of(id)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrIllegalTimeZone)
			assert.ErrorIs(t, err, ErrIllegalArgument, "an illegal zone is an illegal argument")
			assert.False(t, errors.Is(err, ErrArithmetic))
		})
	}
}

func TestZones_CurrentSystemDefaultIsFresh(t *testing.T) {
	zones, rules := newTestZones(t)

	zone, err := zones.CurrentSystemDefault()
	require.NoError(t, err)
	assert.Equal(t, testutil.ZoneSpring, zone.ID())

	rules.SetSystemZone(testutil.ZoneKolkata)
	zone, err = zones.CurrentSystemDefault()
	require.NoError(t, err)
	assert.Equal(t, testutil.ZoneKolkata, zone.ID())

	rules.SetSystemZone("UTC+01:00")
	zone, err = zones.CurrentSystemDefault()
	require.NoError(t, err)
	assert.Equal(t, "UTC+01:00", zone.ID())

	rules.SystemError = errors.New("no host zone")
	_, err = zones.CurrentSystemDefault()
	assert.Error(t, err)
}

func TestZones_AvailableZoneIDs(t *testing.T) {
	zones, _ := newTestZones(t)

	ids, err := zones.AvailableZoneIDs()
	require.NoError(t, err)
	assert.Contains(t, ids, "UTC")
	assert.Contains(t, ids, testutil.ZoneSpring)
	assert.IsIncreasing(t, ids)
}

func TestZones_FromLocation(t *testing.T) {
	zones, _ := newTestZones(t)

	zone, err := zones.FromLocation(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "UTC", zone.ID())

	_, err = zones.FromLocation(nil)
	assert.ErrorIs(t, err, ErrIllegalTimeZone)
}

func TestRegionZone_Gap(t *testing.T) {
	zones, _ := newTestZones(t)
	zone := mustZone(t, zones, testutil.ZoneSpring)

	inGap := MustLocalDateTime(2021, March, 28, 2, 30, 0, 0)
	afterGap := MustLocalDateTime(2021, March, 28, 3, 30, 0, 0)

	zdt, err := zone.ResolveLocal(inGap, nil)
	require.NoError(t, err)
	assert.Equal(t, afterGap, zdt.DateTime, "the reading moves forward by the gap")
	assert.Equal(t, 7200, zdt.Offset.TotalSeconds())

	a, err := inGap.ToInstantIn(zone)
	require.NoError(t, err)
	b, err := afterGap.ToInstantIn(zone)
	require.NoError(t, err)
	assert.Equal(t, b, a)
	assert.Equal(t, int64(1_616_895_000), a.EpochSeconds())

	// the start of the gap maps onto the transition itself
	start, err := MustLocalDateTime(2021, March, 28, 2, 0, 0, 0).ToInstantIn(zone)
	require.NoError(t, err)
	assert.Equal(t, testutil.SpringForward, start.EpochSeconds())
}

func TestRegionZone_Overlap(t *testing.T) {
	zones, _ := newTestZones(t)
	zone := mustZone(t, zones, testutil.ZoneSpring)

	ambiguous := MustLocalDateTime(2021, October, 31, 2, 30, 0, 0)
	summer := MustUtcOffset(OffsetHours(2))
	winter := MustUtcOffset(OffsetHours(1))

	tests := []struct {
		name      string
		preferred *UtcOffset
		want      UtcOffset
	}{
		{name: "no preference takes the earlier instant", preferred: nil, want: summer},
		{name: "prefer summer time", preferred: &summer, want: summer},
		{name: "prefer winter time", preferred: &winter, want: winter},
		{name: "unrelated preference is ignored", preferred: &ZeroOffset, want: summer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zdt, err := zone.ResolveLocal(ambiguous, tt.preferred)
			require.NoError(t, err)
			assert.Equal(t, ambiguous, zdt.DateTime)
			assert.Equal(t, tt.want, zdt.Offset)
		})
	}

	i, err := ambiguous.ToInstantIn(zone)
	require.NoError(t, err)
	assert.Equal(t, testutil.FallBack-1800, i.EpochSeconds())
}

func TestRegionZone_MidnightGap(t *testing.T) {
	zones, _ := newTestZones(t)
	zone := mustZone(t, zones, testutil.ZoneMidnightGap)

	start, err := MustLocalDate(2018, November, 4).AtStartOfDayIn(zone)
	require.NoError(t, err)
	assert.Equal(t, testutil.MidnightGapAt, start.EpochSeconds())

	dt, err := start.ToLocalDateTime(zone)
	require.NoError(t, err)
	assert.Equal(t, MustLocalDateTime(2018, November, 4, 1, 0, 0, 0), dt)

	// an ordinary day starts at midnight
	start, err = MustLocalDate(2018, November, 5).AtStartOfDayIn(zone)
	require.NoError(t, err)
	dt, err = start.ToLocalDateTime(zone)
	require.NoError(t, err)
	assert.Equal(t, Midnight, dt.LocalTime())
}

func TestRegionZone_AnomalousTransition(t *testing.T) {
	zones, _ := newTestZones(t)
	zone := mustZone(t, zones, testutil.ZoneAnomalous)

	reading, err := InstantOfEpochSeconds(testutil.AnomalousAt, 0).ToLocalDateTime(UTC)
	require.NoError(t, err)

	_, err = zone.ResolveLocal(reading, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrArithmetic)
	assert.Contains(t, err.Error(), "anomalously long")
}

func TestRegionZone_RoundTripAwayFromTransitions(t *testing.T) {
	zones, _ := newTestZones(t)
	zone := mustZone(t, zones, testutil.ZoneSpring)

	start := InstantOfEpochSeconds(1_609_459_200, 123_456_789) // 2021-01-01
	for h := int64(0); h < 366*24; h += 5 {
		i := start.PlusTime(h, UnitHour)
		// the second occurrence of the repeated hour resolves to the first
		if !i.Before(InstantOfEpochSeconds(testutil.FallBack, 0)) && i.Before(InstantOfEpochSeconds(testutil.FallBack+3600, 0)) {
			continue
		}
		dt, err := i.ToLocalDateTime(zone)
		require.NoError(t, err)
		back, err := dt.ToInstantIn(zone)
		require.NoError(t, err)
		require.Equal(t, i, back, "round trip of %s via %s", i, dt)
	}
}

func TestFixedOffsetZone(t *testing.T) {
	zone := MustUtcOffset(OffsetHours(-5), OffsetMinutes(-30)).AsTimeZone()
	assert.Equal(t, "-05:30", zone.ID())

	dt := MustLocalDateTime(2021, March, 28, 2, 30, 0, 0)
	i, err := dt.ToInstantIn(zone)
	require.NoError(t, err)
	assert.Equal(t, dt.ToInstantAt(zone.Offset()), i)

	back, err := i.ToLocalDateTime(zone)
	require.NoError(t, err)
	assert.Equal(t, dt, back)

	assert.True(t, UTC.Equal(FixedOffset(ZeroOffset)))
	assert.False(t, UTC.Equal(zone))
}

func TestZones_ConcurrentUse(t *testing.T) {
	zones, rules := newTestZones(t)
	zone := mustZone(t, zones, testutil.ZoneSpring)
	dt := MustLocalDateTime(2021, March, 28, 2, 30, 0, 0)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if g%2 == 0 {
					rules.SetSystemZone(testutil.ZoneKolkata)
				}
				_, _ = zones.CurrentSystemDefault()
				zdt, err := zone.ResolveLocal(dt, nil)
				assert.NoError(t, err)
				assert.Equal(t, 3, zdt.DateTime.Hour())
			}
		}(g)
	}
	wg.Wait()
	assert.Positive(t, rules.Calls())
}
