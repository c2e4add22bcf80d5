package testutil

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
)

// Scripted zone ids served by MockZoneRules
const (
	// ZoneSpring follows central European summer time in 2021: +01:00,
	// +02:00 from 2021-03-28T01:00Z, +01:00 again from 2021-10-31T01:00Z
	ZoneSpring = "Test/Spring"
	// ZoneMidnightGap skips local midnight on 2018-11-04 (-03:00 to -02:00)
	ZoneMidnightGap = "Test/MidnightGap"
	// ZoneKolkata is constant +05:30
	ZoneKolkata = "Test/Kolkata"
	// ZoneAnomalous jumps from -14:00 to +14:00, a gap longer than a day
	ZoneAnomalous = "Test/Anomalous"
)

// Transition instants of the scripted zones, in epoch seconds
const (
	SpringForward int64 = 1_616_893_200 // 2021-03-28T01:00:00Z
	FallBack      int64 = 1_635_642_000 // 2021-10-31T01:00:00Z
	MidnightGapAt int64 = 1_541_300_400 // 2018-11-04T03:00:00Z
	AnomalousAt   int64 = 1_600_000_000
)

// Transition switches a zone to Offset from epoch second At onwards
type Transition struct {
	At     int64
	Offset int32
}

// ZoneScript is the offset history of one zone
type ZoneScript struct {
	Initial     int32
	Transitions []Transition
}

func (z ZoneScript) offsetAt(epochSeconds int64) int32 {
	i := sort.Search(len(z.Transitions), func(i int) bool {
		return z.Transitions[i].At > epochSeconds
	})
	if i == 0 {
		return z.Initial
	}
	return z.Transitions[i-1].Offset
}

// MockZoneRules is a scripted zone database
type MockZoneRules struct {
	mu          sync.RWMutex
	zones       map[string]ZoneScript
	systemZone  string
	SystemError error
	ListError   error
	calls       atomic.Int64
}

// NewMockZoneRules returns rules knowing the scripted test zones. The
// system zone starts as ZoneSpring.
func NewMockZoneRules() *MockZoneRules {
	return &MockZoneRules{
		systemZone: ZoneSpring,
		zones: map[string]ZoneScript{
			ZoneSpring: {
				Initial: 3600,
				Transitions: []Transition{
					{At: SpringForward, Offset: 7200},
					{At: FallBack, Offset: 3600},
				},
			},
			ZoneMidnightGap: {
				Initial:     -3 * 3600,
				Transitions: []Transition{{At: MidnightGapAt, Offset: -2 * 3600}},
			},
			ZoneKolkata: {Initial: 5*3600 + 1800},
			ZoneAnomalous: {
				Initial:     -14 * 3600,
				Transitions: []Transition{{At: AnomalousAt, Offset: 14 * 3600}},
			},
		},
	}
}

// AddZone registers or replaces a scripted zone
func (m *MockZoneRules) AddZone(id string, script ZoneScript) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.zones[id] = script
}

// SetSystemZone changes the zone reported as the host zone
func (m *MockZoneRules) SetSystemZone(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.systemZone = id
}

// Calls returns how many offset lookups were made
func (m *MockZoneRules) Calls() int64 {
	return m.calls.Load()
}

func (m *MockZoneRules) OffsetSecondsAt(zoneID string, epochSeconds int64) (int32, error) {
	m.calls.Add(1)
	m.mu.RLock()
	defer m.mu.RUnlock()
	z, ok := m.zones[zoneID]
	if !ok {
		return 0, fmt.Errorf("zone %q not found", zoneID)
	}
	return z.offsetAt(epochSeconds), nil
}

func (m *MockZoneRules) CurrentSystemZoneID() (string, error) {
	if m.SystemError != nil {
		return "", m.SystemError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.systemZone, nil
}

func (m *MockZoneRules) AvailableZoneIDs() ([]string, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.zones))
	for id := range m.zones {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
