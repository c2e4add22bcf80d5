package datetime

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pratik-mahalle/calendrical/pkg/tzdb"
)

// ZoneRules is the timezone database consulted by region zones
type ZoneRules interface {
	// OffsetSecondsAt returns the UTC offset of the zone at the epoch second
	OffsetSecondsAt(zoneID string, epochSeconds int64) (int32, error)
	// CurrentSystemZoneID returns the id of the host zone as of this call
	CurrentSystemZoneID() (string, error)
	// AvailableZoneIDs lists the region ids the rules know about
	AvailableZoneIDs() ([]string, error)
}

// Zones resolves zone ids against a set of zone rules
type Zones struct {
	rules ZoneRules
}

// NewZones binds zone lookups to rules
func NewZones(rules ZoneRules) *Zones {
	return &Zones{rules: rules}
}

// Rules returns the bound zone rules
func (z *Zones) Rules() ZoneRules { return z.rules }

// Of returns the zone for an id. "Z", offsets such as "+05:30", "UTC",
// "GMT", "UT" and their offset forms like "UTC+01:00" give fixed zones;
// anything else must be a region id known to the rules.
func (z *Zones) Of(id string) (TimeZone, error) {
	switch {
	case id == "Z":
		return UTC, nil
	case len(id) == 1:
		return nil, illegalTimeZone(nil, "invalid zone id %q", id)
	case strings.HasPrefix(id, "+"), strings.HasPrefix(id, "-"):
		offset, err := ParseUtcOffset(id)
		if err != nil {
			return nil, illegalTimeZone(err, "invalid zone id %q", id)
		}
		return offset.AsTimeZone(), nil
	case id == "UTC", id == "GMT", id == "UT":
		return newFixedOffsetZone(ZeroOffset, id), nil
	}

	for _, prefix := range []string{"UTC", "GMT", "UT"} {
		rest := strings.TrimPrefix(id, prefix)
		if rest == id || (!strings.HasPrefix(rest, "+") && !strings.HasPrefix(rest, "-")) {
			continue
		}
		offset, err := ParseUtcOffset(rest)
		if err != nil {
			return nil, illegalTimeZone(err, "invalid zone id %q", id)
		}
		if offset == ZeroOffset {
			return newFixedOffsetZone(offset, prefix), nil
		}
		return newFixedOffsetZone(offset, prefix+offset.String()), nil
	}

	return z.region(id)
}

func (z *Zones) region(id string) (TimeZone, error) {
	if _, err := z.rules.OffsetSecondsAt(id, 0); err != nil {
		return nil, illegalTimeZone(err, "unknown zone id %q", id)
	}
	return RegionZone{id: id, rules: z.rules}, nil
}

// CurrentSystemDefault asks the rules for the host zone on every call, so
// a change of the host configuration is seen by the next call
func (z *Zones) CurrentSystemDefault() (TimeZone, error) {
	id, err := z.rules.CurrentSystemZoneID()
	if err != nil {
		return nil, err
	}
	return z.Of(id)
}

// AvailableZoneIDs returns the sorted region ids. "UTC" is always present.
func (z *Zones) AvailableZoneIDs() ([]string, error) {
	ids, err := z.rules.AvailableZoneIDs()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(ids)+1)
	out := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	if _, ok := seen["UTC"]; !ok {
		out = append(out, "UTC")
	}
	sort.Strings(out)
	return out, nil
}

// FromLocation returns the zone named by loc. time.Local maps to the
// current system zone.
func (z *Zones) FromLocation(loc *time.Location) (TimeZone, error) {
	if loc == nil {
		return nil, illegalTimeZone(nil, "nil location")
	}
	if loc == time.Local || loc.String() == "Local" {
		return z.CurrentSystemDefault()
	}
	return z.Of(loc.String())
}

var (
	defaultZonesOnce sync.Once
	defaultZones     *Zones
)

// DefaultZones returns the zones backed by the host zoneinfo database
func DefaultZones() *Zones {
	defaultZonesOnce.Do(func() {
		defaultZones = NewZones(tzdb.Default())
	})
	return defaultZones
}

// TimeZoneOf resolves id against the host zoneinfo database
func TimeZoneOf(id string) (TimeZone, error) {
	return DefaultZones().Of(id)
}

// MustTimeZone is like TimeZoneOf but panics on failure
func MustTimeZone(id string) TimeZone {
	zone, err := TimeZoneOf(id)
	if err != nil {
		panic(err)
	}
	return zone
}

// CurrentSystemDefault returns the host zone
func CurrentSystemDefault() (TimeZone, error) {
	return DefaultZones().CurrentSystemDefault()
}

// AvailableZoneIDs lists the zones of the host zoneinfo database
func AvailableZoneIDs() ([]string, error) {
	return DefaultZones().AvailableZoneIDs()
}

// IsIllegalTimeZone reports whether err is an unknown or malformed zone id
func IsIllegalTimeZone(err error) bool {
	return errors.Is(err, ErrIllegalTimeZone)
}
