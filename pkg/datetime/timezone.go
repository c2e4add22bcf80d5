package datetime

import (
	"fmt"
)

// TimeZone maps instants to civil readings and back. The only
// implementations are FixedOffsetZone and RegionZone.
type TimeZone interface {
	// ID is the zone identifier, e.g. "Europe/Berlin", "Z" or "UTC+01:00"
	ID() string
	// OffsetAt returns the offset in force at the instant
	OffsetAt(i Instant) (UtcOffset, error)
	// InstantToLocalDateTime reads the wall clock at the instant
	InstantToLocalDateTime(i Instant) (LocalDateTime, error)
	// LocalDateTimeToInstant resolves the reading with the default policy
	LocalDateTimeToInstant(dt LocalDateTime) (Instant, error)
	// ResolveLocal resolves a reading to a valid zoned reading. In an
	// overlap the preferred offset wins when it is one of the candidates.
	// In a gap the reading is moved forward by the length of the gap.
	ResolveLocal(dt LocalDateTime, preferred *UtcOffset) (ZonedDateTime, error)
	// AtStartOfDay returns the first instant of the date
	AtStartOfDay(date LocalDate) (Instant, error)
	Equal(other TimeZone) bool
	String() string

	timeZone()
}

// ZonedDateTime is a civil reading together with the offset and zone it
// was resolved in
type ZonedDateTime struct {
	DateTime LocalDateTime
	Offset   UtcOffset
	Zone     TimeZone
}

// ToInstant returns the instant of the reading
func (z ZonedDateTime) ToInstant() Instant {
	return z.DateTime.ToInstantAt(z.Offset)
}

func (z ZonedDateTime) String() string {
	s := z.DateTime.String() + z.Offset.String()
	if z.Zone != nil && z.Zone.ID() != z.Offset.String() {
		s += "[" + z.Zone.ID() + "]"
	}
	return s
}

// FixedOffsetZone is a zone whose offset never changes
type FixedOffsetZone struct {
	offset UtcOffset
	id     string
}

// UTC is the fixed zone with a zero offset and the id "Z"
var UTC = newFixedOffsetZone(ZeroOffset, "Z")

func newFixedOffsetZone(offset UtcOffset, id string) FixedOffsetZone {
	return FixedOffsetZone{offset: offset, id: id}
}

// FixedOffset returns the zone for the offset; its id is the offset text
func FixedOffset(offset UtcOffset) FixedOffsetZone {
	return offset.AsTimeZone()
}

func (z FixedOffsetZone) timeZone() {}

func (z FixedOffsetZone) ID() string        { return z.id }
func (z FixedOffsetZone) String() string    { return z.id }
func (z FixedOffsetZone) Offset() UtcOffset { return z.offset }

func (z FixedOffsetZone) OffsetAt(Instant) (UtcOffset, error) {
	return z.offset, nil
}

func (z FixedOffsetZone) InstantToLocalDateTime(i Instant) (LocalDateTime, error) {
	return localDateTimeOfEpochSeconds(i.epochSeconds, i.nanos, z.offset)
}

func (z FixedOffsetZone) LocalDateTimeToInstant(dt LocalDateTime) (Instant, error) {
	return dt.ToInstantAt(z.offset), nil
}

func (z FixedOffsetZone) ResolveLocal(dt LocalDateTime, _ *UtcOffset) (ZonedDateTime, error) {
	return ZonedDateTime{DateTime: dt, Offset: z.offset, Zone: z}, nil
}

func (z FixedOffsetZone) AtStartOfDay(date LocalDate) (Instant, error) {
	return date.AtTime(Midnight).ToInstantAt(z.offset), nil
}

func (z FixedOffsetZone) Equal(other TimeZone) bool {
	return other != nil && z.id == other.ID()
}

// RegionZone is a zone whose offsets come from the zone rules database
type RegionZone struct {
	id    string
	rules ZoneRules
}

func (z RegionZone) timeZone() {}

func (z RegionZone) ID() string     { return z.id }
func (z RegionZone) String() string { return z.id }

func (z RegionZone) OffsetAt(i Instant) (UtcOffset, error) {
	return z.offsetAtSeconds(i.epochSeconds)
}

func (z RegionZone) offsetAtSeconds(epochSeconds int64) (UtcOffset, error) {
	seconds, err := z.rules.OffsetSecondsAt(z.id, epochSeconds)
	if err != nil {
		return UtcOffset{}, fmt.Errorf("offset of %s at %d: %w", z.id, epochSeconds, err)
	}
	offset, err := UtcOffsetOfSeconds(int(seconds))
	if err != nil {
		return UtcOffset{}, arithmetic(err, "zone rules returned an invalid offset for %s", z.id)
	}
	return offset, nil
}

func (z RegionZone) InstantToLocalDateTime(i Instant) (LocalDateTime, error) {
	offset, err := z.OffsetAt(i)
	if err != nil {
		return LocalDateTime{}, err
	}
	return localDateTimeOfEpochSeconds(i.epochSeconds, i.nanos, offset)
}

func (z RegionZone) LocalDateTimeToInstant(dt LocalDateTime) (Instant, error) {
	zdt, err := z.ResolveLocal(dt, nil)
	if err != nil {
		return Instant{}, err
	}
	return zdt.ToInstant(), nil
}

func (z RegionZone) AtStartOfDay(date LocalDate) (Instant, error) {
	return z.LocalDateTimeToInstant(date.AtTime(Midnight))
}

func (z RegionZone) Equal(other TimeZone) bool {
	return other != nil && z.id == other.ID()
}

// zoned reads the instant in the zone together with its offset
func zoned(zone TimeZone, i Instant) (ZonedDateTime, error) {
	offset, err := zone.OffsetAt(i)
	if err != nil {
		return ZonedDateTime{}, err
	}
	dt, err := localDateTimeOfEpochSeconds(i.epochSeconds, i.nanos, offset)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTime{DateTime: dt, Offset: offset, Zone: zone}, nil
}
