package datetime

import (
	"time"

	"github.com/pratik-mahalle/calendrical/internal/pkg/safemath"
)

// LocalDateTime is a civil date and time of day, not bound to any zone
type LocalDateTime struct {
	date LocalDate
	time LocalTime
}

// Boundaries of LocalDateTime
var (
	MinLocalDateTime = LocalDateTime{date: MinLocalDate, time: MinLocalTime}
	MaxLocalDateTime = LocalDateTime{date: MaxLocalDate, time: MaxLocalTime}
)

// NewLocalDateTime validates every field
func NewLocalDateTime(year int, month Month, day, hour, minute, second, nanosecond int) (LocalDateTime, error) {
	d, err := NewLocalDate(year, month, day)
	if err != nil {
		return LocalDateTime{}, err
	}
	t, err := NewLocalTime(hour, minute, second, nanosecond)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: d, time: t}, nil
}

// MustLocalDateTime is like NewLocalDateTime but panics on invalid input
func MustLocalDateTime(year int, month Month, day, hour, minute, second, nanosecond int) LocalDateTime {
	dt, err := NewLocalDateTime(year, month, day, hour, minute, second, nanosecond)
	if err != nil {
		panic(err)
	}
	return dt
}

// LocalDateTimeOf combines a date and a time of day
func LocalDateTimeOf(date LocalDate, t LocalTime) LocalDateTime {
	return LocalDateTime{date: date, time: t}
}

// LocalDateTimeFromTime reads the wall clock of t in its own location
func LocalDateTimeFromTime(t time.Time) (LocalDateTime, error) {
	y, mo, d := t.Date()
	date, err := NewLocalDate(y, Month(mo), d)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{
		date: date,
		time: LocalTime{hour: t.Hour(), minute: t.Minute(), second: t.Second(), nanosecond: t.Nanosecond()},
	}, nil
}

// localDateTimeOfEpochSeconds reads an instant at a fixed offset
func localDateTimeOfEpochSeconds(epochSeconds int64, nanos int32, offset UtcOffset) (LocalDateTime, error) {
	local, err := safemath.Add64(epochSeconds, int64(offset.totalSeconds))
	if err != nil {
		return LocalDateTime{}, arithmetic(err, "epoch second %d at offset %s", epochSeconds, offset)
	}
	epochDay := safemath.FloorDiv(local, secondsPerDay)
	secondOfDay := safemath.FloorMod(local, secondsPerDay)
	date, err := LocalDateOfEpochDays(epochDay)
	if err != nil {
		return LocalDateTime{}, arithmetic(err, "instant %d.%09d is out of the LocalDateTime range", epochSeconds, nanos)
	}
	return LocalDateTime{date: date, time: localTimeOfSecondOfDay(int(secondOfDay), int(nanos))}, nil
}

func (dt LocalDateTime) Date() LocalDate      { return dt.date }
func (dt LocalDateTime) LocalTime() LocalTime { return dt.time }
func (dt LocalDateTime) Year() int            { return dt.date.year }
func (dt LocalDateTime) Month() Month         { return dt.date.month }
func (dt LocalDateTime) Day() int             { return dt.date.day }
func (dt LocalDateTime) DayOfWeek() DayOfWeek { return dt.date.DayOfWeek() }
func (dt LocalDateTime) DayOfYear() int       { return dt.date.DayOfYear() }
func (dt LocalDateTime) Hour() int            { return dt.time.hour }
func (dt LocalDateTime) Minute() int          { return dt.time.minute }
func (dt LocalDateTime) Second() int          { return dt.time.second }
func (dt LocalDateTime) Nanosecond() int      { return dt.time.nanosecond }

// toEpochSeconds interprets the reading at the given offset
func (dt LocalDateTime) toEpochSeconds(offset UtcOffset) int64 {
	return dt.date.ToEpochDays()*secondsPerDay + int64(dt.time.ToSecondOfDay()) - int64(offset.totalSeconds)
}

// ToInstantAt interprets the reading at a fixed offset
func (dt LocalDateTime) ToInstantAt(offset UtcOffset) Instant {
	return Instant{epochSeconds: dt.toEpochSeconds(offset), nanos: int32(dt.time.nanosecond)}
}

// ToInstantIn resolves the reading in the zone. Readings in a gap move
// forward by the length of the gap; readings in an overlap use the
// earlier offset.
func (dt LocalDateTime) ToInstantIn(zone TimeZone) (Instant, error) {
	return zone.LocalDateTimeToInstant(dt)
}

// Time returns the time.Time with the same wall clock in loc. Years
// outside time.Time's practical range are passed through as is.
func (dt LocalDateTime) Time(loc *time.Location) time.Time {
	return time.Date(dt.date.year, time.Month(dt.date.month), dt.date.day,
		dt.time.hour, dt.time.minute, dt.time.second, dt.time.nanosecond, loc)
}

// Compare returns -1, 0 or +1
func (dt LocalDateTime) Compare(other LocalDateTime) int {
	if c := dt.date.Compare(other.date); c != 0 {
		return c
	}
	return dt.time.Compare(other.time)
}

func (dt LocalDateTime) Before(other LocalDateTime) bool { return dt.Compare(other) < 0 }
func (dt LocalDateTime) After(other LocalDateTime) bool  { return dt.Compare(other) > 0 }
func (dt LocalDateTime) Equal(other LocalDateTime) bool  { return dt == other }

// Plus advances the date by n units and keeps the time of day
func (dt LocalDateTime) Plus(n int64, unit DateBasedUnit) (LocalDateTime, error) {
	d, err := dt.date.Plus(n, unit)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: d, time: dt.time}, nil
}

// Until counts whole date-based units from dt to other. The end date is
// pulled one day toward dt when its time of day has not yet reached dt's.
func (dt LocalDateTime) Until(other LocalDateTime, unit DateBasedUnit) (int64, error) {
	end := other.date
	switch {
	case end.After(dt.date) && other.time.Before(dt.time):
		end, _ = end.plusDays(-1)
	case end.Before(dt.date) && other.time.After(dt.time):
		end, _ = end.plusDays(1)
	}
	return dt.date.Until(end, unit)
}

// plusSeconds shifts the reading, failing outside the LocalDateTime range
func (dt LocalDateTime) plusSeconds(seconds int64) (LocalDateTime, error) {
	if seconds == 0 {
		return dt, nil
	}
	return localDateTimeOfEpochSeconds(dt.toEpochSeconds(ZeroOffset)+seconds, int32(dt.time.nanosecond), ZeroOffset)
}

// String formats as ISO-8601, e.g. 2021-03-28T02:30
func (dt LocalDateTime) String() string {
	return dt.date.String() + "T" + dt.time.String()
}

// MarshalText implements encoding.TextMarshaler
func (dt LocalDateTime) MarshalText() ([]byte, error) {
	return []byte(dt.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (dt *LocalDateTime) UnmarshalText(text []byte) error {
	parsed, err := ParseLocalDateTime(string(text))
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}
