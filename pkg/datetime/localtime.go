package datetime

import (
	"fmt"
	"strings"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86_400

	nanosPerMicro  int64 = 1_000
	nanosPerMilli  int64 = 1_000_000
	nanosPerSecond int64 = 1_000_000_000
	nanosPerMinute       = 60 * nanosPerSecond
	nanosPerHour         = 60 * nanosPerMinute
	nanosPerDay          = 24 * nanosPerHour
)

// LocalTime is a time of day with nanosecond precision
type LocalTime struct {
	hour       int
	minute     int
	second     int
	nanosecond int
}

// Boundaries of LocalTime
var (
	MinLocalTime = LocalTime{}
	MaxLocalTime = LocalTime{hour: 23, minute: 59, second: 59, nanosecond: 999_999_999}
	Midnight     = MinLocalTime
)

// NewLocalTime validates the fields and returns the time of day
func NewLocalTime(hour, minute, second, nanosecond int) (LocalTime, error) {
	if hour < 0 || hour > 23 {
		return LocalTime{}, illegalArgument("invalid hour %d", hour)
	}
	if minute < 0 || minute > 59 {
		return LocalTime{}, illegalArgument("invalid minute %d", minute)
	}
	if second < 0 || second > 59 {
		return LocalTime{}, illegalArgument("invalid second %d", second)
	}
	if nanosecond < 0 || int64(nanosecond) >= nanosPerSecond {
		return LocalTime{}, illegalArgument("invalid nanosecond %d", nanosecond)
	}
	return LocalTime{hour: hour, minute: minute, second: second, nanosecond: nanosecond}, nil
}

// MustLocalTime is like NewLocalTime but panics on invalid input
func MustLocalTime(hour, minute, second, nanosecond int) LocalTime {
	t, err := NewLocalTime(hour, minute, second, nanosecond)
	if err != nil {
		panic(err)
	}
	return t
}

// LocalTimeOfSecondOfDay returns the time that many seconds after midnight
func LocalTimeOfSecondOfDay(seconds int) (LocalTime, error) {
	if seconds < 0 || seconds >= secondsPerDay {
		return LocalTime{}, illegalArgument("second of day %d is out of range", seconds)
	}
	return localTimeOfSecondOfDay(seconds, 0), nil
}

// LocalTimeOfMillisecondOfDay returns the time that many milliseconds after midnight
func LocalTimeOfMillisecondOfDay(millis int) (LocalTime, error) {
	if millis < 0 || int64(millis) >= nanosPerDay/nanosPerMilli {
		return LocalTime{}, illegalArgument("millisecond of day %d is out of range", millis)
	}
	return localTimeOfSecondOfDay(millis/1000, (millis%1000)*int(nanosPerMilli)), nil
}

// LocalTimeOfNanosecondOfDay returns the time that many nanoseconds after midnight
func LocalTimeOfNanosecondOfDay(nanos int64) (LocalTime, error) {
	if nanos < 0 || nanos >= nanosPerDay {
		return LocalTime{}, illegalArgument("nanosecond of day %d is out of range", nanos)
	}
	return localTimeOfSecondOfDay(int(nanos/nanosPerSecond), int(nanos%nanosPerSecond)), nil
}

func localTimeOfSecondOfDay(secondOfDay, nanos int) LocalTime {
	return LocalTime{
		hour:       secondOfDay / secondsPerHour,
		minute:     secondOfDay / secondsPerMinute % 60,
		second:     secondOfDay % 60,
		nanosecond: nanos,
	}
}

func (t LocalTime) Hour() int       { return t.hour }
func (t LocalTime) Minute() int     { return t.minute }
func (t LocalTime) Second() int     { return t.second }
func (t LocalTime) Nanosecond() int { return t.nanosecond }

// ToSecondOfDay drops the fraction of the second
func (t LocalTime) ToSecondOfDay() int {
	return t.hour*secondsPerHour + t.minute*secondsPerMinute + t.second
}

// ToMillisecondOfDay drops the sub-millisecond fraction
func (t LocalTime) ToMillisecondOfDay() int {
	return t.ToSecondOfDay()*1000 + t.nanosecond/int(nanosPerMilli)
}

func (t LocalTime) ToNanosecondOfDay() int64 {
	return int64(t.ToSecondOfDay())*nanosPerSecond + int64(t.nanosecond)
}

// Compare returns -1, 0 or +1
func (t LocalTime) Compare(other LocalTime) int {
	return sign(t.ToNanosecondOfDay() - other.ToNanosecondOfDay())
}

func (t LocalTime) Before(other LocalTime) bool { return t.Compare(other) < 0 }
func (t LocalTime) After(other LocalTime) bool  { return t.Compare(other) > 0 }
func (t LocalTime) Equal(other LocalTime) bool  { return t == other }

// AtDate combines the time with a date
func (t LocalTime) AtDate(d LocalDate) LocalDateTime {
	return LocalDateTime{date: d, time: t}
}

// String formats as HH:MM, HH:MM:SS or HH:MM:SS.fff in the shortest form
// that keeps full precision.
func (t LocalTime) String() string {
	var b strings.Builder
	b.Grow(18)
	write2(&b, t.hour)
	b.WriteByte(':')
	write2(&b, t.minute)
	if t.second > 0 || t.nanosecond > 0 {
		b.WriteByte(':')
		write2(&b, t.second)
		if t.nanosecond > 0 {
			b.WriteString(formatFraction(t.nanosecond))
		}
	}
	return b.String()
}

func formatFraction(nanos int) string {
	switch {
	case int64(nanos)%nanosPerMilli == 0:
		return fmt.Sprintf(".%03d", int64(nanos)/nanosPerMilli)
	case int64(nanos)%nanosPerMicro == 0:
		return fmt.Sprintf(".%06d", int64(nanos)/nanosPerMicro)
	default:
		return fmt.Sprintf(".%09d", nanos)
	}
}

// MarshalText implements encoding.TextMarshaler
func (t LocalTime) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *LocalTime) UnmarshalText(text []byte) error {
	parsed, err := ParseLocalTime(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
