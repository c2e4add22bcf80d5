package datetime

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pratik-mahalle/calendrical/internal/pkg/safemath"
)

const (
	minInstantSeconds int64 = -31_619_119_219_200 // -1000000-01-01T00:00:00Z
	maxInstantSeconds int64 = 31_494_816_403_199  // +1000000-12-31T23:59:59.999999999Z
)

// Instant is a point on the UTC time-line, bounded by MinInstant and
// MaxInstant. Adding or subtracting a Duration saturates at the bounds.
type Instant struct {
	epochSeconds int64
	nanos        int32
}

// Boundaries of Instant
var (
	MinInstant = Instant{epochSeconds: minInstantSeconds}
	MaxInstant = Instant{epochSeconds: maxInstantSeconds, nanos: 999_999_999}
)

// Now reads the system clock
func Now() Instant {
	return InstantFromTime(time.Now())
}

// InstantOfEpochSeconds normalizes a nanosecond adjustment of any sign and
// clamps the result to [MinInstant, MaxInstant]
func InstantOfEpochSeconds(epochSeconds, nanoAdjustment int64) Instant {
	extra := safemath.FloorDiv(nanoAdjustment, nanosPerSecond)
	nanos := int32(safemath.FloorMod(nanoAdjustment, nanosPerSecond))
	s, err := safemath.Add64(epochSeconds, extra)
	if err != nil {
		if epochSeconds > 0 {
			return MaxInstant
		}
		return MinInstant
	}
	return clampInstant(s, nanos)
}

// InstantOfEpochMilliseconds clamps to [MinInstant, MaxInstant]
func InstantOfEpochMilliseconds(millis int64) Instant {
	return clampInstant(safemath.FloorDiv(millis, 1000), int32(safemath.FloorMod(millis, 1000)*nanosPerMilli))
}

// InstantFromTime converts a time.Time
func InstantFromTime(t time.Time) Instant {
	return clampInstant(t.Unix(), int32(t.Nanosecond()))
}

func clampInstant(seconds int64, nanos int32) Instant {
	switch {
	case seconds < minInstantSeconds:
		return MinInstant
	case seconds > maxInstantSeconds:
		return MaxInstant
	default:
		return Instant{epochSeconds: seconds, nanos: nanos}
	}
}

func (i Instant) EpochSeconds() int64     { return i.epochSeconds }
func (i Instant) NanosecondOfSecond() int { return int(i.nanos) }

// EpochMilliseconds returns the milliseconds since the epoch, saturating
// at the int64 limits
func (i Instant) EpochMilliseconds() int64 {
	ms, err := safemath.Mul64(i.epochSeconds, 1000)
	if err == nil {
		ms, err = safemath.Add64(ms, int64(i.nanos)/nanosPerMilli)
	}
	if err != nil {
		if i.epochSeconds > 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return ms
}

// Time converts to a time.Time in UTC
func (i Instant) Time() time.Time {
	return time.Unix(i.epochSeconds, int64(i.nanos)).UTC()
}

// IsDistantPast reports whether i is the lower bound
func (i Instant) IsDistantPast() bool { return i == MinInstant }

// IsDistantFuture reports whether i is the upper bound
func (i Instant) IsDistantFuture() bool { return i == MaxInstant }

// Plus adds a duration, saturating at MinInstant and MaxInstant
func (i Instant) Plus(d Duration) Instant {
	if d.IsZero() {
		return i
	}
	s, err := safemath.Add64(i.epochSeconds, d.seconds)
	if err != nil {
		if d.seconds > 0 {
			return MaxInstant
		}
		return MinInstant
	}
	return InstantOfEpochSeconds(s, int64(i.nanos)+int64(d.nanos))
}

// Minus subtracts a duration, saturating at MinInstant and MaxInstant
func (i Instant) Minus(d Duration) Instant {
	return i.Plus(d.Neg())
}

// Sub returns the duration from other to i
func (i Instant) Sub(other Instant) Duration {
	return DurationOf(i.epochSeconds-other.epochSeconds, int64(i.nanos)-int64(other.nanos))
}

// PlusTime adds n time-based units, saturating at the bounds even when
// n * unit does not fit in a Duration
func (i Instant) PlusTime(n int64, unit TimeBasedUnit) Instant {
	seconds, nanos, err := safemath.MulDivMod(n, unit.nanoseconds, nanosPerSecond)
	if err != nil {
		if n > 0 {
			return MaxInstant
		}
		return MinInstant
	}
	return i.Plus(DurationOf(seconds, nanos))
}

// MinusTime subtracts n time-based units, saturating at the bounds
func (i Instant) MinusTime(n int64, unit TimeBasedUnit) Instant {
	if n == math.MinInt64 {
		return i.PlusTime(math.MaxInt64, unit).PlusTime(1, unit)
	}
	return i.PlusTime(-n, unit)
}

// Until counts whole units from i to other, truncated toward zero
func (i Instant) Until(other Instant, unit TimeBasedUnit) (int64, error) {
	d := other.Sub(i)
	n, err := safemath.AddMulDiv(d.seconds, nanosPerSecond, int64(d.nanos), unit.nanoseconds)
	if err != nil {
		return 0, arithmetic(err, "the number of %s between %s and %s does not fit", unit, i, other)
	}
	return n, nil
}

// OffsetIn returns the offset of zone at i
func (i Instant) OffsetIn(zone TimeZone) (UtcOffset, error) {
	return zone.OffsetAt(i)
}

// ToLocalDateTime returns the civil reading of i in zone
func (i Instant) ToLocalDateTime(zone TimeZone) (LocalDateTime, error) {
	return zone.InstantToLocalDateTime(i)
}

// Compare returns -1, 0 or +1
func (i Instant) Compare(other Instant) int {
	if i.epochSeconds != other.epochSeconds {
		if i.epochSeconds < other.epochSeconds {
			return -1
		}
		return 1
	}
	return sign(int64(i.nanos) - int64(other.nanos))
}

func (i Instant) Before(other Instant) bool { return i.Compare(other) < 0 }
func (i Instant) After(other Instant) bool  { return i.Compare(other) > 0 }
func (i Instant) Equal(other Instant) bool  { return i == other }

// String formats as ISO-8601 in UTC, e.g. 2021-03-28T01:30:00Z
func (i Instant) String() string {
	epochDay := safemath.FloorDiv(i.epochSeconds, secondsPerDay)
	secondOfDay := int(safemath.FloorMod(i.epochSeconds, secondsPerDay))
	y, m, d := civilFromEpochDays(epochDay)

	var b strings.Builder
	b.Grow(32)
	writeYear(&b, int(y))
	b.WriteByte('-')
	write2(&b, int(m))
	b.WriteByte('-')
	write2(&b, int(d))
	b.WriteByte('T')
	write2(&b, secondOfDay/secondsPerHour)
	b.WriteByte(':')
	write2(&b, secondOfDay/secondsPerMinute%60)
	b.WriteByte(':')
	write2(&b, secondOfDay%60)
	if i.nanos > 0 {
		b.WriteString(formatFraction(int(i.nanos)))
	}
	b.WriteByte('Z')
	return b.String()
}

// GoString helps when printing instants in test failures
func (i Instant) GoString() string {
	return fmt.Sprintf("Instant(%d.%09d)", i.epochSeconds, i.nanos)
}

// MarshalText implements encoding.TextMarshaler
func (i Instant) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (i *Instant) UnmarshalText(text []byte) error {
	parsed, err := ParseInstant(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
