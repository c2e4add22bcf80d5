package datetime

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pratik-mahalle/calendrical/internal/pkg/safemath"
)

// Duration is an exact signed amount of time stored as whole seconds and a
// non-negative nanosecond adjustment. It covers the full distance between
// any two instants, which time.Duration does not.
type Duration struct {
	seconds int64
	nanos   int32
}

// Boundaries of Duration
var (
	MinDuration = Duration{seconds: math.MinInt64}
	MaxDuration = Duration{seconds: math.MaxInt64, nanos: 999_999_999}
)

// DurationOf normalizes seconds and a nanosecond adjustment of any sign,
// saturating at MinDuration and MaxDuration
func DurationOf(seconds, nanoAdjustment int64) Duration {
	extra := safemath.FloorDiv(nanoAdjustment, nanosPerSecond)
	nanos := safemath.FloorMod(nanoAdjustment, nanosPerSecond)
	s, err := safemath.Add64(seconds, extra)
	if err != nil {
		if seconds > 0 {
			return MaxDuration
		}
		return MinDuration
	}
	return Duration{seconds: s, nanos: int32(nanos)}
}

// Seconds returns a duration of n seconds
func Seconds(n int64) Duration { return Duration{seconds: n} }

// Nanoseconds returns a duration of n nanoseconds
func Nanoseconds(n int64) Duration { return DurationOf(0, n) }

// Milliseconds returns a duration of n milliseconds
func Milliseconds(n int64) Duration {
	return DurationOf(safemath.FloorDiv(n, 1000), safemath.FloorMod(n, 1000)*nanosPerMilli)
}

// DurationFromStd converts a time.Duration
func DurationFromStd(d time.Duration) Duration {
	return Nanoseconds(int64(d))
}

// Std converts to time.Duration, saturating at its limits
func (d Duration) Std() time.Duration {
	return time.Duration(d.InWholeNanoseconds())
}

// Parts returns whole seconds and the non-negative nanosecond adjustment
func (d Duration) Parts() (seconds int64, nanos int32) { return d.seconds, d.nanos }

// InWholeNanoseconds returns the duration in nanoseconds, saturating at the
// int64 limits
func (d Duration) InWholeNanoseconds() int64 {
	seconds, nanos := d.seconds, int64(d.nanos)
	if seconds < 0 && nanos > 0 {
		seconds++
		nanos -= nanosPerSecond
	}
	n, err := safemath.Mul64(seconds, nanosPerSecond)
	if err == nil {
		n, err = safemath.Add64(n, nanos)
	}
	if err != nil {
		if d.seconds < 0 {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return n
}

func (d Duration) IsZero() bool     { return d.seconds == 0 && d.nanos == 0 }
func (d Duration) IsNegative() bool { return d.seconds < 0 }
func (d Duration) IsPositive() bool { return d.seconds > 0 || (d.seconds == 0 && d.nanos > 0) }

// Neg returns -d, saturating at MaxDuration for MinDuration
func (d Duration) Neg() Duration {
	if d.nanos == 0 {
		if d.seconds == math.MinInt64 {
			return MaxDuration
		}
		return Duration{seconds: -d.seconds}
	}
	return Duration{seconds: -d.seconds - 1, nanos: int32(nanosPerSecond) - d.nanos}
}

// Add returns d + other, saturating
func (d Duration) Add(other Duration) Duration {
	nanos := int64(d.nanos) + int64(other.nanos)
	carry := nanos / nanosPerSecond
	s, err := safemath.Add64(d.seconds, other.seconds)
	if err == nil {
		s, err = safemath.Add64(s, carry)
	}
	if err != nil {
		if d.seconds >= 0 {
			return MaxDuration
		}
		return MinDuration
	}
	return Duration{seconds: s, nanos: int32(nanos % nanosPerSecond)}
}

// Sub returns d - other, saturating
func (d Duration) Sub(other Duration) Duration {
	return d.Add(other.Neg())
}

// Compare returns -1, 0 or +1
func (d Duration) Compare(other Duration) int {
	if d.seconds != other.seconds {
		if d.seconds < other.seconds {
			return -1
		}
		return 1
	}
	return sign(int64(d.nanos) - int64(other.nanos))
}

// String formats the duration in ISO-8601 seconds form, e.g. PT-1.5S
func (d Duration) String() string {
	if d.IsZero() {
		return "PT0S"
	}
	var b strings.Builder
	b.WriteString("PT")
	seconds, nanos := d.seconds, int64(d.nanos)
	if seconds < 0 && nanos > 0 {
		b.WriteByte('-')
		// |d| = -(seconds+1) + (1e9-nanos)/1e9
		b.WriteString(fmt.Sprintf("%d", -(seconds + 1)))
		nanos = nanosPerSecond - nanos
	} else {
		b.WriteString(fmt.Sprintf("%d", seconds))
	}
	if nanos > 0 {
		b.WriteString(strings.TrimRight(fmt.Sprintf(".%09d", nanos), "0"))
	}
	b.WriteByte('S')
	return b.String()
}
