package datetime

import "strings"

const maxOffsetSeconds = 18 * secondsPerHour

// UtcOffset is a fixed difference from UTC in seconds, at most 18 hours
// either way
type UtcOffset struct {
	totalSeconds int32
}

// ZeroOffset is the offset of UTC
var ZeroOffset = UtcOffset{}

type offsetParts struct {
	hours, minutes, seconds *int
}

// OffsetOption sets one component of an offset passed to NewUtcOffset
type OffsetOption func(*offsetParts)

// OffsetHours sets the hour component
func OffsetHours(h int) OffsetOption {
	return func(p *offsetParts) { p.hours = &h }
}

// OffsetMinutes sets the minute component
func OffsetMinutes(m int) OffsetOption {
	return func(p *offsetParts) { p.minutes = &m }
}

// OffsetSeconds sets the second component
func OffsetSeconds(s int) OffsetOption {
	return func(p *offsetParts) { p.seconds = &s }
}

// NewUtcOffset builds an offset from its components. When hours are given
// missing minutes and seconds default to zero. When only minutes are given
// they may exceed an hour and are split into hours and minutes. When only
// seconds are given they are taken as the total. All given components must
// agree in sign.
func NewUtcOffset(opts ...OffsetOption) (UtcOffset, error) {
	var p offsetParts
	for _, opt := range opts {
		opt(&p)
	}

	switch {
	case p.hours != nil:
		return offsetOfHoursMinutesSeconds(*p.hours, deref(p.minutes), deref(p.seconds))
	case p.minutes != nil:
		m := *p.minutes
		return offsetOfHoursMinutesSeconds(m/60, m%60, deref(p.seconds))
	default:
		return UtcOffsetOfSeconds(deref(p.seconds))
	}
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func offsetOfHoursMinutesSeconds(hours, minutes, seconds int) (UtcOffset, error) {
	if hours < -18 || hours > 18 {
		return UtcOffset{}, illegalArgument("offset hours %d out of range [-18, 18]", hours)
	}
	if minutes < -59 || minutes > 59 {
		return UtcOffset{}, illegalArgument("offset minutes %d out of range [-59, 59]", minutes)
	}
	if seconds < -59 || seconds > 59 {
		return UtcOffset{}, illegalArgument("offset seconds %d out of range [-59, 59]", seconds)
	}
	if !sameSign(hours, minutes) || !sameSign(hours, seconds) || !sameSign(minutes, seconds) {
		return UtcOffset{}, illegalArgument("offset components %d, %d, %d must have the same sign", hours, minutes, seconds)
	}
	return UtcOffsetOfSeconds(hours*secondsPerHour + minutes*secondsPerMinute + seconds)
}

func sameSign(a, b int) bool {
	return !(a > 0 && b < 0) && !(a < 0 && b > 0)
}

// UtcOffsetOfSeconds returns the offset with the given total seconds
func UtcOffsetOfSeconds(seconds int) (UtcOffset, error) {
	if seconds < -maxOffsetSeconds || seconds > maxOffsetSeconds {
		return UtcOffset{}, illegalArgument("total offset %ds is out of range [-18:00, +18:00]", seconds)
	}
	return UtcOffset{totalSeconds: int32(seconds)}, nil
}

// MustUtcOffset is like NewUtcOffset but panics on invalid input
func MustUtcOffset(opts ...OffsetOption) UtcOffset {
	o, err := NewUtcOffset(opts...)
	if err != nil {
		panic(err)
	}
	return o
}

func (o UtcOffset) TotalSeconds() int { return int(o.totalSeconds) }

// Compare orders offsets by their total seconds
func (o UtcOffset) Compare(other UtcOffset) int {
	return sign(int64(o.totalSeconds) - int64(other.totalSeconds))
}

// AsTimeZone returns a fixed zone with this offset
func (o UtcOffset) AsTimeZone() FixedOffsetZone {
	return newFixedOffsetZone(o, o.String())
}

// String returns "Z" for zero, otherwise ±hh:mm or ±hh:mm:ss
func (o UtcOffset) String() string {
	if o.totalSeconds == 0 {
		return "Z"
	}
	total := int(o.totalSeconds)
	var b strings.Builder
	b.Grow(9)
	if total < 0 {
		b.WriteByte('-')
		total = -total
	} else {
		b.WriteByte('+')
	}
	write2(&b, total/secondsPerHour)
	b.WriteByte(':')
	write2(&b, total/secondsPerMinute%60)
	if s := total % 60; s != 0 {
		b.WriteByte(':')
		write2(&b, s)
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler
func (o UtcOffset) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (o *UtcOffset) UnmarshalText(text []byte) error {
	parsed, err := ParseUtcOffset(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
