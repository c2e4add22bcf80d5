package datetime

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pratik-mahalle/calendrical/internal/pkg/safemath"
)

// DateTimePeriod is a calendar amount: whole months, whole days and exact
// nanoseconds. All non-zero components have the same sign.
type DateTimePeriod struct {
	months      int32
	days        int32
	nanoseconds int64
}

// DatePeriod is a DateTimePeriod without a time part
type DatePeriod struct {
	months int32
	days   int32
}

// PeriodFields are the components accepted by NewDateTimePeriod
type PeriodFields struct {
	Years       int
	Months      int
	Days        int
	Hours       int
	Minutes     int
	Seconds     int
	Nanoseconds int64
}

// NewDateTimePeriod normalizes years into months and the time fields into
// nanoseconds
func NewDateTimePeriod(f PeriodFields) (DateTimePeriod, error) {
	months, err := totalMonths(f.Years, f.Months)
	if err != nil {
		return DateTimePeriod{}, err
	}
	days, err := safemath.ToInt32(int64(f.Days))
	if err != nil {
		return DateTimePeriod{}, illegalArgument("days %d do not fit", f.Days)
	}
	nanos, err := totalNanoseconds(f.Hours, f.Minutes, f.Seconds, f.Nanoseconds)
	if err != nil {
		return DateTimePeriod{}, illegalArgument("time components of the period do not fit: %v", err)
	}
	return dateTimePeriodOf(months, days, nanos)
}

func dateTimePeriodOf(months, days int32, nanos int64) (DateTimePeriod, error) {
	if err := checkPeriodSigns(int64(months), int64(days), nanos); err != nil {
		return DateTimePeriod{}, err
	}
	return DateTimePeriod{months: months, days: days, nanoseconds: nanos}, nil
}

// NewDatePeriod normalizes years into months
func NewDatePeriod(years, months, days int) (DatePeriod, error) {
	m, err := totalMonths(years, months)
	if err != nil {
		return DatePeriod{}, err
	}
	d, err := safemath.ToInt32(int64(days))
	if err != nil {
		return DatePeriod{}, illegalArgument("days %d do not fit", days)
	}
	if err := checkPeriodSigns(int64(m), int64(d), 0); err != nil {
		return DatePeriod{}, err
	}
	return DatePeriod{months: m, days: d}, nil
}

func totalMonths(years, months int) (int32, error) {
	y, err := safemath.Mul64(int64(years), 12)
	if err == nil {
		y, err = safemath.Add64(y, int64(months))
	}
	var m int32
	if err == nil {
		m, err = safemath.ToInt32(y)
	}
	if err != nil {
		return 0, illegalArgument("%d years and %d months do not fit: %v", years, months, err)
	}
	return m, nil
}

func totalNanoseconds(hours, minutes, seconds int, nanos int64) (int64, error) {
	total := nanos
	for _, part := range []struct {
		v    int
		unit int64
	}{{hours, nanosPerHour}, {minutes, nanosPerMinute}, {seconds, nanosPerSecond}} {
		p, err := safemath.Mul64(int64(part.v), part.unit)
		if err != nil {
			return 0, err
		}
		if total, err = safemath.Add64(total, p); err != nil {
			return 0, err
		}
	}
	return total, nil
}

func checkPeriodSigns(values ...int64) error {
	var pos, neg bool
	for _, v := range values {
		pos = pos || v > 0
		neg = neg || v < 0
	}
	if pos && neg {
		return illegalArgument("period components %v must not have mixed signs", values)
	}
	return nil
}

func (p DateTimePeriod) Years() int  { return int(p.months / 12) }
func (p DateTimePeriod) Months() int { return int(p.months % 12) }
func (p DateTimePeriod) Days() int   { return int(p.days) }
func (p DateTimePeriod) Hours() int  { return int(p.nanoseconds / nanosPerHour) }
func (p DateTimePeriod) Minutes() int {
	return int(p.nanoseconds % nanosPerHour / nanosPerMinute)
}
func (p DateTimePeriod) Seconds() int {
	return int(p.nanoseconds % nanosPerMinute / nanosPerSecond)
}
func (p DateTimePeriod) Nanoseconds() int { return int(p.nanoseconds % nanosPerSecond) }

// TotalMonths returns years and months as months
func (p DateTimePeriod) TotalMonths() int64 { return int64(p.months) }

// TotalNanoseconds returns the time part in nanoseconds
func (p DateTimePeriod) TotalNanoseconds() int64 { return p.nanoseconds }

func (p DateTimePeriod) IsZero() bool { return p == DateTimePeriod{} }

// Negate flips the sign of every component
func (p DateTimePeriod) Negate() (DateTimePeriod, error) {
	m, err := safemath.Mul32(p.months, -1)
	if err != nil {
		return DateTimePeriod{}, arithmetic(err, "negating %s", p)
	}
	d, err := safemath.Mul32(p.days, -1)
	if err != nil {
		return DateTimePeriod{}, arithmetic(err, "negating %s", p)
	}
	n, err := safemath.Mul64(p.nanoseconds, -1)
	if err != nil {
		return DateTimePeriod{}, arithmetic(err, "negating %s", p)
	}
	return DateTimePeriod{months: m, days: d, nanoseconds: n}, nil
}

// DatePart drops the time part
func (p DateTimePeriod) DatePart() DatePeriod {
	return DatePeriod{months: p.months, days: p.days}
}

func (p DatePeriod) Years() int  { return int(p.months / 12) }
func (p DatePeriod) Months() int { return int(p.months % 12) }
func (p DatePeriod) Days() int   { return int(p.days) }

// TotalMonths returns years and months as months
func (p DatePeriod) TotalMonths() int64 { return int64(p.months) }

func (p DatePeriod) IsZero() bool { return p == DatePeriod{} }

// ToDateTimePeriod widens the period
func (p DatePeriod) ToDateTimePeriod() DateTimePeriod {
	return DateTimePeriod{months: p.months, days: p.days}
}

// Negate flips the sign of every component
func (p DatePeriod) Negate() (DatePeriod, error) {
	n, err := p.ToDateTimePeriod().Negate()
	if err != nil {
		return DatePeriod{}, err
	}
	return n.DatePart(), nil
}

func (p DatePeriod) String() string { return p.ToDateTimePeriod().String() }

// String formats as ISO-8601, e.g. P1Y2M3DT4H5M6.5S. Negative periods
// carry a single leading minus.
func (p DateTimePeriod) String() string {
	months, days, nanos := int64(p.months), int64(p.days), p.nanoseconds
	var b strings.Builder
	if months < 0 || days < 0 || nanos < 0 {
		b.WriteByte('-')
		months, days = -months, -days
	}
	b.WriteByte('P')
	if y := months / 12; y != 0 {
		fmt.Fprintf(&b, "%dY", y)
	}
	if m := months % 12; m != 0 {
		fmt.Fprintf(&b, "%dM", m)
	}
	if days != 0 {
		fmt.Fprintf(&b, "%dD", days)
	}
	if nanos != 0 {
		// stay in uint64 so that the smallest int64 negates cleanly
		abs := uint64(nanos)
		if nanos < 0 {
			abs = uint64(-(nanos + 1)) + 1
		}
		b.WriteByte('T')
		h := abs / uint64(nanosPerHour)
		mi := abs % uint64(nanosPerHour) / uint64(nanosPerMinute)
		s := abs % uint64(nanosPerMinute) / uint64(nanosPerSecond)
		ns := abs % uint64(nanosPerSecond)
		if h != 0 {
			fmt.Fprintf(&b, "%dH", h)
		}
		if mi != 0 {
			fmt.Fprintf(&b, "%dM", mi)
		}
		if s != 0 || ns != 0 {
			b.WriteString(strconv.FormatUint(s, 10))
			if ns != 0 {
				b.WriteString(strings.TrimRight(fmt.Sprintf(".%09d", ns), "0"))
			}
			b.WriteByte('S')
		}
	}
	if b.Len() <= 2 && strings.HasSuffix(b.String(), "P") {
		return "P0D"
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler
func (p DateTimePeriod) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *DateTimePeriod) UnmarshalText(text []byte) error {
	parsed, err := ParseDateTimePeriod(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (p DatePeriod) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *DatePeriod) UnmarshalText(text []byte) error {
	parsed, err := ParseDatePeriod(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
