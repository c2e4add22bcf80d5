package datetime

import (
	"math"
	"strconv"
	"strings"

	"github.com/pratik-mahalle/calendrical/internal/pkg/safemath"
)

// DateTimeUnit is a unit for measuring time: TimeBasedUnit, DayBasedUnit
// or MonthBasedUnit.
type DateTimeUnit interface {
	String() string
	dateTimeUnit()
}

// DateBasedUnit is a unit measured on the calendar: DayBasedUnit or
// MonthBasedUnit
type DateBasedUnit interface {
	DateTimeUnit
	dateBasedUnit()
}

// TimeBasedUnit has an exact length in nanoseconds
type TimeBasedUnit struct {
	nanoseconds int64
}

// DayBasedUnit is a whole number of calendar days
type DayBasedUnit struct {
	days int32
}

// MonthBasedUnit is a whole number of calendar months
type MonthBasedUnit struct {
	months int32
}

// Predefined units
var (
	UnitNanosecond  = TimeBasedUnit{nanoseconds: 1}
	UnitMicrosecond = TimeBasedUnit{nanoseconds: nanosPerMicro}
	UnitMillisecond = TimeBasedUnit{nanoseconds: nanosPerMilli}
	UnitSecond      = TimeBasedUnit{nanoseconds: nanosPerSecond}
	UnitMinute      = TimeBasedUnit{nanoseconds: nanosPerMinute}
	UnitHour        = TimeBasedUnit{nanoseconds: nanosPerHour}
	UnitDay         = DayBasedUnit{days: 1}
	UnitWeek        = DayBasedUnit{days: 7}
	UnitMonth       = MonthBasedUnit{months: 1}
	UnitQuarter     = MonthBasedUnit{months: 3}
	UnitYear        = MonthBasedUnit{months: 12}
	UnitCentury     = MonthBasedUnit{months: 1200}
)

// NewTimeBasedUnit returns a unit of the given positive length
func NewTimeBasedUnit(nanoseconds int64) (TimeBasedUnit, error) {
	if nanoseconds <= 0 {
		return TimeBasedUnit{}, illegalArgument("unit duration must be positive, but was %d ns", nanoseconds)
	}
	return TimeBasedUnit{nanoseconds: nanoseconds}, nil
}

// NewDayBasedUnit returns a unit of the given positive number of days
func NewDayBasedUnit(days int) (DayBasedUnit, error) {
	if days <= 0 || int64(days) > math.MaxInt32 {
		return DayBasedUnit{}, illegalArgument("unit duration must be positive, but was %d days", days)
	}
	return DayBasedUnit{days: int32(days)}, nil
}

// NewMonthBasedUnit returns a unit of the given positive number of months
func NewMonthBasedUnit(months int) (MonthBasedUnit, error) {
	if months <= 0 || int64(months) > math.MaxInt32 {
		return MonthBasedUnit{}, illegalArgument("unit duration must be positive, but was %d months", months)
	}
	return MonthBasedUnit{months: int32(months)}, nil
}

func (TimeBasedUnit) dateTimeUnit()  {}
func (DayBasedUnit) dateTimeUnit()   {}
func (DayBasedUnit) dateBasedUnit()  {}
func (MonthBasedUnit) dateTimeUnit() {}
func (MonthBasedUnit) dateBasedUnit() {}

func (u TimeBasedUnit) Nanoseconds() int64 { return u.nanoseconds }
func (u DayBasedUnit) Days() int           { return int(u.days) }
func (u MonthBasedUnit) Months() int       { return int(u.months) }

// Duration returns the exact length of the unit
func (u TimeBasedUnit) Duration() Duration { return Nanoseconds(u.nanoseconds) }

// Times scales the unit by a positive factor
func (u TimeBasedUnit) Times(n int64) (TimeBasedUnit, error) {
	if n <= 0 {
		return TimeBasedUnit{}, illegalArgument("unit multiplier must be positive, but was %d", n)
	}
	ns, err := safemath.Mul64(u.nanoseconds, n)
	if err != nil {
		return TimeBasedUnit{}, arithmetic(err, "%s * %d", u, n)
	}
	return TimeBasedUnit{nanoseconds: ns}, nil
}

// Times scales the unit by a positive factor
func (u DayBasedUnit) Times(n int64) (DayBasedUnit, error) {
	days, err := scale32(u.days, n)
	if err != nil {
		return DayBasedUnit{}, err
	}
	return DayBasedUnit{days: days}, nil
}

// Times scales the unit by a positive factor
func (u MonthBasedUnit) Times(n int64) (MonthBasedUnit, error) {
	months, err := scale32(u.months, n)
	if err != nil {
		return MonthBasedUnit{}, err
	}
	return MonthBasedUnit{months: months}, nil
}

func scale32(v int32, n int64) (int32, error) {
	if n <= 0 {
		return 0, illegalArgument("unit multiplier must be positive, but was %d", n)
	}
	p, err := safemath.Mul64(int64(v), n)
	if err == nil {
		var r int32
		if r, err = safemath.ToInt32(p); err == nil {
			return r, nil
		}
	}
	return 0, arithmetic(err, "unit multiplier %d is too large", n)
}

func (u TimeBasedUnit) String() string {
	switch ns := u.nanoseconds; {
	case ns%nanosPerHour == 0:
		return formatUnit(ns/nanosPerHour, "HOUR")
	case ns%nanosPerMinute == 0:
		return formatUnit(ns/nanosPerMinute, "MINUTE")
	case ns%nanosPerSecond == 0:
		return formatUnit(ns/nanosPerSecond, "SECOND")
	case ns%nanosPerMilli == 0:
		return formatUnit(ns/nanosPerMilli, "MILLISECOND")
	case ns%nanosPerMicro == 0:
		return formatUnit(ns/nanosPerMicro, "MICROSECOND")
	default:
		return formatUnit(ns, "NANOSECOND")
	}
}

func (u DayBasedUnit) String() string {
	if u.days%7 == 0 {
		return formatUnit(int64(u.days/7), "WEEK")
	}
	return formatUnit(int64(u.days), "DAY")
}

func (u MonthBasedUnit) String() string {
	switch {
	case u.months%1200 == 0:
		return formatUnit(int64(u.months/1200), "CENTURY")
	case u.months%12 == 0:
		return formatUnit(int64(u.months/12), "YEAR")
	case u.months%3 == 0:
		return formatUnit(int64(u.months/3), "QUARTER")
	default:
		return formatUnit(int64(u.months), "MONTH")
	}
}

func formatUnit(n int64, name string) string {
	if n == 1 {
		return name
	}
	return strconv.FormatInt(n, 10) + "-" + name
}

var unitsByName = map[string]DateTimeUnit{
	"NANOSECOND":  UnitNanosecond,
	"MICROSECOND": UnitMicrosecond,
	"MILLISECOND": UnitMillisecond,
	"SECOND":      UnitSecond,
	"MINUTE":      UnitMinute,
	"HOUR":        UnitHour,
	"DAY":         UnitDay,
	"WEEK":        UnitWeek,
	"MONTH":       UnitMonth,
	"QUARTER":     UnitQuarter,
	"YEAR":        UnitYear,
	"CENTURY":     UnitCentury,
}

// ParseDateTimeUnit reads a unit written as NAME or N-NAME, e.g. "HOUR" or
// "3-DAY". Names are case-insensitive and may be plural.
func ParseDateTimeUnit(s string) (DateTimeUnit, error) {
	text := strings.ToUpper(strings.TrimSpace(s))
	n := int64(1)
	if i := strings.IndexByte(text, '-'); i >= 0 {
		v, err := strconv.ParseInt(text[:i], 10, 64)
		if err != nil || v <= 0 {
			return nil, illegalArgument("invalid unit multiplier in %q", s)
		}
		n, text = v, text[i+1:]
	}
	if _, ok := unitsByName[text]; !ok && strings.HasSuffix(text, "S") {
		text = strings.TrimSuffix(text, "S")
	}
	if text == "CENTURIE" {
		text = "CENTURY"
	}
	base, ok := unitsByName[text]
	if !ok {
		return nil, illegalArgument("unknown unit %q", s)
	}
	if n == 1 {
		return base, nil
	}
	return ScaleUnit(base, n)
}

// ScaleUnit multiplies any unit by a positive factor
func ScaleUnit(unit DateTimeUnit, n int64) (DateTimeUnit, error) {
	var (
		scaled DateTimeUnit
		err    error
	)
	switch u := unit.(type) {
	case TimeBasedUnit:
		scaled, err = u.Times(n)
	case DayBasedUnit:
		scaled, err = u.Times(n)
	case MonthBasedUnit:
		scaled, err = u.Times(n)
	default:
		return nil, illegalArgument("unsupported unit %v", unit)
	}
	if err != nil {
		return nil, err
	}
	return scaled, nil
}
