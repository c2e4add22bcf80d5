package datetime

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pratik-mahalle/calendrical/internal/pkg/safemath"
)

// Supported year range of LocalDate
const (
	MinYear = -999_999
	MaxYear = 999_999
)

const (
	daysPer400Years = 146_097
	// days from 0000-03-01 to 1970-01-01
	daysTo1970 = 719_468

	minEpochDay int64 = -365_961_662 // -999999-01-01
	maxEpochDay int64 = 364_522_971  // +999999-12-31
)

// LocalDate is a proleptic Gregorian calendar date without a time zone.
// The zero value is not a valid date; use NewLocalDate.
type LocalDate struct {
	year  int
	month Month
	day   int
}

// Boundaries of LocalDate
var (
	MinLocalDate = LocalDate{year: MinYear, month: January, day: 1}
	MaxLocalDate = LocalDate{year: MaxYear, month: December, day: 31}
)

// NewLocalDate validates the fields and returns the date
func NewLocalDate(year int, month Month, day int) (LocalDate, error) {
	if year < MinYear || year > MaxYear {
		return LocalDate{}, illegalArgument("year %d is out of range [%d, %d]", year, MinYear, MaxYear)
	}
	if !month.Valid() {
		return LocalDate{}, illegalArgument("invalid month %d", int(month))
	}
	if day < 1 || day > month.Length(IsLeapYear(year)) {
		return LocalDate{}, illegalArgument("invalid day %d for %s %d", day, month, year)
	}
	return LocalDate{year: year, month: month, day: day}, nil
}

// MustLocalDate is like NewLocalDate but panics on invalid input.
// Intended for constants and tests.
func MustLocalDate(year int, month Month, day int) LocalDate {
	d, err := NewLocalDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// LocalDateOfEpochDays returns the date that is the given number of days
// after 1970-01-01
func LocalDateOfEpochDays(epochDays int64) (LocalDate, error) {
	if epochDays < minEpochDay || epochDays > maxEpochDay {
		return LocalDate{}, illegalArgument("epoch day %d is out of range [%d, %d]", epochDays, minEpochDay, maxEpochDay)
	}
	y, m, d := civilFromEpochDays(epochDays)
	return LocalDate{year: int(y), month: Month(m), day: int(d)}, nil
}

// civilFromEpochDays converts without a range check
func civilFromEpochDays(epochDays int64) (year, month, day int64) {
	z := epochDays + daysTo1970
	era := safemath.FloorDiv(z, daysPer400Years)
	doe := z - era*daysPer400Years
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	year = yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day = doy - (153*mp+2)/5 + 1
	month = mp + 3
	if mp >= 10 {
		month = mp - 9
	}
	if month <= 2 {
		year++
	}
	return year, month, day
}

// ToEpochDays returns the number of days since 1970-01-01
func (d LocalDate) ToEpochDays() int64 {
	y := int64(d.year)
	m := int64(d.month)
	if m <= 2 {
		y--
	}
	era := safemath.FloorDiv(y, 400)
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + int64(d.day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*daysPer400Years + doe - daysTo1970
}

func (d LocalDate) Year() int   { return d.year }
func (d LocalDate) Month() Month { return d.month }
func (d LocalDate) Day() int    { return d.day }

// DayOfWeek returns the ISO day of the week
func (d LocalDate) DayOfWeek() DayOfWeek {
	return DayOfWeek(safemath.FloorMod(d.ToEpochDays()+3, 7) + 1)
}

// DayOfYear returns the day within the year, 1..366
func (d LocalDate) DayOfYear() int {
	return d.month.firstDayOfYear(d.IsLeapYear()) + d.day - 1
}

func (d LocalDate) IsLeapYear() bool { return IsLeapYear(d.year) }

func (d LocalDate) LengthOfMonth() int { return d.month.Length(d.IsLeapYear()) }

func (d LocalDate) prolepticMonth() int64 {
	return int64(d.year)*12 + int64(d.month) - 1
}

// Compare returns -1, 0 or +1
func (d LocalDate) Compare(other LocalDate) int {
	switch {
	case d.year != other.year:
		return sign(int64(d.year - other.year))
	case d.month != other.month:
		return sign(int64(d.month - other.month))
	default:
		return sign(int64(d.day - other.day))
	}
}

func (d LocalDate) Before(other LocalDate) bool { return d.Compare(other) < 0 }
func (d LocalDate) After(other LocalDate) bool  { return d.Compare(other) > 0 }
func (d LocalDate) Equal(other LocalDate) bool  { return d == other }

// AtTime combines the date with a time of day
func (d LocalDate) AtTime(t LocalTime) LocalDateTime {
	return LocalDateTime{date: d, time: t}
}

// AtStartOfDayIn returns the first instant of the date in the zone. When
// midnight falls into a gap the first valid reading after it is used.
func (d LocalDate) AtStartOfDayIn(zone TimeZone) (Instant, error) {
	return zone.AtStartOfDay(d)
}

// Plus adds n date-based units. Adding months clamps the day to the last
// day of the resulting month.
func (d LocalDate) Plus(n int64, unit DateBasedUnit) (LocalDate, error) {
	switch u := unit.(type) {
	case DayBasedUnit:
		days, err := safemath.Mul64(n, int64(u.days))
		if err != nil {
			return LocalDate{}, arithmetic(err, "adding %d %s to %s", n, u, d)
		}
		return d.plusDays(days)
	case MonthBasedUnit:
		months, err := safemath.Mul64(n, int64(u.months))
		if err != nil {
			return LocalDate{}, arithmetic(err, "adding %d %s to %s", n, u, d)
		}
		return d.plusMonths(months)
	default:
		return LocalDate{}, illegalArgument("unsupported unit %v", unit)
	}
}

// Minus subtracts n date-based units
func (d LocalDate) Minus(n int64, unit DateBasedUnit) (LocalDate, error) {
	neg, err := safemath.Mul64(n, -1)
	if err != nil {
		return LocalDate{}, arithmetic(err, "subtracting %d %s from %s", n, unit, d)
	}
	return d.Plus(neg, unit)
}

// PlusPeriod adds the months of the period and then the days
func (d LocalDate) PlusPeriod(p DatePeriod) (LocalDate, error) {
	r, err := d.plusMonths(int64(p.months))
	if err != nil {
		return LocalDate{}, err
	}
	return r.plusDays(int64(p.days))
}

// MinusPeriod subtracts the period component by component
func (d LocalDate) MinusPeriod(p DatePeriod) (LocalDate, error) {
	r, err := d.plusMonths(-int64(p.months))
	if err != nil {
		return LocalDate{}, err
	}
	return r.plusDays(-int64(p.days))
}

func (d LocalDate) plusDays(days int64) (LocalDate, error) {
	if days == 0 {
		return d, nil
	}
	epochDays, err := safemath.Add64(d.ToEpochDays(), days)
	if err != nil {
		return LocalDate{}, arithmetic(err, "adding %d days to %s", days, d)
	}
	r, err := LocalDateOfEpochDays(epochDays)
	if err != nil {
		return LocalDate{}, arithmetic(err, "the result of adding %d days to %s is out of range", days, d)
	}
	return r, nil
}

func (d LocalDate) plusMonths(months int64) (LocalDate, error) {
	if months == 0 {
		return d, nil
	}
	total, err := safemath.Add64(d.prolepticMonth(), months)
	if err != nil {
		return LocalDate{}, arithmetic(err, "adding %d months to %s", months, d)
	}
	year := safemath.FloorDiv(total, 12)
	if year < MinYear || year > MaxYear {
		return LocalDate{}, arithmetic(nil, "the result of adding %d months to %s is out of range", months, d)
	}
	month := Month(safemath.FloorMod(total, 12) + 1)
	day := d.day
	if l := month.Length(IsLeapYear(int(year))); day > l {
		day = l
	}
	return LocalDate{year: int(year), month: month, day: day}, nil
}

// Until counts whole units from d to other, truncated toward zero
func (d LocalDate) Until(other LocalDate, unit DateBasedUnit) (int64, error) {
	switch u := unit.(type) {
	case DayBasedUnit:
		return d.DaysUntil(other) / int64(u.days), nil
	case MonthBasedUnit:
		return d.MonthsUntil(other) / int64(u.months), nil
	default:
		return 0, illegalArgument("unsupported unit %v", unit)
	}
}

// DaysUntil returns the signed number of days between the dates
func (d LocalDate) DaysUntil(other LocalDate) int64 {
	return other.ToEpochDays() - d.ToEpochDays()
}

// MonthsUntil returns the number of whole months between the dates
func (d LocalDate) MonthsUntil(other LocalDate) int64 {
	packed1 := d.prolepticMonth()*32 + int64(d.day)
	packed2 := other.prolepticMonth()*32 + int64(other.day)
	return (packed2 - packed1) / 32
}

// YearsUntil returns the number of whole years between the dates
func (d LocalDate) YearsUntil(other LocalDate) int64 {
	return d.MonthsUntil(other) / 12
}

// PeriodUntil returns the whole months and then the remaining days from
// d to other
func (d LocalDate) PeriodUntil(other LocalDate) DatePeriod {
	months := d.MonthsUntil(other)
	// the intermediate date lies between d and other, always in range
	mid, _ := d.plusMonths(months)
	days := mid.DaysUntil(other)
	return DatePeriod{months: int32(months), days: int32(days)}
}

func (d LocalDate) String() string {
	var b strings.Builder
	b.Grow(16)
	writeYear(&b, d.year)
	b.WriteByte('-')
	write2(&b, int(d.month))
	b.WriteByte('-')
	write2(&b, d.day)
	return b.String()
}

// MarshalText implements encoding.TextMarshaler
func (d LocalDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *LocalDate) UnmarshalText(text []byte) error {
	parsed, err := ParseLocalDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func writeYear(b *strings.Builder, year int) {
	abs := year
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs < 1000:
		if year < 0 {
			b.WriteByte('-')
		}
		b.WriteString(fmt.Sprintf("%04d", abs))
	case year > 9999:
		b.WriteByte('+')
		b.WriteString(strconv.Itoa(year))
	default:
		b.WriteString(strconv.Itoa(year))
	}
}

func write2(b *strings.Builder, v int) {
	if v < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.Itoa(v))
}

func sign(v int64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
