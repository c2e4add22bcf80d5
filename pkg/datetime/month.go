package datetime

import "fmt"

// Month of the year, January = 1
type Month int

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	"JANUARY", "FEBRUARY", "MARCH", "APRIL", "MAY", "JUNE",
	"JULY", "AUGUST", "SEPTEMBER", "OCTOBER", "NOVEMBER", "DECEMBER",
}

// Number returns the month number in 1..12
func (m Month) Number() int { return int(m) }

// Valid reports whether m is one of the twelve months
func (m Month) Valid() bool { return m >= January && m <= December }

func (m Month) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m-1]
}

// Length returns the number of days in the month for a leap or common year
func (m Month) Length(leapYear bool) int {
	switch m {
	case February:
		if leapYear {
			return 29
		}
		return 28
	case April, June, September, November:
		return 30
	default:
		return 31
	}
}

// firstDayOfYear returns the day-of-year of the first of the month
func (m Month) firstDayOfYear(leapYear bool) int {
	leap := 0
	if leapYear {
		leap = 1
	}
	switch m {
	case January:
		return 1
	case February:
		return 32
	case March:
		return 60 + leap
	case April:
		return 91 + leap
	case May:
		return 121 + leap
	case June:
		return 152 + leap
	case July:
		return 182 + leap
	case August:
		return 213 + leap
	case September:
		return 244 + leap
	case October:
		return 274 + leap
	case November:
		return 305 + leap
	default:
		return 335 + leap
	}
}

// DayOfWeek follows ISO-8601: Monday = 1 ... Sunday = 7
type DayOfWeek int

const (
	Monday DayOfWeek = 1 + iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{
	"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY",
}

// IsoNumber returns the ISO day number in 1..7
func (d DayOfWeek) IsoNumber() int { return int(d) }

func (d DayOfWeek) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("DayOfWeek(%d)", int(d))
	}
	return dayNames[d-1]
}

// IsLeapYear reports whether the proleptic Gregorian year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
