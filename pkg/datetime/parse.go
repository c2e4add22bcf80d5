package datetime

import (
	"strings"

	"github.com/pratik-mahalle/calendrical/internal/pkg/safemath"
)

// scanner walks an ISO-8601 string
type scanner struct {
	s   string
	pos int
}

func (sc *scanner) done() bool { return sc.pos >= len(sc.s) }

func (sc *scanner) peek() byte {
	if sc.done() {
		return 0
	}
	return sc.s[sc.pos]
}

func (sc *scanner) accept(c byte) bool {
	if !sc.done() && sc.s[sc.pos] == c {
		sc.pos++
		return true
	}
	return false
}

// digits reads between min and max decimal digits
func (sc *scanner) digits(min, max int) (int64, int, bool) {
	var v int64
	n := 0
	for n < max && !sc.done() && sc.s[sc.pos] >= '0' && sc.s[sc.pos] <= '9' {
		v = v*10 + int64(sc.s[sc.pos]-'0')
		sc.pos++
		n++
	}
	return v, n, n >= min
}

func (sc *scanner) fixed(n int) (int, bool) {
	v, _, ok := sc.digits(n, n)
	return int(v), ok
}

// date reads [+-]YYYY-MM-DD without checking the year range
func (sc *scanner) date() (year int64, month, day int, ok bool) {
	negative := false
	signed := false
	switch {
	case sc.accept('+'):
		signed = true
	case sc.accept('-'):
		signed, negative = true, true
	}
	y, n, ok := sc.digits(4, 10)
	if !ok || (!signed && n != 4) {
		return 0, 0, 0, false
	}
	if negative {
		y = -y
	}
	if !sc.accept('-') {
		return 0, 0, 0, false
	}
	if month, ok = sc.fixed(2); !ok || !sc.accept('-') {
		return 0, 0, 0, false
	}
	if day, ok = sc.fixed(2); !ok {
		return 0, 0, 0, false
	}
	return y, month, day, true
}

// time reads HH:MM[:SS[.fraction]]
func (sc *scanner) time() (LocalTime, error) {
	hour, ok := sc.fixed(2)
	if !ok || !sc.accept(':') {
		return LocalTime{}, illegalArgument("invalid time in %q", sc.s)
	}
	minute, ok := sc.fixed(2)
	if !ok {
		return LocalTime{}, illegalArgument("invalid time in %q", sc.s)
	}
	second, nanos := 0, 0
	if sc.accept(':') {
		if second, ok = sc.fixed(2); !ok {
			return LocalTime{}, illegalArgument("invalid seconds in %q", sc.s)
		}
		if sc.accept('.') || sc.accept(',') {
			frac, err := sc.fraction()
			if err != nil {
				return LocalTime{}, err
			}
			nanos = frac
		}
	}
	return NewLocalTime(hour, minute, second, nanos)
}

// fraction reads 1 to 9 digits of a second
func (sc *scanner) fraction() (int, error) {
	v, n, ok := sc.digits(1, 9)
	if !ok {
		return 0, illegalArgument("invalid fraction of second in %q", sc.s)
	}
	for ; n < 9; n++ {
		v *= 10
	}
	return int(v), nil
}

// offset reads Z, ±h, ±hh, ±hh:mm, ±hhmm, ±hh:mm:ss or ±hhmmss
func (sc *scanner) offset() (UtcOffset, error) {
	if sc.accept('Z') || sc.accept('z') {
		return ZeroOffset, nil
	}
	sign := 1
	switch {
	case sc.accept('+'):
	case sc.accept('-'):
		sign = -1
	default:
		return UtcOffset{}, illegalArgument("invalid offset in %q", sc.s)
	}

	rest := sc.s[sc.pos:]
	var hours, minutes, seconds int
	var ok bool
	switch {
	case len(rest) == 1:
		hours, ok = sc.fixed(1)
	default:
		if hours, ok = sc.fixed(2); !ok {
			break
		}
		colon := sc.accept(':')
		if sc.done() {
			ok = !colon
			break
		}
		if minutes, ok = sc.fixed(2); !ok {
			break
		}
		if sc.done() {
			break
		}
		if colon && !sc.accept(':') {
			ok = false
			break
		}
		seconds, ok = sc.fixed(2)
	}
	if !ok {
		return UtcOffset{}, illegalArgument("invalid offset in %q", sc.s)
	}
	return NewUtcOffset(OffsetHours(sign*hours), OffsetMinutes(sign*minutes), OffsetSeconds(sign*seconds))
}

func (sc *scanner) end(what string) error {
	if !sc.done() {
		return illegalArgument("unexpected text %q after %s in %q", sc.s[sc.pos:], what, sc.s)
	}
	return nil
}

// ParseLocalDate reads an ISO date such as 2021-03-15, +12345-01-01 or
// -0001-12-31
func ParseLocalDate(s string) (LocalDate, error) {
	sc := &scanner{s: s}
	y, m, d, ok := sc.date()
	if !ok {
		return LocalDate{}, illegalArgument("invalid date %q", s)
	}
	if err := sc.end("date"); err != nil {
		return LocalDate{}, err
	}
	if y < MinYear || y > MaxYear {
		return LocalDate{}, illegalArgument("year %d is out of range in %q", y, s)
	}
	return NewLocalDate(int(y), Month(m), d)
}

// ParseLocalTime reads an ISO time such as 02:30, 02:30:15 or 02:30:15.5
func ParseLocalTime(s string) (LocalTime, error) {
	sc := &scanner{s: s}
	t, err := sc.time()
	if err != nil {
		return LocalTime{}, err
	}
	if err := sc.end("time"); err != nil {
		return LocalTime{}, err
	}
	return t, nil
}

// ParseLocalDateTime reads an ISO date and time joined by T
func ParseLocalDateTime(s string) (LocalDateTime, error) {
	sc := &scanner{s: s}
	dt, err := sc.localDateTime(MinYear, MaxYear)
	if err != nil {
		return LocalDateTime{}, err
	}
	if err := sc.end("date-time"); err != nil {
		return LocalDateTime{}, err
	}
	return dt, nil
}

func (sc *scanner) localDateTime(minYear, maxYear int64) (LocalDateTime, error) {
	y, m, d, ok := sc.date()
	if !ok || !(sc.accept('T') || sc.accept('t')) {
		return LocalDateTime{}, illegalArgument("invalid date-time %q", sc.s)
	}
	if y < minYear || y > maxYear {
		return LocalDateTime{}, illegalArgument("year %d is out of range in %q", y, sc.s)
	}
	if m < 1 || m > 12 || d < 1 || d > Month(m).Length(IsLeapYear(int(y))) {
		return LocalDateTime{}, illegalArgument("invalid date in %q", sc.s)
	}
	t, err := sc.time()
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: LocalDate{year: int(y), month: Month(m), day: d}, time: t}, nil
}

// ParseUtcOffset reads Z, +hh, +hh:mm, +hhmm, +hh:mm:ss and similar forms
func ParseUtcOffset(s string) (UtcOffset, error) {
	sc := &scanner{s: s}
	o, err := sc.offset()
	if err != nil {
		return UtcOffset{}, err
	}
	if err := sc.end("offset"); err != nil {
		return UtcOffset{}, err
	}
	return o, nil
}

// ParseInstant reads an ISO date-time with an offset, e.g.
// 2021-03-28T01:30:00Z or 2021-03-28T03:30+02:00
func ParseInstant(s string) (Instant, error) {
	sc := &scanner{s: s}
	// the instant range reaches one year beyond LocalDate on either side
	dt, err := sc.localDateTime(MinYear-1, MaxYear+1)
	if err != nil {
		return Instant{}, err
	}
	offset, err := sc.offset()
	if err != nil {
		return Instant{}, err
	}
	if err := sc.end("instant"); err != nil {
		return Instant{}, err
	}
	seconds := dt.toEpochSeconds(offset)
	if seconds < minInstantSeconds || seconds > maxInstantSeconds {
		return Instant{}, illegalArgument("instant %q is out of range", s)
	}
	return Instant{epochSeconds: seconds, nanos: int32(dt.time.nanosecond)}, nil
}

// ParseDateTimePeriod reads an ISO-8601 period such as P1Y2M3DT4H5M6.5S,
// -P2D or PT-1H. Weeks count as seven days.
func ParseDateTimePeriod(s string) (DateTimePeriod, error) {
	sc := &scanner{s: s}
	sign := int64(1)
	switch {
	case sc.accept('+'):
	case sc.accept('-'):
		sign = -1
	}
	if !sc.accept('P') && !sc.accept('p') {
		return DateTimePeriod{}, illegalArgument("period %q must start with P", s)
	}

	var years, months, weeks, days, hours, minutes, seconds, nanos int64
	inTime, seen := false, false
	last := -1
	for !sc.done() {
		if !inTime && (sc.accept('T') || sc.accept('t')) {
			inTime = true
			if sc.done() {
				return DateTimePeriod{}, illegalArgument("empty time part in period %q", s)
			}
			continue
		}
		neg := false
		switch {
		case sc.accept('+'):
		case sc.accept('-'):
			neg = true
		}
		v, _, ok := sc.digits(1, 18)
		if !ok {
			return DateTimePeriod{}, illegalArgument("invalid number in period %q", s)
		}
		if neg {
			v = -v
		}
		var frac int64
		if inTime && (sc.peek() == '.' || sc.peek() == ',') {
			sc.pos++
			f, err := sc.fraction()
			if err != nil {
				return DateTimePeriod{}, err
			}
			frac = int64(f)
			if neg {
				frac = -frac
			}
			if c := sc.peek(); c != 'S' && c != 's' {
				return DateTimePeriod{}, illegalArgument("only seconds may have a fraction in %q", s)
			}
		}
		designator := strings.ToUpper(string(sc.peek()))
		sc.pos++
		order := periodOrder(designator, inTime)
		if order <= last {
			return DateTimePeriod{}, illegalArgument("unexpected designator %q in period %q", designator, s)
		}
		last = order
		switch order {
		case 0:
			years = v
		case 1:
			months = v
		case 2:
			weeks = v
		case 3:
			days = v
		case 4:
			hours = v
		case 5:
			minutes = v
		case 6:
			seconds, nanos = v, frac
		}
		seen = true
	}
	if !seen {
		return DateTimePeriod{}, illegalArgument("empty period %q", s)
	}

	totalMonths, err := combine(sign, years, 12, months)
	if err != nil {
		return DateTimePeriod{}, illegalArgument("months of period %q do not fit", s)
	}
	totalDays, err := combine(sign, weeks, 7, days)
	if err != nil {
		return DateTimePeriod{}, illegalArgument("days of period %q do not fit", s)
	}
	totalNanos, err := combineNanos(sign, hours, minutes, seconds, nanos)
	if err != nil {
		return DateTimePeriod{}, illegalArgument("time of period %q does not fit", s)
	}
	m32, err := safemath.ToInt32(totalMonths)
	if err != nil {
		return DateTimePeriod{}, illegalArgument("months of period %q do not fit", s)
	}
	d32, err := safemath.ToInt32(totalDays)
	if err != nil {
		return DateTimePeriod{}, illegalArgument("days of period %q do not fit", s)
	}
	return dateTimePeriodOf(m32, d32, totalNanos)
}

// periodOrder gives the position of a designator in a period, or -1 for
// designators that are not allowed where they appear
func periodOrder(designator string, inTime bool) int {
	date := map[string]int{"Y": 0, "M": 1, "W": 2, "D": 3}
	clock := map[string]int{"H": 4, "M": 5, "S": 6}
	table := date
	if inTime {
		table = clock
	}
	if order, ok := table[designator]; ok {
		return order
	}
	return -1
}

// ParseDatePeriod reads an ISO-8601 period without a time part
func ParseDatePeriod(s string) (DatePeriod, error) {
	p, err := ParseDateTimePeriod(s)
	if err != nil {
		return DatePeriod{}, err
	}
	if p.nanoseconds != 0 {
		return DatePeriod{}, illegalArgument("period %q has a time part", s)
	}
	return p.DatePart(), nil
}

func combine(sign, big, factor, small int64) (int64, error) {
	v, err := safemath.Mul64(big, factor)
	if err != nil {
		return 0, err
	}
	if v, err = safemath.Add64(v, small); err != nil {
		return 0, err
	}
	return safemath.Mul64(v, sign)
}

func combineNanos(sign, hours, minutes, seconds, nanos int64) (int64, error) {
	total := nanos
	for _, part := range [][2]int64{{hours, nanosPerHour}, {minutes, nanosPerMinute}, {seconds, nanosPerSecond}} {
		p, err := safemath.Mul64(part[0], part[1])
		if err != nil {
			return 0, err
		}
		if total, err = safemath.Add64(total, p); err != nil {
			return 0, err
		}
	}
	return safemath.Mul64(total, sign)
}
