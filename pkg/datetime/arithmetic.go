package datetime

import (
	"github.com/pratik-mahalle/calendrical/internal/pkg/safemath"
)

// PlusIn adds n units to the instant. Time-based units are exact and the
// sum saturates at the instant bounds. Date-based units advance the civil
// reading in zone and resolve it back, keeping the original offset when
// the result is ambiguous. Overflow of n * unit or a civil result out of
// range is an ErrArithmetic.
func (i Instant) PlusIn(n int64, unit DateTimeUnit, zone TimeZone) (Instant, error) {
	switch u := unit.(type) {
	case TimeBasedUnit:
		return i.plusNanosScaled(n, u.nanoseconds)
	case DateBasedUnit:
		return i.plusDateBased(n, u, zone)
	default:
		return Instant{}, illegalArgument("unsupported unit %v", unit)
	}
}

// MinusIn subtracts n units, see PlusIn
func (i Instant) MinusIn(n int64, unit DateTimeUnit, zone TimeZone) (Instant, error) {
	switch u := unit.(type) {
	case TimeBasedUnit:
		return i.plusNanosScaled(n, -u.nanoseconds)
	case DateBasedUnit:
		neg, err := safemath.Mul64(n, -1)
		if err != nil {
			return Instant{}, arithmetic(err, "subtracting %d %s from %s", n, unit, i)
		}
		return i.plusDateBased(neg, u, zone)
	default:
		return Instant{}, illegalArgument("unsupported unit %v", unit)
	}
}

func (i Instant) plusNanosScaled(n, nanos int64) (Instant, error) {
	seconds, rem, err := safemath.MulDivMod(n, nanos, nanosPerSecond)
	if err != nil {
		return Instant{}, arithmetic(err, "%d * %d ns does not fit in a duration", n, nanos)
	}
	return i.Plus(DurationOf(seconds, rem)), nil
}

func (i Instant) plusDateBased(n int64, unit DateBasedUnit, zone TimeZone) (Instant, error) {
	start, err := zoned(zone, i)
	if err != nil {
		return Instant{}, err
	}
	dt, err := start.DateTime.Plus(n, unit)
	if err != nil {
		return Instant{}, asArithmetic(err, "adding %d %s to %s", n, unit, start)
	}
	resolved, err := zone.ResolveLocal(dt, &start.Offset)
	if err != nil {
		return Instant{}, err
	}
	return resolved.ToInstant(), nil
}

// PlusPeriod adds the months, then the days, then the time part of p
func (i Instant) PlusPeriod(p DateTimePeriod, zone TimeZone) (Instant, error) {
	start, err := zoned(zone, i)
	if err != nil {
		return Instant{}, err
	}
	if p.months != 0 {
		if start, err = plusZoned(start, int64(p.months), UnitMonth); err != nil {
			return Instant{}, err
		}
	}
	if p.days != 0 {
		if start, err = plusZoned(start, int64(p.days), UnitDay); err != nil {
			return Instant{}, err
		}
	}
	result := start.ToInstant()
	if p.nanoseconds != 0 {
		result = result.Plus(Nanoseconds(p.nanoseconds))
		if _, err := zone.InstantToLocalDateTime(result); err != nil {
			return Instant{}, asArithmetic(err, "adding %s to %s", p, i)
		}
	}
	return result, nil
}

// MinusPeriod subtracts every component of p
func (i Instant) MinusPeriod(p DateTimePeriod, zone TimeZone) (Instant, error) {
	neg, err := p.Negate()
	if err != nil {
		return Instant{}, err
	}
	return i.PlusPeriod(neg, zone)
}

func plusZoned(z ZonedDateTime, n int64, unit DateBasedUnit) (ZonedDateTime, error) {
	dt, err := z.DateTime.Plus(n, unit)
	if err != nil {
		return ZonedDateTime{}, asArithmetic(err, "adding %d %s to %s", n, unit, z)
	}
	return z.Zone.ResolveLocal(dt, &z.Offset)
}

// UntilIn counts whole units from i to other, truncated toward zero.
// Date-based units compare the civil readings of both instants in zone.
func (i Instant) UntilIn(other Instant, unit DateTimeUnit, zone TimeZone) (int64, error) {
	switch u := unit.(type) {
	case TimeBasedUnit:
		return i.Until(other, u)
	case DateBasedUnit:
		start, err := zoned(zone, i)
		if err != nil {
			return 0, err
		}
		end, err := zoned(zone, other)
		if err != nil {
			return 0, err
		}
		return start.DateTime.Until(end.DateTime, u)
	default:
		return 0, illegalArgument("unsupported unit %v", unit)
	}
}

// PeriodUntil splits the distance from i to other into whole months, then
// whole days, then nanoseconds, so that i.PlusPeriod(p, zone) == other.
// When a gap pushes the advanced reading past other, the date part steps
// back toward zero until the remainder has the same sign.
func (i Instant) PeriodUntil(other Instant, zone TimeZone) (DateTimePeriod, error) {
	start, err := zoned(zone, i)
	if err != nil {
		return DateTimePeriod{}, err
	}
	end, err := zoned(zone, other)
	if err != nil {
		return DateTimePeriod{}, err
	}

	months, err := start.DateTime.Until(end.DateTime, UnitMonth)
	if err != nil {
		return DateTimePeriod{}, err
	}
	months32, err := safemath.ToInt32(months)
	if err != nil {
		return DateTimePeriod{}, arithmetic(err, "the number of months between %s and %s does not fit", i, other)
	}

	for {
		mid, err := plusZoned(start, int64(months32), UnitMonth)
		if err != nil {
			return DateTimePeriod{}, err
		}
		days, err := mid.DateTime.Until(end.DateTime, UnitDay)
		if err != nil {
			return DateTimePeriod{}, err
		}
		days32, err := safemath.ToInt32(days)
		if err != nil {
			return DateTimePeriod{}, arithmetic(err, "the number of days between %s and %s does not fit", mid, other)
		}

		for {
			at, err := plusZoned(mid, int64(days32), UnitDay)
			if err != nil {
				return DateTimePeriod{}, err
			}
			nanos, err := at.ToInstant().Until(other, UnitNanosecond)
			if err != nil {
				return DateTimePeriod{}, err
			}
			if p, err := dateTimePeriodOf(months32, days32, nanos); err == nil {
				return p, nil
			}
			if days32 == 0 {
				break
			}
			days32 -= int32(sign(int64(days32)))
		}

		// with no months and no days the remainder alone is a valid period,
		// so months is never zero here
		months32 -= int32(sign(int64(months32)))
	}
}
