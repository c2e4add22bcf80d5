package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pratik-mahalle/calendrical/internal/domain/calendar"
	"github.com/pratik-mahalle/calendrical/internal/pkg/logger"
	"github.com/pratik-mahalle/calendrical/internal/pkg/metrics"
	"github.com/pratik-mahalle/calendrical/pkg/datetime"
)

// CalendarService implements calendar.Service over a zone set
type CalendarService struct {
	zones  *datetime.Zones
	logger *logger.Logger
	now    func() datetime.Instant
}

// NewCalendarService creates a new calendar service
func NewCalendarService(zones *datetime.Zones, log *logger.Logger) calendar.Service {
	return newCalendarService(zones, log)
}

func newCalendarService(zones *datetime.Zones, log *logger.Logger) *CalendarService {
	if log == nil {
		log = logger.Nop()
	}
	return &CalendarService{
		zones:  zones,
		logger: log.WithComponent("calendar"),
		now:    datetime.Now,
	}
}

// observe records the outcome of one operation
func (s *CalendarService) observe(op string, start time.Time, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case datetime.IsIllegalTimeZone(err):
		outcome = "illegal_time_zone"
	case errors.Is(err, datetime.ErrIllegalArgument):
		outcome = "illegal_argument"
	case errors.Is(err, datetime.ErrArithmetic):
		outcome = "arithmetic"
	default:
		outcome = "error"
	}
	metrics.RecordOperation(op, outcome, time.Since(start))

	if err != nil {
		s.logger.WithFields(map[string]interface{}{
			"operation": op,
			"outcome":   outcome,
		}).Debugf("calendar operation failed: %v", err)
	}
}

func (s *CalendarService) zone(id string) (datetime.TimeZone, error) {
	if id == "" {
		return s.zones.CurrentSystemDefault()
	}
	return s.zones.Of(id)
}

func (s *CalendarService) zoned(i datetime.Instant, zone datetime.TimeZone) (*calendar.Zoned, error) {
	offset, err := i.OffsetIn(zone)
	if err != nil {
		return nil, err
	}
	ldt, err := i.ToLocalDateTime(zone)
	if err != nil {
		return nil, err
	}
	return &calendar.Zoned{
		Instant:       i.String(),
		LocalDateTime: ldt.String(),
		Offset:        offset.String(),
		Zone:          zone.ID(),
		DayOfWeek:     ldt.Date().DayOfWeek().String(),
		EpochSeconds:  i.EpochSeconds(),
	}, nil
}

// ToInstant resolves a local date-time in a zone
func (s *CalendarService) ToInstant(ctx context.Context, q calendar.LocalQuery) (res *calendar.Zoned, err error) {
	defer func(start time.Time) { s.observe("to_instant", start, err) }(time.Now())

	dt, err := datetime.ParseLocalDateTime(q.DateTime)
	if err != nil {
		return nil, err
	}
	zone, err := s.zone(q.Zone)
	if err != nil {
		return nil, err
	}
	var preferred *datetime.UtcOffset
	if q.PreferredOffset != "" {
		offset, err := datetime.ParseUtcOffset(q.PreferredOffset)
		if err != nil {
			return nil, err
		}
		preferred = &offset
	}

	zdt, err := zone.ResolveLocal(dt, preferred)
	if err != nil {
		return nil, err
	}
	return s.zoned(zdt.ToInstant(), zone)
}

// ToLocal reads an instant in a zone
func (s *CalendarService) ToLocal(ctx context.Context, q calendar.InstantQuery) (res *calendar.Zoned, err error) {
	defer func(start time.Time) { s.observe("to_local", start, err) }(time.Now())

	i, err := datetime.ParseInstant(q.Instant)
	if err != nil {
		return nil, err
	}
	zone, err := s.zone(q.Zone)
	if err != nil {
		return nil, err
	}
	return s.zoned(i, zone)
}

// Plus adds units or a period to an instant
func (s *CalendarService) Plus(ctx context.Context, q calendar.PlusQuery) (res *calendar.Zoned, err error) {
	defer func(start time.Time) { s.observe("plus", start, err) }(time.Now())

	if (q.Unit == "") == (q.Period == "") {
		return nil, fmt.Errorf("%w: exactly one of unit and period is required", datetime.ErrIllegalArgument)
	}
	i, err := datetime.ParseInstant(q.Instant)
	if err != nil {
		return nil, err
	}
	zone, err := s.zone(q.Zone)
	if err != nil {
		return nil, err
	}

	var out datetime.Instant
	if q.Period != "" {
		p, err := datetime.ParseDateTimePeriod(q.Period)
		if err != nil {
			return nil, err
		}
		out, err = i.PlusPeriod(p, zone)
		if err != nil {
			return nil, err
		}
	} else {
		unit, err := datetime.ParseDateTimeUnit(q.Unit)
		if err != nil {
			return nil, err
		}
		out, err = i.PlusIn(q.Amount, unit, zone)
		if err != nil {
			return nil, err
		}
	}
	return s.zoned(out, zone)
}

// Until counts whole units between two instants
func (s *CalendarService) Until(ctx context.Context, q calendar.UntilQuery) (res *calendar.Amount, err error) {
	defer func(start time.Time) { s.observe("until", start, err) }(time.Now())

	start, err := datetime.ParseInstant(q.Start)
	if err != nil {
		return nil, err
	}
	end, err := datetime.ParseInstant(q.End)
	if err != nil {
		return nil, err
	}
	unit, err := datetime.ParseDateTimeUnit(q.Unit)
	if err != nil {
		return nil, err
	}
	zone, err := s.zone(q.Zone)
	if err != nil {
		return nil, err
	}

	n, err := start.UntilIn(end, unit, zone)
	if err != nil {
		return nil, err
	}
	return &calendar.Amount{Amount: n, Unit: unit.String()}, nil
}

// Period splits the distance between two instants
func (s *CalendarService) Period(ctx context.Context, q calendar.PeriodQuery) (res *calendar.Period, err error) {
	defer func(start time.Time) { s.observe("period", start, err) }(time.Now())

	start, err := datetime.ParseInstant(q.Start)
	if err != nil {
		return nil, err
	}
	end, err := datetime.ParseInstant(q.End)
	if err != nil {
		return nil, err
	}
	zone, err := s.zone(q.Zone)
	if err != nil {
		return nil, err
	}

	p, err := start.PeriodUntil(end, zone)
	if err != nil {
		return nil, err
	}
	return periodOf(p), nil
}

// DatePlus adds date units or a date period to a date
func (s *CalendarService) DatePlus(ctx context.Context, q calendar.DatePlusQuery) (res *calendar.Date, err error) {
	defer func(start time.Time) { s.observe("date_plus", start, err) }(time.Now())

	if (q.Unit == "") == (q.Period == "") {
		return nil, fmt.Errorf("%w: exactly one of unit and period is required", datetime.ErrIllegalArgument)
	}
	d, err := datetime.ParseLocalDate(q.Date)
	if err != nil {
		return nil, err
	}

	var out datetime.LocalDate
	if q.Period != "" {
		p, err := datetime.ParseDatePeriod(q.Period)
		if err != nil {
			return nil, err
		}
		out, err = d.PlusPeriod(p)
		if err != nil {
			return nil, err
		}
	} else {
		unit, err := datetime.ParseDateTimeUnit(q.Unit)
		if err != nil {
			return nil, err
		}
		dateUnit, ok := unit.(datetime.DateBasedUnit)
		if !ok {
			return nil, fmt.Errorf("%w: %s is not a date-based unit", datetime.ErrIllegalArgument, unit)
		}
		out, err = d.Plus(q.Amount, dateUnit)
		if err != nil {
			return nil, err
		}
	}
	return dateOf(out), nil
}

// DatePeriod is the calendar distance between two dates
func (s *CalendarService) DatePeriod(ctx context.Context, q calendar.DatePeriodQuery) (res *calendar.Period, err error) {
	defer func(start time.Time) { s.observe("date_period", start, err) }(time.Now())

	start, err := datetime.ParseLocalDate(q.Start)
	if err != nil {
		return nil, err
	}
	end, err := datetime.ParseLocalDate(q.End)
	if err != nil {
		return nil, err
	}
	return periodOf(start.PeriodUntil(end).ToDateTimePeriod()), nil
}

// Offset returns the offset of a zone at an instant, now if empty
func (s *CalendarService) Offset(ctx context.Context, q calendar.InstantQuery) (res *calendar.Offset, err error) {
	defer func(start time.Time) { s.observe("offset", start, err) }(time.Now())

	i := s.now()
	if q.Instant != "" {
		if i, err = datetime.ParseInstant(q.Instant); err != nil {
			return nil, err
		}
	}
	zone, err := s.zone(q.Zone)
	if err != nil {
		return nil, err
	}
	offset, err := i.OffsetIn(zone)
	if err != nil {
		return nil, err
	}
	return &calendar.Offset{
		Zone:         zone.ID(),
		Instant:      i.String(),
		Offset:       offset.String(),
		TotalSeconds: offset.TotalSeconds(),
	}, nil
}

// Zones lists the available zone ids starting with prefix
func (s *CalendarService) Zones(ctx context.Context, prefix string) (res []string, err error) {
	defer func(start time.Time) { s.observe("zones", start, err) }(time.Now())

	ids, err := s.zones.AvailableZoneIDs()
	if err != nil {
		return nil, err
	}
	if prefix == "" {
		return ids, nil
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if strings.HasPrefix(strings.ToLower(id), strings.ToLower(prefix)) {
			out = append(out, id)
		}
	}
	return out, nil
}

// SystemZone returns the current system zone id
func (s *CalendarService) SystemZone(ctx context.Context) (res string, err error) {
	defer func(start time.Time) { s.observe("system_zone", start, err) }(time.Now())

	zone, err := s.zones.CurrentSystemDefault()
	if err != nil {
		return "", err
	}
	return zone.ID(), nil
}

func periodOf(p datetime.DateTimePeriod) *calendar.Period {
	return &calendar.Period{
		Period:      p.String(),
		Years:       p.Years(),
		Months:      p.Months(),
		Days:        p.Days(),
		Hours:       p.Hours(),
		Minutes:     p.Minutes(),
		Seconds:     p.Seconds(),
		Nanoseconds: int64(p.Nanoseconds()),
	}
}

func dateOf(d datetime.LocalDate) *calendar.Date {
	return &calendar.Date{
		Date:      d.String(),
		DayOfWeek: d.DayOfWeek().String(),
		DayOfYear: d.DayOfYear(),
		EpochDays: d.ToEpochDays(),
		LeapYear:  d.IsLeapYear(),
	}
}
