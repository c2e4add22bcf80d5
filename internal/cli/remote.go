package cli

import (
	"context"

	"github.com/pratik-mahalle/calendrical/internal/domain/calendar"
	"github.com/pratik-mahalle/calendrical/pkg/client"
)

// remoteService answers calendar queries through a calendrical server
type remoteService struct {
	client *client.Client
}

func newRemoteService(c *client.Client) calendar.Service {
	return &remoteService{client: c}
}

func (s *remoteService) ToInstant(ctx context.Context, q calendar.LocalQuery) (*calendar.Zoned, error) {
	z, err := s.client.Convert().LocalToInstant(ctx, client.LocalToInstantRequest{
		DateTime:        q.DateTime,
		Zone:            q.Zone,
		PreferredOffset: q.PreferredOffset,
	})
	if err != nil {
		return nil, err
	}
	res := calendar.Zoned(*z)
	return &res, nil
}

func (s *remoteService) ToLocal(ctx context.Context, q calendar.InstantQuery) (*calendar.Zoned, error) {
	z, err := s.client.Convert().InstantToLocal(ctx, client.InstantToLocalRequest{Instant: q.Instant, Zone: q.Zone})
	if err != nil {
		return nil, err
	}
	res := calendar.Zoned(*z)
	return &res, nil
}

func (s *remoteService) Plus(ctx context.Context, q calendar.PlusQuery) (*calendar.Zoned, error) {
	z, err := s.client.Arithmetic().Plus(ctx, client.PlusRequest{
		Instant: q.Instant,
		Amount:  q.Amount,
		Unit:    q.Unit,
		Period:  q.Period,
		Zone:    q.Zone,
	})
	if err != nil {
		return nil, err
	}
	res := calendar.Zoned(*z)
	return &res, nil
}

func (s *remoteService) Until(ctx context.Context, q calendar.UntilQuery) (*calendar.Amount, error) {
	a, err := s.client.Arithmetic().Until(ctx, client.UntilRequest{Start: q.Start, End: q.End, Unit: q.Unit, Zone: q.Zone})
	if err != nil {
		return nil, err
	}
	res := calendar.Amount(*a)
	return &res, nil
}

func (s *remoteService) Period(ctx context.Context, q calendar.PeriodQuery) (*calendar.Period, error) {
	p, err := s.client.Arithmetic().Period(ctx, client.PeriodRequest{Start: q.Start, End: q.End, Zone: q.Zone})
	if err != nil {
		return nil, err
	}
	res := calendar.Period(*p)
	return &res, nil
}

func (s *remoteService) DatePlus(ctx context.Context, q calendar.DatePlusQuery) (*calendar.Date, error) {
	d, err := s.client.Dates().Plus(ctx, client.DatePlusRequest{
		Date:   q.Date,
		Amount: q.Amount,
		Unit:   q.Unit,
		Period: q.Period,
	})
	if err != nil {
		return nil, err
	}
	res := calendar.Date(*d)
	return &res, nil
}

func (s *remoteService) DatePeriod(ctx context.Context, q calendar.DatePeriodQuery) (*calendar.Period, error) {
	p, err := s.client.Dates().Period(ctx, client.DatePeriodRequest{Start: q.Start, End: q.End})
	if err != nil {
		return nil, err
	}
	res := calendar.Period(*p)
	return &res, nil
}

func (s *remoteService) Offset(ctx context.Context, q calendar.InstantQuery) (*calendar.Offset, error) {
	o, err := s.client.Zones().Offset(ctx, q.Zone, q.Instant)
	if err != nil {
		return nil, err
	}
	res := calendar.Offset(*o)
	return &res, nil
}

func (s *remoteService) Zones(ctx context.Context, prefix string) ([]string, error) {
	return s.client.Zones().All(ctx, prefix)
}

func (s *remoteService) SystemZone(ctx context.Context) (string, error) {
	return s.client.Zones().System(ctx)
}
