package client

import (
	"context"
	"net/url"
	"strconv"
)

const apiPrefix = "/api/v1"

// ConvertService converts between instants and local date-times
type ConvertService struct {
	client *Client
}

// LocalToInstant resolves a local date-time in a zone
func (s *ConvertService) LocalToInstant(ctx context.Context, req LocalToInstantRequest) (*Zoned, error) {
	var res Zoned
	if err := s.client.doRequest(ctx, "POST", apiPrefix+"/convert/local", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// InstantToLocal reads an instant in a zone
func (s *ConvertService) InstantToLocal(ctx context.Context, req InstantToLocalRequest) (*Zoned, error) {
	var res Zoned
	if err := s.client.doRequest(ctx, "POST", apiPrefix+"/convert/instant", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ArithmeticService performs instant arithmetic in a zone
type ArithmeticService struct {
	client *Client
}

// Plus adds units or a period to an instant
func (s *ArithmeticService) Plus(ctx context.Context, req PlusRequest) (*Zoned, error) {
	var res Zoned
	if err := s.client.doRequest(ctx, "POST", apiPrefix+"/arithmetic/plus", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Until counts whole units between two instants
func (s *ArithmeticService) Until(ctx context.Context, req UntilRequest) (*Amount, error) {
	var res Amount
	if err := s.client.doRequest(ctx, "POST", apiPrefix+"/arithmetic/until", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Period splits the distance between two instants
func (s *ArithmeticService) Period(ctx context.Context, req PeriodRequest) (*Period, error) {
	var res Period
	if err := s.client.doRequest(ctx, "POST", apiPrefix+"/arithmetic/period", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DateService performs date arithmetic
type DateService struct {
	client *Client
}

// Plus adds date units or a date period to a date
func (s *DateService) Plus(ctx context.Context, req DatePlusRequest) (*Date, error) {
	var res Date
	if err := s.client.doRequest(ctx, "POST", apiPrefix+"/dates/plus", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Period is the calendar distance between two dates
func (s *DateService) Period(ctx context.Context, req DatePeriodRequest) (*Period, error) {
	var res Period
	if err := s.client.doRequest(ctx, "POST", apiPrefix+"/dates/period", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ZoneService reads the server's zone database
type ZoneService struct {
	client *Client
}

// List returns one page of zone ids
func (s *ZoneService) List(ctx context.Context, opts *ZoneListOptions) (*ZonePage, error) {
	query := url.Values{}
	if opts != nil {
		if opts.Page > 0 {
			query.Set("page", strconv.Itoa(opts.Page))
		}
		if opts.PageSize > 0 {
			query.Set("page_size", strconv.Itoa(opts.PageSize))
		}
		if opts.Prefix != "" {
			query.Set("prefix", opts.Prefix)
		}
	}

	path := apiPrefix + "/zones"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var page ZonePage
	if err := s.client.doRequest(ctx, "GET", path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// All walks every page and returns all zone ids with the prefix
func (s *ZoneService) All(ctx context.Context, prefix string) ([]string, error) {
	opts := &ZoneListOptions{ListOptions: ListOptions{Page: 1, PageSize: 1000}, Prefix: prefix}
	var ids []string
	for {
		page, err := s.List(ctx, opts)
		if err != nil {
			return nil, err
		}
		ids = append(ids, page.Data...)
		if opts.Page >= page.TotalPages {
			return ids, nil
		}
		opts.Page++
	}
}

// System returns the server's zone
func (s *ZoneService) System(ctx context.Context) (string, error) {
	var res struct {
		Zone string `json:"zone"`
	}
	if err := s.client.doRequest(ctx, "GET", apiPrefix+"/zones/system", nil, &res); err != nil {
		return "", err
	}
	return res.Zone, nil
}

// Offset returns the offset of zone at instant; empty values mean the
// server's zone and the current time
func (s *ZoneService) Offset(ctx context.Context, zone, instant string) (*Offset, error) {
	query := url.Values{}
	if zone != "" {
		query.Set("zone", zone)
	}
	if instant != "" {
		query.Set("instant", instant)
	}
	path := apiPrefix + "/offset"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var res Offset
	if err := s.client.doRequest(ctx, "GET", path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
