package client

// Zoned is an instant together with its civil reading in a zone
type Zoned struct {
	Instant       string `json:"instant" yaml:"instant"`
	LocalDateTime string `json:"local_date_time" yaml:"local_date_time"`
	Offset        string `json:"offset" yaml:"offset"`
	Zone          string `json:"zone" yaml:"zone"`
	DayOfWeek     string `json:"day_of_week" yaml:"day_of_week"`
	EpochSeconds  int64  `json:"epoch_seconds" yaml:"epoch_seconds"`
}

// Amount is a signed count of units
type Amount struct {
	Amount int64  `json:"amount" yaml:"amount"`
	Unit   string `json:"unit" yaml:"unit"`
}

// Period is a calendar period together with its components
type Period struct {
	Period      string `json:"period" yaml:"period"`
	Years       int    `json:"years" yaml:"years"`
	Months      int    `json:"months" yaml:"months"`
	Days        int    `json:"days" yaml:"days"`
	Hours       int    `json:"hours" yaml:"hours"`
	Minutes     int    `json:"minutes" yaml:"minutes"`
	Seconds     int    `json:"seconds" yaml:"seconds"`
	Nanoseconds int64  `json:"nanoseconds" yaml:"nanoseconds"`
}

// Date is a calendar date with its derived fields
type Date struct {
	Date      string `json:"date" yaml:"date"`
	DayOfWeek string `json:"day_of_week" yaml:"day_of_week"`
	DayOfYear int    `json:"day_of_year" yaml:"day_of_year"`
	EpochDays int64  `json:"epoch_days" yaml:"epoch_days"`
	LeapYear  bool   `json:"leap_year" yaml:"leap_year"`
}

// Offset is the UTC offset of a zone at an instant
type Offset struct {
	Zone         string `json:"zone" yaml:"zone"`
	Instant      string `json:"instant" yaml:"instant"`
	Offset       string `json:"offset" yaml:"offset"`
	TotalSeconds int    `json:"total_seconds" yaml:"total_seconds"`
}

// LocalToInstantRequest resolves a local date-time in a zone. An empty
// zone is the server's zone.
type LocalToInstantRequest struct {
	DateTime        string `json:"date_time"`
	Zone            string `json:"zone,omitempty"`
	PreferredOffset string `json:"preferred_offset,omitempty"`
}

// InstantToLocalRequest reads an instant in a zone
type InstantToLocalRequest struct {
	Instant string `json:"instant"`
	Zone    string `json:"zone,omitempty"`
}

// PlusRequest adds Amount units, or Period, to an instant
type PlusRequest struct {
	Instant string `json:"instant"`
	Amount  int64  `json:"amount"`
	Unit    string `json:"unit,omitempty"`
	Period  string `json:"period,omitempty"`
	Zone    string `json:"zone,omitempty"`
}

// UntilRequest counts whole units between two instants
type UntilRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Unit  string `json:"unit"`
	Zone  string `json:"zone,omitempty"`
}

// PeriodRequest splits the distance between two instants into a period
type PeriodRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Zone  string `json:"zone,omitempty"`
}

// DatePlusRequest adds Amount date units, or a date Period, to a date
type DatePlusRequest struct {
	Date   string `json:"date"`
	Amount int64  `json:"amount"`
	Unit   string `json:"unit,omitempty"`
	Period string `json:"period,omitempty"`
}

// DatePeriodRequest is the calendar distance between two dates
type DatePeriodRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ListOptions contains common options for list operations
type ListOptions struct {
	Page     int `json:"page,omitempty"`      // Page number (1-based)
	PageSize int `json:"page_size,omitempty"` // Items per page
}

// ZoneListOptions filters the zone listing
type ZoneListOptions struct {
	ListOptions
	Prefix string
}

// ZonePage is one page of zone ids
type ZonePage struct {
	Data       []string `json:"data"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
	TotalItems int64    `json:"total_items"`
	TotalPages int      `json:"total_pages"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
	Zone   string `json:"zone,omitempty"`
}
