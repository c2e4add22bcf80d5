package calendar

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

// LocalQuery resolves a local date-time in a zone. PreferredOffset picks
// the reading inside an overlap.
type LocalQuery struct {
	DateTime        string
	Zone            string
	PreferredOffset string
}

// InstantQuery reads an instant in a zone
type InstantQuery struct {
	Instant string
	Zone    string
}

// PlusQuery adds either Amount units or Period to an instant. Exactly one
// of Unit and Period must be set.
type PlusQuery struct {
	Instant string
	Amount  int64
	Unit    string
	Period  string
	Zone    string
}

// UntilQuery counts whole units between two instants
type UntilQuery struct {
	Start string
	End   string
	Unit  string
	Zone  string
}

// PeriodQuery splits the distance between two instants into a period
type PeriodQuery struct {
	Start string
	End   string
	Zone  string
}

// DatePlusQuery adds either Amount date units or a date Period to a date
type DatePlusQuery struct {
	Date   string
	Amount int64
	Unit   string
	Period string
}

// DatePeriodQuery is the calendar distance between two dates
type DatePeriodQuery struct {
	Start string
	End   string
}
