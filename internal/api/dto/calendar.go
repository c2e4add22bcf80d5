package dto

// LocalToInstantRequest resolves a local date-time in a zone
type LocalToInstantRequest struct {
	DateTime        string `json:"date_time" validate:"required,local_datetime" example:"2021-03-28T02:30"`
	Zone            string `json:"zone,omitempty" validate:"max=64" example:"Europe/Berlin"`
	PreferredOffset string `json:"preferred_offset,omitempty" validate:"omitempty,max=9" example:"+01:00"`
}

// InstantToLocalRequest reads an instant in a zone
type InstantToLocalRequest struct {
	Instant string `json:"instant" validate:"required,instant" example:"2021-03-28T01:30:00Z"`
	Zone    string `json:"zone,omitempty" validate:"max=64" example:"Asia/Kolkata"`
}

// PlusRequest adds amount units, or a period, to an instant
type PlusRequest struct {
	Instant string `json:"instant" validate:"required,instant" example:"2021-03-27T12:00:00+01:00"`
	Amount  int64  `json:"amount" example:"1"`
	Unit    string `json:"unit,omitempty" validate:"omitempty,unit" example:"DAY"`
	Period  string `json:"period,omitempty" validate:"omitempty,period" example:"P1DT1H"`
	Zone    string `json:"zone,omitempty" validate:"max=64" example:"Europe/Berlin"`
}

// UntilRequest counts whole units between two instants
type UntilRequest struct {
	Start string `json:"start" validate:"required,instant" example:"2021-03-27T12:00:00+01:00"`
	End   string `json:"end" validate:"required,instant" example:"2021-03-28T10:00:00Z"`
	Unit  string `json:"unit" validate:"required,unit" example:"HOUR"`
	Zone  string `json:"zone,omitempty" validate:"max=64" example:"Europe/Berlin"`
}

// PeriodRequest splits the distance between two instants into a period
type PeriodRequest struct {
	Start string `json:"start" validate:"required,instant" example:"2021-01-01T00:00:00Z"`
	End   string `json:"end" validate:"required,instant" example:"2021-03-15T06:30:00Z"`
	Zone  string `json:"zone,omitempty" validate:"max=64" example:"UTC"`
}

// DatePlusRequest adds amount date units, or a date period, to a date
type DatePlusRequest struct {
	Date   string `json:"date" validate:"required,local_date" example:"2021-01-31"`
	Amount int64  `json:"amount" example:"1"`
	Unit   string `json:"unit,omitempty" validate:"omitempty,unit" example:"MONTH"`
	Period string `json:"period,omitempty" validate:"omitempty,date_period" example:"P1Y2M"`
}

// DatePeriodRequest is the calendar distance between two dates
type DatePeriodRequest struct {
	Start string `json:"start" validate:"required,local_date" example:"2021-01-01"`
	End   string `json:"end" validate:"required,local_date" example:"2021-03-15"`
}

// SystemZoneResponse names the host time zone
type SystemZoneResponse struct {
	Zone string `json:"zone" example:"Europe/Berlin"`
}
