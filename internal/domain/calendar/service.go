package calendar

import "context"

// Service defines the calendar operations shared by the API and the CLI.
// An empty zone means the current system zone.
type Service interface {
	// ToInstant resolves a local date-time in a zone
	ToInstant(ctx context.Context, q LocalQuery) (*Zoned, error)

	// ToLocal reads an instant in a zone
	ToLocal(ctx context.Context, q InstantQuery) (*Zoned, error)

	// Plus adds units or a period to an instant
	Plus(ctx context.Context, q PlusQuery) (*Zoned, error)

	// Until counts whole units between two instants
	Until(ctx context.Context, q UntilQuery) (*Amount, error)

	// Period splits the distance between two instants
	Period(ctx context.Context, q PeriodQuery) (*Period, error)

	// DatePlus adds date units or a date period to a date
	DatePlus(ctx context.Context, q DatePlusQuery) (*Date, error)

	// DatePeriod is the calendar distance between two dates
	DatePeriod(ctx context.Context, q DatePeriodQuery) (*Period, error)

	// Offset returns the offset of a zone at an instant, now if empty
	Offset(ctx context.Context, q InstantQuery) (*Offset, error)

	// Zones lists the available zone ids starting with prefix
	Zones(ctx context.Context, prefix string) ([]string, error)

	// SystemZone returns the current system zone id
	SystemZone(ctx context.Context) (string, error)
}
