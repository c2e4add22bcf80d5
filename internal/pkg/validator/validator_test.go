package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Instant string `json:"instant" validate:"required,instant"`
	Unit    string `json:"unit" validate:"omitempty,unit"`
	Period  string `json:"period" validate:"omitempty,period"`
	Date    string `json:"date" validate:"omitempty,local_date"`
}

func TestValidator_CalendarTags(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		in         sample
		wantFields []string
	}{
		{name: "valid", in: sample{Instant: "2021-03-28T01:30:00Z", Unit: "3-day", Period: "P1M", Date: "2021-03-28"}},
		{name: "missing instant", in: sample{}, wantFields: []string{"instant"}},
		{name: "local instant", in: sample{Instant: "2021-03-28T01:30"}, wantFields: []string{"instant"}},
		{name: "bad unit and period", in: sample{Instant: "2021-03-28T01:30Z", Unit: "FORTNIGHT", Period: "P1X"}, wantFields: []string{"unit", "period"}},
		{name: "bad date", in: sample{Instant: "2021-03-28T01:30Z", Date: "2021-02-29"}, wantFields: []string{"date"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.Validate(tt.in)
			var fields []string
			for _, e := range errs {
				fields = append(fields, e.Field)
				assert.NotEmpty(t, e.Message)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestValidator_Messages(t *testing.T) {
	errs := Validate(sample{Instant: "yesterday"})
	require.Len(t, errs, 1)
	assert.Equal(t, "instant", errs[0].Tag)
	assert.Contains(t, errs[0].Message, "ISO-8601 instant")
}
