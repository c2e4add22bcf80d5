package datetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUtcOffset(t *testing.T) {
	tests := []struct {
		name        string
		opts        []OffsetOption
		wantSeconds int
		wantErr     bool
	}{
		{name: "no components is zero", wantSeconds: 0},
		{name: "hours only", opts: []OffsetOption{OffsetHours(5)}, wantSeconds: 5 * 3600},
		{name: "hours and minutes", opts: []OffsetOption{OffsetHours(5), OffsetMinutes(30)}, wantSeconds: 5*3600 + 30*60},
		{name: "negative everything", opts: []OffsetOption{OffsetHours(-3), OffsetMinutes(-30), OffsetSeconds(-15)}, wantSeconds: -(3*3600 + 30*60 + 15)},
		{name: "minutes split into hours", opts: []OffsetOption{OffsetMinutes(330)}, wantSeconds: 5*3600 + 30*60},
		{name: "seconds only", opts: []OffsetOption{OffsetSeconds(-3600)}, wantSeconds: -3600},
		{name: "eighteen hours", opts: []OffsetOption{OffsetHours(-18)}, wantSeconds: -18 * 3600},
		{name: "beyond eighteen hours", opts: []OffsetOption{OffsetHours(18), OffsetMinutes(1)}, wantErr: true},
		{name: "hours out of range", opts: []OffsetOption{OffsetHours(19)}, wantErr: true},
		{name: "mixed signs", opts: []OffsetOption{OffsetHours(1), OffsetMinutes(-30)}, wantErr: true},
		{name: "minutes over 59 with hours", opts: []OffsetOption{OffsetHours(1), OffsetMinutes(60)}, wantErr: true},
		{name: "seconds over 59 with hours", opts: []OffsetOption{OffsetHours(0), OffsetSeconds(60)}, wantErr: true},
		{name: "seconds total too large", opts: []OffsetOption{OffsetSeconds(18*3600 + 1)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := NewUtcOffset(tt.opts...)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrIllegalArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSeconds, o.TotalSeconds())
		})
	}
}

func TestUtcOffset_String(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "Z"},
		{3600, "+01:00"},
		{-(5*3600 + 30*60), "-05:30"},
		{5*3600 + 30*60 + 15, "+05:30:15"},
		{-18 * 3600, "-18:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			o, err := UtcOffsetOfSeconds(tt.seconds)
			require.NoError(t, err)
			assert.Equal(t, tt.want, o.String())

			parsed, err := ParseUtcOffset(tt.want)
			require.NoError(t, err)
			assert.Equal(t, o, parsed)
		})
	}
}

func TestParseUtcOffset_Forms(t *testing.T) {
	want := MustUtcOffset(OffsetHours(5), OffsetMinutes(30))
	for _, s := range []string{"+05:30", "+0530"} {
		o, err := ParseUtcOffset(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, o, s)
	}

	o, err := ParseUtcOffset("+5")
	require.NoError(t, err)
	assert.Equal(t, 5*3600, o.TotalSeconds())

	o, err = ParseUtcOffset("-083015")
	require.NoError(t, err)
	assert.Equal(t, -(8*3600 + 30*60 + 15), o.TotalSeconds())

	for _, s := range []string{"", "05:30", "+5:30", "+05:", "+05:3", "+05:30:", "+0530:15", "+19:00", "UTC"} {
		_, err := ParseUtcOffset(s)
		assert.ErrorIs(t, err, ErrIllegalArgument, "%q must be rejected", s)
	}
}

func TestUtcOffset_Compare(t *testing.T) {
	a := MustUtcOffset(OffsetHours(1))
	b := MustUtcOffset(OffsetHours(2))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
}
