package integration

import (
	"context"
	"errors"
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratik-mahalle/calendrical/internal/testutil"
	"github.com/pratik-mahalle/calendrical/internal/testutil/apitest"
	"github.com/pratik-mahalle/calendrical/pkg/client"
	"github.com/pratik-mahalle/calendrical/pkg/tzdb"
)

// setupCalendarFlow runs the API over the IANA database and returns a client for it
func setupCalendarFlow(t *testing.T) *client.Client {
	t.Helper()
	provider, err := tzdb.New(tzdb.Config{CacheSize: 16}, testutil.NewTestLogger())
	require.NoError(t, err)

	srv := apitest.NewServerWithRules(provider)
	t.Cleanup(srv.Close)

	return client.NewClient(client.Config{BaseURL: srv.URL})
}

func TestCalendarFlow_BerlinTransitions(t *testing.T) {
	c := setupCalendarFlow(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		req         client.LocalToInstantRequest
		wantInstant string
		wantLocal   string
		wantOffset  string
	}{
		{
			name:        "spring gap moves forward",
			req:         client.LocalToInstantRequest{DateTime: "2021-03-28T02:30", Zone: "Europe/Berlin"},
			wantInstant: "2021-03-28T01:30:00Z",
			wantLocal:   "2021-03-28T03:30",
			wantOffset:  "+02:00",
		},
		{
			name:        "autumn overlap takes the earlier instant",
			req:         client.LocalToInstantRequest{DateTime: "2021-10-31T02:30", Zone: "Europe/Berlin"},
			wantInstant: "2021-10-31T00:30:00Z",
			wantLocal:   "2021-10-31T02:30",
			wantOffset:  "+02:00",
		},
		{
			name:        "autumn overlap with preferred offset",
			req:         client.LocalToInstantRequest{DateTime: "2021-10-31T02:30", Zone: "Europe/Berlin", PreferredOffset: "+01:00"},
			wantInstant: "2021-10-31T01:30:00Z",
			wantLocal:   "2021-10-31T02:30",
			wantOffset:  "+01:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z, err := c.Convert().LocalToInstant(ctx, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantInstant, z.Instant)
			assert.Equal(t, tt.wantLocal, z.LocalDateTime)
			assert.Equal(t, tt.wantOffset, z.Offset)
			assert.Equal(t, "Europe/Berlin", z.Zone)
		})
	}
}

func TestCalendarFlow_ArithmeticAcrossSpringForward(t *testing.T) {
	c := setupCalendarFlow(t)
	ctx := context.Background()

	start := "2021-03-27T12:00:00+01:00"
	next, err := c.Arithmetic().Plus(ctx, client.PlusRequest{Instant: start, Amount: 1, Unit: "DAY", Zone: "Europe/Berlin"})
	require.NoError(t, err)
	assert.Equal(t, "2021-03-28T12:00", next.LocalDateTime)
	assert.Equal(t, "2021-03-28T10:00:00Z", next.Instant)

	hours, err := c.Arithmetic().Until(ctx, client.UntilRequest{Start: start, End: next.Instant, Unit: "HOUR", Zone: "Europe/Berlin"})
	require.NoError(t, err)
	assert.Equal(t, int64(23), hours.Amount)

	days, err := c.Arithmetic().Until(ctx, client.UntilRequest{Start: start, End: next.Instant, Unit: "DAY", Zone: "Europe/Berlin"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), days.Amount)
}

func TestCalendarFlow_Offsets(t *testing.T) {
	c := setupCalendarFlow(t)
	ctx := context.Background()

	ny, err := c.Zones().Offset(ctx, "America/New_York", "2021-07-01T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "-04:00", ny.Offset)
	assert.Equal(t, -4*3600, ny.TotalSeconds)

	kolkata, err := c.Convert().InstantToLocal(ctx, client.InstantToLocalRequest{Instant: "2021-03-28T01:30:00Z", Zone: "Asia/Kolkata"})
	require.NoError(t, err)
	assert.Equal(t, "2021-03-28T07:00", kolkata.LocalDateTime)
	assert.Equal(t, "+05:30", kolkata.Offset)
}

func TestCalendarFlow_UnknownZone(t *testing.T) {
	c := setupCalendarFlow(t)

	_, err := c.Convert().InstantToLocal(context.Background(), client.InstantToLocalRequest{Instant: "2021-03-28T01:30:00Z", Zone: "Mars/Olympus_Mons"})
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.True(t, apiErr.IsIllegalTimeZone())
	assert.True(t, apiErr.IsValidationError())
}
