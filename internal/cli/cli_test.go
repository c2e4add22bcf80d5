package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratik-mahalle/calendrical/internal/domain/calendar"
	"github.com/pratik-mahalle/calendrical/internal/testutil"
	"github.com/pratik-mahalle/calendrical/internal/testutil/apitest"
	"github.com/pratik-mahalle/calendrical/pkg/client"
	"github.com/pratik-mahalle/calendrical/pkg/datetime"
)

// run executes one command line against a fresh command tree
func run(t *testing.T, st *state, cfgFile string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(st)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--config", cfgFile}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func localState() *state {
	st := newState()
	st.rules = testutil.NewMockZoneRules()
	return st
}

func tempConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "config.yaml")
}

func TestLocalCommands_JSON(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want calendar.Zoned
	}{
		{
			name: "local in gap",
			args: []string{"local", "2021-03-28T02:30", "-z", testutil.ZoneSpring, "-o", "json"},
			want: calendar.Zoned{
				Instant: "2021-03-28T01:30:00Z", LocalDateTime: "2021-03-28T03:30", Offset: "+02:00",
				Zone: testutil.ZoneSpring, DayOfWeek: "SUNDAY", EpochSeconds: 1_616_895_000,
			},
		},
		{
			name: "local in overlap with preferred offset",
			args: []string{"local", "2021-10-31T02:30", "-z", testutil.ZoneSpring, "--prefer-offset", "+01:00", "-o", "json"},
			want: calendar.Zoned{
				Instant: "2021-10-31T01:30:00Z", LocalDateTime: "2021-10-31T02:30", Offset: "+01:00",
				Zone: testutil.ZoneSpring, DayOfWeek: "SUNDAY", EpochSeconds: 1_635_643_800,
			},
		},
		{
			name: "system zone by default",
			args: []string{"local", "2021-01-01T00:00", "-o", "json"},
			want: calendar.Zoned{
				Instant: "2020-12-31T23:00:00Z", LocalDateTime: "2021-01-01T00:00", Offset: "+01:00",
				Zone: testutil.ZoneSpring, DayOfWeek: "FRIDAY", EpochSeconds: 1_609_455_600,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, localState(), tempConfig(t), tt.args...)
			require.NoError(t, err)

			var got calendar.Zoned
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlusCommand(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantLocal string
		wantErr   bool
	}{
		{name: "calendar day", args: []string{"plus", "-z", testutil.ZoneSpring, "--", "2021-03-27T12:00:00+01:00", "1", "DAY"}, wantLocal: "2021-03-28T12:00"},
		{name: "hours", args: []string{"plus", "-z", testutil.ZoneSpring, "--", "2021-03-27T12:00:00+01:00", "24", "HOUR"}, wantLocal: "2021-03-28T13:00"},
		{name: "negative months", args: []string{"plus", "-z", "UTC", "--", "2021-03-31T00:00:00Z", "-1", "MONTH"}, wantLocal: "2021-02-28T00:00"},
		{name: "period", args: []string{"plus", "-z", testutil.ZoneSpring, "--period", "P1DT1H", "2021-03-27T12:00:00+01:00"}, wantLocal: "2021-03-28T13:00"},
		{name: "missing unit", args: []string{"plus", "2021-03-27T12:00:00Z", "1"}, wantErr: true},
		{name: "bad amount", args: []string{"plus", "2021-03-27T12:00:00Z", "one", "DAY"}, wantErr: true},
		{name: "period and units", args: []string{"plus", "--period", "P1D", "2021-03-27T12:00:00Z", "1", "DAY"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, localState(), tempConfig(t), append([]string{"-o", "json"}, tt.args...)...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			var got calendar.Zoned
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, tt.wantLocal, got.LocalDateTime)
		})
	}
}

func TestCommands_TableOutput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "instant", args: []string{"instant", "2021-03-28T01:30:00Z", "-z", testutil.ZoneKolkata}, want: []string{"FIELD", "2021-03-28T07:00", "+05:30", "SUNDAY"}},
		{name: "until", args: []string{"until", "2021-03-27T12:00:00+01:00", "2021-03-28T10:00:00Z", "HOUR", "-z", testutil.ZoneSpring}, want: []string{"23 HOUR"}},
		{name: "period", args: []string{"period", "2021-01-01T00:00:00Z", "2021-03-15T06:30:00Z", "-z", "UTC"}, want: []string{"P2M14DT6H30M"}},
		{name: "date plus", args: []string{"date", "plus", "2021-01-31", "1", "MONTH"}, want: []string{"2021-02-28", "SUNDAY", "18686"}},
		{name: "date period", args: []string{"date", "period", "2021-01-01", "2021-03-15"}, want: []string{"P2M14D"}},
		{name: "offset", args: []string{"offset", "-z", testutil.ZoneSpring, "--at", "2021-07-01T00:00:00Z"}, want: []string{"+02:00", "7200"}},
		{name: "zones", args: []string{"zones", "--prefix", "test/k"}, want: []string{testutil.ZoneKolkata}},
		{name: "zones system", args: []string{"zones", "system"}, want: []string{testutil.ZoneSpring}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, localState(), tempConfig(t), tt.args...)
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestCommands_YAMLOutput(t *testing.T) {
	out, err := run(t, localState(), tempConfig(t), "date", "period", "2021-01-01", "2021-03-15", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "period: P2M14D")
	assert.Contains(t, out, "months: 2")
}

func TestCommands_Errors(t *testing.T) {
	_, err := run(t, localState(), tempConfig(t), "local", "2021-03-28T02:30", "-z", "Mars/Base")
	assert.ErrorIs(t, err, datetime.ErrIllegalTimeZone)

	_, err = run(t, localState(), tempConfig(t), "date", "plus", "2021-01-31", "1", "HOUR")
	assert.ErrorIs(t, err, datetime.ErrIllegalArgument)

	_, err = run(t, localState(), tempConfig(t), "zones", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestConfigCommands(t *testing.T) {
	cfg := tempConfig(t)

	out, err := run(t, localState(), cfg, "config", "set", "zone", testutil.ZoneKolkata)
	require.NoError(t, err)
	assert.Contains(t, out, "Set zone = "+testutil.ZoneKolkata)

	data, err := os.ReadFile(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), testutil.ZoneKolkata)

	out, err = run(t, localState(), cfg, "config", "get", "zone")
	require.NoError(t, err)
	assert.Equal(t, "zone: "+testutil.ZoneKolkata+"\n", out)

	out, err = run(t, localState(), cfg, "config", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "zone_cache_size")

	// the stored zone applies when -z is absent
	out, err = run(t, localState(), cfg, "instant", "2021-03-28T01:30:00Z", "-o", "json")
	require.NoError(t, err)
	var got calendar.Zoned
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, testutil.ZoneKolkata, got.Zone)

	_, err = run(t, localState(), cfg, "config", "set", "colour", "blue")
	assert.ErrorContains(t, err, "unknown config key")

	out, err = run(t, localState(), cfg, "config", "get", "server_url")
	require.NoError(t, err)
	assert.Equal(t, "server_url: (not set)\n", out)
}

func TestRemoteCommands(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()

	remote := func(args ...string) (string, error) {
		// rules are left nil: every answer must come from the server
		return run(t, newState(), tempConfig(t), append([]string{"--server", srv.URL, "-o", "json"}, args...)...)
	}

	out, err := remote("local", "2021-03-28T02:30", "-z", testutil.ZoneSpring)
	require.NoError(t, err)
	var zoned calendar.Zoned
	require.NoError(t, json.Unmarshal([]byte(out), &zoned))
	assert.Equal(t, "2021-03-28T01:30:00Z", zoned.Instant)

	out, err = remote("until", "2021-03-27T12:00:00+01:00", "2021-03-28T10:00:00Z", "DAY", "-z", testutil.ZoneSpring)
	require.NoError(t, err)
	var amount calendar.Amount
	require.NoError(t, json.Unmarshal([]byte(out), &amount))
	assert.Equal(t, int64(1), amount.Amount)

	out, err = remote("date", "plus", "2020-01-31", "--period", "P1M")
	require.NoError(t, err)
	var date calendar.Date
	require.NoError(t, json.Unmarshal([]byte(out), &date))
	assert.Equal(t, "2020-02-29", date.Date)
	assert.True(t, date.LeapYear)

	out, err = remote("zones")
	require.NoError(t, err)
	var ids []string
	require.NoError(t, json.Unmarshal([]byte(out), &ids))
	assert.Equal(t, []string{testutil.ZoneAnomalous, testutil.ZoneKolkata, testutil.ZoneMidnightGap, testutil.ZoneSpring, "UTC"}, ids)

	out, err = remote("zones", "system")
	require.NoError(t, err)
	assert.JSONEq(t, `{"zone":"`+testutil.ZoneSpring+`"}`, out)

	_, err = remote("instant", "2021-03-28T01:30:00Z", "-z", "Mars/Base")
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.True(t, apiErr.IsIllegalTimeZone())
}
