package worker

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratik-mahalle/calendrical/internal/pkg/logger"
	"github.com/pratik-mahalle/calendrical/internal/testutil"
)

type fakeRefresher struct {
	calls atomic.Int32
	count int
	err   error
}

func (f *fakeRefresher) Refresh() (int, error) {
	f.calls.Add(1)
	return f.count, f.err
}

func TestZoneRefresher_RunOnce(t *testing.T) {
	var buf bytes.Buffer
	source := &fakeRefresher{count: 42}
	r := NewZoneRefresher(source, "@daily", logger.NewWithWriter(&buf, logger.Config{Level: "info"}))

	r.RunOnce()
	assert.Equal(t, int32(1), source.calls.Load())
	assert.Equal(t, 42, r.LastCount())
	assert.Contains(t, buf.String(), `"zones":42`)
	assert.Contains(t, buf.String(), `"component":"zone-refresher"`)

	// a failed refresh keeps the last good count
	source.err = errors.New("zoneinfo unreadable")
	source.count = 0
	r.RunOnce()
	assert.Equal(t, 42, r.LastCount())
	assert.Contains(t, buf.String(), "zoneinfo unreadable")
}

func TestZoneRefresher_StartStop(t *testing.T) {
	r := NewZoneRefresher(&fakeRefresher{}, "@every 1h", testutil.NewTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, r.Start(ctx))
	assert.Error(t, r.Start(ctx))

	r.Stop()
	r.Stop()
	require.NoError(t, r.Start(ctx))
	r.Stop()
}

func TestZoneRefresher_InvalidSchedule(t *testing.T) {
	r := NewZoneRefresher(&fakeRefresher{}, "every tuesday", testutil.NewTestLogger())
	assert.Error(t, r.Start(context.Background()))
}
