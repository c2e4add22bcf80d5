package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, Config{Level: "warn", Format: "json"})

	log.Debug("dropped")
	log.Info("dropped")
	log.Warn("kept")
	log.Errorf("kept %d", 2)

	entries := lines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "kept", entries[0]["message"])
	assert.Equal(t, "warn", entries[0]["level"])
	assert.Equal(t, "kept 2", entries[1]["message"])
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, Config{Level: "debug", Format: "json"}).WithComponent("tzdb")

	log.With("zone", "Europe/Berlin").Info("loaded")
	log.WithFields(map[string]interface{}{"zones": 3}).WithError(errors.New("stale")).Warn("refreshed")

	entries := lines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "tzdb", entries[0]["component"])
	assert.Equal(t, "Europe/Berlin", entries[0]["zone"])
	assert.Equal(t, float64(3), entries[1]["zones"])
	assert.Equal(t, "stale", entries[1]["error"])
}

func TestParseLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, Config{Level: "off"})
	log.Error("nothing")
	assert.Empty(t, buf.String())

	assert.NotPanics(t, func() { Nop().Error("nothing") })
}

func TestDefault_BeforeInit(t *testing.T) {
	assert.NotNil(t, Default())
}
