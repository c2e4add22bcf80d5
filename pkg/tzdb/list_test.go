package tzdb

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratik-mahalle/calendrical/internal/testutil"
)

func TestListZoneIDs(t *testing.T) {
	fsys := testutil.NewZoneinfoFS("UTC", "Europe/Berlin", "America/Argentina/Buenos_Aires", "Asia/Kolkata", "Etc/GMT+5")

	ids, err := ListZoneIDs(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"America/Argentina/Buenos_Aires",
		"Asia/Kolkata",
		"Etc/GMT+5",
		"Europe/Berlin",
		"UTC",
	}, ids)
}

func TestListZoneIDs_Empty(t *testing.T) {
	ids, err := ListZoneIDs(testutil.NewZoneinfoFS())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestProvider_AvailableZoneIDs(t *testing.T) {
	dir := t.TempDir()
	for name, file := range testutil.NewZoneinfoFS("Europe/Berlin", "Asia/Tokyo") {
		target := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))
		require.NoError(t, os.WriteFile(target, file.Data, 0o644))
	}

	p := newTestProvider(t, Config{ZoneinfoDir: dir})
	ids, err := p.AvailableZoneIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"Asia/Tokyo", "Europe/Berlin"}, ids)
}

func TestProvider_AvailableZoneIDsMissingRoot(t *testing.T) {
	p := newTestProvider(t, Config{ZoneinfoDir: filepath.Join(t.TempDir(), "missing")})
	_, err := p.AvailableZoneIDs()
	assert.Error(t, err)
}

func TestProvider_Refresh(t *testing.T) {
	dir := t.TempDir()
	write := func(ids ...string) {
		for name, file := range testutil.NewZoneinfoFS(ids...) {
			target := filepath.Join(dir, filepath.FromSlash(name))
			require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))
			require.NoError(t, os.WriteFile(target, file.Data, 0o644))
		}
	}
	write("Europe/Berlin")

	p := newTestProvider(t, Config{ZoneinfoDir: dir})
	p.cache.Add("Europe/Berlin", time.UTC)
	require.Equal(t, 1, p.Cached())

	count, err := p.Refresh()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Zero(t, p.Cached())

	write("Asia/Tokyo", "America/Chicago")
	count, err = p.Refresh()
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
