// Package tzdb reads IANA time zone rules from the host zoneinfo database.
// A Provider answers offset queries for region ids and keeps the loaded
// locations in a bounded LRU cache shared by all goroutines.
package tzdb

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/pratik-mahalle/calendrical/internal/pkg/logger"
	"github.com/pratik-mahalle/calendrical/internal/pkg/metrics"
)

// DefaultCacheSize is the number of locations kept when Config.CacheSize is zero
const DefaultCacheSize = 512

// ErrUnknownZone is returned for ids that are not in the database
var ErrUnknownZone = errors.New("unknown time zone")

// Config configures a Provider
type Config struct {
	// ZoneinfoDir overrides the zoneinfo root. When empty, locations are
	// loaded through time.LoadLocation and listed from the first existing
	// default root.
	ZoneinfoDir string
	CacheSize   int
}

// Provider implements the zone rules consulted by region time zones
type Provider struct {
	dir       string
	cache     *lru.Cache[string, *time.Location]
	log       *logger.Logger
	lookupEnv func(string) (string, bool)
	link      func(string) (string, error)
}

// New creates a provider
func New(cfg Config, log *logger.Logger) (*Provider, error) {
	size := cfg.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, *time.Location](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create zone cache: %w", err)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Provider{
		dir:       cfg.ZoneinfoDir,
		cache:     cache,
		log:       log.WithComponent("tzdb"),
		lookupEnv: os.LookupEnv,
		link:      os.Readlink,
	}, nil
}

var (
	defaultOnce     sync.Once
	defaultProvider *Provider
)

// Default returns a process-wide provider over the host database
func Default() *Provider {
	defaultOnce.Do(func() {
		p, err := New(Config{}, logger.Default())
		if err != nil {
			// only reachable with a non-positive cache size
			panic(err)
		}
		defaultProvider = p
	})
	return defaultProvider
}

// Refresh drops every cached location so the next lookups read the
// zoneinfo files again, and returns the number of zones now listed
func (p *Provider) Refresh() (int, error) {
	p.cache.Purge()
	ids, err := p.AvailableZoneIDs()
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

// Cached returns the number of locations currently loaded
func (p *Provider) Cached() int {
	return p.cache.Len()
}

// Location returns the loaded location for a region id
func (p *Provider) Location(id string) (*time.Location, error) {
	if loc, ok := p.cache.Get(id); ok {
		metrics.RecordZoneCacheLookup(true)
		return loc, nil
	}
	metrics.RecordZoneCacheLookup(false)

	loc, err := p.load(id)
	if err != nil {
		metrics.RecordZoneLoadFailure()
		p.log.With("zone", id).Debugf("zone load failed: %v", err)
		return nil, err
	}
	p.cache.Add(id, loc)
	return loc, nil
}

func (p *Provider) load(id string) (*time.Location, error) {
	if !validID(id) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, id)
	}
	if p.dir == "" {
		loc, err := time.LoadLocation(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrUnknownZone, id, err)
		}
		return loc, nil
	}
	data, err := os.ReadFile(filepath.Join(p.dir, filepath.FromSlash(id)))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownZone, id, err)
	}
	loc, err := time.LoadLocationFromTZData(id, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownZone, id, err)
	}
	return loc, nil
}

// validID rejects ids that time.LoadLocation maps to something other than a
// zoneinfo file, and anything that could escape the zoneinfo root
func validID(id string) bool {
	if id == "" || id == "Local" || strings.HasPrefix(id, "/") || strings.Contains(id, "\\") {
		return false
	}
	for _, part := range strings.Split(id, "/") {
		if part == "" || part == "." || part == ".." {
			return false
		}
	}
	return path.Clean(id) == id
}

// OffsetSecondsAt returns the UTC offset of the zone at the epoch second
func (p *Provider) OffsetSecondsAt(zoneID string, epochSeconds int64) (int32, error) {
	loc, err := p.Location(zoneID)
	if err != nil {
		return 0, err
	}
	_, offset := time.Unix(epochSeconds, 0).In(loc).Zone()
	return int32(offset), nil
}

// CurrentSystemZoneID reads TZ and /etc/localtime on every call
func (p *Provider) CurrentSystemZoneID() (string, error) {
	if tz, ok := p.lookupEnv("TZ"); ok {
		tz = strings.TrimPrefix(tz, ":")
		if tz == "" {
			return "UTC", nil
		}
		if strings.HasPrefix(tz, "/") {
			if id, ok := zoneIDFromPath(tz); ok {
				return id, nil
			}
		}
		if _, err := p.Location(tz); err == nil {
			return tz, nil
		}
		p.log.With("tz", tz).Warn("TZ names an unknown zone, falling back to /etc/localtime")
	}

	target, err := p.link("/etc/localtime")
	if err != nil {
		p.log.Debugf("cannot read /etc/localtime: %v", err)
		return "UTC", nil
	}
	if id, ok := zoneIDFromPath(target); ok {
		return id, nil
	}
	return "UTC", nil
}

func zoneIDFromPath(p string) (string, bool) {
	const marker = "zoneinfo/"
	i := strings.LastIndex(p, marker)
	if i < 0 {
		return "", false
	}
	id := p[i+len(marker):]
	if !validID(id) {
		return "", false
	}
	return id, true
}
