package tzdb

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/pratik-mahalle/calendrical/internal/pkg/metrics"
)

// default zoneinfo roots, in lookup order
var defaultRoots = []string{
	"/usr/share/zoneinfo",
	"/usr/lib/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/etc/zoneinfo",
}

// files and directories in a zoneinfo tree that are not zones
var skipped = map[string]bool{
	"posix":       true,
	"right":       true,
	"posixrules":  true,
	"localtime":   true,
	"leapseconds": true,
	"tzdata.zi":   true,
	"SECURITY":    true,
	"+VERSION":    true,
	"Factory":     true,
}

// Root returns the zoneinfo directory used for listing
func (p *Provider) Root() (string, error) {
	if p.dir != "" {
		return p.dir, nil
	}
	if env, ok := p.lookupEnv("ZONEINFO"); ok && env != "" {
		if fi, err := os.Stat(env); err == nil && fi.IsDir() {
			return env, nil
		}
	}
	for _, root := range defaultRoots {
		if fi, err := os.Stat(root); err == nil && fi.IsDir() {
			return root, nil
		}
	}
	return "", fmt.Errorf("no zoneinfo directory found")
}

// AvailableZoneIDs lists the region ids of the zoneinfo tree
func (p *Provider) AvailableZoneIDs() ([]string, error) {
	root, err := p.Root()
	if err != nil {
		return nil, err
	}
	ids, err := ListZoneIDs(os.DirFS(root))
	if err != nil {
		return nil, fmt.Errorf("failed to list zones in %s: %w", root, err)
	}
	metrics.SetAvailableZones(len(ids))
	p.log.Debugf("found %d zones in %s", len(ids), root)
	return ids, nil
}

// ListZoneIDs walks a zoneinfo tree and returns the sorted ids of its TZif
// files
func ListZoneIDs(fsys fs.FS) ([]string, error) {
	var ids []string
	err := doublestar.GlobWalk(fsys, "**", func(name string, d fs.DirEntry) error {
		first := strings.SplitN(name, "/", 2)[0]
		if skipped[first] || skipped[d.Name()] {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !isZoneName(name) {
			return nil
		}
		ok, err := isTZif(fsys, name)
		if err != nil {
			return err
		}
		if ok {
			ids = append(ids, name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)
	return ids, nil
}

// isZoneName keeps names that start with an upper-case letter and carry
// no file extension
func isZoneName(name string) bool {
	if name == "" || name[0] < 'A' || name[0] > 'Z' {
		return false
	}
	base := name[strings.LastIndex(name, "/")+1:]
	return !strings.Contains(base, ".")
}

var tzifMagic = []byte("TZif")

func isTZif(fsys fs.FS, name string) (bool, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, len(tzifMagic))
	if _, err := io.ReadFull(f, head); err != nil {
		return false, nil
	}
	return bytes.Equal(head, tzifMagic), nil
}
