package testutil

import (
	"testing/fstest"

	"github.com/pratik-mahalle/calendrical/internal/pkg/logger"
)

// NewTestLogger returns a logger that only reports errors
func NewTestLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: "json", OutputPath: "stderr"})
}

// tzifHeader is enough of a TZif file for directory listings
var tzifHeader = []byte("TZif2\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00")

// NewZoneinfoFS builds an in-memory zoneinfo tree with the given zone ids
// plus the usual non-zone files that a listing must skip
func NewZoneinfoFS(ids ...string) fstest.MapFS {
	fsys := fstest.MapFS{
		"zone1970.tab":       {Data: []byte("# tab file\n")},
		"tzdata.zi":          {Data: []byte("# version 2024a\n")},
		"leapseconds":        {Data: []byte("# leap\n")},
		"posixrules":         {Data: tzifHeader},
		"posix/Europe/Paris": {Data: tzifHeader},
		"right/Europe/Paris": {Data: tzifHeader},
		"Europe/README":      {Data: []byte("not a zone")},
	}
	for _, id := range ids {
		fsys[id] = &fstest.MapFile{Data: tzifHeader}
	}
	return fsys
}
