package media

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

// ErrNotCached is returned by caches which do not have requested file.
var ErrNotCached = errors.New("not cached")

// DirCache looks media up in a local directory by file name.
type DirCache struct {
	dir   string
	limit int64
}

// NewDirCache creates cache over existing directory dir.
func NewDirCache(dir string, limit int64) *DirCache {
	return &DirCache{dir: dir, limit: limit}
}

// Lookup probes dimensions of cached copy of the file.
func (c *DirCache) Lookup(ctx context.Context, name string) (Dimensions, error) {
	if err := ctx.Err(); err != nil {
		return Dimensions{}, err
	}
	if name == "" || name != filepath.Base(name) {
		return Dimensions{}, ErrNotCached
	}

	f, err := os.Open(filepath.Join(c.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return Dimensions{}, ErrNotCached
	}
	if err != nil {
		return Dimensions{}, err
	}
	defer f.Close()

	return Probe(f, c.limit)
}
