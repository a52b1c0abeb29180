// Package archive reads article bundles, zip files carrying any number of
// article documents.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/h2non/filetype"
)

// Entry is a single file inside bundle.
type Entry struct {
	// Archive is path to the bundle passed to Walk.
	Archive string
	// Name is slash separated path inside bundle.
	Name string

	file *zip.File
}

// Open returns reader for entry content, caller closes it.
func (e Entry) Open() (io.ReadCloser, error) {
	return e.file.Open()
}

// WalkFunc is called for every entry Walk accepts. If an error is returned,
// processing stops.
type WalkFunc func(e Entry) error

// Walk visits regular files of the bundle located under prefix for which
// match returns true (nil match accepts everything). Entries with absolute
// paths or ".." components abort the walk.
func Walk(archive, prefix string, match func(name string) bool, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	prefix = strings.TrimPrefix(path.Clean("/"+prefix), "/")
	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() || !underPrefix(name, prefix) {
			continue
		}
		if match != nil && !match(name) {
			continue
		}
		if err := walkFn(Entry{Archive: archive, Name: name, file: f}); err != nil {
			return err
		}
	}
	return nil
}

// IsArchive sniffs file header, only zip bundles are recognized.
func IsArchive(fname string) (bool, error) {
	f, err := os.Open(fname)
	if err != nil {
		return false, err
	}
	defer f.Close()

	header := make([]byte, 262)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, err
	}
	return filetype.Is(header[:n], "zip"), nil
}

func underPrefix(name, prefix string) bool {
	if prefix == "" || name == prefix {
		return true
	}
	return strings.HasPrefix(name, prefix+"/")
}

func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(strings.ReplaceAll(name, `\`, "/"), "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
