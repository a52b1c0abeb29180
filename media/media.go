// Package media resolves pixel dimensions of media referenced by articles.
package media

import (
	"net/url"
	"path"
	"strings"
)

// Kind of media being sized.
type Kind int

const (
	KindImage Kind = iota
	KindVideo
	KindEmbed
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	case KindEmbed:
		return "embed"
	}
	return "unknown"
}

// Dimensions is a pixel size.
type Dimensions struct {
	Width  int
	Height int
}

// IsZero reports whether size is unknown.
func (d Dimensions) IsZero() bool {
	return d.Width <= 0 || d.Height <= 0
}

// Filename returns last path element of media URL, empty when there is
// none.
func Filename(rawURL string) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}
	name := path.Base(p)
	if name == "." || name == "/" || strings.TrimSpace(name) == "" {
		return ""
	}
	return name
}
