package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	"github.com/srwiley/oksvg"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultProbeLimit caps amount of data read from a single media source.
const DefaultProbeLimit = 32 << 20

// ErrNotImage is returned by Probe for data it cannot size.
var ErrNotImage = errors.New("not a supported image")

// Probe reads image data and returns its pixel size. JPEG size honors EXIF
// orientation, SVG size comes from its viewBox.
func Probe(r io.Reader, limit int64) (Dimensions, error) {
	if limit <= 0 {
		limit = DefaultProbeLimit
	}
	data, err := io.ReadAll(io.LimitReader(r, limit))
	if err != nil {
		return Dimensions{}, err
	}

	if isSVG(data) {
		icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
		if err != nil {
			return Dimensions{}, fmt.Errorf("unable to read svg: %w", err)
		}
		d := Dimensions{Width: int(math.Ceil(icon.ViewBox.W)), Height: int(math.Ceil(icon.ViewBox.H))}
		if d.Width <= 0 || d.Height <= 0 {
			return Dimensions{}, fmt.Errorf("svg without size: %w", ErrNotImage)
		}
		return d, nil
	}

	kind, err := filetype.Match(data)
	if err != nil || !filetype.IsImage(data) {
		return Dimensions{}, fmt.Errorf("%s: %w", kind.MIME.Value, ErrNotImage)
	}

	if kind.Extension == "jpg" {
		img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
		if err != nil {
			return Dimensions{}, fmt.Errorf("unable to decode jpeg: %w", err)
		}
		b := img.Bounds()
		return Dimensions{Width: b.Dx(), Height: b.Dy()}, nil
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Dimensions{}, fmt.Errorf("unable to decode %s header: %w", kind.Extension, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Dimensions{}, fmt.Errorf("%s without size: %w", format, ErrNotImage)
	}
	return Dimensions{Width: cfg.Width, Height: cfg.Height}, nil
}

func isSVG(data []byte) bool {
	head := data[:min(len(data), 1024)]
	head = bytes.TrimSpace(bytes.TrimPrefix(head, []byte("\xef\xbb\xbf")))
	if !bytes.HasPrefix(head, []byte("<?xml")) && !bytes.HasPrefix(head, []byte("<svg")) && !bytes.HasPrefix(head, []byte("<!--")) {
		return false
	}
	return bytes.Contains(head, []byte("<svg"))
}
