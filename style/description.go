// Package style reads style descriptions and compiles them into CSS rules.
package style

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"ia2amp/common"
)

// Size is a named spacing size.
type Size string

const (
	SizeNone           Size = "NONE"
	SizeDocumentMargin Size = "DOCUMENT_MARGIN"
	SizeExtraSmall     Size = "EXTRA_SMALL"
	SizeSmall          Size = "SMALL"
	SizeMedium         Size = "MEDIUM"
	SizeLarge          Size = "LARGE"
	SizeExtraLarge     Size = "EXTRA_LARGE"
)

var sizePixels = map[Size]float64{
	SizeNone:           0,
	SizeDocumentMargin: 16.4,
	SizeExtraSmall:     16,
	SizeSmall:          32,
	SizeMedium:         46,
	SizeLarge:          64,
	SizeExtraLarge:     96,
}

// Pixels returns base pixel value of the size.
func (s Size) Pixels() float64 {
	return sizePixels[s]
}

func (s *Size) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	if _, ok := sizePixels[Size(name)]; !ok {
		return fmt.Errorf("unknown size %q", name)
	}
	*s = Size(name)
	return nil
}

// SpacingValue is one direction of margin or padding.
type SpacingValue struct {
	Size          Size     `json:"size"`
	ScalingFactor *float64 `json:"scaling_factor"`
}

// Pixels returns size multiplied by scaling factor (1 when absent). Factor
// is not bounded, negative values produce negative spacing.
func (v *SpacingValue) Pixels() float64 {
	if v == nil {
		return 0
	}
	f := 1.0
	if v.ScalingFactor != nil {
		f = *v.ScalingFactor
	}
	return v.Size.Pixels() * f
}

// Spacing is margin or padding per direction.
type Spacing struct {
	Top    *SpacingValue `json:"top"`
	Right  *SpacingValue `json:"right"`
	Bottom *SpacingValue `json:"bottom"`
	Left   *SpacingValue `json:"left"`
}

// BorderSide is border of one direction.
type BorderSide struct {
	Width float64 `json:"width"`
	Color string  `json:"color"`
}

// Border per direction.
type Border struct {
	Top    *BorderSide `json:"top"`
	Right  *BorderSide `json:"right"`
	Bottom *BorderSide `json:"bottom"`
	Left   *BorderSide `json:"left"`
}

// Underline keeps underline setting, accepts string or boolean.
type Underline string

// UnderlineNone explicitly disables underline.
const UnderlineNone Underline = "NONE"

func (u *Underline) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		if b {
			*u = "UNDERLINE"
		} else {
			*u = UnderlineNone
		}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("underline must be string or boolean: %w", err)
	}
	*u = Underline(strings.ToUpper(s))
	return nil
}

// TextStyle is a style block for a text region.
type TextStyle struct {
	Font            string     `json:"font"`
	Color           string     `json:"color"`
	BackgroundColor string     `json:"background_color"`
	Capitalization  string     `json:"capitalization"`
	Underline       *Underline `json:"underline"`
	TextAlignment   string     `json:"text_alignment"`
	Display         string     `json:"display"`
	Margin          *Spacing   `json:"margin"`
	Padding         *Spacing   `json:"padding"`
	Border          *Border    `json:"border"`
}

// LogoImage is a logo source.
type LogoImage struct {
	URL    string  `json:"url"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// HeaderStyle describes header bar.
type HeaderStyle struct {
	BackgroundColor string     `json:"background_color"`
	BarColor        string     `json:"bar_color"`
	Logo            *LogoImage `json:"logo"`
	LogoScale       *float64   `json:"logo_scale"`
}

// Description is a parsed style document.
type Description struct {
	BackgroundColor string
	Header          HeaderStyle
	// DateFormat is Go time layout for publish date.
	DateFormat string
	// Blocks holds recognized text style blocks by key.
	Blocks map[string]TextStyle
	// Problems lists blocks which could not be decoded and were skipped.
	Problems []error
}

// DefaultDateFormat is used when style does not define one.
const DefaultDateFormat = "January 2, 2006"

// TextBlockKeys lists recognized text style block keys.
func TextBlockKeys() []string {
	keys := []string{
		"kicker", "title", "subtitle", "byline",
		"primary_heading", "secondary_heading", "body_text", "inline_link",
		"block_quote", "pull_quote", "pull_quote_attribution",
		"caption_credit", "footer",
	}
	for _, size := range captionSizes {
		keys = append(keys, "caption_title_"+size.StyleKey(), "caption_description_"+size.StyleKey())
	}
	return keys
}

var captionSizes = []common.CaptionSize{
	common.CaptionSizeSmall, common.CaptionSizeMedium, common.CaptionSizeLarge, common.CaptionSizeExtraLarge,
}

func (d *Description) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*d = Description{Blocks: make(map[string]TextStyle)}
	known := TextBlockKeys()

	// sorted for stable problem order
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		value := raw[key]
		var err error
		switch {
		case key == "background_color":
			err = json.Unmarshal(value, &d.BackgroundColor)
		case key == "date_format":
			err = json.Unmarshal(value, &d.DateFormat)
		case key == "header":
			err = json.Unmarshal(value, &d.Header)
		case slices.Contains(known, key):
			var ts TextStyle
			if err = json.Unmarshal(value, &ts); err == nil {
				d.Blocks[key] = ts
			}
		default:
			continue
		}
		if err != nil {
			d.Problems = append(d.Problems, fmt.Errorf("style block %q skipped: %w", key, err))
		}
	}
	return nil
}

// Parse decodes style description.
func Parse(data []byte) (*Description, error) {
	var d Description
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("unable to parse style description: %w", err)
	}
	return &d, nil
}

// Block returns style block by key.
func (d *Description) Block(key string) (TextStyle, bool) {
	if d == nil {
		return TextStyle{}, false
	}
	ts, ok := d.Blocks[key]
	return ts, ok
}
