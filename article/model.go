// Package article defines the input document model: an article header,
// ordered content elements and an optional footer.
package article

import (
	"strings"
	"time"

	"ia2amp/common"
)

// Kind of article element.
// ENUM(unknown, paragraph, h1, h2, list, blockquote, pullquote, image, animated-image, video, audio, slideshow, interactive, social-embed, map, related-articles, analytics, ad)
type Kind int

// InlineKind is a type of rich text segment.
type InlineKind int

const (
	InlineText InlineKind = iota
	InlineBold
	InlineItalic
	InlineUnderline
	InlineLink
	InlineBreak
)

// Inline is a segment of rich text. Formatting segments keep their content
// in Children, plain text segments in Text.
type Inline struct {
	Kind     InlineKind
	Text     string
	Href     string
	Children []Inline
}

// RichText is a sequence of inline segments.
type RichText []Inline

// Text makes rich text out of plain string.
func Text(s string) RichText {
	if s == "" {
		return nil
	}
	return RichText{{Kind: InlineText, Text: s}}
}

// AsPlainText returns text content with formatting dropped, line breaks
// become spaces.
func (rt RichText) AsPlainText() string {
	var b strings.Builder
	writePlain(&b, rt)
	return b.String()
}

func writePlain(b *strings.Builder, segs []Inline) {
	for _, s := range segs {
		switch s.Kind {
		case InlineBreak:
			b.WriteString(" ")
		case InlineText:
			b.WriteString(s.Text)
		default:
			b.WriteString(s.Text)
			writePlain(b, s.Children)
		}
	}
}

// IsBlank reports whether there is no visible text.
func (rt RichText) IsBlank() bool {
	return strings.TrimSpace(rt.AsPlainText()) == ""
}

// Caption describes media element.
type Caption struct {
	Title             RichText               `yaml:"title"`
	Subtitle          RichText               `yaml:"subtitle"`
	Body              RichText               `yaml:"body"`
	Credit            RichText               `yaml:"credit"`
	FontSize          common.CaptionSize     `yaml:"font_size"`
	Position          common.CaptionPosition `yaml:"position"`
	TextAlignment     string                 `yaml:"text_alignment"`
	VerticalAlignment string                 `yaml:"vertical_alignment"`
}

// List is ordered or unordered list of rich text items.
type List struct {
	Ordered bool       `yaml:"ordered"`
	Items   []RichText `yaml:"items"`
}

// Pullquote is highlighted quote with optional attribution.
type Pullquote struct {
	Text        RichText `yaml:"text"`
	Attribution RichText `yaml:"attribution"`
}

// Image is still or animated image. Zero Width or Height means size is
// unknown and has to be resolved.
type Image struct {
	URL     string                  `yaml:"url"`
	Width   int                     `yaml:"width"`
	Height  int                     `yaml:"height"`
	Alt     string                  `yaml:"alt"`
	Sizing  *common.ImageSizingMode `yaml:"sizing"`
	Caption *Caption                `yaml:"caption"`
}

// Video element.
type Video struct {
	URL      string   `yaml:"url"`
	Poster   string   `yaml:"poster"`
	Width    int      `yaml:"width"`
	Height   int      `yaml:"height"`
	Autoplay bool     `yaml:"autoplay"`
	Loop     bool     `yaml:"loop"`
	Caption  *Caption `yaml:"caption"`
}

// Audio element.
type Audio struct {
	URL   string `yaml:"url"`
	Title string `yaml:"title"`
}

// Slideshow is a sequence of images shown one at a time.
type Slideshow struct {
	Images  []Image  `yaml:"images"`
	Caption *Caption `yaml:"caption"`
}

// Embed is external content given either by source URL or raw markup. It
// backs interactive, social embed, ad and analytics elements.
type Embed struct {
	Source  string   `yaml:"source"`
	HTML    string   `yaml:"html"`
	Width   int      `yaml:"width"`
	Height  int      `yaml:"height"`
	Caption *Caption `yaml:"caption"`
}

// Map is a location given as GeoJSON text.
type Map struct {
	Geotag  string   `yaml:"geotag"`
	Caption *Caption `yaml:"caption"`
}

// Related lists related article links.
type Related struct {
	Title string   `yaml:"title"`
	URLs  []string `yaml:"urls"`
}

// Element is a tagged union over article element kinds, exactly one variant
// pointer matching Kind is set.
type Element struct {
	Kind Kind
	// Type keeps original type name, for unknown kinds it is the only data
	// preserved.
	Type string

	Text      *RichText
	List      *List
	Pullquote *Pullquote
	Image     *Image
	Video     *Video
	Audio     *Audio
	Slideshow *Slideshow
	Embed     *Embed
	Map       *Map
	Related   *Related
}

// Author of the article.
type Author struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
}

// Header holds article title block and cover.
type Header struct {
	Cover     *Element   `yaml:"cover"`
	Kicker    RichText   `yaml:"kicker"`
	Title     RichText   `yaml:"title"`
	Subtitle  RichText   `yaml:"subtitle"`
	Authors   []Author   `yaml:"authors"`
	Published *time.Time `yaml:"published"`
	Modified  *time.Time `yaml:"modified"`
}

// Footer holds credits and copyright. Credits are either paragraphs or a
// single bare string.
type Footer struct {
	Credits     []RichText
	CreditsText string
	Copyright   RichText
}

// IsValid reports whether footer has anything to show.
func (f *Footer) IsValid() bool {
	if f == nil {
		return false
	}
	for _, c := range f.Credits {
		if !c.IsBlank() {
			return true
		}
	}
	return strings.TrimSpace(f.CreditsText) != "" || !f.Copyright.IsBlank()
}

// Article is the converter input.
type Article struct {
	ID           string    `yaml:"id"`
	CanonicalURL string    `yaml:"canonical_url"`
	Language     string    `yaml:"language"`
	RTL          bool      `yaml:"rtl"`
	Style        string    `yaml:"style"`
	Header       Header    `yaml:"header"`
	Children     []Element `yaml:"children"`
	Footer       *Footer   `yaml:"footer"`
}

// DefaultStyle is used when article does not name its style.
const DefaultStyle = "default"

// StyleName returns declared style or default one.
func (a *Article) StyleName() string {
	if s := strings.TrimSpace(a.Style); s != "" {
		return s
	}
	return DefaultStyle
}
