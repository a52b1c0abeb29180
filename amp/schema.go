package amp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ia2amp/article"
	"ia2amp/media"
)

// schemaDate is ISO 8601 with numeric zone offset.
const schemaDate = "2006-01-02T15:04:05-07:00"

type schemaPerson struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type schemaImage struct {
	Type   string `json:"@type"`
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type schemaOrganization struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// schemaArticle keeps fields in the order they are emitted.
type schemaArticle struct {
	Context          string        `json:"@context"`
	Type             string        `json:"@type"`
	MainEntityOfPage string        `json:"mainEntityOfPage"`
	Headline         string        `json:"headline,omitempty"`
	DatePublished    string        `json:"datePublished,omitempty"`
	Description      string        `json:"description,omitempty"`
	DateModified     string        `json:"dateModified,omitempty"`
	Author           *schemaPerson `json:"author,omitempty"`
	Image            *schemaImage  `json:"image,omitempty"`
	Publisher        any           `json:"publisher,omitempty"`
}

func formatSchemaDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(schemaDate)
}

// schema builds NewsArticle JSON-LD.
func (rc *RenderContext) schema(ctx context.Context, a *article.Article) (string, error) {
	s := schemaArticle{
		Context:          "http://schema.org",
		Type:             "NewsArticle",
		MainEntityOfPage: a.CanonicalURL,
		Headline:         strings.TrimSpace(a.Header.Title.AsPlainText()),
		DatePublished:    formatSchemaDate(a.Header.Published),
		Description:      firstParagraph(a),
		DateModified:     formatSchemaDate(a.Header.Modified),
	}
	if names := authorNames(a.Header.Authors); len(names) > 0 {
		s.Author = &schemaPerson{Type: "Person", Name: names[0]}
	}
	if img := schemaImageOf(a); img != nil {
		w, h := rc.dimensions(ctx, img.URL, img.Width, img.Height, media.KindImage)
		s.Image = &schemaImage{Type: "ImageObject", URL: img.URL, Width: w, Height: h}
	}
	s.Publisher = rc.publisher()

	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	// keep script element closed only by its own end tag
	return strings.ReplaceAll(strings.TrimSpace(buf.String()), "</", `<\/`), nil
}

func firstParagraph(a *article.Article) string {
	for _, e := range a.Children {
		if e.Kind == article.KindParagraph && e.Text != nil && !e.Text.IsBlank() {
			return strings.TrimSpace(e.Text.AsPlainText())
		}
	}
	return ""
}

// schemaImageOf returns cover image or first image of the article.
func schemaImageOf(a *article.Article) *article.Image {
	if c := a.Header.Cover; c != nil && c.Kind == article.KindImage && c.Image != nil && c.Image.URL != "" {
		return c.Image
	}
	for _, e := range a.Children {
		if e.Kind == article.KindImage && e.Image != nil && e.Image.URL != "" {
			return e.Image
		}
	}
	return nil
}

// publisher turns configured publisher into Organization, structured
// values are passed verbatim.
func (rc *RenderContext) publisher() any {
	switch p := rc.cfg.Publisher.(type) {
	case nil:
		return nil
	case string:
		if strings.TrimSpace(p) == "" {
			return nil
		}
		return schemaOrganization{Type: "Organization", Name: p}
	case map[string]any:
		return p
	default:
		rc.warn("publisher ignored, expected string or mapping", p, fmt.Errorf("unsupported type %T", p))
		return nil
	}
}
