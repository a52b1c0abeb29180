package article

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/maruel/natural"
)

type treeWriter struct {
	w strings.Builder
}

func (tw *treeWriter) line(depth int, format string, args ...any) {
	tw.w.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(&tw.w, format, args...)
	tw.w.WriteByte('\n')
}

func (tw *treeWriter) text(depth int, label string, rt RichText) {
	if rt.IsBlank() {
		return
	}
	tw.line(depth, "%s: %s", label, strconv.Quote(rt.AsPlainText()))
}

// String returns a readable tree of the article. It exists solely for
// manual inspection, debug report carries it.
func (a *Article) String() string {
	if a == nil {
		return "<nil Article>"
	}

	tw := &treeWriter{}
	tw.line(0, "Article id=%q style=%q language=%q rtl=%t", a.ID, a.StyleName(), a.Language, a.RTL)
	if a.CanonicalURL != "" {
		tw.line(1, "Canonical: %s", a.CanonicalURL)
	}

	h := a.Header
	tw.line(0, "Header")
	tw.text(1, "Kicker", h.Kicker)
	tw.text(1, "Title", h.Title)
	tw.text(1, "Subtitle", h.Subtitle)
	for _, au := range h.Authors {
		tw.line(1, "Author: %q", au.Name)
	}
	if h.Published != nil {
		tw.line(1, "Published: %s", h.Published.Format("2006-01-02T15:04:05Z07:00"))
	}
	if h.Modified != nil {
		tw.line(1, "Modified: %s", h.Modified.Format("2006-01-02T15:04:05Z07:00"))
	}
	if h.Cover != nil {
		tw.line(1, "Cover")
		h.Cover.dump(tw, 2)
	}

	tw.line(0, "Children: %d", len(a.Children))
	for i := range a.Children {
		a.Children[i].dump(tw, 1)
	}

	if f := a.Footer; f != nil {
		tw.line(0, "Footer")
		for _, c := range f.Credits {
			tw.text(1, "Credit", c)
		}
		if f.CreditsText != "" {
			tw.line(1, "Credits: %q", f.CreditsText)
		}
		tw.text(1, "Copyright", f.Copyright)
	}

	if urls := a.MediaURLs(); len(urls) > 0 {
		tw.line(0, "Media: %d", len(urls))
		for _, u := range urls {
			tw.line(1, "%s", u)
		}
	}
	return tw.w.String()
}

func (e *Element) dump(tw *treeWriter, depth int) {
	name := e.Kind.String()
	if e.Kind == KindUnknown {
		name = fmt.Sprintf("unknown(%s)", e.Type)
	}
	tw.line(depth, "%s", name)
	depth++

	switch {
	case e.Text != nil:
		tw.text(depth, "Text", *e.Text)
	case e.List != nil:
		tw.line(depth, "Ordered: %t items: %d", e.List.Ordered, len(e.List.Items))
	case e.Pullquote != nil:
		tw.text(depth, "Quote", e.Pullquote.Text)
		tw.text(depth, "Attribution", e.Pullquote.Attribution)
	case e.Image != nil:
		e.Image.dump(tw, depth)
	case e.Video != nil:
		tw.line(depth, "URL: %s size: %dx%d autoplay: %t loop: %t", e.Video.URL, e.Video.Width, e.Video.Height, e.Video.Autoplay, e.Video.Loop)
		e.Video.Caption.dump(tw, depth)
	case e.Audio != nil:
		tw.line(depth, "URL: %s", e.Audio.URL)
	case e.Slideshow != nil:
		for i := range e.Slideshow.Images {
			e.Slideshow.Images[i].dump(tw, depth)
		}
		e.Slideshow.Caption.dump(tw, depth)
	case e.Embed != nil:
		if e.Embed.Source != "" {
			tw.line(depth, "Source: %s", e.Embed.Source)
		}
		if e.Embed.HTML != "" {
			tw.line(depth, "Markup: %d bytes", len(e.Embed.HTML))
		}
		e.Embed.Caption.dump(tw, depth)
	case e.Map != nil:
		tw.line(depth, "Geotag: %d bytes", len(e.Map.Geotag))
		e.Map.Caption.dump(tw, depth)
	case e.Related != nil:
		tw.line(depth, "Title: %q links: %d", e.Related.Title, len(e.Related.URLs))
	}
}

func (img *Image) dump(tw *treeWriter, depth int) {
	sizing := "default"
	if img.Sizing != nil {
		sizing = img.Sizing.String()
	}
	tw.line(depth, "Image %s size: %dx%d sizing: %s", img.URL, img.Width, img.Height, sizing)
	img.Caption.dump(tw, depth+1)
}

func (c *Caption) dump(tw *treeWriter, depth int) {
	if c == nil {
		return
	}
	tw.line(depth, "Caption %s %s", c.Position, c.FontSize)
	tw.text(depth+1, "Title", c.Title)
	tw.text(depth+1, "Body", c.Body)
	tw.text(depth+1, "Credit", c.Credit)
}

// MediaURLs returns distinct media references of the article in natural
// order.
func (a *Article) MediaURLs() []string {
	set := make(map[string]struct{})
	add := func(u string) {
		if u = strings.TrimSpace(u); u != "" {
			set[u] = struct{}{}
		}
	}
	var visit func(e *Element)
	visit = func(e *Element) {
		switch {
		case e.Image != nil:
			add(e.Image.URL)
		case e.Video != nil:
			add(e.Video.URL)
			add(e.Video.Poster)
		case e.Audio != nil:
			add(e.Audio.URL)
		case e.Slideshow != nil:
			for _, img := range e.Slideshow.Images {
				add(img.URL)
			}
		}
	}
	if a.Header.Cover != nil {
		visit(a.Header.Cover)
	}
	for i := range a.Children {
		visit(&a.Children[i])
	}

	urls := slices.Collect(maps.Keys(set))
	sort.Sort(natural.StringSlice(urls))
	return urls
}
