package amp

import (
	"context"
	"strings"
	"time"

	"github.com/beevik/etree"

	"ia2amp/article"
	"ia2amp/hooks"
)

// buildHeader renders cover, header bar, kicker, title, subtitle, byline
// and date, each followed by a spacing divider. Logo and date text are
// filled in later.
func (rc *RenderContext) buildHeader(ctx context.Context, parent *etree.Element, h *article.Header) error {
	header := parent.CreateElement("header")
	rc.addClass(header, "header")
	if err := rc.SetHeader(header); err != nil {
		return err
	}

	if h.Cover != nil {
		if el := rc.cover(ctx, header, h.Cover); el != nil {
			rc.divider(header, "cover")
		}
	}

	rc.bar = header.CreateElement("div")
	rc.addClass(rc.bar, "header-bar")
	rc.divider(header, "header-bar")

	for _, t := range []struct {
		tag, class string
		text       article.RichText
	}{
		{"h3", "header-kicker", h.Kicker},
		{"h1", "header-h1", h.Title},
		{"h2", "header-h2", h.Subtitle},
	} {
		if t.text.IsBlank() {
			continue
		}
		el := header.CreateElement(t.tag)
		rc.addClass(el, t.class)
		writeInline(el, t.text)
		rc.divider(header, t.class)
	}

	if names := authorNames(h.Authors); len(names) > 0 {
		el := header.CreateElement("div")
		rc.addClass(el, "header-byline")
		el.SetText("By " + strings.Join(names, ", "))
		rc.divider(header, "header-byline")
	}

	if h.Published != nil {
		rc.date = header.CreateElement("time")
		rc.addClass(rc.date, "header-date")
		rc.date.CreateAttr("datetime", h.Published.Format(time.RFC3339))
		rc.divider(header, "header-date")
	}
	return nil
}

func authorNames(authors []article.Author) []string {
	var names []string
	for _, a := range authors {
		if n := strings.TrimSpace(a.Name); n != "" {
			names = append(names, n)
		}
	}
	return names
}

// cover renders header media. Image sizing comes from the image itself or
// from cover configuration.
func (rc *RenderContext) cover(ctx context.Context, parent *etree.Element, e *article.Element) *etree.Element {
	var el *etree.Element
	switch e.Kind {
	case article.KindImage:
		mode := rc.cfg.Cover.Sizing
		if e.Image != nil && e.Image.Sizing != nil {
			mode = *e.Image.Sizing
		}
		el = rc.image(ctx, parent, e.Image, "amp-img", mode)
	case article.KindAnimatedImage:
		el = rc.image(ctx, parent, e.Image, "amp-anim", 0)
	case article.KindVideo:
		el = rc.video(ctx, parent, e.Video)
	case article.KindSlideshow:
		el = rc.slideshow(ctx, parent, e.Slideshow)
	default:
		rc.warn("unsupported cover element skipped", e, nil)
		return nil
	}
	if el == nil {
		return nil
	}
	rc.addClass(el, "cover")
	return rc.filter(hooks.Cover, el)
}

func (rc *RenderContext) buildFooter(parent *etree.Element, f *article.Footer) error {
	footer := parent.CreateElement("footer")
	rc.addClass(footer, "footer")
	if err := rc.SetFooter(footer); err != nil {
		return err
	}
	rc.mark("footer")

	var credits *etree.Element
	for _, c := range f.Credits {
		if c.IsBlank() {
			continue
		}
		if credits == nil {
			credits = footer.CreateElement("aside")
		}
		writeInline(credits.CreateElement("p"), c)
	}
	if credits == nil && strings.TrimSpace(f.CreditsText) != "" {
		footer.CreateElement("aside").CreateElement("p").SetText(f.CreditsText)
	}
	if !f.Copyright.IsBlank() {
		writeInline(footer.CreateElement("small"), f.Copyright)
	}
	rc.filter(hooks.Footer, footer)
	return nil
}
