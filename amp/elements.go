package amp

import (
	"context"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"ia2amp/article"
	"ia2amp/hooks"
)

// kindClass returns class name (without prefix) of rendered element.
func kindClass(k article.Kind) string {
	switch k {
	case article.KindParagraph:
		return "p"
	case article.KindAnimatedImage:
		return "gif"
	}
	return k.String()
}

// renderElement renders single article child followed by spacing divider.
// Elements producing no markup get no divider.
func (rc *RenderContext) renderElement(ctx context.Context, parent *etree.Element, e *article.Element) {
	var el *etree.Element
	switch e.Kind {
	case article.KindParagraph:
		el = rc.text(parent, "p", e.Text)
	case article.KindH1:
		el = rc.text(parent, "h1", e.Text)
	case article.KindH2:
		el = rc.text(parent, "h2", e.Text)
	case article.KindBlockquote:
		el = rc.text(parent, "blockquote", e.Text)
	case article.KindList:
		el = rc.list(parent, e.List)
	case article.KindPullquote:
		el = rc.pullquote(parent, e.Pullquote)
	case article.KindImage:
		el = rc.image(ctx, parent, e.Image, "amp-img", rc.sizing(e.Image))
	case article.KindAnimatedImage:
		el = rc.image(ctx, parent, e.Image, "amp-anim", 0)
	case article.KindVideo:
		el = rc.video(ctx, parent, e.Video)
	case article.KindAudio:
		// no AMP rendition yet, placeholder only
		el = parent.CreateElement("div")
	case article.KindSlideshow:
		el = rc.slideshow(ctx, parent, e.Slideshow)
	case article.KindInteractive, article.KindSocialEmbed:
		el = rc.embed(ctx, parent, e)
	case article.KindMap:
		el = rc.geoMap(ctx, parent, e.Map)
	case article.KindRelatedArticles:
		// AMP has no equivalent structure
		el = parent.CreateElement("div")
	case article.KindAnalytics:
		if len(rc.cfg.Analytics) == 0 {
			rc.warn("analytics element found but no analytics are configured, tracked data will be lost", e, nil)
		}
		return
	case article.KindAd:
		el = rc.ad(ctx, parent, e.Embed)
	default:
		rc.log.Debug("Skipping element", zap.Stringer("kind", e.Kind), zap.String("type", e.Type))
		return
	}
	if el == nil {
		return
	}

	kind := kindClass(e.Kind)
	rc.addClass(el, kind)
	if el = rc.filter(hooks.Element, el); el == nil {
		return
	}
	rc.divider(parent, kind)
}

func (rc *RenderContext) text(parent *etree.Element, tag string, rt *article.RichText) *etree.Element {
	if rt == nil || rt.IsBlank() {
		return nil
	}
	el := parent.CreateElement(tag)
	writeInline(el, *rt)
	return el
}

func (rc *RenderContext) list(parent *etree.Element, l *article.List) *etree.Element {
	if l == nil {
		return nil
	}
	tag := "ul"
	if l.Ordered {
		tag = "ol"
	}
	var el *etree.Element
	for _, item := range l.Items {
		if item.IsBlank() {
			continue
		}
		if el == nil {
			el = parent.CreateElement(tag)
		}
		writeInline(el.CreateElement("li"), item)
	}
	return el
}

func (rc *RenderContext) pullquote(parent *etree.Element, q *article.Pullquote) *etree.Element {
	if q == nil || q.Text.IsBlank() {
		return nil
	}
	el := parent.CreateElement("aside")
	writeInline(el, q.Text)
	if !q.Attribution.IsBlank() {
		writeInline(el.CreateElement("cite"), q.Attribution)
	}
	return el
}

// writeInline appends rich text to element.
func writeInline(parent *etree.Element, segs article.RichText) {
	for _, seg := range segs {
		var el *etree.Element
		switch seg.Kind {
		case article.InlineText:
			if seg.Text != "" {
				parent.CreateCharData(seg.Text)
			}
			continue
		case article.InlineBreak:
			parent.CreateElement("br")
			continue
		case article.InlineBold:
			el = parent.CreateElement("strong")
		case article.InlineItalic:
			el = parent.CreateElement("em")
		case article.InlineUnderline:
			el = parent.CreateElement("u")
		case article.InlineLink:
			el = parent.CreateElement("a")
			if seg.Href != "" {
				el.CreateAttr("href", seg.Href)
			}
		default:
			continue
		}
		if seg.Text != "" {
			el.CreateCharData(seg.Text)
		}
		writeInline(el, seg.Children)
	}
}
