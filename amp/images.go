package amp

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"ia2amp/article"
	"ia2amp/common"
	"ia2amp/css"
	"ia2amp/hooks"
	"ia2amp/media"
)

func (rc *RenderContext) sizing(img *article.Image) common.ImageSizingMode {
	if img != nil && img.Sizing != nil {
		return *img.Sizing
	}
	return common.ImageSizingModeResponsive
}

// dimensions returns explicit size when complete, resolved one otherwise.
func (rc *RenderContext) dimensions(ctx context.Context, src string, w, h int, kind media.Kind) (int, int) {
	if w > 0 && h > 0 {
		return w, h
	}
	d := rc.resolver.Resolve(ctx, src, kind)
	if d.Width <= 0 || d.Height <= 0 {
		d = rc.resolver.Default()
	}
	return d.Width, d.Height
}

func setSize(el *etree.Element, w, h int, layout string) {
	el.CreateAttr("width", strconv.Itoa(w))
	el.CreateAttr("height", strconv.Itoa(h))
	el.CreateAttr("layout", layout)
}

// fitViewport scales source to cover target box keeping aspect ratio and
// returns scaled size and offsets centering it in the box.
func fitViewport(sw, sh, tw, th int) (w, h int, dx, dy float64) {
	scale := math.Max(float64(tw)/float64(sw), float64(th)/float64(sh))
	w = int(math.Round(float64(sw) * scale))
	h = int(math.Round(float64(sh) * scale))
	return w, h, float64(tw-w) / 2, float64(th-h) / 2
}

// scaleToWidth resizes source to target width keeping aspect ratio.
func scaleToWidth(sw, sh, tw int) (int, int) {
	return tw, int(math.Round(float64(sh) * float64(tw) / float64(sw)))
}

// ampImage builds detached image element sized according to mode and
// returns it with its outer box size.
func (rc *RenderContext) ampImage(ctx context.Context, img *article.Image, tag string, mode common.ImageSizingMode) (*etree.Element, int, int) {
	sw, sh := rc.dimensions(ctx, img.URL, img.Width, img.Height, media.KindImage)
	box := rc.resolver.Default()

	el := etree.NewElement(tag)
	el.CreateAttr("src", img.URL)
	if img.Alt != "" {
		el.CreateAttr("alt", img.Alt)
	}

	switch mode {
	case common.ImageSizingModeViewport:
		w, h, dx, dy := fitViewport(sw, sh, box.Width, box.Height)
		setSize(el, w, h, "fixed")

		rc.seq++
		name := "viewport-" + strconv.Itoa(rc.seq)
		rc.rules.AddDimensionToSelector(name, "width", float64(box.Width), "px")
		rc.rules.AddDimensionToSelector(name, "height", float64(box.Height), "px")
		rc.rules.AddToSelector(name+"-img", "transform",
			fmt.Sprintf("translate(%s, %s)", css.Dimension(dx, "px"), css.Dimension(dy, "px")))
		rc.addClass(el, name+"-img")

		if el = rc.filter(hooks.Image, el); el == nil {
			return nil, 0, 0
		}
		container := etree.NewElement("div")
		rc.addClass(container, "viewport", name)
		container.AddChild(el)
		return container, box.Width, box.Height
	case common.ImageSizingModeScaled:
		w, h := scaleToWidth(sw, sh, box.Width)
		setSize(el, w, h, "responsive")
		return rc.filter(hooks.Image, el), w, h
	default:
		setSize(el, sw, sh, "responsive")
		return rc.filter(hooks.Image, el), sw, sh
	}
}

func (rc *RenderContext) image(ctx context.Context, parent *etree.Element, img *article.Image, tag string, mode common.ImageSizingMode) *etree.Element {
	if img == nil || strings.TrimSpace(img.URL) == "" {
		rc.warn("image without source skipped", img, nil)
		return nil
	}
	el, _, _ := rc.ampImage(ctx, img, tag, mode)
	if el == nil {
		return nil
	}
	return rc.place(parent, el, img.Caption)
}

func (rc *RenderContext) video(ctx context.Context, parent *etree.Element, v *article.Video) *etree.Element {
	if v == nil || strings.TrimSpace(v.URL) == "" {
		rc.warn("video without source skipped", v, nil)
		return nil
	}
	w, h := rc.dimensions(ctx, v.URL, v.Width, v.Height, media.KindVideo)

	el := etree.NewElement("amp-video")
	el.CreateAttr("src", rc.secure(v.URL, "video", v))
	setSize(el, w, h, "responsive")
	el.CreateAttr("controls", "")
	if v.Poster != "" {
		el.CreateAttr("poster", rc.secure(v.Poster, "video poster", v))
	}
	if v.Autoplay {
		el.CreateAttr("autoplay", "")
	}
	if v.Loop {
		el.CreateAttr("loop", "")
	}
	if el = rc.filter(hooks.Video, el); el == nil {
		return nil
	}
	rc.use(featureVideo)
	return rc.place(parent, el, v.Caption)
}

func (rc *RenderContext) slideshow(ctx context.Context, parent *etree.Element, s *article.Slideshow) *etree.Element {
	if s == nil || len(s.Images) == 0 {
		rc.warn("empty slideshow skipped", s, nil)
		return nil
	}

	carousel := etree.NewElement("amp-carousel")
	carousel.CreateAttr("type", "slides")
	first := true
	for i := range s.Images {
		img := &s.Images[i]
		if strings.TrimSpace(img.URL) == "" {
			rc.warn("slideshow image without source skipped", img, nil)
			continue
		}
		el, w, h := rc.ampImage(ctx, img, "amp-img", common.ImageSizingModeScaled)
		if el == nil {
			continue
		}
		if first {
			setSize(carousel, w, h, "responsive")
			first = false
		}
		carousel.AddChild(el)
	}
	if first {
		rc.warn("slideshow without usable images skipped", s, nil)
		return nil
	}
	if carousel = rc.filter(hooks.Slideshow, carousel); carousel == nil {
		return nil
	}
	rc.use(featureSlideshow)
	return rc.place(parent, carousel, s.Caption)
}

// secure forces https scheme, http sources are rewritten with a warning.
func (rc *RenderContext) secure(raw, what string, owner any) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "//") {
		return "https:" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		rc.warn(what+" source is not a valid URL", owner, err)
		return raw
	}
	if strings.EqualFold(u.Scheme, "http") {
		u.Scheme = "https"
		rc.warn(what+" source forced to https", owner, nil)
		return u.String()
	}
	return raw
}

// place puts element into parent, wrapping it into figure with caption when
// caption has anything to show.
func (rc *RenderContext) place(parent, el *etree.Element, c *article.Caption) *etree.Element {
	if c == nil || isBlankCaption(c) {
		parent.AddChild(el)
		return el
	}
	fig := parent.CreateElement("figure")
	caption := rc.caption(c)
	if caption == nil {
		fig.AddChild(el)
		return fig
	}
	if c.Position == common.CaptionPositionAbove {
		fig.AddChild(caption)
		fig.AddChild(el)
	} else {
		fig.AddChild(el)
		fig.AddChild(caption)
	}
	return fig
}

func isBlankCaption(c *article.Caption) bool {
	return c.Title.IsBlank() && c.Subtitle.IsBlank() && c.Body.IsBlank() && c.Credit.IsBlank()
}

func (rc *RenderContext) caption(c *article.Caption) *etree.Element {
	fc := etree.NewElement("figcaption")
	rc.addClass(fc, "caption", "caption-"+c.FontSize.String())
	if a := alignment(c.TextAlignment); a != "" {
		rc.addClass(fc, "caption-align-"+a)
	}
	if a := alignment(c.VerticalAlignment); a != "" {
		rc.addClass(fc, "caption-valign-"+a)
	}
	if c.Body.IsBlank() {
		rc.warn("caption has no body text", c, nil)
	}

	if !c.Title.IsBlank() {
		writeInline(fc.CreateElement("h1"), c.Title)
	}
	if !c.Subtitle.IsBlank() {
		writeInline(fc.CreateElement("h2"), c.Subtitle)
	}
	writeInline(fc, c.Body)
	if !c.Credit.IsBlank() {
		writeInline(fc.CreateElement("cite"), c.Credit)
	}
	return rc.filter(hooks.Caption, fc)
}

// alignment normalizes "op-left" or "LEFT" into "left".
func alignment(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.TrimPrefix(s, "op-")
}
