package amp

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"ia2amp/config"
	"ia2amp/css"
	"ia2amp/hooks"
)

// slot is a single assignment cell for structural element with fixed tag.
type slot struct {
	tag string
	el  *etree.Element
}

func (s *slot) set(el *etree.Element) error {
	if el == nil {
		return fmt.Errorf("%w: expected <%s>, got nil", ErrInvalidArgument, s.tag)
	}
	if el.Tag != s.tag {
		return fmt.Errorf("%w: expected <%s>, got <%s>", ErrInvalidArgument, s.tag, el.Tag)
	}
	if s.el != nil {
		return fmt.Errorf("%w: <%s>", ErrSlotFilled, s.tag)
	}
	s.el = el
	return nil
}

// feature is an AMP component requiring custom element script.
type feature int

// Declaration order is the order scripts are emitted in.
const (
	featureVideo feature = iota
	featureAudio
	featureSlideshow
	featureIframe
	featureAnalytics
	featureCount
)

var featureElements = [featureCount]string{
	featureVideo:     "amp-video",
	featureAudio:     "amp-audio",
	featureSlideshow: "amp-carousel",
	featureIframe:    "amp-iframe",
	featureAnalytics: "amp-analytics",
}

func (f feature) script() string {
	return "https://cdn.ampproject.org/v0/" + featureElements[f] + "-0.1.js"
}

// RenderContext is the state of a single conversion. Setup fields are fixed
// at construction, document slots are filled once while tree is assembled.
type RenderContext struct {
	// setup
	cfg      *config.DocumentConfig
	prefix   string
	resolver Resolver
	hooks    *hooks.Registry
	log      *zap.Logger

	doc     *etree.Document
	html    slot
	head    slot
	body    slot
	article slot
	header  slot
	footer  slot

	rules    *css.RuleSet
	warnings []Warning
	features [featureCount]bool

	// placeholders filled after tree is built
	bar     *etree.Element
	date    *etree.Element
	runtime *etree.Element
	custom  *etree.Element

	// last spacing divider, receives "before-" class of the next element
	pending *etree.Element
	// counter for generated per element rules
	seq int
}

func newRenderContext(cfg *config.DocumentConfig, resolver Resolver, reg *hooks.Registry, log *zap.Logger) *RenderContext {
	return &RenderContext{
		cfg:      cfg,
		prefix:   cfg.CSSPrefix,
		resolver: resolver,
		hooks:    reg,
		log:      log,
		doc:      etree.NewDocument(),
		html:     slot{tag: "html"},
		head:     slot{tag: "head"},
		body:     slot{tag: "body"},
		article:  slot{tag: "article"},
		header:   slot{tag: "header"},
		footer:   slot{tag: "footer"},
		rules:    css.NewRuleSet(cfg.CSSPrefix),
	}
}

func (rc *RenderContext) SetHTML(el *etree.Element) error    { return rc.html.set(el) }
func (rc *RenderContext) SetHead(el *etree.Element) error    { return rc.head.set(el) }
func (rc *RenderContext) SetBody(el *etree.Element) error    { return rc.body.set(el) }
func (rc *RenderContext) SetArticle(el *etree.Element) error { return rc.article.set(el) }
func (rc *RenderContext) SetHeader(el *etree.Element) error  { return rc.header.set(el) }
func (rc *RenderContext) SetFooter(el *etree.Element) error  { return rc.footer.set(el) }

func (rc *RenderContext) HTML() *etree.Element    { return rc.html.el }
func (rc *RenderContext) Head() *etree.Element    { return rc.head.el }
func (rc *RenderContext) Body() *etree.Element    { return rc.body.el }
func (rc *RenderContext) Article() *etree.Element { return rc.article.el }
func (rc *RenderContext) Header() *etree.Element  { return rc.header.el }
func (rc *RenderContext) Footer() *etree.Element  { return rc.footer.el }

// Rules returns CSS accumulated so far.
func (rc *RenderContext) Rules() *css.RuleSet { return rc.rules }

// Warnings returns collected warnings in order they were recorded.
func (rc *RenderContext) Warnings() []Warning { return rc.warnings }

func (rc *RenderContext) warn(msg string, context any, cause error) {
	rc.log.Warn(msg, zap.Error(cause))
	rc.warnings = append(rc.warnings, Warning{Message: msg, Context: context, Cause: cause})
}

func (rc *RenderContext) use(f feature) {
	rc.features[f] = true
}

// class returns prefixed class names, one per name.
func (rc *RenderContext) class(names ...string) string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, rc.prefix+n)
	}
	return strings.Join(out, " ")
}

func (rc *RenderContext) addClass(el *etree.Element, names ...string) {
	cls := rc.class(names...)
	if a := el.SelectAttr("class"); a != nil && a.Value != "" {
		a.Value += " " + cls
		return
	}
	el.CreateAttr("class", cls)
}

// divider appends spacing element after rendered element of given kind. The
// previous divider learns what follows it.
func (rc *RenderContext) divider(parent *etree.Element, kind string) {
	rc.mark(kind)
	div := parent.CreateElement("div")
	rc.addClass(div, "spacing", "after-"+kind)
	rc.pending = div
}

// mark labels pending divider with kind of element which follows it.
func (rc *RenderContext) mark(kind string) {
	if rc.pending != nil {
		rc.addClass(rc.pending, "before-"+kind)
		rc.pending = nil
	}
}

// filter runs element hook and puts replacement (if any) in place of el.
// Nil result removes element.
func (rc *RenderContext) filter(p hooks.Point[*etree.Element], el *etree.Element) *etree.Element {
	out := hooks.Apply(rc.hooks, p, el)
	if out == el {
		return el
	}
	if parent := el.Parent(); parent != nil {
		idx := el.Index()
		parent.RemoveChildAt(idx)
		if out != nil {
			parent.InsertChildAt(idx, out)
		}
	}
	return out
}
