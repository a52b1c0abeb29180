package amp

import (
	"context"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/multierr"
	"golang.org/x/net/html"

	"ia2amp/article"
	"ia2amp/css"
	"ia2amp/hooks"
	"ia2amp/style"
)

const (
	ampRuntime = "https://cdn.ampproject.org/v0.js"
	viewport   = "width=device-width,minimum-scale=1,initial-scale=1"

	boilerplate = "body{-webkit-animation:-amp-start 8s steps(1,end) 0s 1 normal both;" +
		"-moz-animation:-amp-start 8s steps(1,end) 0s 1 normal both;" +
		"-ms-animation:-amp-start 8s steps(1,end) 0s 1 normal both;" +
		"animation:-amp-start 8s steps(1,end) 0s 1 normal both}" +
		"@-webkit-keyframes -amp-start{from{visibility:hidden}to{visibility:visible}}" +
		"@-moz-keyframes -amp-start{from{visibility:hidden}to{visibility:visible}}" +
		"@-ms-keyframes -amp-start{from{visibility:hidden}to{visibility:visible}}" +
		"@-o-keyframes -amp-start{from{visibility:hidden}to{visibility:visible}}" +
		"@keyframes -amp-start{from{visibility:hidden}to{visibility:visible}}"
	noscriptBoilerplate = "body{-webkit-animation:none;-moz-animation:none;-ms-animation:none;animation:none}"
)

// assemble builds complete document tree except for late placeholders.
func (rc *RenderContext) assemble(ctx context.Context, a *article.Article, lang string) error {
	root := rc.doc.CreateElement("html")
	root.CreateAttr("amp", "")
	if lang != "" {
		root.CreateAttr("lang", lang)
	}
	if a.RTL || rc.cfg.RTL {
		root.CreateAttr("dir", "rtl")
	}
	if err := rc.SetHTML(root); err != nil {
		return err
	}

	head := root.CreateElement("head")
	if err := rc.SetHead(head); err != nil {
		return err
	}
	rc.buildHead(ctx, head, a)

	body := root.CreateElement("body")
	if err := rc.SetBody(body); err != nil {
		return err
	}
	content := body.CreateElement("article")
	rc.addClass(content, "article")
	if err := rc.SetArticle(content); err != nil {
		return err
	}

	if err := rc.buildHeader(ctx, content, &a.Header); err != nil {
		return err
	}
	for i := range a.Children {
		rc.renderElement(ctx, content, &a.Children[i])
	}
	if a.Footer.IsValid() {
		if err := rc.buildFooter(content, a.Footer); err != nil {
			return err
		}
	}
	return nil
}

func (rc *RenderContext) buildHead(ctx context.Context, head *etree.Element, a *article.Article) {
	head.CreateElement("meta").CreateAttr("charset", "utf-8")

	meta := head.CreateElement("meta")
	meta.CreateAttr("name", "viewport")
	meta.CreateAttr("content", viewport)

	rc.runtime = head.CreateElement("script")
	rc.runtime.CreateAttr("async", "")
	rc.runtime.CreateAttr("src", ampRuntime)

	bp := head.CreateElement("style")
	bp.CreateAttr("amp-boilerplate", "")
	bp.SetText(boilerplate)
	bp = head.CreateElement("noscript").CreateElement("style")
	bp.CreateAttr("amp-boilerplate", "")
	bp.SetText(noscriptBoilerplate)

	if canonical := strings.TrimSpace(a.CanonicalURL); canonical != "" {
		link := head.CreateElement("link")
		link.CreateAttr("rel", "canonical")
		link.CreateAttr("href", canonical)
	} else {
		rc.warn("article has no canonical URL", a.ID, nil)
	}

	rc.custom = head.CreateElement("style")
	rc.custom.CreateAttr("amp-custom", "")

	if ld, err := rc.schema(ctx, a); err != nil {
		rc.warn("unable to build Schema.org metadata", a.ID, err)
	} else {
		script := head.CreateElement("script")
		script.CreateAttr("type", "application/ld+json")
		script.SetText(ld)
	}

	head.CreateElement("title").SetText(strings.TrimSpace(a.Header.Title.AsPlainText()))
}

type finalizeInput struct {
	logo       *style.Logo
	dateFormat string
	global     []byte
	perStyle   []byte
}

// finalize fills placeholders, declares used components and returns final
// custom stylesheet.
func (rc *RenderContext) finalize(a *article.Article, in finalizeInput) string {
	if in.logo != nil && rc.bar != nil {
		img := rc.bar.CreateElement("amp-img")
		img.CreateAttr("src", in.logo.URL)
		setSize(img, in.logo.Width, in.logo.Height, "fixed")
		rc.filter(hooks.Image, img)
	}
	if rc.date != nil && a.Header.Published != nil {
		rc.date.SetText(rc.formatDate(a, in.dateFormat))
	}
	if h := rc.Header(); h != nil {
		rc.filter(hooks.Header, h)
	}

	rc.insertAnalytics()
	rc.declareScripts()

	parser := css.NewParser(rc.log)
	sheet := strings.ReplaceAll(rc.rules.Build(false), "\n", "") +
		parser.Compact(in.global, "global stylesheet") +
		parser.Compact(in.perStyle, "style stylesheet")
	sheet = hooks.Apply(rc.hooks, hooks.Stylesheet, sheet)
	rc.custom.SetText(sheet)

	rc.filter(hooks.Head, rc.Head())
	rc.filter(hooks.Document, rc.HTML())
	return sheet
}

// declareScripts emits custom element scripts right after AMP runtime in
// fixed order.
func (rc *RenderContext) declareScripts() {
	head := rc.Head()
	at := rc.runtime.Index() + 1
	for f := range featureCount {
		if !rc.features[f] {
			continue
		}
		script := etree.NewElement("script")
		script.CreateAttr("async", "")
		script.CreateAttr("custom-element", featureElements[f])
		script.CreateAttr("src", f.script())
		head.InsertChildAt(at, script)
		at++
	}
}

// insertAnalytics validates configured analytics markup and puts it at the
// beginning of the body. Any invalid item discards the whole set.
func (rc *RenderContext) insertAnalytics() {
	if len(rc.cfg.Analytics) == 0 {
		return
	}
	nodes, err := parseAnalytics(rc.cfg.Analytics)
	if err != nil {
		rc.warn("analytics discarded, configuration has invalid markup", rc.cfg.Analytics, err)
		return
	}

	holder := etree.NewElement("div")
	for _, n := range nodes {
		importNode(holder, n)
		if n.Data == "amp-analytics" {
			rc.use(featureAnalytics)
		}
	}
	body := rc.Body()
	for i, el := range holder.ChildElements() {
		body.InsertChildAt(i, el)
	}
}

func parseAnalytics(markup []string) ([]*html.Node, error) {
	var (
		nodes []*html.Node
		errs  error
	)
	for i, m := range markup {
		roots, err := parseFragment(m)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("analytics %d: %w", i, err))
			continue
		}
		if len(roots) != 1 {
			errs = multierr.Append(errs, fmt.Errorf("analytics %d: expected single element, got %d nodes", i, len(roots)))
			continue
		}
		n := roots[0]
		if n.Type != html.ElementNode {
			errs = multierr.Append(errs, fmt.Errorf("analytics %d: top level node is not an element", i))
			continue
		}
		if n.Data != "amp-analytics" && n.Data != "amp-pixel" {
			errs = multierr.Append(errs, fmt.Errorf("analytics %d: unexpected element <%s>", i, n.Data))
			continue
		}
		nodes = append(nodes, n)
	}
	if errs != nil {
		return nil, errs
	}
	return nodes, nil
}
