// Package amp converts articles into AMP HTML documents.
package amp

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"ia2amp/article"
	"ia2amp/config"
	"ia2amp/hooks"
	"ia2amp/media"
	"ia2amp/style"
)

// Resolver provides media dimensions.
type Resolver interface {
	Resolve(ctx context.Context, url string, kind media.Kind) media.Dimensions
	Default() media.Dimensions
}

// Result of a conversion.
type Result struct {
	// HTML is complete serialized document.
	HTML string
	// CSS is the content of <style amp-custom>.
	CSS      string
	Warnings []Warning
}

// Converter turns articles into AMP documents. It is immutable after
// construction and safe for concurrent use.
type Converter struct {
	cfg        *config.DocumentConfig
	style      *style.Description
	styleSheet []byte
	stylesheet []byte
	resolver   Resolver
	hooks      *hooks.Registry
	compiler   *style.Compiler
	log        *zap.Logger
}

// Option customizes Converter.
type Option func(*Converter)

// WithStyle sets style and its own stylesheet (may be nil) used for every
// article regardless of style name article declares.
func WithStyle(d *style.Description, sheet []byte) Option {
	return func(c *Converter) {
		c.style = d
		c.styleSheet = sheet
	}
}

// WithStylesheet replaces global stylesheet.
func WithStylesheet(data []byte) Option {
	return func(c *Converter) {
		c.stylesheet = data
	}
}

// WithResolver replaces media dimension resolver.
func WithResolver(r Resolver) Option {
	return func(c *Converter) {
		c.resolver = r
	}
}

// WithHooks installs extension point handlers.
func WithHooks(r *hooks.Registry) Option {
	return func(c *Converter) {
		c.hooks = r
	}
}

// New creates converter. Global stylesheet named in configuration is read
// here, embedded one is used when none is configured.
func New(cfg *config.DocumentConfig, log *zap.Logger, opts ...Option) (*Converter, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: configuration is required", ErrInvalidArgument)
	}
	if log == nil {
		log = zap.NewNop()
	}
	c := &Converter{cfg: cfg, log: log.Named("amp")}
	for _, opt := range opts {
		opt(c)
	}

	if c.stylesheet == nil {
		if cfg.StylesheetPath != "" {
			data, err := os.ReadFile(cfg.StylesheetPath)
			if err != nil {
				return nil, fmt.Errorf("unable to read global stylesheet: %w", err)
			}
			c.stylesheet = data
		} else {
			c.stylesheet = style.DefaultStylesheet()
		}
	}
	if c.resolver == nil {
		c.resolver = media.NewResolver(&cfg.Media, log)
	}
	c.compiler = style.NewCompiler(c.resolver, log)
	return c, nil
}

// Convert renders article. Returned error means misuse, content problems
// are reported as warnings in the result.
func (c *Converter) Convert(ctx context.Context, a *article.Article) (*Result, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: article is nil", ErrInvalidArgument)
	}
	rc := newRenderContext(c.cfg, c.resolver, c.hooks, c.log)

	desc, sheet := c.styleFor(rc, a)
	compiled := c.compiler.Compile(ctx, desc, rc.rules)
	for _, p := range compiled.Problems {
		rc.warnings = append(rc.warnings, Warning{Message: "invalid style value skipped", Context: a.StyleName(), Cause: p})
	}

	if err := rc.assemble(ctx, a, c.lang(rc, a)); err != nil {
		return nil, err
	}

	res := rc.finalize(a, finalizeInput{
		logo:       compiled.Logo,
		dateFormat: desc.DateFormat,
		global:     c.stylesheet,
		perStyle:   sheet,
	})

	out, err := render(rc.doc)
	if err != nil {
		return nil, fmt.Errorf("unable to serialize document: %w", err)
	}
	return &Result{HTML: out, CSS: res, Warnings: rc.warnings}, nil
}

// styleFor picks style description and per style stylesheet. Failures
// degrade to embedded default style.
func (c *Converter) styleFor(rc *RenderContext, a *article.Article) (*style.Description, []byte) {
	if c.style != nil {
		return c.style, c.styleSheet
	}
	name := a.StyleName()
	if c.cfg.Style != "" && a.Style == "" {
		name = c.cfg.Style
	}
	desc, err := style.Load(c.cfg.StylesDir, name)
	if err != nil {
		rc.warn("unable to load style, using default", name, err)
		desc = style.Default()
	}
	sheet, err := style.LoadStylesheet(c.cfg.StylesDir, name)
	if err != nil {
		rc.warn("unable to load style stylesheet", name, err)
	}
	return desc, sheet
}

// lang returns canonical language tag of the document, article setting
// wins over configuration.
func (c *Converter) lang(rc *RenderContext, a *article.Article) string {
	raw := a.Language
	if raw == "" {
		raw = c.cfg.Language
	}
	if raw == "" {
		return ""
	}
	tag, err := language.Parse(raw)
	if err != nil {
		rc.warn("invalid document language ignored", raw, err)
		return ""
	}
	return tag.String()
}
