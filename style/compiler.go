package style

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"ia2amp/css"
	"ia2amp/media"
)

// Logo box the header logo is fitted into.
const (
	LogoTargetWidth  = 300
	LogoTargetHeight = 50
)

// Logo is the header logo scaled to fit the logo box.
type Logo struct {
	URL    string
	Width  int
	Height int
}

// Result carries compiler side outputs.
type Result struct {
	Logo *Logo
	// Problems are non fatal issues, offending values were skipped.
	Problems []error
}

// Sizer finds size of images which style does not give explicitly.
type Sizer interface {
	Resolve(ctx context.Context, url string, kind media.Kind) media.Dimensions
}

// Compiler turns style description into CSS rules.
type Compiler struct {
	sizer Sizer
	log   *zap.Logger
}

// NewCompiler creates compiler, sizer may be nil if logo always carries its
// size.
func NewCompiler(sizer Sizer, log *zap.Logger) *Compiler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Compiler{sizer: sizer, log: log.Named("style")}
}

// mapping binds style block key to class names it applies to.
type mapping struct {
	key   string
	names string
}

var (
	headMappings = []mapping{
		{"kicker", "header-kicker"},
		{"title", "header-h1"},
		{"subtitle", "header-h2"},
		{"byline", "header-byline"},
	}
	bodyMappings = []mapping{
		{"primary_heading", "h1"},
		{"secondary_heading", "h2"},
		{"body_text", "p, list"},
		{"inline_link", "p a, list a"},
	}
	quoteMappings = []mapping{
		{"block_quote", "blockquote"},
		{"pull_quote", "pullquote"},
		{"pull_quote_attribution", "pullquote cite"},
	}
	footerMappings = []mapping{
		{"footer", "footer"},
	}
)

func captionMappings() []mapping {
	var m []mapping
	for _, size := range captionSizes {
		class := "caption-" + size.String()
		m = append(m,
			mapping{"caption_title_" + size.StyleKey(), class + " h1"},
			mapping{"caption_description_" + size.StyleKey(), class},
		)
	}
	return append(m, mapping{"caption_credit", "caption cite"})
}

// session is a single compilation.
type session struct {
	*Compiler
	desc     *Description
	rs       *css.RuleSet
	problems []error
}

func (s *session) problem(err error) {
	s.log.Warn("Style problem", zap.Error(err))
	s.problems = append(s.problems, err)
}

// Compile writes rules for desc into rs. Invalid values never abort
// compilation, they are reported in Result.Problems.
func (c *Compiler) Compile(ctx context.Context, desc *Description, rs *css.RuleSet) Result {
	if desc == nil {
		desc = &Description{}
	}
	s := &session{Compiler: c, desc: desc, rs: rs}
	for _, p := range desc.Problems {
		s.problem(p)
	}

	s.base()
	s.document()
	s.header()
	s.texts(headMappings)
	s.texts(bodyMappings)
	s.texts(quoteMappings)
	s.texts(captionMappings())
	s.texts(footerMappings)
	logo := s.logo(ctx)

	return Result{Logo: logo, Problems: s.problems}
}

// base writes rules which do not depend on style description.
func (s *session) base() {
	s.rs.AddDimensionToSelector("spacing", "height", SizeDocumentMargin.Pixels(), "px")
	s.rs.AddHeightSpacingToSelector("header-bar, cover", 0, "")
	s.rs.AddToSelector("header-bar", "display", "flex")
	s.rs.AddToSelector("header-bar", "justify-content", "center")
	for _, align := range []string{"left", "center", "right"} {
		s.rs.AddToSelector("caption-align-"+align, "text-align", align)
	}
	s.rs.AddToSelector("figure", "margin", "0")
	s.rs.AddToSelector("viewport", "overflow", "hidden")
	s.rs.AddToSelector("viewport", "position", "relative")
}

func (s *session) document() {
	if s.desc.BackgroundColor == "" {
		return
	}
	if rgb, ok := s.color("background_color", s.desc.BackgroundColor); ok {
		s.rs.AddProperty("html", "background-color", rgb)
	}
}

func (s *session) header() {
	h := s.desc.Header
	if h.BackgroundColor != "" {
		if rgb, ok := s.color("header.background_color", h.BackgroundColor); ok {
			s.rs.AddToSelector("header-bar", "background-color", rgb)
		}
	}
	if h.BarColor != "" {
		if rgb, ok := s.color("header.bar_color", h.BarColor); ok {
			s.rs.AddSpacingToSelector("header-bar", "border-top", "1px solid "+rgb)
		}
	}
}

func (s *session) color(where, value string) (string, bool) {
	rgb, err := css.ToRGB(value)
	if err != nil {
		s.problem(fmt.Errorf("%s: %w", where, err))
		return "", false
	}
	return rgb, true
}

func (s *session) texts(mappings []mapping) {
	for _, m := range mappings {
		if ts, ok := s.desc.Block(m.key); ok {
			s.text(m.key, m.names, ts)
		}
	}
}

var capitalization = map[string]string{
	"ALL_CAPS":       "uppercase",
	"ALL_LOWER_CASE": "lowercase",
	"NONE":           "none",
}

func (s *session) text(key, names string, ts TextStyle) {
	rs := s.rs
	if ts.Font != "" {
		rs.AddToSelector(names, "font-family", ts.Font)
	}
	if ts.TextAlignment != "" {
		rs.AddToSelector(names, "text-align", strings.ToLower(ts.TextAlignment))
	}
	if ts.Display != "" {
		rs.AddToSelector(names, "display", strings.ToLower(ts.Display))
	}
	if ts.Capitalization != "" {
		if v, ok := capitalization[strings.ToUpper(ts.Capitalization)]; ok {
			rs.AddToSelector(names, "text-transform", v)
		} else {
			s.problem(fmt.Errorf("%s.capitalization: unknown value %q", key, ts.Capitalization))
		}
	}
	if ts.Underline != nil && *ts.Underline != UnderlineNone {
		rs.AddToSelector(names, "text-decoration", "underline")
	}
	if ts.BackgroundColor != "" {
		if rgb, ok := s.color(key+".background_color", ts.BackgroundColor); ok {
			rs.AddToSelector(names, "background-color", rgb)
		}
	}
	if ts.Color != "" {
		if rgb, ok := s.color(key+".color", ts.Color); ok {
			rs.AddToSelector(names, "color", rgb)
		}
	}
	if m := ts.Margin; m != nil {
		rs.AddTopRightBottomLeftToSelector(names, "margin", m.Top.Pixels(), m.Right.Pixels(), m.Bottom.Pixels(), m.Left.Pixels(), "px")
	}
	if p := ts.Padding; p != nil {
		rs.AddTopRightBottomLeftToSelector(names, "padding", p.Top.Pixels(), p.Right.Pixels(), p.Bottom.Pixels(), p.Left.Pixels(), "px")
	}
	if b := ts.Border; b != nil {
		s.border(key, names, b)
	}
}

func (s *session) border(key, names string, b *Border) {
	sides := []struct {
		name string
		side *BorderSide
	}{
		{"top", b.Top}, {"right", b.Right}, {"bottom", b.Bottom}, {"left", b.Left},
	}
	var widths [4]float64
	for i, sd := range sides {
		if sd.side != nil {
			widths[i] = sd.side.Width
		}
	}
	s.rs.AddTopRightBottomLeftToSelector(names, "border-width", widths[0], widths[1], widths[2], widths[3], "px")
	s.rs.AddToSelector(names, "border-style", "solid")
	for _, sd := range sides {
		if sd.side == nil || sd.side.Color == "" {
			continue
		}
		if rgb, ok := s.color(key+".border."+sd.name+".color", sd.side.Color); ok {
			s.rs.AddToSelector(names, "border-"+sd.name+"-color", rgb)
		}
	}
}

// logo fits header logo into the logo box: scale = logo_scale *
// min(boxH/srcH, boxW/srcW).
func (s *session) logo(ctx context.Context) *Logo {
	h := s.desc.Header
	if h.Logo == nil || strings.TrimSpace(h.Logo.URL) == "" {
		return nil
	}
	w, ht := h.Logo.Width, h.Logo.Height
	if (w <= 0 || ht <= 0) && s.sizer != nil {
		d := s.sizer.Resolve(ctx, h.Logo.URL, media.KindImage)
		w, ht = float64(d.Width), float64(d.Height)
	}
	if w <= 0 || ht <= 0 {
		s.problem(fmt.Errorf("header.logo: unable to determine size of %s", h.Logo.URL))
		return nil
	}

	factor := 1.0
	if h.LogoScale != nil {
		factor = *h.LogoScale
	}
	scale := factor * math.Min(LogoTargetHeight/ht, LogoTargetWidth/w)
	return &Logo{
		URL:    h.Logo.URL,
		Width:  int(math.Round(w * scale)),
		Height: int(math.Round(ht * scale)),
	}
}
