package style

import (
	"context"
	"testing"

	"go.uber.org/zap/zaptest"

	"ia2amp/css"
	"ia2amp/media"
)

type fixedSizer media.Dimensions

func (s fixedSizer) Resolve(context.Context, string, media.Kind) media.Dimensions {
	return media.Dimensions(s)
}

func compile(t *testing.T, sizer Sizer, data string) (*css.RuleSet, Result) {
	t.Helper()
	d, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	rs := css.NewRuleSet("x-")
	res := NewCompiler(sizer, zaptest.NewLogger(t)).Compile(context.Background(), d, rs)
	return rs, res
}

func property(t *testing.T, rs *css.RuleSet, sel, prop, want string) {
	t.Helper()
	got, ok := rs.Property(sel, prop)
	if !ok {
		t.Errorf("%s { %s } is missing", sel, prop)
		return
	}
	if got != want {
		t.Errorf("%s { %s: %s }, want %s", sel, prop, got, want)
	}
}

func TestCompileBase(t *testing.T) {
	rs, res := compile(t, nil, `{}`)
	if len(res.Problems) != 0 || res.Logo != nil {
		t.Errorf("unexpected result %+v", res)
	}
	property(t, rs, ".x-spacing", "height", "16.4px")
	property(t, rs, ".x-header-bar + .x-spacing, .x-cover + .x-spacing", "height", "0")
	property(t, rs, ".x-caption-align-center", "text-align", "center")
}

func TestCompileTextBlocks(t *testing.T) {
	rs, res := compile(t, nil, `{
		"background_color": "#FFF",
		"header": {"background_color": "#000000", "bar_color": "#10FF0000"},
		"kicker": {"capitalization": "ALL_CAPS", "color": "#AA0000", "margin": {"left": {"size": "DOCUMENT_MARGIN"}, "right": {"size": "DOCUMENT_MARGIN"}}},
		"body_text": {"font": "Georgia", "text_alignment": "LEFT"},
		"inline_link": {"underline": true},
		"pull_quote_attribution": {"display": "BLOCK"},
		"block_quote": {"border": {"left": {"width": 3, "color": "#E5E5E5"}}, "padding": {"left": {"size": "SMALL", "scaling_factor": 0.5}}},
		"caption_title_extra_large": {"font": "Arial"},
		"caption_description_small": {"color": "#333"},
		"footer": {"underline": "NONE", "capitalization": "ALL_LOWER_CASE"}
	}`)
	if len(res.Problems) != 0 {
		t.Fatalf("Problems = %v", res.Problems)
	}

	property(t, rs, "html", "background-color", "rgb(255,255,255)")
	property(t, rs, ".x-header-bar", "background-color", "rgb(0,0,0)")
	property(t, rs, ".x-header-bar + .x-spacing", "border-top", "1px solid rgba(255,0,0,0.06)")
	property(t, rs, ".x-header-kicker", "text-transform", "uppercase")
	property(t, rs, ".x-header-kicker", "color", "rgb(170,0,0)")
	property(t, rs, ".x-header-kicker", "margin", "0 16.4px 0 16.4px")
	property(t, rs, ".x-p, .x-list", "font-family", "Georgia")
	property(t, rs, ".x-p, .x-list", "text-align", "left")
	property(t, rs, ".x-p a, .x-list a", "text-decoration", "underline")
	property(t, rs, ".x-pullquote cite", "display", "block")
	property(t, rs, ".x-blockquote", "border-width", "0 0 0 3px")
	property(t, rs, ".x-blockquote", "border-style", "solid")
	property(t, rs, ".x-blockquote", "border-left-color", "rgb(229,229,229)")
	property(t, rs, ".x-blockquote", "padding", "0 0 0 16px")
	property(t, rs, ".x-caption-extra-large h1", "font-family", "Arial")
	property(t, rs, ".x-caption-small", "color", "rgb(51,51,51)")
	property(t, rs, ".x-footer", "text-transform", "lowercase")
	if _, ok := rs.Property(".x-footer", "text-decoration"); ok {
		t.Error("underline NONE must not produce text-decoration")
	}
}

func TestCompileProblems(t *testing.T) {
	rs, res := compile(t, nil, `{
		"title": {"color": "blue", "font": "Georgia", "capitalization": "SHOUTING"},
		"byline": {"margin": {"top": {"size": "HUGE"}}},
		"header": {"logo": {"url": "https://example.com/logo.png"}}
	}`)
	if len(res.Problems) != 4 {
		t.Fatalf("got %d problems, want 4: %v", len(res.Problems), res.Problems)
	}
	property(t, rs, ".x-header-h1", "font-family", "Georgia")
	if _, ok := rs.Property(".x-header-h1", "color"); ok {
		t.Error("invalid color must be skipped")
	}
	if _, ok := rs.Property(".x-header-h1", "text-transform"); ok {
		t.Error("invalid capitalization must be skipped")
	}
	if res.Logo != nil {
		t.Error("logo without size must be dropped")
	}
}

func TestCompileLogo(t *testing.T) {
	tests := []struct {
		name  string
		sizer Sizer
		data  string
		want  Logo
	}{
		{
			name: "wide explicit",
			data: `{"header": {"logo": {"url": "l.png", "width": 600, "height": 50}}}`,
			want: Logo{URL: "l.png", Width: 300, Height: 25},
		},
		{
			name: "tall explicit scaled",
			data: `{"header": {"logo": {"url": "l.png", "width": 100, "height": 100}, "logo_scale": 0.5}}`,
			want: Logo{URL: "l.png", Width: 25, Height: 25},
		},
		{
			name:  "resolved",
			sizer: fixedSizer{Width: 200, Height: 25},
			data:  `{"header": {"logo": {"url": "l.png"}}}`,
			want:  Logo{URL: "l.png", Width: 300, Height: 38},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, res := compile(t, tt.sizer, tt.data)
			if res.Logo == nil {
				t.Fatalf("no logo, problems %v", res.Problems)
			}
			if *res.Logo != tt.want {
				t.Errorf("Logo = %+v, want %+v", *res.Logo, tt.want)
			}
		})
	}
}

func TestCompileDefaultStyle(t *testing.T) {
	rs := css.NewRuleSet("ia2amp-")
	res := NewCompiler(nil, zaptest.NewLogger(t)).Compile(context.Background(), Default(), rs)
	if len(res.Problems) != 0 {
		t.Fatalf("embedded style has problems: %v", res.Problems)
	}
	property(t, rs, ".ia2amp-pullquote", "text-align", "center")
}
