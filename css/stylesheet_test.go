package css

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func TestCompactSimple(t *testing.T) {
	p := NewParser(zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller())))

	got := p.Compact([]byte("p {\n  color: red;\n}\n"), "simple")
	if got != "p{color:red}" {
		t.Errorf("Compact = %q", got)
	}
}

func TestCompactDropsForbidden(t *testing.T) {
	p := NewParser(nil)

	src := `/* leading comment */
@import url("other.css");
.a,
.b {
  color: red !important;
  margin: 0   auto;
}

@media (max-width: 600px) {
  p { color: blue; }
}
`
	got := p.Compact([]byte(src))

	for _, bad := range []string{"\n", "/*", "@import", "!important", "  "} {
		if strings.Contains(got, bad) {
			t.Errorf("Compact output contains %q: %q", bad, got)
		}
	}
	for _, want := range []string{"color:red", "margin:0 auto", "@media", "color:blue"} {
		if !strings.Contains(got, want) {
			t.Errorf("Compact output misses %q: %q", want, got)
		}
	}
}

func TestCompactEmpty(t *testing.T) {
	if got := NewParser(nil).Compact([]byte(" \n\t")); got != "" {
		t.Errorf("Compact of blank input = %q", got)
	}
}
