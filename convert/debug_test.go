package convert

import (
	"errors"
	"strings"
	"testing"

	"ia2amp/amp"
	"ia2amp/article"
)

func TestDebugDump(t *testing.T) {
	a := &article.Article{ID: "wod-1", Header: article.Header{Title: article.Text("WOD")}}
	res := &amp.Result{
		CSS: "p{margin:0}",
		Warnings: []amp.Warning{
			{Message: "map has no geotag"},
			{Message: "invalid style value skipped", Context: "bold", Cause: errors.New("bad color")},
		},
	}

	out := debugDump(a, res)
	for _, want := range []string{
		`Article id="wod-1"`,
		"Warnings: 2",
		"  map has no geotag\n",
		"  invalid style value skipped: bad color\n    context: bold\n",
		"Stylesheet: 11 bytes",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump does not contain %q\n%s", want, out)
		}
	}

	if out := debugDump(a, nil); strings.Contains(out, "Warnings") {
		t.Errorf("dump without result must not list warnings:\n%s", out)
	}
}
