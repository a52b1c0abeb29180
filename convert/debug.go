package convert

import (
	"fmt"
	"strings"

	"ia2amp/amp"
	"ia2amp/article"
)

// debugDump returns readable article tree followed by conversion warnings,
// debug report keeps it next to the result.
func debugDump(a *article.Article, res *amp.Result) string {
	var b strings.Builder
	b.WriteString(a.String())
	if res == nil {
		return b.String()
	}
	fmt.Fprintf(&b, "Warnings: %d\n", len(res.Warnings))
	for _, w := range res.Warnings {
		fmt.Fprintf(&b, "  %s\n", w.Error())
		if w.Context != nil {
			fmt.Fprintf(&b, "    context: %v\n", w.Context)
		}
	}
	fmt.Fprintf(&b, "Stylesheet: %d bytes\n", len(res.CSS))
	return b.String()
}
