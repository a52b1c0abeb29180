package hooks

import (
	"strings"
	"sync"
	"testing"

	"github.com/beevik/etree"
)

func TestApplyOrder(t *testing.T) {
	r := New()
	appendTag := func(tag string) func(string) string {
		return func(s string) string { return s + tag }
	}

	Add(r, Stylesheet, 20, appendTag("c"))
	Add(r, Stylesheet, DefaultPriority, appendTag("a"))
	Add(r, Stylesheet, 20, appendTag("d"))
	Add(r, Stylesheet, DefaultPriority, appendTag("b"))
	Add(r, Stylesheet, -5, appendTag("0"))

	if got := Apply(r, Stylesheet, ""); got != "0abcd" {
		t.Errorf("Apply() = %q, want %q", got, "0abcd")
	}
	// other points are not affected
	if got := Apply(r, MapsAPIKey, "key"); got != "key" {
		t.Errorf("Apply(MapsAPIKey) = %q, want key", got)
	}
}

func TestApplyNilRegistry(t *testing.T) {
	var r *Registry
	Add(r, MapsAPIKey, DefaultPriority, func(string) string { return "changed" })
	if got := Apply(r, MapsAPIKey, "key"); got != "key" {
		t.Errorf("Apply() on nil registry = %q", got)
	}
	if Has(r, MapsAPIKey) {
		t.Error("nil registry reports handlers")
	}
}

func TestApplyReentrant(t *testing.T) {
	r := New()
	Add(r, MapsAPIKey, DefaultPriority, strings.ToUpper)
	Add(r, Map, DefaultPriority, func(el *etree.Element) *etree.Element {
		// nested dispatch and registration from inside a handler
		el.CreateAttr("data-key", Apply(r, MapsAPIKey, "abc"))
		Add(r, Caption, DefaultPriority, func(c *etree.Element) *etree.Element { return c })
		return el
	})

	el := Apply(r, Map, etree.NewElement("amp-iframe"))
	if got := el.SelectAttrValue("data-key", ""); got != "ABC" {
		t.Errorf("data-key = %q, want ABC", got)
	}
	if !Has(r, Caption) {
		t.Error("handler registered from inside handler is missing")
	}
}

func TestApplyReplacesValue(t *testing.T) {
	r := New()
	Add(r, Image, DefaultPriority, func(*etree.Element) *etree.Element {
		return etree.NewElement("amp-anim")
	})
	if got := Apply(r, Image, etree.NewElement("amp-img")); got.Tag != "amp-anim" {
		t.Errorf("Apply() tag = %q, want amp-anim", got.Tag)
	}
}

func TestConcurrentUse(t *testing.T) {
	r := New()
	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			Add(r, Stylesheet, DefaultPriority, func(s string) string { return s + "x" })
			_ = Apply(r, Stylesheet, "")
		})
	}
	wg.Wait()

	if got := Apply(r, Stylesheet, ""); got != "xxxxxxxx" {
		t.Errorf("Apply() = %q, want 8 handlers applied", got)
	}
}

func TestPointNames(t *testing.T) {
	seen := map[string]bool{}
	for _, n := range []string{
		MapsAPIKey.Name(), Stylesheet.Name(), Document.Name(), Head.Name(), Header.Name(),
		Cover.Name(), Footer.Name(), Element.Name(), Image.Name(), Video.Name(),
		Slideshow.Name(), Iframe.Name(), Map.Name(), Ad.Name(), Caption.Name(),
	} {
		if seen[n] {
			t.Errorf("duplicate point name %q", n)
		}
		seen[n] = true
	}
}
