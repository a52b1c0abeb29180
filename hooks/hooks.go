// Package hooks lets callers observe and rewrite values the converter
// produces at fixed points of the pipeline.
//
// Every point carries its own value type, handlers registered for a point
// receive current value and return the one to continue with:
//
//	reg := hooks.New()
//	hooks.Add(reg, hooks.Image, hooks.DefaultPriority, func(el *etree.Element) *etree.Element {
//	    el.CreateAttr("data-origin", "feed")
//	    return el
//	})
//
// Handlers run in ascending priority order, handlers with equal priority run
// in registration order. Handlers may apply other points themselves.
package hooks

import (
	"cmp"
	"slices"
	"sync"

	"github.com/beevik/etree"
)

// DefaultPriority is used by handlers which do not care about ordering.
const DefaultPriority = 10

// Point identifies an extension point with value type T. Points are only
// declared by this package.
type Point[T any] struct {
	name string
}

// Name returns point identifier.
func (p Point[T]) Name() string {
	return p.name
}

var (
	// MapsAPIKey filters Google Maps embed key before URL is built.
	MapsAPIKey = Point[string]{"maps-api-key"}
	// Stylesheet filters final text of <style amp-custom>.
	Stylesheet = Point[string]{"stylesheet"}

	// Document receives <html> element after document is finalized.
	Document = Point[*etree.Element]{"document"}
	// Head receives <head> after all resources were declared.
	Head = Point[*etree.Element]{"head"}
	// Header receives article <header>.
	Header = Point[*etree.Element]{"header"}
	// Cover receives cover media element.
	Cover = Point[*etree.Element]{"cover"}
	// Footer receives article <footer>.
	Footer = Point[*etree.Element]{"footer"}
	// Element receives every rendered article child.
	Element = Point[*etree.Element]{"element"}
	// Image receives <amp-img> and <amp-anim> elements.
	Image = Point[*etree.Element]{"image"}
	// Video receives <amp-video> elements.
	Video = Point[*etree.Element]{"video"}
	// Slideshow receives <amp-carousel> elements.
	Slideshow = Point[*etree.Element]{"slideshow"}
	// Iframe receives <amp-iframe> built for interactive and social embeds.
	Iframe = Point[*etree.Element]{"iframe"}
	// Map receives <amp-iframe> built for maps.
	Map = Point[*etree.Element]{"map"}
	// Ad receives <amp-iframe> built for ads.
	Ad = Point[*etree.Element]{"ad"}
	// Caption receives <figcaption> elements.
	Caption = Point[*etree.Element]{"caption"}
)

type handler struct {
	priority int
	seq      uint64
	fn       any
}

// Registry holds handlers for extension points. Zero value is not usable,
// nil registry is valid and has no handlers.
type Registry struct {
	mu       sync.RWMutex
	seq      uint64
	handlers map[string][]handler
}

// New creates empty registry.
func New() *Registry {
	return &Registry{handlers: make(map[string][]handler)}
}

// Add registers fn for point p.
func Add[T any](r *Registry, p Point[T], priority int, fn func(T) T) {
	if r == nil || fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	list := append(r.handlers[p.name], handler{priority: priority, seq: r.seq, fn: fn})
	slices.SortStableFunc(list, func(a, b handler) int {
		return cmp.Or(cmp.Compare(a.priority, b.priority), cmp.Compare(a.seq, b.seq))
	})
	r.handlers[p.name] = list
}

// Has reports whether any handler is registered for point p.
func Has[T any](r *Registry, p Point[T]) bool {
	if r == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers[p.name]) > 0
}

// Apply passes value through handlers registered for point p and returns
// the result. Lock is not held while handlers run.
func Apply[T any](r *Registry, p Point[T], value T) T {
	if r == nil {
		return value
	}
	r.mu.RLock()
	list := slices.Clone(r.handlers[p.name])
	r.mu.RUnlock()

	for _, h := range list {
		value = h.fn.(func(T) T)(value)
	}
	return value
}
