// Package css accumulates generated style rules and normalizes stylesheet
// text for the amp-custom block.
package css

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// declarations keeps property order of the first insertion.
type declarations struct {
	names  []string
	values map[string]string
}

// RuleSet is an ordered collection of CSS declarations keyed by selector.
// Selectors are emitted in order of their first insertion, properties within
// selector likewise, and the last value written for a property wins. Nothing
// is escaped or validated, callers are expected to supply CSS safe text.
type RuleSet struct {
	prefix    string
	selectors []string
	rules     map[string]*declarations
}

// NewRuleSet creates empty rule set which prefixes class names with prefix.
func NewRuleSet(prefix string) *RuleSet {
	return &RuleSet{
		prefix: prefix,
		rules:  make(map[string]*declarations),
	}
}

// Prefix returns class name prefix used by selector helpers.
func (rs *RuleSet) Prefix() string {
	return rs.prefix
}

// Class returns class name with prefix applied.
func (rs *RuleSet) Class(name string) string {
	return rs.prefix + name
}

// AddProperty sets property value under selector.
func (rs *RuleSet) AddProperty(selector, property, value string) *RuleSet {
	decl, ok := rs.rules[selector]
	if !ok {
		decl = &declarations{values: make(map[string]string)}
		rs.rules[selector] = decl
		rs.selectors = append(rs.selectors, selector)
	}
	if _, exists := decl.values[property]; !exists {
		decl.names = append(decl.names, property)
	}
	decl.values[property] = value
	return rs
}

// Property returns value stored under selector.
func (rs *RuleSet) Property(selector, property string) (string, bool) {
	decl, ok := rs.rules[selector]
	if !ok {
		return "", false
	}
	v, ok := decl.values[property]
	return v, ok
}

// Build serializes rule set. Formatted output puts every declaration on its
// own indented line and separates blocks with blank line, otherwise result
// is a single dense line.
func (rs *RuleSet) Build(formatted bool) string {
	var b strings.Builder
	rs.write(&b, formatted)
	return b.String()
}

// WriteTo writes formatted rule set to w.
func (rs *RuleSet) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	rs.write(&b, true)
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func (rs *RuleSet) write(b *strings.Builder, formatted bool) {
	first := true
	for _, sel := range rs.selectors {
		decl := rs.rules[sel]
		if len(decl.names) == 0 {
			continue
		}
		if formatted {
			if !first {
				b.WriteString("\n\n")
			}
			b.WriteString(sel)
			b.WriteString(" {\n")
			for _, name := range decl.names {
				b.WriteString("  ")
				b.WriteString(name)
				b.WriteString(": ")
				b.WriteString(decl.values[name])
				b.WriteString(";\n")
			}
			b.WriteString("}")
		} else {
			b.WriteString(sel)
			b.WriteString("{")
			for i, name := range decl.names {
				if i > 0 {
					b.WriteString(";")
				}
				b.WriteString(name)
				b.WriteString(":")
				b.WriteString(decl.values[name])
			}
			b.WriteString("}")
		}
		first = false
	}
}

// ClassSelector turns list of names ("a, b") into prefixed class selector
// list (".pfx-a, .pfx-b").
func (rs *RuleSet) ClassSelector(names string) string {
	return rs.selectorFor(names, "")
}

// selectorFor prefixes every name in the list and appends suffix to each.
func (rs *RuleSet) selectorFor(names, suffix string) string {
	var parts []string
	for name := range strings.SplitSeq(names, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		parts = append(parts, "."+rs.prefix+name+suffix)
	}
	return strings.Join(parts, ", ")
}

// AddToSelector sets property on prefixed class selector built from names.
func (rs *RuleSet) AddToSelector(names, property, value string) *RuleSet {
	return rs.AddProperty(rs.ClassSelector(names), property, value)
}

// AddDimensionToSelector sets numeric property with unit ("px" when empty),
// zero is written without unit.
func (rs *RuleSet) AddDimensionToSelector(names, property string, value float64, unit string) *RuleSet {
	return rs.AddToSelector(names, property, Dimension(value, unit))
}

// AddTopRightBottomLeftToSelector sets four value shorthand property.
func (rs *RuleSet) AddTopRightBottomLeftToSelector(names, property string, top, right, bottom, left float64, unit string) *RuleSet {
	return rs.AddToSelector(names, property, TopRightBottomLeft(top, right, bottom, left, unit))
}

// AddHeightSpacingToSelector sets height of the spacing divider which
// immediately follows elements with given names.
func (rs *RuleSet) AddHeightSpacingToSelector(names string, height float64, unit string) *RuleSet {
	return rs.AddSpacingToSelector(names, "height", Dimension(height, unit))
}

// AddSpacingToSelector sets arbitrary property of the spacing divider which
// immediately follows elements with given names.
func (rs *RuleSet) AddSpacingToSelector(names, property, value string) *RuleSet {
	return rs.AddProperty(rs.selectorFor(names, " + ."+rs.prefix+"spacing"), property, value)
}

// Dimension formats value with unit, rounding to two decimal places.
func Dimension(value float64, unit string) string {
	if value == 0 || math.IsNaN(value) {
		return "0"
	}
	if unit == "" {
		unit = "px"
	}
	return FormatNumber(value) + unit
}

// TopRightBottomLeft formats four value shorthand.
func TopRightBottomLeft(top, right, bottom, left float64, unit string) string {
	return strings.Join([]string{
		Dimension(top, unit),
		Dimension(right, unit),
		Dimension(bottom, unit),
		Dimension(left, unit),
	}, " ")
}

// FormatNumber writes number rounded to two decimals without trailing zeroes.
func FormatNumber(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		// avoid "-0"
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
