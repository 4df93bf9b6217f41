package ast

import "github.com/lukehoban/sass/span"

// InterpolationItem is either literal text or an embedded Expression hole.
// Exactly one of Text/Expr is set.
type InterpolationItem struct {
	Text string     // set when this item is literal text
	Expr Expression // set when this item is an expression hole
	Item span.Span  // the span of this individual item
}

// IsExpression reports whether this item is an expression hole.
func (i InterpolationItem) IsExpression() bool { return i.Expr != nil }

// Interpolation is a sequence of literal-text and Expression items, used
// anywhere Sass allows #{...} holes inside otherwise textual syntax:
// identifiers, strings, URLs, selectors, media queries, at-rule names.
//
// spec.md §3 invariant: AsPlain is non-nil iff every item is literal text.
type Interpolation struct {
	base
	Items []InterpolationItem
}

// NewInterpolation constructs an Interpolation whose span is sp, as given
// by the caller.
func NewInterpolation(sp span.Span, items []InterpolationItem) *Interpolation {
	return &Interpolation{base: base{SourceSpan: sp}, Items: items}
}

// AsPlain returns the interpolation's literal text and true if every item
// is plain text (no expression holes); otherwise "", false.
func (i *Interpolation) AsPlain() (string, bool) {
	if i == nil {
		return "", true
	}
	var out string
	for _, item := range i.Items {
		if item.IsExpression() {
			return "", false
		}
		out += item.Text
	}
	return out, true
}

// IsPlain reports whether the interpolation has no expression holes.
func (i *Interpolation) IsPlain() bool {
	_, plain := i.AsPlain()
	return plain
}
