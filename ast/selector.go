package ast

import "github.com/lukehoban/sass/span"

// Package-level selector AST, used both by StyleRule.Selector (stored as
// raw Interpolation text, re-parsed lazily per spec.md's "re-parsable"
// almost-any-value contract) and by the standalone SelectorParser
// (spec.md §4.7) which produces a fully structured SelectorList.

// Combinator is the relationship between two compound selectors in a
// complex selector.
type Combinator int

const (
	Descendant Combinator = iota // implicit, whitespace only
	Child                        // >
	NextSibling                  // +
	SubsequentSibling            // ~
)

// SimpleSelectorKind discriminates the simple-selector variants of
// spec.md §4.7.
type SimpleSelectorKind int

const (
	UniversalSelector SimpleSelectorKind = iota
	TypeSelector
	ClassSelector
	IDSelector
	PlaceholderSelectorKind
	ParentSelectorKind // `&` with optional suffix
	AttributeSelectorKind
	PseudoSelectorKind
)

// AttributeOperator enumerates `[attr op val]` operators.
type AttributeOperator int

const (
	AttrExists AttributeOperator = iota // [attr], no operator
	AttrEquals
	AttrIncludes    // ~=
	AttrDashMatch   // |=
	AttrPrefixMatch // ^=
	AttrSuffixMatch // $=
	AttrSubstring   // *=
)

// SimpleSelector is one atomic piece of a CompoundSelector.
type SimpleSelector struct {
	base
	Kind      SimpleSelectorKind
	Namespace string // for TypeSelector/AttributeSelectorKind: "*|E", "ns|E"
	Name      string // tag name, class name, id, placeholder name, attribute name

	// ParentSelectorKind
	Suffix string // text immediately following `&`, e.g. "&-foo" -> Suffix "-foo"

	// AttributeSelectorKind
	Operator      AttributeOperator
	Value         string
	CaseSensitive bool
	HasCaseModifier bool

	// PseudoSelectorKind
	IsClass    bool // ':' (true) vs '::' (false)
	Argument   string         // raw, unparsed argument text (e.g. "2n+1", "en-US")
	Selectors  *SelectorList  // for :not()/:is()/:matches()/:has()/:where() and friends
}

// CompoundSelector is a sequence of SimpleSelectors with no combinator
// between them (e.g. `div.foo#bar`).
type CompoundSelector struct {
	base
	Simple []*SimpleSelector
}

// ComplexSelectorComponent pairs a CompoundSelector with the Combinator
// that precedes it (Descendant for the first component).
type ComplexSelectorComponent struct {
	Combinator Combinator
	Selector   *CompoundSelector
}

// ComplexSelector is a combinator-joined sequence of compound selectors
// (e.g. `div > .foo ~ #bar`).
type ComplexSelector struct {
	base
	Components []ComplexSelectorComponent
	// LineBreak records whether a newline preceded this selector in the
	// source, used by the indented dialect's multi-line selector lists.
	LineBreak bool
}

// SelectorList is a comma-separated list of ComplexSelectors.
type SelectorList struct {
	base
	Components []*ComplexSelector
}

// NewSimpleSelector is a convenience constructor.
func NewSimpleSelector(sp span.Span, kind SimpleSelectorKind) *SimpleSelector {
	return &SimpleSelector{base: base{SourceSpan: sp}, Kind: kind}
}

// NewCompoundSelector is a convenience constructor.
func NewCompoundSelector(sp span.Span, simple []*SimpleSelector) *CompoundSelector {
	return &CompoundSelector{base: base{SourceSpan: sp}, Simple: simple}
}

// NewComplexSelector is a convenience constructor.
func NewComplexSelector(sp span.Span, components []ComplexSelectorComponent, lineBreak bool) *ComplexSelector {
	return &ComplexSelector{base: base{SourceSpan: sp}, Components: components, LineBreak: lineBreak}
}

// NewSelectorList is a convenience constructor.
func NewSelectorList(sp span.Span, components []*ComplexSelector) *SelectorList {
	return &SelectorList{base: base{SourceSpan: sp}, Components: components}
}
