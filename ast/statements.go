package ast

import "github.com/lukehoban/sass/span"

// Stylesheet is the root of every parse. spec.md §3 invariant: PlainCSS =
// true forbids Sass-only nodes anywhere in the tree.
type Stylesheet struct {
	base
	Statements []Statement
	PlainCSS   bool
	URL        string
}

func (*Stylesheet) statementNode() {}

// StyleRule is a selector plus a block of child statements.
// spec.md §3 invariant: an empty child list in the indented dialect
// triggers a warning but is valid.
type StyleRule struct {
	base
	Selector *Interpolation // raw text, lazily re-parsable via ParseSelector
	Children []Statement
}

func (*StyleRule) statementNode() {}

// Declaration is a `property: value` pair, optionally with nested
// children (the `a { b: c { d: e } }` nested-property shorthand).
//
// spec.md §8 Testable Property 5: a Declaration whose name's initial
// plain text starts with "--" uses the custom-property value path.
type Declaration struct {
	base
	Name     *Interpolation
	Value    Expression // nil if this declaration has only nested Children
	Children []Statement
}

func (*Declaration) statementNode() {}

// IsCustomProperty reports whether this declaration is a `--custom-prop`
// declaration (spec.md §8 property 5).
func (d *Declaration) IsCustomProperty() bool {
	text, plain := d.Name.AsPlain()
	return plain && len(text) >= 2 && text[0] == '-' && text[1] == '-'
}

// VariableDeclaration is `$name: value [!default] [!global]`.
// spec.md §4.5: !default/!global may appear in either order; !global on a
// namespaced variable is an error; duplicate flags warn.
type VariableDeclaration struct {
	base
	Namespace string
	Name      string
	Value     Expression
	Default   bool
	Global    bool
}

func (*VariableDeclaration) statementNode() {}

// AtRule is the generic fallback for at-rules with no dedicated node type
// (spec.md §4.5 "unknown_at_rule").
type AtRule struct {
	base
	Name     *Interpolation
	Value    *Interpolation // nil if the rule has no value payload
	Children []Statement    // nil if the rule has no block
}

func (*AtRule) statementNode() {}

// AtRootQuery is the parsed `with:`/`without:` clause of `@at-root`.
type AtRootQuery struct {
	base
	Include bool // true = "with", false = "without"
	Names   []string
}

// AtRootRule is `@at-root [query] { ... }` or `@at-root <style-rule>`.
type AtRootRule struct {
	base
	Query    *AtRootQuery // nil if no query clause
	Children []Statement
}

func (*AtRootRule) statementNode() {}

// MediaRule is `@media <query-list> { ... }`.
type MediaRule struct {
	base
	Query    *Interpolation // raw text; structured form obtainable via ParseMediaQueryList
	Children []Statement
}

func (*MediaRule) statementNode() {}

// SupportsRule is `@supports <condition> { ... }`.
type SupportsRule struct {
	base
	Condition SupportsCondition
	Children  []Statement
}

func (*SupportsRule) statementNode() {}

// IfClause is one `@if`/`@else if` branch.
type IfClause struct {
	Condition Expression // nil for a bare trailing `@else`
	Children  []Statement
}

// IfRule is `@if ... @else if ... @else ...`.
type IfRule struct {
	base
	Clauses []IfClause
}

func (*IfRule) statementNode() {}

// EachRule is `@each $a, $b in <expr> { ... }`.
type EachRule struct {
	base
	Variables []string
	List      Expression
	Children  []Statement
}

func (*EachRule) statementNode() {}

// ForRule is `@for $i from <expr> to|through <expr> { ... }`.
type ForRule struct {
	base
	Variable  string
	From, To  Expression
	Exclusive bool // true for "to", false for "through"
	Children  []Statement
}

func (*ForRule) statementNode() {}

// WhileRule is `@while <expr> { ... }`.
type WhileRule struct {
	base
	Condition Expression
	Children  []Statement
}

func (*WhileRule) statementNode() {}

// FunctionRule is `@function <name>(<args>) { ... }`.
// spec.md §3 invariant: the normalized name must not collide with the
// reserved global-function names.
type FunctionRule struct {
	base
	Name      string
	Arguments *ArgumentDeclaration
	Children  []Statement
}

func (*FunctionRule) statementNode() {}

// MixinRule is `@mixin <name>[(<args>)] { ... }`.
type MixinRule struct {
	base
	Name      string
	Arguments *ArgumentDeclaration // nil if the mixin takes no parens at all
	HasContent bool                // true if a `@content` rule is a direct child of the body; one nested inside another statement (e.g. an `@if`) is not detected
	Children  []Statement
}

func (*MixinRule) statementNode() {}

// ContentBlock is the `{ ... }` passed along with `@include foo { ... }`.
type ContentBlock struct {
	base
	Arguments *ArgumentDeclaration // parameters declared via `using (...)`
	Children  []Statement
}

// IncludeRule is `@include <name>[(<args>)] [using (<params>)] [{ ... }]`.
type IncludeRule struct {
	base
	Namespace string
	Name      string
	Arguments *ArgumentInvocation
	Content   *ContentBlock // nil if no trailing content block
}

func (*IncludeRule) statementNode() {}

// ContentRule is `@content[(<args>)]`.
type ContentRule struct {
	base
	Arguments *ArgumentInvocation
}

func (*ContentRule) statementNode() {}

// StaticImport is a plain CSS `@import "url.css"` (or any import target
// that isn't eligible for Sass module loading: has a media query, a
// `.css` extension, or an explicit `url(...)`).
type StaticImport struct {
	base
	URL   *Interpolation
	Media *Interpolation // nil if no media query
}

// DynamicImport is a Sass-module `@import "foo"` target.
type DynamicImport struct {
	base
	URL string
}

// ImportRule is `@import <target>, <target>, ...`.
type ImportRule struct {
	base
	Imports []Node // each is *StaticImport or *DynamicImport
}

func (*ImportRule) statementNode() {}

// UseRule is `@use "url" [as <namespace>|*] [with (...)]`.
// spec.md §5 speculative path 5: the namespace-from-URL parse is validated
// by recursively invoking the identifier parser.
type UseRule struct {
	base
	URL          string
	Namespace    string // "" if `as *`
	NamespaceIsWildcard bool
	Configuration []ConfiguredVariable
}

func (*UseRule) statementNode() {}

// ForwardRule is `@forward "url" [as <prefix>-*] [show/hide ...] [with (...)]`.
type ForwardRule struct {
	base
	URL           string
	Prefix        string
	ShownMembers  []string // nil if no "show" clause
	HiddenMembers []string // nil if no "hide" clause
	Configuration []ConfiguredVariable
}

func (*ForwardRule) statementNode() {}

// ReturnRule is `@return <expr>`.
type ReturnRule struct {
	base
	Value Expression
}

func (*ReturnRule) statementNode() {}

// DebugRule is `@debug <expr>`.
type DebugRule struct {
	base
	Value Expression
}

func (*DebugRule) statementNode() {}

// WarnRule is `@warn <expr>`.
type WarnRule struct {
	base
	Value Expression
}

func (*WarnRule) statementNode() {}

// ErrorRule is `@error <expr>`.
type ErrorRule struct {
	base
	Value Expression
}

func (*ErrorRule) statementNode() {}

// ExtendRule is `@extend <selector> [!optional]`.
type ExtendRule struct {
	base
	Selector *Interpolation
	Optional bool
}

func (*ExtendRule) statementNode() {}

// SilentComment is a `// ...` comment (SCSS/Indented only).
type SilentComment struct {
	base
	Text string
}

func (*SilentComment) statementNode() {}

// LoudComment is a `/* ... */` comment preserved in the output.
type LoudComment struct {
	base
	Text *Interpolation
}

func (*LoudComment) statementNode() {}

// NewStylesheet is a convenience constructor.
func NewStylesheet(sp span.Span, stmts []Statement, plainCSS bool, url string) *Stylesheet {
	return &Stylesheet{base: base{SourceSpan: sp}, Statements: stmts, PlainCSS: plainCSS, URL: url}
}

// NewStyleRule is a convenience constructor.
func NewStyleRule(sp span.Span, selector *Interpolation, children []Statement) *StyleRule {
	return &StyleRule{base: base{SourceSpan: sp}, Selector: selector, Children: children}
}

// NewDeclaration is a convenience constructor.
func NewDeclaration(sp span.Span, name *Interpolation, value Expression, children []Statement) *Declaration {
	return &Declaration{base: base{SourceSpan: sp}, Name: name, Value: value, Children: children}
}

// NewVariableDeclaration is a convenience constructor.
func NewVariableDeclaration(sp span.Span, namespace, name string, value Expression, isDefault, isGlobal bool) *VariableDeclaration {
	return &VariableDeclaration{base: base{SourceSpan: sp}, Namespace: namespace, Name: name, Value: value, Default: isDefault, Global: isGlobal}
}

// NewAtRule is a convenience constructor.
func NewAtRule(sp span.Span, name, value *Interpolation, children []Statement) *AtRule {
	return &AtRule{base: base{SourceSpan: sp}, Name: name, Value: value, Children: children}
}

// NewAtRootQuery is a convenience constructor.
func NewAtRootQuery(sp span.Span, include bool, names []string) *AtRootQuery {
	return &AtRootQuery{base: base{SourceSpan: sp}, Include: include, Names: names}
}

// NewAtRootRule is a convenience constructor.
func NewAtRootRule(sp span.Span, query *AtRootQuery, children []Statement) *AtRootRule {
	return &AtRootRule{base: base{SourceSpan: sp}, Query: query, Children: children}
}

// NewMediaRule is a convenience constructor.
func NewMediaRule(sp span.Span, query *Interpolation, children []Statement) *MediaRule {
	return &MediaRule{base: base{SourceSpan: sp}, Query: query, Children: children}
}

// NewSupportsRule is a convenience constructor.
func NewSupportsRule(sp span.Span, cond SupportsCondition, children []Statement) *SupportsRule {
	return &SupportsRule{base: base{SourceSpan: sp}, Condition: cond, Children: children}
}

// NewIfRule is a convenience constructor.
func NewIfRule(sp span.Span, clauses []IfClause) *IfRule {
	return &IfRule{base: base{SourceSpan: sp}, Clauses: clauses}
}

// NewEachRule is a convenience constructor.
func NewEachRule(sp span.Span, vars []string, list Expression, children []Statement) *EachRule {
	return &EachRule{base: base{SourceSpan: sp}, Variables: vars, List: list, Children: children}
}

// NewForRule is a convenience constructor.
func NewForRule(sp span.Span, variable string, from, to Expression, exclusive bool, children []Statement) *ForRule {
	return &ForRule{base: base{SourceSpan: sp}, Variable: variable, From: from, To: to, Exclusive: exclusive, Children: children}
}

// NewWhileRule is a convenience constructor.
func NewWhileRule(sp span.Span, cond Expression, children []Statement) *WhileRule {
	return &WhileRule{base: base{SourceSpan: sp}, Condition: cond, Children: children}
}

// NewFunctionRule is a convenience constructor.
func NewFunctionRule(sp span.Span, name string, args *ArgumentDeclaration, children []Statement) *FunctionRule {
	return &FunctionRule{base: base{SourceSpan: sp}, Name: name, Arguments: args, Children: children}
}

// NewMixinRule is a convenience constructor.
func NewMixinRule(sp span.Span, name string, args *ArgumentDeclaration, hasContent bool, children []Statement) *MixinRule {
	return &MixinRule{base: base{SourceSpan: sp}, Name: name, Arguments: args, HasContent: hasContent, Children: children}
}

// NewContentBlock is a convenience constructor.
func NewContentBlock(sp span.Span, args *ArgumentDeclaration, children []Statement) *ContentBlock {
	return &ContentBlock{base: base{SourceSpan: sp}, Arguments: args, Children: children}
}

// NewIncludeRule is a convenience constructor.
func NewIncludeRule(sp span.Span, namespace, name string, args *ArgumentInvocation, content *ContentBlock) *IncludeRule {
	return &IncludeRule{base: base{SourceSpan: sp}, Namespace: namespace, Name: name, Arguments: args, Content: content}
}

// NewContentRule is a convenience constructor.
func NewContentRule(sp span.Span, args *ArgumentInvocation) *ContentRule {
	return &ContentRule{base: base{SourceSpan: sp}, Arguments: args}
}

// NewStaticImport is a convenience constructor.
func NewStaticImport(sp span.Span, url, media *Interpolation) *StaticImport {
	return &StaticImport{base: base{SourceSpan: sp}, URL: url, Media: media}
}

// NewDynamicImport is a convenience constructor.
func NewDynamicImport(sp span.Span, url string) *DynamicImport {
	return &DynamicImport{base: base{SourceSpan: sp}, URL: url}
}

// NewImportRule is a convenience constructor.
func NewImportRule(sp span.Span, imports []Node) *ImportRule {
	return &ImportRule{base: base{SourceSpan: sp}, Imports: imports}
}

// NewUseRule is a convenience constructor.
func NewUseRule(sp span.Span, url, namespace string, wildcard bool, config []ConfiguredVariable) *UseRule {
	return &UseRule{base: base{SourceSpan: sp}, URL: url, Namespace: namespace, NamespaceIsWildcard: wildcard, Configuration: config}
}

// NewForwardRule is a convenience constructor.
func NewForwardRule(sp span.Span, url, prefix string, shown, hidden []string, config []ConfiguredVariable) *ForwardRule {
	return &ForwardRule{base: base{SourceSpan: sp}, URL: url, Prefix: prefix, ShownMembers: shown, HiddenMembers: hidden, Configuration: config}
}

// NewReturnRule is a convenience constructor.
func NewReturnRule(sp span.Span, value Expression) *ReturnRule {
	return &ReturnRule{base: base{SourceSpan: sp}, Value: value}
}

// NewDebugRule is a convenience constructor.
func NewDebugRule(sp span.Span, value Expression) *DebugRule {
	return &DebugRule{base: base{SourceSpan: sp}, Value: value}
}

// NewWarnRule is a convenience constructor.
func NewWarnRule(sp span.Span, value Expression) *WarnRule {
	return &WarnRule{base: base{SourceSpan: sp}, Value: value}
}

// NewErrorRule is a convenience constructor.
func NewErrorRule(sp span.Span, value Expression) *ErrorRule {
	return &ErrorRule{base: base{SourceSpan: sp}, Value: value}
}

// NewExtendRule is a convenience constructor.
func NewExtendRule(sp span.Span, selector *Interpolation, optional bool) *ExtendRule {
	return &ExtendRule{base: base{SourceSpan: sp}, Selector: selector, Optional: optional}
}

// NewSilentComment is a convenience constructor.
func NewSilentComment(sp span.Span, text string) *SilentComment {
	return &SilentComment{base: base{SourceSpan: sp}, Text: text}
}

// NewLoudComment is a convenience constructor.
func NewLoudComment(sp span.Span, text *Interpolation) *LoudComment {
	return &LoudComment{base: base{SourceSpan: sp}, Text: text}
}
