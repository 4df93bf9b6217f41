package ast

import "github.com/lukehoban/sass/span"

// Argument is a single parameter in an ArgumentDeclaration.
type Argument struct {
	Name    string
	Default Expression // nil if no default
}

// ArgumentDeclaration is the `($name, $name: default, $rest...)` parameter
// list of a function/mixin signature.
//
// spec.md §3 invariant: unique positional parameter names; optional rest
// parameter.
type ArgumentDeclaration struct {
	base
	Arguments []Argument
	RestArg   string // "" if no rest parameter
}

// NamedArgument is one `$name: value` pair in an ArgumentInvocation.
type NamedArgument struct {
	Name  string
	Value Expression
}

// ArgumentInvocation is the parsed argument list of a function/mixin/
// include call: positional, then named, then an optional rest expression,
// then an optional keyword-rest expression (spec.md §4.5).
type ArgumentInvocation struct {
	base
	Positional []Expression
	Named      []NamedArgument
	Rest       Expression // nil if absent
	KeywordRest Expression // nil if absent
}

// IsEmpty reports whether the invocation has no arguments at all.
func (a *ArgumentInvocation) IsEmpty() bool {
	return a != nil && len(a.Positional) == 0 && len(a.Named) == 0 && a.Rest == nil && a.KeywordRest == nil
}

// ConfiguredVariable is one `$name: value [!default]` entry in a `@use`/
// `@forward ... with (...)` configuration list.
type ConfiguredVariable struct {
	base
	Name         string
	Value        Expression
	HasDefault   bool
}

// SupportsCondition is implemented by every `@supports` condition variant.
type SupportsCondition interface {
	Node
	supportsConditionNode()
}

// SupportsNegation is `not <condition>`.
type SupportsNegation struct {
	base
	Condition SupportsCondition
}

func (*SupportsNegation) supportsConditionNode() {}

// SupportsOperator is `and` or `or` joining a SupportsOperation's clauses.
type SupportsOperator int

const (
	SupportsAnd SupportsOperator = iota
	SupportsOr
)

// SupportsOperation is `<condition> (and|or <condition>)+`.
type SupportsOperation struct {
	base
	Operator SupportsOperator
	Left, Right SupportsCondition
}

func (*SupportsOperation) supportsConditionNode() {}

// SupportsInterpolation is a bare `#{...}` used directly as a condition.
type SupportsInterpolation struct {
	base
	Value *Interpolation
}

func (*SupportsInterpolation) supportsConditionNode() {}

// SupportsDeclaration is `(<property>: <value>)`.
type SupportsDeclaration struct {
	base
	Name  *Interpolation
	Value Expression
}

func (*SupportsDeclaration) supportsConditionNode() {}

// SupportsFunction is `<name>(<args>)` treated as an opaque supported
// feature test (e.g. `selector(...)`).
type SupportsFunction struct {
	base
	Name  *Interpolation
	Value *Interpolation
}

func (*SupportsFunction) supportsConditionNode() {}

// SupportsAnything is the fallback: raw almost-any-value content inside
// parens that didn't parse as a declaration (spec.md §5 speculative path
// 3: "@supports (Expression ':' Expression) vs (InterpolatedAnyValue)").
type SupportsAnything struct {
	base
	Contents *Interpolation
}

func (*SupportsAnything) supportsConditionNode() {}

// CssMediaQueryModifier is `not`/`only` prefixing a media type.
type CssMediaQueryModifier int

const (
	NoModifier CssMediaQueryModifier = iota
	ModifierNot
	ModifierOnly
)

// CssMediaQuery is one query of a `@media`/`@import ... <media-query-list>`
// comma list (spec.md §4.7 MediaQueryParser).
type CssMediaQuery struct {
	base
	Modifier   CssMediaQueryModifier
	Type       string // "" if this query has no explicit type (starts with a feature)
	Conditions []string // raw "<in-parens>" feature texts, ANDed/ORed per Conjunction
	Conjunction bool    // true = joined with "and", false = joined with "or" (never mixed)
}

// NewArgumentDeclaration is a convenience constructor used by tests.
func NewArgumentDeclaration(sp span.Span, args []Argument, rest string) *ArgumentDeclaration {
	return &ArgumentDeclaration{base: base{SourceSpan: sp}, Arguments: args, RestArg: rest}
}

// NewArgumentInvocation is a convenience constructor.
func NewArgumentInvocation(sp span.Span, positional []Expression, named []NamedArgument, rest, keywordRest Expression) *ArgumentInvocation {
	return &ArgumentInvocation{base: base{SourceSpan: sp}, Positional: positional, Named: named, Rest: rest, KeywordRest: keywordRest}
}

// NewConfiguredVariable is a convenience constructor.
func NewConfiguredVariable(sp span.Span, name string, value Expression, hasDefault bool) *ConfiguredVariable {
	return &ConfiguredVariable{base: base{SourceSpan: sp}, Name: name, Value: value, HasDefault: hasDefault}
}

// NewSupportsNegation is a convenience constructor.
func NewSupportsNegation(sp span.Span, cond SupportsCondition) *SupportsNegation {
	return &SupportsNegation{base: base{SourceSpan: sp}, Condition: cond}
}

// NewSupportsOperation is a convenience constructor.
func NewSupportsOperation(sp span.Span, op SupportsOperator, left, right SupportsCondition) *SupportsOperation {
	return &SupportsOperation{base: base{SourceSpan: sp}, Operator: op, Left: left, Right: right}
}

// NewSupportsInterpolation is a convenience constructor.
func NewSupportsInterpolation(sp span.Span, value *Interpolation) *SupportsInterpolation {
	return &SupportsInterpolation{base: base{SourceSpan: sp}, Value: value}
}

// NewSupportsDeclaration is a convenience constructor.
func NewSupportsDeclaration(sp span.Span, name *Interpolation, value Expression) *SupportsDeclaration {
	return &SupportsDeclaration{base: base{SourceSpan: sp}, Name: name, Value: value}
}

// NewSupportsFunction is a convenience constructor.
func NewSupportsFunction(sp span.Span, name, value *Interpolation) *SupportsFunction {
	return &SupportsFunction{base: base{SourceSpan: sp}, Name: name, Value: value}
}

// NewSupportsAnything is a convenience constructor.
func NewSupportsAnything(sp span.Span, contents *Interpolation) *SupportsAnything {
	return &SupportsAnything{base: base{SourceSpan: sp}, Contents: contents}
}

// NewCssMediaQuery is a convenience constructor.
func NewCssMediaQuery(sp span.Span, modifier CssMediaQueryModifier, typ string, conditions []string, conjunction bool) *CssMediaQuery {
	return &CssMediaQuery{base: base{SourceSpan: sp}, Modifier: modifier, Type: typ, Conditions: conditions, Conjunction: conjunction}
}
