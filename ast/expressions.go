package ast

import "github.com/lukehoban/sass/span"

// ListSeparator is the separator of a ListExpression or MapExpression.
// spec.md §3: separator ∈ {comma, space, undecided}.
type ListSeparator int

const (
	UndecidedSeparator ListSeparator = iota
	CommaSeparator
	SpaceSeparator
)

// NumberExpression is a numeric literal with an optional unit.
// spec.md §3/§8 Testable property 3: parsed value must equal
// strconv.ParseFloat's result for the same literal.
type NumberExpression struct {
	base
	Value float64
	Unit  string // "" if unitless
}

func (*NumberExpression) expressionNode() {}

// ColorExpression is a literal color. spec.md §4.4 Colors: 3/4/6/8-digit
// hex forms, or a named color resolved later by the evaluator (this
// parser only records the literal text and parsed RGBA where known from
// hex digits; named colors are represented as a plain FunctionExpression-
// free identifier and resolved out of scope, per spec.md §1).
type ColorExpression struct {
	base
	R, G, B    uint8
	A          float64 // 0..1
	Original   string  // original "#rgb"/"#rrggbbaa" text, preserved for 4/8-digit spans
	HasExplicitAlpha bool
}

func (*ColorExpression) expressionNode() {}

// BooleanExpression is a literal `true`/`false`.
type BooleanExpression struct {
	base
	Value bool
}

func (*BooleanExpression) expressionNode() {}

// NullExpression is the literal `null`.
type NullExpression struct {
	base
}

func (*NullExpression) expressionNode() {}

// StringExpression is a quoted or unquoted string, with an Interpolation
// payload so embedded #{...} holes are representable even in an unquoted
// identifier-like string (spec.md §3).
type StringExpression struct {
	base
	Text        *Interpolation
	HasQuotes   bool
}

func (*StringExpression) expressionNode() {}

// PlainText returns the string's literal text if it has no interpolation
// holes.
func (s *StringExpression) PlainText() (string, bool) {
	return s.Text.AsPlain()
}

// ListExpression is a comma-, space-, or undecided-separated list,
// optionally bracketed (spec.md §4.4 "Maps vs. lists").
type ListExpression struct {
	base
	Contents  []Expression
	Separator ListSeparator
	Bracketed bool
}

func (*ListExpression) expressionNode() {}

// MapPair is one key/value pair of a MapExpression.
type MapPair struct {
	Key   Expression
	Value Expression
}

// MapExpression is an ordered `(key: value, ...)` collection.
type MapExpression struct {
	base
	Pairs []MapPair
}

func (*MapExpression) expressionNode() {}

// BinaryOperator enumerates the operators at precedence levels 1-6 of
// spec.md §4.4's table.
type BinaryOperator int

const (
	Or BinaryOperator = iota
	And
	Equals
	NotEquals
	GreaterThan
	GreaterThanOrEquals
	LessThan
	LessThanOrEquals
	Plus
	Minus
	Times
	Divide
	Modulo
	SingleEquals // Microsoft-style `=`, only when single_equals option is set
)

// BinaryOperationExpression is a binary SassScript operation.
// spec.md §4.4 "Slash-as-separator heuristic": AllowsSlash is true iff this
// is a Divide expression whose operands were both numeric, unparenthesized,
// and no other operator forced resolution first.
type BinaryOperationExpression struct {
	base
	Operator    BinaryOperator
	Left, Right Expression
	AllowsSlash bool
}

func (*BinaryOperationExpression) expressionNode() {}

// UnaryOperator enumerates the level-7 unary operators.
type UnaryOperator int

const (
	UnaryPlus UnaryOperator = iota
	UnaryMinus
	UnaryDivide
	UnaryNot
)

// UnaryOperationExpression is a unary SassScript operation.
type UnaryOperationExpression struct {
	base
	Operator UnaryOperator
	Operand  Expression
}

func (*UnaryOperationExpression) expressionNode() {}

// VariableExpression references a `$name`, optionally namespaced
// (`namespace.$name`).
type VariableExpression struct {
	base
	Namespace string // "" if unnamespaced
	Name      string
}

func (*VariableExpression) expressionNode() {}

// FunctionExpression is a plain-name function call, optionally namespaced.
type FunctionExpression struct {
	base
	Namespace string
	Name      string
	Arguments *ArgumentInvocation
}

func (*FunctionExpression) expressionNode() {}

// InterpolatedFunctionExpression is a function call whose name itself
// carries interpolation (so it cannot be resolved to a plain Name at
// parse time).
type InterpolatedFunctionExpression struct {
	base
	Name      *Interpolation
	Arguments *ArgumentInvocation
}

func (*InterpolatedFunctionExpression) expressionNode() {}

// IfExpression is the function-call-shaped `if($cond, $if-true, $if-false)`
// special form.
type IfExpression struct {
	base
	Arguments *ArgumentInvocation
}

func (*IfExpression) expressionNode() {}

// CalculationExpression is `calc()`, `min()`, `max()`, or `clamp()`,
// parsed with the stricter calculation sub-grammar of spec.md §4.4.
type CalculationExpression struct {
	base
	Name      string
	Arguments []Expression
}

func (*CalculationExpression) expressionNode() {}

// SelectorExpression is the `&` parent-selector reference used inside an
// expression context (e.g. in a SassScript map value).
type SelectorExpression struct {
	base
}

func (*SelectorExpression) expressionNode() {}

// ParenthesizedExpression preserves an explicit `(...)` grouping, which
// matters for the slash-as-separator heuristic: a parenthesized division
// never gets AllowsSlash.
type ParenthesizedExpression struct {
	base
	Inner Expression
}

func (*ParenthesizedExpression) expressionNode() {}

// UnicodeRangeExpression is a `U+...` unicode-range literal.
type UnicodeRangeExpression struct {
	base
	Text string // original "U+XXXX-YYYY" text
}

func (*UnicodeRangeExpression) expressionNode() {}

// NewNumber is a convenience constructor.
func NewNumber(sp span.Span, value float64, unit string) *NumberExpression {
	return &NumberExpression{base: base{SourceSpan: sp}, Value: value, Unit: unit}
}

// NewColor is a convenience constructor.
func NewColor(sp span.Span, r, g, b uint8, a float64, original string, hasAlpha bool) *ColorExpression {
	return &ColorExpression{base: base{SourceSpan: sp}, R: r, G: g, B: b, A: a, Original: original, HasExplicitAlpha: hasAlpha}
}

// NewBoolean is a convenience constructor.
func NewBoolean(sp span.Span, value bool) *BooleanExpression {
	return &BooleanExpression{base: base{SourceSpan: sp}, Value: value}
}

// NewNull is a convenience constructor.
func NewNull(sp span.Span) *NullExpression { return &NullExpression{base: base{SourceSpan: sp}} }

// NewString is a convenience constructor.
func NewString(sp span.Span, text *Interpolation, hasQuotes bool) *StringExpression {
	return &StringExpression{base: base{SourceSpan: sp}, Text: text, HasQuotes: hasQuotes}
}

// NewList is a convenience constructor.
func NewList(sp span.Span, contents []Expression, sep ListSeparator, bracketed bool) *ListExpression {
	return &ListExpression{base: base{SourceSpan: sp}, Contents: contents, Separator: sep, Bracketed: bracketed}
}

// NewMap is a convenience constructor.
func NewMap(sp span.Span, pairs []MapPair) *MapExpression {
	return &MapExpression{base: base{SourceSpan: sp}, Pairs: pairs}
}

// NewBinaryOperation is a convenience constructor.
func NewBinaryOperation(sp span.Span, op BinaryOperator, left, right Expression, allowsSlash bool) *BinaryOperationExpression {
	return &BinaryOperationExpression{base: base{SourceSpan: sp}, Operator: op, Left: left, Right: right, AllowsSlash: allowsSlash}
}

// NewUnaryOperation is a convenience constructor.
func NewUnaryOperation(sp span.Span, op UnaryOperator, operand Expression) *UnaryOperationExpression {
	return &UnaryOperationExpression{base: base{SourceSpan: sp}, Operator: op, Operand: operand}
}

// NewVariable is a convenience constructor.
func NewVariable(sp span.Span, namespace, name string) *VariableExpression {
	return &VariableExpression{base: base{SourceSpan: sp}, Namespace: namespace, Name: name}
}

// NewFunction is a convenience constructor.
func NewFunction(sp span.Span, namespace, name string, args *ArgumentInvocation) *FunctionExpression {
	return &FunctionExpression{base: base{SourceSpan: sp}, Namespace: namespace, Name: name, Arguments: args}
}

// NewInterpolatedFunction is a convenience constructor.
func NewInterpolatedFunction(sp span.Span, name *Interpolation, args *ArgumentInvocation) *InterpolatedFunctionExpression {
	return &InterpolatedFunctionExpression{base: base{SourceSpan: sp}, Name: name, Arguments: args}
}

// NewIf is a convenience constructor.
func NewIf(sp span.Span, args *ArgumentInvocation) *IfExpression {
	return &IfExpression{base: base{SourceSpan: sp}, Arguments: args}
}

// NewCalculation is a convenience constructor.
func NewCalculation(sp span.Span, name string, args []Expression) *CalculationExpression {
	return &CalculationExpression{base: base{SourceSpan: sp}, Name: name, Arguments: args}
}

// NewSelectorExpression is a convenience constructor.
func NewSelectorExpression(sp span.Span) *SelectorExpression {
	return &SelectorExpression{base: base{SourceSpan: sp}}
}

// NewParenthesized is a convenience constructor.
func NewParenthesized(sp span.Span, inner Expression) *ParenthesizedExpression {
	return &ParenthesizedExpression{base: base{SourceSpan: sp}, Inner: inner}
}

// NewUnicodeRange is a convenience constructor.
func NewUnicodeRange(sp span.Span, text string) *UnicodeRangeExpression {
	return &UnicodeRangeExpression{base: base{SourceSpan: sp}, Text: text}
}
