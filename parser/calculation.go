package parser

import (
	"strings"

	"github.com/lukehoban/sass/ast"
	"github.com/lukehoban/sass/scanner"
)

// spec.md §4.4 "Calculations": calc()/min()/max()/clamp() are parsed with a
// stricter sub-grammar than ordinary SassScript -- +/- require surrounding
// whitespace, and Sass-only constructs (variables, "and"/"or", maps) aren't
// allowed. min() and max() fall back to an ordinary function call if the
// stricter grammar fails to parse; calc() and clamp() do not.

// tryCalculationBody parses "name(" already confirmed present at the
// cursor (name is the lower-cased function name). It reports ok=false
// (with the scanner rewound) when name is "min"/"max" and the calculation
// grammar failed, signalling the caller to retry as a plain function call.
func (p *Parser) tryCalculationBody(nameStart scanner.State, name string) (*ast.CalculationExpression, bool, error) {
	backtrack := p.scan.Mark()
	if err := p.scan.ExpectChar('('); err != nil {
		return nil, false, err
	}
	args, err := p.calculationArguments(name)
	if err != nil {
		p.scan.Reset(backtrack)
		if name == "min" || name == "max" {
			return nil, false, nil
		}
		return nil, false, err
	}
	return ast.NewCalculation(p.spanFrom(nameStart), name, args), true, nil
}

func (p *Parser) calculationArguments(name string) ([]ast.Expression, error) {
	var args []ast.Expression
	p.skipInlineSpace()
	first, err := p.calculationValue()
	if err != nil {
		return nil, err
	}
	args = append(args, first)
	p.skipInlineSpace()
	for p.scan.ScanChar(',') {
		p.skipInlineSpace()
		next, err := p.calculationValue()
		if err != nil {
			return nil, err
		}
		args = append(args, next)
		p.skipInlineSpace()
	}
	if err := p.scan.ExpectChar(')'); err != nil {
		return nil, err
	}
	if name == "calc" && len(args) != 1 {
		return nil, p.errorf("calc() requires exactly one argument.", p.pointSpan())
	}
	return args, nil
}

// skipInlineSpace skips plain whitespace (no comments: the calculation
// grammar doesn't need Sass comment handling) and reports whether it
// consumed any.
func (p *Parser) skipInlineSpace() bool {
	any := false
	for {
		r, ok := p.scan.Peek(0)
		if !ok || !isSpaceRune(r) {
			break
		}
		p.scan.Read()
		any = true
	}
	return any
}

// calculationValue is the additive level of the calculation grammar:
// "+"/"-" require whitespace on both sides to be treated as operators.
func (p *Parser) calculationValue() (ast.Expression, error) {
	st := p.scan.Mark()
	left, err := p.calculationProduct()
	if err != nil {
		return nil, err
	}
	for {
		mark := p.scan.Mark()
		spaceBefore := p.skipInlineSpace()
		r, ok := p.scan.Peek(0)
		if !ok || (r != '+' && r != '-') {
			p.scan.Reset(mark)
			break
		}
		if !spaceBefore {
			return nil, p.errorf("expected whitespace before operator.", p.pointSpan())
		}
		p.scan.Read()
		if !p.skipInlineSpace() {
			return nil, p.errorf("expected whitespace after operator.", p.pointSpan())
		}
		right, err := p.calculationProduct()
		if err != nil {
			return nil, err
		}
		op := ast.Plus
		if r == '-' {
			op = ast.Minus
		}
		left = ast.NewBinaryOperation(p.spanFrom(st), op, left, right, false)
	}
	return left, nil
}

// calculationProduct is the multiplicative level: "*"/"/" need no
// surrounding whitespace.
func (p *Parser) calculationProduct() (ast.Expression, error) {
	st := p.scan.Mark()
	left, err := p.calculationSingle()
	if err != nil {
		return nil, err
	}
	for {
		mark := p.scan.Mark()
		p.skipInlineSpace()
		r, ok := p.scan.Peek(0)
		if !ok || (r != '*' && r != '/') {
			p.scan.Reset(mark)
			break
		}
		p.scan.Read()
		p.skipInlineSpace()
		right, err := p.calculationSingle()
		if err != nil {
			return nil, err
		}
		op := ast.Times
		if r == '/' {
			op = ast.Divide
		}
		left = ast.NewBinaryOperation(p.spanFrom(st), op, left, right, false)
	}
	return left, nil
}

// calculationSingle parses one calculation operand: a parenthesized
// sub-expression, a nested calc/min/max/clamp call, an opaque function call
// (e.g. var()/env()), or a number with an optional unit.
func (p *Parser) calculationSingle() (ast.Expression, error) {
	p.skipInlineSpace()
	st := p.scan.Mark()
	r, ok := p.scan.Peek(0)
	if !ok {
		return nil, p.errorf("Expected expression.", p.pointSpan())
	}
	if r == '(' {
		p.scan.Read()
		p.skipInlineSpace()
		inner, err := p.calculationValue()
		if err != nil {
			return nil, err
		}
		p.skipInlineSpace()
		if err := p.scan.ExpectChar(')'); err != nil {
			return nil, err
		}
		return ast.NewParenthesized(p.spanFrom(st), inner), nil
	}
	if p.scan.LookingAtNumber() {
		num, err := p.scan.ReadNumber()
		if err != nil {
			return nil, err
		}
		unit := p.tryUnit()
		return ast.NewNumber(p.spanFrom(st), num.Value, unit), nil
	}
	if p.scan.LookingAtIdentifier() {
		name, err := p.scan.ReadIdentifier(scanner.IdentifierOptions{})
		if err != nil {
			return nil, err
		}
		if !p.scan.MatchesString("(") {
			return nil, p.errorf("expected \"(\".", p.pointSpan())
		}
		lower := strings.ToLower(name)
		if lower == "calc" || lower == "min" || lower == "max" || lower == "clamp" {
			calcExpr, ok, err := p.tryCalculationBody(st, lower)
			if err != nil {
				return nil, err
			}
			if ok {
				return calcExpr, nil
			}
		}
		args, err := p.parseArgumentInvocation()
		if err != nil {
			return nil, err
		}
		return ast.NewFunction(p.spanFrom(st), "", name, args), nil
	}
	return nil, p.errorf("Expected expression.", p.pointSpan())
}
