package parser

import (
	"strconv"
	"strings"

	"github.com/lukehoban/sass/ast"
	"github.com/lukehoban/sass/logger"
	"github.com/lukehoban/sass/scanner"
)

// spec.md §4.4 C4: the SassScript expression grammar. Grounded on
// lukehoban-browser/css.Parser's recursive-descent parseValue/parseTerm
// shape, generalized from CSS's flat term list to an operator-precedence
// climb over the seven levels spec.md's table lists, plus the
// comma/space list accumulation and slash-as-separator bookkeeping CSS
// never needed.

// exprOptions configures a single expression() call (spec.md §4.4).
type exprOptions struct {
	bracketList  bool               // parse a top-level "[ ... ]" list
	singleEquals bool               // allow Microsoft-style "=" at the top level
	until        func(*Parser) bool // stop (without consuming) when this reports true
}

func (p *Parser) stopExpression(opts exprOptions) bool {
	return opts.until != nil && opts.until(p)
}

// atExpressionEnd reports whether the cursor sits at a character that
// always terminates an expression list, regardless of context.
func (p *Parser) atExpressionEnd() bool {
	r, ok := p.scan.Peek(0)
	if !ok {
		return true
	}
	switch r {
	case ')', ']', '}', ';', ':', '!':
		return true
	}
	return false
}

// skipSpace skips whitespace and comments, reporting whether it consumed
// anything.
func (p *Parser) skipSpace() bool {
	before := p.scan.Position()
	p.scan.SkipWhitespaceWithComments(false)
	return p.scan.Position() != before
}

// scanKeyword consumes kw as a whole identifier token (not a prefix of a
// longer one), used for the word operators "or"/"and"/"not".
func (p *Parser) scanKeyword(kw string) bool {
	st := p.scan.Mark()
	for _, r := range kw {
		if !p.scan.ScanChar(r) {
			p.scan.Reset(st)
			return false
		}
	}
	if r2, ok := p.scan.Peek(0); ok && scanner.IsNameChar(r2) {
		p.scan.Reset(st)
		return false
	}
	return true
}

// expression is the C4 entry point (spec.md §4.4).
func (p *Parser) expression(opts exprOptions) (ast.Expression, error) {
	if opts.bracketList {
		return p.bracketedListExpression(opts)
	}
	return p.commaListExpression(opts)
}

// commaListExpression accumulates the comma-separated live sequence.
func (p *Parser) commaListExpression(opts exprOptions) (ast.Expression, error) {
	st := p.scan.Mark()
	first, err := p.spaceListExpression(opts)
	if err != nil {
		return nil, err
	}
	contents := []ast.Expression{first}
	sawComma := false
	for {
		mark := p.scan.Mark()
		p.scan.SkipWhitespaceWithComments(false)
		if !p.scan.ScanChar(',') {
			p.scan.Reset(mark)
			break
		}
		sawComma = true
		p.scan.SkipWhitespaceWithComments(false)
		if p.stopExpression(opts) || p.atExpressionEnd() {
			break
		}
		item, err := p.spaceListExpression(opts)
		if err != nil {
			return nil, err
		}
		contents = append(contents, item)
	}
	if !sawComma {
		return first, nil
	}
	return ast.NewList(p.spanFrom(st), contents, ast.CommaSeparator, false), nil
}

// spaceListExpression accumulates the whitespace-separated live sequence.
func (p *Parser) spaceListExpression(opts exprOptions) (ast.Expression, error) {
	st := p.scan.Mark()
	first, err := p.singleEqualsExpression(opts)
	if err != nil {
		return nil, err
	}
	contents := []ast.Expression{first}
	for {
		mark := p.scan.Mark()
		if !p.skipSpace() {
			break
		}
		if p.stopExpression(opts) || p.atExpressionEnd() || p.scan.MatchesString(",") || !p.lookingAtExpressionStart() {
			p.scan.Reset(mark)
			break
		}
		item, err := p.singleEqualsExpression(opts)
		if err != nil {
			return nil, err
		}
		contents = append(contents, item)
	}
	if len(contents) == 1 {
		return first, nil
	}
	return ast.NewList(p.spanFrom(st), contents, ast.SpaceSeparator, false), nil
}

// lookingAtExpressionStart reports whether the cursor could begin another
// single-expression operand, used to decide whether a space list continues.
func (p *Parser) lookingAtExpressionStart() bool {
	r, ok := p.scan.Peek(0)
	if !ok {
		return false
	}
	switch r {
	case '(', '[', '$', '&', '"', '\'', '#', '+', '-', '/':
		return true
	}
	return p.scan.LookingAtNumber() || p.scan.LookingAtIdentifier()
}

// singleEqualsExpression optionally wraps an "or"-level expression with the
// Microsoft-style "=" operator (spec.md §4.4 entry-point option).
func (p *Parser) singleEqualsExpression(opts exprOptions) (ast.Expression, error) {
	st := p.scan.Mark()
	left, err := p.orExpression(opts)
	if err != nil {
		return nil, err
	}
	if !opts.singleEquals {
		return left, nil
	}
	mark := p.scan.Mark()
	p.scan.SkipWhitespaceWithComments(false)
	if r, ok := p.scan.Peek(0); !ok || r != '=' {
		p.scan.Reset(mark)
		return left, nil
	}
	if r2, ok2 := p.scan.Peek(1); ok2 && r2 == '=' {
		p.scan.Reset(mark)
		return left, nil
	}
	p.scan.Read()
	p.scan.SkipWhitespaceWithComments(false)
	right, err := p.orExpression(opts)
	if err != nil {
		return nil, err
	}
	return ast.NewBinaryOperation(p.spanFrom(st), ast.SingleEquals, left, right, false), nil
}

func (p *Parser) orExpression(opts exprOptions) (ast.Expression, error) {
	st := p.scan.Mark()
	left, err := p.andExpression(opts)
	if err != nil {
		return nil, err
	}
	for {
		mark := p.scan.Mark()
		p.scan.SkipWhitespaceWithComments(false)
		if !p.scanKeyword("or") {
			p.scan.Reset(mark)
			break
		}
		p.scan.SkipWhitespaceWithComments(false)
		right, err := p.andExpression(opts)
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOperation(p.spanFrom(st), ast.Or, left, right, false)
	}
	return left, nil
}

func (p *Parser) andExpression(opts exprOptions) (ast.Expression, error) {
	st := p.scan.Mark()
	left, err := p.equalityExpression(opts)
	if err != nil {
		return nil, err
	}
	for {
		mark := p.scan.Mark()
		p.scan.SkipWhitespaceWithComments(false)
		if !p.scanKeyword("and") {
			p.scan.Reset(mark)
			break
		}
		p.scan.SkipWhitespaceWithComments(false)
		right, err := p.equalityExpression(opts)
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOperation(p.spanFrom(st), ast.And, left, right, false)
	}
	return left, nil
}

func (p *Parser) equalityExpression(opts exprOptions) (ast.Expression, error) {
	st := p.scan.Mark()
	left, err := p.relationalExpression(opts)
	if err != nil {
		return nil, err
	}
	for {
		mark := p.scan.Mark()
		p.scan.SkipWhitespaceWithComments(false)
		var op ast.BinaryOperator
		switch {
		case p.scan.ScanString("=="):
			op = ast.Equals
		case p.scan.ScanString("!="):
			op = ast.NotEquals
		default:
			p.scan.Reset(mark)
			return left, nil
		}
		p.scan.SkipWhitespaceWithComments(false)
		right, err := p.relationalExpression(opts)
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOperation(p.spanFrom(st), op, left, right, false)
	}
}

func (p *Parser) relationalExpression(opts exprOptions) (ast.Expression, error) {
	st := p.scan.Mark()
	left, err := p.additiveExpression(opts)
	if err != nil {
		return nil, err
	}
	for {
		mark := p.scan.Mark()
		p.scan.SkipWhitespaceWithComments(false)
		var op ast.BinaryOperator
		switch {
		case p.scan.ScanString("<="):
			op = ast.LessThanOrEquals
		case p.scan.ScanString(">="):
			op = ast.GreaterThanOrEquals
		case p.scan.ScanString("<"):
			op = ast.LessThan
		case p.scan.ScanString(">"):
			op = ast.GreaterThan
		default:
			p.scan.Reset(mark)
			return left, nil
		}
		p.scan.SkipWhitespaceWithComments(false)
		right, err := p.additiveExpression(opts)
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOperation(p.spanFrom(st), op, left, right, false)
	}
}

// additiveExpression implements level 5, including the unary +/-
// disambiguation (spec.md §4.4): a '-' with whitespace before it and none
// after starts a new space-list item rather than subtracting.
func (p *Parser) additiveExpression(opts exprOptions) (ast.Expression, error) {
	st := p.scan.Mark()
	left, err := p.multiplicativeExpression(opts)
	if err != nil {
		return nil, err
	}
loop:
	for {
		mark := p.scan.Mark()
		spaceBefore := p.skipSpace()
		r, ok := p.scan.Peek(0)
		if !ok || (r != '+' && r != '-') {
			p.scan.Reset(mark)
			break
		}
		switch r {
		case '+':
			p.scan.Read()
			p.scan.SkipWhitespaceWithComments(false)
			right, err := p.multiplicativeExpression(opts)
			if err != nil {
				return nil, err
			}
			left = ast.NewBinaryOperation(p.spanFrom(st), ast.Plus, left, right, false)
		case '-':
			p.scan.Read()
			spaceAfter := false
			if r2, ok2 := p.scan.Peek(0); ok2 && isSpaceRune(r2) {
				spaceAfter = true
			}
			if spaceBefore && !spaceAfter {
				p.logger.WarnForDeprecation(logger.StrictUnary,
					"This minus sign is ambiguous; add a space after it to make subtraction explicit, or surround it with parentheses for a negative number.",
					p.spanFrom(mark))
				p.scan.Reset(mark)
				break loop
			}
			p.scan.SkipWhitespaceWithComments(false)
			right, err := p.multiplicativeExpression(opts)
			if err != nil {
				return nil, err
			}
			left = ast.NewBinaryOperation(p.spanFrom(st), ast.Minus, left, right, false)
		}
	}
	return left, nil
}

// multiplicativeExpression implements level 6, including the
// slash-as-separator bookkeeping.
func (p *Parser) multiplicativeExpression(opts exprOptions) (ast.Expression, error) {
	st := p.scan.Mark()
	left, err := p.unaryExpression(opts)
	if err != nil {
		return nil, err
	}
	for {
		mark := p.scan.Mark()
		p.scan.SkipWhitespaceWithComments(false)
		r, ok := p.scan.Peek(0)
		if !ok || (r != '*' && r != '/' && r != '%') {
			p.scan.Reset(mark)
			break
		}
		p.scan.Read()
		p.scan.SkipWhitespaceWithComments(false)
		right, err := p.unaryExpression(opts)
		if err != nil {
			return nil, err
		}
		switch r {
		case '*':
			left = ast.NewBinaryOperation(p.spanFrom(st), ast.Times, left, right, false)
		case '%':
			left = ast.NewBinaryOperation(p.spanFrom(st), ast.Modulo, left, right, false)
		case '/':
			allows := !p.flags.inParentheses && isSlashOperand(left) && isSlashOperand(right)
			left = ast.NewBinaryOperation(p.spanFrom(st), ast.Divide, left, right, allows)
		}
	}
	return left, nil
}

// isSlashOperand reports whether e is numeric enough to carry the
// allows-slash flag forward (spec.md §4.4 Slash-as-separator heuristic).
func isSlashOperand(e ast.Expression) bool {
	switch v := e.(type) {
	case *ast.NumberExpression:
		return true
	case *ast.CalculationExpression:
		return true
	case *ast.BinaryOperationExpression:
		return v.Operator == ast.Divide && v.AllowsSlash
	}
	return false
}

// unaryExpression implements level 7: unary +, -, /, and the word operator
// "not". A leading '-'/'+ ' that's actually the sign of a number literal,
// or a '-' that's actually the first character of a dash-prefixed
// identifier, is left for singleExpression to consume instead.
func (p *Parser) unaryExpression(opts exprOptions) (ast.Expression, error) {
	st := p.scan.Mark()
	if p.scanKeyword("not") {
		p.scan.SkipWhitespaceWithComments(false)
		operand, err := p.unaryExpression(opts)
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryOperation(p.spanFrom(st), ast.UnaryNot, operand), nil
	}
	r, ok := p.scan.Peek(0)
	if ok && r == '+' && !p.scan.LookingAtNumber() {
		p.scan.Read()
		operand, err := p.unaryExpression(opts)
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryOperation(p.spanFrom(st), ast.UnaryPlus, operand), nil
	}
	if ok && r == '-' && !p.scan.LookingAtNumber() {
		mark := p.scan.Mark()
		p.scan.Read()
		if r2, ok2 := p.scan.Peek(0); ok2 && (scanner.IsNameStart(r2) || r2 == '-' || r2 == '\\') {
			p.scan.Reset(mark)
		} else {
			operand, err := p.unaryExpression(opts)
			if err != nil {
				return nil, err
			}
			return ast.NewUnaryOperation(p.spanFrom(st), ast.UnaryMinus, operand), nil
		}
	}
	if ok && r == '/' {
		p.scan.Read()
		operand, err := p.unaryExpression(opts)
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryOperation(p.spanFrom(st), ast.UnaryDivide, operand), nil
	}
	return p.singleExpression(opts)
}

// singleExpression dispatches on the whitespace-free operand kinds of
// spec.md §4.4.
func (p *Parser) singleExpression(opts exprOptions) (ast.Expression, error) {
	st0 := p.scan.Mark()
	r, ok := p.scan.Peek(0)
	if !ok {
		return nil, p.errorf("Expected expression.", p.pointSpan())
	}
	switch {
	case r == '(':
		return p.parenOrMapOrList(opts)
	case r == '[':
		return p.bracketedListExpression(exprOptions{})
	case r == '$':
		if p.dialect.plainCSS() {
			return nil, p.errorf("Sass variables aren't allowed in plain CSS.", p.pointSpan())
		}
		p.scan.Read()
		name, err := p.scan.ReadIdentifier(scanner.IdentifierOptions{Normalize: true})
		if err != nil {
			return nil, err
		}
		return ast.NewVariable(p.spanFrom(st0), "", name), nil
	case r == '&':
		if p.dialect.plainCSS() {
			return nil, p.errorf("The parent selector isn't allowed in plain CSS.", p.pointSpan())
		}
		p.scan.Read()
		return ast.NewSelectorExpression(p.spanFrom(st0)), nil
	case r == '"' || r == '\'':
		str, _, err := p.interpolatedString()
		if err != nil {
			return nil, err
		}
		return ast.NewString(p.spanFrom(st0), str, true), nil
	case r == '#':
		if r2, ok2 := p.scan.Peek(1); ok2 && r2 == '{' {
			ident, err := p.interpolatedIdentifier()
			if err != nil {
				return nil, err
			}
			return ast.NewString(p.spanFrom(st0), ident, false), nil
		}
		if color, ok2 := p.tryHexColor(); ok2 {
			return color, nil
		}
		return nil, p.errorf("Expected hex digit or interpolation.", p.pointSpan())
	case p.scan.LookingAtNumber():
		num, err := p.scan.ReadNumber()
		if err != nil {
			return nil, err
		}
		unit := p.tryUnit()
		return ast.NewNumber(p.spanFrom(st0), num.Value, unit), nil
	default:
		if txt, ok2 := p.tryUnicodeRange(); ok2 {
			return ast.NewUnicodeRange(p.spanFrom(st0), txt), nil
		}
		if p.scan.LookingAtIdentifier() {
			return p.identifierLikeExpression(st0)
		}
		return nil, p.errorf("Expected expression.", p.pointSpan())
	}
}

// identifierLikeExpression parses everything that starts as a CSS
// identifier: namespaced variables/calls, function calls (including the
// calc/min/max/clamp and if(...) special forms), booleans, null, and plain
// unquoted strings (spec.md §4.4).
func (p *Parser) identifierLikeExpression(st0 scanner.State) (ast.Expression, error) {
	ident, err := p.interpolatedIdentifier()
	if err != nil {
		return nil, err
	}
	plain, isPlain := ident.AsPlain()
	if !isPlain {
		if p.scan.MatchesString("(") {
			args, err := p.parseArgumentInvocation()
			if err != nil {
				return nil, err
			}
			return ast.NewInterpolatedFunction(p.spanFrom(st0), ident, args), nil
		}
		return ast.NewString(p.spanFrom(st0), ident, false), nil
	}
	if r1, ok := p.scan.Peek(0); ok && r1 == '.' {
		if r2, ok2 := p.scan.Peek(1); ok2 && r2 == '$' {
			p.scan.Read()
			p.scan.Read()
			name, err := p.scan.ReadIdentifier(scanner.IdentifierOptions{Normalize: true})
			if err != nil {
				return nil, err
			}
			return ast.NewVariable(p.spanFrom(st0), plain, name), nil
		}
		if r2, ok2 := p.scan.Peek(1); ok2 && (scanner.IsNameStart(r2) || r2 == '-' || r2 == '\\') {
			p.scan.Read()
			fname, err := p.interpolatedIdentifier()
			if err != nil {
				return nil, err
			}
			fplain, fok := fname.AsPlain()
			if !p.scan.MatchesString("(") {
				return nil, p.errorf("expected \"(\".", p.pointSpan())
			}
			args, err := p.parseArgumentInvocation()
			if err != nil {
				return nil, err
			}
			if fok {
				return ast.NewFunction(p.spanFrom(st0), plain, fplain, args), nil
			}
			return ast.NewInterpolatedFunction(p.spanFrom(st0), fname, args), nil
		}
	}
	if p.scan.MatchesString("(") {
		lower := strings.ToLower(plain)
		switch lower {
		case "calc", "min", "max", "clamp":
			calcExpr, ok, err := p.tryCalculationBody(st0, lower)
			if err != nil {
				return nil, err
			}
			if ok {
				return calcExpr, nil
			}
		case "if":
			args, err := p.parseArgumentInvocation()
			if err != nil {
				return nil, err
			}
			return ast.NewIf(p.spanFrom(st0), args), nil
		}
		args, err := p.parseArgumentInvocation()
		if err != nil {
			return nil, err
		}
		return ast.NewFunction(p.spanFrom(st0), "", plain, args), nil
	}
	switch plain {
	case "true":
		return ast.NewBoolean(p.spanFrom(st0), true), nil
	case "false":
		return ast.NewBoolean(p.spanFrom(st0), false), nil
	case "null":
		return ast.NewNull(p.spanFrom(st0)), nil
	}
	return ast.NewString(p.spanFrom(st0), ident, false), nil
}

// reparseWithoutParens re-reads the item that started at start with
// in_parentheses cleared, the way spec.md §4.4 describes: "if a
// surrounding context later discovers the list is actually a list, the
// expression is re-parsed without the parenthesis context to undo the
// [slash-as-separator] division." The scanner is left exactly where it
// was before the call, regardless of where re-parsing stops.
func (p *Parser) reparseWithoutParens(start scanner.State) (ast.Expression, error) {
	after := p.scan.Mark()
	p.scan.Reset(start)
	saved := p.flags.inParentheses
	p.flags.inParentheses = false
	expr, err := p.spaceListExpression(exprOptions{})
	p.flags.inParentheses = saved
	p.scan.Reset(after)
	if err != nil {
		return nil, err
	}
	return expr, nil
}

// parenOrMapOrList parses a parenthesized expression, map, or comma list
// (spec.md §4.4 "Maps vs. lists"), toggling in_parentheses for the
// slash-as-separator heuristic's duration. Every item is parsed under
// that flag first; once the shape (single parenthesized value, map, or
// list) is known, items belonging to a map or list are re-parsed without
// it so a suppressed "allows-slash" division is restored.
func (p *Parser) parenOrMapOrList(opts exprOptions) (ast.Expression, error) {
	st := p.scan.Mark()
	if err := p.scan.ExpectChar('('); err != nil {
		return nil, err
	}
	p.scan.SkipWhitespaceWithComments(false)
	if p.scan.ScanChar(')') {
		return ast.NewList(p.spanFrom(st), nil, ast.UndecidedSeparator, false), nil
	}
	var result ast.Expression
	err := p.withFlags(func(f *flags) { f.inParentheses = true }, func() error {
		firstStart := p.scan.Mark()
		first, err := p.spaceListExpression(exprOptions{})
		if err != nil {
			return err
		}
		p.scan.SkipWhitespaceWithComments(false)
		if p.scan.ScanChar(':') {
			p.scan.SkipWhitespaceWithComments(false)
			valueStart := p.scan.Mark()
			value, err := p.spaceListExpression(exprOptions{})
			if err != nil {
				return err
			}
			if first, err = p.reparseWithoutParens(firstStart); err != nil {
				return err
			}
			if value, err = p.reparseWithoutParens(valueStart); err != nil {
				return err
			}
			pairs := []ast.MapPair{{Key: first, Value: value}}
			p.scan.SkipWhitespaceWithComments(false)
			for p.scan.ScanChar(',') {
				p.scan.SkipWhitespaceWithComments(false)
				if p.scan.MatchesString(")") {
					break
				}
				keyStart := p.scan.Mark()
				key, err := p.spaceListExpression(exprOptions{})
				if err != nil {
					return err
				}
				p.scan.SkipWhitespaceWithComments(false)
				if err := p.scan.ExpectChar(':'); err != nil {
					return err
				}
				p.scan.SkipWhitespaceWithComments(false)
				valStart := p.scan.Mark()
				val, err := p.spaceListExpression(exprOptions{})
				if err != nil {
					return err
				}
				if key, err = p.reparseWithoutParens(keyStart); err != nil {
					return err
				}
				if val, err = p.reparseWithoutParens(valStart); err != nil {
					return err
				}
				pairs = append(pairs, ast.MapPair{Key: key, Value: val})
				p.scan.SkipWhitespaceWithComments(false)
			}
			result = ast.NewMap(p.spanFrom(st), pairs)
			return nil
		}
		contents := []ast.Expression{first}
		marks := []scanner.State{firstStart}
		hadComma := false
		for p.scan.ScanChar(',') {
			hadComma = true
			p.scan.SkipWhitespaceWithComments(false)
			if p.scan.MatchesString(")") {
				break
			}
			itemStart := p.scan.Mark()
			item, err := p.spaceListExpression(exprOptions{})
			if err != nil {
				return err
			}
			contents = append(contents, item)
			marks = append(marks, itemStart)
			p.scan.SkipWhitespaceWithComments(false)
		}
		if len(contents) == 1 && !hadComma {
			// A lone item with no comma is usually a single parenthesized
			// value, where the slash-as-separator suppression that
			// applied while parsing it was correct. But spaceListExpression
			// already folds a space-separated run ("1/2 1") into one
			// ListExpression before the comma loop ever sees it, so that
			// case is a list too and needs the same undo.
			if lst, ok := contents[0].(*ast.ListExpression); ok && lst.Separator == ast.SpaceSeparator && len(lst.Contents) > 1 {
				reparsed, err := p.reparseWithoutParens(firstStart)
				if err != nil {
					return err
				}
				contents[0] = reparsed
			}
			result = ast.NewParenthesized(p.spanFrom(st), contents[0])
			return nil
		}
		// The parens turned out to wrap a list, not a single division:
		// undo the suppression for every item.
		for i, m := range marks {
			reparsed, err := p.reparseWithoutParens(m)
			if err != nil {
				return err
			}
			contents[i] = reparsed
		}
		result = ast.NewList(p.spanFrom(st), contents, ast.CommaSeparator, false)
		return nil
	})
	if err != nil {
		return nil, err
	}
	p.scan.SkipWhitespaceWithComments(false)
	if err := p.scan.ExpectChar(')'); err != nil {
		return nil, err
	}
	return result, nil
}

// bracketedListExpression parses a `[ ... ]` list, itself containing a
// normal comma list.
func (p *Parser) bracketedListExpression(opts exprOptions) (ast.Expression, error) {
	st := p.scan.Mark()
	if err := p.scan.ExpectChar('['); err != nil {
		return nil, err
	}
	p.scan.SkipWhitespaceWithComments(false)
	if p.scan.ScanChar(']') {
		return ast.NewList(p.spanFrom(st), nil, ast.UndecidedSeparator, true), nil
	}
	inner := opts
	inner.bracketList = false
	list, err := p.commaListExpression(inner)
	if err != nil {
		return nil, err
	}
	p.scan.SkipWhitespaceWithComments(false)
	if err := p.scan.ExpectChar(']'); err != nil {
		return nil, err
	}
	if l, ok := list.(*ast.ListExpression); ok {
		l.SourceSpan = p.spanFrom(st)
		l.Bracketed = true
		return l, nil
	}
	return ast.NewList(p.spanFrom(st), []ast.Expression{list}, ast.UndecidedSeparator, true), nil
}

// parseArgumentInvocation parses a `(...)` call's argument list (spec.md
// §4.5 "Argument invocations"): positional, then named, then rest, then
// keyword-rest.
func (p *Parser) parseArgumentInvocation() (*ast.ArgumentInvocation, error) {
	st := p.scan.Mark()
	if err := p.scan.ExpectChar('('); err != nil {
		return nil, err
	}
	p.scan.SkipWhitespaceWithComments(false)
	if p.scan.ScanChar(')') {
		return ast.NewArgumentInvocation(p.spanFrom(st), nil, nil, nil, nil), nil
	}
	var positional []ast.Expression
	var named []ast.NamedArgument
	var rest, kwrest ast.Expression
	err := p.withFlags(func(f *flags) { f.inParentheses = true }, func() error {
		for {
			p.scan.SkipWhitespaceWithComments(false)
			if name, ok := p.tryNamedArgument(); ok {
				value, err := p.spaceListExpression(exprOptions{})
				if err != nil {
					return err
				}
				named = append(named, ast.NamedArgument{Name: name, Value: value})
			} else {
				argStart := p.scan.Mark()
				value, err := p.spaceListExpression(exprOptions{})
				if err != nil {
					return err
				}
				p.scan.SkipWhitespaceWithComments(false)
				if p.scan.ScanString("...") {
					if rest == nil {
						rest = value
					} else {
						kwrest = value
					}
				} else if len(named) > 0 {
					return p.errorf("Positional arguments must come before keyword arguments.", p.spanFrom(argStart))
				} else {
					positional = append(positional, value)
				}
			}
			p.scan.SkipWhitespaceWithComments(false)
			if p.scan.ScanChar(',') {
				p.scan.SkipWhitespaceWithComments(false)
				if p.scan.MatchesString(")") {
					return nil
				}
				continue
			}
			return nil
		}
	})
	if err != nil {
		return nil, err
	}
	p.scan.SkipWhitespaceWithComments(false)
	if err := p.scan.ExpectChar(')'); err != nil {
		return nil, err
	}
	return ast.NewArgumentInvocation(p.spanFrom(st), positional, named, rest, kwrest), nil
}

// tryNamedArgument speculatively parses a `$name:` prefix, restoring the
// scanner if what follows isn't a colon.
func (p *Parser) tryNamedArgument() (string, bool) {
	st := p.scan.Mark()
	if !p.scan.ScanChar('$') {
		return "", false
	}
	name, err := p.scan.ReadIdentifier(scanner.IdentifierOptions{Normalize: true})
	if err != nil {
		p.scan.Reset(st)
		return "", false
	}
	p.scan.SkipWhitespaceWithComments(false)
	if !p.scan.ScanChar(':') {
		p.scan.Reset(st)
		return "", false
	}
	p.scan.SkipWhitespaceWithComments(false)
	return name, true
}

// tryUnit reads a trailing unit identifier (or "%") after a number literal.
func (p *Parser) tryUnit() string {
	if p.scan.ScanChar('%') {
		return "%"
	}
	if p.scan.LookingAtIdentifier() {
		u, err := p.scan.ReadIdentifier(scanner.IdentifierOptions{Unit: true})
		if err == nil {
			return u
		}
	}
	return ""
}

func isHexDigitRune(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// tryHexColor consumes a literal `#rgb`/`#rgba`/`#rrggbb`/`#rrggbbaa` color
// (spec.md §4.4 "Colors").
func (p *Parser) tryHexColor() (*ast.ColorExpression, bool) {
	st := p.scan.Mark()
	if !p.scan.ScanChar('#') {
		return nil, false
	}
	var hex strings.Builder
	for hex.Len() < 8 {
		r, ok := p.scan.Peek(0)
		if !ok || !isHexDigitRune(r) {
			break
		}
		hex.WriteRune(r)
		p.scan.Read()
	}
	n := hex.Len()
	if n != 3 && n != 4 && n != 6 && n != 8 {
		p.scan.Reset(st)
		return nil, false
	}
	if n == 8 {
		if r, ok := p.scan.Peek(0); ok && isHexDigitRune(r) {
			p.scan.Reset(st)
			return nil, false
		}
	}
	text := hex.String()
	r, g, b, a, hasAlpha := decodeHexColor(text)
	return ast.NewColor(p.spanFrom(st), r, g, b, a, "#"+text, hasAlpha), true
}

// decodeHexColor expands a validated 3/4/6/8-digit hex run to RGBA. The
// caller guarantees len(hex) is one of those four lengths.
func decodeHexColor(hex string) (r, g, b uint8, a float64, hasAlpha bool) {
	nibble := func(c byte) uint8 {
		v, _ := strconv.ParseUint(string(c), 16, 8)
		return uint8(v) * 17
	}
	pair := func(s string) uint8 {
		v, _ := strconv.ParseUint(s, 16, 8)
		return uint8(v)
	}
	switch len(hex) {
	case 3:
		r, g, b = nibble(hex[0]), nibble(hex[1]), nibble(hex[2])
		a = 1
	case 4:
		r, g, b = nibble(hex[0]), nibble(hex[1]), nibble(hex[2])
		a = float64(nibble(hex[3])) / 255
		hasAlpha = true
	case 6:
		r, g, b = pair(hex[0:2]), pair(hex[2:4]), pair(hex[4:6])
		a = 1
	case 8:
		r, g, b = pair(hex[0:2]), pair(hex[2:4]), pair(hex[4:6])
		a = float64(pair(hex[6:8])) / 255
		hasAlpha = true
	}
	return
}

// tryUnicodeRange consumes a `U+XXXX-YYYY`/`U+X?` literal.
func (p *Parser) tryUnicodeRange() (string, bool) {
	st := p.scan.Mark()
	r, ok := p.scan.Peek(0)
	if !ok || (r != 'u' && r != 'U') {
		return "", false
	}
	p.scan.Read()
	if !p.scan.ScanChar('+') {
		p.scan.Reset(st)
		return "", false
	}
	var b strings.Builder
	b.WriteRune(r)
	b.WriteByte('+')
	count := 0
	for count < 6 {
		rr, ok2 := p.scan.Peek(0)
		if !ok2 || !(isHexDigitRune(rr) || rr == '?') {
			break
		}
		b.WriteRune(rr)
		p.scan.Read()
		count++
	}
	if count == 0 {
		p.scan.Reset(st)
		return "", false
	}
	if p.scan.ScanChar('-') {
		b.WriteByte('-')
		count2 := 0
		for count2 < 6 {
			rr, ok2 := p.scan.Peek(0)
			if !ok2 || !isHexDigitRune(rr) {
				break
			}
			b.WriteRune(rr)
			p.scan.Read()
			count2++
		}
		if count2 == 0 {
			p.scan.Reset(st)
			return "", false
		}
	}
	return b.String(), true
}
