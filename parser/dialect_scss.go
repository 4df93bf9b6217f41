package parser

import (
	"github.com/lukehoban/sass/ast"
	"github.com/lukehoban/sass/logger"
)

// scssDialect is the brace-and-semicolon surface syntax (spec.md §4.6): the
// "default" shape of every dialect operation. Indented overrides every
// operation with a whitespace-sensitive equivalent; PlainCSS inherits all
// of these and only adds restrictions layered on top in statement.go.
type scssDialect struct{}

// NewSCSSDialect returns the dialect driver for brace/semicolon Sass.
func NewSCSSDialect() dialect { return scssDialect{} }

func (scssDialect) indented() bool { return false }
func (scssDialect) plainCSS() bool { return false }

// styleRuleSelector scans raw selector text up to the '{' that opens the
// rule's children (spec.md §4.6).
func (scssDialect) styleRuleSelector(p *Parser) (*ast.Interpolation, error) {
	return p.almostAnyValue(false)
}

// expectStatementSeparator requires ';' or permits a following '}' to end
// the statement, skipping intervening whitespace (comments are not
// permitted between a declaration's value and its separator).
func (scssDialect) expectStatementSeparator(p *Parser, name string) error {
	p.scan.SkipWhitespaceWithoutComments()
	if p.scan.ScanChar(';') {
		return nil
	}
	if r, ok := p.scan.Peek(0); !ok || r == '}' {
		return nil
	}
	msg := "expected \";\"."
	if name != "" {
		msg = "expected \";\" after " + name + "."
	}
	return p.errorf(msg, p.pointSpan())
}

// atEndOfStatement reports whether the cursor sits just before ';', '{',
// '}', or EOF.
func (scssDialect) atEndOfStatement(p *Parser) bool {
	r, ok := p.scan.Peek(0)
	if !ok {
		return true
	}
	return r == ';' || r == '{' || r == '}'
}

// lookingAtChildren reports whether the cursor sits just before '{'.
func (scssDialect) lookingAtChildren(p *Parser) bool {
	r, ok := p.scan.Peek(0)
	return ok && r == '{'
}

// scanElse matches an "@else" (or the deprecated one-word "@elseif")
// keyword, leaving the scanner positioned just after "else" (for "@elseif",
// just before its "if", so the caller reads an "@else if"). ifIndentation is
// unused in the brace dialect -- braces, not indentation, delimit an
// "@if"'s extent.
func (scssDialect) scanElse(p *Parser, ifIndentation int) bool {
	mark := p.scan.Mark()
	p.scan.SkipWhitespaceWithComments(false)
	if !p.scan.ScanChar('@') {
		p.scan.Reset(mark)
		return false
	}
	kwStart := p.scan.Mark()
	if p.scanKeyword("else") {
		return true
	}
	p.scan.Reset(kwStart)
	if p.scanKeyword("elseif") {
		p.logger.WarnForDeprecation(logger.ElseIf,
			"@elseif is deprecated and will not be supported in future Sass versions.\n"+
				"Use \"@else if\" instead.", p.spanFrom(mark))
		p.scan.SetPosition(p.scan.Position() - 2)
		return true
	}
	p.scan.Reset(mark)
	return false
}

// children parses a brace-delimited child-statement list: '{' ... '}',
// skipping whitespace/comments and consuming stray ';' separators between
// children (most children consume their own trailing separator; a handful
// of empty ones don't, so the loop tolerates either).
func (scssDialect) children(p *Parser, child func() (ast.Statement, error)) ([]ast.Statement, error) {
	if err := p.scan.ExpectChar('{'); err != nil {
		return nil, err
	}
	var stmts []ast.Statement
	for {
		p.scan.SkipWhitespaceWithComments(false)
		r, ok := p.scan.Peek(0)
		if !ok {
			return nil, p.errorf("expected \"}\".", p.pointSpan())
		}
		if r == '}' {
			p.scan.Read()
			break
		}
		if r == ';' {
			p.scan.Read()
			continue
		}
		stmt, err := child()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts, nil
}

// statements parses the top-level statement list: like children but with
// no enclosing braces, running until EOF.
func (scssDialect) statements(p *Parser, stmt func() (ast.Statement, error)) ([]ast.Statement, error) {
	var stmts []ast.Statement
	for {
		p.scan.SkipWhitespaceWithComments(false)
		if p.scan.IsDone() {
			break
		}
		if p.scan.ScanChar(';') {
			continue
		}
		s, err := stmt()
		if err != nil {
			return nil, err
		}
		if s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts, nil
}

// silentComment consumes a "// ..." comment and returns it as a
// SilentComment holding its raw text; no interpolation is resolved in it.
func (scssDialect) silentComment(p *Parser) (ast.Statement, error) {
	st := p.scan.Mark()
	p.scan.SkipSilentComment()
	return ast.NewSilentComment(p.spanFrom(st), p.spanFrom(st).Text()), nil
}

// loudComment consumes a "/* ... */" comment, preserving its text
// (including any interpolation holes) since it survives into the output.
func (scssDialect) loudComment(p *Parser) (ast.Statement, error) {
	st := p.scan.Mark()
	text, err := scanLoudCommentBody(p)
	if err != nil {
		return nil, err
	}
	return ast.NewLoudComment(p.spanFrom(st), text), nil
}

// scanLoudCommentBody scans a "/* ... */" comment's contents, resolving
// interpolation holes, and is shared by every dialect: the reconstruction
// nuance of injecting a " * " prefix on an indented comment's continuation
// lines is cosmetic (dart-sass does it purely for re-serialization) and
// doesn't change what the comment means, so all three dialects store the
// raw scanned text.
func scanLoudCommentBody(p *Parser) (*ast.Interpolation, error) {
	if err := p.scan.ExpectChar('/'); err != nil {
		return nil, err
	}
	if err := p.scan.ExpectChar('*'); err != nil {
		return nil, err
	}
	b := p.newInterpolationBuilder()
	textStart := p.scan.Mark()
	for {
		r, ok := p.scan.Peek(0)
		if !ok {
			return nil, p.errorf("expected \"*/\".", p.pointSpan())
		}
		if r == '*' {
			if r2, ok2 := p.scan.Peek(1); ok2 && r2 == '/' {
				b.flushText(p, textStart)
				p.scan.Read()
				p.scan.Read()
				break
			}
		}
		if r == '#' {
			if r2, ok2 := p.scan.Peek(1); ok2 && r2 == '{' {
				b.flushText(p, textStart)
				exprStart := p.scan.Mark()
				expr, err := p.singleInterpolation()
				if err != nil {
					return nil, err
				}
				b.addExpression(p, expr, exprStart)
				textStart = p.scan.Mark()
				continue
			}
		}
		b.writeRune(r)
		p.scan.Read()
	}
	return b.build(p), nil
}
