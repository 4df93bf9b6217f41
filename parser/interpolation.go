package parser

import (
	"strings"

	"github.com/lukehoban/sass/ast"
	"github.com/lukehoban/sass/scanner"
)

// spec.md §4.3 C3: interpolation-aware identifier scanning. Grounded on
// scanner.Scanner.ReadIdentifier, generalized with a two-element-type
// (literal text | Expression hole) builder, the pattern DESIGN NOTES §9
// calls out explicitly ("standard 'string-builder of two element types'
// pattern"), itself modeled on dom.Node.Classes()'s
// scan-and-accumulate-substrings shape.

// interpolationBuilder accumulates Interpolation items as literal text is
// scanned and expression holes are parsed.
type interpolationBuilder struct {
	items []ast.InterpolationItem
	text  strings.Builder
	start scanner.State
}

func (p *Parser) newInterpolationBuilder() *interpolationBuilder {
	return &interpolationBuilder{start: p.scan.Mark()}
}

func (b *interpolationBuilder) writeRune(r rune) { b.text.WriteRune(r) }
func (b *interpolationBuilder) writeString(s string) { b.text.WriteString(s) }

func (b *interpolationBuilder) flushText(p *Parser, textStart scanner.State) {
	if b.text.Len() == 0 {
		return
	}
	b.items = append(b.items, ast.InterpolationItem{Text: b.text.String(), Item: p.spanFrom(textStart)})
	b.text.Reset()
}

func (b *interpolationBuilder) addExpression(p *Parser, expr ast.Expression, exprStart scanner.State) {
	b.items = append(b.items, ast.InterpolationItem{Expr: expr, Item: p.spanFrom(exprStart)})
}

func (b *interpolationBuilder) build(p *Parser) *ast.Interpolation {
	return ast.NewInterpolation(p.spanFrom(b.start), b.items)
}

// singleInterpolation consumes `#{ expression }` (spec.md §4.3): fails in
// plain-CSS mode.
func (p *Parser) singleInterpolation() (ast.Expression, error) {
	if p.dialect.plainCSS() {
		return nil, p.errorf("interpolation isn't allowed in plain CSS.", p.pointSpan())
	}
	if !p.scan.ScanString("#{") {
		return nil, p.errorf("expected \"#{\".", p.pointSpan())
	}
	p.scan.SkipWhitespaceWithComments(false)
	expr, err := p.expression(exprOptions{})
	if err != nil {
		return nil, err
	}
	p.scan.SkipWhitespaceWithComments(false)
	if err := p.scan.ExpectChar('}'); err != nil {
		return nil, err
	}
	return expr, nil
}

// interpolatedIdentifier consumes a CSS identifier that may contain
// `#{...}` holes (spec.md §4.3): optional leading "--", hex/literal
// escapes, interpolation holes anywhere a name character could appear.
func (p *Parser) interpolatedIdentifier() (*ast.Interpolation, error) {
	b := p.newInterpolationBuilder()
	textStart := p.scan.Mark()

	if p.scan.ScanChar('-') {
		b.writeRune('-')
		if p.scan.ScanChar('-') {
			b.writeRune('-')
		}
	}
	consumedAny := b.text.Len() > 0
	for {
		r, ok := p.scan.Peek(0)
		if !ok {
			break
		}
		if r == '\\' {
			st := p.scan.Mark()
			text, err := p.scan.ReadIdentifierEscape()
			if err != nil {
				return nil, err
			}
			_ = st
			b.writeString(text)
			consumedAny = true
			continue
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
				consumedAny = true
				continue
			}
		}
		if !scanner.IsNameChar(r) {
			break
		}
		b.writeRune(r)
		p.scan.Read()
		consumedAny = true
	}
	b.flushText(p, textStart)
	if !consumedAny {
		return nil, p.errorf("expected identifier.", p.pointSpan())
	}
	return b.build(p), nil
}

// interpolatedString consumes a quoted string that may contain `#{...}`
// holes, resolving ordinary escapes but leaving interpolation holes as
// Expression items.
func (p *Parser) interpolatedString() (*ast.Interpolation, bool, error) {
	quote, ok := p.scan.Peek(0)
	if !ok || (quote != '"' && quote != '\'') {
		return nil, false, p.errorf("expected string.", p.pointSpan())
	}
	p.scan.Read()
	b := p.newInterpolationBuilder()
	textStart := p.scan.Mark()
	for {
		r, ok := p.scan.Peek(0)
		if !ok {
			return nil, false, p.errorf("expected "+string(quote)+".", p.pointSpan())
		}
		if r == quote {
			p.scan.Read()
			break
		}
		if r == '\n' {
			return nil, false, p.errorf("expected "+string(quote)+".", p.pointSpan())
		}
		if r == '#' {
			if r2, ok2 := p.scan.Peek(1); ok2 && r2 == '{' {
				b.flushText(p, textStart)
				exprStart := p.scan.Mark()
				expr, err := p.singleInterpolation()
				if err != nil {
					return nil, false, err
				}
				b.addExpression(p, expr, exprStart)
				textStart = p.scan.Mark()
				continue
			}
		}
		if r == '\\' {
			if r2, ok2 := p.scan.Peek(1); ok2 && r2 == '\n' {
				p.scan.Read()
				p.scan.Read()
				continue
			}
			text, err := p.scan.ReadIdentifierEscape()
			if err != nil {
				return nil, false, err
			}
			b.writeString(text)
			continue
		}
		b.writeRune(r)
		p.scan.Read()
	}
	b.flushText(p, textStart)
	return b.build(p), true, nil
}
