package parser

import (
	"github.com/lukehoban/sass/ast"
	"github.com/lukehoban/sass/scanner"
)

// DeclarationValueFlags mirrors spec.md §4.3's interpolated_declaration_value
// flag set.
type DeclarationValueFlags struct {
	AllowEmpty     bool
	AllowSemicolon bool
	AllowColon     bool // default true
	AllowOpenBrace bool // default true
	SilentComments bool // default true: whether "//" starts a comment
}

// DefaultDeclarationValueFlags returns the spec's documented defaults.
func DefaultDeclarationValueFlags() DeclarationValueFlags {
	return DeclarationValueFlags{AllowColon: true, AllowOpenBrace: true, SilentComments: true}
}

// interpolatedDeclarationValue is the dialect-aware value tokenizer for
// places in Sass where SassScript may appear inside otherwise raw CSS
// tokens (spec.md §4.3): bracket-balances; collapses whitespace runs
// (preserving a single '\n' after a real newline); recognizes "#{" as an
// expression hole; defers to the URL scanner for "url("; treats backslash
// as an escape start; raises on EOF with unmatched brackets.
func (p *Parser) interpolatedDeclarationValue(flags DeclarationValueFlags) (*ast.Interpolation, error) {
	b := p.newInterpolationBuilder()
	textStart := p.scan.Mark()
	brackets := 0
	wroteAny := false

	flushExpr := func() error {
		b.flushText(p, textStart)
		exprStart := p.scan.Mark()
		expr, err := p.singleInterpolation()
		if err != nil {
			return err
		}
		b.addExpression(p, expr, exprStart)
		textStart = p.scan.Mark()
		wroteAny = true
		return nil
	}

	for {
		r, ok := p.scan.Peek(0)
		if !ok {
			break
		}
		switch {
		case r == ';' && !flags.AllowSemicolon && brackets == 0:
			goto done
		case r == '!' && brackets == 0:
			goto done
		case r == ':' && !flags.AllowColon && brackets == 0:
			goto done
		case r == '{' && !flags.AllowOpenBrace && brackets == 0:
			goto done
		case r == '}' && brackets == 0:
			goto done
		case r == '#':
			if r2, ok2 := p.scan.Peek(1); ok2 && r2 == '{' {
				if err := flushExpr(); err != nil {
					return nil, err
				}
				continue
			}
			b.writeRune(r)
			p.scan.Read()
			wroteAny = true
		case matchesURLFunction(p.scan):
			st := p.scan.Mark()
			if raw, ok := p.scan.TryURL(); ok {
				b.flushText(p, textStart)
				b.items = append(b.items, ast.InterpolationItem{Text: "url(" + raw + ")", Item: p.spanFrom(st)})
				textStart = p.scan.Mark()
				wroteAny = true
				continue
			}
			// fall through: "url(" scanned as plain text, its "(" opens
			// a bracket the normal balancing logic below will close.
			fallthrough
		case r == '(' || r == '[':
			brackets++
			b.writeRune(r)
			p.scan.Read()
			wroteAny = true
		case r == ')' || r == ']' || (r == '{' && flags.AllowOpenBrace):
			if r != '{' {
				if brackets == 0 {
					goto done
				}
				brackets--
			} else {
				brackets++
			}
			b.writeRune(r)
			p.scan.Read()
			wroteAny = true
		case r == '}':
			if brackets == 0 {
				goto done
			}
			brackets--
			b.writeRune(r)
			p.scan.Read()
			wroteAny = true
		case r == '"' || r == '\'':
			b.flushText(p, textStart)
			strStart := p.scan.Mark()
			str, isPlain, err := p.interpolatedString()
			if err != nil {
				return nil, err
			}
			quote := string(r)
			if isPlain {
				text, _ := str.AsPlain()
				b.items = append(b.items, ast.InterpolationItem{Text: quote + text + quote, Item: p.spanFrom(strStart)})
			} else {
				b.items = append(b.items, ast.InterpolationItem{Text: quote, Item: p.spanFrom(strStart)})
				b.items = append(b.items, str.Items...)
				b.items = append(b.items, ast.InterpolationItem{Text: quote, Item: p.spanFrom(strStart)})
			}
			textStart = p.scan.Mark()
			wroteAny = true
		case r == '/':
			if flags.SilentComments {
				if r2, ok2 := p.scan.Peek(1); ok2 && r2 == '/' {
					p.scan.SkipWhitespaceWithComments(false)
					continue
				}
			}
			if r2, ok2 := p.scan.Peek(1); ok2 && r2 == '*' {
				p.scan.SkipWhitespaceWithComments(false)
				continue
			}
			b.writeRune(r)
			p.scan.Read()
			wroteAny = true
		case isSpaceRune(r):
			hadNewline := false
			for {
				r2, ok2 := p.scan.Peek(0)
				if !ok2 || !isSpaceRune(r2) {
					break
				}
				if r2 == '\n' {
					hadNewline = true
				}
				p.scan.Read()
			}
			if hadNewline {
				b.writeRune('\n')
			} else {
				b.writeRune(' ')
			}
			wroteAny = true
		case r == '\\':
			text, err := p.scan.ReadIdentifierEscape()
			if err != nil {
				return nil, err
			}
			b.writeString(text)
			wroteAny = true
		default:
			b.writeRune(r)
			p.scan.Read()
			wroteAny = true
		}
	}
done:
	b.flushText(p, textStart)
	if brackets > 0 {
		return nil, p.errorf("expected more input.", p.pointSpan())
	}
	if !wroteAny && !flags.AllowEmpty {
		return nil, p.errorf("expected token.", p.pointSpan())
	}
	return b.build(p), nil
}

func isSpaceRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// matchesURLFunction reports whether the scanner is positioned at a
// case-insensitive "url(" without consuming it.
func matchesURLFunction(s *scanner.Scanner) bool {
	st := s.Mark()
	defer s.Reset(st)
	for _, want := range []rune{'u', 'r', 'l', '('} {
		r, ok := s.Peek(0)
		if !ok {
			return false
		}
		if r != want && (want == '(' || r != want-32) {
			return false
		}
		s.Read()
	}
	return true
}

// almostAnyValue is a re-parsable raw token tokenizer used for selectors
// and unknown at-rule payloads (spec.md §4.3): stops at ';', '{', '}',
// '!', or (in the indented dialect) a newline. It does not bracket-balance
// and does not interpret backslashes; omitComments controls whether
// comment text is preserved in the output.
func (p *Parser) almostAnyValue(omitComments bool) (*ast.Interpolation, error) {
	b := p.newInterpolationBuilder()
	textStart := p.scan.Mark()
	for {
		r, ok := p.scan.Peek(0)
		if !ok {
			break
		}
		switch {
		case r == '\\':
			r2, ok2 := p.scan.Peek(1)
			b.writeRune(r)
			p.scan.Read()
			if ok2 {
				b.writeRune(r2)
				p.scan.Read()
			}
		case r == '"' || r == '\'':
			strStart := p.scan.Mark()
			str, isPlain, err := p.interpolatedString()
			if err != nil {
				return nil, err
			}
			quote := string(r)
			if isPlain {
				text, _ := str.AsPlain()
				b.writeRune(r)
				b.writeString(text)
				b.writeRune(r)
			} else {
				b.flushText(p, textStart)
				b.items = append(b.items, ast.InterpolationItem{Text: quote, Item: p.spanFrom(strStart)})
				b.items = append(b.items, str.Items...)
				b.items = append(b.items, ast.InterpolationItem{Text: quote, Item: p.spanFrom(strStart)})
				textStart = p.scan.Mark()
			}
		case r == '#':
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
			b.writeRune(r)
			p.scan.Read()
		case r == '/':
			if r2, ok2 := p.scan.Peek(1); ok2 && r2 == '/' {
				st := p.scan.Mark()
				p.scan.SkipSilentComment()
				if !omitComments {
					b.writeString(p.scan.SpanFrom(st).Text())
				}
				continue
			}
			if r2, ok2 := p.scan.Peek(1); ok2 && r2 == '*' {
				st := p.scan.Mark()
				p.scan.SkipLoudComment()
				if !omitComments {
					b.writeString(p.scan.SpanFrom(st).Text())
				}
				continue
			}
			b.writeRune(r)
			p.scan.Read()
		case r == ';' || r == '{' || r == '}' || r == '!':
			goto done
		case r == '\n' && p.dialect.indented():
			goto done
		default:
			b.writeRune(r)
			p.scan.Read()
		}
	}
done:
	b.flushText(p, textStart)
	return b.build(p), nil
}
