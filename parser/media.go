package parser

import (
	"github.com/lukehoban/sass/ast"
	"github.com/lukehoban/sass/scanner"
)

// spec.md §4.7 MediaQueryParser: a comma-separated list of media queries,
// each either a bare "<type>", "not <in-parens>", a "<type>" followed by
// "<in-parens>" conditions, or a conjunction/disjunction of "<in-parens>"
// feature conditions. In both condition forms the conditions are joined
// uniformly by "and" or by "or" (never mixed within one query). Grounded on the same direct-scanner approach as
// selector.go.

// ParseMediaQueryList parses text as the comma-separated query list
// accepted after "@media" or in "@import url(...) <query-list>"
// (spec.md §6 parse_media_query_list).
func ParseMediaQueryList(text string, opts ...Option) ([]*ast.CssMediaQuery, error) {
	p := newParser(text, NewSCSSDialect(), opts...)
	queries, err := parseMediaQueryListBody(p)
	if err != nil {
		return nil, err
	}
	if err := p.scan.ExpectDone(); err != nil {
		return nil, err
	}
	return queries, nil
}

func parseMediaQueryListBody(p *Parser) ([]*ast.CssMediaQuery, error) {
	var queries []*ast.CssMediaQuery
	for {
		p.scan.SkipWhitespaceWithComments(false)
		q, err := parseMediaQuery(p)
		if err != nil {
			return nil, err
		}
		queries = append(queries, q)
		p.scan.SkipWhitespaceWithComments(false)
		if !p.scan.ScanChar(',') {
			break
		}
	}
	return queries, nil
}

func parseMediaQuery(p *Parser) (*ast.CssMediaQuery, error) {
	st := p.scan.Mark()

	r, ok := p.scan.Peek(0)
	if !ok || r != '(' {
		// Try "[not|only] <type> [and <in-parens> ...]".
		ident, identErr := p.scan.ReadIdentifier(scanner.IdentifierOptions{Normalize: true})
		if identErr == nil && ident != "" {
			modifier := ast.NoModifier
			switch ident {
			case "not", "only":
				p.scan.SkipWhitespaceWithComments(false)
				typeMark := p.scan.Mark()
				typ, typeErr := p.scan.ReadIdentifier(scanner.IdentifierOptions{Normalize: true})
				if typeErr == nil && typ != "" {
					if ident == "not" {
						modifier = ast.ModifierNot
					} else {
						modifier = ast.ModifierOnly
					}
					return mediaQueryConditions(p, st, modifier, typ)
				}
				// Not a type after all: "not" negates a bare feature condition.
				p.scan.Reset(typeMark)
				cond, err := parseInParens(p)
				if err != nil {
					return nil, err
				}
				return ast.NewCssMediaQuery(p.spanFrom(st), ast.NoModifier, "", []string{"not " + cond}, true), nil
			default:
				return mediaQueryConditions(p, st, modifier, ident)
			}
		}
		p.scan.Reset(st)
	}

	cond, err := parseInParens(p)
	if err != nil {
		return nil, err
	}
	conditions := []string{cond}
	conjunction := true
	for {
		p.scan.SkipWhitespaceWithComments(false)
		kw, sawKw := scanAndOr(p)
		if !sawKw {
			break
		}
		if len(conditions) == 1 {
			conjunction = kw == "and"
		} else if (kw == "and") != conjunction {
			return nil, p.errorf("\"and\" and \"or\" may not be used together in a media query.", p.pointSpan())
		}
		p.scan.SkipWhitespaceWithComments(false)
		next, err := parseInParens(p)
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, next)
	}
	return ast.NewCssMediaQuery(p.spanFrom(st), ast.NoModifier, "", conditions, conjunction), nil
}

// mediaQueryConditions scans the "(and|or) <in-parens>" tail that may
// follow a media type; every keyword in one tail must be the same.
func mediaQueryConditions(p *Parser, st scanner.State, modifier ast.CssMediaQueryModifier, typ string) (*ast.CssMediaQuery, error) {
	var conditions []string
	conjunction := true
	for {
		p.scan.SkipWhitespaceWithComments(false)
		kw, sawKw := scanAndOr(p)
		if !sawKw {
			break
		}
		if len(conditions) == 0 {
			conjunction = kw == "and"
		} else if (kw == "and") != conjunction {
			return nil, p.errorf("\"and\" and \"or\" may not be used together in a media query.", p.pointSpan())
		}
		p.scan.SkipWhitespaceWithComments(false)
		cond, err := parseInParens(p)
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, cond)
	}
	return ast.NewCssMediaQuery(p.spanFrom(st), modifier, typ, conditions, conjunction), nil
}

// scanAndOr scans a following "and"/"or" keyword, reporting which (if
// either) was found.
func scanAndOr(p *Parser) (string, bool) {
	mark := p.scan.Mark()
	if p.scanKeyword("and") {
		return "and", true
	}
	p.scan.Reset(mark)
	if p.scanKeyword("or") {
		return "or", true
	}
	p.scan.Reset(mark)
	return "", false
}

// parseInParens scans a single "(" ... ")" feature condition and returns
// its raw text including the parentheses, balancing nested parens so a
// feature value like "(min-width: calc(1px + 1em))" scans as one unit.
func parseInParens(p *Parser) (string, error) {
	st := p.scan.Mark()
	if err := p.scan.ExpectChar('('); err != nil {
		return "", err
	}
	depth := 1
	for depth > 0 {
		r, ok := p.scan.Peek(0)
		if !ok {
			return "", p.errorf("expected \")\".", p.pointSpan())
		}
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		}
		p.scan.Read()
	}
	return p.spanFrom(st).Text(), nil
}
