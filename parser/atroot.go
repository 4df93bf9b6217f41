package parser

import (
	"strings"

	"github.com/lukehoban/sass/ast"
	"github.com/lukehoban/sass/scanner"
)

// spec.md §4.7 AtRootQueryParser: "(with: rule rule ...)" or
// "(without: ...)". statement.go's inline @at-root parsing and the
// standalone ParseAtRootQuery API share this one implementation.

// ParseAtRootQuery parses text as a standalone "(with: ...)"/"(without:
// ...)" clause (spec.md §6 parse_at_root_query).
func ParseAtRootQuery(text string, opts ...Option) (*ast.AtRootQuery, error) {
	p := newParser(text, NewSCSSDialect(), opts...)
	query, err := parseAtRootQueryBody(p)
	if err != nil {
		return nil, err
	}
	if err := p.scan.ExpectDone(); err != nil {
		return nil, err
	}
	return query, nil
}

func parseAtRootQueryBody(p *Parser) (*ast.AtRootQuery, error) {
	qst := p.scan.Mark()
	if err := p.scan.ExpectChar('('); err != nil {
		return nil, err
	}
	p.scan.SkipWhitespaceWithComments(false)
	keyword, err := p.scan.ReadIdentifier(scanner.IdentifierOptions{Normalize: true})
	if err != nil {
		return nil, err
	}
	var include bool
	switch strings.ToLower(keyword) {
	case "with":
		include = true
	case "without":
		include = false
	default:
		return nil, p.errorf("Expected \"with\" or \"without\".", p.pointSpan())
	}
	p.scan.SkipWhitespaceWithComments(false)
	if err := p.scan.ExpectChar(':'); err != nil {
		return nil, err
	}
	p.scan.SkipWhitespaceWithComments(false)
	var names []string
	for {
		name, err := p.scan.ReadIdentifier(scanner.IdentifierOptions{Normalize: true})
		if err != nil {
			return nil, err
		}
		names = append(names, strings.ToLower(name))
		p.scan.SkipWhitespaceWithComments(false)
		if p.scan.MatchesString(")") {
			break
		}
	}
	if err := p.scan.ExpectChar(')'); err != nil {
		return nil, err
	}
	return ast.NewAtRootQuery(p.spanFrom(qst), include, names), nil
}
