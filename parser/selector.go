package parser

import (
	"strings"

	"github.com/lukehoban/sass/ast"
	"github.com/lukehoban/sass/scanner"
)

// spec.md §4.7 SelectorParser: comma-separated complex selectors built
// from compound selectors of simple selectors, with the combinators >, +,
// ~, and implicit whitespace-descendant. Grounded on the same
// recursive-descent shape as the statement/expression parsers, reusing
// C1/C2 primitives directly against the scanner rather than going through
// the interpolation-aware machinery: by the time a selector is reparsed,
// any interpolation it once held has already been resolved to plain text.

// selectorPseudosNeedingSelectorList take a nested selector-list argument
// rather than a raw one.
var selectorPseudosNeedingSelectorList = map[string]bool{
	"not": true, "is": true, "has": true, "matches": true, "where": true,
	"host": true, "host-context": true, "current": true, "any": true,
}

// selectorParser wraps a Parser configured to parse exactly one selector
// list and stop.
type selectorParser struct {
	p           *Parser
	allowParent bool
}

func newSelectorParser(text string, allowParent bool, opts ...Option) *selectorParser {
	return &selectorParser{p: newParser(text, NewSCSSDialect(), opts...), allowParent: allowParent}
}

// ParseSelector parses text as a comma-separated complex selector list
// (spec.md §6 parse_selector). allowParent controls whether '&' is
// accepted (top-level selectors forbid it; nested ones allow it).
func ParseSelector(text string, allowParent bool, opts ...Option) (*ast.SelectorList, error) {
	sp := newSelectorParser(text, allowParent, opts...)
	list, err := sp.selectorList()
	if err != nil {
		return nil, err
	}
	if err := sp.p.scan.ExpectDone(); err != nil {
		return nil, err
	}
	return list, nil
}

func (sp *selectorParser) selectorList() (*ast.SelectorList, error) {
	p := sp.p
	st := p.scan.Mark()
	var components []*ast.ComplexSelector
	for {
		p.scan.SkipWhitespaceWithComments(false)
		lineBreak := false
		for {
			r, ok := p.scan.Peek(0)
			if !ok || r != '\n' {
				break
			}
			lineBreak = true
			p.scan.Read()
			p.scan.SkipWhitespaceWithComments(false)
		}
		cplx, err := sp.complexSelector(lineBreak)
		if err != nil {
			return nil, err
		}
		components = append(components, cplx)
		p.scan.SkipWhitespaceWithComments(false)
		if !p.scan.ScanChar(',') {
			break
		}
	}
	return ast.NewSelectorList(p.spanFrom(st), components), nil
}

func (sp *selectorParser) complexSelector(lineBreak bool) (*ast.ComplexSelector, error) {
	p := sp.p
	st := p.scan.Mark()
	var components []ast.ComplexSelectorComponent
	combinator := ast.Descendant
	sawCombinator := false
	for {
		p.scan.SkipWhitespaceWithComments(false)
		if r, ok := p.scan.Peek(0); ok {
			switch r {
			case '>':
				p.scan.Read()
				combinator, sawCombinator = ast.Child, true
				continue
			case '+':
				p.scan.Read()
				combinator, sawCombinator = ast.NextSibling, true
				continue
			case '~':
				p.scan.Read()
				combinator, sawCombinator = ast.SubsequentSibling, true
				continue
			}
		}
		if !sp.looksLikeSimpleSelector() {
			break
		}
		compound, err := sp.compoundSelector()
		if err != nil {
			return nil, err
		}
		components = append(components, ast.ComplexSelectorComponent{Combinator: combinator, Selector: compound})
		combinator, sawCombinator = ast.Descendant, false
		p.scan.SkipWhitespaceWithoutComments()
	}
	if len(components) == 0 {
		return nil, p.errorf("expected selector.", p.pointSpan())
	}
	if sawCombinator {
		return nil, p.errorf("expected selector.", p.pointSpan())
	}
	return ast.NewComplexSelector(p.spanFrom(st), components, lineBreak), nil
}

func (sp *selectorParser) looksLikeSimpleSelector() bool {
	p := sp.p
	r, ok := p.scan.Peek(0)
	if !ok {
		return false
	}
	switch r {
	case '*', '.', '#', '%', '&', '[', ':':
		return true
	}
	return scanner.IsNameStart(r) || r == '-' || r == '\\'
}

func (sp *selectorParser) compoundSelector() (*ast.CompoundSelector, error) {
	p := sp.p
	st := p.scan.Mark()
	var simple []*ast.SimpleSelector
	for sp.looksLikeSimpleSelector() {
		s, err := sp.simpleSelector()
		if err != nil {
			return nil, err
		}
		simple = append(simple, s)
	}
	if len(simple) == 0 {
		return nil, p.errorf("expected selector.", p.pointSpan())
	}
	return ast.NewCompoundSelector(p.spanFrom(st), simple), nil
}

func (sp *selectorParser) simpleSelector() (*ast.SimpleSelector, error) {
	p := sp.p
	st := p.scan.Mark()
	r, _ := p.scan.Peek(0)
	switch r {
	case '*':
		return sp.typeOrUniversalSelector(st)
	case '.':
		p.scan.Read()
		name, err := p.scan.ReadIdentifier(scanner.IdentifierOptions{Normalize: true})
		if err != nil {
			return nil, err
		}
		sel := ast.NewSimpleSelector(p.spanFrom(st), ast.ClassSelector)
		sel.Name = name
		return sel, nil
	case '#':
		p.scan.Read()
		name, err := p.scan.ReadIdentifier(scanner.IdentifierOptions{Normalize: true})
		if err != nil {
			return nil, err
		}
		sel := ast.NewSimpleSelector(p.spanFrom(st), ast.IDSelector)
		sel.Name = name
		return sel, nil
	case '%':
		p.scan.Read()
		name, err := p.scan.ReadIdentifier(scanner.IdentifierOptions{Normalize: true})
		if err != nil {
			return nil, err
		}
		sel := ast.NewSimpleSelector(p.spanFrom(st), ast.PlaceholderSelectorKind)
		sel.Name = name
		return sel, nil
	case '&':
		if !sp.allowParent {
			return nil, p.errorf("Parent selectors aren't allowed here.", p.pointSpan())
		}
		p.scan.Read()
		suffixStart := p.scan.Mark()
		for {
			r2, ok := p.scan.Peek(0)
			if !ok || !scanner.IsNameChar(r2) {
				break
			}
			p.scan.Read()
		}
		sel := ast.NewSimpleSelector(p.spanFrom(st), ast.ParentSelectorKind)
		sel.Suffix = p.spanFrom(suffixStart).Text()
		return sel, nil
	case '[':
		return sp.attributeSelector(st)
	case ':':
		return sp.pseudoSelector(st)
	default:
		return sp.typeOrUniversalSelector(st)
	}
}

// typeOrUniversalSelector handles the `ns|E`, `*|E`, `E`, and bare `*`
// forms: a leading identifier or "*" optionally followed by "|" and
// another identifier or "*".
func (sp *selectorParser) typeOrUniversalSelector(st scanner.State) (*ast.SimpleSelector, error) {
	p := sp.p
	first, err := sp.namespaceNamePart()
	if err != nil {
		return nil, err
	}
	if !p.scan.ScanChar('|') {
		sel := ast.NewSimpleSelector(p.spanFrom(st), kindFor(first))
		if first != "*" {
			sel.Name = first
		}
		return sel, nil
	}
	second, err := sp.namespaceNamePart()
	if err != nil {
		return nil, err
	}
	sel := ast.NewSimpleSelector(p.spanFrom(st), kindFor(second))
	sel.Namespace = first
	if second != "*" {
		sel.Name = second
	}
	return sel, nil
}

func kindFor(name string) ast.SimpleSelectorKind {
	if name == "*" {
		return ast.UniversalSelector
	}
	return ast.TypeSelector
}

func (sp *selectorParser) namespaceNamePart() (string, error) {
	p := sp.p
	if p.scan.ScanChar('*') {
		return "*", nil
	}
	return p.scan.ReadIdentifier(scanner.IdentifierOptions{Normalize: true})
}

// attributeSelector parses `[name]`, `[name op value]`, `[ns|name op value i]`.
func (sp *selectorParser) attributeSelector(st scanner.State) (*ast.SimpleSelector, error) {
	p := sp.p
	if err := p.scan.ExpectChar('['); err != nil {
		return nil, err
	}
	p.scan.SkipWhitespaceWithComments(false)
	first, err := sp.namespaceNamePart()
	if err != nil {
		return nil, err
	}
	namespace, name := "", first
	if p.scan.ScanChar('|') {
		namespace = first
		name, err = sp.namespaceNamePart()
		if err != nil {
			return nil, err
		}
	}
	p.scan.SkipWhitespaceWithComments(false)
	sel := ast.NewSimpleSelector(p.spanFrom(st), ast.AttributeSelectorKind)
	sel.Namespace = namespace
	sel.Name = name
	if p.scan.ScanChar(']') {
		sel.Operator = ast.AttrExists
		return sel, nil
	}
	op, err := sp.attributeOperator()
	if err != nil {
		return nil, err
	}
	sel.Operator = op
	p.scan.SkipWhitespaceWithComments(false)
	value, err := sp.attributeValue()
	if err != nil {
		return nil, err
	}
	sel.Value = value
	p.scan.SkipWhitespaceWithComments(false)
	if r, ok := p.scan.Peek(0); ok && (r == 'i' || r == 'I' || r == 's' || r == 'S') {
		sel.HasCaseModifier = true
		sel.CaseSensitive = r == 's' || r == 'S'
		p.scan.Read()
		p.scan.SkipWhitespaceWithComments(false)
	}
	if err := p.scan.ExpectChar(']'); err != nil {
		return nil, err
	}
	return sel, nil
}

func (sp *selectorParser) attributeOperator() (ast.AttributeOperator, error) {
	p := sp.p
	r, ok := p.scan.Peek(0)
	if !ok {
		return 0, p.errorf("expected attribute operator.", p.pointSpan())
	}
	switch r {
	case '=':
		p.scan.Read()
		return ast.AttrEquals, nil
	case '~':
		p.scan.Read()
		if err := p.scan.ExpectChar('='); err != nil {
			return 0, err
		}
		return ast.AttrIncludes, nil
	case '|':
		p.scan.Read()
		if err := p.scan.ExpectChar('='); err != nil {
			return 0, err
		}
		return ast.AttrDashMatch, nil
	case '^':
		p.scan.Read()
		if err := p.scan.ExpectChar('='); err != nil {
			return 0, err
		}
		return ast.AttrPrefixMatch, nil
	case '$':
		p.scan.Read()
		if err := p.scan.ExpectChar('='); err != nil {
			return 0, err
		}
		return ast.AttrSuffixMatch, nil
	case '*':
		p.scan.Read()
		if err := p.scan.ExpectChar('='); err != nil {
			return 0, err
		}
		return ast.AttrSubstring, nil
	}
	return 0, p.errorf("expected attribute operator.", p.pointSpan())
}

func (sp *selectorParser) attributeValue() (string, error) {
	p := sp.p
	if r, ok := p.scan.Peek(0); ok && (r == '"' || r == '\'') {
		str, _, err := p.interpolatedString()
		if err != nil {
			return "", err
		}
		text, _ := str.AsPlain()
		return text, nil
	}
	return p.scan.ReadIdentifier(scanner.IdentifierOptions{})
}

// pseudoSelector parses `:name`, `::name`, `:name(argument)`.
func (sp *selectorParser) pseudoSelector(st scanner.State) (*ast.SimpleSelector, error) {
	p := sp.p
	if err := p.scan.ExpectChar(':'); err != nil {
		return nil, err
	}
	isClass := true
	if p.scan.ScanChar(':') {
		isClass = false
	}
	name, err := p.scan.ReadIdentifier(scanner.IdentifierOptions{Normalize: true})
	if err != nil {
		return nil, err
	}
	sel := ast.NewSimpleSelector(p.spanFrom(st), ast.PseudoSelectorKind)
	sel.Name = name
	sel.IsClass = isClass
	if !p.scan.ScanChar('(') {
		return sel, nil
	}
	p.scan.SkipWhitespaceWithComments(false)
	lower := strings.ToLower(name)
	if isClass && selectorPseudosNeedingSelectorList[lower] {
		list, err := sp.selectorList()
		if err != nil {
			return nil, err
		}
		sel.Selectors = list
	} else {
		argStart := p.scan.Mark()
		depth := 1
		for depth > 0 {
			r, ok := p.scan.Peek(0)
			if !ok {
				return nil, p.errorf("expected \")\".", p.pointSpan())
			}
			switch r {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					continue
				}
			}
			p.scan.Read()
		}
		sel.Argument = strings.TrimSpace(p.spanFrom(argStart).Text())
	}
	p.scan.SkipWhitespaceWithComments(false)
	if err := p.scan.ExpectChar(')'); err != nil {
		return nil, err
	}
	return sel, nil
}
