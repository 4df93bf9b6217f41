package parser

import (
	"strings"

	"github.com/lukehoban/sass/ast"
	"github.com/lukehoban/sass/logger"
	"github.com/lukehoban/sass/scanner"
)

// spec.md §4.5 C5: the dialect-agnostic statement grammar. Grounded on
// lukehoban-browser/css.Parser's parseRule/parseDeclarations/
// parseDeclaration shape (peek a token, decide what kind of rule it opens,
// dispatch), generalized with the context-flag guards and the
// declaration-vs-selector disambiguation CSS's unambiguous grammar never
// needed.

// recognizedAtRules is the exhaustive set of at-rule names spec.md §6
// dispatches by name; anything else (including any name that isn't plain
// text) falls through to the generic unknown_at_rule production.
var recognizedAtRules = map[string]bool{
	"at-root": true, "charset": true, "content": true, "debug": true,
	"each": true, "error": true, "extend": true, "for": true,
	"forward": true, "function": true, "if": true, "import": true,
	"include": true, "media": true, "mixin": true, "-moz-document": true,
	"return": true, "supports": true, "use": true, "warn": true,
	"while": true,
}

// ParseStylesheet is the C5 top-level entry point: skip a leading BOM,
// collect the dialect's top-level statement list, and append a
// forward-declared null VariableDeclaration for every name that appeared
// anywhere with the `!global` flag (spec.md §4.5).
func (p *Parser) ParseStylesheet() (*ast.Stylesheet, error) {
	p.skipBOM()
	st := p.scan.Mark()
	stmts, err := p.dialect.statements(p, p.statement)
	if err != nil {
		return nil, err
	}
	seenGlobal := map[string]bool{}
	for _, name := range p.globalDeclarations {
		if seenGlobal[name] {
			continue
		}
		seenGlobal[name] = true
		stmts = append(stmts, ast.NewVariableDeclaration(p.pointSpan(), "", name, nil, false, true))
	}
	if err := p.scan.ExpectDone(); err != nil {
		return nil, err
	}
	return ast.NewStylesheet(p.spanFrom(st), stmts, p.dialect.plainCSS(), p.file().URL), nil
}

// statement parses one top-level-or-child statement (spec.md §4.5): the
// dispatcher shared by the top-level statement list and every block's
// child list.
func (p *Parser) statement() (ast.Statement, error) {
	r, ok := p.scan.Peek(0)
	if !ok {
		return nil, p.errorf("expected statement.", p.pointSpan())
	}
	switch {
	case r == '@':
		return p.atRuleStatement()
	case r == '$':
		return p.variableDeclaration()
	case r == '/':
		if r2, ok2 := p.scan.Peek(1); ok2 && r2 == '/' {
			return p.dialect.silentComment(p)
		}
		if r2, ok2 := p.scan.Peek(1); ok2 && r2 == '*' {
			return p.dialect.loudComment(p)
		}
		return p.declarationOrStyleRule()
	default:
		return p.declarationOrStyleRule()
	}
}

// ----------------------------------------------------------------------
// Variable declarations.

// variableDeclaration parses `[namespace.]$name: value [!default] [!global]`
// (spec.md §4.5): the flags may appear in either order; a duplicate flag
// warns; `!global` on a namespaced name is an error.
func (p *Parser) variableDeclaration() (ast.Statement, error) {
	st := p.scan.Mark()
	namespace, name, err := p.namespacedDollarName()
	if err != nil {
		return nil, err
	}
	p.scan.SkipWhitespaceWithComments(false)
	if err := p.scan.ExpectChar(':'); err != nil {
		return nil, err
	}
	p.scan.SkipWhitespaceWithComments(false)
	value, err := p.expression(exprOptions{})
	if err != nil {
		return nil, err
	}
	var isDefault, isGlobal bool
	for {
		mark := p.scan.Mark()
		p.scan.SkipWhitespaceWithComments(false)
		if !p.scan.ScanChar('!') {
			p.scan.Reset(mark)
			break
		}
		flagStart := p.scan.Mark()
		flag, err := p.scan.ReadIdentifier(scanner.IdentifierOptions{})
		if err != nil {
			return nil, err
		}
		switch strings.ToLower(flag) {
		case "default":
			if isDefault {
				p.logger.WarnForDeprecation(logger.DuplicateVarFlags,
					"!default is repeated for variable \"$"+name+"\".", p.spanFrom(flagStart))
			}
			isDefault = true
		case "global":
			if namespace != "" {
				return nil, p.errorf("!global isn't allowed for variables in other modules.", p.spanFrom(flagStart))
			}
			if isGlobal {
				p.logger.WarnForDeprecation(logger.DuplicateVarFlags,
					"!global is repeated for variable \"$"+name+"\".", p.spanFrom(flagStart))
			}
			isGlobal = true
		default:
			return nil, p.errorf("Invalid flag name.", p.spanFrom(flagStart))
		}
	}
	if err := p.dialect.expectStatementSeparator(p, "variable declaration"); err != nil {
		return nil, err
	}
	if isGlobal {
		p.globalDeclarations = append(p.globalDeclarations, name)
	}
	return ast.NewVariableDeclaration(p.spanFrom(st), namespace, name, value, isDefault, isGlobal), nil
}

// namespacedDollarName parses `[ident.]$name`, normalizing underscores to
// hyphens the way every Sass identifier does.
func (p *Parser) namespacedDollarName() (namespace, name string, err error) {
	st := p.scan.Mark()
	if p.scan.LookingAtIdentifier() && !p.scan.MatchesString("$") {
		ident, ierr := p.scan.ReadIdentifier(scanner.IdentifierOptions{Normalize: true})
		if ierr == nil && p.scan.ScanChar('.') {
			namespace = ident
		} else {
			p.scan.Reset(st)
		}
	}
	if err = p.scan.ExpectChar('$'); err != nil {
		return
	}
	name, err = p.scan.ReadIdentifier(scanner.IdentifierOptions{Normalize: true})
	return
}

// ----------------------------------------------------------------------
// Declaration-vs-selector disambiguation (spec.md §4.5).
//
// The nine-step algorithm: scan an interpolated identifier/almost-any-
// value prefix, then peek at what follows to decide whether what was
// scanned is a property name (declaration) or the start of a selector
// (style rule), backtracking to re-scan as a selector whenever a
// declaration-only production (e.g. a lone ':') turns out to not be one.
func (p *Parser) declarationOrStyleRule() (ast.Statement, error) {
	if p.dialect.plainCSS() {
		return p.plainCSSDeclarationOrStyleRule()
	}
	st := p.scan.Mark()

	// Step 1: custom properties ("--name") never look like selectors, so
	// the fast path is to try a declaration directly and only back off to
	// a selector if what follows "--name" isn't ":".
	if stmt, ok, err := p.tryDeclaration(st); err != nil {
		return nil, err
	} else if ok {
		return stmt, nil
	}
	p.scan.Reset(st)
	return p.styleRule(st)
}

// tryDeclaration speculatively parses a declaration starting at st,
// returning ok=false (with the scanner rewound to st) if what follows the
// property name isn't a declaration after all.
//
// "a:hover { color: red }" is the hard case: it's ambiguous between a
// nested declaration (name "a", bare-word value "hover") and a style rule
// (type selector "a", pseudo-class ":hover"). The only signal available
// right after the ':' is whether it's immediately followed (no
// whitespace) by something identifier-shaped -- couldBeSelector tracks
// that, and steps 8/9 below use it to force a selector re-parse once it's
// clear the text can't be a plain declaration.
func (p *Parser) tryDeclaration(st scanner.State) (ast.Statement, bool, error) {
	if !p.looksLikeDeclarationStart() {
		return nil, false, nil
	}
	name, err := p.declarationName()
	if err != nil {
		p.scan.Reset(st)
		return nil, false, nil
	}
	p.scan.SkipWhitespaceWithoutComments()
	if !p.scan.ScanChar(':') {
		p.scan.Reset(st)
		return nil, false, nil
	}
	// A single ':' followed by another ':' is a pseudo-selector
	// ("a::before"), not a declaration colon.
	if r, ok := p.scan.Peek(0); ok && r == ':' {
		p.scan.Reset(st)
		return nil, false, nil
	}

	plainName, isPlain := name.AsPlain()
	if isPlain && len(plainName) >= 2 && plainName[0] == '-' && plainName[1] == '-' {
		p.scan.SkipWhitespaceWithComments(false)
		return p.customPropertyDeclaration(st, name)
	}

	beforeWhitespace := p.scan.Mark()
	p.scan.SkipWhitespaceWithComments(false)
	couldBeSelector := p.scan.Mark().Pos == beforeWhitespace.Pos && p.scan.LookingAtIdentifier()

	// Indented Sass has no "{" to disambiguate against, so step 8 hard-codes
	// "foo:bar" as always a selector there.
	if p.dialect.indented() && couldBeSelector {
		p.scan.Reset(st)
		return nil, false, nil
	}

	if p.atEndOfDeclarationValue() {
		// "foo: {" (no bare value, only nested children) or "foo:;".
		children, hasChildren, err := p.tryDeclarationChildren()
		if err != nil {
			return nil, false, err
		}
		if hasChildren {
			if err := p.dialect.expectStatementSeparator(p, "declaration"); err != nil {
				return nil, false, err
			}
			return ast.NewDeclaration(p.spanFrom(st), name, nil, children), true, nil
		}
		p.scan.Reset(st)
		return nil, false, nil
	}

	value, err := p.expression(exprOptions{})
	if err != nil {
		if couldBeSelector {
			p.scan.Reset(st)
			return nil, false, nil
		}
		return nil, false, err
	}
	children, hasChildren, err := p.tryDeclarationChildren()
	if err != nil {
		return nil, false, err
	}
	if hasChildren {
		// Step 9: a value followed by a children block, reached via the
		// could-be-selector path, is forced back to a selector re-parse
		// ("a:hover { ... }"); a genuine nested-property value like
		// "font: 12px/30px { ... }" isn't ambiguous (there was whitespace
		// after the colon) and keeps its Declaration shape.
		if couldBeSelector {
			p.scan.Reset(st)
			return nil, false, nil
		}
	} else if couldBeSelector && !p.dialect.atEndOfStatement(p) {
		// Properties that are ambiguous with selectors can't have
		// additional tokens after them -- that's almost certainly a
		// selector instead.
		p.scan.Reset(st)
		return nil, false, nil
	}
	if !hasChildren {
		if err := p.dialect.expectStatementSeparator(p, "declaration"); err != nil {
			return nil, false, err
		}
	}
	return ast.NewDeclaration(p.spanFrom(st), name, value, children), true, nil
}

// looksLikeDeclarationStart is a cheap lookahead: a statement can only be
// a declaration if it starts with a name character, '-', '#{', or '\'.
func (p *Parser) looksLikeDeclarationStart() bool {
	r, ok := p.scan.Peek(0)
	if !ok {
		return false
	}
	if r == '#' {
		r2, ok2 := p.scan.Peek(1)
		return ok2 && r2 == '{'
	}
	return scanner.IsNameStart(r) || r == '-' || r == '\\'
}

// declarationName parses the (possibly interpolated, possibly namespaced
// via a leading "-") property name.
func (p *Parser) declarationName() (*ast.Interpolation, error) {
	return p.interpolatedIdentifier()
}

// atEndOfDeclarationValue reports whether the cursor is positioned where a
// declaration has no bare value -- immediately at '{' (nested properties
// only) or at the statement terminator.
func (p *Parser) atEndOfDeclarationValue() bool {
	if r, ok := p.scan.Peek(0); ok && r == '{' {
		return true
	}
	return p.dialect.atEndOfStatement(p)
}

// tryDeclarationChildren consumes a `{ ... }` nested-declaration block if
// present (spec.md §3 Declaration.Children).
func (p *Parser) tryDeclarationChildren() ([]ast.Statement, bool, error) {
	if !p.dialect.lookingAtChildren(p) {
		return nil, false, nil
	}
	children, err := p.dialect.children(p, p.statement)
	if err != nil {
		return nil, false, err
	}
	return children, true, nil
}

// customPropertyDeclaration parses a "--custom-prop: <raw value>" whose
// value is captured verbatim rather than through the expression grammar
// (spec.md §8 Testable Property 5), except when the entire value is a
// single #{...} hole.
func (p *Parser) customPropertyDeclaration(st scanner.State, name *ast.Interpolation) (ast.Statement, bool, error) {
	if r, ok := p.scan.Peek(0); ok && r == '#' {
		if r2, ok2 := p.scan.Peek(1); ok2 && r2 == '{' {
			expr, err := p.expression(exprOptions{})
			if err != nil {
				return nil, false, err
			}
			if err := p.dialect.expectStatementSeparator(p, "declaration"); err != nil {
				return nil, false, err
			}
			return ast.NewDeclaration(p.spanFrom(st), name, expr, nil), true, nil
		}
	}
	flags := DefaultDeclarationValueFlags()
	flags.SilentComments = false
	text, err := p.interpolatedDeclarationValue(flags)
	if err != nil {
		return nil, false, err
	}
	value := ast.NewString(text.Span(), text, false)
	if err := p.dialect.expectStatementSeparator(p, "declaration"); err != nil {
		return nil, false, err
	}
	return ast.NewDeclaration(p.spanFrom(st), name, value, nil), true, nil
}

// styleRule parses a selector-headed rule, asking the dialect for the raw
// (re-parsable) selector text.
func (p *Parser) styleRule(st scanner.State) (ast.Statement, error) {
	selector, err := p.dialect.styleRuleSelector(p)
	if err != nil {
		return nil, err
	}
	var children []ast.Statement
	err = p.withFlags(func(f *flags) { f.inStyleRule = true }, func() error {
		children, err = p.dialect.children(p, p.statement)
		return err
	})
	if err != nil {
		return nil, err
	}
	if p.dialect.indented() && len(children) == 0 {
		p.logger.Warn("This selector doesn't have any properties and won't be rendered.", p.spanFrom(st))
	}
	return ast.NewStyleRule(p.spanFrom(st), selector, children), nil
}

// plainCSSDeclarationOrStyleRule applies the same disambiguation in plain
// CSS mode (spec.md §4.6). Interpolation, `$` variables and `&` are
// rejected there by the interpolation and expression scanners; Sass-only
// operators in a value are not rejected. Nested properties are still
// permitted (CSS nesting).
func (p *Parser) plainCSSDeclarationOrStyleRule() (ast.Statement, error) {
	st := p.scan.Mark()
	if stmt, ok, err := p.tryDeclaration(st); err != nil {
		return nil, err
	} else if ok {
		return stmt, nil
	}
	p.scan.Reset(st)
	return p.styleRule(st)
}

// ----------------------------------------------------------------------
// At-rules.

func (p *Parser) atRuleStatement() (ast.Statement, error) {
	st := p.scan.Mark()
	if err := p.scan.ExpectChar('@'); err != nil {
		return nil, err
	}
	nameStart := p.scan.Mark()
	name, err := p.interpolatedIdentifier()
	if err != nil {
		return nil, err
	}
	plain, isPlain := name.AsPlain()
	lower := strings.ToLower(plain)
	if isPlain && recognizedAtRules[lower] {
		return p.dispatchAtRule(st, lower)
	}
	if isPlain && lower == "else" {
		return nil, p.errorf("@else rule is not allowed here.", p.spanFrom(nameStart))
	}
	return p.unknownAtRule(st, name)
}

// plainCSSAllowedAtRules is the fixed allow-list spec.md §4.6 gives plain
// CSS mode; every other recognized Sass at-rule name is rejected there
// (unknown names still pass through unknownAtRule unconditionally).
var plainCSSAllowedAtRules = map[string]bool{
	"import": true, "media": true, "supports": true, "-moz-document": true,
}

func (p *Parser) dispatchAtRule(st scanner.State, name string) (ast.Statement, error) {
	if p.dialect.plainCSS() && !plainCSSAllowedAtRules[name] {
		return nil, p.errorf("This at-rule isn't allowed in plain CSS.", p.spanFrom(st))
	}
	switch name {
	case "charset":
		return p.atCharset(st)
	case "at-root":
		return p.atRootRule(st)
	case "content":
		return p.contentRule(st)
	case "debug":
		return p.debugRule(st)
	case "each":
		return p.eachRule(st)
	case "error":
		return p.errorRule(st)
	case "extend":
		return p.extendRule(st)
	case "for":
		return p.forRule(st)
	case "forward":
		return p.forwardRule(st)
	case "function":
		return p.functionRule(st)
	case "if":
		return p.ifRule(st)
	case "import":
		return p.importRule(st)
	case "include":
		return p.includeRule(st)
	case "media":
		return p.mediaRule(st)
	case "mixin":
		return p.mixinRule(st)
	case "-moz-document":
		return p.mozDocumentRule(st)
	case "return":
		return p.returnRule(st)
	case "supports":
		return p.supportsRule(st)
	case "use":
		return p.useRule(st)
	case "warn":
		return p.warnRule(st)
	case "while":
		return p.whileRule(st)
	}
	panic("unreachable: unrecognized at-rule dispatched: " + name)
}

// markNonUseRule records that a statement other than @charset/@use/
// @forward has been seen, so a later @use/@forward can report the
// "must come before other rules" error (spec.md §4.5).
func (p *Parser) markNonUseRule() {
	p.seenNonUseRule = true
	p.flags.isUseAllowed = false
}

func (p *Parser) atCharset(st scanner.State) (ast.Statement, error) {
	p.scan.SkipWhitespaceWithComments(false)
	if _, _, err := p.interpolatedString(); err != nil {
		return nil, err
	}
	if err := p.dialect.expectStatementSeparator(p, "@charset rule"); err != nil {
		return nil, err
	}
	p.markNonUseRule()
	// @charset carries no information useful past the parse: it's dropped
	// rather than represented with a dedicated node.
	return nil, nil
}

func (p *Parser) atRootRule(st scanner.State) (ast.Statement, error) {
	p.markNonUseRule()
	p.scan.SkipWhitespaceWithComments(false)
	var query *ast.AtRootQuery
	if p.scan.MatchesString("(") {
		q, err := p.atRootQuery()
		if err != nil {
			return nil, err
		}
		query = q
		p.scan.SkipWhitespaceWithComments(false)
	}
	var children []ast.Statement
	if p.dialect.lookingAtChildren(p) {
		var err error
		children, err = p.dialect.children(p, p.statement)
		if err != nil {
			return nil, err
		}
	} else {
		// "@at-root .foo { ... }" shorthand: a single style rule nested
		// directly under the at-root, with no explicit braces of its own.
		stmt, err := p.declarationOrStyleRule()
		if err != nil {
			return nil, err
		}
		children = []ast.Statement{stmt}
	}
	return ast.NewAtRootRule(p.spanFrom(st), query, children), nil
}

// atRootQuery parses `(with: rule rule ...)` / `(without: ...)`, sharing
// its implementation with the standalone ParseAtRootQuery API (atroot.go).
func (p *Parser) atRootQuery() (*ast.AtRootQuery, error) {
	return parseAtRootQueryBody(p)
}

func (p *Parser) contentRule(st scanner.State) (ast.Statement, error) {
	p.markNonUseRule()
	if !p.flags.inMixin {
		return nil, p.errorf("@content is only allowed within mixin declarations.", p.spanFrom(st))
	}
	var args *ast.ArgumentInvocation
	mark := p.scan.Mark()
	p.scan.SkipWhitespaceWithoutComments()
	if p.scan.MatchesString("(") {
		a, err := p.parseArgumentInvocation()
		if err != nil {
			return nil, err
		}
		args = a
	} else {
		p.scan.Reset(mark)
	}
	if err := p.dialect.expectStatementSeparator(p, "@content rule"); err != nil {
		return nil, err
	}
	return ast.NewContentRule(p.spanFrom(st), args), nil
}

func (p *Parser) debugRule(st scanner.State) (ast.Statement, error) {
	p.markNonUseRule()
	p.scan.SkipWhitespaceWithComments(false)
	value, err := p.expression(exprOptions{})
	if err != nil {
		return nil, err
	}
	if err := p.dialect.expectStatementSeparator(p, "@debug rule"); err != nil {
		return nil, err
	}
	return ast.NewDebugRule(p.spanFrom(st), value), nil
}

func (p *Parser) warnRule(st scanner.State) (ast.Statement, error) {
	p.markNonUseRule()
	p.scan.SkipWhitespaceWithComments(false)
	value, err := p.expression(exprOptions{})
	if err != nil {
		return nil, err
	}
	if err := p.dialect.expectStatementSeparator(p, "@warn rule"); err != nil {
		return nil, err
	}
	return ast.NewWarnRule(p.spanFrom(st), value), nil
}

func (p *Parser) errorRule(st scanner.State) (ast.Statement, error) {
	p.markNonUseRule()
	p.scan.SkipWhitespaceWithComments(false)
	value, err := p.expression(exprOptions{})
	if err != nil {
		return nil, err
	}
	if err := p.dialect.expectStatementSeparator(p, "@error rule"); err != nil {
		return nil, err
	}
	return ast.NewErrorRule(p.spanFrom(st), value), nil
}

func (p *Parser) returnRule(st scanner.State) (ast.Statement, error) {
	p.markNonUseRule()
	if !p.flags.inFunction {
		return nil, p.errorf("@return is only allowed within function declarations.", p.spanFrom(st))
	}
	p.scan.SkipWhitespaceWithComments(false)
	value, err := p.expression(exprOptions{})
	if err != nil {
		return nil, err
	}
	if err := p.dialect.expectStatementSeparator(p, "@return rule"); err != nil {
		return nil, err
	}
	return ast.NewReturnRule(p.spanFrom(st), value), nil
}

func (p *Parser) extendRule(st scanner.State) (ast.Statement, error) {
	p.markNonUseRule()
	if !p.flags.inStyleRule && !p.flags.inMixin && !p.flags.inContentBlock {
		return nil, p.errorf("@extend may only be used within style rules.", p.spanFrom(st))
	}
	p.scan.SkipWhitespaceWithComments(false)
	selector, err := p.almostAnyValue(true)
	if err != nil {
		return nil, err
	}
	optional := false
	mark := p.scan.Mark()
	p.scan.SkipWhitespaceWithoutComments()
	if p.scan.ScanChar('!') {
		flag, ferr := p.scan.ReadIdentifier(scanner.IdentifierOptions{})
		if ferr == nil && strings.ToLower(flag) == "optional" {
			optional = true
		} else {
			p.scan.Reset(mark)
		}
	} else {
		p.scan.Reset(mark)
	}
	if err := p.dialect.expectStatementSeparator(p, "@extend rule"); err != nil {
		return nil, err
	}
	return ast.NewExtendRule(p.spanFrom(st), selector, optional), nil
}

func (p *Parser) eachRule(st scanner.State) (ast.Statement, error) {
	p.markNonUseRule()
	p.scan.SkipWhitespaceWithComments(false)
	var vars []string
	for {
		if err := p.scan.ExpectChar('$'); err != nil {
			return nil, err
		}
		name, err := p.scan.ReadIdentifier(scanner.IdentifierOptions{Normalize: true})
		if err != nil {
			return nil, err
		}
		vars = append(vars, name)
		p.scan.SkipWhitespaceWithComments(false)
		if !p.scan.ScanChar(',') {
			break
		}
		p.scan.SkipWhitespaceWithComments(false)
	}
	if !p.scanKeyword("in") {
		return nil, p.errorf("Expected \"in\".", p.pointSpan())
	}
	p.scan.SkipWhitespaceWithComments(false)
	list, err := p.expression(exprOptions{})
	if err != nil {
		return nil, err
	}
	var children []ast.Statement
	err = p.withFlags(func(f *flags) { f.inControlDirective = true }, func() error {
		children, err = p.dialect.children(p, p.statement)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ast.NewEachRule(p.spanFrom(st), vars, list, children), nil
}

func (p *Parser) forRule(st scanner.State) (ast.Statement, error) {
	p.markNonUseRule()
	p.scan.SkipWhitespaceWithComments(false)
	if err := p.scan.ExpectChar('$'); err != nil {
		return nil, err
	}
	variable, err := p.scan.ReadIdentifier(scanner.IdentifierOptions{Normalize: true})
	if err != nil {
		return nil, err
	}
	p.scan.SkipWhitespaceWithComments(false)
	if !p.scanKeyword("from") {
		return nil, p.errorf("Expected \"from\".", p.pointSpan())
	}
	p.scan.SkipWhitespaceWithComments(false)
	from, err := p.expression(exprOptions{until: atForBound})
	if err != nil {
		return nil, err
	}
	p.scan.SkipWhitespaceWithComments(false)
	var exclusive bool
	switch {
	case p.scanKeyword("to"):
		exclusive = true
	case p.scanKeyword("through"):
		exclusive = false
	default:
		return nil, p.errorf("Expected \"to\" or \"through\".", p.pointSpan())
	}
	p.scan.SkipWhitespaceWithComments(false)
	to, err := p.expression(exprOptions{})
	if err != nil {
		return nil, err
	}
	var children []ast.Statement
	err = p.withFlags(func(f *flags) { f.inControlDirective = true }, func() error {
		children, err = p.dialect.children(p, p.statement)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ast.NewForRule(p.spanFrom(st), variable, from, to, exclusive, children), nil
}

// atForBound stops the "from" expression's space list at the "to"/
// "through" keyword, which would otherwise be swallowed as an unquoted
// string continuing the space list.
func atForBound(p *Parser) bool {
	mark := p.scan.Mark()
	defer p.scan.Reset(mark)
	return p.scanKeyword("to") || p.scanKeyword("through")
}

func (p *Parser) whileRule(st scanner.State) (ast.Statement, error) {
	p.markNonUseRule()
	p.scan.SkipWhitespaceWithComments(false)
	cond, err := p.expression(exprOptions{})
	if err != nil {
		return nil, err
	}
	var children []ast.Statement
	err = p.withFlags(func(f *flags) { f.inControlDirective = true }, func() error {
		children, err = p.dialect.children(p, p.statement)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ast.NewWhileRule(p.spanFrom(st), cond, children), nil
}

func (p *Parser) ifRule(st scanner.State) (ast.Statement, error) {
	p.markNonUseRule()
	var clauses []ast.IfClause
	p.scan.SkipWhitespaceWithComments(false)
	cond, err := p.expression(exprOptions{})
	if err != nil {
		return nil, err
	}
	var children []ast.Statement
	err = p.withFlags(func(f *flags) { f.inControlDirective = true }, func() error {
		children, err = p.dialect.children(p, p.statement)
		return err
	})
	if err != nil {
		return nil, err
	}
	clauses = append(clauses, ast.IfClause{Condition: cond, Children: children})
	indentation := st
	for p.dialect.scanElse(p, indentation.Pos) {
		mark := p.scan.Mark()
		p.scan.SkipWhitespaceWithComments(false)
		if p.scanKeyword("if") {
			p.scan.SkipWhitespaceWithComments(false)
			elseCond, cerr := p.expression(exprOptions{})
			if cerr != nil {
				return nil, cerr
			}
			var elseChildren []ast.Statement
			cerr = p.withFlags(func(f *flags) { f.inControlDirective = true }, func() error {
				elseChildren, cerr = p.dialect.children(p, p.statement)
				return cerr
			})
			if cerr != nil {
				return nil, cerr
			}
			clauses = append(clauses, ast.IfClause{Condition: elseCond, Children: elseChildren})
			continue
		}
		p.scan.Reset(mark)
		var elseChildren []ast.Statement
		err = p.withFlags(func(f *flags) { f.inControlDirective = true }, func() error {
			elseChildren, err = p.dialect.children(p, p.statement)
			return err
		})
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, ast.IfClause{Condition: nil, Children: elseChildren})
		break
	}
	return ast.NewIfRule(p.spanFrom(st), clauses), nil
}

func (p *Parser) mediaRule(st scanner.State) (ast.Statement, error) {
	p.markNonUseRule()
	p.scan.SkipWhitespaceWithComments(false)
	query, err := p.interpolatedDeclarationValue(DeclarationValueFlags{})
	if err != nil {
		return nil, err
	}
	children, err := p.dialect.children(p, p.statement)
	if err != nil {
		return nil, err
	}
	return ast.NewMediaRule(p.spanFrom(st), query, children), nil
}

func (p *Parser) mozDocumentRule(st scanner.State) (ast.Statement, error) {
	p.markNonUseRule()
	p.logger.WarnForDeprecation(logger.MozDocument,
		"@-moz-document is deprecated and support will be removed from Sass.",
		p.spanFrom(st))
	p.scan.SkipWhitespaceWithComments(false)
	value, err := p.interpolatedDeclarationValue(DeclarationValueFlags{})
	if err != nil {
		return nil, err
	}
	children, err := p.dialect.children(p, p.statement)
	if err != nil {
		return nil, err
	}
	name := ast.NewInterpolation(p.spanFrom(st), []ast.InterpolationItem{{Text: "-moz-document", Item: p.spanFrom(st)}})
	return ast.NewAtRule(p.spanFrom(st), name, value, children), nil
}

func (p *Parser) supportsRule(st scanner.State) (ast.Statement, error) {
	p.markNonUseRule()
	p.scan.SkipWhitespaceWithComments(false)
	cond, err := p.supportsCondition()
	if err != nil {
		return nil, err
	}
	children, err := p.dialect.children(p, p.statement)
	if err != nil {
		return nil, err
	}
	return ast.NewSupportsRule(p.spanFrom(st), cond, children), nil
}

// supportsCondition parses one `@supports` condition (spec.md §4.7):
// negation, then a chain of and/or operations (never mixed at one level),
// over declaration/interpolation/function/anything atoms.
func (p *Parser) supportsCondition() (ast.SupportsCondition, error) {
	st := p.scan.Mark()
	if p.scanKeyword("not") {
		p.scan.SkipWhitespaceWithComments(false)
		operand, err := p.supportsConditionInParens()
		if err != nil {
			return nil, err
		}
		return ast.NewSupportsNegation(p.spanFrom(st), operand), nil
	}
	left, err := p.supportsConditionInParens()
	if err != nil {
		return nil, err
	}
	var op *ast.SupportsOperator
	for {
		mark := p.scan.Mark()
		p.scan.SkipWhitespaceWithComments(false)
		var thisOp ast.SupportsOperator
		switch {
		case p.scanKeyword("and"):
			thisOp = ast.SupportsAnd
		case p.scanKeyword("or"):
			thisOp = ast.SupportsOr
		default:
			p.scan.Reset(mark)
			return left, nil
		}
		if op != nil && *op != thisOp {
			return nil, p.errorf("\"and\" and \"or\" can't be used together. Use parentheses to disambiguate.", p.pointSpan())
		}
		op = &thisOp
		p.scan.SkipWhitespaceWithComments(false)
		right, err := p.supportsConditionInParens()
		if err != nil {
			return nil, err
		}
		left = ast.NewSupportsOperation(p.spanFrom(st), thisOp, left, right)
	}
}

// supportsConditionInParens parses one parenthesized condition, an
// interpolation hole, or a bare function-shaped feature test.
func (p *Parser) supportsConditionInParens() (ast.SupportsCondition, error) {
	st := p.scan.Mark()
	r, ok := p.scan.Peek(0)
	if !ok {
		return nil, p.errorf("expected \"(\".", p.pointSpan())
	}
	if r == '#' {
		if r2, ok2 := p.scan.Peek(1); ok2 && r2 == '{' {
			expr, err := p.singleInterpolation()
			if err != nil {
				return nil, err
			}
			return ast.NewSupportsInterpolation(p.spanFrom(st), exprAsInterpolation(p, expr, st)), nil
		}
	}
	if r != '(' {
		name, err := p.interpolatedIdentifier()
		if err != nil {
			return nil, err
		}
		if !p.scan.MatchesString("(") {
			return nil, p.errorf("expected \"(\".", p.pointSpan())
		}
		p.scan.Read()
		value, err := p.interpolatedDeclarationValue(DeclarationValueFlags{AllowSemicolon: true, AllowColon: true})
		if err != nil {
			return nil, err
		}
		if err := p.scan.ExpectChar(')'); err != nil {
			return nil, err
		}
		return ast.NewSupportsFunction(p.spanFrom(st), name, value), nil
	}
	mark := p.scan.Mark()
	p.scan.Read()
	p.scan.SkipWhitespaceWithComments(false)
	if p.scanKeyword("not") || p.scan.MatchesString("(") {
		p.scan.Reset(mark)
		p.scan.Read()
		p.scan.SkipWhitespaceWithComments(false)
		cond, err := p.supportsCondition()
		if err != nil {
			return nil, err
		}
		p.scan.SkipWhitespaceWithComments(false)
		if err := p.scan.ExpectChar(')'); err != nil {
			return nil, err
		}
		return cond, nil
	}
	declStart := p.scan.Mark()
	name, err := p.interpolatedIdentifier()
	if err == nil {
		p.scan.SkipWhitespaceWithComments(false)
		if p.scan.ScanChar(':') {
			p.scan.SkipWhitespaceWithComments(false)
			value, verr := p.expression(exprOptions{})
			if verr == nil {
				p.scan.SkipWhitespaceWithComments(false)
				if p.scan.ScanChar(')') {
					return ast.NewSupportsDeclaration(p.spanFrom(mark), name, value), nil
				}
			}
		}
	}
	p.scan.Reset(declStart)
	contents, err := p.interpolatedDeclarationValue(DeclarationValueFlags{AllowSemicolon: true, AllowColon: true})
	if err != nil {
		return nil, err
	}
	if err := p.scan.ExpectChar(')'); err != nil {
		return nil, err
	}
	return ast.NewSupportsAnything(p.spanFrom(mark), contents), nil
}

func exprAsInterpolation(p *Parser, expr ast.Expression, st scanner.State) *ast.Interpolation {
	return ast.NewInterpolation(p.spanFrom(st), []ast.InterpolationItem{{Expr: expr, Item: p.spanFrom(st)}})
}

func (p *Parser) functionRule(st scanner.State) (ast.Statement, error) {
	p.markNonUseRule()
	if p.flags.inMixin || p.flags.inControlDirective {
		return nil, p.errorf("Mixins may not contain function declarations.", p.spanFrom(st))
	}
	p.scan.SkipWhitespaceWithComments(false)
	name, err := p.scan.ReadIdentifier(scanner.IdentifierOptions{Normalize: true})
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(name) {
	case "calc", "element", "expression", "url", "and", "or", "not", "clamp":
		return nil, p.errorf("Invalid function name.", p.spanFrom(st))
	}
	p.scan.SkipWhitespaceWithComments(false)
	args, err := p.parseArgumentDeclaration()
	if err != nil {
		return nil, err
	}
	var children []ast.Statement
	err = p.withFlags(func(f *flags) { f.inFunction = true }, func() error {
		children, err = p.dialect.children(p, p.statement)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionRule(p.spanFrom(st), name, args, children), nil
}

func (p *Parser) mixinRule(st scanner.State) (ast.Statement, error) {
	p.markNonUseRule()
	if p.flags.inMixin || p.flags.inControlDirective {
		return nil, p.errorf("Mixins may not contain mixin declarations.", p.spanFrom(st))
	}
	p.scan.SkipWhitespaceWithComments(false)
	name, err := p.scan.ReadIdentifier(scanner.IdentifierOptions{Normalize: true})
	if err != nil {
		return nil, err
	}
	p.scan.SkipWhitespaceWithComments(false)
	var args *ast.ArgumentDeclaration
	if p.scan.MatchesString("(") {
		args, err = p.parseArgumentDeclaration()
		if err != nil {
			return nil, err
		}
		p.scan.SkipWhitespaceWithComments(false)
	}
	var children []ast.Statement
	hasContent := false
	err = p.withFlags(func(f *flags) { f.inMixin = true }, func() error {
		children, err = p.dialect.children(p, p.statement)
		return err
	})
	if err != nil {
		return nil, err
	}
	for _, c := range children {
		if _, ok := c.(*ast.ContentRule); ok {
			hasContent = true
			break
		}
	}
	return ast.NewMixinRule(p.spanFrom(st), name, args, hasContent, children), nil
}

func (p *Parser) includeRule(st scanner.State) (ast.Statement, error) {
	p.markNonUseRule()
	p.scan.SkipWhitespaceWithComments(false)
	namespace, name, err := p.namespacedPlainName()
	if err != nil {
		return nil, err
	}
	var args *ast.ArgumentInvocation
	mark := p.scan.Mark()
	if p.scan.MatchesString("(") {
		args, err = p.parseArgumentInvocation()
		if err != nil {
			return nil, err
		}
	} else {
		p.scan.Reset(mark)
		args = ast.NewArgumentInvocation(p.pointSpan(), nil, nil, nil, nil)
	}
	p.scan.SkipWhitespaceWithComments(false)
	var contentParams *ast.ArgumentDeclaration
	if p.scanKeyword("using") {
		p.scan.SkipWhitespaceWithComments(false)
		contentParams, err = p.parseArgumentDeclaration()
		if err != nil {
			return nil, err
		}
		p.scan.SkipWhitespaceWithComments(false)
	}
	var content *ast.ContentBlock
	if p.dialect.lookingAtChildren(p) {
		cst := p.scan.Mark()
		var children []ast.Statement
		err = p.withFlags(func(f *flags) { f.inContentBlock = true }, func() error {
			children, err = p.dialect.children(p, p.statement)
			return err
		})
		if err != nil {
			return nil, err
		}
		content = ast.NewContentBlock(p.spanFrom(cst), contentParams, children)
	} else {
		if err := p.dialect.expectStatementSeparator(p, "@include rule"); err != nil {
			return nil, err
		}
	}
	return ast.NewIncludeRule(p.spanFrom(st), namespace, name, args, content), nil
}

// namespacedPlainName parses `[ident.]ident`, normalizing underscores to
// hyphens in both parts the same way variable names are normalized.
func (p *Parser) namespacedPlainName() (namespace, name string, err error) {
	first, err := p.scan.ReadIdentifier(scanner.IdentifierOptions{Normalize: true})
	if err != nil {
		return "", "", err
	}
	if p.scan.ScanChar('.') {
		namespace = first
		name, err = p.scan.ReadIdentifier(scanner.IdentifierOptions{Normalize: true})
		return namespace, name, err
	}
	return "", first, nil
}

func (p *Parser) importRule(st scanner.State) (ast.Statement, error) {
	p.scan.SkipWhitespaceWithComments(false)
	var imports []ast.Node
	for {
		imp, err := p.importArgument()
		if err != nil {
			return nil, err
		}
		imports = append(imports, imp)
		p.scan.SkipWhitespaceWithComments(false)
		if !p.scan.ScanChar(',') {
			break
		}
		p.scan.SkipWhitespaceWithComments(false)
	}
	if p.flags.inControlDirective || p.flags.inMixin {
		for _, imp := range imports {
			if _, ok := imp.(*ast.DynamicImport); ok {
				return nil, p.errorf("Imports may not be nested.", p.spanFrom(st))
			}
		}
	}
	if err := p.dialect.expectStatementSeparator(p, "@import rule"); err != nil {
		return nil, err
	}
	p.markNonUseRule()
	p.logger.WarnForDeprecation(logger.Import,
		"@import is deprecated; use @use or @forward instead.", p.spanFrom(st))
	return ast.NewImportRule(p.spanFrom(st), imports), nil
}

// importArgument parses one comma-separated @import target: a static CSS
// import (has a media query, an explicit url(), or a ".css" extension) or
// a dynamic Sass module import (spec.md §4.5).
func (p *Parser) importArgument() (ast.Node, error) {
	ist := p.scan.Mark()
	if p.scan.MatchesString("url(") {
		urlStart := p.scan.Mark()
		var urlText *ast.Interpolation
		if raw, ok := p.scan.TryURL(); ok {
			urlText = ast.NewInterpolation(p.spanFrom(urlStart), []ast.InterpolationItem{{Text: "url(" + raw + ")", Item: p.spanFrom(urlStart)}})
		} else {
			expr, err := p.expression(exprOptions{})
			if err != nil {
				return nil, err
			}
			urlText = exprAsInterpolation(p, expr, urlStart)
		}
		media, err := p.tryMediaQueryTail()
		if err != nil {
			return nil, err
		}
		return ast.NewStaticImport(p.spanFrom(ist), urlText, media), nil
	}
	str, _, err := p.interpolatedString()
	if err != nil {
		return nil, err
	}
	plain, isPlain := str.AsPlain()
	isStatic := !isPlain || strings.HasSuffix(plain, ".css") || strings.HasPrefix(plain, "http://") ||
		strings.HasPrefix(plain, "https://") || strings.HasPrefix(plain, "//")
	mark := p.scan.Mark()
	p.scan.SkipWhitespaceWithoutComments()
	hasTrailing := p.looksLikeMediaQueryStart()
	p.scan.Reset(mark)
	if isStatic || hasTrailing {
		media, err := p.tryMediaQueryTail()
		if err != nil {
			return nil, err
		}
		return ast.NewStaticImport(p.spanFrom(ist), str, media), nil
	}
	return ast.NewDynamicImport(p.spanFrom(ist), plain), nil
}

func (p *Parser) looksLikeMediaQueryStart() bool {
	return !p.atEndOfDeclarationValue() && !p.scan.MatchesString(",")
}

func (p *Parser) tryMediaQueryTail() (*ast.Interpolation, error) {
	mark := p.scan.Mark()
	p.scan.SkipWhitespaceWithoutComments()
	if p.atEndOfDeclarationValue() || p.scan.MatchesString(",") {
		p.scan.Reset(mark)
		return nil, nil
	}
	return p.interpolatedDeclarationValue(DeclarationValueFlags{})
}

func (p *Parser) useRule(st scanner.State) (ast.Statement, error) {
	if !p.flags.isUseAllowed {
		return nil, p.errorf("@use rules must be written before any other rules.", p.spanFrom(st))
	}
	p.scan.SkipWhitespaceWithComments(false)
	str, _, err := p.interpolatedString()
	if err != nil {
		return nil, err
	}
	url, _ := str.AsPlain()
	p.scan.SkipWhitespaceWithComments(false)
	namespace := defaultNamespaceFromURL(url)
	wildcard := false
	if p.scanKeyword("as") {
		p.scan.SkipWhitespaceWithComments(false)
		if p.scan.ScanChar('*') {
			wildcard = true
			namespace = ""
		} else {
			namespace, err = p.scan.ReadIdentifier(scanner.IdentifierOptions{Normalize: true})
			if err != nil {
				return nil, err
			}
		}
		p.scan.SkipWhitespaceWithComments(false)
	}
	var config []ast.ConfiguredVariable
	if p.scanKeyword("with") {
		config, err = p.configuration()
		if err != nil {
			return nil, err
		}
	}
	if err := p.dialect.expectStatementSeparator(p, "@use rule"); err != nil {
		return nil, err
	}
	return ast.NewUseRule(p.spanFrom(st), url, namespace, wildcard, config), nil
}

// defaultNamespaceFromURL derives the implicit namespace of a `@use "url"`
// with no explicit `as` clause: the basename, minus extension and any
// leading "_" partial marker (spec.md §5 speculative path 5 -- validated
// by recursively invoking the identifier parser over the candidate text).
func defaultNamespaceFromURL(url string) string {
	base := url
	if i := strings.LastIndexAny(base, "/\\"); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	base = strings.TrimPrefix(base, "_")
	if !IsIdentifier(base) {
		return ""
	}
	return base
}

func (p *Parser) forwardRule(st scanner.State) (ast.Statement, error) {
	if !p.flags.isUseAllowed {
		return nil, p.errorf("@forward rules must be written before any other rules.", p.spanFrom(st))
	}
	p.scan.SkipWhitespaceWithComments(false)
	str, _, err := p.interpolatedString()
	if err != nil {
		return nil, err
	}
	url, _ := str.AsPlain()
	p.scan.SkipWhitespaceWithComments(false)
	prefix := ""
	if p.scanKeyword("as") {
		p.scan.SkipWhitespaceWithComments(false)
		prefix, err = p.scan.ReadIdentifier(scanner.IdentifierOptions{Normalize: true})
		if err != nil {
			return nil, err
		}
		if err := p.scan.ExpectChar('*'); err != nil {
			return nil, err
		}
		p.scan.SkipWhitespaceWithComments(false)
	}
	var shown, hidden []string
	switch {
	case p.scanKeyword("show"):
		shown, err = p.memberList()
		if err != nil {
			return nil, err
		}
	case p.scanKeyword("hide"):
		hidden, err = p.memberList()
		if err != nil {
			return nil, err
		}
	}
	p.scan.SkipWhitespaceWithComments(false)
	var config []ast.ConfiguredVariable
	if p.scanKeyword("with") {
		config, err = p.configuration()
		if err != nil {
			return nil, err
		}
	}
	if err := p.dialect.expectStatementSeparator(p, "@forward rule"); err != nil {
		return nil, err
	}
	return ast.NewForwardRule(p.spanFrom(st), url, prefix, shown, hidden, config), nil
}

func (p *Parser) memberList() ([]string, error) {
	p.scan.SkipWhitespaceWithComments(false)
	var names []string
	for {
		dollar := p.scan.ScanChar('$')
		name, err := p.scan.ReadIdentifier(scanner.IdentifierOptions{Normalize: true})
		if err != nil {
			return nil, err
		}
		if dollar {
			name = "$" + name
		}
		names = append(names, name)
		p.scan.SkipWhitespaceWithComments(false)
		if !p.scan.ScanChar(',') {
			break
		}
		p.scan.SkipWhitespaceWithComments(false)
	}
	return names, nil
}

// configuration parses a `with ($name: value [!default], ...)` clause.
func (p *Parser) configuration() ([]ast.ConfiguredVariable, error) {
	p.scan.SkipWhitespaceWithComments(false)
	if err := p.scan.ExpectChar('('); err != nil {
		return nil, err
	}
	var config []ast.ConfiguredVariable
	for {
		p.scan.SkipWhitespaceWithComments(false)
		cst := p.scan.Mark()
		if err := p.scan.ExpectChar('$'); err != nil {
			return nil, err
		}
		name, err := p.scan.ReadIdentifier(scanner.IdentifierOptions{Normalize: true})
		if err != nil {
			return nil, err
		}
		p.scan.SkipWhitespaceWithComments(false)
		if err := p.scan.ExpectChar(':'); err != nil {
			return nil, err
		}
		p.scan.SkipWhitespaceWithComments(false)
		value, err := p.spaceListExpression(exprOptions{})
		if err != nil {
			return nil, err
		}
		hasDefault := false
		mark := p.scan.Mark()
		p.scan.SkipWhitespaceWithComments(false)
		if p.scan.ScanChar('!') {
			flag, ferr := p.scan.ReadIdentifier(scanner.IdentifierOptions{})
			if ferr == nil && strings.ToLower(flag) == "default" {
				hasDefault = true
			} else {
				p.scan.Reset(mark)
			}
		} else {
			p.scan.Reset(mark)
		}
		config = append(config, *ast.NewConfiguredVariable(p.spanFrom(cst), name, value, hasDefault))
		p.scan.SkipWhitespaceWithComments(false)
		if !p.scan.ScanChar(',') {
			break
		}
		if p.scan.MatchesString(")") {
			break
		}
	}
	if err := p.scan.ExpectChar(')'); err != nil {
		return nil, err
	}
	return config, nil
}

// unknownAtRule is the generic fallback for any at-rule name spec.md §6
// doesn't recognize (or whose name carries interpolation): its payload is
// captured as raw (re-parsable) text, and it may optionally have a block.
func (p *Parser) unknownAtRule(st scanner.State, name *ast.Interpolation) (ast.Statement, error) {
	p.markNonUseRule()
	mark := p.scan.Mark()
	p.scan.SkipWhitespaceWithoutComments()
	var value *ast.Interpolation
	if !p.atEndOfDeclarationValue() {
		flags := DefaultDeclarationValueFlags()
		flags.AllowOpenBrace = false
		v, err := p.interpolatedDeclarationValue(flags)
		if err != nil {
			return nil, err
		}
		value = v
	} else {
		p.scan.Reset(mark)
	}
	var children []ast.Statement
	if p.dialect.lookingAtChildren(p) {
		var err error
		err = p.withFlags(func(f *flags) { f.inUnknownAtRule = true }, func() error {
			children, err = p.dialect.children(p, p.statement)
			return err
		})
		if err != nil {
			return nil, err
		}
	} else {
		if err := p.dialect.expectStatementSeparator(p, "@"+nameText(name)+" rule"); err != nil {
			return nil, err
		}
	}
	return ast.NewAtRule(p.spanFrom(st), name, value, children), nil
}

func nameText(name *ast.Interpolation) string {
	if plain, ok := name.AsPlain(); ok {
		return plain
	}
	return "at-rule"
}

// ----------------------------------------------------------------------
// Argument declarations (spec.md §4.5): `($name[: default], ..., $rest...)`.

func (p *Parser) parseArgumentDeclaration() (*ast.ArgumentDeclaration, error) {
	st := p.scan.Mark()
	if err := p.scan.ExpectChar('('); err != nil {
		return nil, err
	}
	var args []ast.Argument
	seen := map[string]bool{}
	rest := ""
	p.scan.SkipWhitespaceWithComments(false)
	for !p.scan.MatchesString(")") {
		if err := p.scan.ExpectChar('$'); err != nil {
			return nil, err
		}
		name, err := p.scan.ReadIdentifier(scanner.IdentifierOptions{Normalize: true})
		if err != nil {
			return nil, err
		}
		p.scan.SkipWhitespaceWithComments(false)
		if p.scan.ScanString("...") {
			rest = name
			p.scan.SkipWhitespaceWithComments(false)
			break
		}
		if seen[name] {
			return nil, p.errorf("Duplicate argument.", p.pointSpan())
		}
		seen[name] = true
		var def ast.Expression
		if p.scan.ScanChar(':') {
			p.scan.SkipWhitespaceWithComments(false)
			def, err = p.spaceListExpression(exprOptions{until: argDeclBound})
			if err != nil {
				return nil, err
			}
		}
		args = append(args, ast.Argument{Name: name, Default: def})
		p.scan.SkipWhitespaceWithComments(false)
		if !p.scan.ScanChar(',') {
			break
		}
		p.scan.SkipWhitespaceWithComments(false)
	}
	if err := p.scan.ExpectChar(')'); err != nil {
		return nil, err
	}
	return ast.NewArgumentDeclaration(p.spanFrom(st), args, rest), nil
}

func argDeclBound(p *Parser) bool {
	return p.scan.MatchesString(",") || p.scan.MatchesString(")")
}
