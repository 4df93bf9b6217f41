package parser

import (
	"github.com/lukehoban/sass/ast"
	"github.com/lukehoban/sass/scanner"
)

// spec.md §6 external interface: one exported entry point per parse
// target, each constructing a fresh Parser (C5/C6) or bare Scanner (C1/C2)
// over text and running exactly one grammar production to completion.
// Grounded on lukehoban-browser/css.Parse's single "take a whole document,
// return a whole tree" entry point, split here into the many narrower
// entry points Sass's reparsing needs (a selector, a declaration value, a
// single expression, and so on can each be independently reparsed without
// re-running the enclosing stylesheet grammar).

// ParseSCSS parses text as a full SCSS stylesheet (brace/semicolon
// syntax).
func ParseSCSS(text string, opts ...Option) (*ast.Stylesheet, error) {
	return newParser(text, NewSCSSDialect(), opts...).ParseStylesheet()
}

// ParseIndented parses text as a full indented-syntax stylesheet.
func ParseIndented(text string, opts ...Option) (*ast.Stylesheet, error) {
	return newParser(text, NewIndentedDialect(), opts...).ParseStylesheet()
}

// ParseCSS parses text as plain CSS (spec.md §4.6's restricted dialect).
func ParseCSS(text string, opts ...Option) (*ast.Stylesheet, error) {
	return newParser(text, NewPlainCSSDialect(), opts...).ParseStylesheet()
}

// ParseExpression parses text as a single Sass expression (spec.md §4.4),
// consuming the whole input.
func ParseExpression(text string, opts ...Option) (ast.Expression, error) {
	p := newParser(text, NewSCSSDialect(), opts...)
	p.scan.SkipWhitespaceWithComments(false)
	expr, err := p.expression(exprOptions{})
	if err != nil {
		return nil, err
	}
	p.scan.SkipWhitespaceWithComments(false)
	if err := p.scan.ExpectDone(); err != nil {
		return nil, err
	}
	return expr, nil
}

// ParseVariableDeclaration parses text as a standalone "$name: value
// [!default] [!global]" declaration, with no leading "@" or trailing ";".
func ParseVariableDeclaration(text string, opts ...Option) (*ast.VariableDeclaration, error) {
	p := newParser(text, NewSCSSDialect(), opts...)
	p.scan.SkipWhitespaceWithComments(false)
	stmt, err := p.variableDeclaration()
	if err != nil {
		return nil, err
	}
	if err := p.scan.ExpectDone(); err != nil {
		return nil, err
	}
	return stmt.(*ast.VariableDeclaration), nil
}

// ParseUseRule parses text as the body of an "@use" rule (everything after
// the "@use" keyword itself, e.g. `"foo" as bar with ($x: 1)`).
func ParseUseRule(text string, opts ...Option) (*ast.UseRule, error) {
	p := newParser(text, NewSCSSDialect(), opts...)
	p.scan.SkipWhitespaceWithComments(false)
	st := p.scan.Mark()
	stmt, err := p.useRule(st)
	if err != nil {
		return nil, err
	}
	if err := p.scan.ExpectDone(); err != nil {
		return nil, err
	}
	return stmt.(*ast.UseRule), nil
}

// ParseArgumentDeclaration parses text as a parenthesized argument
// declaration list, e.g. `($a, $b: 1, $rest...)`.
func ParseArgumentDeclaration(text string, opts ...Option) (*ast.ArgumentDeclaration, error) {
	p := newParser(text, NewSCSSDialect(), opts...)
	p.scan.SkipWhitespaceWithComments(false)
	decl, err := p.parseArgumentDeclaration()
	if err != nil {
		return nil, err
	}
	if err := p.scan.ExpectDone(); err != nil {
		return nil, err
	}
	return decl, nil
}

// ParseFunctionSignature parses text as `name(args)` (or bare `name` if
// requireParens is false), returning the name and its argument
// declaration. Used to validate a function reference's signature without
// parsing an entire "@function" rule.
func ParseFunctionSignature(text string, requireParens bool, opts ...Option) (string, *ast.ArgumentDeclaration, error) {
	p := newParser(text, NewSCSSDialect(), opts...)
	p.scan.SkipWhitespaceWithComments(false)
	name, err := p.scan.ReadIdentifier(scanner.IdentifierOptions{Normalize: true})
	if err != nil {
		return "", nil, err
	}
	p.scan.SkipWhitespaceWithComments(false)
	var decl *ast.ArgumentDeclaration
	if r, ok := p.scan.Peek(0); ok && r == '(' {
		decl, err = p.parseArgumentDeclaration()
		if err != nil {
			return "", nil, err
		}
	} else if requireParens {
		return "", nil, p.errorf("expected \"(\".", p.pointSpan())
	} else {
		decl = ast.NewArgumentDeclaration(p.pointSpan(), nil, "")
	}
	if err := p.scan.ExpectDone(); err != nil {
		return "", nil, err
	}
	return name, decl, nil
}
