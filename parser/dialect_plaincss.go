package parser

import "github.com/lukehoban/sass/ast"

// plainCSSDialect inherits every structural operation from scssDialect
// (spec.md §4.6: "PlainCSS inherits SCSS" for every row but plainCSS and
// loud/silent comments) and only changes plainCSS() and comment handling:
// "//" comments are a parse error in plain CSS rather than being skipped.
type plainCSSDialect struct {
	scssDialect
}

// NewPlainCSSDialect returns the dialect driver for plain-CSS mode.
func NewPlainCSSDialect() dialect { return plainCSSDialect{} }

func (plainCSSDialect) plainCSS() bool { return true }

func (plainCSSDialect) silentComment(p *Parser) (ast.Statement, error) {
	return nil, p.errorf("Comments beginning with // are not allowed in plain CSS.", p.pointSpan())
}
