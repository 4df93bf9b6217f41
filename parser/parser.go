// Package parser implements the Sass statement and expression grammars:
// C3 interpolation/value scanning, C4 expression parsing, C5 the
// dialect-agnostic statement core, and C6 the three dialect drivers
// (spec.md §4.3-§4.6), plus the companion parsers of §4.7.
//
// Grounded on lukehoban-browser/css.Parser's shape (a struct wrapping a
// Tokenizer, with a Parse() entry point and a family of parseX helpers
// that peek before deciding what to consume) generalized from CSS 2.1's
// unambiguous declaration/selector split to Sass's fully ambiguous,
// interpolation-aware grammar.
package parser

import (
	"github.com/lukehoban/sass/ast"
	"github.com/lukehoban/sass/logger"
	"github.com/lukehoban/sass/scanner"
	"github.com/lukehoban/sass/span"
)

// dialect is the small capability object DESIGN NOTES §9 recommends in
// place of a three-way class hierarchy: SCSS, Indented, and PlainCSS each
// provide one of these, and the shared Parser core calls through it for
// every point spec.md §4.6 says they differ.
type dialect interface {
	indented() bool
	plainCSS() bool
	styleRuleSelector(p *Parser) (*ast.Interpolation, error)
	expectStatementSeparator(p *Parser, name string) error
	atEndOfStatement(p *Parser) bool
	lookingAtChildren(p *Parser) bool
	scanElse(p *Parser, ifIndentation int) bool
	children(p *Parser, child func() (ast.Statement, error)) ([]ast.Statement, error)
	statements(p *Parser, stmt func() (ast.Statement, error)) ([]ast.Statement, error)
	silentComment(p *Parser) (ast.Statement, error)
	loudComment(p *Parser) (ast.Statement, error)
}

// flags bundles the per-parse contextual state of spec.md §4.5, saved and
// restored around child blocks rather than threaded through function
// arguments.
type flags struct {
	inStyleRule       bool
	inMixin           bool
	inContentBlock    bool
	inControlDirective bool
	inUnknownAtRule   bool
	inParentheses     bool
	inExpression      bool
	isUseAllowed      bool
	inFunction        bool
}

// Parser is the shared statement/expression parser core (C5), specialized
// per surface syntax by a dialect implementation (C6).
type Parser struct {
	scan    *scanner.Scanner
	dialect dialect
	logger  logger.Logger
	imap    *span.InterpolationMap

	flags flags

	// globalDeclarations collects every name that appeared anywhere with
	// the !global flag, so parse() can append a forward-declared null
	// VariableDeclaration for each at stylesheet top level (spec.md §4.5).
	globalDeclarations []string
	seenNonUseRule     bool // true once any statement other than @charset/@use/@forward has been seen
}

func newParser(text string, d dialect, opts ...Option) *Parser {
	cfg := options{logger: logger.Silent()}
	for _, o := range opts {
		o(&cfg)
	}
	file := span.NewFile(text, cfg.url)
	p := &Parser{
		scan:    scanner.New(file),
		dialect: d,
		logger:  cfg.logger,
		imap:    cfg.imap,
	}
	p.flags.isUseAllowed = true
	return p
}

func (p *Parser) file() *span.SourceFile { return p.scan.File }

func (p *Parser) spanFrom(st scanner.State) span.Span {
	sp := p.scan.SpanFrom(st)
	if p.imap != nil {
		return p.imap.Map(sp)
	}
	return sp
}

func (p *Parser) pointSpan() span.Span {
	sp := p.scan.PointSpan()
	if p.imap != nil {
		return p.imap.Map(sp)
	}
	return sp
}

func (p *Parser) errorf(message string, sp span.Span) error {
	return span.NewError(message, sp)
}

// withFlags snapshots flags, applies set, runs body, and restores flags
// regardless of how body returns -- the "stack-allocated guard" DESIGN
// NOTES §9 describes, implemented with a plain defer since Go has one.
func (p *Parser) withFlags(set func(*flags), body func() error) error {
	saved := p.flags
	if set != nil {
		set(&p.flags)
	}
	defer func() { p.flags = saved }()
	return body()
}

// skipBOM consumes a leading byte-order-mark code unit (U+FEFF) if present.
func (p *Parser) skipBOM() {
	if r, ok := p.scan.Peek(0); ok && r == '\uFEFF' {
		p.scan.Read()
	}
}
