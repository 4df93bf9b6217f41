package parser

import (
	"strconv"
	"strings"

	"github.com/lukehoban/sass/ast"
	"github.com/lukehoban/sass/logger"
)

// indentedDialect is the whitespace-sensitive Sass surface syntax (spec.md
// §4.6): no braces or semicolons, nesting is conveyed by indentation. The
// indent character (space or tab, fixed by the document's first indented
// line) and the indentation level statements are currently being read at
// are carried as mutable state on the dialect value itself -- one
// indentedDialect instance lives for the whole of one parse.
type indentedDialect struct {
	indentChar    rune // 0 until the first indented line fixes it
	currentIndent int  // indentation level of the statement list being read
}

// NewIndentedDialect returns the dialect driver for indented Sass.
func NewIndentedDialect() dialect { return &indentedDialect{currentIndent: -1} }

func (d *indentedDialect) indented() bool { return true }
func (d *indentedDialect) plainCSS() bool { return false }

// styleRuleSelector scans raw selector text a line at a time: a trailing
// "," continues the selector onto the next line (spec.md §4.6).
func (d *indentedDialect) styleRuleSelector(p *Parser) (*ast.Interpolation, error) {
	start := p.scan.Mark()
	var items []ast.InterpolationItem
	for {
		part, err := p.almostAnyValue(false)
		if err != nil {
			return nil, err
		}
		items = append(items, part.Items...)
		text, isPlain := part.AsPlain()
		if !isPlain || !strings.HasSuffix(strings.TrimRight(text, " \t"), ",") {
			break
		}
		if r, ok := p.scan.Peek(0); !ok || r != '\n' {
			break
		}
		p.scan.Read()
		items = append(items, ast.InterpolationItem{Text: "\n", Item: p.pointSpan()})
	}
	return ast.NewInterpolation(p.spanFrom(start), items), nil
}

// expectStatementSeparator requires a newline or EOF, then forbids the
// following line from being indented deeper than the current level: a
// statement that doesn't open a child block can't be followed by one.
func (d *indentedDialect) expectStatementSeparator(p *Parser, name string) error {
	p.scan.SkipWhitespaceWithoutComments()
	if r, ok := p.scan.Peek(0); ok && r != '\n' && r != '\r' {
		msg := "expected newline."
		if name != "" {
			msg = "expected newline after " + name + "."
		}
		return p.errorf(msg, p.pointSpan())
	}
	if err := d.skipToLineContent(p); err != nil {
		return err
	}
	if p.scan.IsDone() {
		return nil
	}
	indent, err := d.lineIndent(p)
	if err != nil {
		return err
	}
	if indent > d.currentIndent {
		return p.errorf("Nothing may be indented here.", p.pointSpan())
	}
	return nil
}

// atEndOfStatement reports whether the cursor sits just before a newline
// or EOF.
func (d *indentedDialect) atEndOfStatement(p *Parser) bool {
	r, ok := p.scan.Peek(0)
	return !ok || r == '\n' || r == '\r'
}

// lookingAtChildren is a non-mutating peek at whether the next line is
// indented deeper than the current level.
func (d *indentedDialect) lookingAtChildren(p *Parser) bool {
	mark := p.scan.Mark()
	savedChar := d.indentChar
	defer func() {
		p.scan.Reset(mark)
		d.indentChar = savedChar
	}()
	if err := d.skipToLineContent(p); err != nil {
		return false
	}
	if p.scan.IsDone() {
		return false
	}
	indent, err := d.lineIndent(p)
	if err != nil {
		return false
	}
	return indent > d.currentIndent
}

// scanElse matches an "@else" (or deprecated "@elseif") that begins a line
// indented exactly as deep as the "@if" it pairs with (ifIndentation is the
// code-unit offset of that "@if"'s leading "@"). After "@elseif" the
// scanner is left just before its "if", so the caller reads an "@else if".
func (d *indentedDialect) scanElse(p *Parser, ifIndentation int) bool {
	ifIndent := p.file().Location(ifIndentation).Column
	mark := p.scan.Mark()
	savedChar := d.indentChar
	fail := func() bool {
		p.scan.Reset(mark)
		d.indentChar = savedChar
		return false
	}
	if err := d.skipToLineContent(p); err != nil || p.scan.IsDone() {
		return fail()
	}
	indent, err := d.lineIndent(p)
	if err != nil || indent != ifIndent {
		return fail()
	}
	for i := 0; i < indent; i++ {
		p.scan.Read()
	}
	if !p.scan.ScanChar('@') {
		return fail()
	}
	if p.scanKeyword("else") {
		return true
	}
	if p.scanKeyword("elseif") {
		p.logger.WarnForDeprecation(logger.ElseIf,
			"@elseif is deprecated and will not be supported in future Sass versions.\n"+
				"Use \"@else if\" instead.", p.spanFrom(mark))
		p.scan.SetPosition(p.scan.Position() - 2)
		return true
	}
	return fail()
}

// children consumes every following line that's indented deeper than the
// current level as a single child-statement block; an empty result (no
// error) means the next line isn't indented further, i.e. there's no block
// here at all.
func (d *indentedDialect) children(p *Parser, child func() (ast.Statement, error)) ([]ast.Statement, error) {
	if err := d.skipToLineContent(p); err != nil {
		return nil, err
	}
	if p.scan.IsDone() {
		return nil, nil
	}
	indent, err := d.lineIndent(p)
	if err != nil {
		return nil, err
	}
	if indent <= d.currentIndent {
		return nil, nil
	}
	saved := d.currentIndent
	d.currentIndent = indent
	defer func() { d.currentIndent = saved }()

	var stmts []ast.Statement
	for {
		for i := 0; i < indent; i++ {
			p.scan.Read()
		}
		stmt, err := child()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		if err := d.skipToLineContent(p); err != nil {
			return nil, err
		}
		if p.scan.IsDone() {
			break
		}
		next, err := d.lineIndent(p)
		if err != nil {
			return nil, err
		}
		if next < indent {
			break
		}
		if next > indent {
			return nil, p.errorf("Inconsistent indentation, expected "+strconv.Itoa(indent)+" spaces.", p.pointSpan())
		}
	}
	return stmts, nil
}

// statements is the top-level statement list: indentation must start at
// zero, and every top-level statement must stay there.
func (d *indentedDialect) statements(p *Parser, stmt func() (ast.Statement, error)) ([]ast.Statement, error) {
	if err := d.skipToLineContent(p); err != nil {
		return nil, err
	}
	if !p.scan.IsDone() {
		indent, err := d.lineIndent(p)
		if err != nil {
			return nil, err
		}
		if indent > 0 {
			return nil, p.errorf("Indenting at the beginning of the document is illegal.", p.pointSpan())
		}
	}
	d.currentIndent = -1
	var stmts []ast.Statement
	for !p.scan.IsDone() {
		s, err := stmt()
		if err != nil {
			return nil, err
		}
		if s != nil {
			stmts = append(stmts, s)
		}
		if err := d.skipToLineContent(p); err != nil {
			return nil, err
		}
		if p.scan.IsDone() {
			break
		}
		indent, err := d.lineIndent(p)
		if err != nil {
			return nil, err
		}
		if indent > 0 {
			return nil, p.errorf("Inconsistent indentation, expected 0 spaces.", p.pointSpan())
		}
	}
	return stmts, nil
}

// silentComment consumes a "//" comment and returns it as a SilentComment
// holding its raw text, without indentation-aware reconstruction.
func (d *indentedDialect) silentComment(p *Parser) (ast.Statement, error) {
	st := p.scan.Mark()
	p.scan.SkipSilentComment()
	return ast.NewSilentComment(p.spanFrom(st), p.spanFrom(st).Text()), nil
}

// loudComment consumes a "/* ... */" comment the same way SCSS does (see
// scanLoudCommentBody): indented Sass allows it to open on its own line
// and its body is scanned identically once "/*" is found.
func (d *indentedDialect) loudComment(p *Parser) (ast.Statement, error) {
	st := p.scan.Mark()
	text, err := scanLoudCommentBody(p)
	if err != nil {
		return nil, err
	}
	return ast.NewLoudComment(p.spanFrom(st), text), nil
}

// skipToLineContent consumes a pending newline (and CR) and any further
// wholly-blank lines, stopping at the start of the next line with
// content, or at EOF. It leaves that line's own
// indentation whitespace unconsumed -- callers peek it with lineIndent and
// decide whether to actually consume it. It's a no-op if the cursor isn't
// sitting at a newline already (so it's safe to call more than once).
func (d *indentedDialect) skipToLineContent(p *Parser) error {
	for {
		r, ok := p.scan.Peek(0)
		if !ok {
			return nil
		}
		if r == '\r' {
			p.scan.Read()
			continue
		}
		if r != '\n' {
			return nil
		}
		p.scan.Read()
		n, err := d.lineIndent(p)
		if err != nil {
			return err
		}
		r2, ok2 := p.scan.Peek(n)
		if ok2 && r2 != '\n' && r2 != '\r' {
			return nil
		}
		// wholly blank line: consume its indentation too and keep looking.
		for i := 0; i < n; i++ {
			p.scan.Read()
		}
	}
}

// lineIndent peeks (without consuming) the run of ' '/'\t' characters
// starting at the cursor, validating it against the document's fixed
// indent character (spec.md §8 Testable Property 6).
func (d *indentedDialect) lineIndent(p *Parser) (int, error) {
	i := 0
	sawSpace, sawTab := false, false
	for {
		r, ok := p.scan.Peek(i)
		if !ok || (r != ' ' && r != '\t') {
			break
		}
		if r == ' ' {
			sawSpace = true
		} else {
			sawTab = true
		}
		i++
	}
	if sawSpace && sawTab {
		return 0, p.errorf("Tabs and spaces may not be mixed.", p.pointSpan())
	}
	if i == 0 {
		return 0, nil
	}
	ch := rune(' ')
	if sawTab {
		ch = '\t'
	}
	if d.indentChar == 0 {
		d.indentChar = ch
	} else if d.indentChar != ch {
		want, got := "spaces", "tabs"
		if d.indentChar == '\t' {
			want, got = "tabs", "spaces"
		}
		return 0, p.errorf("Expected "+want+", was "+got+".", p.pointSpan())
	}
	return i, nil
}
