package scanner

import (
	"strconv"
	"strings"
)

// spec.md §4.2 C2: lexical primitives shared by every dialect and by the
// higher interpolation-aware scanners in package parser. Grounded on
// lukehoban-browser/css/tokenizer.go's readWhitespace/readString/
// readNumber/readIdent/readName/isNameStart/isNameChar, generalized to the
// fuller CSS syntax grammar (escapes, url() backtracking, bracket-balanced
// declaration values) spec.md requires and the teacher's CSS 2.1 subset
// does not.

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

func isNewline(r rune) bool {
	return r == '\n' || r == '\r' || r == '\f'
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// IsNameStart reports whether r can start a CSS identifier's name part
// (not counting the leading '-'/escape handling done by ReadIdentifier).
func IsNameStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r >= 0x80
}

// IsNameChar reports whether r may continue a CSS identifier.
func IsNameChar(r rune) bool {
	return IsNameStart(r) || isDigit(r) || r == '-'
}

// SkipWhitespaceWithComments skips spaces, tabs, newlines, and both silent
// (`//...EOL`) and loud (`/*...*/`) comments. The indented dialect treats a
// bare newline as structurally significant and stops short of consuming it
// when stopBeforeNewline is true.
func (s *Scanner) SkipWhitespaceWithComments(stopBeforeNewline bool) {
	for {
		r, ok := s.Peek(0)
		if !ok {
			return
		}
		if r == '\n' && stopBeforeNewline {
			return
		}
		if isWhitespace(r) {
			s.Read()
			continue
		}
		if r == '/' {
			if r2, ok2 := s.Peek(1); ok2 && r2 == '/' {
				s.skipSilentComment()
				continue
			}
			if r2, ok2 := s.Peek(1); ok2 && r2 == '*' {
				s.skipLoudComment()
				continue
			}
		}
		return
	}
}

// SkipWhitespaceWithoutComments skips only whitespace characters.
func (s *Scanner) SkipWhitespaceWithoutComments() {
	for {
		r, ok := s.Peek(0)
		if !ok || !isWhitespace(r) {
			return
		}
		s.Read()
	}
}

func (s *Scanner) skipSilentComment() {
	s.SkipSilentComment()
}

func (s *Scanner) skipLoudComment() {
	s.SkipLoudComment()
}

// SkipSilentComment consumes exactly one `// ...` comment, stopping
// before the terminating newline (or EOF). The caller must already know a
// silent comment starts here.
func (s *Scanner) SkipSilentComment() {
	for {
		r, ok := s.Peek(0)
		if !ok || isNewline(r) {
			return
		}
		s.Read()
	}
}

// SkipLoudComment consumes exactly one `/* ... */` comment, including
// both delimiters. The caller must already know a loud comment starts
// here.
func (s *Scanner) SkipLoudComment() {
	s.Read() // '/'
	s.Read() // '*'
	for {
		r, ok := s.Peek(0)
		if !ok {
			return
		}
		if r == '*' {
			if r2, ok2 := s.Peek(1); ok2 && r2 == '/' {
				s.Read()
				s.Read()
				return
			}
		}
		s.Read()
	}
}

// IdentifierOptions configures ReadIdentifier.
type IdentifierOptions struct {
	Normalize bool // map '_' to '-'
	Unit      bool // refuse a trailing "-<digit>"/"-." so "1px-2px" tokenizes as subtraction
}

// ReadIdentifier consumes a CSS identifier (spec.md §4.2): optional leading
// "--", `\xxxxxx ` hex escapes, `\<char>` literal escapes.
func (s *Scanner) ReadIdentifier(opts IdentifierOptions) (string, error) {
	var b strings.Builder
	if s.ScanChar('-') {
		b.WriteByte('-')
		if s.ScanChar('-') {
			b.WriteByte('-')
		}
	}
	first := true
	for {
		r, ok := s.Peek(0)
		if !ok {
			break
		}
		if r == '\\' {
			text, err := s.readEscape(true)
			if err != nil {
				return "", err
			}
			b.WriteString(text)
			first = false
			continue
		}
		if opts.Unit && first && isDigit(r) {
			// "-2px" as a unit-start is invalid; let the caller treat it
			// as subtraction instead.
			break
		}
		if opts.Unit && r == '-' {
			if r1, ok1 := s.Peek(1); ok1 && (isDigit(r1) || r1 == '.') {
				break
			}
		}
		if !IsNameChar(r) {
			break
		}
		if r == '_' && opts.Normalize {
			r = '-'
		}
		b.WriteRune(r)
		s.Read()
		first = false
	}
	if b.Len() == 0 {
		return "", s.error("expected identifier.")
	}
	return b.String(), nil
}

// readEscape consumes a backslash escape. If resolveChar is true the
// escape is decoded to its character and re-encoded via WriteEscape;
// otherwise returns the raw consumed text unchanged (used by value
// scanners that preserve escapes verbatim).
func (s *Scanner) readEscape(resolveChar bool) (string, error) {
	start := s.pos
	if !s.ScanChar('\\') {
		return "", s.error("expected escape.")
	}
	r, ok := s.Peek(0)
	if !ok {
		return "", s.error("expected escape sequence.")
	}
	if isNewline(r) {
		return "", s.error("expected escape sequence.")
	}
	if isHexDigit(r) {
		var hex strings.Builder
		for i := 0; i < 6; i++ {
			d, ok := s.ScanCharIf(isHexDigit)
			if !ok {
				break
			}
			hex.WriteRune(d)
		}
		// a single trailing whitespace character is consumed as part of
		// the escape
		if r2, ok2 := s.Peek(0); ok2 && isWhitespace(r2) {
			s.Read()
		}
		if !resolveChar {
			return s.File.TextAt(start, s.pos), nil
		}
		code, _ := strconv.ParseInt(hex.String(), 16, 32)
		return EncodeEscape(rune(code)), nil
	}
	s.Read()
	if !resolveChar {
		return s.File.TextAt(start, s.pos), nil
	}
	return EncodeEscape(r), nil
}

// ReadIdentifierEscape consumes one backslash escape and returns its
// resolved, canonically re-encoded text (spec.md §4.2 "escape" /
// "escape_character"), for use by higher layers (interpolated
// identifiers/strings) that need the same escape handling ReadIdentifier
// uses internally.
func (s *Scanner) ReadIdentifierEscape() (string, error) {
	return s.readEscape(true)
}

// EncodeEscape renders the rune the way ReadIdentifier/string scanning
// re-emits resolved escapes: control characters, DEL, and any code point
// that would otherwise be misread as a digit/hyphen in context are
// re-emitted as the canonical 6-hex-digit escape followed by a single
// space (spec.md §4.2); everything else is emitted literally.
func EncodeEscape(r rune) string {
	if r == 0 || r > 0x10FFFF || (r >= 0 && r <= 0x1F && r != '\t') || r == 0x7F {
		hex := strconv.FormatInt(int64(r), 16)
		return "\\" + strings.Repeat("0", 6-len(hex)) + hex + " "
	}
	return string(r)
}

// ReadString consumes a quoted CSS string (spec.md §4.2): resolves
// escapes, forbids unescaped newlines.
func (s *Scanner) ReadString() (string, error) {
	quote, ok := s.ScanCharIf(func(r rune) bool { return r == '"' || r == '\'' })
	if !ok {
		return "", s.error("expected string.")
	}
	var b strings.Builder
	for {
		r, ok := s.Peek(0)
		if !ok {
			return "", s.error("expected " + string(quote) + ".")
		}
		if r == quote {
			s.Read()
			return b.String(), nil
		}
		if isNewline(r) {
			return "", s.error("expected " + string(quote) + ".")
		}
		if r == '\\' {
			if r2, ok2 := s.Peek(1); ok2 && isNewline(r2) {
				// escaped newline inside a string is a line continuation:
				// consumed, contributes nothing to the value.
				s.Read()
				s.Read()
				continue
			}
			text, err := s.readEscape(true)
			if err != nil {
				return "", err
			}
			b.WriteString(text)
			continue
		}
		b.WriteRune(r)
		s.Read()
	}
}

// NaturalNumber consumes one or more ASCII digits, returning the consumed
// text.
func (s *Scanner) NaturalNumber() (string, bool) {
	var b strings.Builder
	for {
		d, ok := s.ScanCharIf(isDigit)
		if !ok {
			break
		}
		b.WriteRune(d)
	}
	if b.Len() == 0 {
		return "", false
	}
	return b.String(), true
}

// TryDecimal consumes a `.<digits>` fractional part if present.
func (s *Scanner) TryDecimal() (string, bool) {
	st := s.Mark()
	if !s.ScanChar('.') {
		return "", false
	}
	digits, ok := s.NaturalNumber()
	if !ok {
		s.Reset(st)
		return "", false
	}
	return "." + digits, true
}

// TryExponent consumes an `e`/`E` exponent part if present.
func (s *Scanner) TryExponent() (string, bool) {
	st := s.Mark()
	e, ok := s.ScanCharIf(func(r rune) bool { return r == 'e' || r == 'E' })
	if !ok {
		return "", false
	}
	var sign string
	if s.ScanChar('+') {
		sign = "+"
	} else if s.ScanChar('-') {
		sign = "-"
	}
	digits, ok := s.NaturalNumber()
	if !ok {
		s.Reset(st)
		return "", false
	}
	return string(e) + sign + digits, true
}

// LookingAtIdentifier implements the CSS syntax spec's "would start an
// identifier" predicate, assuming a backslash always starts an escape.
func (s *Scanner) LookingAtIdentifier() bool {
	r, ok := s.Peek(0)
	if !ok {
		return false
	}
	if r == '-' {
		r1, ok1 := s.Peek(1)
		if !ok1 {
			return false
		}
		if r1 == '-' {
			return true
		}
		return IsNameStart(r1) || r1 == '\\'
	}
	return IsNameStart(r) || r == '\\'
}

// LookingAtNumber implements the CSS syntax spec's "would start a number"
// predicate.
func (s *Scanner) LookingAtNumber() bool {
	r, ok := s.Peek(0)
	if !ok {
		return false
	}
	if isDigit(r) {
		return true
	}
	if r == '+' || r == '-' {
		r1, ok1 := s.Peek(1)
		if !ok1 {
			return false
		}
		if isDigit(r1) {
			return true
		}
		if r1 == '.' {
			r2, ok2 := s.Peek(2)
			return ok2 && isDigit(r2)
		}
		return false
	}
	if r == '.' {
		r1, ok1 := s.Peek(1)
		return ok1 && isDigit(r1)
	}
	return false
}

// TryURL scans a plain CSS `url(...)` token's raw contents, which may span
// one line. It backtracks and returns (_, false) if the contents look like
// they need expression parsing (an unescaped `#{`, a quote anywhere, or a
// `(` before the closing `)`);
// callers then retry via the expression grammar's `url(` function-call
// path (spec.md §4.2, §5 speculative path 4).
func (s *Scanner) TryURL() (string, bool) {
	st := s.Mark()
	if !s.ScanString("url(") {
		return "", false
	}
	s.SkipWhitespaceWithoutComments()
	var b strings.Builder
	for {
		r, ok := s.Peek(0)
		if !ok {
			s.Reset(st)
			return "", false
		}
		if r == ')' {
			s.Read()
			return strings.TrimRight(b.String(), " \t\n\r\f"), true
		}
		if r == '"' || r == '\'' || r == '(' || (r == '#' && peekEq(s, 1, '{')) {
			s.Reset(st)
			return "", false
		}
		if isWhitespace(r) {
			s.SkipWhitespaceWithoutComments()
			if r2, ok2 := s.Peek(0); !ok2 || r2 != ')' {
				s.Reset(st)
				return "", false
			}
			continue
		}
		if r == '\\' {
			text, err := s.readEscape(true)
			if err != nil {
				s.Reset(st)
				return "", false
			}
			b.WriteString(text)
			continue
		}
		b.WriteRune(r)
		s.Read()
	}
}

func peekEq(s *Scanner, offset int, c rune) bool {
	r, ok := s.Peek(offset)
	return ok && r == c
}

// DeclarationValueFlags mirrors interpolated_declaration_value's flags,
// spec.md §4.3, for the plain-CSS (non-interpolated) tokenizer.
type DeclarationValueFlags struct {
	AllowEmpty     bool
	AllowSemicolon bool
	AllowColon     bool
	AllowOpenBrace bool
}

// DeclarationValue is the plain-CSS declaration-value tokenizer (spec.md
// §4.2): balances (), [], {}; preserves strings as raw text; collapses
// runs of whitespace to a single space unless a newline intervened; stops
// at a top-level ';', '!', or an unmatched closer.
func (s *Scanner) DeclarationValue(flags DeclarationValueFlags) (string, error) {
	var b strings.Builder
	brackets := 0
	wroteAny := false
	for {
		r, ok := s.Peek(0)
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
		case r == '(' || r == '[' || (r == '{' && flags.AllowOpenBrace):
			brackets++
			b.WriteRune(r)
			s.Read()
			wroteAny = true
		case r == ')' || r == ']' || r == '}':
			if brackets == 0 {
				goto done
			}
			brackets--
			b.WriteRune(r)
			s.Read()
			wroteAny = true
		case r == '"' || r == '\'':
			start := s.pos
			if _, err := s.ReadString(); err != nil {
				return "", err
			}
			b.WriteString(s.File.TextAt(start, s.pos))
			wroteAny = true
		case isWhitespace(r):
			hadNewline := false
			for {
				r2, ok2 := s.Peek(0)
				if !ok2 || !isWhitespace(r2) {
					break
				}
				if isNewline(r2) {
					hadNewline = true
				}
				s.Read()
			}
			if hadNewline {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
			wroteAny = true
		case r == '\\':
			text, err := s.readEscape(false)
			if err != nil {
				return "", err
			}
			b.WriteString(text)
			wroteAny = true
		default:
			b.WriteRune(r)
			s.Read()
			wroteAny = true
		}
	}
done:
	if brackets > 0 {
		return "", s.error("expected more input.")
	}
	if !wroteAny && !flags.AllowEmpty {
		return "", s.error("expected token.")
	}
	return strings.TrimSpace(b.String()), nil
}
