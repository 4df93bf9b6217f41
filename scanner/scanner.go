// Package scanner implements the character-based cursor (spec.md §4.1 C1
// Scanner) and the lexical primitives built directly on it (spec.md §4.2
// C2) that do not need to re-enter the expression grammar.
//
// It is grounded on lukehoban-browser/css/tokenizer.go's Tokenizer (an
// `input string` plus an integer `pos`, with Next/Peek implemented by
// saving and restoring pos) generalized to operate over UTF-16 code units
// so spans line up with the offsets spec.md §6 requires, and to expose
// explicit save/restore primitives rather than bundling them into a
// single Peek.
package scanner

import (
	"unicode/utf16"

	"github.com/lukehoban/sass/span"
)

// State is an O(1)-restorable snapshot of scanner position.
type State struct {
	Pos int
}

// Scanner is a cursor over a SourceFile's code units. It never owns the
// source; it borrows it for the parser's lifetime.
type Scanner struct {
	File *span.SourceFile
	pos  int
}

// New creates a Scanner over file, starting at code-unit offset 0.
func New(file *span.SourceFile) *Scanner {
	return &Scanner{File: file}
}

// Position returns the current code-unit offset.
func (s *Scanner) Position() int { return s.pos }

// SetPosition moves the cursor to an arbitrary offset (used where the full
// save/restore ceremony isn't needed, e.g. the dialects' "@elseif"
// handling, which steps back over the "if" it has just consumed).
func (s *Scanner) SetPosition(pos int) { s.pos = pos }

// IsDone reports whether the cursor has reached the end of input.
func (s *Scanner) IsDone() bool { return s.pos >= s.File.Len() }

// Mark saves the current position for later backtracking.
func (s *Scanner) Mark() State { return State{Pos: s.pos} }

// Reset restores a previously saved position. This is the scanner's only
// backtracking primitive; every speculative parse path in spec.md §5
// saves a State, attempts a parse, and calls Reset on failure.
func (s *Scanner) Reset(st State) { s.pos = st.Pos }

// SpanFrom returns the span covering [st.Pos, current position).
func (s *Scanner) SpanFrom(st State) span.Span {
	return span.Span{File: s.File, Start: s.File.Location(st.Pos), End: s.File.Location(s.pos)}
}

// PointSpan returns a zero-width span at the current position.
func (s *Scanner) PointSpan() span.Span {
	loc := s.File.Location(s.pos)
	return span.Span{File: s.File, Start: loc, End: loc}
}

// Location returns the current Location.
func (s *Scanner) Location() span.Location { return s.File.Location(s.pos) }

// decodeAt decodes the rune starting at code-unit offset i, along with the
// number of code units it occupies (1, or 2 for a surrogate pair). If i is
// out of range it returns (0, 0, false).
func (s *Scanner) decodeAt(i int) (r rune, width int, ok bool) {
	if i < 0 || i >= s.File.Len() {
		return 0, 0, false
	}
	u := s.File.CodeUnit(i)
	if utf16.IsSurrogate(rune(u)) && i+1 < s.File.Len() {
		pair := utf16.DecodeRune(rune(u), rune(s.File.CodeUnit(i+1)))
		if pair != 0xFFFD {
			return pair, 2, true
		}
	}
	return rune(u), 1, true
}

// Peek returns the rune offset runes ahead of the cursor without consuming
// it (a surrogate pair counts as one rune). offset 0 is the next unread
// rune.
func (s *Scanner) Peek(offset int) (rune, bool) {
	i := s.pos
	for offset > 0 {
		r, width, ok := s.decodeAt(i)
		if !ok {
			return 0, false
		}
		_ = r
		i += width
		offset--
	}
	r, _, ok := s.decodeAt(i)
	return r, ok
}

// PeekBefore returns the rune immediately before the cursor, or false at
// the start of input. Used by lookahead predicates that need to know
// whether whitespace precedes the cursor (the unary +/- disambiguation).
func (s *Scanner) PeekBefore() (rune, bool) {
	if s.pos == 0 {
		return 0, false
	}
	u := s.File.CodeUnit(s.pos - 1)
	if utf16.IsSurrogate(rune(u)) && s.pos >= 2 {
		prev := s.File.CodeUnit(s.pos - 2)
		if !utf16.IsSurrogate(rune(prev)) {
			return utf16.DecodeRune(rune(prev), rune(u)), true
		}
	}
	return rune(u), true
}

// Read consumes and returns the next rune.
func (s *Scanner) Read() (rune, bool) {
	r, width, ok := s.decodeAt(s.pos)
	if !ok {
		return 0, false
	}
	s.pos += width
	return r, true
}

// ScanChar consumes the next rune if it equals c, returning whether it did.
func (s *Scanner) ScanChar(c rune) bool {
	r, ok := s.Peek(0)
	if !ok || r != c {
		return false
	}
	s.Read()
	return true
}

// ScanCharIf consumes the next rune if pred(r) holds.
func (s *Scanner) ScanCharIf(pred func(rune) bool) (rune, bool) {
	r, ok := s.Peek(0)
	if !ok || !pred(r) {
		return 0, false
	}
	s.Read()
	return r, true
}

// ExpectChar consumes the next rune if it equals c, or raises a
// SassFormatException citing `c`.
func (s *Scanner) ExpectChar(c rune) error {
	if s.ScanChar(c) {
		return nil
	}
	return s.error("expected \"" + string(c) + "\".")
}

// ExpectDone raises if the scanner has not consumed the whole input.
func (s *Scanner) ExpectDone() error {
	if s.IsDone() {
		return nil
	}
	return s.error("expected no more input.")
}

// error builds a SassFormatException at the scanner's current (zero-width)
// position, the common case for "Expected X" lexical errors (spec.md §7).
func (s *Scanner) error(message string) error {
	return span.NewError(message, s.PointSpan())
}

// Error is exposed so higher layers (C3-C6) can raise lex errors with the
// scanner's standard message shape and a caller-supplied span.
func (s *Scanner) Error(message string, sp span.Span) error {
	return span.NewError(message, sp)
}

// ScanString consumes exactly the literal string lit if it appears next,
// without requiring it to be a single rune.
func (s *Scanner) ScanString(lit string) bool {
	st := s.Mark()
	for _, r := range lit {
		if !s.ScanChar(r) {
			s.Reset(st)
			return false
		}
	}
	return true
}

// MatchesString reports whether lit appears next, without consuming it.
func (s *Scanner) MatchesString(lit string) bool {
	st := s.Mark()
	ok := s.ScanString(lit)
	s.Reset(st)
	return ok
}
