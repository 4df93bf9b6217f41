// Package span provides source-location tracking for the Sass parser.
// Every AST node and diagnostic carries a Span; offsets are counted in
// 16-bit code units over the original source text, matching the wire
// behavior expected by downstream source-map consumers.
//
// spec.md §6 Span layout: { file_url?, start: {offset, line, column},
// end: {offset, line, column} }.
package span

import (
	"fmt"
	"unicode/utf16"

	"github.com/google/uuid"
)

// Location is a single point in a SourceFile.
type Location struct {
	Offset int // code-unit offset from the start of the file
	Line   int // zero-based line number
	Column int // zero-based column, in code units, from the start of Line
}

// Span covers a half-open range [Start, End) within a File.
type Span struct {
	File  *SourceFile
	Start Location
	End   Location
}

// Text returns the source text covered by s.
func (s Span) Text() string {
	if s.File == nil {
		return ""
	}
	return s.File.TextAt(s.Start.Offset, s.End.Offset)
}

// URL returns the span's file URL, or "" if the span has no file.
func (s Span) URL() string {
	if s.File == nil {
		return ""
	}
	return s.File.URL
}

// PointAt returns a zero-width span at the given location.
func PointAt(file *SourceFile, loc Location) Span {
	return Span{File: file, Start: loc, End: loc}
}

// Expand returns the smallest span that covers both s and other. Both
// spans must belong to the same file.
func Expand(s, other Span) Span {
	result := s
	if other.Start.Offset < result.Start.Offset {
		result.Start = other.Start
	}
	if other.End.Offset > result.End.Offset {
		result.End = other.End
	}
	return result
}

// SourceFile holds the original source text plus enough bookkeeping to
// translate a code-unit offset into a Location in O(log n).
//
// The parser counts offsets in UTF-16 code units rather than bytes or
// runes: spec.md §6 requires this so spans line up with the source maps a
// downstream compiler would emit, and Go's native string indexing is
// byte-oriented, so the file keeps its own UTF-16 view alongside the
// original UTF-8 text.
type SourceFile struct {
	URL  string
	text string  // original UTF-8 text, kept for Text()/TextAt()
	units []uint16 // UTF-16 code units of text
	// lineStarts[i] is the code-unit offset of the first unit of line i.
	lineStarts []int
}

// NewFile constructs a SourceFile for text. If url is empty, an anonymous
// "data:" URL carrying a random UUID is minted so that two anonymous
// parses never collide when their spans are later compared or merged
// into a shared source map.
func NewFile(text, url string) *SourceFile {
	if url == "" {
		url = "data:text/x-scss;id=" + uuid.NewString()
	}
	units := utf16.Encode([]rune(text))
	f := &SourceFile{URL: url, text: text, units: units}
	f.lineStarts = []int{0}
	for i, u := range units {
		if u == '\n' {
			f.lineStarts = append(f.lineStarts, i+1)
		}
	}
	return f
}

// Len returns the length of the file in UTF-16 code units.
func (f *SourceFile) Len() int {
	return len(f.units)
}

// CodeUnit returns the code unit at offset i, or 0 if i is out of range.
func (f *SourceFile) CodeUnit(i int) uint16 {
	if i < 0 || i >= len(f.units) {
		return 0
	}
	return f.units[i]
}

// Units returns the file's underlying code-unit slice. Callers must not
// mutate it.
func (f *SourceFile) Units() []uint16 {
	return f.units
}

// TextAt returns the UTF-8 text covering the code-unit range [start, end).
func (f *SourceFile) TextAt(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(f.units) {
		end = len(f.units)
	}
	if start >= end {
		return ""
	}
	return string(utf16.Decode(f.units[start:end]))
}

// Location computes the Location for a code-unit offset.
func (f *SourceFile) Location(offset int) Location {
	line := f.lineForOffset(offset)
	return Location{Offset: offset, Line: line, Column: offset - f.lineStarts[line]}
}

func (f *SourceFile) lineForOffset(offset int) int {
	lo, hi := 0, len(f.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if f.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// LineText returns the text of the given zero-based line, without its
// trailing newline.
func (f *SourceFile) LineText(line int) string {
	if line < 0 || line >= len(f.lineStarts) {
		return ""
	}
	start := f.lineStarts[line]
	end := len(f.units)
	if line+1 < len(f.lineStarts) {
		end = f.lineStarts[line+1] - 1
		if end < start {
			end = start
		}
	}
	return f.TextAt(start, end)
}

// String implements fmt.Stringer for debugging.
func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line+1, l.Column+1)
}
