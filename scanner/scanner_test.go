package scanner

import (
	"testing"

	"github.com/lukehoban/sass/span"
)

func newScanner(text string) *Scanner {
	return New(span.NewFile(text, "test.scss"))
}

func TestScannerPeekAndRead(t *testing.T) {
	s := newScanner("abc")
	if r, ok := s.Peek(0); !ok || r != 'a' {
		t.Fatalf("Peek(0) = %q, %v", r, ok)
	}
	if r, ok := s.Peek(1); !ok || r != 'b' {
		t.Fatalf("Peek(1) = %q, %v", r, ok)
	}
	r, ok := s.Read()
	if !ok || r != 'a' {
		t.Fatalf("Read() = %q, %v", r, ok)
	}
	if s.Position() != 1 {
		t.Fatalf("Position() = %d, want 1", s.Position())
	}
}

func TestScannerMarkReset(t *testing.T) {
	s := newScanner("hello")
	st := s.Mark()
	s.Read()
	s.Read()
	s.Reset(st)
	if s.Position() != 0 {
		t.Fatalf("Position() after Reset = %d, want 0", s.Position())
	}
}

func TestExpectChar(t *testing.T) {
	s := newScanner("x;")
	s.Read()
	if err := s.ExpectChar(';'); err != nil {
		t.Fatalf("ExpectChar(';') = %v", err)
	}
	if !s.IsDone() {
		t.Fatalf("expected scanner to be done")
	}
}

func TestExpectCharFails(t *testing.T) {
	s := newScanner("x")
	if err := s.ExpectChar(';'); err == nil {
		t.Fatalf("expected error")
	}
}

func TestReadIdentifierBasic(t *testing.T) {
	s := newScanner("foo-Bar_1")
	id, err := s.ReadIdentifier(IdentifierOptions{})
	if err != nil {
		t.Fatalf("ReadIdentifier: %v", err)
	}
	if id != "foo-Bar_1" {
		t.Fatalf("got %q", id)
	}
}

func TestReadIdentifierNormalize(t *testing.T) {
	s := newScanner("foo_bar")
	id, err := s.ReadIdentifier(IdentifierOptions{Normalize: true})
	if err != nil {
		t.Fatalf("ReadIdentifier: %v", err)
	}
	if id != "foo-bar" {
		t.Fatalf("got %q", id)
	}
}

func TestReadIdentifierCustomProperty(t *testing.T) {
	s := newScanner("--my-prop")
	id, err := s.ReadIdentifier(IdentifierOptions{})
	if err != nil {
		t.Fatalf("ReadIdentifier: %v", err)
	}
	if id != "--my-prop" {
		t.Fatalf("got %q", id)
	}
}

func TestReadIdentifierHexEscape(t *testing.T) {
	s := newScanner(`\41 bc`)
	id, err := s.ReadIdentifier(IdentifierOptions{})
	if err != nil {
		t.Fatalf("ReadIdentifier: %v", err)
	}
	if id != "Abc" {
		t.Fatalf("got %q", id)
	}
}

func TestReadString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"hello"`, "hello"},
		{`'hello'`, "hello"},
		{`"a\"b"`, `a"b`},
		{`"a\\b"`, `a\b`},
	}
	for _, tt := range tests {
		s := newScanner(tt.in)
		got, err := s.ReadString()
		if err != nil {
			t.Fatalf("ReadString(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ReadString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReadStringUnescapedNewlineFails(t *testing.T) {
	s := newScanner("\"a\nb\"")
	if _, err := s.ReadString(); err == nil {
		t.Fatalf("expected error for unescaped newline")
	}
}

func TestReadNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"123", 123},
		{"1.5", 1.5},
		{"0.5", 0.5},
		{"1e10", 1e10},
		{"1.5e-3", 1.5e-3},
		{"-4", -4},
	}
	for _, tt := range tests {
		s := newScanner(tt.in)
		n, err := s.ReadNumber()
		if err != nil {
			t.Fatalf("ReadNumber(%q): %v", tt.in, err)
		}
		if n.Value != tt.want {
			t.Fatalf("ReadNumber(%q) = %v, want %v", tt.in, n.Value, tt.want)
		}
	}
}

func TestTryURLRaw(t *testing.T) {
	s := newScanner("url(foo/bar.png)")
	got, ok := s.TryURL()
	if !ok {
		t.Fatalf("expected TryURL to succeed")
	}
	if got != "foo/bar.png" {
		t.Fatalf("got %q", got)
	}
}

func TestTryURLBacktracksOnQuote(t *testing.T) {
	s := newScanner(`url("foo.png")`)
	st := s.Mark()
	if _, ok := s.TryURL(); ok {
		t.Fatalf("expected TryURL to backtrack on quoted contents")
	}
	if s.Position() != st.Pos {
		t.Fatalf("TryURL did not restore position on failure")
	}
}

func TestDeclarationValueCollapsesWhitespace(t *testing.T) {
	s := newScanner("1px   solid red;")
	got, err := s.DeclarationValue(DeclarationValueFlags{AllowColon: true})
	if err != nil {
		t.Fatalf("DeclarationValue: %v", err)
	}
	if got != "1px solid red" {
		t.Fatalf("got %q", got)
	}
}

func TestDeclarationValueBalancesBrackets(t *testing.T) {
	s := newScanner("rgba(0, 0, 0, .5);")
	got, err := s.DeclarationValue(DeclarationValueFlags{AllowColon: true})
	if err != nil {
		t.Fatalf("DeclarationValue: %v", err)
	}
	if got != "rgba(0, 0, 0, .5)" {
		t.Fatalf("got %q", got)
	}
}

func TestLookingAtIdentifier(t *testing.T) {
	if !newScanner("foo").LookingAtIdentifier() {
		t.Fatalf("expected true for 'foo'")
	}
	if !newScanner("-foo").LookingAtIdentifier() {
		t.Fatalf("expected true for '-foo'")
	}
	if newScanner("-1").LookingAtIdentifier() {
		t.Fatalf("expected false for '-1'")
	}
	if newScanner("123").LookingAtIdentifier() {
		t.Fatalf("expected false for '123'")
	}
}

func TestLookingAtNumber(t *testing.T) {
	if !newScanner("123").LookingAtNumber() {
		t.Fatalf("expected true for '123'")
	}
	if !newScanner("-1").LookingAtNumber() {
		t.Fatalf("expected true for '-1'")
	}
	if !newScanner(".5").LookingAtNumber() {
		t.Fatalf("expected true for '.5'")
	}
	if newScanner("-foo").LookingAtNumber() {
		t.Fatalf("expected false for '-foo'")
	}
}
