package parser

import (
	"strings"
	"testing"

	"github.com/lukehoban/sass/ast"
)

// spec.md §4.5 steps 8/9: "a:hover { ... }" is ambiguous between a nested
// declaration (name "a", bare value "hover") and a style rule (type
// selector "a", pseudo-class ":hover"); the "followed by a children
// block" rule forces the selector interpretation.

func TestParseSCSSPseudoClassShapedNestingIsSelector(t *testing.T) {
	sheet, err := ParseSCSS(".foo { a:hover { color: red; } }")
	if err != nil {
		t.Fatalf("ParseSCSS: %v", err)
	}
	outer, ok := sheet.Statements[0].(*ast.StyleRule)
	if !ok || len(outer.Children) != 1 {
		t.Fatalf("got %+v, want one child", sheet.Statements[0])
	}
	inner, ok := outer.Children[0].(*ast.StyleRule)
	if !ok {
		t.Fatalf("got %T, want nested *ast.StyleRule", outer.Children[0])
	}
	text, isPlain := inner.Selector.AsPlain()
	if !isPlain || strings.TrimSpace(text) != "a:hover" {
		t.Fatalf("got selector %q (plain=%v), want \"a:hover\"", text, isPlain)
	}
}

func TestParseSCSSNestedPropertyWithValueStaysDeclaration(t *testing.T) {
	sheet, err := ParseSCSS(".foo { font: 12px/30px { weight: bold; } }")
	if err != nil {
		t.Fatalf("ParseSCSS: %v", err)
	}
	outer, ok := sheet.Statements[0].(*ast.StyleRule)
	if !ok || len(outer.Children) != 1 {
		t.Fatalf("got %+v, want one child", sheet.Statements[0])
	}
	decl, ok := outer.Children[0].(*ast.Declaration)
	if !ok {
		t.Fatalf("got %T, want *ast.Declaration", outer.Children[0])
	}
	if decl.Value == nil || len(decl.Children) != 1 {
		t.Fatalf("got %+v, want a value and one nested child", decl)
	}
}

func TestParseIndentedPseudoClassIsAlwaysSelector(t *testing.T) {
	sheet, err := ParseIndented(".foo\n  a:hover\n    color: red\n")
	if err != nil {
		t.Fatalf("ParseIndented: %v", err)
	}
	outer, ok := sheet.Statements[0].(*ast.StyleRule)
	if !ok || len(outer.Children) != 1 {
		t.Fatalf("got %+v, want one child", sheet.Statements[0])
	}
	if _, ok := outer.Children[0].(*ast.StyleRule); !ok {
		t.Fatalf("got %T, want nested *ast.StyleRule", outer.Children[0])
	}
}

// spec.md §4.5 step 6 / §8 testable property 5: "//" inside a custom
// property's value is preserved verbatim, not treated as a comment.
func TestParseSCSSCustomPropertyPreservesDoubleSlash(t *testing.T) {
	sheet, err := ParseSCSS(".foo { --url: http://example.com; }\n")
	if err != nil {
		t.Fatalf("ParseSCSS: %v", err)
	}
	outer, ok := sheet.Statements[0].(*ast.StyleRule)
	if !ok || len(outer.Children) != 1 {
		t.Fatalf("got %+v, want one child", sheet.Statements[0])
	}
	decl, ok := outer.Children[0].(*ast.Declaration)
	if !ok || !decl.IsCustomProperty() {
		t.Fatalf("got %T, want a custom-property *ast.Declaration", outer.Children[0])
	}
	str, ok := decl.Value.(*ast.StringExpression)
	if !ok {
		t.Fatalf("got %T, want *ast.StringExpression", decl.Value)
	}
	text, isPlain := str.Text.AsPlain()
	if !isPlain || !strings.Contains(text, "//") {
		t.Fatalf("got %q (plain=%v), want the literal \"//\" preserved", text, isPlain)
	}
}
