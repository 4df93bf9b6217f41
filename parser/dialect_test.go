package parser

import (
	"testing"

	"github.com/lukehoban/sass/ast"
)

func TestDialectSCSSBraceNesting(t *testing.T) {
	sheet, err := ParseSCSS("a { b { color: red; } }")
	if err != nil {
		t.Fatalf("ParseSCSS: %v", err)
	}
	rule, ok := sheet.Statements[0].(*ast.StyleRule)
	if !ok {
		t.Fatalf("got %T, want *ast.StyleRule", sheet.Statements[0])
	}
	if len(rule.Children) != 1 {
		t.Fatalf("got %d children, want 1", len(rule.Children))
	}
	if _, ok := rule.Children[0].(*ast.StyleRule); !ok {
		t.Fatalf("got %T, want nested *ast.StyleRule", rule.Children[0])
	}
}

func TestDialectSCSSMissingSemicolonIsError(t *testing.T) {
	if _, err := ParseSCSS("a { color: red color: blue }"); err == nil {
		t.Fatalf("expected error for a missing \";\" between declarations")
	}
}

func TestDialectIndentedNesting(t *testing.T) {
	sheet, err := ParseIndented("a\n  b\n    color: red\n")
	if err != nil {
		t.Fatalf("ParseIndented: %v", err)
	}
	outer, ok := sheet.Statements[0].(*ast.StyleRule)
	if !ok || len(outer.Children) != 1 {
		t.Fatalf("got %+v, want one nested style rule", sheet.Statements[0])
	}
	inner, ok := outer.Children[0].(*ast.StyleRule)
	if !ok || len(inner.Children) != 1 {
		t.Fatalf("got %+v, want one declaration nested inside", outer.Children[0])
	}
}

func TestDialectIndentedRejectsOverIndentAfterFlatStatement(t *testing.T) {
	if _, err := ParseIndented("a\n  color: red\n    b: 1\n"); err == nil {
		t.Fatalf("expected error: a declaration can't be followed by a deeper-indented line")
	}
}

func TestDialectIndentedRejectsMixedTabsAndSpaces(t *testing.T) {
	if _, err := ParseIndented("a\n \tcolor: red\n"); err == nil {
		t.Fatalf("expected error for a line mixing spaces and tabs")
	}
}

func TestDialectIndentedRejectsInconsistentIndentChar(t *testing.T) {
	if _, err := ParseIndented("a\n  color: red\n\tb: 1\n"); err == nil {
		t.Fatalf("expected error when later lines switch from spaces to tabs")
	}
}

func TestDialectIndentedRejectsLeadingIndentAtTopLevel(t *testing.T) {
	if _, err := ParseIndented("  a\n"); err == nil {
		t.Fatalf("expected error for an indented first line")
	}
}

func TestDialectIndentedMultilineSelector(t *testing.T) {
	sheet, err := ParseIndented("a,\nb\n  color: red\n")
	if err != nil {
		t.Fatalf("ParseIndented: %v", err)
	}
	rule, ok := sheet.Statements[0].(*ast.StyleRule)
	if !ok {
		t.Fatalf("got %T, want *ast.StyleRule", sheet.Statements[0])
	}
	text, isPlain := rule.Selector.AsPlain()
	if !isPlain {
		t.Fatalf("expected a plain-text selector")
	}
	if text != "a,\nb" {
		t.Fatalf("got %q, want \"a,\\nb\"", text)
	}
}

func TestDialectPlainCSSAllowsMedia(t *testing.T) {
	if _, err := ParseCSS("@media screen { a { color: red; } }"); err != nil {
		t.Fatalf("ParseCSS: %v", err)
	}
}

func TestDialectPlainCSSRejectsMixin(t *testing.T) {
	if _, err := ParseCSS("@mixin foo { color: red; }"); err == nil {
		t.Fatalf("expected error: @mixin isn't on plain CSS's at-rule allow-list")
	}
}

func TestDialectPlainCSSRejectsSilentComment(t *testing.T) {
	if _, err := ParseCSS("// not allowed\na { color: red; }"); err == nil {
		t.Fatalf("expected error: plain CSS forbids \"//\" comments")
	}
}

func TestDialectSCSSAllowsSilentComment(t *testing.T) {
	sheet, err := ParseSCSS("// a comment\na { color: red; }")
	if err != nil {
		t.Fatalf("ParseSCSS: %v", err)
	}
	if len(sheet.Statements) != 2 {
		t.Fatalf("got %d statements, want 2 (comment + rule)", len(sheet.Statements))
	}
	if _, ok := sheet.Statements[0].(*ast.SilentComment); !ok {
		t.Fatalf("got %T, want *ast.SilentComment", sheet.Statements[0])
	}
}
