package parser

import (
	"testing"

	"github.com/lukehoban/sass/ast"
)

func TestParseSCSSStylesheet(t *testing.T) {
	sheet, err := ParseSCSS("$x: 1;\na { color: red; }\n")
	if err != nil {
		t.Fatalf("ParseSCSS: %v", err)
	}
	if len(sheet.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(sheet.Statements))
	}
	if _, ok := sheet.Statements[0].(*ast.VariableDeclaration); !ok {
		t.Fatalf("got %T, want *ast.VariableDeclaration", sheet.Statements[0])
	}
	if _, ok := sheet.Statements[1].(*ast.StyleRule); !ok {
		t.Fatalf("got %T, want *ast.StyleRule", sheet.Statements[1])
	}
}

func TestParseIndentedStylesheet(t *testing.T) {
	sheet, err := ParseIndented("a\n  color: red\n")
	if err != nil {
		t.Fatalf("ParseIndented: %v", err)
	}
	if len(sheet.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(sheet.Statements))
	}
}

func TestParseCSSRejectsSassSyntax(t *testing.T) {
	if _, err := ParseCSS("a { color: $x; }"); err == nil {
		t.Fatalf("expected plain CSS dialect to reject a Sass variable")
	}
}

func TestParseExpressionNumber(t *testing.T) {
	expr, err := ParseExpression("1 + 2")
	if err != nil {
		t.Fatalf("ParseExpression: %v", err)
	}
	bin, ok := expr.(*ast.BinaryOperationExpression)
	if !ok {
		t.Fatalf("got %T, want *ast.BinaryOperationExpression", expr)
	}
	if bin.Operator != ast.Plus {
		t.Fatalf("got operator %v, want Plus", bin.Operator)
	}
}

func TestParseExpressionIncompleteIsError(t *testing.T) {
	if _, err := ParseExpression("1 +"); err == nil {
		t.Fatalf("expected error for an incomplete expression")
	}
}

func TestParseVariableDeclarationBasic(t *testing.T) {
	decl, err := ParseVariableDeclaration("$foo: 1px !default")
	if err != nil {
		t.Fatalf("ParseVariableDeclaration: %v", err)
	}
	if decl.Name != "foo" || !decl.Default || decl.Global {
		t.Fatalf("got %+v, want name=foo Default=true Global=false", decl)
	}
}

func TestParseUseRuleWithNamespace(t *testing.T) {
	rule, err := ParseUseRule(`"foo" as bar`)
	if err != nil {
		t.Fatalf("ParseUseRule: %v", err)
	}
	if rule.URL != "foo" || rule.Namespace != "bar" {
		t.Fatalf("got %+v, want URL=foo Namespace=bar", rule)
	}
}

func TestParseArgumentDeclarationWithRest(t *testing.T) {
	decl, err := ParseArgumentDeclaration("($a, $b: 1, $rest...)")
	if err != nil {
		t.Fatalf("ParseArgumentDeclaration: %v", err)
	}
	if len(decl.Arguments) != 2 || decl.RestArg != "rest" {
		t.Fatalf("got %+v, want 2 arguments and RestArg=rest", decl)
	}
	if decl.Arguments[0].Name != "a" || decl.Arguments[0].Default != nil {
		t.Fatalf("got %+v, want first argument \"a\" with no default", decl.Arguments[0])
	}
	if decl.Arguments[1].Name != "b" || decl.Arguments[1].Default == nil {
		t.Fatalf("got %+v, want second argument \"b\" with a default", decl.Arguments[1])
	}
}

func TestParseExpressionFunctionCallWithRestArgument(t *testing.T) {
	expr, err := ParseExpression("foo(1, 2, $list...)")
	if err != nil {
		t.Fatalf("ParseExpression: %v", err)
	}
	fn, ok := expr.(*ast.FunctionExpression)
	if !ok {
		t.Fatalf("got %T, want *ast.FunctionExpression", expr)
	}
	if len(fn.Arguments.Positional) != 2 {
		t.Fatalf("got %d positional arguments, want 2", len(fn.Arguments.Positional))
	}
	if fn.Arguments.Rest == nil {
		t.Fatalf("got nil Rest, want the \"$list\" rest argument")
	}
}

func TestParseFunctionSignatureWithParens(t *testing.T) {
	name, decl, err := ParseFunctionSignature("foo($a, $b: 1)", true)
	if err != nil {
		t.Fatalf("ParseFunctionSignature: %v", err)
	}
	if name != "foo" || len(decl.Arguments) != 2 {
		t.Fatalf("got name=%q args=%d, want foo/2", name, len(decl.Arguments))
	}
}

func TestParseFunctionSignatureBareNameWithoutParens(t *testing.T) {
	name, decl, err := ParseFunctionSignature("foo", false)
	if err != nil {
		t.Fatalf("ParseFunctionSignature: %v", err)
	}
	if name != "foo" || len(decl.Arguments) != 0 || decl.RestArg != "" {
		t.Fatalf("got name=%q decl=%+v, want foo/empty declaration", name, decl)
	}
}

func TestParseFunctionSignatureRequiresParensWhenAsked(t *testing.T) {
	if _, _, err := ParseFunctionSignature("foo", true); err == nil {
		t.Fatalf("expected error when requireParens is true and no \"(\" follows")
	}
}

func TestParseIdentifierResolvesEscapes(t *testing.T) {
	name, err := ParseIdentifier(`foo\2d bar`)
	if err != nil {
		t.Fatalf("ParseIdentifier: %v", err)
	}
	if name != "foo-bar" {
		t.Fatalf("got %q, want foo-bar", name)
	}
}

func TestParseIdentifierRejectsTrailingGarbage(t *testing.T) {
	if _, err := ParseIdentifier("foo bar"); err == nil {
		t.Fatalf("expected error for trailing garbage after identifier")
	}
}

func TestIsIdentifier(t *testing.T) {
	if !IsIdentifier("foo-bar_1") {
		t.Fatalf("expected \"foo-bar_1\" to be a valid identifier")
	}
	if IsIdentifier("1foo") {
		t.Fatalf("expected \"1foo\" to be rejected (identifiers can't start with a digit)")
	}
	if IsIdentifier("") {
		t.Fatalf("expected empty string to be rejected")
	}
}
