package parser

import (
	"testing"

	"github.com/lukehoban/sass/ast"
)

// spec.md §4.4: a division's "allows-slash" flag is suppressed while
// parsing inside parentheses, but restored once the parens turn out to
// wrap a list or map rather than a single collapsed expression.

func TestParseExpressionDivisionSuppressedInsideBareParens(t *testing.T) {
	expr, err := ParseExpression("(1/2)")
	if err != nil {
		t.Fatalf("ParseExpression: %v", err)
	}
	paren, ok := expr.(*ast.ParenthesizedExpression)
	if !ok {
		t.Fatalf("got %T, want *ast.ParenthesizedExpression", expr)
	}
	bin, ok := paren.Inner.(*ast.BinaryOperationExpression)
	if !ok || bin.Operator != ast.Divide || bin.AllowsSlash {
		t.Fatalf("got %+v, want Divide with AllowsSlash=false", paren.Inner)
	}
}

func TestParseExpressionDivisionAllowsSlashInsideParenSpaceList(t *testing.T) {
	expr, err := ParseExpression("(1/2 1)")
	if err != nil {
		t.Fatalf("ParseExpression: %v", err)
	}
	paren, ok := expr.(*ast.ParenthesizedExpression)
	if !ok {
		t.Fatalf("got %T, want *ast.ParenthesizedExpression", expr)
	}
	lst, ok := paren.Inner.(*ast.ListExpression)
	if !ok || lst.Separator != ast.SpaceSeparator || len(lst.Contents) != 2 {
		t.Fatalf("got %+v, want a 2-element space list", paren.Inner)
	}
	bin, ok := lst.Contents[0].(*ast.BinaryOperationExpression)
	if !ok || bin.Operator != ast.Divide || !bin.AllowsSlash {
		t.Fatalf("got %+v, want Divide with AllowsSlash=true", lst.Contents[0])
	}
}

func TestParseExpressionDivisionAllowsSlashInsideParenCommaList(t *testing.T) {
	expr, err := ParseExpression("(1/2, 1)")
	if err != nil {
		t.Fatalf("ParseExpression: %v", err)
	}
	lst, ok := expr.(*ast.ListExpression)
	if !ok || lst.Separator != ast.CommaSeparator || len(lst.Contents) != 2 {
		t.Fatalf("got %+v, want a 2-element comma list", expr)
	}
	bin, ok := lst.Contents[0].(*ast.BinaryOperationExpression)
	if !ok || bin.Operator != ast.Divide || !bin.AllowsSlash {
		t.Fatalf("got %+v, want Divide with AllowsSlash=true", lst.Contents[0])
	}
}

func TestParseExpressionDivisionAllowsSlashInsideParenMap(t *testing.T) {
	expr, err := ParseExpression("(a: 1/2)")
	if err != nil {
		t.Fatalf("ParseExpression: %v", err)
	}
	m, ok := expr.(*ast.MapExpression)
	if !ok || len(m.Pairs) != 1 {
		t.Fatalf("got %+v, want a 1-pair map", expr)
	}
	bin, ok := m.Pairs[0].Value.(*ast.BinaryOperationExpression)
	if !ok || bin.Operator != ast.Divide || !bin.AllowsSlash {
		t.Fatalf("got %+v, want Divide with AllowsSlash=true", m.Pairs[0].Value)
	}
}
