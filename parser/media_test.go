package parser

import (
	"testing"

	"github.com/lukehoban/sass/ast"
)

func TestParseMediaQueryListBareType(t *testing.T) {
	queries, err := ParseMediaQueryList("screen")
	if err != nil {
		t.Fatalf("ParseMediaQueryList: %v", err)
	}
	if len(queries) != 1 {
		t.Fatalf("got %d queries, want 1", len(queries))
	}
	q := queries[0]
	if q.Type != "screen" || q.Modifier != ast.NoModifier || len(q.Conditions) != 0 {
		t.Fatalf("got %+v, want bare \"screen\"", q)
	}
}

func TestParseMediaQueryListModifiers(t *testing.T) {
	queries, err := ParseMediaQueryList("only screen, not print")
	if err != nil {
		t.Fatalf("ParseMediaQueryList: %v", err)
	}
	if len(queries) != 2 {
		t.Fatalf("got %d queries, want 2", len(queries))
	}
	if queries[0].Modifier != ast.ModifierOnly || queries[0].Type != "screen" {
		t.Fatalf("got %+v, want \"only screen\"", queries[0])
	}
	if queries[1].Modifier != ast.ModifierNot || queries[1].Type != "print" {
		t.Fatalf("got %+v, want \"not print\"", queries[1])
	}
}

func TestParseMediaQueryListTypeAndFeature(t *testing.T) {
	queries, err := ParseMediaQueryList("screen and (min-width: 900px)")
	if err != nil {
		t.Fatalf("ParseMediaQueryList: %v", err)
	}
	q := queries[0]
	if q.Type != "screen" || len(q.Conditions) != 1 || q.Conditions[0] != "(min-width: 900px)" {
		t.Fatalf("got %+v, want screen with one min-width condition", q)
	}
	if !q.Conjunction {
		t.Fatalf("got Conjunction=false, want true for \"and\"")
	}
}

func TestParseMediaQueryListBareFeature(t *testing.T) {
	queries, err := ParseMediaQueryList("(min-width: 100px) and (max-width: 200px)")
	if err != nil {
		t.Fatalf("ParseMediaQueryList: %v", err)
	}
	q := queries[0]
	if len(q.Conditions) != 2 {
		t.Fatalf("got %d conditions, want 2", len(q.Conditions))
	}
	if !q.Conjunction {
		t.Fatalf("got Conjunction=false, want true")
	}
}

func TestParseMediaQueryListOrDisjunction(t *testing.T) {
	queries, err := ParseMediaQueryList("(min-width: 100px) or (max-width: 200px)")
	if err != nil {
		t.Fatalf("ParseMediaQueryList: %v", err)
	}
	if queries[0].Conjunction {
		t.Fatalf("got Conjunction=true, want false for \"or\"")
	}
}

func TestParseMediaQueryListNegatedFeature(t *testing.T) {
	queries, err := ParseMediaQueryList("not (min-width: 100px)")
	if err != nil {
		t.Fatalf("ParseMediaQueryList: %v", err)
	}
	q := queries[0]
	if len(q.Conditions) != 1 || q.Conditions[0] != "not (min-width: 100px)" {
		t.Fatalf("got %+v, want negated feature condition", q)
	}
}

func TestParseMediaQueryListMixedAndOrIsError(t *testing.T) {
	if _, err := ParseMediaQueryList("screen and (min-width: 1px) or (max-width: 2px)"); err == nil {
		t.Fatalf("expected error mixing \"and\"/\"or\" in one query")
	}
}

func TestParseMediaQueryListNestedParens(t *testing.T) {
	queries, err := ParseMediaQueryList("(min-width: calc(1px + 1em))")
	if err != nil {
		t.Fatalf("ParseMediaQueryList: %v", err)
	}
	if queries[0].Conditions[0] != "(min-width: calc(1px + 1em))" {
		t.Fatalf("got %q, want balanced nested parens preserved", queries[0].Conditions[0])
	}
}
