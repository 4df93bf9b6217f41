package parser

import (
	"testing"

	"github.com/lukehoban/sass/ast"
)

func TestParseSelectorSimpleType(t *testing.T) {
	list, err := ParseSelector("div", false)
	if err != nil {
		t.Fatalf("ParseSelector: %v", err)
	}
	if len(list.Components) != 1 {
		t.Fatalf("got %d complex selectors, want 1", len(list.Components))
	}
	cplx := list.Components[0]
	if len(cplx.Components) != 1 {
		t.Fatalf("got %d components, want 1", len(cplx.Components))
	}
	compound := cplx.Components[0].Selector
	if len(compound.Simple) != 1 {
		t.Fatalf("got %d simple selectors, want 1", len(compound.Simple))
	}
	sel := compound.Simple[0]
	if sel.Kind != ast.TypeSelector || sel.Name != "div" {
		t.Fatalf("got %+v, want type selector \"div\"", sel)
	}
}

func TestParseSelectorClassAndID(t *testing.T) {
	list, err := ParseSelector(".foo#bar", false)
	if err != nil {
		t.Fatalf("ParseSelector: %v", err)
	}
	simple := list.Components[0].Components[0].Selector.Simple
	if len(simple) != 2 {
		t.Fatalf("got %d simple selectors, want 2", len(simple))
	}
	if simple[0].Kind != ast.ClassSelector || simple[0].Name != "foo" {
		t.Fatalf("got %+v, want class selector \"foo\"", simple[0])
	}
	if simple[1].Kind != ast.IDSelector || simple[1].Name != "bar" {
		t.Fatalf("got %+v, want id selector \"bar\"", simple[1])
	}
}

func TestParseSelectorCombinators(t *testing.T) {
	list, err := ParseSelector("ul > li + span ~ a", false)
	if err != nil {
		t.Fatalf("ParseSelector: %v", err)
	}
	cplx := list.Components[0]
	if len(cplx.Components) != 4 {
		t.Fatalf("got %d components, want 4", len(cplx.Components))
	}
	wantCombinators := []ast.Combinator{ast.Descendant, ast.Child, ast.NextSibling, ast.SubsequentSibling}
	for i, want := range wantCombinators {
		if got := cplx.Components[i].Combinator; got != want {
			t.Fatalf("component %d combinator = %v, want %v", i, got, want)
		}
	}
}

func TestParseSelectorList(t *testing.T) {
	list, err := ParseSelector("a, b", false)
	if err != nil {
		t.Fatalf("ParseSelector: %v", err)
	}
	if len(list.Components) != 2 {
		t.Fatalf("got %d complex selectors, want 2", len(list.Components))
	}
}

func TestParseSelectorParentRequiresAllowParent(t *testing.T) {
	if _, err := ParseSelector("&.active", false); err == nil {
		t.Fatalf("expected error for '&' with allowParent=false")
	}
	list, err := ParseSelector("&.active", true)
	if err != nil {
		t.Fatalf("ParseSelector: %v", err)
	}
	simple := list.Components[0].Components[0].Selector.Simple
	if simple[0].Kind != ast.ParentSelectorKind {
		t.Fatalf("got %+v, want parent selector", simple[0])
	}
}

func TestParseSelectorAttribute(t *testing.T) {
	list, err := ParseSelector(`[data-foo~="bar" i]`, false)
	if err != nil {
		t.Fatalf("ParseSelector: %v", err)
	}
	sel := list.Components[0].Components[0].Selector.Simple[0]
	if sel.Kind != ast.AttributeSelectorKind || sel.Name != "data-foo" {
		t.Fatalf("got %+v, want attribute selector \"data-foo\"", sel)
	}
	if sel.Operator != ast.AttrIncludes || sel.Value != "bar" {
		t.Fatalf("got operator %v value %q, want AttrIncludes \"bar\"", sel.Operator, sel.Value)
	}
	if !sel.HasCaseModifier || sel.CaseSensitive {
		t.Fatalf("got HasCaseModifier=%v CaseSensitive=%v, want true/false", sel.HasCaseModifier, sel.CaseSensitive)
	}
}

func TestParseSelectorPseudoWithSelectorListArgument(t *testing.T) {
	list, err := ParseSelector(":not(.a, .b)", false)
	if err != nil {
		t.Fatalf("ParseSelector: %v", err)
	}
	sel := list.Components[0].Components[0].Selector.Simple[0]
	if sel.Kind != ast.PseudoSelectorKind || sel.Name != "not" || !sel.IsClass {
		t.Fatalf("got %+v, want pseudo-class \"not\"", sel)
	}
	if sel.Selectors == nil || len(sel.Selectors.Components) != 2 {
		t.Fatalf("got %+v, want nested selector list of length 2", sel.Selectors)
	}
}

func TestParseSelectorPseudoClassWithRawArgument(t *testing.T) {
	list, err := ParseSelector(":nth-child(2n+1)", false)
	if err != nil {
		t.Fatalf("ParseSelector: %v", err)
	}
	sel := list.Components[0].Components[0].Selector.Simple[0]
	if sel.Name != "nth-child" || sel.Argument != "2n+1" {
		t.Fatalf("got name=%q argument=%q, want nth-child/2n+1", sel.Name, sel.Argument)
	}
}

func TestParseSelectorPseudoElementDoubleColon(t *testing.T) {
	list, err := ParseSelector("::before", false)
	if err != nil {
		t.Fatalf("ParseSelector: %v", err)
	}
	sel := list.Components[0].Components[0].Selector.Simple[0]
	if sel.IsClass || sel.Name != "before" {
		t.Fatalf("got %+v, want pseudo-element \"before\"", sel)
	}
}

func TestParseSelectorUniversal(t *testing.T) {
	list, err := ParseSelector("*", false)
	if err != nil {
		t.Fatalf("ParseSelector: %v", err)
	}
	sel := list.Components[0].Components[0].Selector.Simple[0]
	if sel.Kind != ast.UniversalSelector {
		t.Fatalf("got %+v, want universal selector", sel)
	}
}

func TestParseSelectorEmptyIsError(t *testing.T) {
	if _, err := ParseSelector("", false); err == nil {
		t.Fatalf("expected error for empty selector")
	}
}

func TestParseSelectorTrailingGarbageIsError(t *testing.T) {
	if _, err := ParseSelector("div }", false); err == nil {
		t.Fatalf("expected error for trailing garbage")
	}
}
