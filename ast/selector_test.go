package ast

import (
	"testing"

	"github.com/lukehoban/sass/scanner"
	"github.com/lukehoban/sass/span"
)

func pointSpanForTest() span.Span {
	return scanner.New(span.NewFile("div", "test.scss")).PointSpan()
}

func TestNewSimpleSelectorDefaults(t *testing.T) {
	sel := NewSimpleSelector(pointSpanForTest(), TypeSelector)
	if sel.Kind != TypeSelector {
		t.Fatalf("got Kind=%v, want TypeSelector", sel.Kind)
	}
	if sel.Name != "" || sel.Namespace != "" {
		t.Fatalf("got %+v, want zero-value Name/Namespace", sel)
	}
}

func TestNewCompoundSelector(t *testing.T) {
	sp := pointSpanForTest()
	simple := []*SimpleSelector{NewSimpleSelector(sp, ClassSelector), NewSimpleSelector(sp, IDSelector)}
	compound := NewCompoundSelector(sp, simple)
	if len(compound.Simple) != 2 {
		t.Fatalf("got %d simple selectors, want 2", len(compound.Simple))
	}
}

func TestNewComplexSelectorLineBreak(t *testing.T) {
	sp := pointSpanForTest()
	compound := NewCompoundSelector(sp, []*SimpleSelector{NewSimpleSelector(sp, TypeSelector)})
	cplx := NewComplexSelector(sp, []ComplexSelectorComponent{{Combinator: Descendant, Selector: compound}}, true)
	if !cplx.LineBreak {
		t.Fatalf("got LineBreak=false, want true")
	}
	if len(cplx.Components) != 1 || cplx.Components[0].Combinator != Descendant {
		t.Fatalf("got %+v, want one Descendant component", cplx.Components)
	}
}

func TestNewSelectorList(t *testing.T) {
	sp := pointSpanForTest()
	compound := NewCompoundSelector(sp, []*SimpleSelector{NewSimpleSelector(sp, UniversalSelector)})
	cplx := NewComplexSelector(sp, []ComplexSelectorComponent{{Selector: compound}}, false)
	list := NewSelectorList(sp, []*ComplexSelector{cplx, cplx})
	if len(list.Components) != 2 {
		t.Fatalf("got %d components, want 2", len(list.Components))
	}
}
