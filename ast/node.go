// Package ast defines the immutable Abstract Syntax Tree produced by the
// parser. spec.md §3: all nodes are created by the parser and never
// mutated afterwards; every node carries a Span.
//
// Node shapes follow lukehoban-browser's css.Rule/Selector/Declaration
// style (small exported structs, doc comments citing the governing spec
// section) generalized from CSS 2.1's tiny grammar to the full Sass
// grammar spec.md §3 describes.
package ast

import "github.com/lukehoban/sass/span"

// Node is implemented by every AST node.
type Node interface {
	Span() span.Span
}

// Statement is implemented by every statement-level node.
type Statement interface {
	Node
	statementNode()
}

// Expression is implemented by every expression-level node.
type Expression interface {
	Node
	expressionNode()
}

// base embeds a Span and gives every node its Span() accessor for free.
type base struct {
	SourceSpan span.Span
}

// Span implements Node.
func (b base) Span() span.Span { return b.SourceSpan }
