// Command sass-parse parses Sass/SCSS/CSS source files and prints a
// summary of the resulting statement tree, the way cmd/browser prints a
// summary of a parsed DOM/CSS/layout tree.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lukehoban/sass/ast"
	"github.com/lukehoban/sass/logger"
	"github.com/lukehoban/sass/parser"
	"github.com/lukehoban/sass/span"
)

func main() {
	cmd := &cli.Command{
		Name:  "sass-parse",
		Usage: "parse Sass/SCSS/CSS stylesheets and print their statement tree",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "syntax",
				Usage: "scss, indented, or css; defaults to the file extension",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "suppress warning/deprecation logging",
			},
		},
		ArgsUsage: "<file> [file...]",
		Action:    run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	files := cmd.Args().Slice()
	if len(files) == 0 {
		return cli.Exit("expected at least one stylesheet path", 1)
	}

	log := logger.Default()
	if cmd.Bool("quiet") {
		log = logger.Silent()
	}

	var failures []error
	for _, path := range files {
		if err := parseAndPrint(path, cmd.String("syntax"), log); err != nil {
			failures = append(failures, err)
		}
	}
	if len(failures) > 0 {
		return span.CombineErrors(failures...)
	}
	return nil
}

func parseAndPrint(path, syntaxFlag string, log logger.Logger) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	syntax := syntaxFlag
	if syntax == "" {
		syntax = syntaxForExtension(path)
	}

	opts := []parser.Option{parser.WithURL(path), parser.WithLogger(log)}
	var sheet *ast.Stylesheet
	switch syntax {
	case "indented", "sass":
		sheet, err = parser.ParseIndented(string(content), opts...)
	case "css":
		sheet, err = parser.ParseCSS(string(content), opts...)
	default:
		sheet, err = parser.ParseSCSS(string(content), opts...)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fmt.Printf("=== %s (%d top-level statements) ===\n", path, len(sheet.Statements))
	for _, stmt := range sheet.Statements {
		printStatement(stmt, 0)
	}
	return nil
}

func syntaxForExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sass":
		return "indented"
	case ".css":
		return "css"
	default:
		return "scss"
	}
}

// printStatement prints one statement's kind and span, the way
// cmd/browser's printDOMTree prints one node's tag and depth -- a bare
// diagnostic view, not a pretty-printer for the parsed source.
func printStatement(stmt ast.Statement, depth int) {
	prefix := strings.Repeat("  ", depth)
	kind := reflect.TypeOf(stmt).Elem().Name()
	sp := stmt.Span()
	fmt.Printf("%s%s (%s:%s)\n", prefix, kind, sp.URL(), sp.Start)
	for _, child := range children(stmt) {
		printStatement(child, depth+1)
	}
}

// children returns a statement's nested statement list, if it has one.
// Most statement kinds have no children; the few block-structured ones
// (style rules, at-rules, control flow) are listed explicitly rather than
// reached for via reflection, matching the teacher's style of writing out
// each node kind's traversal by hand.
func children(stmt ast.Statement) []ast.Statement {
	switch s := stmt.(type) {
	case *ast.StyleRule:
		return s.Children
	case *ast.AtRule:
		return s.Children
	case *ast.AtRootRule:
		return s.Children
	case *ast.MediaRule:
		return s.Children
	case *ast.SupportsRule:
		return s.Children
	case *ast.MixinRule:
		return s.Children
	case *ast.FunctionRule:
		return s.Children
	case *ast.IncludeRule:
		if s.Content == nil {
			return nil
		}
		return s.Content.Children
	case *ast.IfRule:
		var all []ast.Statement
		for _, clause := range s.Clauses {
			all = append(all, clause.Children...)
		}
		return all
	case *ast.EachRule:
		return s.Children
	case *ast.ForRule:
		return s.Children
	case *ast.WhileRule:
		return s.Children
	}
	return nil
}
