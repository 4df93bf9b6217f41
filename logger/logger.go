// Package logger provides the parser's Logger collaborator: warnings with
// spans and deprecation keys. spec.md §6 Logger contract: warn(message,
// span) and warn_for_deprecation(kind, message, span).
//
// It follows the shape of lukehoban-browser's log package (a small
// wrapper type with package-level convenience constructors) but is backed
// by go.uber.org/zap, the structured-logging library rupor-github-fb2cng
// threads through its CSS parsers (rupor-github-fb2cng/css/parser.go,
// convert/kfx/css/converter.go) as a *zap.Logger named per component --
// unrelated to lukehoban-browser's own css/parser.go, which carries no
// logger at all -- rather than hand-rolling one.
package logger

import (
	"go.uber.org/zap"

	"github.com/lukehoban/sass/span"
)

// DeprecationKind enumerates the named deprecation categories spec.md §6
// lists as examples. Implementations need only recognize the kind; the
// semantics of what to do with it (suppress, escalate, collect) are left
// to the Logger implementation.
type DeprecationKind int

const (
	ElseIf DeprecationKind = iota
	Import
	MozDocument
	StrictUnary
	DuplicateVarFlags
	CSSFunctionMixin
	SlashDiv
	GlobalBuiltin
)

// String returns the wire name used when logging a deprecation.
func (k DeprecationKind) String() string {
	switch k {
	case ElseIf:
		return "elseif"
	case Import:
		return "import"
	case MozDocument:
		return "moz_document"
	case StrictUnary:
		return "strict_unary"
	case DuplicateVarFlags:
		return "duplicate_var_flags"
	case CSSFunctionMixin:
		return "css_function_mixin"
	case SlashDiv:
		return "slash_div"
	case GlobalBuiltin:
		return "global_builtin"
	default:
		return "unknown"
	}
}

// Logger is the parser's logging collaborator.
type Logger interface {
	Warn(message string, s span.Span)
	WarnForDeprecation(kind DeprecationKind, message string, s span.Span)
}

// zapLogger adapts *zap.Logger to the Logger interface.
type zapLogger struct {
	z *zap.Logger
}

// Default returns a Logger backed by a production zap.Logger, named
// "sass-parser" the way rupor-github-fb2cng's css.NewParser names its
// logger "css-parser".
func Default() Logger {
	z, err := zap.NewProduction()
	if err != nil {
		z = zap.NewNop()
	}
	return &zapLogger{z: z.Named("sass-parser")}
}

// New wraps an existing *zap.Logger.
func New(z *zap.Logger) Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &zapLogger{z: z.Named("sass-parser")}
}

// Silent returns a Logger that discards everything. It is the parser's
// default when no WithLogger option is given.
func Silent() Logger {
	return &zapLogger{z: zap.NewNop()}
}

func (l *zapLogger) Warn(message string, s span.Span) {
	l.z.Warn(message,
		zap.String("file", s.URL()),
		zap.Int("line", s.Start.Line+1),
		zap.Int("column", s.Start.Column+1),
	)
}

func (l *zapLogger) WarnForDeprecation(kind DeprecationKind, message string, s span.Span) {
	l.z.Warn(message,
		zap.String("deprecation", kind.String()),
		zap.String("file", s.URL()),
		zap.Int("line", s.Start.Line+1),
		zap.Int("column", s.Start.Column+1),
	)
}
