package parser

import (
	"github.com/lukehoban/sass/logger"
	"github.com/lukehoban/sass/span"
)

type options struct {
	url    string
	logger logger.Logger
	imap   *span.InterpolationMap
}

// Option configures a parse entry point, folding spec.md §6's `url?` and
// `logger?` parameters into Go's variadic-functional-option idiom.
type Option func(*options)

// WithURL attaches a file URL to the parsed source, used in spans and
// diagnostics.
func WithURL(url string) Option {
	return func(o *options) { o.url = url }
}

// WithLogger supplies the Logger collaborator that receives warnings and
// deprecation notices during the parse.
func WithLogger(l logger.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithInterpolationMap attaches a map translating spans back to an
// original source, for re-parsing synthesized interpolation output
// (spec.md §7).
func WithInterpolationMap(m *span.InterpolationMap) Option {
	return func(o *options) { o.imap = m }
}
