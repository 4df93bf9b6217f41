package span

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/multierr"
)

// SassFormatException is the single error type every parse-failure in this
// module raises. spec.md §6/§7: a message, a primary span, and an optional
// set of secondary spans each carrying their own label.
type SassFormatException struct {
	Message   string
	Primary   Span
	Secondary map[Span]string
}

// NewError builds a single-span SassFormatException.
func NewError(message string, primary Span) *SassFormatException {
	return &SassFormatException{Message: message, Primary: primary}
}

// WithSecondary returns a copy of e with an additional secondary span and
// label attached.
func (e *SassFormatException) WithSecondary(s Span, label string) *SassFormatException {
	cp := *e
	cp.Secondary = make(map[Span]string, len(e.Secondary)+1)
	for k, v := range e.Secondary {
		cp.Secondary[k] = v
	}
	cp.Secondary[s] = label
	return &cp
}

// Error implements the error interface.
func (e *SassFormatException) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s:%s)", e.Message, e.Primary.URL(), e.Primary.Start)
	if len(e.Secondary) > 0 {
		keys := make([]Span, 0, len(e.Secondary))
		for k := range e.Secondary {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i].Start.Offset < keys[j].Start.Offset })
		for _, k := range keys {
			fmt.Fprintf(&b, "\n  %s: %s (%s:%s)", e.Secondary[k], k.Text(), k.URL(), k.Start)
		}
	}
	return b.String()
}

// CombineErrors aggregates independent per-file parse failures (as produced
// by a batch driver parsing many stylesheets) into a single error using
// go.uber.org/multierr, the same aggregation library
// rupor-github-fb2cng/cmd/fbc/main.go uses to report every conversion
// failure in a batch rather than stopping at the first one.
func CombineErrors(errs ...error) error {
	var combined error
	for _, err := range errs {
		combined = multierr.Append(combined, err)
	}
	return combined
}
