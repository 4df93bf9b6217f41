package parser

import (
	"github.com/lukehoban/sass/scanner"
	"github.com/lukehoban/sass/span"
)

// IsIdentifier reports whether text is a valid CSS identifier in its
// entirety -- no interpolation, no trailing garbage (spec.md §6 external
// interface). Used both as a public helper and internally to validate a
// `@use` URL's implicit namespace candidate.
func IsIdentifier(text string) bool {
	if text == "" {
		return false
	}
	s := scanner.New(span.NewFile(text, "identifier-check"))
	if !s.LookingAtIdentifier() {
		return false
	}
	if _, err := s.ReadIdentifier(scanner.IdentifierOptions{}); err != nil {
		return false
	}
	return s.IsDone()
}

// ParseIdentifier parses text as a single CSS identifier in its entirety,
// resolving escape sequences (spec.md §6 parse_identifier).
func ParseIdentifier(text string) (string, error) {
	s := scanner.New(span.NewFile(text, "identifier"))
	name, err := s.ReadIdentifier(scanner.IdentifierOptions{Normalize: true})
	if err != nil {
		return "", err
	}
	if err := s.ExpectDone(); err != nil {
		return "", err
	}
	return name, nil
}
