package parser

import "github.com/lukehoban/sass/scanner"

// spec.md §4.7 KeyframeSelectorParser: a comma-separated list of
// "from" | "to" | "<percentage>" selectors.

// ParseKeyframeSelector parses text as the selector list accepted by a
// "@keyframes" block's child rules (spec.md §6 parse_keyframe_selector).
func ParseKeyframeSelector(text string, opts ...Option) ([]string, error) {
	p := newParser(text, NewSCSSDialect(), opts...)
	var selectors []string
	for {
		p.scan.SkipWhitespaceWithComments(false)
		sel, err := keyframeSelector(p)
		if err != nil {
			return nil, err
		}
		selectors = append(selectors, sel)
		p.scan.SkipWhitespaceWithComments(false)
		if !p.scan.ScanChar(',') {
			break
		}
	}
	if err := p.scan.ExpectDone(); err != nil {
		return nil, err
	}
	return selectors, nil
}

func keyframeSelector(p *Parser) (string, error) {
	if r, ok := p.scan.Peek(0); ok && (r == 'f' || r == 'F' || r == 't' || r == 'T') {
		st := p.scan.Mark()
		word, err := p.scan.ReadIdentifier(scanner.IdentifierOptions{})
		if err == nil {
			switch word {
			case "from", "to":
				return word, nil
			}
		}
		p.scan.Reset(st)
	}
	return keyframePercentage(p)
}

// keyframePercentage scans a CSS percentage token: an optional sign, a
// number (with optional fraction and exponent), and a mandatory "%".
func keyframePercentage(p *Parser) (string, error) {
	st := p.scan.Mark()
	if r, ok := p.scan.Peek(0); ok && (r == '+' || r == '-') {
		p.scan.Read()
	}
	digits := 0
	for {
		r, ok := p.scan.Peek(0)
		if !ok || r < '0' || r > '9' {
			break
		}
		p.scan.Read()
		digits++
	}
	if r, ok := p.scan.Peek(0); ok && r == '.' {
		if r2, ok2 := p.scan.Peek(1); ok2 && r2 >= '0' && r2 <= '9' {
			p.scan.Read()
			for {
				r, ok := p.scan.Peek(0)
				if !ok || r < '0' || r > '9' {
					break
				}
				p.scan.Read()
				digits++
			}
		}
	}
	if digits == 0 {
		return "", p.errorf("Expected number.", p.pointSpan())
	}
	if r, ok := p.scan.Peek(0); ok && (r == 'e' || r == 'E') {
		expDigitsAt := 1
		if r2, ok2 := p.scan.Peek(1); ok2 && (r2 == '+' || r2 == '-') {
			expDigitsAt = 2
		}
		if r3, ok3 := p.scan.Peek(expDigitsAt); ok3 && r3 >= '0' && r3 <= '9' {
			for i := 0; i < expDigitsAt; i++ {
				p.scan.Read()
			}
			for {
				r, ok := p.scan.Peek(0)
				if !ok || r < '0' || r > '9' {
					break
				}
				p.scan.Read()
			}
		}
	}
	if err := p.scan.ExpectChar('%'); err != nil {
		return "", err
	}
	return p.spanFrom(st).Text(), nil
}
