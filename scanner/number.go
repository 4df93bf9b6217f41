package scanner

import "strconv"

// Number is the decomposed result of scanning a CSS number: the literal
// text (for lossless double-parsing, spec.md §8 Testable Property 3) plus
// its parsed float64 value.
type Number struct {
	Text  string
	Value float64
}

// ReadNumber consumes a CSS number: optional sign, natural number part,
// optional decimal part, optional exponent part (spec.md §4.2
// natural_number/try_decimal/try_exponent).
func (s *Scanner) ReadNumber() (Number, error) {
	st := s.Mark()
	var sign string
	if s.ScanChar('-') {
		sign = "-"
	} else if s.ScanChar('+') {
		sign = "+"
	}
	intPart, hasInt := s.NaturalNumber()
	decPart, hasDec := s.TryDecimal()
	if !hasInt && !hasDec {
		s.Reset(st)
		return Number{}, s.error("expected number.")
	}
	expPart, _ := s.TryExponent()
	text := sign + intPart + decPart + expPart
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		s.Reset(st)
		return Number{}, s.error("expected number.")
	}
	return Number{Text: text, Value: value}, nil
}
