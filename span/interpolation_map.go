package span

// InterpolationMap translates spans produced while re-parsing text that was
// itself synthesized from an interpolation back into spans over the
// original source. spec.md §7: "attaching an optional InterpolationMap to
// the parser — any span returned from the parser is then remapped by this
// map so that downstream consumers see the original source positions."
//
// A map is built incrementally as the synthesized text is assembled: each
// segment records the length of text contributed, the original span it
// came from, and whether it is literal text carried over verbatim or the
// output of an expression.
type InterpolationMap struct {
	segments []mapSegment
}

type mapSegment struct {
	syntheticEnd int // code-unit offset, in the synthesized text, where this segment ends
	original     Span
	literal      bool
}

// NewInterpolationMap returns an empty map ready to be built up with
// AddLiteral and AddExpression.
func NewInterpolationMap() *InterpolationMap {
	return &InterpolationMap{}
}

// AddLiteral records that the next n code units of synthesized text are
// copied verbatim from original.
func (m *InterpolationMap) AddLiteral(n int, original Span) {
	end := 0
	if len(m.segments) > 0 {
		end = m.segments[len(m.segments)-1].syntheticEnd
	}
	m.segments = append(m.segments, mapSegment{syntheticEnd: end + n, original: original, literal: true})
}

// AddExpression records that the next n code units of synthesized text were
// produced by evaluating the expression that originally occupied original.
func (m *InterpolationMap) AddExpression(n int, original Span) {
	end := 0
	if len(m.segments) > 0 {
		end = m.segments[len(m.segments)-1].syntheticEnd
	}
	m.segments = append(m.segments, mapSegment{syntheticEnd: end + n, original: original, literal: false})
}

// Map translates a span over the synthesized text back to a span over the
// original source. The result is the whole original span of the segment
// the span starts in (no offset within a segment is computed); if the span
// straddles multiple segments, that span is expanded to cover the last.
func (m *InterpolationMap) Map(s Span) Span {
	if m == nil || len(m.segments) == 0 {
		return s
	}
	start := m.segmentFor(s.Start.Offset)
	end := m.segmentFor(s.End.Offset)
	if start == nil {
		return s
	}
	if end == nil {
		end = start
	}
	return Expand(start.original, end.original)
}

func (m *InterpolationMap) segmentFor(offset int) *mapSegment {
	begin := 0
	for i := range m.segments {
		if offset >= begin && offset < m.segments[i].syntheticEnd {
			return &m.segments[i]
		}
		begin = m.segments[i].syntheticEnd
	}
	if len(m.segments) > 0 {
		return &m.segments[len(m.segments)-1]
	}
	return nil
}
