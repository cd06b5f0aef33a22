package span

import (
	"fmt"
	"iter"
)

// Span represents a half-open interval of positions.
// Start is inclusive, End is exclusive: [Start, End).
//
// No Start <= End invariant is enforced. An inverted span is a legal value;
// it only fails when used to slice, exactly as the equivalent slice
// expression would.
type Span struct {
	Start int // Inclusive start position
	End   int // Exclusive end position
}

// At returns the zero-width span at pos.
func At(pos int) Span {
	return Span{Start: pos, End: pos}
}

// FromBounds creates a span from start and end positions.
func FromBounds(start, end int) Span {
	return Span{Start: start, End: end}
}

// FromPair creates a span from a [start, end] pair.
func FromPair(p [2]int) Span {
	return Span{Start: p[0], End: p[1]}
}

// Bounds returns the start and end positions.
func (s Span) Bounds() (start, end int) {
	return s.Start, s.End
}

// Pair returns the span as a [start, end] pair.
func (s Span) Pair() [2]int {
	return [2]int{s.Start, s.End}
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// SpanAt returns the zero-width span at the start of s.
func (s Span) SpanAt() Span {
	return At(s.Start)
}

// SpanAfter returns the zero-width span at the end of s.
func (s Span) SpanAfter() Span {
	return At(s.End)
}

// WithLen returns a span of length n starting where s starts.
func (s Span) WithLen(n int) Span {
	return Span{Start: s.Start, End: s.Start + n}
}

// WithStart returns s with its start replaced.
func (s Span) WithStart(start int) Span {
	return Span{Start: start, End: s.End}
}

// WithEnd returns s with its end replaced.
func (s Span) WithEnd(end int) Span {
	return Span{Start: s.Start, End: end}
}

// Len returns End - Start. It is negative for inverted spans.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns true if the span covers no positions.
func (s Span) IsEmpty() bool {
	return s.Start >= s.End
}

// Contains returns true if pos is within [Start, End).
func (s Span) Contains(pos int) bool {
	return pos >= s.Start && pos < s.End
}

// OverlapsWith returns true if either span contains the other's start.
//
// Spans that share a start always overlap, even when one of them is
// zero-width. Spans that merely touch end-to-start do not.
func (s Span) OverlapsWith(other Span) bool {
	return s.Contains(other.Start) || other.Contains(s.Start)
}

// All returns an iterator over Start, Start+1, ..., End-1.
func (s Span) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := s.Start; i < s.End; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// In returns the substring of str covered by s.
// It panics under the same conditions as str[s.Start:s.End].
func (s Span) In(str string) string {
	return str[s.Start:s.End]
}

// Of returns the sub-slice of items covered by sp. The result shares
// storage with items. It panics under the same conditions as
// items[sp.Start:sp.End].
func Of[T any](items []T, sp Span) []T {
	return items[sp.Start:sp.End]
}
