// Package span provides Span, a half-open [Start, End) interval value.
//
// Span is a plain two-field struct. It is copied by value and never
// mutated in place; every derived span is a new value:
//
//	word := span.FromBounds(4, 9)
//	word.SpanAt()    // [4,4)
//	word.SpanAfter() // [9,9)
//	word.WithLen(2)  // [4,6)
//
// Conversion to and from the (start, end) pair form is a field copy and is
// lossless for every pair, including inverted ones where start > end.
//
// Spans index strings and slices without copying:
//
//	text := "hello world"
//	span.FromBounds(6, 11).In(text) // "world"
package span
