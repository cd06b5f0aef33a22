package textspan

import (
	"iter"
	"unicode/utf8"

	"github.com/dshills/spanseq/seq"
	"github.com/dshills/spanseq/span"
)

// View is a substring that remembers where it was cut from.
//
// A View records its source string and the span it covers at the moment
// it is created, so its position is a field read rather than address
// arithmetic. Zero-width views keep their position too.
type View struct {
	src string
	sp  span.Span
}

// NewView creates a view of src covering sp.
// Returns false if sp is inverted or does not fit in src.
func NewView(src string, sp span.Span) (View, bool) {
	if sp.Start < 0 || sp.Start > sp.End || sp.End > len(src) {
		return View{}, false
	}
	return View{src: src, sp: sp}, true
}

// String returns the viewed text. It shares storage with the source.
func (v View) String() string {
	return v.sp.In(v.src)
}

// Span returns the byte span of the view within its source.
func (v View) Span() span.Span {
	return v.sp
}

// Source returns the string the view was cut from.
func (v View) Source() string {
	return v.src
}

// Len returns the length of the view in bytes.
func (v View) Len() int {
	return v.sp.Len()
}

// Slice returns a view of part of v. rel is relative to the start of v.
// Returns false if rel does not fit in v.
func (v View) Slice(rel span.Span) (View, bool) {
	if rel.Start < 0 || rel.Start > rel.End || rel.End > v.sp.Len() {
		return View{}, false
	}
	return View{
		src: v.src,
		sp:  span.FromBounds(v.sp.Start+rel.Start, v.sp.Start+rel.End),
	}, true
}

// Pos returns the span of v within haystack.
//
// When haystack is the view's own source the recorded span is returned
// directly. Otherwise the position is resolved with SubstrPos.
func (v View) Pos(haystack string) (span.Span, bool) {
	if sameStorage(haystack, v.src) {
		return v.sp, true
	}
	return SubstrPos(haystack, v.String())
}

// Matches returns an iterator over the non-overlapping occurrences of
// pattern in haystack, leftmost first.
//
// An empty pattern matches once at every character boundary, including
// the end of haystack.
func Matches(haystack, pattern string) iter.Seq[View] {
	return func(yield func(View) bool) {
		if pattern == "" {
			for i := 0; i < len(haystack); {
				if !yield(View{src: haystack, sp: span.At(i)}) {
					return
				}
				_, size := utf8.DecodeRuneInString(haystack[i:])
				i += size
			}
			yield(View{src: haystack, sp: span.At(len(haystack))})
			return
		}

		off := 0
		for {
			i, ok := seq.FindString(haystack[off:], pattern)
			if !ok {
				return
			}
			start := off + i
			off = start + len(pattern)
			if !yield(View{src: haystack, sp: span.FromBounds(start, off)}) {
				return
			}
		}
	}
}
