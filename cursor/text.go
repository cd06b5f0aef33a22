package cursor

import (
	"iter"
	"unicode/utf8"

	"github.com/dshills/spanseq/span"
)

// charCursor walks the characters of a string by byte span.
type charCursor struct {
	s   string
	off int
}

// CharSpans returns a cursor over the byte spans of the characters of s.
// Invalid UTF-8 bytes are one-byte characters, the same way ranging over a
// string treats them.
func CharSpans(s string) Cursor[span.Span] {
	return &charCursor{s: s}
}

func (c *charCursor) Next() (span.Span, bool) {
	if c.off >= len(c.s) {
		return span.Span{}, false
	}
	_, size := utf8.DecodeRuneInString(c.s[c.off:])
	sp := span.At(c.off).WithLen(size)
	c.off = sp.End
	return sp, true
}

func (c *charCursor) Clone() Cursor[span.Span] {
	return &charCursor{s: c.s, off: c.off}
}

// SplitString returns an iterator over the parts of s separated by
// characters for which isSep returns true. Each part is a substring of s;
// bytes are never decoded and re-encoded, so invalid UTF-8 passes through
// unchanged. isSep sees invalid bytes as utf8.RuneError.
func SplitString(s string, isSep func(rune) bool) iter.Seq[string] {
	return splitString(s, isSep, false)
}

// SplitStringInclusive is SplitString, but each part ends with the
// separator that terminated it.
func SplitStringInclusive(s string, isSep func(rune) bool) iter.Seq[string] {
	return splitString(s, isSep, true)
}

func splitString(s string, isSep func(rune) bool, inclusive bool) iter.Seq[string] {
	pred := func(sp span.Span) bool {
		r, _ := utf8.DecodeRuneInString(sp.In(s))
		return isSep(r)
	}

	return func(yield func(string) bool) {
		sp := Split(CharSpans(s), pred)
		if inclusive {
			sp = SplitInclusive(CharSpans(s), pred)
		}

		for seg := range sp.All() {
			if !yield(extent(seg).In(s)) {
				return
			}
		}
	}
}

// extent drains seg and returns the span from its first character to the
// end of its last. An empty segment gives the empty span at 0.
func extent(seg *Segment[span.Span]) span.Span {
	var whole span.Span
	first := true
	for sp := range seg.All() {
		if first {
			whole = sp
			first = false
			continue
		}
		whole = whole.WithEnd(sp.End)
	}
	return whole
}
