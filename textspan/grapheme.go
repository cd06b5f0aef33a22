package textspan

import (
	"iter"

	"github.com/rivo/uniseg"

	"github.com/dshills/spanseq/span"
)

// GraphemeLength returns the length in bytes of the grapheme cluster (user
// perceived character) that starts at byteIndex.
//
// byteIndex must be on a character boundary. Segmentation starts fresh at
// byteIndex, so an index inside a multi-rune cluster yields the remainder
// of that cluster.
func GraphemeLength(haystack string, byteIndex int) (int, bool) {
	if byteIndex == len(haystack) || !IsCharBoundary(haystack, byteIndex) {
		return 0, false
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(haystack[byteIndex:], -1)
	return len(cluster), true
}

// GraphemeSpan returns the byte span of the grapheme cluster that starts
// at byteIndex. Returns false under the same conditions as GraphemeLength.
func GraphemeSpan(haystack string, byteIndex int) (span.Span, bool) {
	n, ok := GraphemeLength(haystack, byteIndex)
	if !ok {
		return span.Span{}, false
	}
	return span.At(byteIndex).WithLen(n), true
}

// Graphemes returns an iterator over the byte spans of every grapheme
// cluster in haystack.
func Graphemes(haystack string) iter.Seq[span.Span] {
	return func(yield func(span.Span) bool) {
		rest := haystack
		state := -1
		offset := 0
		for len(rest) > 0 {
			var cluster string
			cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
			if !yield(span.At(offset).WithLen(len(cluster))) {
				return
			}
			offset += len(cluster)
		}
	}
}
