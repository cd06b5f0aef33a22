package textspan

import (
	"unicode/utf8"

	"github.com/dshills/spanseq/span"
)

// SubstrPos returns the byte span that substr occupies inside haystack.
// For empty or zero-width positions use View instead.
//
// substr must be a view into haystack's own storage, such as a result of
// slicing haystack. The position is taken from the string's address, not
// its contents, so SubstrPos tells apart two textually equal occurrences.
// Returns false if substr does not lie within haystack.
//
// Empty substrings are ambiguous: Go does not advance the data pointer
// when slicing produces an empty string, so an empty substr may report the
// position of the string it was cut from. Use View and Matches when
// zero-width positions matter.
func SubstrPos(haystack, substr string) (span.Span, bool) {
	off := addrOffset(haystack, substr)
	if off > uintptr(len(haystack)) {
		return span.Span{}, false
	}

	start := int(off)
	end := start + len(substr)
	if end > len(haystack) {
		return span.Span{}, false
	}
	return span.FromBounds(start, end), true
}

// IsCharBoundary reports whether byteIndex is the first byte of a character
// or the end of haystack. The boundaries are exactly the offsets visited by
// ranging over haystack, so a stray continuation byte that is not part of a
// valid sequence starts its own one-byte character.
func IsCharBoundary(haystack string, byteIndex int) bool {
	if byteIndex < 0 || byteIndex > len(haystack) {
		return false
	}
	if byteIndex == len(haystack) || utf8.RuneStart(haystack[byteIndex]) {
		return true
	}

	// A sequence is at most utf8.UTFMax bytes, so only a start byte in the
	// previous three can cover byteIndex.
	for j := byteIndex - 1; j >= 0 && j > byteIndex-utf8.UTFMax; j-- {
		if utf8.RuneStart(haystack[j]) {
			_, size := utf8.DecodeRuneInString(haystack[j:])
			return j+size <= byteIndex
		}
	}
	return true
}

// CharLength returns the length in bytes of the character that starts at
// byteIndex.
//
// Returns false if byteIndex is out of range or not on a character
// boundary. Bytes that are not valid UTF-8 count as one-byte characters,
// the same way ranging over a string treats them.
func CharLength(haystack string, byteIndex int) (int, bool) {
	if byteIndex == len(haystack) || !IsCharBoundary(haystack, byteIndex) {
		return 0, false
	}
	_, size := utf8.DecodeRuneInString(haystack[byteIndex:])
	return size, true
}

// CharSpan returns the byte span of the character that starts at byteIndex.
// Returns false under the same conditions as CharLength.
func CharSpan(haystack string, byteIndex int) (span.Span, bool) {
	n, ok := CharLength(haystack, byteIndex)
	if !ok {
		return span.Span{}, false
	}
	return span.At(byteIndex).WithLen(n), true
}
