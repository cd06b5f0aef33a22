// Package seq provides subsequence search and removal over slices.
//
// All operations borrow their input. Results are sub-slices of the
// haystack or elements pulled lazily from it; nothing is copied.
//
// # Search
//
// Find locates the first occurrence of a needle with a sliding window
// comparison. It is O(n*m) in the worst case and intended for short
// patterns:
//
//	i, ok := seq.Find([]byte("hello world"), []byte("o w")) // 4, true
//
// SliceBetween returns what sits between two bracketing subsequences:
//
//	body, ok := seq.SliceBetween(html, []byte("<a>"), []byte("</a>"))
//
// # Removal
//
// A Remover yields the source with every leftmost, non-overlapping
// occurrence of a pattern skipped:
//
//	r := seq.WithSequenceRemoved([]byte("Mississippi"), []byte("is"))
//	for b := range r.All() {
//	    // M s s i p p i
//	}
//
// RemoveTransformer applies the same rule to byte streams through
// golang.org/x/text/transform.
package seq
