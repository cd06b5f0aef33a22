// Package cursor provides duplicable lazy sequences and a splitter that
// segments them around separator items.
//
// # Cursors
//
// A Cursor is a pull-style sequence that can be cloned into an
// independently advancing copy. FromSlice and FromString create cursors
// over existing data without copying it; Filter and Map wrap a cursor and
// stay cloneable.
//
// # Splitting
//
// Split and SplitInclusive produce a lazy sequence of lazy segments:
//
//	sp := cursor.Split(cursor.FromSlice(nums), func(n int) bool { return n == 0 })
//	for seg := range sp.All() {
//	    for n := range seg.All() {
//	        // items up to the next zero
//	    }
//	}
//
// Segments read directly from the splitter's cursor, so the source is
// scanned once. Read each segment before asking for the next one; a
// segment that is left unfinished is moved onto a clone, which costs a
// second scan of its remaining items.
//
// SplitString and SplitStringInclusive split text on a separator character
// and yield substrings of the input, so bytes that are not valid UTF-8 are
// kept as they are.
//
// Neither splitters nor segments are safe for concurrent use.
package cursor
