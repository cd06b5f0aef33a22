package cursor

import (
	"iter"
	"unicode/utf8"
)

// Cursor is a lazy, forward-only sequence that can be duplicated.
//
// Clone returns an independent cursor at the same position. Advancing
// either copy never affects the other, and cloning does not copy the
// underlying data.
type Cursor[T any] interface {
	// Next returns the next item and advances.
	// Returns false once the sequence is exhausted.
	Next() (T, bool)

	// Clone returns an independent cursor at the current position.
	Clone() Cursor[T]
}

// sliceCursor walks a slice by index.
type sliceCursor[T any] struct {
	items []T
}

// FromSlice returns a cursor over the elements of items.
func FromSlice[T any](items []T) Cursor[T] {
	return &sliceCursor[T]{items: items}
}

func (c *sliceCursor[T]) Next() (T, bool) {
	if len(c.items) == 0 {
		var zero T
		return zero, false
	}
	item := c.items[0]
	c.items = c.items[1:]
	return item, true
}

func (c *sliceCursor[T]) Clone() Cursor[T] {
	return &sliceCursor[T]{items: c.items}
}

// stringCursor walks a string rune by rune.
type stringCursor struct {
	rest string
}

// FromString returns a cursor over the runes of s. Invalid UTF-8 bytes are
// returned as utf8.RuneError, one byte at a time.
func FromString(s string) Cursor[rune] {
	return &stringCursor{rest: s}
}

func (c *stringCursor) Next() (rune, bool) {
	if len(c.rest) == 0 {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.rest)
	c.rest = c.rest[size:]
	return r, true
}

func (c *stringCursor) Clone() Cursor[rune] {
	return &stringCursor{rest: c.rest}
}

// filterCursor yields only the items of src that satisfy keep.
type filterCursor[T any] struct {
	src  Cursor[T]
	keep func(T) bool
}

// Filter returns a cursor over the items of c for which keep returns true.
// keep must not depend on how many times it has been called; clones call
// it again for the same items.
func Filter[T any](c Cursor[T], keep func(T) bool) Cursor[T] {
	return &filterCursor[T]{src: c, keep: keep}
}

func (c *filterCursor[T]) Next() (T, bool) {
	for {
		item, ok := c.src.Next()
		if !ok || c.keep(item) {
			return item, ok
		}
	}
}

func (c *filterCursor[T]) Clone() Cursor[T] {
	return &filterCursor[T]{src: c.src.Clone(), keep: c.keep}
}

// mapCursor applies fn to each item of src.
type mapCursor[T, U any] struct {
	src Cursor[T]
	fn  func(T) U
}

// Map returns a cursor that yields fn(item) for each item of c.
func Map[T, U any](c Cursor[T], fn func(T) U) Cursor[U] {
	return &mapCursor[T, U]{src: c, fn: fn}
}

func (c *mapCursor[T, U]) Next() (U, bool) {
	item, ok := c.src.Next()
	if !ok {
		var zero U
		return zero, false
	}
	return c.fn(item), true
}

func (c *mapCursor[T, U]) Clone() Cursor[U] {
	return &mapCursor[T, U]{src: c.src.Clone(), fn: c.fn}
}

// All returns an iterator that drains c.
func All[T any](c Cursor[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := c.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Collect drains c into a slice.
func Collect[T any](c Cursor[T]) []T {
	var items []T
	for item := range All(c) {
		items = append(items, item)
	}
	return items
}

// CollectN pulls exactly n items from c.
// Returns nil and false if c runs out first; the items pulled so far are
// discarded.
func CollectN[T any](c Cursor[T], n int) ([]T, bool) {
	if n < 0 {
		return nil, false
	}
	items := make([]T, n)
	for i := range items {
		item, ok := c.Next()
		if !ok {
			return nil, false
		}
		items[i] = item
	}
	return items, true
}
