package seq

import "iter"

// Remover yields the elements of a sequence with every leftmost,
// non-overlapping occurrence of a pattern removed.
//
// Removal happens in a single forward pass as elements are pulled:
// whenever the unread remainder starts with the pattern, the whole pattern
// is skipped (repeatedly, for back-to-back occurrences) before the next
// element is produced. Nothing is copied or allocated.
type Remover[T comparable] struct {
	remaining []T
	pattern   []T
}

// NewRemover creates a Remover over haystack.
// Returns ErrEmptyPattern if pattern has no elements.
func NewRemover[T comparable](haystack, pattern []T) (*Remover[T], error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	return &Remover[T]{remaining: haystack, pattern: pattern}, nil
}

// WithSequenceRemoved is like NewRemover but panics if pattern is empty.
func WithSequenceRemoved[T comparable](haystack, pattern []T) *Remover[T] {
	r, err := NewRemover(haystack, pattern)
	if err != nil {
		panic(err)
	}
	return r
}

// Next returns the next element that is not part of a removed occurrence.
// Returns false once the sequence is exhausted.
func (r *Remover[T]) Next() (T, bool) {
	for hasPrefix(r.remaining, r.pattern) {
		r.remaining = r.remaining[len(r.pattern):]
	}

	var zero T
	if len(r.remaining) == 0 {
		return zero, false
	}

	item := r.remaining[0]
	r.remaining = r.remaining[1:]
	return item, true
}

// Remaining returns the part of the source that has not been scanned yet.
func (r *Remover[T]) Remaining() []T {
	return r.remaining
}

// All returns an iterator that drains the remover.
func (r *Remover[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := r.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}
