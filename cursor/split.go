package cursor

import "iter"

// Splitter splits a cursor into segments separated by items that satisfy
// a predicate. It is created by Split or SplitInclusive.
//
// The splitter owns a single cursor and lends it to the segment it most
// recently returned. Reading a segment advances the splitter; nothing is
// scanned twice as long as each segment is read before the next one is
// requested. If Next is called while the current segment is unfinished,
// that segment is moved onto a clone of the cursor so it stays readable,
// and the splitter skips the rest of it on its own.
//
// A Splitter and its segments are single-pass. Once exhausted they keep
// returning false.
type Splitter[T any] struct {
	cur       Cursor[T] // nil once the source is exhausted
	pred      func(T) bool
	inclusive bool
	active    *Segment[T]
}

// Split returns a splitter over src that drops separator items.
//
// A source that ends with a separator produces a final empty segment:
// splitting [0 10 20 0 0 50 0] on zero gives [] [10 20] [] [50] [].
// pred must not depend on how many times it has been called.
func Split[T any](src Cursor[T], pred func(T) bool) *Splitter[T] {
	return &Splitter[T]{cur: src, pred: pred}
}

// SplitInclusive returns a splitter over src that ends each segment with
// the separator item that terminated it:
// splitting [0 10 20 0 0 50 0] on zero gives [0] [10 20 0] [0] [50 0] [].
func SplitInclusive[T any](src Cursor[T], pred func(T) bool) *Splitter[T] {
	return &Splitter[T]{cur: src, pred: pred, inclusive: true}
}

// Next returns the next segment.
// Returns false once the source is exhausted.
func (s *Splitter[T]) Next() (*Segment[T], bool) {
	if s.active != nil {
		s.reclaim()
	}
	if s.cur == nil {
		return nil, false
	}

	seg := &Segment[T]{
		owner:     s,
		pred:      s.pred,
		inclusive: s.inclusive,
	}
	s.active = seg
	return seg, true
}

// reclaim takes the cursor back from the active segment. An unfinished
// segment is detached onto a clone, and the splitter skips past its end.
func (s *Splitter[T]) reclaim() {
	seg := s.active
	s.active = nil
	seg.owner = nil
	if seg.done {
		return
	}

	seg.cur = s.cur.Clone()
	for {
		item, ok := s.cur.Next()
		if !ok {
			s.cur = nil
			return
		}
		if s.pred(item) {
			return
		}
	}
}

// All returns an iterator over the remaining segments.
func (s *Splitter[T]) All() iter.Seq[*Segment[T]] {
	return func(yield func(*Segment[T]) bool) {
		for {
			seg, ok := s.Next()
			if !ok || !yield(seg) {
				return
			}
		}
	}
}

// Collect drains the splitter, reading each segment in full.
func (s *Splitter[T]) Collect() [][]T {
	var segments [][]T
	for seg := range s.All() {
		segments = append(segments, seg.Collect())
	}
	return segments
}

// Segment is one run of items between separators.
type Segment[T any] struct {
	owner     *Splitter[T] // non-nil while borrowing the splitter's cursor
	cur       Cursor[T]    // private cursor once detached
	pred      func(T) bool
	inclusive bool
	done      bool
}

// Next returns the next item of the segment.
// Returns false at the segment's separator or the end of the source.
func (g *Segment[T]) Next() (T, bool) {
	var zero T
	if g.done {
		return zero, false
	}

	c := g.cur
	if g.owner != nil {
		c = g.owner.cur
	}

	item, ok := c.Next()
	if !ok {
		g.done = true
		if g.owner != nil {
			g.owner.cur = nil
		}
		return zero, false
	}

	if g.pred(item) {
		g.done = true
		if !g.inclusive {
			return zero, false
		}
	}
	return item, true
}

// Done reports whether the segment has been read to its end.
func (g *Segment[T]) Done() bool {
	return g.done
}

// All returns an iterator over the remaining items of the segment.
func (g *Segment[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := g.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Collect reads the rest of the segment into a slice.
func (g *Segment[T]) Collect() []T {
	var items []T
	for item := range g.All() {
		items = append(items, item)
	}
	return items
}
