package textspan

import (
	"iter"

	"github.com/tidwall/gjson"

	"github.com/dshills/spanseq/span"
)

// JSONSpan returns the byte span of the raw JSON value that path selects
// in json. Paths use gjson syntax.
//
// Returns false if the path matches nothing, or if the result is not a
// literal part of json (for example output produced by a modifier such as
// @reverse, or a multipath).
func JSONSpan(json, path string) (span.Span, bool) {
	r := gjson.Get(json, path)
	if !r.Exists() {
		return span.Span{}, false
	}
	return rawSpan(json, r.Raw, r.Index)
}

// JSONSpans returns an iterator over the spans of every value a query path
// (one containing '#') selects, such as "friends.#.name".
// Values without a recorded position are skipped.
func JSONSpans(json, path string) iter.Seq[span.Span] {
	return func(yield func(span.Span) bool) {
		r := gjson.Get(json, path)
		if !r.Exists() || len(r.Indexes) == 0 {
			return
		}

		values := r.Array()
		for i, idx := range r.Indexes {
			if i >= len(values) {
				return
			}
			sp, ok := rawSpan(json, values[i].Raw, idx)
			if !ok {
				continue
			}
			if !yield(sp) {
				return
			}
		}
	}
}

// rawSpan locates raw inside json. gjson reports index 0 when the position
// is unknown; raw is then resolved by address, which works whenever gjson
// returned a substring of json.
func rawSpan(json, raw string, index int) (span.Span, bool) {
	if raw == "" {
		return span.Span{}, false
	}
	if index > 0 && index+len(raw) <= len(json) && json[index:index+len(raw)] == raw {
		return span.At(index).WithLen(len(raw)), true
	}
	return SubstrPos(json, raw)
}
