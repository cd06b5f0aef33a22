package textspan

import (
	"slices"
	"testing"

	"github.com/dshills/spanseq/span"
)

const testJSON = `{"name":{"first":"Tom","last":"Anderson"},"age":37,"friends":[{"first":"Dale"},{"first":"Roger"}]}`

func TestJSONSpan(t *testing.T) {
	tests := []struct {
		path  string
		raw   string
		found bool
	}{
		{"name.last", `"Anderson"`, true},
		{"age", `37`, true},
		{"name", `{"first":"Tom","last":"Anderson"}`, true},
		{"friends.1.first", `"Roger"`, true},
		{"missing", "", false},
		{"name.middle", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			sp, ok := JSONSpan(testJSON, tt.path)
			if ok != tt.found {
				t.Fatalf("JSONSpan(%q) ok = %v, want %v", tt.path, ok, tt.found)
			}
			if ok && sp.In(testJSON) != tt.raw {
				t.Errorf("JSONSpan(%q) = %v -> %q, want %q", tt.path, sp, sp.In(testJSON), tt.raw)
			}
		})
	}
}

func TestJSONSpanWholeDocument(t *testing.T) {
	sp, ok := JSONSpan(testJSON, "@this")
	if !ok || sp != span.FromBounds(0, len(testJSON)) {
		t.Errorf("JSONSpan(@this) = %v, %v; want whole document", sp, ok)
	}
}

func TestJSONSpanModifier(t *testing.T) {
	// @reverse builds a new value that does not exist in the document.
	if sp, ok := JSONSpan(testJSON, "friends|@reverse"); ok {
		t.Errorf("JSONSpan(modifier) = %v, true; want false", sp)
	}
}

func TestJSONSpans(t *testing.T) {
	var got []string
	for sp := range JSONSpans(testJSON, "friends.#.first") {
		got = append(got, sp.In(testJSON))
	}
	want := []string{`"Dale"`, `"Roger"`}
	if !slices.Equal(got, want) {
		t.Errorf("JSONSpans() = %v, want %v", got, want)
	}

	if got := slices.Collect(JSONSpans(testJSON, "age")); len(got) != 0 {
		t.Errorf("JSONSpans(non-query) = %v, want none", got)
	}
}
