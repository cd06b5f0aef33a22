package luamod

import (
	"iter"
	"unicode/utf8"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/spanseq/cursor"
	"github.com/dshills/spanseq/seq"
	"github.com/dshills/spanseq/span"
	"github.com/dshills/spanseq/textspan"
)

// Module exposes the search, removal, span and split helpers to Lua.
type Module struct {
	globalName string
}

// New creates a module with the given options.
func New(opts ...Option) *Module {
	m := &Module{globalName: DefaultGlobalName}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name returns the module name.
func (m *Module) Name() string {
	return "spanseq"
}

// GlobalName returns the global the module table is bound to.
func (m *Module) GlobalName() string {
	return m.globalName
}

// Register builds the module table and binds it to the module's global.
func (m *Module) Register(L *lua.LState) error {
	L.SetGlobal(m.globalName, m.table(L))
	return nil
}

// Preload makes the module available through require(m.Name()) without
// setting a global.
func (m *Module) Preload(L *lua.LState) {
	L.PreloadModule(m.Name(), func(L *lua.LState) int {
		L.Push(m.table(L))
		return 1
	})
}

func (m *Module) table(L *lua.LState) *lua.LTable {
	mod := L.NewTable()

	// Search and removal
	L.SetField(mod, "find", L.NewFunction(m.find))
	L.SetField(mod, "between", L.NewFunction(m.between))
	L.SetField(mod, "remove", L.NewFunction(m.remove))

	// Spans
	L.SetField(mod, "char_span", L.NewFunction(m.charSpan))
	L.SetField(mod, "grapheme_span", L.NewFunction(m.graphemeSpan))
	L.SetField(mod, "json_span", L.NewFunction(m.jsonSpan))
	L.SetField(mod, "overlaps", L.NewFunction(m.overlaps))

	// Splitting
	L.SetField(mod, "split", L.NewFunction(m.split))
	L.SetField(mod, "split_inclusive", L.NewFunction(m.splitInclusive))

	return mod
}

// find(hay, needle) -> index or nil
// Returns the 1-based position of the first occurrence of needle.
func (m *Module) find(L *lua.LState) int {
	hay := L.CheckString(1)
	needle := L.CheckString(2)

	pos, ok := seq.FindString(hay, needle)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(pos + 1))
	return 1
}

// between(hay, open, close) -> string or nil
func (m *Module) between(L *lua.LState) int {
	hay := L.CheckString(1)
	open := L.CheckString(2)
	closing := L.CheckString(3)

	inner, ok := seq.BetweenString(hay, open, closing)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(inner))
	return 1
}

// remove(hay, pattern) -> string
// Removes every non-overlapping occurrence of pattern.
func (m *Module) remove(L *lua.LState) int {
	hay := L.CheckString(1)
	pattern := L.CheckString(2)

	r, err := seq.NewRemover([]byte(hay), []byte(pattern))
	if err != nil {
		L.ArgError(2, err.Error())
		return 0
	}

	out := make([]byte, 0, len(hay))
	for b := range r.All() {
		out = append(out, b)
	}
	L.Push(lua.LString(out))
	return 1
}

// char_span(str, index) -> first, last or nil
func (m *Module) charSpan(L *lua.LState) int {
	str := L.CheckString(1)
	idx := L.CheckInt(2)

	sp, ok := textspan.CharSpan(str, idx-1)
	return pushSpan(L, sp, ok)
}

// grapheme_span(str, index) -> first, last or nil
func (m *Module) graphemeSpan(L *lua.LState) int {
	str := L.CheckString(1)
	idx := L.CheckInt(2)

	sp, ok := textspan.GraphemeSpan(str, idx-1)
	return pushSpan(L, sp, ok)
}

// json_span(json, path) -> first, last or nil
// Locates the raw text of the value at path.
func (m *Module) jsonSpan(L *lua.LState) int {
	doc := L.CheckString(1)
	path := L.CheckString(2)

	sp, ok := textspan.JSONSpan(doc, path)
	return pushSpan(L, sp, ok)
}

// overlaps(first1, last1, first2, last2) -> bool
func (m *Module) overlaps(L *lua.LState) int {
	a := fromLua(L.CheckInt(1), L.CheckInt(2))
	b := fromLua(L.CheckInt(3), L.CheckInt(4))
	L.Push(lua.LBool(a.OverlapsWith(b)))
	return 1
}

// split(str, sep) -> {parts}
// Splits str on a single-character separator. A trailing separator
// produces a trailing empty part. Parts are byte-exact substrings of str.
func (m *Module) split(L *lua.LState) int {
	return m.splitWith(L, cursor.SplitString)
}

// split_inclusive(str, sep) -> {parts}
// Like split, but each part keeps the separator that ended it.
func (m *Module) splitInclusive(L *lua.LState) int {
	return m.splitWith(L, cursor.SplitStringInclusive)
}

func (m *Module) splitWith(L *lua.LState, split func(string, func(rune) bool) iter.Seq[string]) int {
	str := L.CheckString(1)
	sep := L.CheckString(2)
	if utf8.RuneCountInString(sep) != 1 {
		L.ArgError(2, "separator must be a single character")
		return 0
	}
	sepRune, _ := utf8.DecodeRuneInString(sep)

	tbl := L.NewTable()
	i := 1
	for part := range split(str, func(r rune) bool { return r == sepRune }) {
		tbl.RawSetInt(i, lua.LString(part))
		i++
	}

	L.Push(tbl)
	return 1
}

// pushSpan pushes sp in string.sub form, or nil when !ok.
func pushSpan(L *lua.LState, sp span.Span, ok bool) int {
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(sp.Start + 1))
	L.Push(lua.LNumber(sp.End))
	return 2
}

// fromLua converts an inclusive 1-based pair to a half-open span.
func fromLua(first, last int) span.Span {
	return span.FromBounds(first-1, last)
}
