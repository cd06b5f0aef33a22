package luamod

import (
	"testing"

	lua "github.com/yuin/gopher-lua"
)

func setupModuleTest(t *testing.T, opts ...Option) *lua.LState {
	t.Helper()

	mod := New(opts...)

	L := lua.NewState()
	t.Cleanup(func() { L.Close() })

	if err := mod.Register(L); err != nil {
		t.Fatalf("Register error = %v", err)
	}

	return L
}

func runLua(t *testing.T, L *lua.LState, code string) {
	t.Helper()
	if err := L.DoString(code); err != nil {
		t.Fatalf("DoString error = %v", err)
	}
}

func TestModuleName(t *testing.T) {
	mod := New()
	if mod.Name() != "spanseq" {
		t.Errorf("Name() = %q, want %q", mod.Name(), "spanseq")
	}
	if mod.GlobalName() != DefaultGlobalName {
		t.Errorf("GlobalName() = %q, want %q", mod.GlobalName(), DefaultGlobalName)
	}
}

func TestWithGlobalName(t *testing.T) {
	L := setupModuleTest(t, WithGlobalName("sq"))

	runLua(t, L, `
		pos = sq.find("mississippi", "ss")
		default_missing = (_spanseq == nil)
	`)

	if pos := L.GetGlobal("pos"); pos != lua.LNumber(3) {
		t.Errorf("sq.find = %v, want 3", pos)
	}
	if L.GetGlobal("default_missing") != lua.LTrue {
		t.Error("default global should not be set")
	}

	if New(WithGlobalName("")).GlobalName() != DefaultGlobalName {
		t.Error("empty global name should keep the default")
	}
}

func TestFind(t *testing.T) {
	L := setupModuleTest(t)

	runLua(t, L, `
		found = _spanseq.find("mississippi", "ss")
		missing = _spanseq.find("mississippi", "xyz")
		empty = _spanseq.find("abc", "")
	`)

	if found := L.GetGlobal("found"); found != lua.LNumber(3) {
		t.Errorf("find = %v, want 3", found)
	}
	if missing := L.GetGlobal("missing"); missing != lua.LNil {
		t.Errorf("find missing = %v, want nil", missing)
	}
	if empty := L.GetGlobal("empty"); empty != lua.LNumber(1) {
		t.Errorf("find empty needle = %v, want 1", empty)
	}
}

func TestBetween(t *testing.T) {
	L := setupModuleTest(t)

	runLua(t, L, `
		inner = _spanseq.between("<a>foo</a>", "<a>", "</a>")
		missing = _spanseq.between("<a>foo", "<a>", "</a>")
	`)

	if inner := L.GetGlobal("inner"); inner.String() != "foo" {
		t.Errorf("between = %q, want %q", inner.String(), "foo")
	}
	if missing := L.GetGlobal("missing"); missing != lua.LNil {
		t.Errorf("between without close = %v, want nil", missing)
	}
}

func TestRemove(t *testing.T) {
	L := setupModuleTest(t)

	runLua(t, L, `
		result = _spanseq.remove("mississippi", "ss")
		ok, err = pcall(_spanseq.remove, "abc", "")
	`)

	if result := L.GetGlobal("result"); result.String() != "miiippi" {
		t.Errorf("remove = %q, want %q", result.String(), "miiippi")
	}
	if L.GetGlobal("ok") != lua.LFalse {
		t.Error("remove with empty pattern should raise an error")
	}
}

func TestCharSpan(t *testing.T) {
	L := setupModuleTest(t)

	runLua(t, L, `
		s = "a\195\177b"
		first, last = _spanseq.char_span(s, 2)
		char = s:sub(first, last)
		inside = _spanseq.char_span(s, 3)
		past = _spanseq.char_span(s, 5)
	`)

	if first := L.GetGlobal("first"); first != lua.LNumber(2) {
		t.Errorf("char_span first = %v, want 2", first)
	}
	if last := L.GetGlobal("last"); last != lua.LNumber(3) {
		t.Errorf("char_span last = %v, want 3", last)
	}
	if char := L.GetGlobal("char"); char.String() != "ñ" {
		t.Errorf("sub(first, last) = %q, want %q", char.String(), "ñ")
	}
	if inside := L.GetGlobal("inside"); inside != lua.LNil {
		t.Errorf("char_span inside a character = %v, want nil", inside)
	}
	if past := L.GetGlobal("past"); past != lua.LNil {
		t.Errorf("char_span past the end = %v, want nil", past)
	}
}

func TestGraphemeSpan(t *testing.T) {
	L := setupModuleTest(t)

	// "e" followed by U+0301 COMBINING ACUTE ACCENT, then "x".
	runLua(t, L, `
		first, last = _spanseq.grapheme_span("e\204\129x", 1)
	`)

	if first := L.GetGlobal("first"); first != lua.LNumber(1) {
		t.Errorf("grapheme_span first = %v, want 1", first)
	}
	if last := L.GetGlobal("last"); last != lua.LNumber(3) {
		t.Errorf("grapheme_span last = %v, want 3", last)
	}
}

func TestJSONSpan(t *testing.T) {
	L := setupModuleTest(t)

	runLua(t, L, `
		doc = '{"a":{"b":[1,2]}}'
		first, last = _spanseq.json_span(doc, "a.b")
		raw = doc:sub(first, last)
		missing = _spanseq.json_span(doc, "a.c")
	`)

	if first := L.GetGlobal("first"); first != lua.LNumber(11) {
		t.Errorf("json_span first = %v, want 11", first)
	}
	if raw := L.GetGlobal("raw"); raw.String() != "[1,2]" {
		t.Errorf("sub(first, last) = %q, want %q", raw.String(), "[1,2]")
	}
	if missing := L.GetGlobal("missing"); missing != lua.LNil {
		t.Errorf("json_span missing = %v, want nil", missing)
	}
}

func TestOverlaps(t *testing.T) {
	L := setupModuleTest(t)

	runLua(t, L, `
		shared = _spanseq.overlaps(1, 3, 3, 5)
		adjacent = _spanseq.overlaps(1, 2, 3, 4)
	`)

	if L.GetGlobal("shared") != lua.LTrue {
		t.Error("overlaps(1, 3, 3, 5) = false, want true")
	}
	if L.GetGlobal("adjacent") != lua.LFalse {
		t.Error("overlaps(1, 2, 3, 4) = true, want false")
	}
}

func TestSplit(t *testing.T) {
	L := setupModuleTest(t)

	runLua(t, L, `
		parts = _spanseq.split("a,b,", ",")
		count = #parts
		first = parts[1]
		second = parts[2]
		third = parts[3]

		incl = _spanseq.split_inclusive("a,b", ",")
		incl_count = #incl
		incl_first = incl[1]
		incl_second = incl[2]

		ok = pcall(_spanseq.split, "a::b", "::")

		raw = _spanseq.split("\255,a", ",")
		raw_first = raw[1]
		raw_incl = _spanseq.split_inclusive("\255,a", ",")[1]
	`)

	if raw := L.GetGlobal("raw_first"); raw.String() != "\xff" {
		t.Errorf("split invalid byte part = %q, want %q", raw.String(), "\xff")
	}
	if raw := L.GetGlobal("raw_incl"); raw.String() != "\xff," {
		t.Errorf("split_inclusive invalid byte part = %q, want %q", raw.String(), "\xff,")
	}

	if count := L.GetGlobal("count"); count != lua.LNumber(3) {
		t.Errorf("split count = %v, want 3", count)
	}
	if first := L.GetGlobal("first"); first.String() != "a" {
		t.Errorf("split first = %q, want %q", first.String(), "a")
	}
	if second := L.GetGlobal("second"); second.String() != "b" {
		t.Errorf("split second = %q, want %q", second.String(), "b")
	}
	if third := L.GetGlobal("third"); third.String() != "" {
		t.Errorf("split third = %q, want empty", third.String())
	}

	if count := L.GetGlobal("incl_count"); count != lua.LNumber(2) {
		t.Errorf("split_inclusive count = %v, want 2", count)
	}
	if first := L.GetGlobal("incl_first"); first.String() != "a," {
		t.Errorf("split_inclusive first = %q, want %q", first.String(), "a,")
	}
	if second := L.GetGlobal("incl_second"); second.String() != "b" {
		t.Errorf("split_inclusive second = %q, want %q", second.String(), "b")
	}

	if L.GetGlobal("ok") != lua.LFalse {
		t.Error("split with a multi-character separator should raise an error")
	}
}

func TestPreload(t *testing.T) {
	L := lua.NewState()
	t.Cleanup(func() { L.Close() })

	New().Preload(L)
	runLua(t, L, `
		local sq = require("spanseq")
		pos = sq.find("hello", "llo")
		no_global = (_spanseq == nil)
	`)

	if pos := L.GetGlobal("pos"); pos != lua.LNumber(3) {
		t.Errorf("find via require = %v, want 3", pos)
	}
	if L.GetGlobal("no_global") != lua.LTrue {
		t.Error("Preload should not set the global")
	}
}
