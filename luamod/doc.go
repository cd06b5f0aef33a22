// Package luamod exposes spanseq to Lua scripts running on gopher-lua.
//
// Register binds a table of functions to a global (_spanseq by default):
//
//	L := lua.NewState()
//	defer L.Close()
//	luamod.New().Register(L)
//	L.DoString(`print(_spanseq.between("<a>foo</a>", "<a>", "</a>"))`)
//
// Positions use the same convention as string.sub. Byte indices are
// 1-based and spans come back as an inclusive first, last pair:
//
//	local first, last = _spanseq.char_span("añb", 2)  -- 2, 3
//	print(("añb"):sub(first, last))                    -- ñ
//
// Functions that search return nil when nothing is found. Invalid
// arguments raise Lua errors.
package luamod
