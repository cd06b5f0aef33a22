// Package textspan computes byte spans of substrings and characters within
// a string.
//
// # Substring Positions
//
// SubstrPos answers "where in haystack is this substring I am holding?".
// It works from the substring's address, so the substring must have been
// cut from haystack:
//
//	place := "mississippis"
//	var second string
//	for v := range textspan.Matches(place, "is") {
//	    second = v.String() // keep the last one
//	}
//	sp, _ := textspan.SubstrPos(place, second) // [10,12)
//
// View carries its span along with the text and needs no address
// arithmetic at all.
//
// # Characters
//
// CharLength and CharSpan measure the UTF-8 encoded character starting at a
// byte offset. GraphemeLength, GraphemeSpan and Graphemes do the same for
// grapheme clusters using github.com/rivo/uniseg:
//
//	textspan.CharSpan("añb", 1)          // [1,3)
//	textspan.GraphemeSpan("🇩🇪!", 0)     // [0,8)
//
// # JSON
//
// JSONSpan maps a github.com/tidwall/gjson path to the byte span of the
// raw value inside the caller's document.
package textspan
