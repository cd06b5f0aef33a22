package textspan

import "unsafe"

// Address arithmetic on string data is confined to this file.

// addrOffset returns the distance in bytes from the start of s to the start
// of sub. The subtraction wraps, so a sub that starts before s yields a
// value larger than any valid offset.
func addrOffset(s, sub string) uintptr {
	return uintptr(unsafe.Pointer(unsafe.StringData(sub))) - uintptr(unsafe.Pointer(unsafe.StringData(s)))
}

// sameStorage reports whether a and b are the same string header: same
// data address and same length.
func sameStorage(a, b string) bool {
	return len(a) == len(b) && unsafe.StringData(a) == unsafe.StringData(b)
}
