package seq

// Find returns the index of the first occurrence of needle in haystack.
//
// Each window of len(needle) elements is compared element by element,
// left to right. An empty needle matches at index 0. A needle longer than
// haystack never matches.
func Find[T comparable](haystack, needle []T) (int, bool) {
	n := len(needle)
	for i := 0; i+n <= len(haystack); i++ {
		if windowEqual(haystack[i:i+n], needle) {
			return i, true
		}
	}
	return 0, false
}

// SliceBetween returns the elements between the first occurrence of open
// and the first occurrence of close that follows it.
//
// close is searched for only after the end of open's match, so
// SliceBetween(x, q, q) returns the contents of the first q...q pair.
// The result shares storage with haystack.
func SliceBetween[T comparable](haystack, open, close []T) ([]T, bool) {
	start, ok := Find(haystack, open)
	if !ok {
		return nil, false
	}
	rest := haystack[start+len(open):]

	end, ok := Find(rest, close)
	if !ok {
		return nil, false
	}
	return rest[:end], true
}

// FindString is Find over the bytes of two strings.
func FindString(haystack, needle string) (int, bool) {
	n := len(needle)
	for i := 0; i+n <= len(haystack); i++ {
		if haystack[i:i+n] == needle {
			return i, true
		}
	}
	return 0, false
}

// BetweenString is SliceBetween over strings. The result is a substring of
// haystack; no bytes are copied.
func BetweenString(haystack, open, close string) (string, bool) {
	start, ok := FindString(haystack, open)
	if !ok {
		return "", false
	}
	rest := haystack[start+len(open):]

	end, ok := FindString(rest, close)
	if !ok {
		return "", false
	}
	return rest[:end], true
}

// hasPrefix reports whether items begins with prefix.
func hasPrefix[T comparable](items, prefix []T) bool {
	return len(items) >= len(prefix) && windowEqual(items[:len(prefix)], prefix)
}

func windowEqual[T comparable](a, b []T) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
