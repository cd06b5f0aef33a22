package seq

import (
	"bytes"

	"golang.org/x/text/transform"
)

// RemoveTransformer is a transform.Transformer that removes every leftmost,
// non-overlapping occurrence of a byte pattern from a stream.
//
// Its output is identical to draining a Remover over the whole input,
// regardless of how the input is split into chunks. When a chunk ends with
// a proper prefix of the pattern, the transformer hands those bytes back
// with transform.ErrShortSrc until more input (or EOF) decides the match.
// Patterns longer than the reader's internal buffer cannot be matched
// across a boundary and make the stream fail with that error.
type RemoveTransformer struct {
	transform.NopResetter
	pattern []byte
}

// NewRemoveTransformer creates a transformer that removes pattern.
// Returns ErrEmptyPattern if pattern is empty.
func NewRemoveTransformer(pattern []byte) (*RemoveTransformer, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	return &RemoveTransformer{pattern: pattern}, nil
}

// Transform implements transform.Transformer.
func (t *RemoveTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		rest := src[nSrc:]

		if bytes.HasPrefix(rest, t.pattern) {
			nSrc += len(t.pattern)
			continue
		}
		if !atEOF && len(rest) < len(t.pattern) && bytes.HasPrefix(t.pattern, rest) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}

		dst[nDst] = rest[0]
		nDst++
		nSrc++
	}
	return nDst, nSrc, nil
}
