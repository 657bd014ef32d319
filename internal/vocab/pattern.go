package vocab

import (
	"bytes"
	"errors"
	"math/rand/v2"
)

var errContradictoryBounds = errors.New("contradictory size bounds")

// Pattern describes the range of byte values and lengths a field may
// take. It is either a fixed constant, or size bounds with an optional
// byte alphabet. Callers outside this package treat it as opaque beyond
// set/get, matching and generation.
type Pattern struct {
	fixed    []byte
	minSize  int
	maxSize  int
	alphabet []byte
}

// NewFixedPattern describes a field holding exactly value.
func NewFixedPattern(value []byte) *Pattern {
	fixed := make([]byte, len(value))
	copy(fixed, value)
	return &Pattern{fixed: fixed, minSize: len(value), maxSize: len(value)}
}

// NewSizePattern describes a field of min to max bytes with unconstrained
// content.
func NewSizePattern(min, max int) *Pattern {
	return &Pattern{minSize: min, maxSize: max}
}

// NewAlphabetPattern describes a field of min to max bytes drawn from
// alphabet.
func NewAlphabetPattern(min, max int, alphabet []byte) *Pattern {
	set := make([]byte, len(alphabet))
	copy(set, alphabet)
	return &Pattern{minSize: min, maxSize: max, alphabet: set}
}

// Fixed returns the constant value and true when the pattern admits
// exactly one value.
func (p *Pattern) Fixed() ([]byte, bool) {
	if p.fixed == nil {
		return nil, false
	}
	out := make([]byte, len(p.fixed))
	copy(out, p.fixed)
	return out, true
}

// SizeBounds returns the admissible value length range in bytes.
func (p *Pattern) SizeBounds() (min, max int) { return p.minSize, p.maxSize }

// FixedSize returns the single admissible length and true when the
// pattern admits exactly one length.
func (p *Pattern) FixedSize() (int, bool) {
	if p.minSize == p.maxSize {
		return p.minSize, true
	}
	return 0, false
}

// Match reports whether value is admissible under the pattern.
func (p *Pattern) Match(value []byte) bool {
	if p.fixed != nil {
		return bytes.Equal(p.fixed, value)
	}
	if len(value) < p.minSize || len(value) > p.maxSize {
		return false
	}
	if len(p.alphabet) == 0 {
		return true
	}
	for _, b := range value {
		if bytes.IndexByte(p.alphabet, b) < 0 {
			return false
		}
	}
	return true
}

// Generate draws one admissible value. A nil rnd uses the shared
// generator. Contradictory bounds yield an error.
func (p *Pattern) Generate(rnd *rand.Rand) ([]byte, error) {
	if p.fixed != nil {
		out := make([]byte, len(p.fixed))
		copy(out, p.fixed)
		return out, nil
	}
	if p.minSize < 0 || p.maxSize < p.minSize {
		return nil, errContradictoryBounds
	}
	size := p.minSize
	if p.maxSize > p.minSize {
		size += intN(rnd, p.maxSize-p.minSize+1)
	}
	out := make([]byte, size)
	for i := range out {
		if len(p.alphabet) > 0 {
			out[i] = p.alphabet[intN(rnd, len(p.alphabet))]
		} else {
			out[i] = byte(intN(rnd, 256))
		}
	}
	return out, nil
}

// Clone returns an independent copy, deep enough that mutating the
// original cannot alter it.
func (p *Pattern) Clone() *Pattern {
	if p == nil {
		return nil
	}
	out := &Pattern{minSize: p.minSize, maxSize: p.maxSize}
	if p.fixed != nil {
		out.fixed = make([]byte, len(p.fixed))
		copy(out.fixed, p.fixed)
	}
	if p.alphabet != nil {
		out.alphabet = make([]byte, len(p.alphabet))
		copy(out.alphabet, p.alphabet)
	}
	return out
}

func intN(rnd *rand.Rand, n int) int {
	if rnd != nil {
		return rnd.IntN(n)
	}
	return rand.IntN(n)
}
