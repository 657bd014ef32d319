// Package mutate owns mutation strategies for message generation.
//
// Ownership boundary:
// - vocab.Mutator implementations
// - per-strategy randomness plumbing
package mutate

import (
	"math/rand/v2"

	"github.com/wiregram/wiregram/internal/vocab"
)

// BitFlip flips one bit of every generated leaf value, cycling through
// bit positions. Deterministic for a given sequence of calls.
type BitFlip struct {
	next int
}

// NewBitFlip returns a fresh bit-flip strategy.
func NewBitFlip() *BitFlip { return &BitFlip{} }

func (*BitFlip) Name() string { return "bitflip" }

func (m *BitFlip) Mutate(field *vocab.Node, value []byte) ([]byte, error) {
	if len(value) == 0 {
		return value, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	bit := m.next % (len(out) * 8)
	out[bit/8] ^= 1 << (bit % 8)
	m.next++
	return out, nil
}

// RandomBytes overwrites a random subset of bytes with random values.
// Ratio is the fraction of bytes touched, clamped to (0,1].
type RandomBytes struct {
	Ratio float64
	rnd   *rand.Rand
}

// NewRandomBytes seeds a random-byte strategy. Reusing a seed reproduces
// a fuzzing run.
func NewRandomBytes(ratio float64, seed uint64) *RandomBytes {
	return &RandomBytes{Ratio: ratio, rnd: rand.New(rand.NewPCG(seed, seed))}
}

func (*RandomBytes) Name() string { return "randombytes" }

func (m *RandomBytes) Mutate(field *vocab.Node, value []byte) ([]byte, error) {
	if len(value) == 0 {
		return value, nil
	}
	ratio := m.Ratio
	if ratio <= 0 || ratio > 1 {
		ratio = 1
	}
	out := make([]byte, len(value))
	copy(out, value)
	touched := int(float64(len(out)) * ratio)
	if touched < 1 {
		touched = 1
	}
	for i := 0; i < touched; i++ {
		out[m.rnd.IntN(len(out))] = byte(m.rnd.IntN(256))
	}
	return out, nil
}
