package mutate

import (
	"bytes"
	"math/bits"
	"testing"

	"github.com/wiregram/wiregram/internal/vocab"
)

func TestBitFlipChangesExactlyOneBit(t *testing.T) {
	m := NewBitFlip()
	f := vocab.NewField("f", nil)
	in := []byte{0x00, 0x00}
	for i := 0; i < 16; i++ {
		out, err := m.Mutate(f, in)
		if err != nil {
			t.Fatalf("mutate: %v", err)
		}
		diff := 0
		for j := range in {
			diff += bits.OnesCount8(in[j] ^ out[j])
		}
		if diff != 1 {
			t.Fatalf("call %d: expected 1 flipped bit, got %d", i, diff)
		}
	}
}

func TestBitFlipCyclesPositions(t *testing.T) {
	m := NewBitFlip()
	f := vocab.NewField("f", nil)
	first, _ := m.Mutate(f, []byte{0x00})
	second, _ := m.Mutate(f, []byte{0x00})
	if bytes.Equal(first, second) {
		t.Fatalf("consecutive flips must target different bits")
	}
}

func TestBitFlipEmptyValue(t *testing.T) {
	m := NewBitFlip()
	out, err := m.Mutate(vocab.NewField("f", nil), nil)
	if err != nil || len(out) != 0 {
		t.Fatalf("empty value must pass through, got %v %v", out, err)
	}
}

func TestRandomBytesReproducible(t *testing.T) {
	f := vocab.NewField("f", nil)
	in := make([]byte, 32)
	a, err := NewRandomBytes(0.5, 7).Mutate(f, in)
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}
	b, err := NewRandomBytes(0.5, 7).Mutate(f, in)
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("same seed must reproduce the same mutation")
	}
	if len(a) != len(in) {
		t.Fatalf("mutation must preserve length")
	}
}

func TestRandomBytesLeavesInputIntact(t *testing.T) {
	f := vocab.NewField("f", nil)
	in := []byte{1, 2, 3, 4}
	saved := append([]byte(nil), in...)
	if _, err := NewRandomBytes(1, 3).Mutate(f, in); err != nil {
		t.Fatalf("mutate: %v", err)
	}
	if !bytes.Equal(in, saved) {
		t.Fatalf("input slice was mutated in place")
	}
}
