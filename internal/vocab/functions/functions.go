// Package functions owns the stock pipeline stages attachable to vocab
// nodes.
//
// Ownership boundary:
// - byte-level encodings for display (hex, base64)
// - presentation-only visualization stages
// - semantic transformations used by generation
package functions

import (
	"encoding/base64"
	"encoding/hex"
	"errors"

	"github.com/fatih/color"
)

// HexEncoding re-encodes raw bytes as their lowercase hex form.
type HexEncoding struct{}

func (HexEncoding) Name() string { return "hex" }

func (HexEncoding) Encode(value []byte) ([]byte, error) {
	dst := make([]byte, hex.EncodedLen(len(value)))
	hex.Encode(dst, value)
	return dst, nil
}

// Base64Encoding re-encodes raw bytes in standard base64.
type Base64Encoding struct{}

func (Base64Encoding) Name() string { return "base64" }

func (Base64Encoding) Encode(value []byte) ([]byte, error) {
	dst := make([]byte, base64.StdEncoding.EncodedLen(len(value)))
	base64.StdEncoding.Encode(dst, value)
	return dst, nil
}

// Highlight wraps a value in ANSI color codes for terminal rendering.
// The underlying bytes stay embedded in the styled output.
type Highlight struct {
	c *color.Color
}

// NewHighlight builds a visualization stage from color attributes, e.g.
// color.FgCyan.
func NewHighlight(attrs ...color.Attribute) Highlight {
	return Highlight{c: color.New(attrs...)}
}

func (Highlight) Name() string { return "highlight" }

func (h Highlight) Style(value []byte) ([]byte, error) {
	return []byte(h.c.Sprint(string(value))), nil
}

// XORTransformation rewrites content by XOR-ing it with a repeating key.
type XORTransformation struct {
	Key []byte
}

func (XORTransformation) Name() string { return "xor" }

func (t XORTransformation) Transform(value []byte) ([]byte, error) {
	if len(t.Key) == 0 {
		return nil, errors.New("functions: xor key is empty")
	}
	out := make([]byte, len(value))
	for i, b := range value {
		out[i] = b ^ t.Key[i%len(t.Key)]
	}
	return out, nil
}

// ReverseTransformation rewrites content with its bytes in reverse
// order.
type ReverseTransformation struct{}

func (ReverseTransformation) Name() string { return "reverse" }

func (ReverseTransformation) Transform(value []byte) ([]byte, error) {
	out := make([]byte, len(value))
	for i, b := range value {
		out[len(value)-1-i] = b
	}
	return out, nil
}
