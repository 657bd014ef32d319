// Package align owns the reference alignment engine for vocab trees.
//
// Ownership boundary:
// - leaf layout planning from field patterns
// - per-message byte slicing into cell rows
//
// It handles layouts made of fixed-size leaves plus at most one
// variable-size leaf, which the variable leaf absorbing the remainder of
// each message.
package align

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/wiregram/wiregram/internal/vocab"
)

// Engine is a stateless vocab.Aligner over fixed-layout trees.
type Engine struct{}

// New returns the reference engine.
func New() *Engine { return &Engine{} }

// Align slices every message along the leaf layout of field's tree and
// returns the columns belonging to field's own leaves: one row per
// message, one column per leaf descendant.
func (e *Engine) Align(field *vocab.Node, messages [][]byte) ([][][]byte, error) {
	root := field
	for root.HasParent() {
		root = root.Parent()
	}
	leaves := root.Leaves()
	want := field.Leaves()

	start := -1
	for i, leaf := range leaves {
		if leaf == want[0] {
			start = i
			break
		}
	}
	if start < 0 || start+len(want) > len(leaves) {
		return nil, vocab.AlignmentError{Field: field.Name(), Reason: "field is not part of its own tree layout"}
	}

	sizes := make([]int, len(leaves))
	fixedTotal := 0
	variable := -1
	for i, leaf := range leaves {
		size, ok := fixedLeafSize(leaf)
		if !ok {
			if variable >= 0 {
				return nil, vocab.AlignmentError{Field: field.Name(), Reason: "layout has more than one variable-size field"}
			}
			variable = i
			sizes[i] = -1
			continue
		}
		sizes[i] = size
		fixedTotal += size
	}

	log.Debug().
		Str("field", field.Name()).
		Int("leaves", len(leaves)).
		Int("messages", len(messages)).
		Int("fixed_total", fixedTotal).
		Msg("align plan")

	rows := make([][][]byte, 0, len(messages))
	for mi, msg := range messages {
		rem := len(msg) - fixedTotal
		if rem < 0 {
			return nil, vocab.AlignmentError{
				Field:  field.Name(),
				Reason: fmt.Sprintf("message %d is %d bytes, layout needs at least %d", mi, len(msg), fixedTotal),
			}
		}
		if variable < 0 && rem != 0 {
			return nil, vocab.AlignmentError{
				Field:  field.Name(),
				Reason: fmt.Sprintf("message %d is %d bytes, fixed layout is %d", mi, len(msg), fixedTotal),
			}
		}
		if variable >= 0 {
			if p := leaves[variable].Pattern(); p != nil {
				min, max := p.SizeBounds()
				if rem < min || rem > max {
					return nil, vocab.AlignmentError{
						Field:  field.Name(),
						Reason: fmt.Sprintf("message %d leaves %d bytes for %q, admissible range is %d..%d", mi, rem, leaves[variable].Name(), min, max),
					}
				}
			}
		}

		row := make([][]byte, len(leaves))
		offset := 0
		for i := range leaves {
			size := sizes[i]
			if size < 0 {
				size = rem
			}
			cell := make([]byte, size)
			copy(cell, msg[offset:offset+size])
			row[i] = cell
			offset += size
		}
		rows = append(rows, row[start:start+len(want)])
	}
	return rows, nil
}

// fixedLeafSize reports the single admissible byte length of a leaf, if
// it has one. A leaf with no pattern is variable.
func fixedLeafSize(leaf *vocab.Node) (int, bool) {
	p := leaf.Pattern()
	if p == nil {
		return 0, false
	}
	return p.FixedSize()
}
