package vocab

import (
	"bytes"
	"errors"
)

// Aligner computes, for a field and a set of captured messages, the
// matrix of per-field byte slices: one row per message, one column per
// leaf descendant of the field. Alignment itself is an external concern;
// this package only consumes its output.
type Aligner interface {
	Align(field *Node, messages [][]byte) ([][][]byte, error)
}

// SetAligner attaches the alignment engine used by Cells and Values.
// Only a symbol node accepts one; the engine is explicit configuration,
// not ambient state.
func (n *Node) SetAligner(a Aligner) error {
	if n.kind != KindSymbol {
		return ValidationError{Property: "aligner", Reason: "only a symbol carries an aligner"}
	}
	n.aligner = a
	return nil
}

// Aligner returns the attached alignment engine, or nil.
func (n *Node) Aligner() Aligner { return n.aligner }

// Messages returns the captured messages attached to this symbol.
func (n *Node) Messages() [][]byte { return n.messages }

// SetMessages replaces the attached message set. Only a symbol node
// carries messages.
func (n *Node) SetMessages(messages [][]byte) error {
	if n.kind != KindSymbol {
		return ValidationError{Property: "messages", Reason: "only a symbol carries messages"}
	}
	n.messages = messages
	return nil
}

// AppendMessage attaches one captured message to this symbol.
func (n *Node) AppendMessage(message []byte) error {
	if n.kind != KindSymbol {
		return ValidationError{Property: "messages", Reason: "only a symbol carries messages"}
	}
	n.messages = append(n.messages, message)
	return nil
}

// Cells returns the cell matrix for this field over the owning symbol's
// message set: one row per message, one column per leaf descendant. Each
// cell is the message's byte slice for that leaf, passed through the
// leaf's encoding pipeline when encoded is set and its visualization
// pipeline when styled is set. With transposed set, rows are leaves and
// columns are messages.
func (n *Node) Cells(encoded, styled, transposed bool) ([][][]byte, error) {
	rows, err := n.rawCells()
	if err != nil {
		return nil, err
	}
	if encoded || styled {
		leaves := n.Leaves()
		for _, row := range rows {
			for col, cell := range row {
				out := cell
				if encoded {
					out, err = applyEncodings(leaves[col].encodingFunctions, out)
					if err != nil {
						return nil, err
					}
				}
				if styled {
					out, err = applyVisualizations(leaves[col].visualizationFunctions, out)
					if err != nil {
						return nil, err
					}
				}
				row[col] = out
			}
		}
	}
	if transposed {
		rows = transpose(rows)
	}
	return rows, nil
}

// Values returns every distinct byte-level value this field has taken
// across the attached message set, in first-seen order. The field's own
// encoding pipeline applies when encoded is set, then its visualization
// pipeline when styled is set. Empty when no message data is attached.
func (n *Node) Values(encoded, styled bool) ([][]byte, error) {
	rows, err := n.rawCells()
	if err != nil {
		return nil, err
	}
	values := make([][]byte, 0, len(rows))
	for _, row := range rows {
		value := bytes.Join(row, nil)
		if containsValue(values, value) {
			continue
		}
		values = append(values, value)
	}
	for i, value := range values {
		out := value
		if encoded {
			out, err = applyEncodings(n.encodingFunctions, out)
			if err != nil {
				return nil, err
			}
		}
		if styled {
			out, err = applyVisualizations(n.visualizationFunctions, out)
			if err != nil {
				return nil, err
			}
		}
		values[i] = out
	}
	return values, nil
}

// rawCells resolves the owning symbol and delegates slice computation to
// its aligner. NoSymbol failures propagate unmodified.
func (n *Node) rawCells() ([][][]byte, error) {
	sym, err := n.Symbol()
	if err != nil {
		return nil, err
	}
	if len(sym.messages) == 0 {
		return [][][]byte{}, nil
	}
	if sym.aligner == nil {
		return nil, AlignmentError{Field: n.name, Reason: "no aligner configured on symbol"}
	}
	rows, err := sym.aligner.Align(n, sym.messages)
	if err != nil {
		var alignErr AlignmentError
		if errors.As(err, &alignErr) {
			return nil, err
		}
		return nil, AlignmentError{Field: n.name, Reason: "alignment failed", Err: err}
	}
	return rows, nil
}

func transpose(rows [][][]byte) [][][]byte {
	if len(rows) == 0 {
		return rows
	}
	cols := len(rows[0])
	out := make([][][]byte, cols)
	for c := 0; c < cols; c++ {
		out[c] = make([][]byte, len(rows))
		for r := range rows {
			out[c][r] = rows[r][c]
		}
	}
	return out
}

func containsValue(values [][]byte, value []byte) bool {
	for _, v := range values {
		if bytes.Equal(v, value) {
			return true
		}
	}
	return false
}
