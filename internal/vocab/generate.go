package vocab

// Mutator influences the value chosen for a leaf field during
// generation, e.g. to fuzz a message. The returned value may fall
// outside the field's pattern on purpose.
type Mutator interface {
	Name() string
	Mutate(field *Node, value []byte) ([]byte, error)
}

// Generate produces byte content consistent with this node's pattern and
// children. Composite nodes concatenate their children in order; leaf
// fields draw a value from their pattern. A non-nil mutator is applied
// to every leaf value. The node's transformation pipeline runs on the
// assembled content last.
func (n *Node) Generate(mutator Mutator) ([]byte, error) {
	var value []byte
	if len(n.children) > 0 {
		for _, c := range n.children {
			part, err := c.Generate(mutator)
			if err != nil {
				return nil, err
			}
			value = append(value, part...)
		}
	} else {
		if n.kind != KindField {
			return nil, GenerationError{Field: n.name, Reason: "composite node has no children"}
		}
		if n.pattern == nil {
			return nil, GenerationError{Field: n.name, Reason: "field has no pattern"}
		}
		leaf, err := n.pattern.Generate(nil)
		if err != nil {
			return nil, GenerationError{Field: n.name, Reason: "pattern admits no value", Err: err}
		}
		if mutator != nil {
			leaf, err = mutator.Mutate(n, leaf)
			if err != nil {
				return nil, GenerationError{Field: n.name, Reason: "mutator " + mutator.Name() + " failed", Err: err}
			}
		}
		value = leaf
	}
	out, err := applyTransformations(n.transformationFunctions, value)
	if err != nil {
		return nil, err
	}
	return out, nil
}
