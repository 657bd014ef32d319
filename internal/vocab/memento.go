package vocab

import "github.com/google/uuid"

// Memento is a node-local snapshot for undo/redo of structural edits.
// It captures enough state to roll one node back without reconstructing
// the tree: name, pattern, layer flag, description, pipeline contents
// and the child identity list. The copy is deep enough that mutating the
// live node afterwards cannot alter a stored memento.
type Memento struct {
	name           string
	description    string
	pattern        *Pattern
	layer          bool
	encoding       []EncodingFunction
	visualization  []VisualizationFunction
	transformation []TransformationFunction
	childIDs       []uuid.UUID
}

// ChildIDs returns the identities of the children at capture time, in
// order.
func (m Memento) ChildIDs() []uuid.UUID {
	out := make([]uuid.UUID, len(m.childIDs))
	copy(out, m.childIDs)
	return out
}

// StoreInMemento captures the node-local state before a structural edit.
func (n *Node) StoreInMemento() Memento {
	m := Memento{
		name:           n.name,
		description:    n.description,
		pattern:        n.pattern.Clone(),
		layer:          n.layer,
		encoding:       append([]EncodingFunction(nil), n.encodingFunctions...),
		visualization:  append([]VisualizationFunction(nil), n.visualizationFunctions...),
		transformation: append([]TransformationFunction(nil), n.transformationFunctions...),
	}
	m.childIDs = make([]uuid.UUID, 0, len(n.children))
	for _, c := range n.children {
		m.childIDs = append(m.childIDs, c.id)
	}
	return m
}

// RestoreFromMemento replaces the node's state with the snapshot's.
// Children are matched by identity against the node's current child set:
// survivors are reordered to the captured order, children missing from
// the snapshot are detached, and identities with no live node are
// skipped (an undo manager restores those separately).
func (n *Node) RestoreFromMemento(m Memento) {
	n.name = m.name
	n.description = m.description
	n.pattern = m.pattern.Clone()
	n.layer = m.layer
	n.encodingFunctions = append([]EncodingFunction(nil), m.encoding...)
	n.visualizationFunctions = append([]VisualizationFunction(nil), m.visualization...)
	n.transformationFunctions = append([]TransformationFunction(nil), m.transformation...)

	current := make(map[uuid.UUID]*Node, len(n.children))
	for _, c := range n.children {
		current[c.id] = c
	}
	restored := make([]*Node, 0, len(m.childIDs))
	for _, id := range m.childIDs {
		if c, ok := current[id]; ok {
			restored = append(restored, c)
			delete(current, id)
		}
	}
	for _, dropped := range current {
		dropped.parent = nil
	}
	n.children = restored
}
