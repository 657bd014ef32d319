// Package undo owns the undo/redo manager over vocab mementos.
//
// Ownership boundary:
// - checkpoint stack before structural edits
// - rollback/replay of node-local snapshots
//
// One manager serves one tree edit session at a time; callers serialize
// edits externally.
package undo

import (
	"errors"

	"github.com/wiregram/wiregram/internal/vocab"
)

var (
	ErrNothingToUndo = errors.New("undo: nothing to undo")
	ErrNothingToRedo = errors.New("undo: nothing to redo")
)

type entry struct {
	node     *vocab.Node
	snapshot vocab.Memento
}

// Manager checkpoints nodes before edits and rolls them back in LIFO
// order.
type Manager struct {
	undo []entry
	redo []entry
}

// New returns an empty manager.
func New() *Manager { return &Manager{} }

// Checkpoint captures n before an edit. Any pending redo history is
// discarded, as the new edit forks the timeline.
func (m *Manager) Checkpoint(n *vocab.Node) {
	m.undo = append(m.undo, entry{node: n, snapshot: n.StoreInMemento()})
	m.redo = nil
}

// Undo rolls the most recent checkpointed node back to its snapshot and
// pushes the node's pre-undo state onto the redo stack.
func (m *Manager) Undo() error {
	if len(m.undo) == 0 {
		return ErrNothingToUndo
	}
	e := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	m.redo = append(m.redo, entry{node: e.node, snapshot: e.node.StoreInMemento()})
	e.node.RestoreFromMemento(e.snapshot)
	return nil
}

// Redo re-applies the most recently undone edit.
func (m *Manager) Redo() error {
	if len(m.redo) == 0 {
		return ErrNothingToRedo
	}
	e := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	m.undo = append(m.undo, entry{node: e.node, snapshot: e.node.StoreInMemento()})
	e.node.RestoreFromMemento(e.snapshot)
	return nil
}

// Depth returns the number of pending undo entries.
func (m *Manager) Depth() int { return len(m.undo) }
