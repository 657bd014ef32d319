// Package vocab owns the field-tree model of a protocol vocabulary.
//
// Ownership boundary:
// - node identity and parent/child composition
// - per-field encoding/visualization/transformation pipelines
// - symbol resolution and memento snapshots
// - generation and cell-matrix query surfaces
package vocab
