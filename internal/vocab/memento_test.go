package vocab

import (
	"testing"
)

func TestMementoRestoresName(t *testing.T) {
	f := NewField("A", nil)
	snapshot := f.StoreInMemento()
	f.SetName("B")
	f.RestoreFromMemento(snapshot)
	if f.Name() != "A" {
		t.Fatalf("expected A, got %q", f.Name())
	}
}

func TestMementoRestoresNodeLocalState(t *testing.T) {
	f := NewField("f", NewFixedPattern([]byte{0x01}))
	f.SetDescription("before")
	f.SetEncodingFunctions([]EncodingFunction{hexStage{}})
	snapshot := f.StoreInMemento()

	f.SetDescription("after")
	f.SetPattern(nil)
	f.ClearEncodingFunctions()

	f.RestoreFromMemento(snapshot)
	if f.Description() != "before" {
		t.Fatalf("description not restored")
	}
	if f.Pattern() == nil || !f.Pattern().Match([]byte{0x01}) {
		t.Fatalf("pattern not restored")
	}
	if len(f.EncodingFunctions()) != 1 {
		t.Fatalf("encoding pipeline not restored")
	}
}

func TestMementoIsolatedFromLaterMutation(t *testing.T) {
	f := NewField("keep", nil)
	f.SetEncodingFunctions([]EncodingFunction{hexStage{}})
	snapshot := f.StoreInMemento()

	// Mutate the live node heavily; the snapshot must not move.
	f.SetName("mutated")
	f.SetEncodingFunctions([]EncodingFunction{hexStage{}, upperStage{}})

	f.RestoreFromMemento(snapshot)
	if f.Name() != "keep" {
		t.Fatalf("snapshot altered by live mutation")
	}
	if len(f.EncodingFunctions()) != 1 {
		t.Fatalf("snapshot pipeline altered by live mutation")
	}
}

func TestMementoRestoresChildOrderAndDropsAdditions(t *testing.T) {
	p := NewSymbol("p")
	a := NewField("a", nil)
	b := NewField("b", nil)
	if err := p.SetChildren([]*Node{a, b}); err != nil {
		t.Fatalf("set children: %v", err)
	}
	snapshot := p.StoreInMemento()

	added := NewField("added", nil)
	if err := p.SetChildren([]*Node{added, b, a}); err != nil {
		t.Fatalf("reorder children: %v", err)
	}

	p.RestoreFromMemento(snapshot)
	kids := p.Children()
	if len(kids) != 2 || kids[0] != a || kids[1] != b {
		t.Fatalf("child identity order not restored")
	}
	if added.HasParent() {
		t.Fatalf("post-snapshot child keeps a dangling parent")
	}
}

func TestMementoSkipsMissingChildren(t *testing.T) {
	p := NewSymbol("p")
	a := NewField("a", nil)
	b := NewField("b", nil)
	if err := p.SetChildren([]*Node{a, b}); err != nil {
		t.Fatalf("set children: %v", err)
	}
	snapshot := p.StoreInMemento()
	if err := p.RemoveChild(a); err != nil {
		t.Fatalf("remove: %v", err)
	}

	p.RestoreFromMemento(snapshot)
	kids := p.Children()
	if len(kids) != 1 || kids[0] != b {
		t.Fatalf("expected only the surviving child")
	}
	if got := snapshot.ChildIDs(); len(got) != 2 {
		t.Fatalf("snapshot identity list must keep both entries")
	}
}
