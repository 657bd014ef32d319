package vocab

import (
	"strings"

	"github.com/google/uuid"
)

// Kind tags the role a node plays in a vocabulary tree.
type Kind uint8

const (
	// KindField is a leaf or plain branch of a message format.
	KindField Kind = iota
	// KindLayer is a pure grouping node whose byte contribution is the
	// concatenation of its children.
	KindLayer
	// KindSymbol is the distinguished tree root carrying message data.
	KindSymbol
)

func (k Kind) String() string {
	switch k {
	case KindField:
		return "field"
	case KindLayer:
		return "layer"
	case KindSymbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// Node is one element of a message-format tree. Children are ordered;
// their order defines the byte concatenation order of composite fields.
// The parent link is a non-owning back-reference maintained only by the
// structural-edit operations of this package.
type Node struct {
	id          uuid.UUID
	name        string
	description string
	pattern     *Pattern
	layer       bool
	kind        Kind

	parent   *Node
	children []*Node

	encodingFunctions       []EncodingFunction
	visualizationFunctions  []VisualizationFunction
	transformationFunctions []TransformationFunction

	// symbol-only state
	aligner  Aligner
	messages [][]byte
}

func newNode(kind Kind, name string) *Node {
	return &Node{
		id:    uuid.New(),
		name:  name,
		kind:  kind,
		layer: kind == KindLayer,
	}
}

// NewSymbol creates a tree root. Message data and the alignment engine
// attach here.
func NewSymbol(name string) *Node {
	return newNode(KindSymbol, name)
}

// NewField creates a field node. A nil pattern means the field's size and
// content are still undetermined.
func NewField(name string, pattern *Pattern) *Node {
	n := newNode(KindField, name)
	n.pattern = pattern
	return n
}

// NewLayer creates a grouping node with no byte contribution of its own.
func NewLayer(name string) *Node {
	return newNode(KindLayer, name)
}

// ID returns the process-unique identifier assigned at construction.
func (n *Node) ID() uuid.UUID { return n.id }

// SetID replaces the node identifier. The nil UUID is rejected; an
// identifier is mandatory for the node's whole lifetime.
func (n *Node) SetID(id uuid.UUID) error {
	if id == uuid.Nil {
		return ValidationError{Property: "id", Reason: "id is mandatory"}
	}
	n.id = id
	return nil
}

// Kind returns the variant tag of this node.
func (n *Node) Kind() Kind { return n.kind }

// Name returns the display label, possibly empty and not unique.
func (n *Node) Name() string { return n.name }

func (n *Node) SetName(name string) { n.name = name }

// Description returns the free-form description, empty by default.
func (n *Node) Description() string { return n.description }

func (n *Node) SetDescription(description string) { n.description = description }

// Pattern returns the size/content descriptor, or nil when undetermined.
func (n *Node) Pattern() *Pattern { return n.pattern }

func (n *Node) SetPattern(p *Pattern) { n.pattern = p }

// IsLayer reports whether this node is a pure grouping node.
func (n *Node) IsLayer() bool { return n.layer }

// SetLayer sets the grouping flag. A layer-kind node cannot unset it.
func (n *Node) SetLayer(layer bool) error {
	if n.kind == KindLayer && !layer {
		return ValidationError{Property: "layer", Reason: "layer node cannot unset its layer flag"}
	}
	n.layer = layer
	return nil
}

// HasParent reports whether this node is attached below another node.
func (n *Node) HasParent() bool { return n.parent != nil }

// Parent returns the containing node, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// SetParent rewires only the back-reference. It does not fix up the
// previous parent's children; that belongs to the structural-edit
// operation performing the move. Prefer AppendChild or SetChildren.
func (n *Node) SetParent(parent *Node) { n.parent = parent }

// Children returns the live ordered child sequence.
func (n *Node) Children() []*Node { return n.children }

// SetChildren replaces the full child sequence. The previous children are
// detached first, then every incoming child is re-parented to this node,
// leaving no dual-parent state behind. The whole edit is validated before
// any side takes effect.
func (n *Node) SetChildren(children []*Node) error {
	for _, c := range children {
		if err := n.validateChild(c); err != nil {
			return err
		}
	}
	n.ClearChildren()
	for _, c := range children {
		n.attach(c)
	}
	return nil
}

// AppendChild detaches c from any previous parent and appends it to this
// node's child sequence. Both sides of the relation change in one edit.
func (n *Node) AppendChild(c *Node) error {
	if err := n.validateChild(c); err != nil {
		return err
	}
	n.attach(c)
	return nil
}

// RemoveChild detaches c from this node and clears its parent link.
func (n *Node) RemoveChild(c *Node) error {
	for i, child := range n.children {
		if child == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return nil
		}
	}
	return ValidationError{Property: "children", Reason: "node is not a child of this node"}
}

// ClearChildren detaches every child. Idempotent on an empty sequence.
func (n *Node) ClearChildren() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}

func (n *Node) validateChild(c *Node) error {
	if c == nil {
		return ValidationError{Property: "children", Reason: "child is nil"}
	}
	if c == n {
		return ValidationError{Property: "children", Reason: "node cannot be its own child"}
	}
	// Keeps the parent chain acyclic; Symbol relies on it to terminate.
	for p := n.parent; p != nil; p = p.parent {
		if p == c {
			return ValidationError{Property: "children", Reason: "child is an ancestor of this node"}
		}
	}
	return nil
}

func (n *Node) attach(c *Node) {
	if c.parent != nil {
		for i, sibling := range c.parent.children {
			if sibling == c {
				c.parent.children = append(c.parent.children[:i], c.parent.children[i+1:]...)
				break
			}
		}
	}
	c.parent = n
	n.children = append(n.children, c)
}

// Symbol resolves the owning root by walking the parent chain. It fails
// with ErrNoSymbol when the root is not a symbol node.
func (n *Node) Symbol() (*Node, error) {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.parent == nil {
			if cur.kind != KindSymbol {
				return nil, ErrNoSymbol
			}
			return cur, nil
		}
	}
	return nil, ErrNoSymbol
}

// Leaves returns the leaf descendants of this node in definition order.
// A childless node is its own single leaf.
func (n *Node) Leaves() []*Node {
	if len(n.children) == 0 {
		return []*Node{n}
	}
	leaves := make([]*Node, 0, len(n.children))
	for _, c := range n.children {
		leaves = append(leaves, c.Leaves()...)
	}
	return leaves
}

// String identifies the node for logs: kind, name and the canonical
// textual UUID form of its id.
func (n *Node) String() string {
	var b strings.Builder
	b.WriteString(n.kind.String())
	if n.name != "" {
		b.WriteString(" ")
		b.WriteString(n.name)
	}
	b.WriteString(" (")
	b.WriteString(n.id.String())
	b.WriteString(")")
	return b.String()
}
