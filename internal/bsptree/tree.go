package bsptree

import "github.com/mrasmith/dungeonforge/internal/geom"

// NilIndex marks an absent child or room reference in a Node.
const NilIndex = -1

// Node is one entry in a Tree arena: its bounds, and indices (not
// pointers) to its two children and to its room. A node is a leaf iff
// First == NilIndex. A leaf is empty iff both First and Second are
// NilIndex; otherwise Second indexes the rooms array.
type Node struct {
	Bounds        geom.Rect
	First, Second int
}

// IsLeaf reports whether the node has no children.
func (n Node) IsLeaf() bool { return n.First == NilIndex }

// HasRoom reports whether a leaf node owns a room.
func (n Node) HasRoom() bool { return n.IsLeaf() && n.Second != NilIndex }

// Tree is a contiguous arena of nodes. Index 0 is always the root,
// covering the full map; indices are stable for the tree's lifetime.
type Tree struct {
	Nodes []Node
}

// NewTree builds a tree with a single root node covering bounds.
func NewTree(bounds geom.Rect) *Tree {
	return &Tree{Nodes: []Node{{Bounds: bounds, First: NilIndex, Second: NilIndex}}}
}

// Reset clears the tree back to a single root covering bounds, for reuse
// across generation runs.
func (t *Tree) Reset(bounds geom.Rect) {
	t.Nodes = t.Nodes[:0]
	t.Nodes = append(t.Nodes, Node{Bounds: bounds, First: NilIndex, Second: NilIndex})
}

// AppendChildren appends first and second as new leaf nodes and wires
// them as parent's children, returning their indices.
func (t *Tree) AppendChildren(parent int, first, second geom.Rect) (firstIdx, secondIdx int) {
	firstIdx = len(t.Nodes)
	t.Nodes = append(t.Nodes, Node{Bounds: first, First: NilIndex, Second: NilIndex})
	secondIdx = len(t.Nodes)
	t.Nodes = append(t.Nodes, Node{Bounds: second, First: NilIndex, Second: NilIndex})

	p := t.Nodes[parent]
	p.First = firstIdx
	p.Second = secondIdx
	t.Nodes[parent] = p
	return firstIdx, secondIdx
}

// SetRoom records roomIdx as the room owned by the leaf at index i. i
// must currently be a leaf with no children.
func (t *Tree) SetRoom(i, roomIdx int) {
	n := t.Nodes[i]
	n.Second = roomIdx
	t.Nodes[i] = n
}

// Leaves returns the indices of every leaf node in the tree, in arena
// order (which is breadth-first, since the build sweep in
// dungeon.Generator.Generate appends children as it visits each node).
func (t *Tree) Leaves() []int {
	var out []int
	for i, n := range t.Nodes {
		if n.IsLeaf() {
			out = append(out, i)
		}
	}
	return out
}
