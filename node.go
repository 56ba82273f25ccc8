package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a code tree: either a *Leaf or an *Internal.  Nodes are
// immutable once constructed.
type Node interface {
	// Weight returns the probability mass under this node.
	Weight() float64

	// lowest returns the smallest symbol under this node.
	lowest() Symbol
}

// Leaf is a node carrying a symbol.  It has no children.
type Leaf struct {
	symbol Symbol
	weight float64
}

// NewLeaf constructs a Leaf.
func NewLeaf(symbol Symbol, weight float64) *Leaf {
	return &Leaf{symbol: symbol, weight: weight}
}

// Symbol returns the symbol this leaf stands for.
func (l *Leaf) Symbol() Symbol {
	return l.symbol
}

func (l *Leaf) Weight() float64 {
	return l.weight
}

func (l *Leaf) lowest() Symbol {
	return l.symbol
}

// Internal is a node with exactly two children and no symbol.  Its weight is
// the sum of its children's weights.
type Internal struct {
	left   Node
	right  Node
	weight float64
	low    Symbol
}

// NewInternal constructs an Internal node which takes ownership of left and
// right.
func NewInternal(left, right Node) *Internal {
	assert.Assertf(left != nil && right != nil, "huffman.NewInternal: nil child")
	return &Internal{
		left:   left,
		right:  right,
		weight: left.Weight() + right.Weight(),
		low:    min(left.lowest(), right.lowest()),
	}
}

// Left returns the left child.
func (n *Internal) Left() Node {
	return n.left
}

// Right returns the right child.
func (n *Internal) Right() Node {
	return n.right
}

func (n *Internal) Weight() float64 {
	return n.weight
}

func (n *Internal) lowest() Symbol {
	return n.low
}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// Tree is a complete code tree, as produced by BuildTree.
type Tree struct {
	root   Node
	leaves int
}

// Root returns the root node.
func (t *Tree) Root() Node {
	return t.root
}

// Leaves returns the number of leaves, i.e. the number of symbols.
func (t *Tree) Leaves() int {
	return t.leaves
}

// Weight returns the weight of the root.
func (t *Tree) Weight() float64 {
	return t.root.Weight()
}

// Degenerate reports whether the tree is a single leaf.  This happens for a
// one-symbol alphabet; see DegenerateCode.
func (t *Tree) Degenerate() bool {
	_, ok := t.root.(*Leaf)
	return ok
}

// Walk calls fn for every node in pre-order, left before right.  The root
// has depth 0.
func (t *Tree) Walk(fn func(n Node, depth int)) {
	walk(t.root, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int)) {
	fn(n, depth)
	if in, ok := n.(*Internal); ok {
		walk(in.left, depth+1, fn)
		walk(in.right, depth+1, fn)
	}
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, one node per line, indented by depth.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	t.Walk(func(n Node, depth int) {
		indent := strings.Repeat("  ", depth)
		switch n := n.(type) {
		case *Leaf:
			fmt.Fprintf(&buf, "\t%sLeaf(%s, %g)\n", indent, n.symbol, n.weight)
		case *Internal:
			fmt.Fprintf(&buf, "\t%sInternal(%g)\n", indent, n.weight)
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
