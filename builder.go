package huffman

import (
	"cmp"
	"fmt"

	"github.com/chronos-tachyon/quadhuff/pqueue"
)

// BuildTree constructs the Huffman code tree for the given frequencies.
//
// The table is validated before any tree work starts: an empty table yields
// ErrEmptyInput and a bad symbol or probability yields ErrInvalidFrequency.
// A table with a single symbol yields a degenerate tree consisting of one
// leaf.
//
func BuildTree(freqs FrequencyTable) (*Tree, error) {
	if err := freqs.Validate(); err != nil {
		return nil, fmt.Errorf("huffman.BuildTree: %w", err)
	}

	// Step 1: one leaf per symbol, all in a single min-queue.

	q := pqueue.New[Node](compareNodes)
	for _, sym := range freqs.Symbols() {
		q.Insert(NewLeaf(sym, freqs[sym]))
	}

	// Step 2: pop the two lightest subtrees, join them under a new
	// internal node, and push that node back.  The first one popped
	// becomes the left child.

	for q.Len() > 1 {
		a, _ := q.DeleteMin()
		b, _ := q.DeleteMin()
		q.Insert(NewInternal(a, b))
	}

	root, _ := q.DeleteMin()
	return &Tree{root: root, leaves: len(freqs)}, nil
}

// compareNodes orders nodes by weight, then by the smallest symbol they
// contain.  Distinct subtrees never share a symbol, so no two nodes in the
// queue compare equal.
func compareNodes(a, b Node) int {
	if c := cmp.Compare(a.Weight(), b.Weight()); c != 0 {
		return c
	}
	return cmp.Compare(a.lowest(), b.lowest())
}
