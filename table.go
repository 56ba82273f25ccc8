package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"golang.org/x/exp/maps"
)

// CodeTable maps symbols to codes.
type CodeTable struct {
	codes   map[Symbol]Code
	minSize int
	maxSize int
}

// ExtractCodes walks the tree and assigns every leaf the path leading to it:
// LeftBit for each left branch and RightBit for each right branch.  A
// degenerate one-leaf tree assigns DegenerateCode to its only symbol.
//
func ExtractCodes(t *Tree) *CodeTable {
	assert.Assertf(t != nil && t.root != nil, "huffman.ExtractCodes: tree is nil")

	codes := make(map[Symbol]Code, t.leaves)
	if leaf, ok := t.root.(*Leaf); ok {
		codes[leaf.symbol] = DegenerateCode
	} else {
		extract(codes, t.root, "")
	}
	return NewCodeTable(codes)
}

// extract records the code of every leaf under n, where path is the code
// of n itself.
func extract(codes map[Symbol]Code, n Node, path Code) {
	switch n := n.(type) {
	case *Leaf:
		codes[n.symbol] = path
	case *Internal:
		extract(codes, n.left, path.Append(LeftBit))
		extract(codes, n.right, path.Append(RightBit))
	}
}

// NewCodeTable constructs a CodeTable from an explicit mapping.  The map is
// copied.  No validation is performed; see Validate.
func NewCodeTable(codes map[Symbol]Code) *CodeTable {
	ct := &CodeTable{codes: maps.Clone(codes)}
	if ct.codes == nil {
		ct.codes = make(map[Symbol]Code)
	}
	first := true
	for _, hc := range ct.codes {
		size := hc.Len()
		if first {
			first = false
			ct.minSize = size
			ct.maxSize = size
		} else if ct.minSize > size {
			ct.minSize = size
		} else if ct.maxSize < size {
			ct.maxSize = size
		}
	}
	return ct
}

// Encode returns the code for symbol.  The boolean is false if the table has
// no code for it.
func (ct *CodeTable) Encode(symbol Symbol) (Code, bool) {
	hc, found := ct.codes[symbol]
	return hc, found
}

// Len returns the number of symbols in the table.
func (ct *CodeTable) Len() int {
	return len(ct.codes)
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable) MinSize() int {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable) MaxSize() int {
	return ct.maxSize
}

// Symbols returns the symbols of the table in ascending order.
func (ct *CodeTable) Symbols() []Symbol {
	return sortedKeys(ct.codes)
}

// SizeBySymbol returns the bit length of each symbol's code.
func (ct *CodeTable) SizeBySymbol() map[Symbol]int {
	out := make(map[Symbol]int, len(ct.codes))
	for symbol, hc := range ct.codes {
		out[symbol] = hc.Len()
	}
	return out
}

// Map returns a copy of the symbol to code mapping.
func (ct *CodeTable) Map() map[Symbol]Code {
	return maps.Clone(ct.codes)
}

// Dump writes a programmer-readable debugging dump of the CodeTable's
// current state to the given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, symbol := range ct.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", symbol, ct.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
