package huffman

import (
	"fmt"
)

// SymbolEncoder is anything that can map a symbol to a code.  *CodeTable is
// the usual implementation.
type SymbolEncoder interface {
	Encode(symbol Symbol) (Code, bool)
}

var _ SymbolEncoder = (*CodeTable)(nil)

// AppendEncoded appends the textual bit-string for text to dst and returns
// the extended slice.  It fails with ErrUnknownSymbol on the first rune that
// enc cannot encode; dst is returned unchanged in that case.
func AppendEncoded(dst []byte, enc SymbolEncoder, text string) ([]byte, error) {
	n := len(dst)
	for _, r := range text {
		hc, found := enc.Encode(Symbol(r))
		if !found {
			return dst[:n], fmt.Errorf("%w: %s", ErrUnknownSymbol, Symbol(r))
		}
		dst = append(dst, hc...)
	}
	return dst, nil
}

// CountBits returns the number of bits needed to encode text with enc.
func CountBits(enc SymbolEncoder, text string) (int, error) {
	var total int
	for _, r := range text {
		hc, found := enc.Encode(Symbol(r))
		if !found {
			return 0, fmt.Errorf("%w: %s", ErrUnknownSymbol, Symbol(r))
		}
		total += hc.Len()
	}
	return total, nil
}
