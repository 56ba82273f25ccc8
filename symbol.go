package huffman

import (
	"fmt"
	"strconv"
	"unicode"
)

// Symbol represents a symbol in the input alphabet: one Unicode code point.
// Negative symbols are not valid.
type Symbol rune

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(unicode.MaxRune)

// IsValid reports whether the symbol lies in [0, MaxSymbol].
func (s Symbol) IsValid() bool {
	return s >= 0 && s <= MaxSymbol
}

// String returns the symbol as a quoted Go rune literal.
func (s Symbol) String() string {
	return strconv.QuoteRune(rune(s))
}

var _ fmt.Stringer = Symbol(0)
