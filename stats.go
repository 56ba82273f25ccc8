package huffman

import (
	"fmt"
	"math"
)

// Stats summarizes how well a code fits a frequency distribution.  Lengths
// are in bits per symbol.
type Stats struct {
	// Symbols is the number of distinct symbols.
	Symbols int `json:"symbols"`

	// ExpectedLength is the sum over all symbols of probability times
	// code length.
	ExpectedLength float64 `json:"expected_length"`

	// Entropy is the Shannon entropy of the distribution, the lower bound
	// on ExpectedLength for any prefix code.
	Entropy float64 `json:"entropy"`

	// FixedWidth is the length of a fixed-width code for the same
	// symbols.
	FixedWidth int `json:"fixed_width"`

	// Efficiency is Entropy / ExpectedLength.
	Efficiency float64 `json:"efficiency"`
}

// ComputeStats measures enc against freqs.  Every symbol of freqs must have
// a code.
func ComputeStats(freqs FrequencyTable, enc SymbolEncoder) (Stats, error) {
	st := Stats{
		Symbols:    len(freqs),
		FixedWidth: FixedWidth(len(freqs)),
	}
	for _, symbol := range freqs.Symbols() {
		p := freqs[symbol]
		hc, found := enc.Encode(symbol)
		if !found {
			return Stats{}, fmt.Errorf("%w: %s", ErrUnknownSymbol, symbol)
		}
		st.ExpectedLength += p * float64(hc.Len())
		if p > 0 {
			st.Entropy -= p * math.Log2(p)
		}
	}
	if st.ExpectedLength > 0 {
		st.Efficiency = st.Entropy / st.ExpectedLength
	}
	return st, nil
}
