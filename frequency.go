package huffman

import (
	"fmt"
	"math"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// FrequencyTable maps each symbol to its probability.  Probabilities must
// lie in (0, 1] and should sum to 1; BuildTree relies on the former and
// assumes the latter without checking it.
type FrequencyTable map[Symbol]float64

// FrequenciesFromCounts converts raw occurrence counts into a
// FrequencyTable.  Symbols with a count of zero are left out.
func FrequenciesFromCounts(counts map[Symbol]int) (FrequencyTable, error) {
	var total int
	for _, sym := range sortedKeys(counts) {
		n := counts[sym]
		if n < 0 {
			return nil, fmt.Errorf("%w: %s has negative count %d", ErrInvalidFrequency, sym, n)
		}
		total += n
	}
	if total == 0 {
		return nil, ErrEmptyInput
	}

	ft := make(FrequencyTable, len(counts))
	for sym, n := range counts {
		if n != 0 {
			ft[sym] = float64(n) / float64(total)
		}
	}
	return ft, nil
}

// Validate checks the invariants that BuildTree depends on: the table is not
// empty, every symbol is valid, and every probability lies in (0, 1].
// Problems are reported for the smallest offending symbol.
func (ft FrequencyTable) Validate() error {
	if len(ft) == 0 {
		return ErrEmptyInput
	}
	for _, sym := range ft.Symbols() {
		p := ft[sym]
		if !sym.IsValid() {
			return fmt.Errorf("%w: symbol %d out of range", ErrInvalidFrequency, int32(sym))
		}
		if math.IsNaN(p) || p <= 0 || p > 1 {
			return fmt.Errorf("%w: %s has probability %v, want (0, 1]", ErrInvalidFrequency, sym, p)
		}
	}
	return nil
}

// Symbols returns the symbols of the table in ascending order.
func (ft FrequencyTable) Symbols() []Symbol {
	return sortedKeys(ft)
}

// Total returns the sum of all probabilities.
func (ft FrequencyTable) Total() float64 {
	var sum float64
	for _, sym := range ft.Symbols() {
		sum += ft[sym]
	}
	return sum
}

func sortedKeys[V any](m map[Symbol]V) []Symbol {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
