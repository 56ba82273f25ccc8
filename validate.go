package huffman

import (
	"cmp"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/exp/slices"
)

// Validate checks that the table describes a usable prefix code: every code
// is a non-empty string of '0' and '1', and no code is a prefix of another
// (which also rules out two symbols sharing a code).
//
// The table does not have to be Complete; a fixed-width code for fewer than
// 2^width symbols is valid.
//
func (ct *CodeTable) Validate() error {
	entries := make(byCode, 0, len(ct.codes))
	for symbol, hc := range ct.codes {
		entries = append(entries, symbolAndCode{symbol, hc})
	}
	entries.Sort()

	for _, e := range entries {
		if _, err := ParseCode(string(e.code)); err != nil {
			return fmt.Errorf("symbol %s: %w", e.symbol, err)
		}
	}

	// In lexicographic order, a code that is a prefix of any other code is
	// also a prefix of the code immediately after it.

	for i := 1; i < len(entries); i++ {
		a, b := entries[i-1], entries[i]
		if b.code.HasPrefix(a.code) {
			return fmt.Errorf("%w: %s for %s is a prefix of %s for %s", ErrNotPrefixFree, a.code, a.symbol, b.code, b.symbol)
		}
	}
	return nil
}

// Complete reports whether the codes exactly fill a full binary tree, i.e.
// whether the Kraft sum of 2^-len over all codes equals 1.  Every code built
// by ExtractCodes from a tree of two or more leaves is complete.
//
// The degenerate code consisting of a single symbol is also reported as
// complete, as there is no way to construct a fuller code for it.
//
func (ct *CodeTable) Complete() bool {
	switch len(ct.codes) {
	case 0:
		return false
	case 1:
		return true
	}

	countArray := make([]int64, ct.maxSize+1)
	for _, hc := range ct.codes {
		countArray[hc.Len()]++
	}
	if countArray[0] != 0 {
		return false
	}

	// Walk down the tree one level at a time.  free holds the number of
	// unclaimed nodes at the current depth; codes of that length claim
	// theirs, and what is left splits in two at the next level.

	free := big.NewInt(1)
	for size := 1; size <= ct.maxSize; size++ {
		free.Lsh(free, 1)
		free.Sub(free, big.NewInt(countArray[size]))
		if free.Sign() < 0 {
			return false
		}
	}
	return free.Sign() == 0
}

// type symbolAndCode + type byCode {{{

type symbolAndCode struct {
	symbol Symbol
	code   Code
}

type byCode []symbolAndCode

func (list byCode) Sort() {
	slices.SortFunc(list, func(a, b symbolAndCode) int {
		if c := strings.Compare(string(a.code), string(b.code)); c != 0 {
			return c
		}
		return cmp.Compare(a.symbol, b.symbol)
	})
}

// }}}
