package huffman

import (
	mathbits "math/bits"
)

func log2uint(x uint) int {
	if x == 0 {
		x = 1
	}
	return mathbits.Len(x)
}

// FixedWidth returns the number of bits a fixed-width code needs to tell n
// symbols apart.  It is never less than 1.
func FixedWidth(n int) int {
	if n <= 1 {
		return 1
	}
	return log2uint(uint(n - 1))
}

// FixedWidthCodes assigns each symbol, in ascending order, its index written
// out in FixedWidth(len(symbols)) bits.  The result is the baseline that a
// Huffman code is measured against when no other fixed code is available.
func FixedWidthCodes(symbols []Symbol) *CodeTable {
	sorted := sortedKeys(setOf(symbols))
	width := FixedWidth(len(sorted))
	codes := make(map[Symbol]Code, len(sorted))
	for index, symbol := range sorted {
		buf := make([]byte, width)
		for bit := 0; bit < width; bit++ {
			buf[bit] = '0' + byte(index>>(width-1-bit)&1)
		}
		codes[symbol] = Code(buf)
	}
	return NewCodeTable(codes)
}

func setOf(symbols []Symbol) map[Symbol]struct{} {
	set := make(map[Symbol]struct{}, len(symbols))
	for _, symbol := range symbols {
		set[symbol] = struct{}{}
	}
	return set
}
