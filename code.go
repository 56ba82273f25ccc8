package huffman

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Code represents a sequence of bits, written out as the characters '0' and
// '1'.  The first character is the first bit.
type Code string

const (
	// LeftBit is appended to the path when descending into a left child.
	LeftBit byte = '1'

	// RightBit is appended to the path when descending into a right child.
	RightBit byte = '0'
)

// DegenerateCode is the code assigned to the only symbol of a one-symbol
// alphabet.  Such a tree has no branches, so the empty path would otherwise
// be the only code available.
const DegenerateCode Code = "0"

// ParseCode validates that s consists only of '0' and '1' characters and
// returns it as a Code.
func ParseCode(s string) (Code, error) {
	if s == "" {
		return "", fmt.Errorf("%w: empty code", ErrMalformedCode)
	}
	if i := strings.IndexFunc(s, func(r rune) bool { return r != '0' && r != '1' }); i >= 0 {
		return "", fmt.Errorf("%w: %q has a non-binary digit at offset %d", ErrMalformedCode, s, i)
	}
	return Code(s), nil
}

// Len returns the number of bits.
func (c Code) Len() int {
	return len(c)
}

// Append returns c extended by one bit, which must be '0' or '1'.
func (c Code) Append(bit byte) Code {
	assert.Assertf(bit == '0' || bit == '1', "huffman.Code.Append: bit %q is not '0' or '1'", bit)
	return c + Code(bit)
}

// HasPrefix reports whether prefix is a prefix of c.  Every code is a prefix
// of itself.
func (c Code) HasPrefix(prefix Code) bool {
	return strings.HasPrefix(string(c), string(prefix))
}

// String returns the quoted string representation of this Code.
func (c Code) String() string {
	return strconv.Quote(string(c))
}

var _ fmt.Stringer = Code("")
