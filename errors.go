package huffman

import (
	"errors"
)

var (
	// ErrEmptyInput is returned when a FrequencyTable has no symbols.
	ErrEmptyInput = errors.New("huffman: empty frequency table")

	// ErrInvalidFrequency is returned for a symbol outside [0, MaxSymbol] or
	// a probability outside (0, 1].
	ErrInvalidFrequency = errors.New("huffman: invalid frequency")

	// ErrUnknownSymbol is returned when text contains a symbol that the
	// code table does not cover.
	ErrUnknownSymbol = errors.New("huffman: symbol has no code")

	// ErrMalformedCode is returned for codes that are empty or contain
	// characters other than '0' and '1'.
	ErrMalformedCode = errors.New("huffman: malformed code")

	// ErrNotPrefixFree is returned when one code is a prefix of another.
	ErrNotPrefixFree = errors.New("huffman: code is not prefix-free")
)
