// Package huffman builds Huffman codes for text.  Given the probability of
// each symbol, BuildTree constructs an optimal prefix-free code tree by
// repeatedly merging the two least probable subtrees, and ExtractCodes turns
// the tree into a CodeTable mapping each symbol to its bit-string.
//
// Codes are kept in textual form, one '0' or '1' character per bit.  A left
// branch contributes a '1' and a right branch a '0'.
//
// Ties between equally probable subtrees are broken by the smallest symbol
// each subtree contains, so the same FrequencyTable always yields the same
// CodeTable.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://en.wikipedia.org/wiki/Kraft%E2%80%93McMillan_inequality>
//
package huffman
