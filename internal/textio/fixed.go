package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	huffman "github.com/chronos-tachyon/quadhuff"
)

// ErrMalformedTable is returned by ReadFixedTable for lines it cannot parse.
var ErrMalformedTable = errors.New("textio: malformed fixed code table")

// fieldSeparator sits between the character and its code on each line.
const fieldSeparator = ", "

// ReadFixedTable parses a table of fixed codes, one entry per line:
//
//     a, 01100001
//      , 00100000
//     ,, 00101100
//
// The first character of the line is the symbol and the text after the
// last ", " is its code.  Blank lines are skipped.  A symbol listed twice
// keeps its last code.
//
func ReadFixedTable(r io.Reader) (*huffman.CodeTable, error) {
	codes := make(map[huffman.Symbol]huffman.Code)
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}

		sym, size := utf8.DecodeRuneInString(line)
		i := strings.LastIndex(line, fieldSeparator)
		if sym == utf8.RuneError && size <= 1 || i < size {
			return nil, fmt.Errorf("%w: line %d: expected \"<char>, <bits>\", got %q", ErrMalformedTable, lineno, line)
		}

		hc, err := huffman.ParseCode(line[i+len(fieldSeparator):])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedTable, lineno, err)
		}
		codes[huffman.Symbol(sym)] = hc
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("textio.ReadFixedTable: %w", err)
	}
	return huffman.NewCodeTable(codes), nil
}
