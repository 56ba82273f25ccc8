// Package textio reads the inputs of huffstat: the text whose symbols are
// counted and the optional table of fixed-width codes it is compared with.
package textio

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	huffman "github.com/chronos-tachyon/quadhuff"
)

// maxLineSize bounds a single input line.
const maxLineSize = 16 << 20

// Document is a text split into lines.  Line terminators are not part of
// any line and are neither counted nor encoded.
type Document struct {
	Lines []string
}

// ReadDocument reads r line by line.  With fold set, each line is
// lower-cased first, so that 'A' and 'a' count as the same symbol.
func ReadDocument(r io.Reader, fold bool) (*Document, error) {
	var lower cases.Caser
	if fold {
		lower = cases.Lower(language.Und)
	}

	doc := &Document{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineSize)
	for sc.Scan() {
		line := sc.Text()
		if fold {
			line = lower.String(line)
		}
		doc.Lines = append(doc.Lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("textio.ReadDocument: %w", err)
	}
	return doc, nil
}

// Runes returns the number of symbols in the document.
func (d *Document) Runes() int {
	var n int
	for _, line := range d.Lines {
		n += utf8.RuneCountInString(line)
	}
	return n
}

// Counts returns how often each symbol occurs.
func (d *Document) Counts() map[huffman.Symbol]int {
	counts := make(map[huffman.Symbol]int)
	for _, line := range d.Lines {
		for _, r := range line {
			counts[huffman.Symbol(r)]++
		}
	}
	return counts
}

// Frequencies returns the probability of each symbol.  A document without
// any symbols yields huffman.ErrEmptyInput.
func (d *Document) Frequencies() (huffman.FrequencyTable, error) {
	return huffman.FrequenciesFromCounts(d.Counts())
}

// CountBits returns the number of bits needed to encode the whole document
// with enc.
func (d *Document) CountBits(enc huffman.SymbolEncoder) (int, error) {
	var total int
	for i, line := range d.Lines {
		n, err := huffman.CountBits(enc, line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		total += n
	}
	return total, nil
}
