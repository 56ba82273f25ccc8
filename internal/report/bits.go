package report

import (
	"bufio"
	"fmt"
	"io"

	huffman "github.com/chronos-tachyon/quadhuff"
	"github.com/chronos-tachyon/quadhuff/internal/textio"
)

// WriteBits writes the document encoded with enc, one line of '0' and '1'
// characters per input line, under a title and followed by the total number
// of bits used.
func WriteBits(w io.Writer, title string, enc huffman.SymbolEncoder, doc *textio.Document) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, title)

	var line []byte
	var total int
	for i, text := range doc.Lines {
		var err error
		line, err = huffman.AppendEncoded(line[:0], enc, text)
		if err != nil {
			return fmt.Errorf("report.WriteBits: line %d: %w", i+1, err)
		}
		total += len(line)
		bw.Write(line)
		bw.WriteByte('\n')
	}
	fmt.Fprintf(bw, "Total bits used: %d\n\n", total)
	return bw.Flush()
}
