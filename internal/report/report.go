// Package report renders the outcome of a huffstat run: the code table, the
// bit totals for the Huffman code and the fixed baseline, and the summary
// statistics.
package report

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/exp/slices"

	huffman "github.com/chronos-tachyon/quadhuff"
	"github.com/chronos-tachyon/quadhuff/internal/textio"
)

// Format selects how Render writes a Summary.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ErrUnknownFormat is returned by ParseFormat and Render.
var ErrUnknownFormat = errors.New("report: unknown format")

// ParseFormat converts a user-supplied name into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Row describes one symbol.
type Row struct {
	Symbol      string  `json:"symbol"`
	Count       int     `json:"count"`
	Probability float64 `json:"probability"`
	Code        string  `json:"code"`
	Fixed       string  `json:"fixed,omitempty"`
}

// Summary is everything Render prints.
type Summary struct {
	Rows []Row `json:"rows"`

	// Runes is the number of symbols in the document.
	Runes int `json:"runes"`

	// TableBits is the sum of the lengths of all Huffman codes.
	TableBits int `json:"table_bits"`

	HuffmanBits  int     `json:"huffman_bits"`
	BaselineBits int     `json:"baseline_bits"`
	Savings      float64 `json:"savings"`

	Stats      huffman.Stats `json:"stats"`
	Degenerate bool          `json:"degenerate"`
}

// Input gathers what Build needs.  Baseline is the fixed code the Huffman
// code is compared with.
type Input struct {
	Document *textio.Document
	Freqs    huffman.FrequencyTable
	Tree     *huffman.Tree
	Codes    *huffman.CodeTable
	Baseline *huffman.CodeTable
}

// Build computes a Summary.  Rows are ordered by descending count, then by
// symbol.
func Build(in Input) (*Summary, error) {
	stats, err := huffman.ComputeStats(in.Freqs, in.Codes)
	if err != nil {
		return nil, fmt.Errorf("report.Build: %w", err)
	}
	huffmanBits, err := in.Document.CountBits(in.Codes)
	if err != nil {
		return nil, fmt.Errorf("report.Build: huffman code: %w", err)
	}
	baselineBits, err := in.Document.CountBits(in.Baseline)
	if err != nil {
		return nil, fmt.Errorf("report.Build: baseline code: %w", err)
	}

	counts := in.Document.Counts()
	symbols := in.Codes.Symbols()
	slices.SortFunc(symbols, func(a, b huffman.Symbol) int {
		if c := cmp.Compare(counts[b], counts[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	s := &Summary{
		Rows:         make([]Row, 0, len(symbols)),
		Runes:        in.Document.Runes(),
		HuffmanBits:  huffmanBits,
		BaselineBits: baselineBits,
		Stats:        stats,
		Degenerate:   in.Tree.Degenerate(),
	}
	for _, symbol := range symbols {
		hc, _ := in.Codes.Encode(symbol)
		fixed, _ := in.Baseline.Encode(symbol)
		s.TableBits += hc.Len()
		s.Rows = append(s.Rows, Row{
			Symbol:      symbol.String(),
			Count:       counts[symbol],
			Probability: in.Freqs[symbol],
			Code:        string(hc),
			Fixed:       string(fixed),
		})
	}
	if baselineBits > 0 {
		s.Savings = 1 - float64(huffmanBits)/float64(baselineBits)
	}
	return s, nil
}

// Render writes s to w in the given format.
func Render(w io.Writer, s *Summary, format Format) error {
	switch format {
	case FormatTable:
		return renderTable(w, s)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

func renderTable(w io.Writer, s *Summary) error {
	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetHeader([]string{"Symbol", "Count", "Probability", "Huffman", "Fixed"})
	for _, row := range s.Rows {
		tw.Append([]string{
			row.Symbol,
			strconv.Itoa(row.Count),
			strconv.FormatFloat(row.Probability, 'f', 6, 64),
			row.Code,
			row.Fixed,
		})
	}
	tw.Render()

	var b strings.Builder
	fmt.Fprintf(&b, "Distinct symbols: %d\n", s.Stats.Symbols)
	fmt.Fprintf(&b, "Total symbols:    %d\n", s.Runes)
	fmt.Fprintf(&b, "Code table bits:  %d\n", s.TableBits)
	fmt.Fprintf(&b, "Baseline bits:    %d\n", s.BaselineBits)
	fmt.Fprintf(&b, "Huffman bits:     %d\n", s.HuffmanBits)
	fmt.Fprintf(&b, "Savings:          %.2f%%\n", 100*s.Savings)
	fmt.Fprintf(&b, "Expected length:  %.4f bits/symbol\n", s.Stats.ExpectedLength)
	fmt.Fprintf(&b, "Entropy:          %.4f bits/symbol\n", s.Stats.Entropy)
	fmt.Fprintf(&b, "Efficiency:       %.2f%%\n", 100*s.Stats.Efficiency)
	if s.Degenerate {
		fmt.Fprintf(&b, "Note: only one distinct symbol; it was given the one-bit code %s\n", huffman.DegenerateCode)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
