package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	huffman "github.com/chronos-tachyon/quadhuff"
	"github.com/chronos-tachyon/quadhuff/internal/config"
	"github.com/chronos-tachyon/quadhuff/internal/report"
	"github.com/chronos-tachyon/quadhuff/internal/textio"
)

// run computes frequencies, builds the tree, derives the codes and writes
// the report, in that order.
func run(cfg *config.Config, stdout io.Writer, logger zerolog.Logger) error {
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	doc, err := readDocument(cfg.Input, cfg.FoldCase)
	if err != nil {
		return err
	}
	logger.Debug().
		Str("input", cfg.Input).
		Int("lines", len(doc.Lines)).
		Int("runes", doc.Runes()).
		Msg("read document")

	freqs, err := doc.Frequencies()
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}

	tree, err := huffman.BuildTree(freqs)
	if err != nil {
		return err
	}
	if tree.Degenerate() {
		logger.Warn().Str("code", string(huffman.DegenerateCode)).Msg("input has a single distinct symbol")
	}

	codes := huffman.ExtractCodes(tree)
	if err := codes.Validate(); err != nil {
		return err
	}
	logger.Debug().
		Int("symbols", codes.Len()).
		Int("min_size", codes.MinSize()).
		Int("max_size", codes.MaxSize()).
		Msg("derived codes")

	baseline, err := loadBaseline(cfg.FixedTable, freqs)
	if err != nil {
		return err
	}

	summary, err := report.Build(report.Input{
		Document: doc,
		Freqs:    freqs,
		Tree:     tree,
		Codes:    codes,
		Baseline: baseline,
	})
	if err != nil {
		return err
	}

	if cfg.PrintBits {
		if err := report.WriteBits(stdout, "Baseline Output", baseline, doc); err != nil {
			return err
		}
		if err := report.WriteBits(stdout, "Huffman Output", codes, doc); err != nil {
			return err
		}
	}
	if err := report.Render(stdout, summary, format); err != nil {
		return err
	}

	logger.Info().
		Int("huffman_bits", summary.HuffmanBits).
		Int("baseline_bits", summary.BaselineBits).
		Float64("savings", summary.Savings).
		Msg("done")
	return nil
}

func readDocument(path string, fold bool) (*textio.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return textio.ReadDocument(f, fold)
}

// loadBaseline reads the fixed code table at path, or derives a fixed-width
// code over the symbols of freqs when path is empty.
func loadBaseline(path string, freqs huffman.FrequencyTable) (*huffman.CodeTable, error) {
	if path == "" {
		return huffman.FixedWidthCodes(freqs.Symbols()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table, err := textio.ReadFixedTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}
