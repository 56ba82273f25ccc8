package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronos-tachyon/quadhuff/internal/report"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, &Config{
		FoldCase: true,
		Format:   "table",
		LogLevel: "info",
	}, cfg)
	assert.ErrorIs(t, cfg.Validate(), ErrNoInput)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huffstat.yaml")
	body := "input: war_and_peace.txt\nfixed_table: ascii_to_binary.txt\nformat: json\nfold_case: false\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	t.Setenv("HUFFSTAT_FORMAT", "table")
	t.Setenv("HUFFSTAT_PRINT_BITS", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "war_and_peace.txt", cfg.Input)
	assert.Equal(t, "ascii_to_binary.txt", cfg.FixedTable)
	assert.False(t, cfg.FoldCase)
	assert.Equal(t, string(report.FormatTable), cfg.Format, "environment overrides the file")
	assert.True(t, cfg.PrintBits)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Input: "in.txt", Format: "xml", LogLevel: "info"}
	assert.ErrorIs(t, cfg.Validate(), report.ErrUnknownFormat)

	cfg = &Config{Input: "in.txt", Format: "json", LogLevel: "loud"}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Input: "in.txt", Format: "json", LogLevel: "debug"}
	assert.NoError(t, cfg.Validate())
}
