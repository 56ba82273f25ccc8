// Command huffstat builds a Huffman code for the characters of a text file
// and reports how many bits it saves over a fixed-width code.
package main

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/chronos-tachyon/quadhuff/internal/config"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		logger, _ := newLogger(os.Stderr, zerolog.LevelErrorValue)
		logger.Error().Err(err).Msg("huffstat failed")
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "huffstat",
		Usage:     "compare a Huffman code for a text against a fixed-width code",
		ArgsUsage: "[FILE]",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "read settings from `FILE`",
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "analyse the text in `FILE`",
			},
			&cli.StringFlag{
				Name:    "fixed-table",
				Aliases: []string{"t"},
				Usage:   "compare against the fixed codes in `FILE` (one \"<char>, <bits>\" per line)",
			},
			&cli.BoolFlag{
				Name:  "fold-case",
				Value: true,
				Usage: "lower-case the text before counting",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "table",
				Usage:   "output `FORMAT`: table or json",
			},
			&cli.BoolFlag{
				Name:  "print-bits",
				Usage: "also print the text encoded with each code",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: zerolog.LevelInfoValue,
				Usage: "log `LEVEL` (trace, debug, info, warn, error)",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}
			applyFlags(c, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger, err := newLogger(stderr, cfg.LogLevel)
			if err != nil {
				return err
			}
			return run(cfg, stdout, logger)
		},
	}
}

// applyFlags overrides cfg with every flag given on the command line.  A
// positional argument stands in for --input.
func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("input") {
		cfg.Input = c.String("input")
	}
	if c.Args().Present() {
		cfg.Input = c.Args().First()
	}
	if c.IsSet("fixed-table") {
		cfg.FixedTable = c.String("fixed-table")
	}
	if c.IsSet("fold-case") {
		cfg.FoldCase = c.Bool("fold-case")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("print-bits") {
		cfg.PrintBits = c.Bool("print-bits")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: noColor, TimeFormat: time.TimeOnly}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
