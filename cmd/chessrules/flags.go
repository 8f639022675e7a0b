// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chessrules/internal/config"
)

var (
	// Position options
	fenFlag   = flag.String("fen", "", "Starting position in FEN (default: initial position)")
	movesFlag = flag.String("moves", "", "Space-separated moves to play from the starting position")

	// Perft options
	perftDepth = flag.Int("perft", 0, "Count leaf nodes of the legal move tree to depth N")
	divideFlag = flag.Bool("divide", false, "Break the perft count down by root move")
	workers    = flag.Int("workers", 1, "Number of perft worker goroutines")
	cacheFlag  = flag.Bool("cache", false, "Share a transposition cache between perft workers")
	cacheSize  = flag.Int("cachesize", 0, "Maximum perft cache entries (0 = unlimited)")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	showBoard  = flag.Bool("board", false, "Print a board diagram")
	noColor    = flag.Bool("nocolor", false, "Disable colours in the board diagram")
	uciFormat  = flag.Bool("uci", false, "Print moves in long algebraic form")
	listMoves  = flag.Bool("list", false, "Print the legal moves of the resulting position")
	noFEN      = flag.Bool("nofen", false, "Don't print the resulting FEN")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to log file")
	verbose = flag.Int("v", 1, "Verbosity: 0=quiet, 1=summary, 2=running commentary")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config, args []string) {
	applyPositionFlags(cfg, args)
	applyPerftFlags(cfg)
	applyOutputFlags(cfg)
	cfg.Verbosity = *verbose
}

// applyPositionFlags sets the starting position and the moves to play.
// Positional arguments are appended to the -moves list.
func applyPositionFlags(cfg *config.Config, args []string) {
	if *fenFlag != "" {
		cfg.Position.FEN = *fenFlag
	}
	cfg.Position.Moves = append(strings.Fields(*movesFlag), args...)
}

// applyPerftFlags configures node counting.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divideFlag
	cfg.Perft.Workers = *workers
	cfg.Perft.UseCache = *cacheFlag
	cfg.Perft.CacheSize = *cacheSize
}

// applyOutputFlags configures what is printed and how.
func applyOutputFlags(cfg *config.Config) {
	if *uciFormat {
		cfg.Output.Format = config.UCI
	}
	cfg.Output.Color = !*noColor
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ListMoves = *listMoves
	cfg.Output.ShowFEN = !*noFEN
}
