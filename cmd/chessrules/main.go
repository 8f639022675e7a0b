// chessrules plays moves from a chess position and reports the resulting game
// state and perft node counts.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/hashing"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg, flag.Args())

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options] [moves...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays moves from a position and reports the resulting game state.\n\n")
	fmt.Fprintf(os.Stderr, "Examples:\n")
	fmt.Fprintf(os.Stderr, "  chessrules -board e2e4 e7e5 g1f3\n")
	fmt.Fprintf(os.Stderr, "  chessrules -fen \"8/8/8/8/8/8/8/K6k w - - 0 1\" -list\n")
	fmt.Fprintf(os.Stderr, "  chessrules -perft 5 -divide -workers 8 -cache\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLogFile(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
	// Board colours only make sense on a terminal.
	cfg.Output.Color = false
}

// run loads the configured position, plays the moves and writes the report.
func run(cfg *config.Config) error {
	g, err := engine.NewGameFromFEN(cfg.Position.FEN)
	if err != nil {
		return err
	}
	cfg.Logf(2, "Loaded %s\n", cfg.Position.FEN)

	for i, text := range cfg.Position.Moves {
		m, err := g.ParseMove(text)
		if err != nil {
			return fmt.Errorf("move %d of %d: %w", i+1, len(cfg.Position.Moves), err)
		}
		g.Apply(m)
		cfg.Logf(2, "%d. %s\n", g.Ply(), formatMove(m, cfg.Output.Format))
	}
	if len(cfg.Position.Moves) > 0 {
		cfg.Logf(1, "Played %d moves\n", len(cfg.Position.Moves))
	}

	out := cfg.OutputFile
	writeReport(out, g, cfg.Output)

	if cfg.Perft.Depth > 0 {
		return runPerft(cfg, g)
	}
	return nil
}

// writeReport prints the state of the position.
func writeReport(w io.Writer, g *engine.GameState, out *config.OutputConfig) {
	// The status flags are set by the move query.
	moves := g.LegalMoves()

	if out.ShowBoard {
		renderBoard(w, g, out.Color)
	}
	if out.ShowFEN {
		fmt.Fprintf(w, "FEN: %s\n", g.FEN())
	}

	fmt.Fprintf(w, "To move: %s\n", g.ToMove())
	fmt.Fprintf(w, "Status: %s\n", g.Status())
	if g.InCheck() {
		fmt.Fprintf(w, "Check: yes\n")
	}
	if g.HasInsufficientMaterial() {
		fmt.Fprintf(w, "Insufficient material: yes\n")
	}

	if out.ListMoves {
		names := make([]string, len(moves))
		for i, m := range moves {
			names[i] = formatMove(m, out.Format)
		}
		fmt.Fprintf(w, "Moves (%d): %s\n", len(moves), strings.Join(names, " "))
	}
}

// formatMove renders a move in the configured notation.
func formatMove(m chess.Move, format config.MoveFormat) string {
	if format == config.UCI {
		return m.UCI()
	}
	return m.Notation()
}

// runPerft counts leaf nodes, splitting the work across the configured
// number of workers when more than one is requested or a divide is wanted.
func runPerft(cfg *config.Config, g *engine.GameState) error {
	depth := cfg.Perft.Depth

	var cache *hashing.PerftCache
	if cfg.Perft.UseCache {
		cache = hashing.NewPerftCache(cfg.Perft.CacheSize)
	}

	start := time.Now()
	var total uint64
	if cfg.Perft.Divide || cfg.Perft.Workers > 1 {
		counts, err := engine.ParallelDivide(g, depth, cfg.Perft.Workers, cache)
		if err != nil {
			return fmt.Errorf("perft %d: %w", depth, err)
		}
		keys := maps.Keys(counts)
		slices.Sort(keys)
		for _, k := range keys {
			if cfg.Perft.Divide {
				fmt.Fprintf(cfg.OutputFile, "%s: %d\n", k, counts[k])
			}
			total += counts[k]
		}
	} else {
		total = g.PerftCached(depth, cache)
	}

	fmt.Fprintf(cfg.OutputFile, "Nodes: %d\n", total)
	cfg.Logf(1, "perft(%d) counted %d nodes in %v\n", depth, total, time.Since(start).Round(time.Millisecond))
	if cache != nil {
		cfg.Logf(2, "Cache: %d entries, %d hits\n", cache.Len(), cache.Hits())
		if cache.IsFull() {
			cfg.Logf(1, "Cache reached its limit of %d entries; raise -cachesize\n", cfg.Perft.CacheSize)
		}
	}
	return nil
}
