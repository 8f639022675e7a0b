package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/engine"
)

// MustGame builds a game from fen and calls t.Fatal if it does not parse.
func MustGame(t *testing.T, fen string) *engine.GameState {
	t.Helper()
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) failed: %v", fen, err)
	}
	return g
}

// MustPlay plays each move on g and calls t.Fatal on the first one rejected.
func MustPlay(t *testing.T, g *engine.GameState, moves ...string) {
	t.Helper()
	if err := g.Play(moves...); err != nil {
		t.Fatalf("Play(%v) failed: %v", moves, err)
	}
}

// UCIs returns the long algebraic form of each move.
func UCIs(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.UCI()
	}
	return out
}

// Notations returns the engine notation of each move.
func Notations(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Notation()
	}
	return out
}

// MustSquare parses name and calls t.Fatal if it is not a square.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q) failed: %v", name, err)
	}
	return sq
}
