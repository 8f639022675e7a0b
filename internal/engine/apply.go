package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
)

// Apply plays m without checking it. m must come from the most recent
// LegalMoves call on this state; anything else leaves the state undefined.
// Use MakeMove when the move comes from an untrusted source.
func (g *GameState) Apply(m chess.Move) {
	b := &g.board
	colour := m.Moved.Colour()

	b.Set(m.From, chess.Empty)
	b.Set(m.To, m.Moved)

	// Promotion is always to a queen.
	if m.Promotion {
		b.Set(m.To, chess.MakePiece(colour, chess.Queen))
	}
	if m.EnPassant {
		b.Set(m.EnPassantVictim(), chess.Empty)
	}
	if m.Castle {
		rookFrom, rookTo := castleRookSquares(m)
		b.Set(rookTo, b.At(rookFrom))
		b.Set(rookFrom, chess.Empty)
	}

	if m.Moved.Kind() == chess.King {
		g.kings[colour] = m.To
	}

	g.enPassant = chess.NoSquare
	if m.Moved.Kind() == chess.Pawn && abs(m.From.Row-m.To.Row) == 2 {
		g.enPassant = chess.Square{Row: (m.From.Row + m.To.Row) / 2, Col: m.From.Col}
	}
	g.rights = updateCastleRights(g.rights, m)

	if m.Moved.Kind() == chess.Pawn || m.IsCapture() {
		g.halfmoveClock = 0
	} else {
		g.halfmoveClock++
	}
	if colour == chess.Black {
		g.fullmoveNumber++
	}

	g.history = append(g.history, plyRecord{
		move:           m,
		enPassant:      g.enPassant,
		rights:         g.rights,
		halfmoveClock:  g.halfmoveClock,
		fullmoveNumber: g.fullmoveNumber,
	})
	g.toMove = g.toMove.Opposite()
}

// MakeMove plays m after confirming it is legal in the current position. The
// matching generated move is applied, so callers only need the squares right.
// An illegal move leaves the state untouched and returns ErrIllegalMove.
func (g *GameState) MakeMove(m chess.Move) error {
	for _, legal := range g.LegalMoves() {
		if legal.Equal(m) {
			g.Apply(legal)
			return nil
		}
	}
	return &errors.MoveError{
		Err:      errors.ErrIllegalMove,
		PlyNum:   g.Ply() + 1,
		MoveText: m.UCI(),
		FEN:      g.FEN(),
	}
}

// Undo takes back the last move. With no moves played it does nothing.
// The checkmate and stalemate flags are cleared until the next LegalMoves call.
func (g *GameState) Undo() {
	if g.Ply() == 0 {
		return
	}
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	m := last.move
	b := &g.board

	b.Set(m.From, m.Moved)
	b.Set(m.To, m.Captured)
	if m.EnPassant {
		b.Set(m.To, chess.Empty)
		b.Set(m.EnPassantVictim(), m.Captured)
	}
	if m.Moved.Kind() == chess.King {
		g.kings[m.Moved.Colour()] = m.From
	}
	if m.Castle {
		rookFrom, rookTo := castleRookSquares(m)
		b.Set(rookFrom, b.At(rookTo))
		b.Set(rookTo, chess.Empty)
	}

	top := g.history[len(g.history)-1]
	g.enPassant = top.enPassant
	g.rights = top.rights
	g.halfmoveClock = top.halfmoveClock
	g.fullmoveNumber = top.fullmoveNumber

	g.checkmate = false
	g.stalemate = false
	g.toMove = g.toMove.Opposite()
}

// ParseMove finds the legal move described by text. Long algebraic ("e2e4",
// "e7e8q") and the engine's own notation ("Nf3", "exd6", "0-0") are accepted.
func (g *GameState) ParseMove(text string) (chess.Move, error) {
	legal := g.LegalMoves()
	for _, m := range legal {
		if text == m.UCI() || text == m.Notation() || text == m.From.String()+m.To.String() {
			return m, nil
		}
	}

	err := errors.ErrInvalidMoveText
	if len(text) >= 4 {
		_, fromErr := chess.ParseSquare(text[0:2])
		_, toErr := chess.ParseSquare(text[2:4])
		if fromErr == nil && toErr == nil {
			err = errors.ErrIllegalMove
		}
	}
	return chess.Move{}, &errors.MoveError{
		Err:      err,
		PlyNum:   g.Ply() + 1,
		MoveText: text,
		FEN:      g.FEN(),
	}
}

// Play parses and plays each move in turn, stopping at the first failure.
func (g *GameState) Play(texts ...string) error {
	for i, text := range texts {
		m, err := g.ParseMove(text)
		if err != nil {
			return errors.Wrapf(err, "move %d of %d", i+1, len(texts))
		}
		g.Apply(m)
	}
	return nil
}

// String renders the board followed by the side to move.
func (g *GameState) String() string {
	return fmt.Sprintf("%s%s to move", g.board.String(), g.toMove)
}
