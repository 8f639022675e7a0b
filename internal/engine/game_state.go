// Package engine provides the chess rules engine: game state, legal move
// generation, move application and undo.
package engine

import (
	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/hashing"
)

// Status is the game-end classification of the current position.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "Ongoing"
	}
}

// plyRecord is one entry of the history stack: the move played and the
// en-passant target and castling rights in force after it. The first record is
// a sentinel holding the starting values with a zero move.
type plyRecord struct {
	move           chess.Move
	enPassant      chess.Square
	rights         chess.CastleRights
	halfmoveClock  uint
	fullmoveNumber uint
}

// GameState is the authoritative state of one game.
//
// A GameState is owned by a single caller; it is not safe for concurrent use.
// Callers sharing one across goroutines must serialise LegalMoves, Apply and
// Undo themselves.
type GameState struct {
	board  chess.Board
	toMove chess.Colour

	// Cached king squares, indexed by colour.
	kings [2]chess.Square

	enPassant      chess.Square
	rights         chess.CastleRights
	halfmoveClock  uint
	fullmoveNumber uint

	// history always holds len(MoveLog())+1 records.
	history []plyRecord

	checkmate bool
	stalemate bool
}

// NewGame creates a game in the standard starting position with all castling
// rights available.
func NewGame() *GameState {
	g, err := NewGameFromFEN(InitialFEN)
	if err != nil {
		// InitialFEN is a constant known to parse.
		panic(err)
	}
	return g
}

// newGameState builds a state from already validated parts and seeds the
// history sentinel.
func newGameState(board chess.Board, toMove chess.Colour, rights chess.CastleRights, ep chess.Square, halfmove, fullmove uint) *GameState {
	g := &GameState{
		board:          board,
		toMove:         toMove,
		enPassant:      ep,
		rights:         rights,
		halfmoveClock:  halfmove,
		fullmoveNumber: fullmove,
	}
	g.kings[chess.White] = board.Find(chess.W(chess.King))
	g.kings[chess.Black] = board.Find(chess.B(chess.King))
	g.history = []plyRecord{{
		enPassant:      ep,
		rights:         rights,
		halfmoveClock:  halfmove,
		fullmoveNumber: fullmove,
	}}
	return g
}

// Board returns a copy of the board contents.
func (g *GameState) Board() chess.Board {
	return g.board
}

// PieceAt returns the piece on sq, or ErrOutOfRange for an off-board square.
func (g *GameState) PieceAt(sq chess.Square) (chess.Piece, error) {
	return g.board.Lookup(sq)
}

// ToMove returns the side to move.
func (g *GameState) ToMove() chess.Colour {
	return g.toMove
}

// WhiteToMove reports whether White is to move.
func (g *GameState) WhiteToMove() bool {
	return g.toMove == chess.White
}

// KingSquare returns the cached king square of colour.
func (g *GameState) KingSquare(colour chess.Colour) chess.Square {
	return g.kings[colour]
}

// CastleRights returns the castling rights currently in force.
func (g *GameState) CastleRights() chess.CastleRights {
	return g.rights
}

// EnPassantSquare returns the square a pawn may capture onto en passant,
// or chess.NoSquare.
func (g *GameState) EnPassantSquare() chess.Square {
	return g.enPassant
}

// MoveLog returns the moves played so far, oldest first.
func (g *GameState) MoveLog() []chess.Move {
	moves := make([]chess.Move, 0, len(g.history)-1)
	for _, rec := range g.history[1:] {
		moves = append(moves, rec.move)
	}
	return moves
}

// Ply returns the number of moves played.
func (g *GameState) Ply() int {
	return len(g.history) - 1
}

// LastMove returns the most recent move, if any.
func (g *GameState) LastMove() (chess.Move, bool) {
	if g.Ply() == 0 {
		return chess.Move{}, false
	}
	return g.history[len(g.history)-1].move, true
}

// Checkmate reports the checkmate flag set by the last LegalMoves query.
func (g *GameState) Checkmate() bool {
	return g.checkmate
}

// Stalemate reports the stalemate flag set by the last LegalMoves query.
func (g *GameState) Stalemate() bool {
	return g.stalemate
}

// Status returns the classification made by the last LegalMoves query.
// Undo resets it to Ongoing until the next query.
func (g *GameState) Status() Status {
	switch {
	case g.checkmate:
		return Checkmate
	case g.stalemate:
		return Stalemate
	default:
		return Ongoing
	}
}

// InCheck reports whether the side to move is in check in the current position.
func (g *GameState) InCheck() bool {
	return scanKing(&g.board, g.kings[g.toMove], g.toMove).inCheck
}

// SquareAttacked reports whether the opponent of the side to move attacks sq.
func (g *GameState) SquareAttacked(sq chess.Square) (bool, error) {
	if _, err := g.board.Lookup(sq); err != nil {
		return false, err
	}
	return squareAttacked(&g.board, sq, g.toMove), nil
}

// Hash returns the Zobrist key of the current position.
func (g *GameState) Hash() uint64 {
	return hashing.Zobrist(&g.board, g.toMove, g.rights, g.enPassant)
}
