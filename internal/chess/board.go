package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules/internal/errors"
)

// Board is the 8x8 grid of piece tokens, indexed [row][col].
// It is a plain value: assigning a Board copies every square.
type Board [BoardSize][BoardSize]Piece

// backRank lists the kinds on the first rank from the a-file to the h-file.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}
	for col := 0; col < BoardSize; col++ {
		b[0][col] = B(backRank[col])
		b[1][col] = B(Pawn)
		b[BoardSize-2][col] = W(Pawn)
		b[BoardSize-1][col] = W(backRank[col])
	}
}

// At returns the piece on sq. The square must be valid.
func (b *Board) At(sq Square) Piece {
	return b[sq.Row][sq.Col]
}

// Set places a piece on sq. The square must be valid.
func (b *Board) Set(sq Square, p Piece) {
	b[sq.Row][sq.Col] = p
}

// Lookup returns the piece on sq, failing with ErrOutOfRange for off-board squares.
func (b *Board) Lookup(sq Square) (Piece, error) {
	if !sq.Valid() {
		return Empty, fmt.Errorf("lookup (%d,%d): %w", sq.Row, sq.Col, errors.ErrOutOfRange)
	}
	return b.At(sq), nil
}

// Place puts a piece on sq, failing with ErrOutOfRange for off-board squares.
func (b *Board) Place(sq Square, p Piece) error {
	if !sq.Valid() {
		return fmt.Errorf("place (%d,%d): %w", sq.Row, sq.Col, errors.ErrOutOfRange)
	}
	b.Set(sq, p)
	return nil
}

// Find returns the first square holding p in row-major order, or NoSquare.
func (b *Board) Find(p Piece) Square {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == p {
				return Square{Row: row, Col: col}
			}
		}
	}
	return NoSquare
}

// Count returns how many squares hold p.
func (b *Board) Count(p Piece) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == p {
				n++
			}
		}
	}
	return n
}

// String renders the board as eight lines of piece codes, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b[row][col].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
