// Package chess provides the core chess value types shared by the rules engine:
// colours, piece tokens, squares, directions, the board, castling rights and moves.
package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PawnDirection returns the row delta of a pawn advance: -1 for White, +1 for Black.
// Row 0 is Black's back rank, so White pawns move towards lower rows.
func (c Colour) PawnDirection() int {
	if c == White {
		return -1
	}
	return 1
}

// HomeRow returns the back-rank row of the colour.
func (c Colour) HomeRow() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// Kind represents a chess piece type, independent of colour.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is a piece token: either Empty or a colour and kind packed together.
type Piece uint8

// Empty is the token of an unoccupied square.
const Empty Piece = 0

// pieceShift is used for encoding coloured pieces.
const pieceShift = 1

// MakePiece creates a coloured piece token.
func MakePiece(colour Colour, kind Kind) Piece {
	if kind == NoKind {
		return Empty
	}
	return Piece(int(kind)<<pieceShift | int(colour))
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// Kind extracts the piece kind. Empty yields NoKind.
func (p Piece) Kind() Kind {
	return Kind(p >> pieceShift)
}

// Colour extracts the colour. The result is meaningless for Empty.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// IsEmpty reports whether the token is Empty.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Is reports whether the token is a piece of the given colour.
func (p Piece) Is(colour Colour) bool {
	return p != Empty && p.Colour() == colour
}

// String returns a two character code such as "wK", "bp" or "--".
func (p Piece) String() string {
	if p == Empty {
		return "--"
	}
	c := byte('b')
	if p.Colour() == White {
		c = 'w'
	}
	letter := p.Kind().Letter()
	if p.Kind() == Pawn {
		letter = 'p'
	}
	return string([]byte{c, letter})
}

// FENLetter returns the FEN letter of the piece: uppercase for White, lowercase for Black.
func (p Piece) FENLetter() byte {
	letter := p.Kind().Letter()
	if p.Colour() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	FileBase = 'a'
	RankBase = '1'
)

// Square identifies one board square by row then column, both in [0,7].
// Row 0 is Black's back rank (rank 8) and column 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// NoSquare marks the absence of a square, e.g. no en-passant target.
var NoSquare = Square{Row: -1, Col: -1}

// NewSquare returns the square at row, col or ErrOutOfRange.
func NewSquare(row, col int) (Square, error) {
	sq := Square{Row: row, Col: col}
	if !sq.Valid() {
		return NoSquare, fmt.Errorf("square (%d,%d): %w", row, col, errors.ErrOutOfRange)
	}
	return sq, nil
}

// ParseSquare decodes algebraic square names such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return NoSquare, fmt.Errorf("square %q: %w", name, errors.ErrOutOfRange)
	}
	col := int(name[0]) - FileBase
	row := BoardSize - 1 - (int(name[1]) - RankBase)
	sq, err := NewSquare(row, col)
	if err != nil {
		return NoSquare, fmt.Errorf("square %q: %w", name, errors.ErrOutOfRange)
	}
	return sq, nil
}

// Valid reports whether both coordinates lie on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Add returns the square offset by d, which may be off the board.
func (s Square) Add(d Direction) Square {
	return Square{Row: s.Row + d.DRow, Col: s.Col + d.DCol}
}

// File returns the file letter of the square.
func (s Square) File() byte {
	return byte(FileBase + s.Col)
}

// Rank returns the rank digit of the square.
func (s Square) Rank() byte {
	return byte(RankBase + BoardSize - 1 - s.Row)
}

// String returns the algebraic name of the square, or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}

// Direction is a unit step between squares, or a knight offset.
type Direction struct {
	DRow int
	DCol int
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	return Direction{DRow: -d.DRow, DCol: -d.DCol}
}

// Colinear reports whether other points along the same line as d, either way.
func (d Direction) Colinear(other Direction) bool {
	return other == d || other == d.Opposite()
}

// Diagonal reports whether d is one of the four diagonal unit steps.
func (d Direction) Diagonal() bool {
	return d.DRow != 0 && d.DCol != 0
}

// Compass directions in the order the rules engine scans them:
// the four orthogonals, then the four diagonals.
var (
	Up        = Direction{-1, 0}
	Left      = Direction{0, -1}
	Down      = Direction{1, 0}
	Right     = Direction{0, 1}
	UpLeft    = Direction{-1, -1}
	UpRight   = Direction{-1, 1}
	DownLeft  = Direction{1, -1}
	DownRight = Direction{1, 1}
)

// OrthogonalDirections are the rook directions.
var OrthogonalDirections = []Direction{Up, Left, Down, Right}

// DiagonalDirections are the bishop directions.
var DiagonalDirections = []Direction{UpLeft, UpRight, DownRight, DownLeft}

// CompassDirections are all eight king-line directions, orthogonals first.
var CompassDirections = []Direction{Up, Left, Down, Right, UpLeft, UpRight, DownLeft, DownRight}

// KnightOffsets are the eight knight jumps.
var KnightOffsets = []Direction{
	{-2, -1}, {-2, 1}, {-1, 2}, {1, 2}, {2, -1}, {2, 1}, {-1, -2}, {1, -2},
}

// KingOffsets are the eight adjacent squares in row-major order.
var KingOffsets = []Direction{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1},
}
