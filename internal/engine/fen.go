package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenCharToKind converts a FEN character to a piece kind.
func fenCharToKind(c byte) chess.Kind {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.NoKind
	}
}

// NewGameFromFEN creates a game from a FEN string. Only the placement field is
// mandatory; missing trailing fields default to "w - - 0 1".
func NewGameFromFEN(fen string) (*GameState, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, &errors.FENError{Err: errors.ErrInvalidFEN, Field: "piece placement"}
	}

	var board chess.Board
	if err := parsePiecePositions(&board, parts[0]); err != nil {
		return nil, err
	}
	if err := checkKings(&board); err != nil {
		return nil, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, err
	}
	rights, err := parseCastlingRights(parts)
	if err != nil {
		return nil, err
	}
	ep, err := parseEnPassant(parts)
	if err != nil {
		return nil, err
	}
	halfmove, fullmove, err := parseClocks(parts)
	if err != nil {
		return nil, err
	}

	return newGameState(board, toMove, rights, ep, halfmove, fullmove), nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "piece placement", Got: positions}
	}

	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				if col > chess.BoardSize {
					return rankWidthError(row, rank)
				}
				continue
			}
			kind := fenCharToKind(c)
			if kind == chess.NoKind {
				return &errors.FENError{
					Err:   fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidFEN),
					Field: "piece placement",
					Got:   rank,
				}
			}
			if col >= chess.BoardSize {
				return rankWidthError(row, rank)
			}
			colour := chess.White
			if unicode.IsLower(rune(c)) {
				colour = chess.Black
			}
			board[row][col] = chess.MakePiece(colour, kind)
			col++
		}
		if col != chess.BoardSize {
			return rankWidthError(row, rank)
		}
	}
	return nil
}

// rankWidthError reports a rank that does not span exactly eight files.
func rankWidthError(row int, rank string) error {
	return &errors.FENError{
		Err:   fmt.Errorf("rank %d does not span %d files: %w", chess.BoardSize-row, chess.BoardSize, errors.ErrInvalidFEN),
		Field: "piece placement",
		Got:   rank,
	}
}

// checkKings requires exactly one king per colour.
func checkKings(board *chess.Board) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := board.Count(chess.MakePiece(colour, chess.King)); n != 1 {
			return &errors.FENError{
				Err:   fmt.Errorf("%v has %d kings: %w", colour, n, errors.ErrInvalidFEN),
				Field: "piece placement",
			}
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, &errors.FENError{Err: errors.ErrInvalidFEN, Field: "side to move", Got: parts[1]}
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(parts []string) (chess.CastleRights, error) {
	var rights chess.CastleRights
	if len(parts) < 3 || parts[2] == "-" {
		return rights, nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			rights.WhiteKingside = true
		case 'Q':
			rights.WhiteQueenside = true
		case 'k':
			rights.BlackKingside = true
		case 'q':
			rights.BlackQueenside = true
		default:
			return rights, &errors.FENError{Err: errors.ErrInvalidFEN, Field: "castling", Got: parts[2]}
		}
	}
	return rights, nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(parts []string) (chess.Square, error) {
	if len(parts) < 4 || parts[3] == "-" {
		return chess.NoSquare, nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil || (sq.Row != 2 && sq.Row != 5) {
		return chess.NoSquare, &errors.FENError{Err: errors.ErrInvalidFEN, Field: "en passant", Got: parts[3]}
	}
	return sq, nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(parts []string) (halfmove, fullmove uint, err error) {
	halfmove, fullmove = 0, 1
	if len(parts) >= 5 {
		n, convErr := strconv.ParseUint(parts[4], 10, 32)
		if convErr != nil {
			return 0, 0, &errors.FENError{Err: errors.ErrInvalidFEN, Field: "halfmove clock", Got: parts[4]}
		}
		halfmove = uint(n)
	}
	if len(parts) >= 6 {
		n, convErr := strconv.ParseUint(parts[5], 10, 32)
		if convErr != nil || n == 0 {
			return 0, 0, &errors.FENError{Err: errors.ErrInvalidFEN, Field: "fullmove number", Got: parts[5]}
		}
		fullmove = uint(n)
	}
	return halfmove, fullmove, nil
}

// FEN converts the current position to a FEN string.
func (g *GameState) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, &g.board)
	sb.WriteByte(' ')
	if g.toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(g.rights.String())
	sb.WriteByte(' ')
	sb.WriteString(g.enPassant.String())
	fmt.Fprintf(&sb, " %d %d", g.halfmoveClock, g.fullmoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board[row][col]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}
