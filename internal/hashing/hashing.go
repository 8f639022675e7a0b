// Package hashing provides Zobrist position keys and a shared perft cache.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules/internal/chess"
)

// numPieceTokens covers every chess.Piece value, empty included.
const numPieceTokens = int(chess.NumKinds) << 1

var (
	pieceKeys     [numPieceTokens][chess.BoardSize][chess.BoardSize]uint64
	castleKeys    [16]uint64
	enPassantKeys [chess.BoardSize]uint64
	blackToMove   uint64
)

func init() {
	// Fixed seed so keys are stable across runs.
	rnd := rand.New(rand.NewSource(0x5EED))

	for p := range pieceKeys {
		for row := range pieceKeys[p] {
			for col := range pieceKeys[p][row] {
				pieceKeys[p][row][col] = rnd.Uint64()
			}
		}
	}
	for i := range castleKeys {
		castleKeys[i] = rnd.Uint64()
	}
	for f := range enPassantKeys {
		enPassantKeys[f] = rnd.Uint64()
	}
	blackToMove = rnd.Uint64()
}

// Zobrist computes the hash of a position from scratch. Positions that differ
// only in move history hash equal.
func Zobrist(board *chess.Board, toMove chess.Colour, rights chess.CastleRights, ep chess.Square) uint64 {
	var key uint64

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if p := board[row][col]; !p.IsEmpty() {
				key ^= pieceKeys[p][row][col]
			}
		}
	}

	if toMove == chess.Black {
		key ^= blackToMove
	}
	key ^= castleKeys[rights.Index()]
	if ep.Valid() {
		key ^= enPassantKeys[ep.Col]
	}

	return key
}
