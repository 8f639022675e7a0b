package engine

import "github.com/lgbarn/chessrules/internal/chess"

// moveGen holds everything the pseudo-legal generators read during one
// legal-move query. It is built per query and never stored.
type moveGen struct {
	board     *chess.Board
	us        chess.Colour
	king      chess.Square
	enPassant chess.Square
	pins      pinTable
}

// newMoveGen prepares the generators for the side to move of g.
func newMoveGen(g *GameState, pins pinTable) *moveGen {
	return &moveGen{
		board:     &g.board,
		us:        g.toMove,
		king:      g.kings[g.toMove],
		enPassant: g.enPassant,
		pins:      pins,
	}
}

// allPseudoLegal scans the board row by row and collects the moves of every
// piece of the side to move.
func (mg *moveGen) allPseudoLegal() []chess.Move {
	moves := make([]chess.Move, 0, 48)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Square{Row: row, Col: col}
			p := mg.board.At(sq)
			if !p.Is(mg.us) {
				continue
			}
			moves = mg.pieceMoves(p.Kind(), sq, moves)
		}
	}
	return moves
}

// pieceMoves dispatches to the generator for kind.
func (mg *moveGen) pieceMoves(kind chess.Kind, sq chess.Square, moves []chess.Move) []chess.Move {
	switch kind {
	case chess.Pawn:
		return mg.pawnMoves(sq, moves)
	case chess.Knight:
		return mg.knightMoves(sq, moves)
	case chess.Bishop:
		return mg.slidingMoves(sq, chess.DiagonalDirections, moves)
	case chess.Rook:
		return mg.slidingMoves(sq, chess.OrthogonalDirections, moves)
	case chess.Queen:
		moves = mg.slidingMoves(sq, chess.DiagonalDirections, moves)
		return mg.slidingMoves(sq, chess.OrthogonalDirections, moves)
	case chess.King:
		return mg.kingMoves(sq, moves)
	}
	return moves
}

// slidingMoves extends rays from sq until the edge or the first piece,
// including an enemy piece as a capture. A pinned piece only slides along its
// pin line.
func (mg *moveGen) slidingMoves(sq chess.Square, dirs []chess.Direction, moves []chess.Move) []chess.Move {
	pinDir, pinned := mg.pins[sq]
	for _, dir := range dirs {
		if pinned && !pinDir.Colinear(dir) {
			continue
		}
		for to := sq.Add(dir); to.Valid(); to = to.Add(dir) {
			target := mg.board.At(to)
			if target.IsEmpty() {
				moves = append(moves, chess.NewMove(sq, to, mg.board))
				continue
			}
			if !target.Is(mg.us) {
				moves = append(moves, chess.NewMove(sq, to, mg.board))
			}
			break
		}
	}
	return moves
}

// knightMoves adds the knight jumps from sq. A pinned knight cannot move.
func (mg *moveGen) knightMoves(sq chess.Square, moves []chess.Move) []chess.Move {
	if _, pinned := mg.pins[sq]; pinned {
		return moves
	}
	for _, offset := range chess.KnightOffsets {
		to := sq.Add(offset)
		if to.Valid() && !mg.board.At(to).Is(mg.us) {
			moves = append(moves, chess.NewMove(sq, to, mg.board))
		}
	}
	return moves
}

// kingMoves adds every adjacent square the king can step to without being
// attacked there.
func (mg *moveGen) kingMoves(sq chess.Square, moves []chess.Move) []chess.Move {
	for _, offset := range chess.KingOffsets {
		to := sq.Add(offset)
		if !to.Valid() || mg.board.At(to).Is(mg.us) {
			continue
		}
		if !squareAttacked(mg.board, to, mg.us) {
			moves = append(moves, chess.NewMove(sq, to, mg.board))
		}
	}
	return moves
}
