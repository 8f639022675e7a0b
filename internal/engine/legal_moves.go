package engine

import "github.com/lgbarn/chessrules/internal/chess"

// LegalMoves returns every legal move for the side to move, in row-major board
// order with castling moves last, and updates the checkmate and stalemate
// flags.
func (g *GameState) LegalMoves() []chess.Move {
	king := g.kings[g.toMove]
	scan := scanKing(&g.board, king, g.toMove)
	mg := newMoveGen(g, scan.pins)

	var moves []chess.Move
	switch {
	case scan.doubleCheck():
		moves = mg.kingMoves(king, nil)
	case scan.inCheck:
		moves = filterCheckEvasions(mg.allPseudoLegal(), king, scan.checks[0])
	default:
		moves = mg.allPseudoLegal()
		moves = mg.castleMoves(g.rights, moves)
	}

	g.checkmate = len(moves) == 0 && scan.inCheck
	g.stalemate = len(moves) == 0 && !scan.inCheck
	return moves
}

// filterCheckEvasions keeps the moves that answer a single check: king moves,
// captures of the checker, interpositions on a sliding checker's ray, and an
// en-passant capture of a checking pawn.
func filterCheckEvasions(moves []chess.Move, king chess.Square, check checkRecord) []chess.Move {
	valid := make(map[chess.Square]bool)
	for _, sq := range blockingSquares(king, check) {
		valid[sq] = true
	}

	kept := moves[:0]
	for _, m := range moves {
		switch {
		case m.Moved.Kind() == chess.King:
		case valid[m.To]:
		case m.EnPassant && m.EnPassantVictim() == check.from:
		default:
			continue
		}
		kept = append(kept, m)
	}
	return kept
}

// HasLegalMoves reports whether the side to move has at least one legal move.
func (g *GameState) HasLegalMoves() bool {
	return len(g.LegalMoves()) > 0
}
