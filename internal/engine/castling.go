package engine

import "github.com/lgbarn/chessrules/internal/chess"

// castleRookSquares returns where the rook starts and ends for a castling move.
func castleRookSquares(m chess.Move) (from, to chess.Square) {
	row := m.To.Row
	if m.Kingside() {
		return chess.Square{Row: row, Col: m.To.Col + 1}, chess.Square{Row: row, Col: m.To.Col - 1}
	}
	return chess.Square{Row: row, Col: m.To.Col - 2}, chess.Square{Row: row, Col: m.To.Col + 1}
}

// updateCastleRights returns the rights in force after m.
func updateCastleRights(rights chess.CastleRights, m chess.Move) chess.CastleRights {
	if m.Captured.Kind() == chess.Rook && !m.EnPassant {
		revokeRookCorner(&rights, m.Captured.Colour(), m.To)
	}
	switch m.Moved.Kind() {
	case chess.King:
		rights.RevokeAll(m.Moved.Colour())
	case chess.Rook:
		revokeRookCorner(&rights, m.Moved.Colour(), m.From)
	}
	return rights
}

// revokeRookCorner clears colour's right for the wing whose rook home is sq.
func revokeRookCorner(rights *chess.CastleRights, colour chess.Colour, sq chess.Square) {
	for _, kingside := range []bool{true, false} {
		if sq == chess.RookHome(colour, kingside) {
			rights.Revoke(colour, kingside)
		}
	}
}

// castleMoves adds the castling moves available to the side to move. The
// caller must already know the king is not in check.
func (mg *moveGen) castleMoves(rights chess.CastleRights, moves []chess.Move) []chess.Move {
	king := mg.king
	if king != chess.KingHome(mg.us) {
		return moves
	}
	if rights.Has(mg.us, true) && mg.rookAtHome(true) {
		moves = mg.kingsideCastle(king, moves)
	}
	if rights.Has(mg.us, false) && mg.rookAtHome(false) {
		moves = mg.queensideCastle(king, moves)
	}
	return moves
}

func (mg *moveGen) rookAtHome(kingside bool) bool {
	return mg.board.At(chess.RookHome(mg.us, kingside)) == chess.MakePiece(mg.us, chess.Rook)
}

// kingsideCastle needs both squares between king and rook empty and unattacked.
func (mg *moveGen) kingsideCastle(king chess.Square, moves []chess.Move) []chess.Move {
	f := chess.Square{Row: king.Row, Col: king.Col + 1}
	g := chess.Square{Row: king.Row, Col: king.Col + 2}
	if !mg.board.At(f).IsEmpty() || !mg.board.At(g).IsEmpty() {
		return moves
	}
	if squareAttacked(mg.board, f, mg.us) || squareAttacked(mg.board, g, mg.us) {
		return moves
	}
	return append(moves, chess.NewCastleMove(king, g, mg.board))
}

// queensideCastle needs three empty squares; only the two the king crosses
// must be unattacked.
func (mg *moveGen) queensideCastle(king chess.Square, moves []chess.Move) []chess.Move {
	d := chess.Square{Row: king.Row, Col: king.Col - 1}
	c := chess.Square{Row: king.Row, Col: king.Col - 2}
	b := chess.Square{Row: king.Row, Col: king.Col - 3}
	if !mg.board.At(d).IsEmpty() || !mg.board.At(c).IsEmpty() || !mg.board.At(b).IsEmpty() {
		return moves
	}
	if squareAttacked(mg.board, d, mg.us) || squareAttacked(mg.board, c, mg.us) {
		return moves
	}
	return append(moves, chess.NewCastleMove(king, c, mg.board))
}
