package engine

import "github.com/lgbarn/chessrules/internal/chess"

// pawnMoves adds the advances and captures of the pawn on sq. A pinned pawn
// may only move along its pin line.
func (mg *moveGen) pawnMoves(sq chess.Square, moves []chess.Move) []chess.Move {
	pinDir, pinned := mg.pins[sq]
	step := mg.us.PawnDirection()
	startRow := mg.us.HomeRow() + step

	forward := chess.Direction{DRow: step}
	one := sq.Add(forward)
	if one.Valid() && mg.board.At(one).IsEmpty() && (!pinned || pinDir.Colinear(forward)) {
		moves = append(moves, chess.NewMove(sq, one, mg.board))
		two := one.Add(forward)
		if sq.Row == startRow && mg.board.At(two).IsEmpty() {
			moves = append(moves, chess.NewMove(sq, two, mg.board))
		}
	}

	for _, dc := range []int{-1, 1} {
		capture := chess.Direction{DRow: step, DCol: dc}
		to := sq.Add(capture)
		if !to.Valid() || (pinned && !pinDir.Colinear(capture)) {
			continue
		}
		if mg.board.At(to).Is(mg.us.Opposite()) {
			moves = append(moves, chess.NewMove(sq, to, mg.board))
		}
		if to == mg.enPassant && mg.enPassantAllowed(sq, to) {
			moves = append(moves, chess.NewEnPassantMove(sq, to, mg.board))
		}
	}
	return moves
}

// enPassantAllowed rejects an en-passant capture from -> to that would expose
// the king once both pawns leave their squares.
func (mg *moveGen) enPassantAllowed(from, to chess.Square) bool {
	victim := chess.Square{Row: from.Row, Col: to.Col}
	if mg.board.At(victim) != chess.MakePiece(mg.us.Opposite(), chess.Pawn) {
		return false
	}
	if mg.king.Row == from.Row && mg.rankOpensOnKing(from, victim) {
		return false
	}

	// Any other line opened through the victim's square, e.g. a diagonal.
	probe := *mg.board
	probe.Set(to, probe.At(from))
	probe.Set(from, chess.Empty)
	probe.Set(victim, chess.Empty)
	return !squareAttacked(&probe, mg.king, mg.us)
}

// rankOpensOnKing handles a king on the capturing pawn's rank: with both pawns
// gone, an enemy rook or queen further along the rank would give check unless
// some other piece stands in between.
func (mg *moveGen) rankOpensOnKing(from, victim chess.Square) bool {
	row := from.Row
	lo, hi := from.Col, victim.Col
	if lo > hi {
		lo, hi = hi, lo
	}

	var insideFrom, insideTo, outsideStart, outsideStep int
	if mg.king.Col < lo {
		insideFrom, insideTo = mg.king.Col+1, lo-1
		outsideStart, outsideStep = hi+1, 1
	} else {
		insideFrom, insideTo = hi+1, mg.king.Col-1
		outsideStart, outsideStep = lo-1, -1
	}

	for col := insideFrom; col <= insideTo; col++ {
		if !mg.board[row][col].IsEmpty() {
			return false
		}
	}

	enemy := mg.us.Opposite()
	for col := outsideStart; col >= 0 && col < chess.BoardSize; col += outsideStep {
		p := mg.board[row][col]
		if p.IsEmpty() {
			continue
		}
		return p.Is(enemy) && (p.Kind() == chess.Rook || p.Kind() == chess.Queen)
	}
	return false
}
