package engine

import "github.com/lgbarn/chessrules/internal/chess"

// pinTable maps a pinned piece's square to the direction from its king towards
// it. A table lives for a single legal-move query and is only read by the
// generators.
type pinTable map[chess.Square]chess.Direction

// checkRecord describes one piece giving check.
type checkRecord struct {
	from   chess.Square    // attacker square
	dir    chess.Direction // from the king towards the attacker, or the knight offset
	knight bool
}

// kingScan is the result of scanning outward from a king square.
type kingScan struct {
	inCheck bool
	pins    pinTable
	checks  []checkRecord
}

// doubleCheck reports whether two pieces give check at once.
func (s kingScan) doubleCheck() bool {
	return len(s.checks) > 1
}

// scanKing classifies every absolute pin and every check against side us,
// as if us's king stood on king. The king token of us is treated as absent
// wherever it actually stands, so the same scan answers "is this square safe
// for the king" without moving anything.
func scanKing(b *chess.Board, king chess.Square, us chess.Colour) kingScan {
	var scan kingScan
	enemy := us.Opposite()
	ownKing := chess.MakePiece(us, chess.King)

	for _, dir := range chess.CompassDirections {
		possiblePin := chess.NoSquare
		distance := 0
		for sq := king.Add(dir); sq.Valid(); sq = sq.Add(dir) {
			distance++
			p := b.At(sq)
			if p.IsEmpty() || p == ownKing {
				continue
			}
			if p.Is(us) {
				if possiblePin == chess.NoSquare {
					possiblePin = sq
					continue
				}
				// Two friendly pieces: nothing along this ray.
				break
			}
			if attacksAlongRay(p.Kind(), dir, distance, us) {
				if possiblePin == chess.NoSquare {
					scan.inCheck = true
					scan.checks = append(scan.checks, checkRecord{from: sq, dir: dir})
				} else {
					if scan.pins == nil {
						scan.pins = make(pinTable)
					}
					scan.pins[possiblePin] = dir
				}
			}
			break
		}
	}

	enemyKnight := chess.MakePiece(enemy, chess.Knight)
	for _, offset := range chess.KnightOffsets {
		sq := king.Add(offset)
		if sq.Valid() && b.At(sq) == enemyKnight {
			scan.inCheck = true
			scan.checks = append(scan.checks, checkRecord{from: sq, dir: offset, knight: true})
		}
	}

	return scan
}

// attacksAlongRay reports whether an enemy piece of the given kind, found
// distance squares from us's king along dir, attacks the king.
func attacksAlongRay(kind chess.Kind, dir chess.Direction, distance int, us chess.Colour) bool {
	switch kind {
	case chess.Queen:
		return true
	case chess.Rook:
		return !dir.Diagonal()
	case chess.Bishop:
		return dir.Diagonal()
	case chess.King:
		return distance == 1
	case chess.Pawn:
		// An enemy pawn captures towards us, so it must sit one step ahead of
		// the king in our own advance direction.
		return distance == 1 && dir.Diagonal() && dir.DRow == us.PawnDirection()
	}
	return false
}

// squareAttacked reports whether the opponent of us attacks sq.
func squareAttacked(b *chess.Board, sq chess.Square, us chess.Colour) bool {
	return scanKing(b, sq, us).inCheck
}

// blockingSquares returns the squares that resolve a single check: the
// attacker's square and, for a sliding attacker, every square between it and
// the king.
func blockingSquares(king chess.Square, check checkRecord) []chess.Square {
	if check.knight {
		return []chess.Square{check.from}
	}
	var squares []chess.Square
	for sq := king.Add(check.dir); sq.Valid(); sq = sq.Add(check.dir) {
		squares = append(squares, sq)
		if sq == check.from {
			break
		}
	}
	return squares
}
