package chess

// CastleRights records which castling options remain available.
// A right, once revoked, is never granted again during a game; going back to an
// earlier state is done by restoring an earlier snapshot, not by re-granting.
type CastleRights struct {
	WhiteKingside  bool
	BlackKingside  bool
	WhiteQueenside bool
	BlackQueenside bool
}

// AllCastleRights returns the rights of the standard starting position.
func AllCastleRights() CastleRights {
	return CastleRights{
		WhiteKingside:  true,
		BlackKingside:  true,
		WhiteQueenside: true,
		BlackQueenside: true,
	}
}

// Has reports whether colour may still castle on the given wing.
func (r CastleRights) Has(colour Colour, kingside bool) bool {
	switch {
	case colour == White && kingside:
		return r.WhiteKingside
	case colour == White:
		return r.WhiteQueenside
	case kingside:
		return r.BlackKingside
	default:
		return r.BlackQueenside
	}
}

// Revoke clears one right.
func (r *CastleRights) Revoke(colour Colour, kingside bool) {
	switch {
	case colour == White && kingside:
		r.WhiteKingside = false
	case colour == White:
		r.WhiteQueenside = false
	case kingside:
		r.BlackKingside = false
	default:
		r.BlackQueenside = false
	}
}

// RevokeAll clears both rights of colour.
func (r *CastleRights) RevokeAll(colour Colour) {
	r.Revoke(colour, true)
	r.Revoke(colour, false)
}

// Index packs the rights into 0..15 (K=1, Q=2, k=4, q=8).
func (r CastleRights) Index() int {
	i := 0
	if r.WhiteKingside {
		i |= 1
	}
	if r.WhiteQueenside {
		i |= 2
	}
	if r.BlackKingside {
		i |= 4
	}
	if r.BlackQueenside {
		i |= 8
	}
	return i
}

// String returns the FEN castling field, e.g. "KQkq" or "-".
func (r CastleRights) String() string {
	var s []byte
	if r.WhiteKingside {
		s = append(s, 'K')
	}
	if r.WhiteQueenside {
		s = append(s, 'Q')
	}
	if r.BlackKingside {
		s = append(s, 'k')
	}
	if r.BlackQueenside {
		s = append(s, 'q')
	}
	if len(s) == 0 {
		return "-"
	}
	return string(s)
}

// RookHome returns the corner square of colour's rook for the given wing.
func RookHome(colour Colour, kingside bool) Square {
	col := 0
	if kingside {
		col = BoardSize - 1
	}
	return Square{Row: colour.HomeRow(), Col: col}
}

// KingHome returns colour's king starting square.
func KingHome(colour Colour) Square {
	return Square{Row: colour.HomeRow(), Col: 4}
}
