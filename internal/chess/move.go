package chess

// Move describes one ply. It is a value type: once constructed it is never
// modified, and copies are independent.
type Move struct {
	// Origin and destination squares.
	From Square
	To   Square

	// The piece being moved.
	Moved Piece

	// The piece captured (Empty if no capture). For en passant this is the
	// enemy pawn even though the destination square is empty.
	Captured Piece

	// Special move flags.
	EnPassant bool
	Castle    bool
	Promotion bool
}

// NewMove builds an ordinary move, reading the moved and captured pieces from b.
// A pawn reaching the far rank is flagged as a promotion.
func NewMove(from, to Square, b *Board) Move {
	m := Move{
		From:     from,
		To:       to,
		Moved:    b.At(from),
		Captured: b.At(to),
	}
	if m.Moved.Kind() == Pawn {
		lastRow := 0
		if m.Moved.Colour() == Black {
			lastRow = BoardSize - 1
		}
		m.Promotion = to.Row == lastRow
	}
	return m
}

// NewEnPassantMove builds an en-passant capture from -> to.
func NewEnPassantMove(from, to Square, b *Board) Move {
	m := NewMove(from, to, b)
	m.EnPassant = true
	m.Captured = MakePiece(m.Moved.Colour().Opposite(), Pawn)
	return m
}

// NewCastleMove builds the king's part of a castling move.
func NewCastleMove(from, to Square, b *Board) Move {
	m := NewMove(from, to, b)
	m.Castle = true
	return m
}

// ID returns the move's equality key. It is derived from the two squares only,
// so two moves between the same squares compare equal whatever their flags.
func (m Move) ID() int {
	return m.From.Row*1000 + m.From.Col*100 + m.To.Row*10 + m.To.Col
}

// Equal reports whether m and other share the same equality key.
func (m Move) Equal(other Move) bool {
	return m.ID() == other.ID()
}

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool {
	return m.Captured != Empty
}

// Kingside reports whether a castling move goes towards the h-file.
func (m Move) Kingside() bool {
	return m.To.Col > m.From.Col
}

// EnPassantVictim returns the square of the pawn taken by an en-passant capture:
// the origin's row and the destination's column.
func (m Move) EnPassantVictim() Square {
	return Square{Row: m.From.Row, Col: m.To.Col}
}

// Notation returns the compact algebraic-like text of the move: piece letter,
// "x" for captures, destination, "0-0"/"0-0-0" for castling, a trailing "Q"
// for promotions and " e.p." after en-passant captures. No disambiguation or
// check suffix is produced.
func (m Move) Notation() string {
	if m.Castle {
		if m.Kingside() {
			return "0-0"
		}
		return "0-0-0"
	}

	var s []byte
	if m.Moved.Kind() == Pawn {
		if m.IsCapture() {
			s = append(s, m.From.File(), 'x')
		}
	} else {
		s = append(s, m.Moved.Kind().Letter())
		if m.IsCapture() {
			s = append(s, 'x')
		}
	}
	s = append(s, m.To.String()...)
	if m.Promotion {
		s = append(s, 'Q')
	}
	if m.EnPassant {
		s = append(s, " e.p."...)
	}
	return string(s)
}

// UCI returns the long algebraic form of the move, e.g. "e2e4" or "a7a8q".
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.Promotion {
		s += "q"
	}
	return s
}

// String returns the move's notation.
func (m Move) String() string {
	return m.Notation()
}
