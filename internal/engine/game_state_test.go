package engine_test

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/testutil"
)

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestNewGame(t *testing.T) {
	g := engine.NewGame()

	testutil.AssertEqual(t, g.ToMove(), chess.White)
	testutil.AssertTrue(t, g.WhiteToMove())
	testutil.AssertEqual(t, g.CastleRights(), chess.AllCastleRights())
	testutil.AssertEqual(t, g.EnPassantSquare(), chess.NoSquare)
	testutil.AssertEqual(t, g.KingSquare(chess.White), testutil.MustSquare(t, "e1"))
	testutil.AssertEqual(t, g.KingSquare(chess.Black), testutil.MustSquare(t, "e8"))
	testutil.AssertEqual(t, g.Ply(), 0)
	testutil.AssertEqual(t, g.FEN(), engine.InitialFEN)
	testutil.AssertEqual(t, g.Board(), *chess.NewInitialBoard())
}

func TestInitialLegalMoves(t *testing.T) {
	g := engine.NewGame()
	moves := g.LegalMoves()

	testutil.AssertEqual(t, len(moves), 20)
	testutil.AssertEqual(t, g.Status(), engine.Ongoing)
	testutil.AssertFalse(t, g.InCheck())

	// Row-major from the eighth rank down: pawns first, then knights.
	want := []string{
		"a3", "a4", "b3", "b4", "c3", "c4", "d3", "d4",
		"e3", "e4", "f3", "f4", "g3", "g4", "h3", "h4",
		"Na3", "Nc3", "Nf3", "Nh3",
	}
	testutil.AssertEqual(t, testutil.Notations(moves), want)
}

func TestFoolsMate(t *testing.T) {
	g := engine.NewGame()
	testutil.MustPlay(t, g, "f2f3", "e7e5", "g2g4", "d8h4")

	testutil.AssertEqual(t, len(g.LegalMoves()), 0)
	testutil.AssertTrue(t, g.Checkmate(), "checkmate flag")
	testutil.AssertFalse(t, g.Stalemate(), "stalemate flag")
	testutil.AssertTrue(t, g.InCheck())
	testutil.AssertEqual(t, g.Status(), engine.Checkmate)

	g.Undo()
	testutil.AssertFalse(t, g.Checkmate(), "Undo clears checkmate")
	testutil.AssertEqual(t, g.Status(), engine.Ongoing)
}

func TestStalemate(t *testing.T) {
	g := testutil.MustGame(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")

	testutil.AssertEqual(t, len(g.LegalMoves()), 0)
	testutil.AssertTrue(t, g.Stalemate(), "stalemate flag")
	testutil.AssertFalse(t, g.Checkmate(), "checkmate flag")
	testutil.AssertFalse(t, g.InCheck())
	testutil.AssertEqual(t, g.Status(), engine.Stalemate)
	testutil.AssertFalse(t, g.HasLegalMoves())
}

func TestEnPassantWindow(t *testing.T) {
	g := engine.NewGame()
	testutil.MustPlay(t, g, "e2e4", "a7a6", "e4e5", "d7d5")

	testutil.AssertEqual(t, g.EnPassantSquare(), testutil.MustSquare(t, "d6"))
	moves := testutil.UCIs(g.LegalMoves())
	testutil.AssertTrue(t, contains(moves, "e5d6"), "en passant available right after d7d5")

	// Capture and check the victim is gone.
	testutil.MustPlay(t, g, "e5d6")
	last, ok := g.LastMove()
	testutil.AssertTrue(t, ok)
	testutil.AssertTrue(t, last.EnPassant)
	testutil.AssertEqual(t, last.Notation(), "exd6 e.p.")
	victim, err := g.PieceAt(testutil.MustSquare(t, "d5"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, victim, chess.Empty)
	pawn, _ := g.PieceAt(testutil.MustSquare(t, "d6"))
	testutil.AssertEqual(t, pawn, chess.W(chess.Pawn))

	// Undo restores the victim and the window.
	g.Undo()
	victim, _ = g.PieceAt(testutil.MustSquare(t, "d5"))
	testutil.AssertEqual(t, victim, chess.B(chess.Pawn))
	testutil.AssertEqual(t, g.EnPassantSquare(), testutil.MustSquare(t, "d6"))

	// One ply later the window has closed.
	testutil.MustPlay(t, g, "h2h3", "h7h6")
	moves = testutil.UCIs(g.LegalMoves())
	testutil.AssertFalse(t, contains(moves, "e5d6"), "en passant after an intervening move")
}

func TestEnPassantRankPin(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		wantEP  bool
		wantLen int
	}{
		{"rook behind both pawns", "8/8/8/KPp4r/8/8/8/7k w - c6 0 1", false, 4},
		{"queen behind both pawns", "8/8/8/KPp4q/8/8/8/7k w - c6 0 1", false, -1},
		{"blocker between", "8/8/8/KPp2n1r/8/8/8/7k w - c6 0 1", true, -1},
		{"no attacker", "8/8/8/KPp5/8/8/8/7k w - c6 0 1", true, -1},
		{"own piece beyond", "8/8/8/KPp1R2r/8/8/8/7k w - c6 0 1", true, -1},
		{"king on the far side", "8/8/8/r1pPK3/8/8/8/7k w - c6 0 1", false, -1},
		{"diagonal opened through victim", "k7/b7/8/2pP4/8/8/8/6K1 w - c6 0 1", false, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustGame(t, tt.fen)
			moves := testutil.UCIs(g.LegalMoves())

			var epMove string
			for _, m := range g.LegalMoves() {
				if m.EnPassant {
					epMove = m.UCI()
				}
			}
			testutil.AssertEqual(t, epMove != "", tt.wantEP, "en passant present in %v", moves)
			if tt.wantLen >= 0 {
				testutil.AssertEqual(t, len(moves), tt.wantLen, "moves %v", moves)
			}
		})
	}
}

func TestEnPassantCapturesCheckingPawn(t *testing.T) {
	g := testutil.MustGame(t, "k7/3p4/8/4P3/4K3/8/8/8 b - - 0 1")
	testutil.MustPlay(t, g, "d7d5")

	testutil.AssertTrue(t, g.InCheck(), "d5 pawn gives check")
	moves := testutil.UCIs(g.LegalMoves())
	testutil.AssertTrue(t, contains(moves, "e5d6"), "en passant removes the checker: %v", moves)
	testutil.AssertTrue(t, contains(moves, "e4d5"), "king takes the checker: %v", moves)
	testutil.AssertFalse(t, contains(moves, "e5e6"), "pawn push ignores the check: %v", moves)
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	g := testutil.MustGame(t, "4k3/8/8/8/8/3n4/1B6/r3K3 w - - 0 1")
	moves := g.LegalMoves()

	testutil.AssertTrue(t, g.InCheck())
	for _, m := range moves {
		testutil.AssertEqual(t, m.Moved.Kind(), chess.King, "move %s", m.UCI())
	}
	testutil.AssertSameElements(t, testutil.UCIs(moves), []string{"e1d2", "e1e2"})
}

func TestSingleCheckEvasions(t *testing.T) {
	// Rook on e8 checks down the e-file; the knight can interpose on e2 or e4.
	g := testutil.MustGame(t, "4r1k1/8/8/8/8/2N5/8/4K3 w - - 0 1")
	moves := testutil.UCIs(g.LegalMoves())

	testutil.AssertSameElements(t, moves, []string{
		"c3e2", "c3e4", // interpose
		"e1d1", "e1d2", "e1f1", "e1f2", // step off the file
	})
}

func TestPinnedPieceStaysOnLine(t *testing.T) {
	g := testutil.MustGame(t, "4r1k1/8/8/8/8/8/4R3/4K3 w - - 0 1")
	moves := testutil.UCIs(g.LegalMoves())

	// The rook may slide along the pin line, including capturing the pinner.
	for _, m := range []string{"e2e3", "e2e7", "e2e8"} {
		testutil.AssertTrue(t, contains(moves, m), "pinned rook move %s in %v", m, moves)
	}
	for _, m := range []string{"e2d2", "e2a2", "e2h2"} {
		testutil.AssertFalse(t, contains(moves, m), "pinned rook left the line with %s", m)
	}
}

func TestCastling(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want []string
		deny []string
	}{
		{"both wings", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"e1g1", "e1c1"}, nil},
		{"black both wings", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", []string{"e8g8", "e8c8"}, nil},
		{"transit square attacked", "r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1", []string{"e1c1"}, []string{"e1g1"}},
		{"b-file attack does not stop queenside", "r3k2r/8/8/8/8/8/1r6/R3K2R w KQkq - 0 1", []string{"e1c1", "e1g1"}, nil},
		{"b-file piece blocks queenside", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", []string{"e1g1"}, []string{"e1c1"}},
		{"in check", "r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1", nil, []string{"e1g1", "e1c1"}},
		{"no rights", "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1", nil, []string{"e1g1", "e1c1"}},
		{"rook missing", "r3k2r/8/8/8/8/8/8/4K2R w KQkq - 0 1", []string{"e1g1"}, []string{"e1c1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustGame(t, tt.fen)
			moves := testutil.UCIs(g.LegalMoves())
			for _, m := range tt.want {
				testutil.AssertTrue(t, contains(moves, m), "want %s in %v", m, moves)
			}
			for _, m := range tt.deny {
				testutil.AssertFalse(t, contains(moves, m), "unexpected %s in %v", m, moves)
			}
		})
	}
}

func TestCastleMovesRook(t *testing.T) {
	g := testutil.MustGame(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	testutil.MustPlay(t, g, "0-0", "0-0-0")

	testutil.AssertEqual(t, g.FEN(), "2kr3r/8/8/8/8/8/8/R4RK1 w - - 2 2")
	testutil.AssertEqual(t, g.KingSquare(chess.White), testutil.MustSquare(t, "g1"))
	testutil.AssertEqual(t, g.KingSquare(chess.Black), testutil.MustSquare(t, "c8"))

	g.Undo()
	g.Undo()
	testutil.AssertEqual(t, g.FEN(), "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
}

func TestCastlingRightsMonotonic(t *testing.T) {
	g := testutil.MustGame(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	testutil.MustPlay(t, g, "h1h2", "a8a7", "h2h1", "a7a8")
	testutil.AssertEqual(t, g.CastleRights().String(), "Qk", "moving back does not restore rights")
	moves := testutil.UCIs(g.LegalMoves())
	testutil.AssertFalse(t, contains(moves, "e1g1"))

	for i := 0; i < 4; i++ {
		g.Undo()
	}
	testutil.AssertEqual(t, g.CastleRights(), chess.AllCastleRights(), "undo restores the snapshot")
}

func TestCapturedRookRevokesRight(t *testing.T) {
	g := testutil.MustGame(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	testutil.MustPlay(t, g, "a1a8")

	testutil.AssertEqual(t, g.CastleRights().String(), "Kk")
	testutil.AssertTrue(t, g.InCheck())

	g.Undo()
	testutil.AssertEqual(t, g.CastleRights(), chess.AllCastleRights(), "undo restores the captured rook's right")
	testutil.AssertEqual(t, g.FEN(), "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
}

func TestRookReturningToCornerDoesNotRestoreRight(t *testing.T) {
	const start = "r2nk2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	g := testutil.MustGame(t, start)

	testutil.MustPlay(t, g, "a1a8")
	testutil.AssertFalse(t, g.CastleRights().BlackQueenside, "capture on a8 revokes black's queenside right")

	// The other black rook travels to the empty corner.
	testutil.MustPlay(t, g, "h8h7", "a8a1", "h7a7", "h1h2", "a7a8")
	corner, err := g.PieceAt(testutil.MustSquare(t, "a8"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, corner, chess.B(chess.Rook))
	testutil.AssertFalse(t, g.CastleRights().BlackQueenside, "a rook on a8 does not restore the right")

	for g.Ply() > 0 {
		g.Undo()
	}
	testutil.AssertEqual(t, g.CastleRights(), chess.AllCastleRights())
	testutil.AssertEqual(t, g.FEN(), start)
}

func TestKingMoveRevokesBothRights(t *testing.T) {
	g := testutil.MustGame(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	testutil.MustPlay(t, g, "e1e2")
	testutil.AssertEqual(t, g.CastleRights().String(), "kq")
	testutil.AssertEqual(t, g.KingSquare(chess.White), testutil.MustSquare(t, "e2"))
}

func TestPromotionToQueen(t *testing.T) {
	g := testutil.MustGame(t, "8/P6k/8/8/8/8/8/K7 w - - 0 1")
	moves := g.LegalMoves()

	var promo chess.Move
	for _, m := range moves {
		if m.Promotion {
			promo = m
		}
	}
	testutil.AssertEqual(t, promo.UCI(), "a7a8q")
	testutil.AssertEqual(t, promo.Notation(), "a8Q")

	g.Apply(promo)
	p, _ := g.PieceAt(testutil.MustSquare(t, "a8"))
	testutil.AssertEqual(t, p, chess.W(chess.Queen))

	g.Undo()
	p, _ = g.PieceAt(testutil.MustSquare(t, "a7"))
	testutil.AssertEqual(t, p, chess.W(chess.Pawn))
	p, _ = g.PieceAt(testutil.MustSquare(t, "a8"))
	testutil.AssertEqual(t, p, chess.Empty)
}

func TestMakeMoveRejectsIllegal(t *testing.T) {
	g := testutil.MustGame(t, "4r1k1/8/8/8/8/8/4B3/4K3 w - - 0 1")
	before := g.FEN()
	board := g.Board()

	// Pinned bishop leaving the file.
	m := chess.NewMove(testutil.MustSquare(t, "e2"), testutil.MustSquare(t, "d3"), &board)
	err := g.MakeMove(m)

	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	testutil.AssertEqual(t, g.FEN(), before, "state untouched")
	testutil.AssertEqual(t, g.Ply(), 0)

	var moveErr *errors.MoveError
	testutil.AssertTrue(t, stderrors.As(err, &moveErr))
	testutil.AssertEqual(t, moveErr.MoveText, "e2d3")

	// A legal move goes through.
	ok := chess.NewMove(testutil.MustSquare(t, "e1"), testutil.MustSquare(t, "d1"), &board)
	testutil.AssertNoError(t, g.MakeMove(ok))
	testutil.AssertEqual(t, g.Ply(), 1)
}

func TestUndoOnEmptyHistory(t *testing.T) {
	g := engine.NewGame()
	g.Undo()

	testutil.AssertEqual(t, g.FEN(), engine.InitialFEN)
	testutil.AssertEqual(t, g.Ply(), 0)
	_, ok := g.LastMove()
	testutil.AssertFalse(t, ok)
}

func TestMoveLog(t *testing.T) {
	g := engine.NewGame()
	testutil.MustPlay(t, g, "e2e4", "e7e5", "g1f3")

	testutil.AssertEqual(t, testutil.UCIs(g.MoveLog()), []string{"e2e4", "e7e5", "g1f3"})
	g.Undo()
	testutil.AssertEqual(t, testutil.UCIs(g.MoveLog()), []string{"e2e4", "e7e5"})
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantErr error
	}{
		{"long algebraic", "e2e4", "e2e4", nil},
		{"notation", "Nf3", "g1f3", nil},
		{"pawn notation", "d4", "d2d4", nil},
		{"illegal squares", "e2e5", "", errors.ErrIllegalMove},
		{"garbage", "hello", "", errors.ErrInvalidMoveText},
		{"off board", "z9z8", "", errors.ErrInvalidMoveText},
		{"empty", "", "", errors.ErrInvalidMoveText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := engine.NewGame()
			m, err := g.ParseMove(tt.text)
			if tt.wantErr != nil {
				testutil.AssertErrorIs(t, err, tt.wantErr)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, m.UCI(), tt.want)
		})
	}
}

func TestPlayStopsAtFirstError(t *testing.T) {
	g := engine.NewGame()
	err := g.Play("e2e4", "e7e5", "e1e3", "d2d4")

	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	testutil.AssertContains(t, err.Error(), "move 3 of 4")
	testutil.AssertEqual(t, g.Ply(), 2)
}

func TestOutOfRange(t *testing.T) {
	g := engine.NewGame()
	off := chess.Square{Row: 8, Col: 0}

	_, err := g.PieceAt(off)
	testutil.AssertErrorIs(t, err, errors.ErrOutOfRange)

	_, err = g.SquareAttacked(off)
	testutil.AssertErrorIs(t, err, errors.ErrOutOfRange)

	_, err = g.SquareAttacked(chess.Square{Row: 0, Col: -1})
	testutil.AssertErrorIs(t, err, errors.ErrOutOfRange)
}

func TestSquareAttacked(t *testing.T) {
	g := engine.NewGame()

	tests := []struct {
		square string
		want   bool
	}{
		{"e3", false},
		{"e6", true},  // black pawns d7/f7
		{"a6", true},  // knight b8
		{"e4", false}, // nothing reaches rank 4
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			got, err := g.SquareAttacked(testutil.MustSquare(t, tt.square))
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestHashFollowsPosition(t *testing.T) {
	// Same position by transposition hashes the same.
	a := engine.NewGame()
	testutil.MustPlay(t, a, "g1f3", "g8f6", "b1c3")
	b := engine.NewGame()
	testutil.MustPlay(t, b, "b1c3", "g8f6", "g1f3")
	testutil.AssertEqual(t, a.Hash(), b.Hash())

	start := engine.NewGame().Hash()
	a.Undo()
	a.Undo()
	a.Undo()
	testutil.AssertEqual(t, a.Hash(), start)
}

func TestStatusString(t *testing.T) {
	testutil.AssertEqual(t, engine.Ongoing.String(), "Ongoing")
	testutil.AssertEqual(t, engine.Checkmate.String(), "Checkmate")
	testutil.AssertEqual(t, engine.Stalemate.String(), "Stalemate")
}
