package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/engine"
)

var (
	lightSquare = color.New(color.BgHiWhite)
	darkSquare  = color.New(color.BgGreen)
	whitePiece  = color.New(color.FgHiWhite, color.Bold)
	blackPiece  = color.New(color.FgBlack, color.Bold)
	lastMove    = color.New(color.BgYellow)
)

// renderBoard draws the board with rank 8 at the top. Without colour each
// square is a FEN letter or '.', and the squares of the last move are left
// unmarked.
func renderBoard(w io.Writer, g *engine.GameState, useColor bool) {
	board := g.Board()
	last, played := g.LastMove()

	for row := 0; row < chess.BoardSize; row++ {
		fmt.Fprintf(w, "%c ", '8'-row)
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Square{Row: row, Col: col}
			p := board.At(sq)
			if !useColor {
				fmt.Fprintf(w, "%c ", plainLetter(p))
				continue
			}

			bg := darkSquare
			if (row+col)%2 == 0 {
				bg = lightSquare
			}
			if played && (sq == last.From || sq == last.To) {
				bg = lastMove
			}
			fmt.Fprint(w, bg.Sprint(" "+pieceGlyph(p)+" "))
		}
		fmt.Fprintln(w)
	}

	if useColor {
		fmt.Fprintln(w, "   a  b  c  d  e  f  g  h")
	} else {
		fmt.Fprintln(w, "  a b c d e f g h")
	}
}

func plainLetter(p chess.Piece) byte {
	if p.IsEmpty() {
		return '.'
	}
	return p.FENLetter()
}

// pieceGlyph returns the coloured letter of p, or a space for an empty square.
func pieceGlyph(p chess.Piece) string {
	if p.IsEmpty() {
		return " "
	}
	letter := string(p.Kind().Letter())
	if p.Colour() == chess.White {
		return whitePiece.Sprint(letter)
	}
	return blackPiece.Sprint(letter)
}
