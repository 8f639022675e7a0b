package engine

import "github.com/lgbarn/chessrules/internal/chess"

// HasInsufficientMaterial reports positions where neither side can mate:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func (g *GameState) HasInsufficientMaterial() bool {
	return hasInsufficientMaterial(&g.board)
}

func hasInsufficientMaterial(board *chess.Board) bool {
	var minors [2][]chess.Kind
	var bishopOnLight [2]bool

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board[row][col]
			if p.IsEmpty() || p.Kind() == chess.King {
				continue
			}

			switch p.Kind() {
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			case chess.Bishop:
				bishopOnLight[p.Colour()] = isLightSquare(row, col)
			}
			minors[p.Colour()] = append(minors[p.Colour()], p.Kind())
		}
	}

	white, black := minors[chess.White], minors[chess.Black]
	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white)+len(black) == 1:
		return true
	case len(white) == 1 && len(black) == 1:
		return white[0] == chess.Bishop && black[0] == chess.Bishop &&
			bishopOnLight[chess.White] == bishopOnLight[chess.Black]
	}
	return false
}

// isLightSquare reports whether the square at row, col is light. a8 (row 0,
// col 0) is light.
func isLightSquare(row, col int) bool {
	return (row+col)%2 == 0
}
