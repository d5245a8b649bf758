package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// Status describes the position from the side to move's point of view.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "unknown"
}

// IsOver returns true for checkmate and stalemate.
func (s Status) IsOver() bool {
	return s == Checkmate || s == Stalemate
}

// Status works out whether the side to move is in check and whether it has
// any legal move left.
func (g *GameState) Status() Status {
	inCheck := g.InCheck()
	hasMoves := g.HasValidMoves()
	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case !hasMoves:
		return Stalemate
	case inCheck:
		return Check
	}
	return Ongoing
}

// IsCheckmate returns true if the side to move is in check with no legal move.
func (g *GameState) IsCheckmate() bool {
	return g.InCheck() && !g.HasValidMoves()
}

// IsStalemate returns true if the side to move is not in check but has no
// legal move.
func (g *GameState) IsStalemate() bool {
	return !g.InCheck() && !g.HasValidMoves()
}

// HasInsufficientMaterial returns true if neither side can ever mate:
//   - K vs K
//   - K+B vs K
//   - K+N vs K
//   - K+B vs K+B with both bishops on the same colour of square
func HasInsufficientMaterial(board *chess.Board) bool {
	var minors [2][]chess.Kind
	var bishopOnLight [2]bool

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece == chess.Empty {
				continue
			}

			kind := piece.Kind()
			switch kind {
			case chess.King:
				continue
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			}

			colour := piece.Colour()
			minors[colour] = append(minors[colour], kind)
			if kind == chess.Bishop {
				bishopOnLight[colour] = isLightSquare(row, col)
			}
		}
	}

	white, black := minors[chess.White], minors[chess.Black]
	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white) == 0 && len(black) == 1:
		return true // Lone bishop or knight
	case len(black) == 0 && len(white) == 1:
		return true
	case len(white) == 1 && len(black) == 1:
		return white[0] == chess.Bishop && black[0] == chess.Bishop &&
			bishopOnLight[chess.White] == bishopOnLight[chess.Black]
	}
	return false
}

// isLightSquare returns true for light squares; a8 (row 0, col 0) is light.
func isLightSquare(row, col int) bool {
	return (row+col)%2 == 0
}
