package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// AllPossibleMoves returns the pseudo-legal moves of the side to move,
// ignoring checks. Squares are visited row by row from row 0, column 0,
// and each piece's moves are appended in generator order, so identical
// positions always give identical lists.
func (g *GameState) AllPossibleMoves() []chess.Move {
	moves := make([]chess.Move, 0, 64)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := g.board.Squares[row][col]
			if !piece.Is(g.toMove) {
				continue
			}
			moves = g.pieceMoves(chess.Square{Row: row, Col: col}, piece, moves)
		}
	}
	return moves
}

// MovesFrom returns the pseudo-legal moves of whatever piece stands on
// from, whichever side is to move. An empty square has none.
func (g *GameState) MovesFrom(from chess.Square) []chess.Move {
	piece := g.board.At(from)
	if piece == chess.Empty {
		return nil
	}
	return g.pieceMoves(from, piece, nil)
}

// pieceMoves dispatches on the piece kind and appends its moves.
func (g *GameState) pieceMoves(from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move {
	colour := piece.Colour()
	switch piece.Kind() {
	case chess.Pawn:
		return g.pawnMoves(from, colour, moves)
	case chess.Rook:
		return g.rookMoves(from, colour, moves)
	case chess.Knight:
		return g.knightMoves(from, colour, moves)
	case chess.Bishop:
		return g.bishopMoves(from, colour, moves)
	case chess.Queen:
		return g.queenMoves(from, colour, moves)
	case chess.King:
		return g.kingMoves(from, colour, moves)
	}
	return moves
}

// pawnMoves appends single and double advances and diagonal captures.
// A pawn on the last row has nowhere to go, since promotion is not
// modelled.
func (g *GameState) pawnMoves(from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	dir := colour.Forward()

	if one, ok := from.Offset(dir, 0); ok && g.board.At(one) == chess.Empty {
		moves = append(moves, chess.NewMove(from, one, &g.board))
		if from.Row == colour.PawnStartRow() {
			// Both squares ahead must be free; one was checked above.
			two, _ := from.Offset(2*dir, 0)
			if g.board.At(two) == chess.Empty {
				moves = append(moves, chess.NewMove(from, two, &g.board))
			}
		}
	}

	for _, dc := range [...]int{-1, 1} {
		to, ok := from.Offset(dir, dc)
		if ok && g.board.At(to).Is(colour.Opposite()) {
			moves = append(moves, chess.NewMove(from, to, &g.board))
		}
	}
	return moves
}

func (g *GameState) rookMoves(from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	return g.slidingMoves(from, colour, straightDirs, moves)
}

func (g *GameState) bishopMoves(from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	return g.slidingMoves(from, colour, diagonalDirs, moves)
}

func (g *GameState) queenMoves(from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	return g.slidingMoves(from, colour, queenDirs, moves)
}

func (g *GameState) knightMoves(from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	return g.steppingMoves(from, colour, knightSteps, moves)
}

func (g *GameState) kingMoves(from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	return g.steppingMoves(from, colour, kingSteps, moves)
}

// slidingMoves walks each direction until the edge, stopping before a
// friendly piece and on an enemy piece.
func (g *GameState) slidingMoves(from chess.Square, colour chess.Colour, dirs []offset, moves []chess.Move) []chess.Move {
	for _, dir := range dirs {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			target := g.board.At(to)
			if target != chess.Empty {
				if !target.Is(colour) {
					moves = append(moves, chess.NewMove(from, to, &g.board))
				}
				break // Blocked
			}
			moves = append(moves, chess.NewMove(from, to, &g.board))
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// steppingMoves tries each fixed step once.
func (g *GameState) steppingMoves(from chess.Square, colour chess.Colour, steps []offset, moves []chess.Move) []chess.Move {
	for _, step := range steps {
		to, ok := from.Offset(step[0], step[1])
		if ok && !g.board.At(to).Is(colour) {
			moves = append(moves, chess.NewMove(from, to, &g.board))
		}
	}
	return moves
}
