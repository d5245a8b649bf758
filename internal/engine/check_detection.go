package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// InCheck returns true if the side to move's king is attacked.
// A side without a king is never in check.
func (g *GameState) InCheck() bool {
	return g.IsInCheck(g.toMove)
}

// IsInCheck returns true if the given colour's king is attacked.
func (g *GameState) IsInCheck(colour chess.Colour) bool {
	king := g.kings[colour]
	if !king.Valid() {
		return false
	}
	return g.IsSquareAttacked(king, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour attacks sq.
// Occupancy of sq itself does not matter.
func (g *GameState) IsSquareAttacked(sq chess.Square, byColour chess.Colour) bool {
	return isSquareAttacked(&g.board, sq, byColour)
}

// isSquareAttacked looks outwards from sq for each kind of attacker.
func isSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawns attack one row forward, so an attacker sits one row behind sq
	// from its own point of view.
	pawn := chess.MakePiece(byColour, chess.Pawn)
	for _, dc := range [...]int{-1, 1} {
		if from, ok := sq.Offset(-byColour.Forward(), dc); ok && board.At(from) == pawn {
			return true
		}
	}

	knight := chess.MakePiece(byColour, chess.Knight)
	for _, step := range knightSteps {
		if from, ok := sq.Offset(step[0], step[1]); ok && board.At(from) == knight {
			return true
		}
	}

	king := chess.MakePiece(byColour, chess.King)
	for _, step := range kingSteps {
		if from, ok := sq.Offset(step[0], step[1]); ok && board.At(from) == king {
			return true
		}
	}

	queen := chess.MakePiece(byColour, chess.Queen)
	if slidingAttacker(board, sq, diagonalDirs, chess.MakePiece(byColour, chess.Bishop), queen) {
		return true
	}
	return slidingAttacker(board, sq, straightDirs, chess.MakePiece(byColour, chess.Rook), queen)
}

// slidingAttacker reports whether the first piece met along any of dirs
// is one of the two given sliders.
func slidingAttacker(board *chess.Board, sq chess.Square, dirs []offset, slider, queen chess.Piece) bool {
	for _, dir := range dirs {
		from, ok := sq.Offset(dir[0], dir[1])
		for ok {
			piece := board.At(from)
			if piece != chess.Empty {
				if piece == slider || piece == queen {
					return true
				}
				break // Blocked
			}
			from, ok = from.Offset(dir[0], dir[1])
		}
	}
	return false
}
