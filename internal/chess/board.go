package chess

import (
	"strings"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Board is an 8x8 grid of pieces indexed [row][col]. Every square holds
// either a piece or Empty. Board is a value; assigning it copies the grid.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// backRank lists the pieces of a back rank from the a-file to the h-file.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = B(backRank[col])
		b.Squares[1][col] = B(Pawn)
		b.Squares[6][col] = W(Pawn)
		b.Squares[7][col] = W(backRank[col])
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Piece{}
}

// At returns the piece on sq. An off-board square is a programmer error
// and panics with an error wrapping ErrInvalidSquare.
func (b *Board) At(sq Square) Piece {
	mustBeValid(sq)
	return b.Squares[sq.Row][sq.Col]
}

// Get returns the piece at row, col, with the same checks as At.
func (b *Board) Get(row, col int) Piece {
	return b.At(Square{Row: row, Col: col})
}

// Set places a piece on sq, with the same checks as At.
func (b *Board) Set(sq Square, piece Piece) {
	mustBeValid(sq)
	b.Squares[sq.Row][sq.Col] = piece
}

func mustBeValid(sq Square) {
	if !sq.Valid() {
		panic(&errors.SquareError{Row: sq.Row, Col: sq.Col})
	}
}

// FindKing scans the board for the king of the given colour.
// NoSquare is returned if there is none.
func (b *Board) FindKing(colour Colour) Square {
	king := MakePiece(colour, King)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == king {
				return Square{Row: row, Col: col}
			}
		}
	}
	return NoSquare
}

// Count returns how many of the given piece are on the board.
func (b *Board) Count(piece Piece) int {
	n := 0
	for row := range b.Squares {
		for _, p := range b.Squares[row] {
			if p == piece {
				n++
			}
		}
	}
	return n
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Equal reports whether both boards hold the same pieces on the same squares.
func (b *Board) Equal(other *Board) bool {
	return b.Squares == other.Squares
}

// String renders the board as eight lines of two character piece codes,
// row 0 first.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.Squares[row][col].Code())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
