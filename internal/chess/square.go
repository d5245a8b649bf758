package chess

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Square is a (row, column) board coordinate. Row 0 is rank 8 (Black's
// back rank) and column 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// NoSquare is used where a square is absent, e.g. a missing king.
var NoSquare = Square{Row: -1, Col: -1}

// NewSquare returns the square at row, col or an error wrapping
// ErrInvalidSquare if either coordinate is off the board.
func NewSquare(row, col int) (Square, error) {
	sq := Square{Row: row, Col: col}
	if !sq.Valid() {
		return NoSquare, &errors.SquareError{Row: row, Col: col}
	}
	return sq, nil
}

// MustSquare is NewSquare for coordinates known to be on the board.
// It panics otherwise.
func MustSquare(row, col int) Square {
	sq, err := NewSquare(row, col)
	if err != nil {
		panic(err)
	}
	return sq
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square dr rows and dc columns away and whether it
// is on the board.
func (s Square) Offset(dr, dc int) (Square, bool) {
	next := Square{Row: s.Row + dr, Col: s.Col + dc}
	return next, next.Valid()
}

// File returns the file letter, 'a' to 'h'.
func (s Square) File() byte {
	return byte(ColBase + s.Col)
}

// Rank returns the rank digit, '8' for row 0 down to '1' for row 7.
func (s Square) Rank() byte {
	return byte(RankBase + BoardSize - 1 - s.Row)
}

// String returns the algebraic label, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}

// RankFile returns the algebraic label of row, col: "a8" for (0, 0) and
// "h1" for (7, 7).
func RankFile(row, col int) string {
	return MustSquare(row, col).String()
}

// ParseSquare converts an algebraic label such as "e4" to a Square.
func ParseSquare(label string) (Square, error) {
	if len(label) != 2 {
		return NoSquare, fmt.Errorf("square %q: %w", label, errors.ErrInvalidSquare)
	}
	file, rank := label[0], label[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("square %q: %w", label, errors.ErrInvalidSquare)
	}
	return Square{Row: int('8' - rank), Col: int(file - 'a')}, nil
}
