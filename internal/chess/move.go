package chess

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Move is one transition between two squares. The moved and captured
// pieces are snapshots of the board taken when the move was built, so a
// move can only be undone against the position it was created from.
type Move struct {
	// Source and destination squares.
	From Square
	To   Square

	// The piece being moved.
	Moved Piece

	// The piece on the destination square (Empty if no capture).
	Captured Piece
}

// NewMove builds a move from two squares, snapshotting the moved and
// captured pieces from board. Both squares must be on the board.
func NewMove(from, to Square, board *Board) Move {
	return Move{
		From:     from,
		To:       to,
		Moved:    board.At(from),
		Captured: board.At(to),
	}
}

// Equal reports whether two moves share both endpoints. The pieces are
// not part of a move's identity: a candidate built from user input
// matches the generated move between the same squares.
func (m Move) Equal(other Move) bool {
	return m.From == other.From && m.To == other.To
}

// ID packs the endpoints into a single number, fromRow fromCol toRow toCol
// as decimal digits.
func (m Move) ID() int {
	return m.From.Row*1000 + m.From.Col*100 + m.To.Row*10 + m.To.Col
}

// IsCapture returns true if this move takes a piece.
func (m Move) IsCapture() bool {
	return m.Captured != Empty
}

// Notation returns the source and destination labels concatenated,
// e.g. "e2e4".
func (m Move) Notation() string {
	return m.From.String() + m.To.String()
}

// String returns the move's notation.
func (m Move) String() string {
	return m.Notation()
}

// ParseMoveText splits text of the form "e2e4" into its two squares.
func ParseMoveText(text string) (from, to Square, err error) {
	if len(text) != 4 {
		return NoSquare, NoSquare, fmt.Errorf("%q: %w", text, errors.ErrInvalidMoveText)
	}
	if from, err = ParseSquare(text[:2]); err != nil {
		return NoSquare, NoSquare, fmt.Errorf("%q: %w: %w", text, errors.ErrInvalidMoveText, err)
	}
	if to, err = ParseSquare(text[2:]); err != nil {
		return NoSquare, NoSquare, fmt.Errorf("%q: %w: %w", text, errors.ErrInvalidMoveText, err)
	}
	return from, to, nil
}
