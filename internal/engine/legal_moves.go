package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// ValidMoves returns the legal moves of the side to move: the pseudo-legal
// moves minus those that leave the mover's own king attacked. Each
// candidate is applied and reverted on the game itself, so the position is
// unchanged when ValidMoves returns. Order follows AllPossibleMoves.
func (g *GameState) ValidMoves() []chess.Move {
	moves := g.AllPossibleMoves()
	return g.filterLegal(g.toMove, moves)
}

// ValidMovesFrom returns the legal moves of the piece on from. It is empty
// when from does not hold a piece of the side to move.
func (g *GameState) ValidMovesFrom(from chess.Square) []chess.Move {
	piece := g.board.At(from)
	if !piece.Is(g.toMove) {
		return nil
	}
	return g.filterLegal(g.toMove, g.pieceMoves(from, piece, nil))
}

// filterLegal drops moves after which mover's king is attacked. It reuses
// the backing array of moves.
func (g *GameState) filterLegal(mover chess.Colour, moves []chess.Move) []chess.Move {
	legal := moves[:0]
	for _, move := range moves {
		g.apply(move)
		inCheck := g.IsInCheck(mover)
		g.revert()
		if !inCheck {
			legal = append(legal, move)
		}
	}
	return legal
}

// HasValidMoves returns true if the side to move has at least one legal
// move. It stops at the first one found.
func (g *GameState) HasValidMoves() bool {
	for _, move := range g.AllPossibleMoves() {
		g.apply(move)
		inCheck := g.IsInCheck(g.toMove.Opposite())
		g.revert()
		if !inCheck {
			return true
		}
	}
	return false
}

// Contains reports whether moves holds a move with the same endpoints as move.
func Contains(moves []chess.Move, move chess.Move) bool {
	return slices.IndexFunc(moves, move.Equal) >= 0
}

// FindMove returns the move in moves with the same endpoints as move.
func FindMove(moves []chess.Move, move chess.Move) (chess.Move, bool) {
	i := slices.IndexFunc(moves, move.Equal)
	if i < 0 {
		return chess.Move{}, false
	}
	return moves[i], true
}

// IsValidMove reports whether a move between the endpoints of move is legal.
func (g *GameState) IsValidMove(move chess.Move) bool {
	return Contains(g.ValidMoves(), move)
}

// TryMove builds the candidate from -> to against the current board and
// plays it if it is legal. The generated move is returned. Otherwise the
// game is unchanged and the error wraps ErrIllegalMove, or
// ErrInvalidSquare for off-board input.
func (g *GameState) TryMove(from, to chess.Square) (chess.Move, error) {
	for _, sq := range [...]chess.Square{from, to} {
		if !sq.Valid() {
			return chess.Move{}, &errors.MoveError{
				Err:    &errors.SquareError{Row: sq.Row, Col: sq.Col},
				Ply:    len(g.history) + 1,
				ToMove: g.toMove.String(),
			}
		}
	}

	candidate := chess.NewMove(from, to, &g.board)
	move, ok := FindMove(g.ValidMoves(), candidate)
	if !ok {
		return chess.Move{}, &errors.MoveError{
			Err:      errors.ErrIllegalMove,
			Ply:      len(g.history) + 1,
			MoveText: candidate.Notation(),
			ToMove:   g.toMove.String(),
		}
	}

	g.MakeMove(move)
	g.logStatus()
	return move, nil
}

// Play applies a move given as text such as "e2e4". With
// config.PlayConfig.StrictMoves it goes through TryMove; otherwise the
// candidate is applied unchecked.
func (g *GameState) Play(text string) (chess.Move, error) {
	from, to, err := chess.ParseMoveText(text)
	if err != nil {
		return chess.Move{}, &errors.MoveError{
			Err:      err,
			Ply:      len(g.history) + 1,
			MoveText: text,
			ToMove:   g.toMove.String(),
		}
	}
	if g.cfg.Play.StrictMoves {
		return g.TryMove(from, to)
	}
	move := chess.NewMove(from, to, &g.board)
	g.MakeMove(move)
	return move, nil
}

// PlayAll plays each text move in turn, stopping at the first error.
// Moves already played stay played.
func (g *GameState) PlayAll(texts []string) error {
	for _, text := range texts {
		if _, err := g.Play(text); err != nil {
			return err
		}
	}
	return nil
}

// logStatus reports check, checkmate and stalemate for the side now to move.
func (g *GameState) logStatus() {
	if g.cfg.Verbosity < config.Events {
		return
	}
	switch status := g.Status(); status {
	case Check, Checkmate, Stalemate:
		g.cfg.Logf(config.Events, "game %s: %s to move, %s", g.id, g.toMove, status)
	}
}
