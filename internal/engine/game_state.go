// Package engine provides chess move generation and game state handling.
package engine

import (
	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/hashing"
)

// GameState owns the board, the side to move and the move history of one
// game. It is not safe for concurrent use; use Clone to hand a position
// to another goroutine.
type GameState struct {
	id      uuid.UUID
	board   chess.Board
	toMove  chess.Colour
	history []chess.Move

	// King squares indexed by colour, NoSquare when absent. Kept up to
	// date by apply and revert so check detection never scans the board.
	kings [2]chess.Square

	// Zobrist key of board and side to move, updated by apply and revert.
	hash uint64

	// Set up by FEN; used to derive the clocks written back out.
	startHalfmove int
	startFullmove int
	startToMove   chess.Colour

	cfg *config.Config
}

// NewGameState creates a game in the standard starting position with
// White to move. A nil cfg uses config.NewConfig().
func NewGameState(cfg *config.Config) *GameState {
	g := newGameState(chess.NewInitialBoard(), chess.White, cfg)
	g.cfg.Logf(config.Events, "game %s: new game", g.id)
	return g
}

func newGameState(board *chess.Board, toMove chess.Colour, cfg *config.Config) *GameState {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	g := &GameState{
		id:            uuid.New(),
		board:         *board,
		toMove:        toMove,
		startFullmove: 1,
		startToMove:   toMove,
		cfg:           cfg,
	}
	g.kings[chess.White] = board.FindKing(chess.White)
	g.kings[chess.Black] = board.FindKing(chess.Black)
	g.hash = hashing.GenerateZobristHash(board, toMove)
	return g
}

// ID returns the identifier assigned when the game was created.
func (g *GameState) ID() uuid.UUID {
	return g.id
}

// Board returns a copy of the current board.
func (g *GameState) Board() *chess.Board {
	return g.board.Copy()
}

// At returns the piece on sq. It panics on an off-board square.
func (g *GameState) At(sq chess.Square) chess.Piece {
	return g.board.At(sq)
}

// ToMove returns the side to move.
func (g *GameState) ToMove() chess.Colour {
	return g.toMove
}

// History returns a copy of the moves played so far, oldest first. It is
// nil when no move has been played.
func (g *GameState) History() []chess.Move {
	if len(g.history) == 0 {
		return nil
	}
	return slices.Clone(g.history)
}

// Ply returns the number of moves in the history.
func (g *GameState) Ply() int {
	return len(g.history)
}

// LastMove returns the most recent move, if any.
func (g *GameState) LastMove() (chess.Move, bool) {
	if len(g.history) == 0 {
		return chess.Move{}, false
	}
	return g.history[len(g.history)-1], true
}

// KingSquare returns where the king of colour stands, or NoSquare.
func (g *GameState) KingSquare(colour chess.Colour) chess.Square {
	return g.kings[colour]
}

// MakeMove applies move without checking it: the source square is
// emptied, the destination receives move.Moved, the move is appended to
// the history and the side to move flips. Callers are expected to check
// membership in ValidMoves first (or use TryMove).
func (g *GameState) MakeMove(move chess.Move) {
	g.apply(move)
	g.cfg.Logf(config.Commentary, "game %s: ply %d %s", g.id, len(g.history), move)
}

// UndoMove takes back the most recent move. With an empty history it
// does nothing.
func (g *GameState) UndoMove() {
	move, ok := g.revert()
	if !ok {
		return
	}
	g.cfg.Logf(config.Commentary, "game %s: undo %s", g.id, move)
}

// apply performs MakeMove without logging.
func (g *GameState) apply(move chess.Move) {
	g.board.Set(move.From, chess.Empty)
	g.board.Set(move.To, move.Moved)

	if move.Captured.Kind() == chess.King {
		g.kings[move.Captured.Colour()] = chess.NoSquare
	}
	if move.Moved.Kind() == chess.King {
		g.kings[move.Moved.Colour()] = move.To
	}

	g.hash ^= moveKey(move)
	g.history = append(g.history, move)
	g.toMove = g.toMove.Opposite()
}

// revert performs UndoMove without logging and returns the undone move.
func (g *GameState) revert() (chess.Move, bool) {
	if len(g.history) == 0 {
		return chess.Move{}, false
	}
	move := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	g.board.Set(move.From, move.Moved)
	g.board.Set(move.To, move.Captured)

	if move.Moved.Kind() == chess.King {
		g.kings[move.Moved.Colour()] = move.From
	}
	if move.Captured.Kind() == chess.King {
		g.kings[move.Captured.Colour()] = move.To
	}

	g.hash ^= moveKey(move)
	g.toMove = g.toMove.Opposite()
	return move, true
}

// moveKey is the hash difference between the positions before and after
// move. XOR makes it its own inverse.
func moveKey(move chess.Move) uint64 {
	return hashing.PieceKey(move.Moved, move.From) ^
		hashing.PieceKey(move.Captured, move.To) ^
		hashing.PieceKey(move.Moved, move.To) ^
		hashing.SideKey()
}

// Clone returns an independent copy of the game sharing only the
// configuration.
func (g *GameState) Clone() *GameState {
	c := *g
	c.history = slices.Clone(g.history)
	return &c
}

// Hash returns the Zobrist hash of the board and side to move.
func (g *GameState) Hash() uint64 {
	return g.hash
}

// RepetitionCount returns how many times the current position (pieces and
// side to move) has occurred in this game, counting the current one.
func (g *GameState) RepetitionCount() int {
	replay := g.Clone()
	counter := hashing.NewPositionCounter()
	current := replay.Hash()
	counter.Add(current)
	for {
		if _, ok := replay.revert(); !ok {
			break
		}
		counter.Add(replay.Hash())
	}
	return counter.Count(current)
}
