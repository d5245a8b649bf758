package engine

import (
	"context"
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree depth plies deep.
// Perft(0) is 1. The game is back in its original state on return.
func Perft(g *GameState, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := g.ValidMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, move := range moves {
		g.apply(move)
		nodes += Perft(g, depth-1)
		g.revert()
	}
	return nodes
}

// DivideResult is the node count below one root move.
type DivideResult struct {
	Move  chess.Move
	Nodes uint64
}

// Divide splits Perft(g, depth) by root move, counting each subtree on its
// own copy of the game in the worker pool. Results follow ValidMoves
// order. cfg supplies the pool size; nil uses g's configuration.
func Divide(g *GameState, depth int, cfg *config.Config) ([]DivideResult, error) {
	return DivideContext(context.Background(), g, depth, cfg)
}

// DivideContext is Divide with cancellation. ctx is checked before each
// root move is counted; once it is done the remaining moves are skipped
// and ctx.Err() is returned.
func DivideContext(ctx context.Context, g *GameState, depth int, cfg *config.Config) ([]DivideResult, error) {
	if depth < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "divide depth %d", depth)
	}
	if cfg == nil {
		cfg = g.cfg
	}

	moves := g.ValidMoves()
	games := make([]*GameState, len(moves))
	items := make([]worker.WorkItem, len(moves))
	for i, move := range moves {
		games[i] = g.Clone()
		items[i] = worker.WorkItem{Move: move, Depth: depth - 1, Index: i}
	}

	process := func(item worker.WorkItem) worker.ProcessResult {
		if err := ctx.Err(); err != nil {
			return worker.ProcessResult{Move: item.Move, Index: item.Index, Err: err}
		}
		game := games[item.Index]
		game.apply(item.Move)
		nodes := Perft(game, item.Depth)
		game.revert()
		return worker.ProcessResult{Move: item.Move, Index: item.Index, Nodes: nodes}
	}

	pool := worker.NewPool(process,
		worker.WithWorkers(cfg.Perft.Workers),
		worker.WithBufferSize(cfg.Perft.BufferSize),
	)
	cfg.Logf(config.Events, "game %s: divide depth %d over %d moves, %d workers",
		g.id, depth, len(moves), pool.NumWorkers())

	done := pool.Run(items)
	for _, r := range done {
		if r.Err != nil {
			return nil, fmt.Errorf("divide %s: %w", r.Move, r.Err)
		}
	}

	results := make([]DivideResult, len(done))
	for i, r := range done {
		results[i] = DivideResult{Move: r.Move, Nodes: r.Nodes}
		cfg.Logf(config.Commentary, "%s: %d", r.Move, r.Nodes)
	}
	return results, nil
}

// Total sums the node counts of a Divide.
func Total(results []DivideResult) uint64 {
	var total uint64
	for _, r := range results {
		total += r.Nodes
	}
	return total
}
