// Package output formats game reports as text or JSON.
package output

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

// Report is a snapshot of a game for output.
type Report struct {
	ID         string       `json:"id"`
	FEN        string       `json:"fen"`
	Status     string       `json:"status"`
	ToMove     string       `json:"toMove"`
	Ply        int          `json:"ply"`
	History    []string     `json:"history,omitempty"`
	LegalMoves []string     `json:"legalMoves,omitempty"`
	Perft      *PerftReport `json:"perft,omitempty"`
}

// PerftReport holds a node count, optionally split by root move.
type PerftReport struct {
	Depth  int          `json:"depth"`
	Nodes  uint64       `json:"nodes"`
	Divide []DivideLine `json:"divide,omitempty"`
}

// DivideLine is the node count below one root move.
type DivideLine struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// NewReport captures g's current position, status and history.
func NewReport(g *engine.GameState) *Report {
	return &Report{
		ID:      g.ID().String(),
		FEN:     g.FEN(),
		Status:  g.Status().String(),
		ToMove:  g.ToMove().String(),
		Ply:     g.Ply(),
		History: notations(g.History()),
	}
}

// AddLegalMoves records g's legal moves in generation order. The text
// writer prints an empty list as "0 legal moves:"; JSON leaves it out.
func (r *Report) AddLegalMoves(g *engine.GameState) {
	r.LegalMoves = notations(g.ValidMoves())
}

// AddPerft records a plain node count.
func (r *Report) AddPerft(depth int, nodes uint64) {
	r.Perft = &PerftReport{Depth: depth, Nodes: nodes}
}

// AddDivide records per-move counts and their total.
func (r *Report) AddDivide(depth int, results []engine.DivideResult) {
	lines := make([]DivideLine, len(results))
	for i, res := range results {
		lines[i] = DivideLine{Move: res.Move.Notation(), Nodes: res.Nodes}
	}
	r.Perft = &PerftReport{Depth: depth, Nodes: engine.Total(results), Divide: lines}
}

func notations(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Notation()
	}
	return out
}
