package testutil

import (
	"bytes"
	"sort"
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
)

// QuietConfig returns a configuration that writes nothing.
func QuietConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Verbosity = config.Silent
	cfg.SetOutput(&bytes.Buffer{})
	cfg.LogFile = &bytes.Buffer{}
	return cfg
}

// LoggingConfig returns a configuration logging at verbosity into the
// returned buffer.
func LoggingConfig(verbosity int) (*config.Config, *bytes.Buffer) {
	var log bytes.Buffer
	cfg := config.NewConfig()
	cfg.Verbosity = verbosity
	cfg.SetOutput(&bytes.Buffer{})
	cfg.LogFile = &log
	return cfg, &log
}

// Sq parses an algebraic label such as "e4", failing the test if it is
// malformed.
func Sq(t *testing.T, label string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(label)
	if err != nil {
		t.Fatalf("bad square %q: %v", label, err)
	}
	return sq
}

// PlaceBoard builds a board from a map of square labels to pieces. Every
// other square is empty.
func PlaceBoard(t *testing.T, pieces map[string]chess.Piece) *chess.Board {
	t.Helper()
	board := chess.NewBoard()
	for label, piece := range pieces {
		board.Set(Sq(t, label), piece)
	}
	return board
}

// Notations returns the notation of each move, in order.
func Notations(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Notation()
	}
	return out
}

// SortedNotations returns the notations of moves in lexical order, for
// comparing move sets from generators that order moves differently.
func SortedNotations(moves []chess.Move) []string {
	out := Notations(moves)
	sort.Strings(out)
	return out
}

// Destinations returns the destination labels of moves, in order.
func Destinations(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.To.String()
	}
	return out
}
