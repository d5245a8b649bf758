package engine

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func TestNewGameStateFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*GameState) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(g *GameState) bool {
				return g.Board().Equal(chess.NewInitialBoard()) &&
					g.ToMove() == chess.White
			},
		},
		{
			name: "after 1.e4 with en passant field",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(g *GameState) bool {
				return g.At(chess.MustSquare(4, 4)) == chess.W(chess.Pawn) &&
					g.At(chess.MustSquare(6, 4)) == chess.Empty &&
					g.ToMove() == chess.Black
			},
		},
		{
			name: "placement only",
			fen:  "8/8/8/8/8/8/8/4K2k",
			checkFn: func(g *GameState) bool {
				return g.ToMove() == chess.White &&
					g.KingSquare(chess.White) == chess.MustSquare(7, 4) &&
					g.KingSquare(chess.Black) == chess.MustSquare(7, 7)
			},
		},
		{
			name: "missing king",
			fen:  "8/8/8/8/8/8/8/4K3 b - - 0 1",
			checkFn: func(g *GameState) bool {
				return g.KingSquare(chess.Black) == chess.NoSquare && !g.InCheck()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustFEN(t, tt.fen)
			testutil.AssertTrue(t, tt.checkFn(g), "position check failed for %q", tt.fen)
			testutil.AssertEqual(t, g.Ply(), 0)
		})
	}
}

func TestNewGameStateFromFEN_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"too few ranks", "8/8/8 w - - 0 1"},
		{"too many ranks", "8/8/8/8/8/8/8/8/8 w - - 0 1"},
		{"short rank", "rnbqkbn/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
		{"long rank", "rnbqkbnrr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
		{"digits overflow", "4k4/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"bad digit", "9/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"zero digit", "08/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"bad piece", "4x3/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"bad side", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"bad halfmove clock", "4k3/8/8/8/8/8/8/4K3 w - - x 1"},
		{"negative halfmove clock", "4k3/8/8/8/8/8/8/4K3 w - - -1 1"},
		{"bad fullmove number", "4k3/8/8/8/8/8/8/4K3 w - - 0 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGameStateFromFEN(tt.fen, testutil.QuietConfig())
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
			testutil.AssertNil(t, g)
		})
	}
}

func TestFEN(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  string
	}{
		{
			name: "initial position drops castling",
			fen:  InitialFEN,
			want: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		},
		{
			name:  "after 1.e4",
			fen:   InitialFEN,
			moves: []string{"e2e4"},
			want:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1",
		},
		{
			name:  "knight move counts towards the halfmove clock",
			fen:   InitialFEN,
			moves: []string{"e2e4", "e7e5", "g1f3"},
			want:  "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b - - 1 2",
		},
		{
			name:  "capture resets the halfmove clock",
			fen:   InitialFEN,
			moves: []string{"g1f3", "d7d5", "f3e5", "b8c6", "e5c6"},
			want:  "r1bqkbnr/ppp1pppp/2N5/3p4/8/8/PPPPPPPP/RNBQKB1R b - - 0 3",
		},
		{
			name:  "clocks carried from the setup",
			fen:   "4k3/8/8/8/8/8/8/4K2R b - - 7 30",
			moves: []string{"e8d7", "h1h7"},
			want:  "8/3k3R/8/8/8/8/8/4K3 b - - 9 31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustFEN(t, tt.fen)
			mustPlay(t, g, tt.moves...)
			testutil.AssertEqual(t, g.FEN(), tt.want)
		})
	}
}

func TestFEN_RoundTrip(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w - - 1 8",
		"8/8/8/8/8/8/8/8 b - - 12 40",
	}
	for _, fen := range fens {
		g := mustFEN(t, fen)
		testutil.AssertEqual(t, g.FEN(), fen)

		again := mustFEN(t, g.FEN())
		testutil.AssertTrue(t, again.Board().Equal(g.Board()), fen)
		testutil.AssertEqual(t, again.Hash(), g.Hash(), fen)
	}
}

func TestFEN_UndoRestores(t *testing.T) {
	g := newQuietGame()
	start := g.FEN()
	mustPlay(t, g, "d2d4", "g8f6", "c2c4")
	g.UndoMove()
	g.UndoMove()
	g.UndoMove()
	testutil.AssertEqual(t, g.FEN(), start)
}
