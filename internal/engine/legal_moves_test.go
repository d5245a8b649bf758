package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	chesserrors "github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func TestValidMoves_Pure(t *testing.T) {
	g := mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1")
	board := g.Board()
	hash := g.Hash()
	history := g.History()

	first := testutil.Notations(g.ValidMoves())
	second := testutil.Notations(g.ValidMoves())

	testutil.AssertEqual(t, second, first)
	testutil.AssertTrue(t, g.Board().Equal(board))
	testutil.AssertEqual(t, g.Hash(), hash)
	testutil.AssertEqual(t, g.History(), history)
	testutil.AssertEqual(t, g.ToMove(), chess.White)
}

func TestValidMoves_SubsetOfPseudoLegal(t *testing.T) {
	g := mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b - - 0 1")
	pseudo := g.AllPossibleMoves()
	for _, m := range g.ValidMoves() {
		testutil.AssertTrue(t, Contains(pseudo, m), "%s not pseudo-legal", m)
	}
}

func TestValidMoves_NeverLeaveKingAttacked(t *testing.T) {
	fens := []string{
		"4k3/8/8/8/8/8/8/r3K3 w - - 0 1",
		"4k3/8/8/1b6/8/8/4R3/4K3 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w - - 0 1",
		"rnbqkbnr/ppppp1pp/5p2/7Q/4P3/8/PPPP1PPP/RNB1KBNR b - - 1 2",
	}
	for _, fen := range fens {
		g := mustFEN(t, fen)
		mover := g.ToMove()
		for _, m := range g.ValidMoves() {
			g.MakeMove(m)
			testutil.AssertFalse(t, g.IsInCheck(mover), "%s leaves king attacked in %s", m, fen)
			g.UndoMove()
		}
	}
}

func TestValidMovesFrom(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{
			name: "pinned rook stays on the file",
			fen:  "k3r3/8/8/8/8/8/4R3/4K3 w - - 0 1",
			from: "e2",
			want: []string{"e3", "e4", "e5", "e6", "e7", "e8"},
		},
		{
			name: "pinned knight cannot move",
			fen:  "k7/8/8/8/b7/8/2N5/3K4 w - - 0 1",
			from: "c2",
			want: []string{},
		},
		{
			name: "king avoids attacked squares",
			fen:  "3rk3/8/8/8/8/8/8/4K3 w - - 0 1",
			from: "e1",
			want: []string{"e2", "f2", "f1"},
		},
		{
			name: "king cannot step next to the other king",
			fen:  "8/8/8/3k4/8/3K4/8/8 w - - 0 1",
			from: "d3",
			want: []string{"c3", "e3", "c2", "d2", "e2"},
		},
		{
			name: "a checked side may only block",
			fen:  "4k3/8/8/8/8/8/3B4/r3K3 w - - 0 1",
			from: "d2",
			want: []string{"c1"},
		},
		{
			name: "piece of the side not to move",
			fen:  InitialFEN,
			from: "e7",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustFEN(t, tt.fen)
			got := testutil.Destinations(g.ValidMovesFrom(testutil.Sq(t, tt.from)))
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestValidMoves_CheckEvasions(t *testing.T) {
	// Rook on a1 checks along the first rank; the bishop can block on c1
	// and the king can step off the rank.
	g := mustFEN(t, "4k3/8/8/8/8/8/3B4/r3K3 w - - 0 1")
	testutil.AssertTrue(t, g.InCheck())
	got := testutil.SortedNotations(g.ValidMoves())
	testutil.AssertEqual(t, got, []string{"d2c1", "e1e2", "e1f2"})
}

func TestContainsAndFindMove(t *testing.T) {
	g := newQuietGame()
	moves := g.ValidMoves()

	// Pieces are not part of a move's identity.
	candidate := chess.Move{From: testutil.Sq(t, "g1"), To: testutil.Sq(t, "f3")}
	testutil.AssertTrue(t, Contains(moves, candidate))

	found, ok := FindMove(moves, candidate)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, found.Moved, chess.W(chess.Knight))

	_, ok = FindMove(moves, chess.Move{From: testutil.Sq(t, "e2"), To: testutil.Sq(t, "e5")})
	testutil.AssertFalse(t, ok)
	testutil.AssertFalse(t, Contains(nil, candidate))
	testutil.AssertTrue(t, g.IsValidMove(candidate))
}

func TestTryMove(t *testing.T) {
	g := newQuietGame()

	move, err := g.TryMove(testutil.Sq(t, "e2"), testutil.Sq(t, "e4"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, move.Moved, chess.W(chess.Pawn))
	testutil.AssertEqual(t, g.ToMove(), chess.Black)
	testutil.AssertEqual(t, g.Ply(), 1)
}

func TestTryMove_Errors(t *testing.T) {
	tests := []struct {
		name     string
		from, to chess.Square
		wantErr  error
		wantText string
	}{
		{
			name:     "too far",
			from:     chess.MustSquare(6, 4),
			to:       chess.MustSquare(3, 4),
			wantErr:  chesserrors.ErrIllegalMove,
			wantText: "e2e5",
		},
		{
			name:     "opponent's piece",
			from:     chess.MustSquare(1, 4),
			to:       chess.MustSquare(3, 4),
			wantErr:  chesserrors.ErrIllegalMove,
			wantText: "e7e5",
		},
		{
			name:     "empty square",
			from:     chess.MustSquare(4, 4),
			to:       chess.MustSquare(3, 4),
			wantErr:  chesserrors.ErrIllegalMove,
			wantText: "e4e5",
		},
		{
			name:    "off the board",
			from:    chess.Square{Row: 8, Col: 4},
			to:      chess.MustSquare(3, 4),
			wantErr: chesserrors.ErrInvalidSquare,
		},
		{
			name:    "negative column",
			from:    chess.MustSquare(6, 4),
			to:      chess.Square{Row: 4, Col: -1},
			wantErr: chesserrors.ErrInvalidSquare,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newQuietGame()
			hash := g.Hash()

			_, err := g.TryMove(tt.from, tt.to)
			testutil.AssertErrorIs(t, err, tt.wantErr)

			var moveErr *chesserrors.MoveError
			testutil.AssertTrue(t, errors.As(err, &moveErr))
			testutil.AssertEqual(t, moveErr.Ply, 1)
			testutil.AssertEqual(t, moveErr.MoveText, tt.wantText)
			testutil.AssertEqual(t, moveErr.ToMove, "White")

			testutil.AssertEqual(t, g.Hash(), hash, "failed move must not change the game")
			testutil.AssertEqual(t, g.Ply(), 0)
		})
	}
}

func TestTryMove_IntoCheck(t *testing.T) {
	g := mustFEN(t, "k3r3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	_, err := g.TryMove(testutil.Sq(t, "e2"), testutil.Sq(t, "d2"))
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)
	testutil.AssertEqual(t, g.At(testutil.Sq(t, "e2")), chess.W(chess.Rook))
}

func TestPlay(t *testing.T) {
	g := newQuietGame()

	move, err := g.Play("g1f3")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, move.Moved, chess.W(chess.Knight))

	_, err = g.Play("e2e4")
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove, "white pawn with Black to move")

	_, err = g.Play("e9e4")
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidMoveText)
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidSquare)

	_, err = g.Play("e7")
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidMoveText)
	testutil.AssertEqual(t, g.Ply(), 1)
}

func TestPlay_NotStrict(t *testing.T) {
	cfg := testutil.QuietConfig()
	cfg.Play.StrictMoves = false
	g := NewGameState(cfg)

	move, err := g.Play("e2e6")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, move.Captured, chess.Empty)
	testutil.AssertEqual(t, g.At(testutil.Sq(t, "e6")), chess.W(chess.Pawn))

	move, err = g.Play("d8d2")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, move.Captured, chess.W(chess.Pawn))

	g.UndoMove()
	g.UndoMove()
	testutil.AssertTrue(t, g.Board().Equal(chess.NewInitialBoard()))
}

func TestPlayAll_StopsAtFirstError(t *testing.T) {
	g := newQuietGame()
	err := g.PlayAll([]string{"e2e4", "e7e5", "e4e5", "d2d4"})

	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)
	var moveErr *chesserrors.MoveError
	testutil.AssertTrue(t, errors.As(err, &moveErr))
	testutil.AssertEqual(t, moveErr.Ply, 3)
	testutil.AssertEqual(t, testutil.Notations(g.History()), []string{"e2e4", "e7e5"})
}
