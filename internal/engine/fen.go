package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewGameStateFromFEN creates a game from a FEN string. Only piece placement
// and side to move are required. Castling and en passant fields are
// accepted but ignored, since neither rule is modelled. The clock fields,
// when present, seed the clocks FEN writes back.
func NewGameStateFromFEN(fen string, cfg *config.Config) (*GameState, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, err
	}

	halfmove, fullmove, err := parseClocks(parts)
	if err != nil {
		return nil, err
	}

	g := newGameState(board, toMove, cfg)
	g.startHalfmove = halfmove
	g.startFullmove = fullmove
	g.cfg.Logf(config.Events, "game %s: set up from FEN %q", g.id, fen)
	return g, nil
}

// parsePiecePositions parses the piece placement field, rank 8 first.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, found %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for row, rank := range ranks {
		col := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				kind := chess.KindFromLetter(byte(c))
				if kind == chess.NoKind || c > unicode.MaxASCII {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if col >= chess.BoardSize {
					return fmt.Errorf("rank %d overflows: %w", chess.BoardSize-row, errors.ErrInvalidFEN)
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.Squares[row][col] = chess.MakePiece(colour, kind)
				col++
			}
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d squares: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field. White moves if it is missing.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(parts []string) (halfmove, fullmove int, err error) {
	fullmove = 1
	if len(parts) >= 5 {
		if halfmove, err = strconv.Atoi(parts[4]); err != nil || halfmove < 0 {
			return 0, 0, fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrInvalidFEN)
		}
	}
	if len(parts) >= 6 {
		if fullmove, err = strconv.Atoi(parts[5]); err != nil || fullmove < 1 {
			return 0, 0, fmt.Errorf("invalid fullmove number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
	}
	return halfmove, fullmove, nil
}

// FEN returns the current position as a FEN string. Castling and en
// passant are always written as "-".
func (g *GameState) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, &g.board)
	sb.WriteByte(' ')
	sb.WriteByte(g.toMove.Letter())
	sb.WriteString(" - - ")
	fmt.Fprintf(&sb, "%d %d", g.HalfmoveClock(), g.FullmoveNumber())

	return sb.String()
}

// HalfmoveClock returns the number of plies since the last pawn move or
// capture.
func (g *GameState) HalfmoveClock() int {
	clock := 0
	for i := len(g.history) - 1; i >= 0; i-- {
		move := g.history[i]
		if move.Moved.Kind() == chess.Pawn || move.IsCapture() {
			return clock
		}
		clock++
	}
	return clock + g.startHalfmove
}

// FullmoveNumber returns the FEN move number, which goes up after each
// Black move.
func (g *GameState) FullmoveNumber() int {
	plies := len(g.history)
	if g.startToMove == chess.Black {
		plies++
	}
	return g.startFullmove + plies/2
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}
