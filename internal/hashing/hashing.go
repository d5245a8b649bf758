// Package hashing provides position hashing for chess boards.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed = 0x5eed_c0de

// numPieceCodes covers every packed Piece value.
const numPieceCodes = (int(chess.King)<<chess.PieceShift | int(chess.White)) + 1

var (
	zobristPiece [numPieceCodes][chess.BoardSize][chess.BoardSize]uint64
	zobristBlack uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for code := range zobristPiece {
		if chess.Piece(code).Kind() == chess.NoKind {
			continue
		}
		for row := range zobristPiece[code] {
			for col := range zobristPiece[code][row] {
				zobristPiece[code][row][col] = rng.Uint64()
			}
		}
	}
	zobristBlack = rng.Uint64()
}

// GenerateZobristHash hashes the pieces on board and the side to move.
// Empty squares contribute nothing.
func GenerateZobristHash(board *chess.Board, toMove chess.Colour) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece == chess.Empty {
				continue
			}
			hash ^= zobristPiece[piece][row][col]
		}
	}
	if toMove == chess.Black {
		hash ^= zobristBlack
	}
	return hash
}

// PieceKey returns the key XORed in for piece standing on sq, so a hash
// can be kept up to date move by move. Empty has no key.
func PieceKey(piece chess.Piece, sq chess.Square) uint64 {
	if piece == chess.Empty {
		return 0
	}
	return zobristPiece[piece][sq.Row][sq.Col]
}

// SideKey returns the key XORed in when Black is to move.
func SideKey() uint64 {
	return zobristBlack
}

// PositionCounter tracks how often each position hash has been seen.
type PositionCounter struct {
	counts map[uint64]int
}

// NewPositionCounter creates an empty counter.
func NewPositionCounter() *PositionCounter {
	return &PositionCounter{
		counts: make(map[uint64]int),
	}
}

// Add records one occurrence of hash and returns its new count.
func (p *PositionCounter) Add(hash uint64) int {
	p.counts[hash]++
	return p.counts[hash]
}

// Count returns how often hash has been seen.
func (p *PositionCounter) Count(hash uint64) int {
	return p.counts[hash]
}
