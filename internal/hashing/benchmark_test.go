package hashing

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

func BenchmarkGenerateZobristHash(b *testing.B) {
	boards := map[string]*chess.Board{
		"Initial": chess.NewInitialBoard(),
		"Empty":   chess.NewBoard(),
	}
	for name, board := range boards {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				GenerateZobristHash(board, chess.White)
			}
		})
	}
}

func BenchmarkPositionCounter(b *testing.B) {
	counter := NewPositionCounter()
	for i := 0; i < b.N; i++ {
		counter.Add(uint64(i % 1024))
	}
}
