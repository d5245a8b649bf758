package config

import "runtime"

// PerftConfig holds settings for move tree counting.
type PerftConfig struct {
	// Workers is the number of goroutines used by Divide.
	Workers int

	// BufferSize is the work and result channel capacity.
	BufferSize int
}

// NewPerftConfig creates a PerftConfig with one worker per CPU.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers:    runtime.NumCPU(),
		BufferSize: 32,
	}
}
