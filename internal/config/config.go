// Package config provides configuration for the chess core and its tools.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Verbosity levels for the log writer.
const (
	Silent     = 0 // nothing
	Events     = 1 // game events: check, checkmate, stalemate
	Commentary = 2 // every committed move and undo
)

// Config holds all program configuration.
type Config struct {
	// Verbosity selects what is written to LogFile.
	Verbosity int

	// Move play options
	Play *PlayConfig

	// Perft and divide options
	Perft *PerftConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Events,
		Play:       NewPlayConfig(),
		Perft:      NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Logf writes a line to LogFile when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c == nil || c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Validate checks option ranges.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d out of range %d-%d: %w", c.Verbosity, Silent, Commentary, errors.ErrInvalidConfig)
	}
	if c.Perft.Workers < 1 {
		return fmt.Errorf("perft workers %d must be at least 1: %w", c.Perft.Workers, errors.ErrInvalidConfig)
	}
	if c.Perft.BufferSize < 1 {
		return fmt.Errorf("perft buffer size %d must be at least 1: %w", c.Perft.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
