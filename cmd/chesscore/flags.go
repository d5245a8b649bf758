// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/config"
)

var (
	// Position setup
	fenString = flag.String("fen", "", "Start from this FEN position (default: initial position)")
	moveList  = flag.String("moves", "", "Moves to play, e.g. \"e2e4 e7e5 g1f3\"")
	undoCount = flag.Int("undo", 0, "Take back N moves after playing -moves")
	noStrict  = flag.Bool("nostrict", false, "Apply -moves without checking legality")

	// Reports
	listMoves  = flag.Bool("list", false, "List legal moves in generation order")
	perftDepth = flag.Int("perft", 0, "Count leaf nodes N plies deep")
	divide     = flag.Bool("divide", false, "With -perft, show the count below each root move")
	showBoard  = flag.Bool("board", false, "Print the board")
	noColor    = flag.Bool("nocolor", false, "Print the board without colour")
	jsonOutput = flag.Bool("json", false, "Write the report as JSON (the board is not printed)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")

	// Logging
	verbosity = flag.Int("v", config.Events, "Log verbosity: 0 silent, 1 game events, 2 every move")
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no diagnostics)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of divide workers (0 = auto-detect based on CPU cores)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Silent
	}
	cfg.Play.StrictMoves = !*noStrict
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
}

// moveTexts splits the -moves value on spaces and commas.
func moveTexts() []string {
	return strings.FieldsFunc(*moveList, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
}
