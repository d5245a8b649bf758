// chesscore is a developer tool for exploring positions with the chess core:
// it sets up a position, plays and takes back moves, lists legal moves and
// counts move trees.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chesscore version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	files := setupLogFile(cfg)
	if f := setupOutputFile(cfg); f != nil {
		files = append(files, f)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, cfg)
	stop()
	if closeErr := closeFiles(files); err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the requested steps in order: set up, play, undo, then
// the reports. Cancelling ctx interrupts -divide.
func run(ctx context.Context, cfg *config.Config) error {
	g, err := newGame(cfg)
	if err != nil {
		return err
	}

	if err := g.PlayAll(moveTexts()); err != nil {
		return err
	}

	for i := 0; i < *undoCount; i++ {
		if g.Ply() == 0 {
			return errors.Wrapf(errors.ErrNoHistory, "undo %d of %d", i+1, *undoCount)
		}
		g.UndoMove()
	}

	out := cfg.OutputFile
	if *showBoard && !*jsonOutput {
		renderBoard(out, g, !*noColor)
	}

	report := output.NewReport(g)
	if *listMoves {
		report.AddLegalMoves(g)
	}
	if *perftDepth > 0 {
		if err := addPerft(ctx, report, cfg, g); err != nil {
			return err
		}
	}

	w := newReportWriter(out)
	if err := w.WriteReport(report); err != nil {
		return err
	}
	return w.Close()
}

// newGame sets up the starting position from -fen, if given.
func newGame(cfg *config.Config) (*engine.GameState, error) {
	if *fenString == "" {
		return engine.NewGameState(cfg), nil
	}
	return engine.NewGameStateFromFEN(*fenString, cfg)
}

// addPerft counts nodes, split by root move with -divide.
func addPerft(ctx context.Context, report *output.Report, cfg *config.Config, g *engine.GameState) error {
	if !*divide {
		report.AddPerft(*perftDepth, engine.Perft(g, *perftDepth))
		return nil
	}

	results, err := engine.DivideContext(ctx, g, *perftDepth, cfg)
	if err != nil {
		return err
	}
	report.AddDivide(*perftDepth, results)
	return nil
}

// newReportWriter returns the writer selected by -json.
func newReportWriter(w io.Writer) output.ReportWriter {
	if *jsonOutput {
		return output.NewJSONWriterSingle(w)
	}
	return output.NewTextWriter(w)
}

// setupLogFile configures the log file based on command-line flags and
// returns the files it opened.
func setupLogFile(cfg *config.Config) []*os.File {
	var files []*os.File
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
		files = append(files, file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
		files = append(files, file)
	}
	return files
}

// setupOutputFile configures the output file based on command-line flags.
// It returns the opened file, or nil when writing to stdout.
func setupOutputFile(cfg *config.Config) *os.File {
	if *outputFile == "" {
		return nil
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
	return file
}

// closeFiles syncs and closes every file, returning the first error.
func closeFiles(files []*os.File) error {
	var first error
	for _, f := range files {
		err := f.Sync()
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil && first == nil {
			first = fmt.Errorf("closing %s: %w", f.Name(), err)
		}
	}
	return first
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chesscore [options]\n\n")
	fmt.Fprintf(os.Stderr, "Set up a chess position, play moves and inspect the result.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chesscore -moves \"e2e4 e7e5\" -board\n")
	fmt.Fprintf(os.Stderr, "  chesscore -perft 4 -divide -workers 8\n")
	fmt.Fprintf(os.Stderr, "  chesscore -fen \"4k3/8/8/8/8/8/8/R3K3 w - - 0 1\" -list -json\n")
}
