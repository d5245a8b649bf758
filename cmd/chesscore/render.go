package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

// boardTheme holds the colours used to draw a board.
type boardTheme struct {
	squareLight color.Attribute
	squareDark  color.Attribute
	lastMove    color.Attribute
	check       color.Attribute
	white       color.Attribute
	black       color.Attribute
	label       *color.Color
}

func defaultTheme() boardTheme {
	return boardTheme{
		squareLight: color.BgWhite,
		squareDark:  color.BgGreen,
		lastMove:    color.BgYellow,
		check:       color.BgRed,
		white:       color.FgHiWhite,
		black:       color.FgBlack,
		label:       color.New(color.FgCyan),
	}
}

// renderBoard draws g's board with rank 8 at the top, followed by the
// file letters. Without colour, empty squares show as '.'.
func renderBoard(w io.Writer, g *engine.GameState, useColor bool) {
	theme := defaultTheme()
	setColor(theme.label, useColor)

	last, hasLast := g.LastMove()
	checked := chess.NoSquare
	if g.InCheck() {
		checked = g.KingSquare(g.ToMove())
	}

	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		sq := chess.Square{Row: row, Col: 0}
		sb.WriteString(theme.label.Sprintf("%c ", sq.Rank()))
		for col := 0; col < chess.BoardSize; col++ {
			sq.Col = col
			bg := squareBg(sq, theme)
			switch {
			case sq == checked:
				bg = theme.check
			case hasLast && (sq == last.From || sq == last.To):
				bg = theme.lastMove
			}
			sb.WriteString(drawSquare(g.At(sq), bg, theme, useColor))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("  ")
	for col := 0; col < chess.BoardSize; col++ {
		sq := chess.Square{Row: 0, Col: col}
		sb.WriteString(theme.label.Sprintf(" %c ", sq.File()))
	}
	sb.WriteByte('\n')

	fmt.Fprint(w, sb.String())
}

// squareBg returns the theme's background for sq; a8 is light.
func squareBg(sq chess.Square, theme boardTheme) color.Attribute {
	if (sq.Row+sq.Col)%2 == 0 {
		return theme.squareLight
	}
	return theme.squareDark
}

// drawSquare renders one three character wide square.
func drawSquare(p chess.Piece, bg color.Attribute, theme boardTheme, useColor bool) string {
	c := color.New(bg)
	text := "   "
	switch {
	case p != chess.Empty:
		fg := theme.black
		if p.Is(chess.White) {
			fg = theme.white
		}
		c.Add(fg, color.Bold)
		text = " " + string(p.FENLetter()) + " "
	case !useColor:
		text = " . "
	}
	setColor(c, useColor)
	return c.Sprint(text)
}

// setColor forces colour on or off regardless of whether the output is
// a terminal.
func setColor(c *color.Color, on bool) {
	if on {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}
