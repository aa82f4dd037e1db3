// internal/board/board.go
//
// Terminal rendering of the turn log.
// Each row shows the turn number, the guessed colors (ANSI-colored when
// enabled), and the peg string: one "x" per black peg, one "." per
// white peg.

package board

import (
	"fmt"
	"strings"

	"github.com/TwiN/go-color"

	"github.com/robalobadob/mastermind/internal/game"
)

// ansi maps each palette token to its terminal color. Orange and indigo
// have no dedicated ANSI code; yellow and cyan stand in.
var ansi = map[game.Color]string{
	"R": color.Red,
	"O": color.Yellow,
	"Y": color.White,
	"G": color.Green,
	"B": color.Blue,
	"I": color.Cyan,
	"V": color.Purple,
}

// Board renders turns for the terminal.
type Board struct {
	colorize bool
}

// New constructs a Board. Pass colorize=false for plain output
// (tests, piped output).
func New(colorize bool) *Board {
	return &Board{colorize: colorize}
}

// Pegs renders feedback as the classic peg string, e.g. (2,1) → "xx.".
func Pegs(fb game.Feedback) string {
	return strings.Repeat("x", fb.Black) + strings.Repeat(".", fb.White)
}

// RenderTurn formats one row of the board, 1-indexed.
func (b *Board) RenderTurn(n int, t game.Turn) string {
	return fmt.Sprintf("%2d. %s  %s", n, b.RenderCode(t.Guess), Pegs(t.Feedback))
}

// RenderCode formats a code's symbol tokens, colorized when enabled.
func (b *Board) RenderCode(c game.Code) string {
	var sb strings.Builder
	for _, col := range c {
		tok := string(col)
		if b.colorize {
			if a, ok := ansi[col]; ok {
				tok = color.Ize(a, tok)
			}
		}
		sb.WriteString(tok)
	}
	return sb.String()
}

// Render formats the whole turn log, one row per line.
func (b *Board) Render(turns []game.Turn) string {
	var sb strings.Builder
	for i, t := range turns {
		sb.WriteString(b.RenderTurn(i+1, t))
		sb.WriteByte('\n')
	}
	return sb.String()
}
