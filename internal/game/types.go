// internal/game/types.go
//
// Core type definitions for the Mastermind game engine.
// Defines:
//   - Color: a single peg color, identified by its short token ("R", "O", ...).
//   - Palette: the fixed set of colors a game is played with.
//   - Code: an ordered sequence of exactly CodeLength colors.
//   - Feedback: the black/white peg score for one guess.
//   - Turn: one (guess, feedback) pair of a game's history.

package game

// Color is a single peg color, represented by its short token.
type Color string

// Palette is the immutable set of colors valid in codes and guesses.
// It is injected into the evaluator, the solver, and the board renderer
// rather than read from a mutable global.
type Palette []Color

// DefaultPalette is the classic 7-color rainbow alphabet.
var DefaultPalette = Palette{"R", "O", "Y", "G", "B", "I", "V"}

// Contains reports whether c is a member of the palette.
func (p Palette) Contains(c Color) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}

// CodeLength is the number of pegs in every code and guess.
const CodeLength = 4

// Code is an ordered sequence of exactly CodeLength colors.
// Repetition is allowed. A Code is never mutated after construction.
type Code [CodeLength]Color

// Feedback scores one guess against a secret:
//   - Black: pegs with the correct color in the correct position.
//   - White: additional correct colors sitting in the wrong position.
//
// Invariant: 0 <= Black, 0 <= White, Black+White <= CodeLength.
type Feedback struct {
	Black int
	White int
}

// Turn records one guess and the feedback it earned.
type Turn struct {
	Guess    Code
	Feedback Feedback
}
