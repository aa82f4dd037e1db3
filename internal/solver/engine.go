// internal/solver/engine.go
//
// Heuristic computer player for Mastermind.
// Responsibilities:
//   - Produce a guess each turn from the current belief state.
//   - Update the belief state from the feedback each guess earns.
//
// The belief state tracks three things:
//   - confirmed: positions known to hold a specific color; once set, a
//     slot is never cleared or overwritten.
//   - excluded: colors proven absent from the secret.
//   - candidates: colors not yet excluded (always palette minus excluded).
//
// This is a heuristic, not a constraint solver: guesses are only
// guaranteed consistent with what confirmed/excluded encode, not with
// the full feedback history. The comparative inference below looks at a
// two-guess window only and can miss (or skip) conclusions a full
// solver would draw. That narrow window is the intended behavior.
package solver

import (
	"math/rand"

	"github.com/robalobadob/mastermind/internal/game"
)

// unknown marks a position with no confirmed color yet.
const unknown = game.Color("")

// Engine is the computer player. It is single-game: construct one per
// session and feed it every (guess, feedback) pair in order.
type Engine struct {
	palette game.Palette
	rng     *rand.Rand

	confirmed  [game.CodeLength]game.Color
	excluded   map[game.Color]bool
	candidates map[game.Color]bool
	history    []game.Turn
}

// New constructs an engine over the given palette. The rand source is
// injected so tests can run deterministically.
func New(p game.Palette, rng *rand.Rand) *Engine {
	e := &Engine{
		palette:    p,
		rng:        rng,
		excluded:   make(map[game.Color]bool),
		candidates: make(map[game.Color]bool, len(p)),
	}
	for _, c := range p {
		e.candidates[c] = true
	}
	return e
}

// Guess produces the next guess:
//   - confirmed positions are copied verbatim;
//   - every other position gets a candidate color not already placed in
//     the guess being built;
//   - if that pool is empty, an unconstrained random palette pick keeps
//     the engine moving even when the belief state is contradictory or
//     exhausted.
func (e *Engine) Guess() game.Code {
	var g game.Code
	for i, c := range e.confirmed {
		g[i] = c
	}
	for i := range g {
		if g[i] != unknown {
			continue
		}
		pool := e.eligible(g)
		if len(pool) == 0 {
			g[i] = e.palette[e.rng.Intn(len(e.palette))]
			continue
		}
		g[i] = pool[e.rng.Intn(len(pool))]
	}
	return g
}

// eligible collects, in palette order, the candidate colors not already
// placed in the partial guess.
func (e *Engine) eligible(partial game.Code) []game.Color {
	placed := make(map[game.Color]bool, game.CodeLength)
	for _, c := range partial {
		if c != unknown {
			placed[c] = true
		}
	}
	var pool []game.Color
	for _, c := range e.palette {
		if e.candidates[c] && !e.excluded[c] && !placed[c] {
			pool = append(pool, c)
		}
	}
	return pool
}

// Learn updates the belief state from one scored guess.
func (e *Engine) Learn(g game.Code, fb game.Feedback) {
	e.history = append(e.history, game.Turn{Guess: g, Feedback: fb})

	if fb.Black+fb.White == 0 {
		// None of the guessed colors is in the code at all.
		for _, c := range g {
			e.excluded[c] = true
			delete(e.candidates, c)
		}
		return
	}

	if fb.Black == game.CodeLength {
		for i, c := range g {
			if e.confirmed[i] == unknown {
				e.confirmed[i] = c
			}
		}
		return
	}

	if fb.Black > 0 {
		e.inferFromPrevious()
	}
}

// inferFromPrevious compares the newest guess with the one before it.
// When exactly one position changed, the swing in black pegs pins down
// a color: black went up, the new color at that position is correct;
// black went down, the old one is. Any other shape of change draws no
// conclusion, including the case where several positions changed and
// the counts moved, which a stronger solver could still exploit.
func (e *Engine) inferFromPrevious() {
	if len(e.history) < 2 {
		return
	}
	cur := e.history[len(e.history)-1]
	prev := e.history[len(e.history)-2]

	changed, n := -1, 0
	for i := 0; i < game.CodeLength; i++ {
		if cur.Guess[i] != prev.Guess[i] {
			changed, n = i, n+1
		}
	}
	if n != 1 || e.confirmed[changed] != unknown {
		return
	}

	switch {
	case cur.Feedback.Black > prev.Feedback.Black:
		e.confirmed[changed] = cur.Guess[changed]
	case cur.Feedback.Black < prev.Feedback.Black:
		e.confirmed[changed] = prev.Guess[changed]
	}
}

// Confirmed returns a copy of the confirmed-position slots; unknown
// slots hold the empty color.
func (e *Engine) Confirmed() [game.CodeLength]game.Color { return e.confirmed }

// Excluded reports whether a color has been proven absent.
func (e *Engine) Excluded(c game.Color) bool { return e.excluded[c] }
