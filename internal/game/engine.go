// internal/game/engine.go
//
// Code construction and feedback evaluation.
// Responsibilities:
//   - Generate random secret codes from a palette (injectable rand source).
//   - Parse and validate externally supplied codes (human input).
//   - Score guesses with the classic two-pass Mastermind algorithm
//     (exact matches first, then color-only matches, consume-on-match).
//
// Notes:
//   - Evaluate is a total function over well-formed codes; validation
//     happens once, at the Parse boundary.
//   - ErrInvalidCode is the only error kind this package produces for
//     bad input; callers are expected to re-prompt, not abort.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// ErrInvalidCode reports a proposed code or guess that is not exactly
// CodeLength symbols, or contains a symbol outside the palette.
var ErrInvalidCode = errors.New("invalid code")

// Generate produces a uniformly random code by sampling the palette
// independently for each position, with replacement. There is no
// uniqueness constraint between positions.
func Generate(rng *rand.Rand, p Palette) Code {
	var c Code
	for i := range c {
		c[i] = p[rng.Intn(len(p))]
	}
	return c
}

// Parse validates a raw human-entered code against the palette.
// Input is case-insensitive and tolerant of separators: "royg",
// "R O Y G" and "r,o,y,g" all parse to the same code.
// Returns an error wrapping ErrInvalidCode on wrong length or on a
// symbol outside the palette.
func Parse(raw string, p Palette) (Code, error) {
	cleaned := strings.ToUpper(strings.TrimSpace(raw))
	cleaned = strings.NewReplacer(" ", "", ",", "", "\t", "").Replace(cleaned)

	var c Code
	runes := []rune(cleaned)
	if len(runes) != CodeLength {
		return c, fmt.Errorf("%w: want %d symbols, got %d", ErrInvalidCode, CodeLength, len(runes))
	}
	for i, r := range runes {
		col := Color(string(r))
		if !p.Contains(col) {
			return c, fmt.Errorf("%w: %q is not one of %s", ErrInvalidCode, string(r), p)
		}
		c[i] = col
	}
	return c, nil
}

// Evaluate scores a guess against a secret.
//
// Pass 1:
//   - Count exact color+position matches as black pegs and mark both
//     positions consumed so they cannot be reused.
//
// Pass 2:
//   - For each unconsumed guess peg, look for an unconsumed secret peg
//     of the same color anywhere on the board; count a white peg and
//     consume that secret peg.
//
// Consuming on match bounds the total pegs for any single color by
// min(occurrences in secret, occurrences in guess), which is what makes
// repeated colors score correctly.
func Evaluate(secret, guess Code) Feedback {
	var fb Feedback
	var secretUsed, guessUsed [CodeLength]bool

	for i := 0; i < CodeLength; i++ {
		if guess[i] == secret[i] {
			fb.Black++
			secretUsed[i] = true
			guessUsed[i] = true
		}
	}

	for i := 0; i < CodeLength; i++ {
		if guessUsed[i] {
			continue
		}
		for j := 0; j < CodeLength; j++ {
			if secretUsed[j] || secret[j] != guess[i] {
				continue
			}
			fb.White++
			secretUsed[j] = true
			break
		}
	}
	return fb
}

// Equal reports an element-wise exact match between two codes.
func (c Code) Equal(other Code) bool { return c == other }

// String renders the code as its concatenated symbol tokens, e.g. "ROYG".
func (c Code) String() string {
	var b strings.Builder
	for _, col := range c {
		b.WriteString(string(col))
	}
	return b.String()
}

// String renders the palette as its concatenated symbol tokens.
func (p Palette) String() string {
	var b strings.Builder
	for _, col := range p {
		b.WriteString(string(col))
	}
	return b.String()
}
