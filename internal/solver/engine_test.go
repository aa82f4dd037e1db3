package solver

import (
	"math/rand"
	"testing"

	"github.com/robalobadob/mastermind/internal/game"
)

func newTestEngine(seed int64) *Engine {
	return New(game.DefaultPalette, rand.New(rand.NewSource(seed)))
}

func TestGuessAlwaysValid(t *testing.T) {
	e := newTestEngine(1)
	for i := 0; i < 200; i++ {
		g := e.Guess()
		for p, c := range g {
			if !game.DefaultPalette.Contains(c) {
				t.Fatalf("guess %d position %d holds %q, outside palette", i, p, c)
			}
		}
	}
}

func TestZeroFeedbackExcludesColors(t *testing.T) {
	e := newTestEngine(2)
	e.Learn(game.Code{"R", "R", "O", "O"}, game.Feedback{})

	if !e.Excluded("R") || !e.Excluded("O") {
		t.Fatal("R and O should be excluded after (0,0) feedback")
	}

	// Five candidates remain, so the fallback never kicks in and no
	// excluded color should ever be guessed again.
	for i := 0; i < 200; i++ {
		g := e.Guess()
		for _, c := range g {
			if c == "R" || c == "O" {
				t.Fatalf("guess %s contains excluded color %q", g, c)
			}
		}
	}
}

func TestGuessSurvivesContradictoryState(t *testing.T) {
	e := newTestEngine(3)
	// Exclude the entire palette.
	e.Learn(game.Code{"R", "O", "Y", "G"}, game.Feedback{})
	e.Learn(game.Code{"B", "I", "V", "V"}, game.Feedback{})

	for _, c := range game.DefaultPalette {
		if !e.Excluded(c) {
			t.Fatalf("%q should be excluded", c)
		}
	}

	// The unconstrained fallback must still produce full guesses.
	g := e.Guess()
	for p, c := range g {
		if !game.DefaultPalette.Contains(c) {
			t.Fatalf("fallback guess position %d holds %q", p, c)
		}
	}
}

func TestInferenceBlackIncreased(t *testing.T) {
	e := newTestEngine(4)
	e.Learn(game.Code{"R", "O", "Y", "G"}, game.Feedback{Black: 1})
	e.Learn(game.Code{"R", "O", "Y", "B"}, game.Feedback{Black: 2})

	if got := e.Confirmed()[3]; got != "B" {
		t.Fatalf("confirmed[3] = %q, want B", got)
	}
}

func TestInferenceBlackDecreased(t *testing.T) {
	e := newTestEngine(5)
	e.Learn(game.Code{"R", "O", "Y", "G"}, game.Feedback{Black: 2})
	e.Learn(game.Code{"R", "O", "Y", "B"}, game.Feedback{Black: 1})

	if got := e.Confirmed()[3]; got != "G" {
		t.Fatalf("confirmed[3] = %q, want G", got)
	}
}

func TestNoInferenceWhenBlackUnchanged(t *testing.T) {
	e := newTestEngine(6)
	e.Learn(game.Code{"R", "O", "Y", "G"}, game.Feedback{Black: 1})
	e.Learn(game.Code{"R", "O", "Y", "B"}, game.Feedback{Black: 1})

	if got := e.Confirmed()[3]; got != "" {
		t.Fatalf("confirmed[3] = %q, want no conclusion", got)
	}
}

func TestNoInferenceOnMultiPositionChange(t *testing.T) {
	e := newTestEngine(7)
	e.Learn(game.Code{"R", "O", "Y", "G"}, game.Feedback{Black: 1})
	e.Learn(game.Code{"R", "O", "B", "I"}, game.Feedback{Black: 3})

	for i, c := range e.Confirmed() {
		if c != "" {
			t.Fatalf("confirmed[%d] = %q, want no conclusion from a 2-position change", i, c)
		}
	}
}

func TestConfirmedPositionsAreMonotonic(t *testing.T) {
	e := newTestEngine(8)
	e.Learn(game.Code{"R", "O", "Y", "G"}, game.Feedback{Black: 1})
	e.Learn(game.Code{"R", "O", "Y", "B"}, game.Feedback{Black: 2})
	if got := e.Confirmed()[3]; got != "B" {
		t.Fatalf("confirmed[3] = %q, want B", got)
	}

	// A later single-position swing at the same slot must not replace it.
	e.Learn(game.Code{"R", "O", "Y", "V"}, game.Feedback{Black: 3})
	if got := e.Confirmed()[3]; got != "B" {
		t.Fatalf("confirmed[3] = %q after later swing, want B kept", got)
	}
}

func TestConfirmedPositionsUsedInEveryGuess(t *testing.T) {
	e := newTestEngine(9)
	e.Learn(game.Code{"R", "O", "Y", "G"}, game.Feedback{Black: 1})
	e.Learn(game.Code{"R", "O", "Y", "B"}, game.Feedback{Black: 2})

	for i := 0; i < 100; i++ {
		if g := e.Guess(); g[3] != "B" {
			t.Fatalf("guess %s ignores confirmed position 3", g)
		}
	}
}

func TestFullyCorrectGuessConfirmsAll(t *testing.T) {
	e := newTestEngine(10)
	secret := game.Code{"V", "I", "B", "G"}
	e.Learn(secret, game.Feedback{Black: 4})

	for i, c := range e.Confirmed() {
		if c != secret[i] {
			t.Fatalf("confirmed[%d] = %q, want %q", i, c, secret[i])
		}
	}
	if g := e.Guess(); !g.Equal(secret) {
		t.Fatalf("guess after full confirmation = %s, want %s", g, secret)
	}
}

// The engine must always finish a full game against any secret: every
// turn yields a valid guess and the belief state never wedges.
func TestEnginePlaysFullGames(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 50; round++ {
		secret := game.Generate(rng, game.DefaultPalette)
		sess := game.NewSession(secret, game.DefaultPalette, game.DefaultMaxTurns)
		e := New(game.DefaultPalette, rng)

		for !sess.Finished {
			g := e.Guess()
			fb, _, err := sess.ApplyGuess(g)
			if err != nil {
				t.Fatalf("round %d: %v", round, err)
			}
			e.Learn(g, fb)
		}
		if len(sess.Turns) == 0 || len(sess.Turns) > game.DefaultMaxTurns {
			t.Fatalf("round %d: %d turns", round, len(sess.Turns))
		}
	}
}
