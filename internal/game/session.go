// internal/game/session.go
//
// State for a single Mastermind session.
// Responsibilities:
//   - Hold the secret code, the turn limit, and the turn log.
//   - Apply validated guesses: score, record, and transition
//     playing → won/lost.
//
// Guesses reaching ApplyGuess are already validated (Parse or Generate),
// so the only error here is guessing after the game ended.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
)

// DefaultMaxTurns is the classic turn limit.
const DefaultMaxTurns = 12

// Session holds the state of one game, in progress or finished.
type Session struct {
	ID       string  // unique session identifier (random hex string)
	Palette  Palette // color alphabet this session is played with
	MaxTurns int     // maximum number of guesses allowed
	Turns    []Turn  // guesses made so far, with their feedback
	Finished bool    // true once the game is over (won or lost)
	Won      bool    // true if the game finished with a win

	secret Code
}

// NewSession constructs a session around a secret code.
// maxTurns <= 0 selects DefaultMaxTurns.
func NewSession(secret Code, p Palette, maxTurns int) *Session {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	return &Session{
		ID:       randomID(),
		Palette:  p,
		MaxTurns: maxTurns,
		secret:   secret,
	}
}

// ApplyGuess scores a guess, appends it to the turn log, and updates the
// session state. Returns the feedback and the new state string
// ("playing"/"won"/"lost").
func (s *Session) ApplyGuess(g Code) (Feedback, string, error) {
	if s.Finished {
		return Feedback{}, s.State(), errors.New("game finished")
	}
	fb := Evaluate(s.secret, g)
	s.Turns = append(s.Turns, Turn{Guess: g, Feedback: fb})

	if fb.Black == CodeLength {
		s.Finished, s.Won = true, true
	} else if len(s.Turns) >= s.MaxTurns {
		s.Finished = true
	}
	return fb, s.State(), nil
}

// State reports a coarse string representation of the session state.
func (s *Session) State() string {
	if s.Finished {
		if s.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// Secret exposes the secret code, for revealing it after a loss.
func (s *Session) Secret() Code { return s.secret }

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
