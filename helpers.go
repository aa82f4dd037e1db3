package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/mastermind/internal/board"
	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/solver"
	"github.com/robalobadob/mastermind/internal/store"
)

func newBoard() *board.Board {
	return board.New(!rootFlags.noColor)
}

// promptCode keeps asking until the line parses as a valid code.
// Validation failures re-prompt; read errors (EOF, closed pipe) abort.
func promptCode(in *bufio.Reader, out io.Writer, label string, p game.Palette) (game.Code, error) {
	for {
		fmt.Fprintf(out, "%s [%d of %s]: ", label, game.CodeLength, p)
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return game.Code{}, err
		}
		c, perr := game.Parse(line, p)
		if perr != nil {
			if errors.Is(perr, game.ErrInvalidCode) {
				fmt.Fprintln(out, perr)
				continue
			}
			return game.Code{}, perr
		}
		return c, nil
	}
}

// promptYesNo reads a y/n answer; anything but an explicit yes is no.
func promptYesNo(in *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	ans := strings.ToLower(strings.TrimSpace(line))
	return ans == "y" || ans == "yes"
}

// runEngine plays one session to completion with the solver guessing.
// The delay between turns is cosmetic pacing only.
func runEngine(sess *game.Session, eng *solver.Engine, out io.Writer, b *board.Board, delay time.Duration) error {
	for !sess.Finished {
		g := eng.Guess()
		fb, _, err := sess.ApplyGuess(g)
		if err != nil {
			return err
		}
		eng.Learn(g, fb)
		fmt.Fprintln(out, b.RenderTurn(len(sess.Turns), sess.Turns[len(sess.Turns)-1]))
		if delay > 0 && !sess.Finished {
			time.Sleep(delay)
		}
	}
	return nil
}

// reportResult prints the end-of-game banner.
func reportResult(out io.Writer, sess *game.Session, b *board.Board) {
	if sess.Won {
		fmt.Fprintf(out, "solved in %d turn(s)\n", len(sess.Turns))
		return
	}
	fmt.Fprintf(out, "out of turns. the code was %s\n", b.RenderCode(sess.Secret()))
}

// logSummary reports the per-run tally kept in the session store.
func logSummary(ctx context.Context, st store.Store) {
	played, won, err := st.Summary(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("session summary unavailable")
		return
	}
	log.Info().Int("played", played).Int("won", won).Msg("session summary")
}

func maxTurns(override int) int {
	if override > 0 {
		return override
	}
	return appCfg.MaxTurns
}
