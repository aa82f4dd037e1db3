package main

import (
	"bufio"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/solver"
	"github.com/robalobadob/mastermind/internal/store"
)

var solveFlags struct {
	turns int
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Set a code and let the computer break it",
	Long: "You enter a secret code once; the computer then guesses, and the\n" +
		"program scores each guess against your code automatically.",
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&solveFlags.turns, "turns", 0, "override the turn limit")
}

func runSolve(cmd *cobra.Command, _ []string) error {
	rng := appCfg.Rand()
	palette := game.DefaultPalette
	turns := maxTurns(solveFlags.turns)

	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	b := newBoard()
	st := store.NewMemoryStore()

	secret, err := promptCode(in, out, "secret code", palette)
	if err != nil {
		return err
	}

	sess := game.NewSession(secret, palette, turns)
	eng := solver.New(palette, rng)
	log.Debug().Str("session", sess.ID).Msg("solver engaged")

	if err := runEngine(sess, eng, out, b, appCfg.TurnDelay); err != nil {
		return err
	}
	if err := st.Save(cmd.Context(), sess); err != nil {
		return err
	}
	reportResult(out, sess, b)
	logSummary(cmd.Context(), st)
	return nil
}
