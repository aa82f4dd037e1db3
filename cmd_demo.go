package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/solver"
	"github.com/robalobadob/mastermind/internal/store"
)

var demoFlags struct {
	turns int
	games int
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Watch the computer break its own random codes",
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().IntVar(&demoFlags.turns, "turns", 0, "override the turn limit")
	demoCmd.Flags().IntVar(&demoFlags.games, "games", 1, "number of games to run")
}

func runDemo(cmd *cobra.Command, _ []string) error {
	rng := appCfg.Rand()
	palette := game.DefaultPalette
	turns := maxTurns(demoFlags.turns)

	out := cmd.OutOrStdout()
	b := newBoard()
	st := store.NewMemoryStore()

	for i := 0; i < demoFlags.games; i++ {
		secret := game.Generate(rng, palette)
		sess := game.NewSession(secret, palette, turns)
		log.Debug().Str("session", sess.ID).Str("secret", secret.String()).Msg("demo game")

		fmt.Fprintf(out, "game %d of %d\n", i+1, demoFlags.games)
		eng := solver.New(palette, rng)
		if err := runEngine(sess, eng, out, b, appCfg.TurnDelay); err != nil {
			return err
		}
		if err := st.Save(cmd.Context(), sess); err != nil {
			return err
		}
		reportResult(out, sess, b)
	}

	logSummary(cmd.Context(), st)
	return nil
}
