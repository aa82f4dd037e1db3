package main

import (
	"bufio"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/store"
)

var playFlags struct {
	turns int
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Break a code the computer generated",
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&playFlags.turns, "turns", 0, "override the turn limit")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	rng := appCfg.Rand()
	palette := game.DefaultPalette
	turns := maxTurns(playFlags.turns)

	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	b := newBoard()
	st := store.NewMemoryStore()

	for {
		secret := game.Generate(rng, palette)
		sess := game.NewSession(secret, palette, turns)
		log.Debug().Str("session", sess.ID).Msg("new game")

		fmt.Fprintf(out, "I picked a %d-peg code from %s. You have %d turns.\n",
			game.CodeLength, palette, turns)

		for !sess.Finished {
			label := fmt.Sprintf("guess %d", len(sess.Turns)+1)
			guess, err := promptCode(in, out, label, palette)
			if err != nil {
				return err
			}
			if _, _, err := sess.ApplyGuess(guess); err != nil {
				return err
			}
			fmt.Fprintln(out, b.RenderTurn(len(sess.Turns), sess.Turns[len(sess.Turns)-1]))
		}

		if err := st.Save(cmd.Context(), sess); err != nil {
			return err
		}
		reportResult(out, sess, b)

		if !promptYesNo(in, out, "play again?") {
			break
		}
	}

	logSummary(cmd.Context(), st)
	return nil
}
