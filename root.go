package main

import (
	"github.com/spf13/cobra"

	"github.com/robalobadob/mastermind/internal/config"
)

// version is set at build time via -ldflags.
var version = "dev"

// appCfg is populated from the environment in main, before Execute.
var appCfg config.Config

var rootFlags struct {
	noColor bool
}

var rootCmd = &cobra.Command{
	Use:   "mastermind",
	Short: "Play Mastermind on the terminal",
	Long: "Mastermind: break a 4-peg color code in 12 turns, or set one\n" +
		"and watch the computer deduce it.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&rootFlags.noColor, "no-color", false, "disable ANSI colors")
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.Version = version
}
