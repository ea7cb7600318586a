package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ggVGc/lisix/repl"
)

// replCmd starts the interactive prompt.
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive lisix session",
	Run: func(cmd *cobra.Command, args []string) {
		repl.RunRepl("lisix> ")
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
