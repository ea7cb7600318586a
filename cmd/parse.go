package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ggVGc/lisix/parser"
)

var parseExpression bool

// parseCmd reads source without transforming it, dumping each top-level form
// as inspectable data.
var parseCmd = &cobra.Command{
	Use:   "parse [flags] [file...]",
	Short: "Read lisix source without compiling it",
	Long:  `Read lisix source text and print each top-level form as data.`,
	Run: func(cmd *cobra.Command, args []string) {
		srcs, err := readSources(args, parseExpression)
		if err != nil {
			fatal(err)
		}
		for _, src := range srcs {
			forms, err := parser.Parse(src.name, src.text)
			if err != nil {
				fatal(err)
			}
			for _, form := range forms {
				fmt.Println(form.String())
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false,
		"Interpret arguments as lisix expressions")
}
