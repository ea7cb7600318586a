package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ggVGc/lisix/parser"
	"github.com/ggVGc/lisix/sexpr"
)

var fmtExpression bool

// fmtCmd pretty-prints source in the canonical, re-parseable form.
var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] [file...]",
	Short: "Format lisix source",
	Long:  `Format lisix source text in its canonical form.`,
	Run: func(cmd *cobra.Command, args []string) {
		srcs, err := readSources(args, fmtExpression)
		if err != nil {
			fatal(err)
		}
		for _, src := range srcs {
			forms, err := parser.Parse(src.name, src.text)
			if err != nil {
				fatal(err)
			}
			for _, form := range forms {
				fmt.Println(sexpr.Format(form))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVarP(&fmtExpression, "expression", "e", false,
		"Interpret arguments as lisix expressions")
}
