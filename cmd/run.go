package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ggVGc/lisix/ast"
	"github.com/ggVGc/lisix/compile"
	"github.com/ggVGc/lisix/parser"
	"github.com/ggVGc/lisix/runtime"
)

var (
	runExpression bool
	runPrint      bool
	runAST        bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [flags] [file...]",
	Short: "Run lisix code",
	Long:  `Run lisix code supplied via the command line, files, or stdin.`,
	Run: func(cmd *cobra.Command, args []string) {
		srcs, err := readSources(args, runExpression)
		if err != nil {
			fatal(err)
		}
		scope := runtime.NewScope(nil)
		for _, src := range srcs {
			if err := runSource(scope, src); err != nil {
				fatal(err)
			}
		}
	},
}

func runSource(scope *runtime.Scope, src source) error {
	forms, err := parser.Parse(src.name, src.text)
	if err != nil {
		return err
	}
	nodes, err := compile.TransformProgram(forms)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		if runAST {
			fmt.Println(ast.Print(n))
			continue
		}
		v, err := runtime.Eval(n, scope)
		if err != nil {
			return err
		}
		if runPrint {
			fmt.Println(v.String())
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisix expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
	runCmd.Flags().BoolVar(&runAST, "ast", false,
		"Print the compiled syntax tree instead of evaluating")
}
