// Package cmd implements the lisix command line interface.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lisix",
	Short: "A lisp front end for a general-purpose host",
	Long: `Lisix reads S-expression source text and compiles it to an executable
syntax tree.  Code can be run directly, formatted, or inspected at any
pipeline stage.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// readSources interprets args as file paths (or literal expressions when
// expression is set) and returns named source texts.  Without arguments the
// whole of stdin is read.
func readSources(args []string, expression bool) ([]source, error) {
	if expression {
		srcs := make([]source, len(args))
		for i := range args {
			srcs[i] = source{name: "argument", text: args[i]}
		}
		return srcs, nil
	}
	if len(args) == 0 {
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return []source{{name: "stdin", text: string(text)}}, nil
	}
	srcs := make([]source, len(args))
	for i, path := range args {
		text, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		srcs[i] = source{name: path, text: string(text)}
	}
	return srcs, nil
}

type source struct {
	name string
	text string
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
