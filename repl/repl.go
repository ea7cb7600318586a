// Package repl implements the interactive lisix prompt.
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"

	"github.com/ggVGc/lisix/compile"
	"github.com/ggVGc/lisix/parser"
	"github.com/ggVGc/lisix/parser/reader"
	"github.com/ggVGc/lisix/runtime"
)

// RunRepl runs the interactive loop.  When stdin is not a terminal the whole
// stream is read and evaluated as a single program instead.
func RunRepl(prompt string) {
	scope := runtime.NewScope(nil)

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			errln(err)
			return
		}
		if err := evalString(scope, "stdin", string(src), true); err != nil {
			errln(err)
		}
		return
	}

	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	var buf []byte
	for {
		line, err := rl.ReadSlice()
		if err == readline.ErrInterrupt {
			buf = nil
			rl.SetPrompt(prompt)
			continue
		}
		if err != nil {
			if err != io.EOF {
				errln(err)
			}
			return
		}
		if len(buf) != 0 {
			buf = append(buf, '\n')
			line = append(buf, line...)
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(line) == 0 {
			continue
		}
		err = evalString(scope, "repl", string(line), true)
		if reader.IsIncomplete(err) {
			// The form isn't finished, wait for a continuation line.
			buf = append([]byte(nil), line...)
			rl.SetPrompt(contPrompt)
			continue
		}
		if err != nil {
			errln(err)
		}
	}
}

// evalString runs source through the full pipeline, printing each top-level
// form's value when print is set.
func evalString(scope *runtime.Scope, name, src string, print bool) error {
	forms, err := parser.Parse(name, src)
	if err != nil {
		return err
	}
	nodes, err := compile.TransformProgram(forms)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		v, err := runtime.Eval(n, scope)
		if err != nil {
			return err
		}
		if print {
			fmt.Println(v.String())
		}
	}
	return nil
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
