// Package langtest provides a table-driven runner for end-to-end language
// tests exercising the full lexer/reader/transform/eval pipeline.
package langtest

import (
	"testing"

	"github.com/ggVGc/lisix/compile"
	"github.com/ggVGc/lisix/parser"
	"github.com/ggVGc/lisix/runtime"
)

// TestSequence is a sequence of expressions which are evaluated sequentially
// in a shared scope.
type TestSequence []struct {
	Expr   string // a lisix expression
	Result string // the rendered result value
}

// TestSuite is a set of named TestSequences.
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on an isolated scope.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		scope := runtime.NewScope(nil)
		for j, expr := range test.TestSequence {
			forms, err := parser.Parse("test", expr.Expr)
			if err != nil {
				t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				continue
			}
			if len(forms) == 0 {
				t.Errorf("test %d %q: expr %d: no expression parsed", i, test.Name, j)
				continue
			}
			nodes, err := compile.TransformProgram(forms)
			if err != nil {
				t.Errorf("test %d %q: expr %d: transform error: %v", i, test.Name, j, err)
				continue
			}
			v, err := runtime.EvalProgram(nodes, scope)
			if err != nil {
				t.Errorf("test %d %q: expr %d: eval error: %v", i, test.Name, j, err)
				continue
			}
			if v.String() != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, v)
			}
		}
	}
}

// ErrorSuite is a set of expressions that must fail in some pipeline stage.
type ErrorSuite []struct {
	Name string
	Expr string
}

// RunErrorSuite runs each entry of tests expecting an error from one of the
// pipeline stages.
func RunErrorSuite(t *testing.T, tests ErrorSuite) {
	for i, test := range tests {
		forms, err := parser.Parse("test", test.Expr)
		if err != nil {
			continue
		}
		nodes, err := compile.TransformProgram(forms)
		if err != nil {
			continue
		}
		v, err := runtime.EvalProgram(nodes, runtime.NewScope(nil))
		if err == nil {
			t.Errorf("test %d %q: expected an error (got %s)", i, test.Name, v)
		}
	}
}
