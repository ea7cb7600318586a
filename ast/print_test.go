package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintLeaves(t *testing.T) {
	assert.Equal(t, "(lit 42)", Print(&IntLit{Value: 42}))
	assert.Equal(t, "(lit 2.5)", Print(&FloatLit{Value: 2.5}))
	assert.Equal(t, `(lit "hi")`, Print(&StringLit{Value: "hi"}))
	assert.Equal(t, "(lit nil)", Print(&NilLit{}))
	assert.Equal(t, "(tag ok)", Print(&TagLit{Name: "ok"}))
	assert.Equal(t, "(var x)", Print(&Var{Name: "x"}))
	assert.Equal(t, "(free f)", Print(&Ident{Name: "f"}))
}

func TestPrintFlatSequences(t *testing.T) {
	n := &Call{Fn: "get", Args: []Node{
		&Ident{Name: "user"},
		&TagLit{Name: "name"},
	}}
	assert.Equal(t, "(call get (free user) (tag name))", Print(n))

	b := &Binop{Op: "+", LHS: &IntLit{Value: 1}, RHS: &IntLit{Value: 2}}
	assert.Equal(t, "(binop + (lit 1) (lit 2))", Print(b))
}

func TestPrintIndentsNestedNodes(t *testing.T) {
	n := &If{
		Cond: &Binop{Op: "<", LHS: &Var{Name: "x"}, RHS: &IntLit{Value: 0}},
		Then: &IntLit{Value: 1},
		Else: &NilLit{},
	}
	want := "(if\n" +
		"  (binop < (var x) (lit 0))\n" +
		"  (lit 1)\n" +
		"  (lit nil))"
	assert.Equal(t, want, Print(n))
}

func TestPrintPatterns(t *testing.T) {
	fn := &FuncDef{
		Name: "f",
		Clauses: []Clause{{
			Params: []Pattern{&PatCons{Head: &PatVar{Name: "h"}, Tail: &PatVar{Name: "t"}}},
			Body:   &Var{Name: "h"},
		}},
	}
	assert.Equal(t, "(defn f\n  (clause [h|t] (var h)))", Print(fn))
}
