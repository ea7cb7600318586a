package compile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ggVGc/lisix/ast"
	"github.com/ggVGc/lisix/parser"
)

func transformSource(t *testing.T, src string) ast.Node {
	t.Helper()
	sx, err := parser.ParseExpr("test", src)
	require.NoError(t, err, "source %q", src)
	node, err := Transform(sx)
	require.NoError(t, err, "source %q", src)
	return node
}

func transformErr(t *testing.T, src string) error {
	t.Helper()
	sx, err := parser.ParseExpr("test", src)
	require.NoError(t, err, "source %q", src)
	_, err = Transform(sx)
	require.Error(t, err, "source %q", src)
	return err
}

func TestTransformLiterals(t *testing.T) {
	assert.Equal(t, &ast.IntLit{Value: 42}, transformSource(t, "42"))
	assert.Equal(t, &ast.FloatLit{Value: 3.14}, transformSource(t, "3.14"))
	assert.Equal(t, &ast.StringLit{Value: "hi"}, transformSource(t, `"hi"`))
	assert.Equal(t, &ast.BoolLit{Value: true}, transformSource(t, "true"))
	assert.Equal(t, &ast.NilLit{}, transformSource(t, "nil"))
	assert.Equal(t, &ast.TagLit{Name: "ok"}, transformSource(t, ":ok"))
	assert.Equal(t, &ast.ListLit{}, transformSource(t, "()"))
}

func TestTransformFreeSymbol(t *testing.T) {
	// An unbound symbol is left for the host to resolve.
	assert.Equal(t, &ast.Ident{Name: "x"}, transformSource(t, "x"))
}

func TestTransformArithmeticReduction(t *testing.T) {
	want := &ast.Binop{
		Op: "+",
		LHS: &ast.Binop{
			Op:  "+",
			LHS: &ast.IntLit{Value: 1},
			RHS: &ast.IntLit{Value: 2},
		},
		RHS: &ast.IntLit{Value: 3},
	}
	assert.Equal(t, want, transformSource(t, "(+ 1 2 3)"))
}

func TestTransformUnaryMinus(t *testing.T) {
	assert.Equal(t, &ast.Unop{Op: "-", X: &ast.Ident{Name: "x"}}, transformSource(t, "(- x)"))
}

func TestTransformEqualsAlias(t *testing.T) {
	node := transformSource(t, "(= a b)")
	binop, ok := node.(*ast.Binop)
	require.True(t, ok)
	assert.Equal(t, "==", binop.Op)
}

func TestTransformBinaryArity(t *testing.T) {
	for _, src := range []string{"(< 1)", "(< 1 2 3)", "(rem 7)", "(mod 7 2 3)"} {
		err := transformErr(t, src)
		assert.Contains(t, err.Error(), "two arguments expected", "source %q", src)
	}
}

func TestTransformKeywordHead(t *testing.T) {
	want := &ast.Call{Fn: "get", Args: []ast.Node{
		&ast.Ident{Name: "user"},
		&ast.TagLit{Name: "name"},
	}}
	assert.Equal(t, want, transformSource(t, "(:name user)"))
}

func TestTransformQualifiedCall(t *testing.T) {
	want := &ast.QualCall{Pkg: "lists", Name: "reverse", Args: []ast.Node{
		&ast.Ident{Name: "xs"},
	}}
	assert.Equal(t, want, transformSource(t, "(lists.reverse xs)"))
}

func TestTransformBoundHeadApplies(t *testing.T) {
	node := transformSource(t, "(let [f (lambda [x] x)] (f 1))")
	let, ok := node.(*ast.Let)
	require.True(t, ok)
	apply, ok := let.Body.(*ast.Apply)
	require.True(t, ok)
	assert.Equal(t, &ast.Var{Name: "f"}, apply.Fn)
}

func TestTransformQuoteSuppressesEvaluation(t *testing.T) {
	want := &ast.ListLit{Elems: []ast.Node{
		&ast.TagLit{Name: "+"},
		&ast.IntLit{Value: 1},
		&ast.IntLit{Value: 2},
	}}
	assert.Equal(t, want, transformSource(t, "'(+ 1 2)"))
	assert.Equal(t, want, transformSource(t, "(quote (+ 1 2))"))
}

func TestTransformQuoteInterpolation(t *testing.T) {
	node := transformSource(t, "'(a ~{outer})")
	list, ok := node.(*ast.ListLit)
	require.True(t, ok)
	require.Len(t, list.Elems, 2)
	assert.Equal(t, &ast.TagLit{Name: "a"}, list.Elems[0])
	assert.Equal(t, &ast.Var{Name: "outer"}, list.Elems[1])
}

func TestTransformQuasiquote(t *testing.T) {
	node := transformSource(t, "`(a ~(+ 1 2) ~@xs)")
	list, ok := node.(*ast.ListLit)
	require.True(t, ok)
	require.Len(t, list.Elems, 3)
	assert.Equal(t, &ast.TagLit{Name: "a"}, list.Elems[0])
	_, ok = list.Elems[1].(*ast.Binop)
	assert.True(t, ok)
	splice, ok := list.Elems[2].(*ast.SpliceElem)
	require.True(t, ok)
	assert.Equal(t, &ast.Ident{Name: "xs"}, splice.X)
}

func TestTransformUnquoteOutsideQuasiquote(t *testing.T) {
	err := transformErr(t, "~x")
	assert.Contains(t, err.Error(), "outside of quasiquote")
}

func TestTransformLetSequentialBindings(t *testing.T) {
	node := transformSource(t, "(let [x 10 y (* x 2)] (+ x y))")
	let, ok := node.(*ast.Let)
	require.True(t, ok)
	require.Len(t, let.Bindings, 2)
	// The second initializer sees the first binding.
	mul, ok := let.Bindings[1].Value.(*ast.Binop)
	require.True(t, ok)
	assert.Equal(t, &ast.Var{Name: "x"}, mul.LHS)
	body, ok := let.Body.(*ast.Binop)
	require.True(t, ok)
	assert.Equal(t, &ast.Var{Name: "x"}, body.LHS)
	assert.Equal(t, &ast.Var{Name: "y"}, body.RHS)
}

func TestTransformLetErrors(t *testing.T) {
	err := transformErr(t, "(let [x] x)")
	assert.Contains(t, err.Error(), "odd number of binding forms")

	err = transformErr(t, "(let [1 2] 3)")
	assert.Contains(t, err.Error(), "not a symbol")

	err = transformErr(t, "(let [x 1])")
	assert.Contains(t, err.Error(), "bindings and body expected")
}

func TestTransformIf(t *testing.T) {
	node := transformSource(t, "(if c 1)")
	ifn, ok := node.(*ast.If)
	require.True(t, ok)
	assert.Equal(t, &ast.NilLit{}, ifn.Else)

	err := transformErr(t, "(if c)")
	assert.Contains(t, err.Error(), "two or three arguments expected")
}

func TestTransformDefnSingleClause(t *testing.T) {
	node := transformSource(t, "(defn add [a b] (+ a b))")
	fn, ok := node.(*ast.FuncDef)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.False(t, fn.Private)
	require.Len(t, fn.Clauses, 1)
	require.Len(t, fn.Clauses[0].Params, 2)
	assert.Nil(t, fn.Clauses[0].Guard)
	// Parameters are bound inside the body.
	body, ok := fn.Clauses[0].Body.(*ast.Binop)
	require.True(t, ok)
	assert.Equal(t, &ast.Var{Name: "a"}, body.LHS)
}

func TestTransformDefpPrivate(t *testing.T) {
	node := transformSource(t, "(defp helper [x] x)")
	fn, ok := node.(*ast.FuncDef)
	require.True(t, ok)
	assert.True(t, fn.Private)
}

func TestTransformDefnMultiClause(t *testing.T) {
	node := transformSource(t, `
		(defn size
		  [[[]] 0]
		  [[_|t] (+ 1 (size t))])`)
	fn, ok := node.(*ast.FuncDef)
	require.True(t, ok)
	require.Len(t, fn.Clauses, 2)
	require.Len(t, fn.Clauses[0].Params, 1)
	empty, ok := fn.Clauses[0].Params[0].(*ast.PatVector)
	require.True(t, ok)
	assert.Len(t, empty.Elems, 0)
	require.Len(t, fn.Clauses[1].Params, 1)
	_, ok = fn.Clauses[1].Params[0].(*ast.PatCons)
	assert.True(t, ok)
	// The body can recurse on the function's own name.
	body := fn.Clauses[1].Body.(*ast.Binop)
	apply, ok := body.RHS.(*ast.Apply)
	require.True(t, ok)
	assert.Equal(t, &ast.Var{Name: "size"}, apply.Fn)
}

func TestTransformDefnGuards(t *testing.T) {
	// Keyword guards follow the parameter vector.
	node := transformSource(t, "(defn pos [n] :when (> n 0) n)")
	fn := node.(*ast.FuncDef)
	require.Len(t, fn.Clauses, 1)
	require.NotNil(t, fn.Clauses[0].Guard)

	// Multiple guards combine with logical AND, in order.
	node = transformSource(t, "(defn small [n] :when (> n 0) :when (< n 10) n)")
	fn = node.(*ast.FuncDef)
	guard, ok := fn.Clauses[0].Guard.(*ast.Binop)
	require.True(t, ok)
	assert.Equal(t, "and", guard.Op)

	// Three-element clause vectors hold pattern, guard, body.
	node = transformSource(t, "(defn sign [[n] (> n 0) 1] [[_] 0])")
	fn = node.(*ast.FuncDef)
	require.Len(t, fn.Clauses, 2)
	assert.NotNil(t, fn.Clauses[0].Guard)
	assert.Nil(t, fn.Clauses[1].Guard)
}

func TestTransformDefnErrors(t *testing.T) {
	err := transformErr(t, "(defn f [x] :when (> x 0))")
	assert.Contains(t, err.Error(), "clause has no body")

	err = transformErr(t, "(defn 1 [x] x)")
	assert.Contains(t, err.Error(), "not a symbol")
}

func TestTransformCond(t *testing.T) {
	node := transformSource(t, "(cond [(> x 0) 1] [true 0])")
	cond, ok := node.(*ast.Cond)
	require.True(t, ok)
	assert.Len(t, cond.Arms, 2)

	err := transformErr(t, "(cond [1 2 3])")
	assert.Contains(t, err.Error(), "not a test/result pair")
}

func TestTransformCase(t *testing.T) {
	node := transformSource(t, `
		(case x
		  [{:ok v} v]
		  [[h|t] (> h 0) h]
		  [_ nil])`)
	c, ok := node.(*ast.Case)
	require.True(t, ok)
	require.Len(t, c.Arms, 3)
	tup, ok := c.Arms[0].Pattern.(*ast.PatTuple)
	require.True(t, ok)
	assert.Equal(t, &ast.PatLit{Value: &ast.TagLit{Name: "ok"}}, tup.Elems[0])
	assert.Equal(t, &ast.PatVar{Name: "v"}, tup.Elems[1])
	assert.NotNil(t, c.Arms[1].Guard)
	assert.Equal(t, &ast.PatWildcard{}, c.Arms[2].Pattern)
}

func TestTransformPatternBindings(t *testing.T) {
	// Names bound by a pattern are variables inside the arm body only.
	node := transformSource(t, "(case x [[h|t] h])")
	c := node.(*ast.Case)
	assert.Equal(t, &ast.Var{Name: "h"}, c.Arms[0].Body)

	assert.Equal(t, &ast.Ident{Name: "h"}, transformSource(t, "h"))
}

func TestTransformDoAndTry(t *testing.T) {
	node := transformSource(t, "(do 1 2 3)")
	do, ok := node.(*ast.Do)
	require.True(t, ok)
	assert.Len(t, do.Exprs, 3)

	assert.Equal(t, &ast.NilLit{}, transformSource(t, "(do)"))

	node = transformSource(t, "(try (/ 1 0))")
	_, ok = node.(*ast.Try)
	assert.True(t, ok)

	err := transformErr(t, "(try)")
	assert.Contains(t, err.Error(), "body expected")
}

func TestTransformProgramThreadsDefinitions(t *testing.T) {
	sxs, err := parser.Parse("test", "(def x 1)\n(+ x y)")
	require.NoError(t, err)
	nodes, err := TransformProgram(sxs)
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	sum, ok := nodes[1].(*ast.Binop)
	require.True(t, ok)
	// x was defined by an earlier form; y was not.
	assert.Equal(t, &ast.Var{Name: "x"}, sum.LHS)
	assert.Equal(t, &ast.Ident{Name: "y"}, sum.RHS)
}
