// Package compile transforms S-expression trees into host syntax trees.  The
// transformer is a pure structural recursion; the only state it threads is
// the binding environment deciding variable references from free identifiers.
package compile

import (
	"strings"

	"github.com/ggVGc/lisix/ast"
	"github.com/ggVGc/lisix/sexpr"
)

// Transform converts a single S-expression into a host syntax tree.  The
// binding environment starts empty.
func Transform(sx *sexpr.Sexpr) (ast.Node, error) {
	return transform(sx, NewEnv(nil))
}

// TransformProgram converts top-level forms in order.  Definitions made by
// earlier forms are visible as bound names to later forms.
func TransformProgram(sxs []*sexpr.Sexpr) ([]ast.Node, error) {
	env := NewEnv(nil)
	nodes := make([]ast.Node, len(sxs))
	for i, sx := range sxs {
		n, err := transform(sx, env)
		if err != nil {
			return nil, err
		}
		nodes[i] = n
	}
	return nodes, nil
}

func transform(sx *sexpr.Sexpr, env *Env) (ast.Node, error) {
	switch sx.Type {
	case sexpr.SInt:
		return &ast.IntLit{Value: sx.Int}, nil
	case sexpr.SFloat:
		return &ast.FloatLit{Value: sx.Float}, nil
	case sexpr.SString:
		return &ast.StringLit{Value: sx.Str}, nil
	case sexpr.SBool:
		return &ast.BoolLit{Value: sx.Bool}, nil
	case sexpr.SNil:
		return &ast.NilLit{}, nil
	case sexpr.SKeyword:
		return &ast.TagLit{Name: sx.Str}, nil
	case sexpr.SSymbol:
		if env.Bound(sx.Str) {
			return &ast.Var{Name: sx.Str}, nil
		}
		return &ast.Ident{Name: sx.Str}, nil
	case sexpr.SInterp:
		return &ast.Var{Name: sx.Str}, nil
	case sexpr.SVector:
		elems, err := transformSeq(sx.Cells, env)
		if err != nil {
			return nil, err
		}
		return &ast.VectorLit{Elems: elems}, nil
	case sexpr.STuple:
		elems, err := transformSeq(sx.Cells, env)
		if err != nil {
			return nil, err
		}
		return &ast.TupleLit{Elems: elems}, nil
	case sexpr.SQuote:
		return quoteData(sx.Cells[0], env)
	case sexpr.SQuasiquote:
		return quasiquote(sx.Cells[0], env)
	case sexpr.SUnquote, sexpr.SSplice:
		return nil, errorf(sx, "", "%s outside of quasiquote", sx.Type)
	case sexpr.SList:
		return transformList(sx, env)
	default:
		return nil, errorf(sx, "", "cannot transform %s", sx.Type)
	}
}

func transformList(sx *sexpr.Sexpr, env *Env) (ast.Node, error) {
	if len(sx.Cells) == 0 {
		return &ast.ListLit{}, nil
	}
	head := sx.Cells[0]
	args := sx.Cells[1:]
	switch head.Type {
	case sexpr.SKeyword:
		// (:field x) reads field :field from x.
		if len(args) != 1 {
			return nil, errorf(sx, ":"+head.Str, "one argument expected (got %d)", len(args))
		}
		obj, err := transform(args[0], env)
		if err != nil {
			return nil, err
		}
		return &ast.Call{Fn: "get", Args: []ast.Node{obj, &ast.TagLit{Name: head.Str}}}, nil
	case sexpr.SSymbol:
		return transformForm(sx, head.Str, args, env)
	default:
		// The head is itself an expression yielding a function value.
		fn, err := transform(head, env)
		if err != nil {
			return nil, err
		}
		targs, err := transformSeq(args, env)
		if err != nil {
			return nil, err
		}
		return &ast.Apply{Fn: fn, Args: targs}, nil
	}
}

// transformForm dispatches a list on its head symbol.  The special form set
// is closed; anything else falls through to a generic call.
func transformForm(sx *sexpr.Sexpr, name string, args []*sexpr.Sexpr, env *Env) (ast.Node, error) {
	switch name {
	case "defn":
		return transformDefn(sx, args, env, false)
	case "defp":
		return transformDefn(sx, args, env, true)
	case "def":
		return transformDef(sx, args, env)
	case "let":
		return transformLet(sx, args, env)
	case "if":
		return transformIf(sx, args, env)
	case "cond":
		return transformCond(sx, args, env)
	case "case":
		return transformCase(sx, args, env)
	case "lambda", "fn":
		return transformLambda(sx, name, args, env)
	case "do":
		return transformDo(args, env)
	case "try":
		return transformTry(sx, args, env)
	case "quote":
		if len(args) != 1 {
			return nil, errorf(sx, "quote", "one argument expected (got %d)", len(args))
		}
		return quoteData(args[0], env)
	case "+", "*", "/":
		return transformArith(sx, name, args, env)
	case "-":
		if len(args) == 1 {
			x, err := transform(args[0], env)
			if err != nil {
				return nil, err
			}
			return &ast.Unop{Op: "-", X: x}, nil
		}
		return transformArith(sx, name, args, env)
	case "rem", "mod", "<", ">", "<=", ">=", "==", "!=":
		return transformBinary(sx, name, args, env)
	case "=":
		return transformBinary(sx, "==", args, env)
	case "and", "or":
		return transformArith(sx, name, args, env)
	case "not":
		if len(args) != 1 {
			return nil, errorf(sx, name, "one argument expected (got %d)", len(args))
		}
		x, err := transform(args[0], env)
		if err != nil {
			return nil, err
		}
		return &ast.Unop{Op: "not", X: x}, nil
	case "car", "head", "first":
		return transformCall(sx, "car", name, args, env, 1)
	case "cdr", "tail", "rest":
		return transformCall(sx, "cdr", name, args, env, 1)
	case "cons":
		return transformCall(sx, "cons", name, args, env, 2)
	case "list":
		return transformCall(sx, "list", name, args, env, -1)
	case "nil?", "empty?", "list?", "atom?", "number?", "string?":
		return transformCall(sx, name, name, args, env, 1)
	case "str", "print", "println":
		return transformCall(sx, name, name, args, env, -1)
	default:
		return transformGenericCall(name, args, env)
	}
}

// transformGenericCall handles the fall-through cases: qualified namespace
// calls, applications of bound function values, and free function calls left
// to the host to resolve.
func transformGenericCall(name string, args []*sexpr.Sexpr, env *Env) (ast.Node, error) {
	targs, err := transformSeq(args, env)
	if err != nil {
		return nil, err
	}
	if pkg, member, ok := strings.Cut(name, "."); ok && pkg != "" && member != "" {
		return &ast.QualCall{Pkg: pkg, Name: member, Args: targs}, nil
	}
	if env.Bound(name) {
		return &ast.Apply{Fn: &ast.Var{Name: name}, Args: targs}, nil
	}
	return &ast.Call{Fn: name, Args: targs}, nil
}

// transformCall emits a call to the standard library function fn after
// checking the source form's arity.  An arity of -1 accepts any number of
// arguments.
func transformCall(sx *sexpr.Sexpr, fn, form string, args []*sexpr.Sexpr, env *Env, arity int) (ast.Node, error) {
	if arity >= 0 && len(args) != arity {
		return nil, errorf(sx, form, "%d arguments expected (got %d)", arity, len(args))
	}
	targs, err := transformSeq(args, env)
	if err != nil {
		return nil, err
	}
	return &ast.Call{Fn: fn, Args: targs}, nil
}

// transformArith reduces 2+ arguments left to right into nested binary
// operator nodes.
func transformArith(sx *sexpr.Sexpr, op string, args []*sexpr.Sexpr, env *Env) (ast.Node, error) {
	if len(args) < 2 {
		return nil, errorf(sx, op, "at least two arguments expected (got %d)", len(args))
	}
	acc, err := transform(args[0], env)
	if err != nil {
		return nil, err
	}
	for _, arg := range args[1:] {
		rhs, err := transform(arg, env)
		if err != nil {
			return nil, err
		}
		acc = &ast.Binop{Op: op, LHS: acc, RHS: rhs}
	}
	return acc, nil
}

func transformBinary(sx *sexpr.Sexpr, op string, args []*sexpr.Sexpr, env *Env) (ast.Node, error) {
	if len(args) != 2 {
		return nil, errorf(sx, op, "two arguments expected (got %d)", len(args))
	}
	lhs, err := transform(args[0], env)
	if err != nil {
		return nil, err
	}
	rhs, err := transform(args[1], env)
	if err != nil {
		return nil, err
	}
	return &ast.Binop{Op: op, LHS: lhs, RHS: rhs}, nil
}

func transformIf(sx *sexpr.Sexpr, args []*sexpr.Sexpr, env *Env) (ast.Node, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, errorf(sx, "if", "two or three arguments expected (got %d)", len(args))
	}
	cond, err := transform(args[0], env)
	if err != nil {
		return nil, err
	}
	then, err := transform(args[1], env)
	if err != nil {
		return nil, err
	}
	var els ast.Node = &ast.NilLit{}
	if len(args) == 3 {
		els, err = transform(args[2], env)
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Cond: cond, Then: then, Else: els}, nil
}

func transformCond(sx *sexpr.Sexpr, args []*sexpr.Sexpr, env *Env) (ast.Node, error) {
	if len(args) == 0 {
		return nil, errorf(sx, "cond", "at least one clause expected")
	}
	arms := make([]ast.CondArm, len(args))
	for i, clause := range args {
		if !isSeq(clause) || len(clause.Cells) != 2 {
			return nil, errorf(clause, "cond", "clause is not a test/result pair")
		}
		test, err := transform(clause.Cells[0], env)
		if err != nil {
			return nil, err
		}
		result, err := transform(clause.Cells[1], env)
		if err != nil {
			return nil, err
		}
		arms[i] = ast.CondArm{Test: test, Result: result}
	}
	return &ast.Cond{Arms: arms}, nil
}

func transformCase(sx *sexpr.Sexpr, args []*sexpr.Sexpr, env *Env) (ast.Node, error) {
	if len(args) < 2 {
		return nil, errorf(sx, "case", "subject and at least one clause expected")
	}
	subject, err := transform(args[0], env)
	if err != nil {
		return nil, err
	}
	arms := make([]ast.CaseArm, len(args)-1)
	for i, clause := range args[1:] {
		if !isSeq(clause) || len(clause.Cells) < 2 || len(clause.Cells) > 3 {
			return nil, errorf(clause, "case", "clause is not a pattern/body pair")
		}
		// Clause patterns are matched structurally by the host, they are
		// never transformed as expressions.
		clauseEnv := NewEnv(env)
		pat, err := pattern(clause.Cells[0], clauseEnv)
		if err != nil {
			return nil, err
		}
		arm := ast.CaseArm{Pattern: pat}
		body := clause.Cells[1]
		if len(clause.Cells) == 3 {
			arm.Guard, err = transform(clause.Cells[1], clauseEnv)
			if err != nil {
				return nil, err
			}
			body = clause.Cells[2]
		}
		arm.Body, err = transform(body, clauseEnv)
		if err != nil {
			return nil, err
		}
		arms[i] = arm
	}
	return &ast.Case{Subject: subject, Arms: arms}, nil
}

func transformLet(sx *sexpr.Sexpr, args []*sexpr.Sexpr, env *Env) (ast.Node, error) {
	if len(args) < 2 {
		return nil, errorf(sx, "let", "bindings and body expected")
	}
	bindlist := args[0]
	if !isSeq(bindlist) {
		return nil, errorf(bindlist, "let", "first argument is not a binding list")
	}
	if len(bindlist.Cells)%2 != 0 {
		return nil, errorf(bindlist, "let", "odd number of binding forms")
	}
	// Bindings are sequential: each initializer sees all prior bindings but
	// none of the later ones.
	letEnv := NewEnv(env)
	bindings := make([]ast.Binding, 0, len(bindlist.Cells)/2)
	for i := 0; i < len(bindlist.Cells); i += 2 {
		name := bindlist.Cells[i]
		if name.Type != sexpr.SSymbol {
			return nil, errorf(name, "let", "binding name is not a symbol: %s", name.Type)
		}
		value, err := transform(bindlist.Cells[i+1], letEnv)
		if err != nil {
			return nil, err
		}
		letEnv.Bind(name.Str)
		bindings = append(bindings, ast.Binding{Name: name.Str, Value: value})
	}
	body, err := transformBody(args[1:], letEnv)
	if err != nil {
		return nil, err
	}
	return &ast.Let{Bindings: bindings, Body: body}, nil
}

func transformDef(sx *sexpr.Sexpr, args []*sexpr.Sexpr, env *Env) (ast.Node, error) {
	if len(args) != 2 {
		return nil, errorf(sx, "def", "name and value expected (got %d arguments)", len(args))
	}
	name := args[0]
	if name.Type != sexpr.SSymbol {
		return nil, errorf(name, "def", "name is not a symbol: %s", name.Type)
	}
	value, err := transform(args[1], env)
	if err != nil {
		return nil, err
	}
	env.Bind(name.Str)
	return &ast.Def{Name: name.Str, Value: value}, nil
}

func transformDefn(sx *sexpr.Sexpr, args []*sexpr.Sexpr, env *Env, private bool) (ast.Node, error) {
	form := "defn"
	if private {
		form = "defp"
	}
	if len(args) < 2 {
		return nil, errorf(sx, form, "name and at least one clause expected")
	}
	name := args[0]
	if name.Type != sexpr.SSymbol {
		return nil, errorf(name, form, "name is not a symbol: %s", name.Type)
	}
	// The function name is bound before its clauses are transformed so the
	// body can recurse.
	env.Bind(name.Str)

	rest := args[1:]
	var clauses []ast.Clause
	if clausesShaped(rest) {
		clauses = make([]ast.Clause, len(rest))
		for i, cv := range rest {
			clause, err := transformClauseVector(cv, form, env)
			if err != nil {
				return nil, err
			}
			clauses[i] = clause
		}
	} else {
		clause, err := transformClause(sx, form, rest, env)
		if err != nil {
			return nil, err
		}
		clauses = []ast.Clause{clause}
	}
	return &ast.FuncDef{Name: name.Str, Clauses: clauses, Private: private}, nil
}

// clausesShaped reports whether every form after the function name is a
// bracketed clause [params ...], distinguishing the multi-clause syntax from
// a single clause whose first form is the parameter vector.
func clausesShaped(forms []*sexpr.Sexpr) bool {
	for _, f := range forms {
		if f.Type != sexpr.SVector || len(f.Cells) < 2 {
			return false
		}
		if f.Cells[0].Type != sexpr.SVector {
			return false
		}
	}
	return len(forms) > 0
}

// transformClauseVector transforms a bracketed clause: [params body] or
// [params guard body].
func transformClauseVector(cv *sexpr.Sexpr, form string, env *Env) (ast.Clause, error) {
	forms := []*sexpr.Sexpr{cv.Cells[0]}
	if len(cv.Cells) == 3 {
		forms = append(forms, sexpr.Keyword("when"), cv.Cells[1], cv.Cells[2])
	} else {
		forms = append(forms, cv.Cells[1:]...)
	}
	return transformClause(cv, form, forms, env)
}

// transformClause transforms a parameter list followed by optional :when
// guards and a body.  Each clause extends the environment with its own
// argument names, shadowing without merging into the parent.
func transformClause(sx *sexpr.Sexpr, form string, forms []*sexpr.Sexpr, env *Env) (ast.Clause, error) {
	params := forms[0]
	if params.Type != sexpr.SVector && params.Type != sexpr.SList {
		return ast.Clause{}, errorf(params, form, "argument list is not a vector or list: %s", params.Type)
	}
	clauseEnv := NewEnv(env)
	pats, err := patternSeq(params.Cells, clauseEnv)
	if err != nil {
		return ast.Clause{}, err
	}
	clause := ast.Clause{Params: pats}

	rest := forms[1:]
	for len(rest) >= 2 && rest[0].Type == sexpr.SKeyword && rest[0].Str == "when" {
		guard, err := transform(rest[1], clauseEnv)
		if err != nil {
			return ast.Clause{}, err
		}
		if clause.Guard == nil {
			clause.Guard = guard
		} else {
			// Multiple guards combine with logical AND, in order.
			clause.Guard = &ast.Binop{Op: "and", LHS: clause.Guard, RHS: guard}
		}
		rest = rest[2:]
	}
	if len(rest) == 0 {
		return ast.Clause{}, errorf(sx, form, "clause has no body")
	}
	clause.Body, err = transformBody(rest, clauseEnv)
	if err != nil {
		return ast.Clause{}, err
	}
	return clause, nil
}

func transformLambda(sx *sexpr.Sexpr, form string, args []*sexpr.Sexpr, env *Env) (ast.Node, error) {
	if len(args) < 2 {
		return nil, errorf(sx, form, "argument list and body expected")
	}
	clause, err := transformClause(sx, form, args, env)
	if err != nil {
		return nil, err
	}
	return &ast.Lambda{Clause: clause}, nil
}

func transformDo(args []*sexpr.Sexpr, env *Env) (ast.Node, error) {
	if len(args) == 0 {
		return &ast.NilLit{}, nil
	}
	exprs, err := transformSeq(args, env)
	if err != nil {
		return nil, err
	}
	return &ast.Do{Exprs: exprs}, nil
}

func transformTry(sx *sexpr.Sexpr, args []*sexpr.Sexpr, env *Env) (ast.Node, error) {
	if len(args) == 0 {
		return nil, errorf(sx, "try", "body expected")
	}
	body, err := transformBody(args, env)
	if err != nil {
		return nil, err
	}
	return &ast.Try{Body: body}, nil
}

// transformBody transforms one or more body forms, sequencing multiple forms
// into a do-block.
func transformBody(forms []*sexpr.Sexpr, env *Env) (ast.Node, error) {
	if len(forms) == 1 {
		return transform(forms[0], env)
	}
	return transformDo(forms, env)
}

func transformSeq(cells []*sexpr.Sexpr, env *Env) ([]ast.Node, error) {
	nodes := make([]ast.Node, len(cells))
	for i, cell := range cells {
		n, err := transform(cell, env)
		if err != nil {
			return nil, err
		}
		nodes[i] = n
	}
	return nodes, nil
}

func isSeq(sx *sexpr.Sexpr) bool {
	return sx.Type == sexpr.SList || sx.Type == sexpr.SVector
}
