package runtime

import (
	"fmt"
	"math"

	"github.com/ggVGc/lisix/ast"
)

// Eval evaluates a host syntax tree node in the given scope.
func Eval(n ast.Node, sc *Scope) (*Value, error) {
	switch n := n.(type) {
	case *ast.IntLit:
		return Int(n.Value), nil
	case *ast.FloatLit:
		return Float(n.Value), nil
	case *ast.StringLit:
		return String(n.Value), nil
	case *ast.BoolLit:
		return Bool(n.Value), nil
	case *ast.NilLit:
		return Nil(), nil
	case *ast.TagLit:
		return Tag(n.Name), nil
	case *ast.ListLit:
		cells, err := evalSeq(n.Elems, sc)
		if err != nil {
			return nil, err
		}
		return List(cells), nil
	case *ast.VectorLit:
		cells, err := evalSeq(n.Elems, sc)
		if err != nil {
			return nil, err
		}
		return Vector(cells), nil
	case *ast.TupleLit:
		cells, err := evalSeq(n.Elems, sc)
		if err != nil {
			return nil, err
		}
		return Tuple(cells), nil
	case *ast.SpliceElem:
		return nil, fmt.Errorf("unquote-splicing outside of a sequence")
	case *ast.Var:
		if v, ok := sc.Get(n.Name); ok {
			return v, nil
		}
		return nil, fmt.Errorf("unbound variable: %s", n.Name)
	case *ast.Ident:
		return evalIdent(n.Name, sc)
	case *ast.Call:
		return evalCall(n, sc)
	case *ast.QualCall:
		return evalQualCall(n, sc)
	case *ast.Apply:
		fn, err := Eval(n.Fn, sc)
		if err != nil {
			return nil, err
		}
		args, err := evalSeq(n.Args, sc)
		if err != nil {
			return nil, err
		}
		return Apply(fn, args)
	case *ast.Binop:
		return evalBinop(n, sc)
	case *ast.Unop:
		return evalUnop(n, sc)
	case *ast.If:
		cond, err := Eval(n.Cond, sc)
		if err != nil {
			return nil, err
		}
		if cond.Truthy() {
			return Eval(n.Then, sc)
		}
		return Eval(n.Else, sc)
	case *ast.Cond:
		for _, arm := range n.Arms {
			test, err := Eval(arm.Test, sc)
			if err != nil {
				return nil, err
			}
			if test.Truthy() {
				return Eval(arm.Result, sc)
			}
		}
		return nil, fmt.Errorf("no matching cond clause")
	case *ast.Case:
		return evalCase(n, sc)
	case *ast.FuncDef:
		fn := &Func{Name: n.Name, Clauses: n.Clauses, Scope: sc, Private: n.Private}
		sc.Define(n.Name, FuncVal(fn))
		return Nil(), nil
	case *ast.Def:
		v, err := Eval(n.Value, sc)
		if err != nil {
			return nil, err
		}
		sc.Define(n.Name, v)
		return v, nil
	case *ast.Let:
		letScope := NewScope(sc)
		for _, bind := range n.Bindings {
			v, err := Eval(bind.Value, letScope)
			if err != nil {
				return nil, err
			}
			letScope.Define(bind.Name, v)
		}
		return Eval(n.Body, letScope)
	case *ast.Lambda:
		fn := &Func{Clauses: []ast.Clause{n.Clause}, Scope: sc}
		return FuncVal(fn), nil
	case *ast.Do:
		var last *Value = Nil()
		for _, expr := range n.Exprs {
			v, err := Eval(expr, sc)
			if err != nil {
				return nil, err
			}
			last = v
		}
		return last, nil
	case *ast.Try:
		return evalTry(n.Body, sc), nil
	default:
		return nil, fmt.Errorf("cannot evaluate %T", n)
	}
}

// EvalProgram evaluates nodes in order and returns the last value.
func EvalProgram(nodes []ast.Node, sc *Scope) (*Value, error) {
	var last *Value = Nil()
	for _, n := range nodes {
		v, err := Eval(n, sc)
		if err != nil {
			return nil, err
		}
		last = v
	}
	return last, nil
}

// evalSeq evaluates sequence elements, flattening splice elements into the
// enclosing sequence.
func evalSeq(elems []ast.Node, sc *Scope) ([]*Value, error) {
	cells := make([]*Value, 0, len(elems))
	for _, el := range elems {
		if splice, ok := el.(*ast.SpliceElem); ok {
			v, err := Eval(splice.X, sc)
			if err != nil {
				return nil, err
			}
			if !v.IsSeq() {
				return nil, fmt.Errorf("cannot splice %s into a sequence", v.Type)
			}
			cells = append(cells, v.Cells...)
			continue
		}
		v, err := Eval(el, sc)
		if err != nil {
			return nil, err
		}
		cells = append(cells, v)
	}
	return cells, nil
}

// evalIdent resolves a free identifier: a lexical binding if one exists,
// otherwise a standard library function value.
func evalIdent(name string, sc *Scope) (*Value, error) {
	if v, ok := sc.Get(name); ok {
		return v, nil
	}
	if b, ok := builtins[name]; ok {
		return BuiltinVal(b), nil
	}
	return nil, fmt.Errorf("unbound identifier: %s", name)
}

func evalCall(n *ast.Call, sc *Scope) (*Value, error) {
	args, err := evalSeq(n.Args, sc)
	if err != nil {
		return nil, err
	}
	if fn, ok := sc.Get(n.Fn); ok {
		return Apply(fn, args)
	}
	if b, ok := builtins[n.Fn]; ok {
		return callBuiltin(b, args)
	}
	return nil, fmt.Errorf("undefined function: %s", n.Fn)
}

func evalQualCall(n *ast.QualCall, sc *Scope) (*Value, error) {
	ns, ok := namespaces[n.Pkg]
	if !ok {
		return nil, fmt.Errorf("unknown namespace: %s", n.Pkg)
	}
	b, ok := ns[n.Name]
	if !ok {
		return nil, fmt.Errorf("undefined function: %s.%s", n.Pkg, n.Name)
	}
	args, err := evalSeq(n.Args, sc)
	if err != nil {
		return nil, err
	}
	return callBuiltin(b, args)
}

func evalCase(n *ast.Case, sc *Scope) (*Value, error) {
	subject, err := Eval(n.Subject, sc)
	if err != nil {
		return nil, err
	}
	for _, arm := range n.Arms {
		armScope := NewScope(sc)
		if !match(arm.Pattern, subject, armScope) {
			continue
		}
		if arm.Guard != nil {
			guard, err := Eval(arm.Guard, armScope)
			if err != nil {
				return nil, err
			}
			if !guard.Truthy() {
				continue
			}
		}
		return Eval(arm.Body, armScope)
	}
	return nil, fmt.Errorf("no matching case clause for %s", subject)
}

// evalTry evaluates the body in a guarded region, converting any fault
// (evaluation error or runtime panic) into an {:error, message} tuple.
func evalTry(body ast.Node, sc *Scope) (result *Value) {
	defer func() {
		if r := recover(); r != nil {
			result = Tuple([]*Value{Tag("error"), String(fmt.Sprint(r))})
		}
	}()
	v, err := Eval(body, sc)
	if err != nil {
		return Tuple([]*Value{Tag("error"), String(err.Error())})
	}
	return v
}

// Apply calls a function or builtin value with the given arguments.
func Apply(fn *Value, args []*Value) (*Value, error) {
	switch fn.Type {
	case VBuiltin:
		return callBuiltin(fn.Builtin, args)
	case VFunc:
		return applyFunc(fn.Fn, args)
	default:
		return nil, fmt.Errorf("not a function: %s", fn)
	}
}

// applyFunc selects the first clause whose patterns match the arguments and
// whose guard holds, then evaluates its body.
func applyFunc(fn *Func, args []*Value) (*Value, error) {
	name := fn.Name
	if name == "" {
		name = "lambda"
	}
	for _, clause := range fn.Clauses {
		if len(clause.Params) != len(args) {
			continue
		}
		callScope := NewScope(fn.Scope)
		if !matchAll(clause.Params, args, callScope) {
			continue
		}
		if clause.Guard != nil {
			guard, err := Eval(clause.Guard, callScope)
			if err != nil {
				return nil, err
			}
			if !guard.Truthy() {
				continue
			}
		}
		return Eval(clause.Body, callScope)
	}
	return nil, fmt.Errorf("no matching clause for %s/%d", name, len(args))
}

func matchAll(pats []ast.Pattern, vals []*Value, sc *Scope) bool {
	for i, p := range pats {
		if !match(p, vals[i], sc) {
			return false
		}
	}
	return true
}

// match attempts to destructure v against p, binding pattern names into sc.
func match(p ast.Pattern, v *Value, sc *Scope) bool {
	switch p := p.(type) {
	case *ast.PatWildcard:
		return true
	case *ast.PatVar:
		sc.Define(p.Name, v)
		return true
	case *ast.PatLit:
		lit, err := Eval(p.Value, sc)
		if err != nil {
			return false
		}
		return Equal(lit, v)
	case *ast.PatVector:
		return v.Type == VVector && matchCells(p.Elems, v, sc)
	case *ast.PatTuple:
		return v.Type == VTuple && matchCells(p.Elems, v, sc)
	case *ast.PatList:
		return v.Type == VList && matchCells(p.Elems, v, sc)
	case *ast.PatCons:
		if !v.IsSeq() || len(v.Cells) == 0 {
			return false
		}
		rest := &Value{Type: v.Type, Cells: v.Cells[1:]}
		return match(p.Head, v.Cells[0], sc) && match(p.Tail, rest, sc)
	default:
		return false
	}
}

// matchCells destructures a sequence element-wise.  A trailing rest pattern
// consumes all remaining cells as a sequence of the subject's own type.
func matchCells(pats []ast.Pattern, seq *Value, sc *Scope) bool {
	cells := seq.Cells
	n := len(pats)
	if n > 0 {
		if _, ok := pats[n-1].(*ast.PatCons); ok {
			if len(cells) < n-1 {
				return false
			}
			if !matchAll(pats[:n-1], cells[:n-1], sc) {
				return false
			}
			rest := &Value{Type: seq.Type, Cells: cells[n-1:]}
			return match(pats[n-1], rest, sc)
		}
	}
	if len(cells) != n {
		return false
	}
	return matchAll(pats, cells, sc)
}

func evalBinop(n *ast.Binop, sc *Scope) (*Value, error) {
	// The boolean operators short-circuit; everything else is strict.
	switch n.Op {
	case "and", "or":
		lhs, err := Eval(n.LHS, sc)
		if err != nil {
			return nil, err
		}
		if n.Op == "and" && !lhs.Truthy() {
			return Bool(false), nil
		}
		if n.Op == "or" && lhs.Truthy() {
			return Bool(true), nil
		}
		rhs, err := Eval(n.RHS, sc)
		if err != nil {
			return nil, err
		}
		return Bool(rhs.Truthy()), nil
	}

	lhs, err := Eval(n.LHS, sc)
	if err != nil {
		return nil, err
	}
	rhs, err := Eval(n.RHS, sc)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case "==":
		return Bool(Equal(lhs, rhs)), nil
	case "!=":
		return Bool(!Equal(lhs, rhs)), nil
	case "<", ">", "<=", ">=":
		return compareValues(n.Op, lhs, rhs)
	case "+", "-", "*", "/":
		return arith(n.Op, lhs, rhs)
	case "rem", "mod":
		return intOp(n.Op, lhs, rhs)
	default:
		return nil, fmt.Errorf("unsupported operator: %s", n.Op)
	}
}

func evalUnop(n *ast.Unop, sc *Scope) (*Value, error) {
	x, err := Eval(n.X, sc)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case "-":
		switch x.Type {
		case VInt:
			return Int(-x.Int), nil
		case VFloat:
			return Float(-x.Float), nil
		default:
			return nil, fmt.Errorf("cannot negate %s", x.Type)
		}
	case "not":
		return Bool(!x.Truthy()), nil
	default:
		return nil, fmt.Errorf("unsupported operator: %s", n.Op)
	}
}

func compareValues(op string, lhs, rhs *Value) (*Value, error) {
	if lhs.Type == VString && rhs.Type == VString {
		return Bool(compareOrd(op, compareStrings(lhs.Str, rhs.Str))), nil
	}
	if !isNumber(lhs) || !isNumber(rhs) {
		return nil, fmt.Errorf("cannot compare %s and %s", lhs.Type, rhs.Type)
	}
	a, b := asFloat(lhs), asFloat(rhs)
	var ord int
	switch {
	case a < b:
		ord = -1
	case a > b:
		ord = 1
	}
	return Bool(compareOrd(op, ord)), nil
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareOrd(op string, ord int) bool {
	switch op {
	case "<":
		return ord < 0
	case ">":
		return ord > 0
	case "<=":
		return ord <= 0
	default:
		return ord >= 0
	}
}

// arith applies an arithmetic operator with the host's numeric promotion:
// integer operands stay integral except for inexact division.
func arith(op string, lhs, rhs *Value) (*Value, error) {
	if !isNumber(lhs) || !isNumber(rhs) {
		return nil, fmt.Errorf("cannot apply %s to %s and %s", op, lhs.Type, rhs.Type)
	}
	if lhs.Type == VInt && rhs.Type == VInt {
		a, b := lhs.Int, rhs.Int
		switch op {
		case "+":
			return Int(a + b), nil
		case "-":
			return Int(a - b), nil
		case "*":
			return Int(a * b), nil
		default:
			if b == 0 {
				return nil, fmt.Errorf("division by zero")
			}
			if a%b == 0 {
				return Int(a / b), nil
			}
			return Float(float64(a) / float64(b)), nil
		}
	}
	a, b := asFloat(lhs), asFloat(rhs)
	switch op {
	case "+":
		return Float(a + b), nil
	case "-":
		return Float(a - b), nil
	case "*":
		return Float(a * b), nil
	default:
		if b == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return Float(a / b), nil
	}
}

// intOp applies the strictly integral operators.  rem truncates toward zero,
// mod floors toward negative infinity.
func intOp(op string, lhs, rhs *Value) (*Value, error) {
	if lhs.Type != VInt || rhs.Type != VInt {
		return nil, fmt.Errorf("%s expects integers (got %s and %s)", op, lhs.Type, rhs.Type)
	}
	if rhs.Int == 0 {
		return nil, fmt.Errorf("division by zero")
	}
	if op == "rem" {
		return Int(lhs.Int % rhs.Int), nil
	}
	m := math.Mod(float64(lhs.Int), float64(rhs.Int))
	if m != 0 && (m < 0) != (rhs.Int < 0) {
		m += float64(rhs.Int)
	}
	return Int(int64(m)), nil
}
