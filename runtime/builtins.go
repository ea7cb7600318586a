package runtime

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Stdout receives the output of print and println.  Tests replace it to
// capture output.
var Stdout io.Writer = os.Stdout

// BuiltinFn is the implementation of a standard library function.
type BuiltinFn func(args []*Value) (*Value, error)

// Builtin is a standard library function definition.
type Builtin struct {
	Name  string
	Arity int // -1 accepts any number of arguments
	Fn    BuiltinFn
}

var langBuiltins = []*Builtin{
	{"car", 1, builtinCar},
	{"cdr", 1, builtinCdr},
	{"cons", 2, builtinCons},
	{"list", -1, builtinList},
	{"get", 2, builtinGet},
	{"length", 1, builtinLength},
	{"reverse", 1, builtinReverse},
	{"concat", -1, builtinConcat},
	{"map", 2, builtinMap},
	{"filter", 2, builtinFilter},
	{"reduce", 3, builtinReduce},
	{"sum", 1, builtinSum},
	{"distinct", 1, builtinDistinct},
	{"sort", 1, builtinSort},
	{"partition", 2, builtinPartition},
	{"interleave", 2, builtinInterleave},
	{"range", 2, builtinRange},
	{"gcd", 2, builtinGCD},
	{"nil?", 1, builtinIsNil},
	{"empty?", 1, builtinIsEmpty},
	{"list?", 1, builtinIsList},
	{"atom?", 1, builtinIsAtom},
	{"number?", 1, builtinIsNumber},
	{"string?", 1, builtinIsString},
	{"str", -1, builtinStr},
	{"print", -1, builtinPrint},
	{"println", -1, builtinPrintln},
}

var builtins = make(map[string]*Builtin)

// namespaces exposes the standard library under qualified names for dotted
// calls like (lists.map f xs).
var namespaces = map[string]map[string]*Builtin{
	"lists": {},
	"math":  {},
	"io":    {},
}

var namespaceNames = map[string][]string{
	"lists": {"car", "cdr", "cons", "list", "length", "reverse", "concat",
		"map", "filter", "reduce", "distinct", "sort", "partition",
		"interleave", "range"},
	"math": {"sum", "gcd"},
	"io":   {"str", "print", "println"},
}

func init() {
	for _, b := range langBuiltins {
		builtins[b.Name] = b
	}
	for ns, names := range namespaceNames {
		for _, name := range names {
			namespaces[ns][name] = builtins[name]
		}
	}
}

// LookupBuiltin returns the named standard library function.
func LookupBuiltin(name string) (*Builtin, bool) {
	b, ok := builtins[name]
	return b, ok
}

func callBuiltin(b *Builtin, args []*Value) (*Value, error) {
	if b.Arity >= 0 && len(args) != b.Arity {
		return nil, fmt.Errorf("%s: %d arguments expected (got %d)", b.Name, b.Arity, len(args))
	}
	return b.Fn(args)
}

func seqArg(name string, v *Value) ([]*Value, error) {
	if v.Type == VNil {
		return nil, nil
	}
	if !v.IsSeq() {
		return nil, fmt.Errorf("%s: not a sequence: %s", name, v.Type)
	}
	return v.Cells, nil
}

func builtinCar(args []*Value) (*Value, error) {
	cells, err := seqArg("car", args[0])
	if err != nil {
		return nil, err
	}
	if len(cells) == 0 {
		return Nil(), nil
	}
	return cells[0], nil
}

func builtinCdr(args []*Value) (*Value, error) {
	cells, err := seqArg("cdr", args[0])
	if err != nil {
		return nil, err
	}
	if len(cells) == 0 {
		return Nil(), nil
	}
	return List(cells[1:]), nil
}

func builtinCons(args []*Value) (*Value, error) {
	head, tail := args[0], args[1]
	if tail.Type == VNil {
		return List([]*Value{head}), nil
	}
	cells, err := seqArg("cons", tail)
	if err != nil {
		return nil, err
	}
	out := make([]*Value, 0, len(cells)+1)
	out = append(out, head)
	out = append(out, cells...)
	return List(out), nil
}

func builtinList(args []*Value) (*Value, error) {
	return List(args), nil
}

// builtinGet looks a key up in an association sequence of two-element pairs.
// A missing key yields nil.
func builtinGet(args []*Value) (*Value, error) {
	cells, err := seqArg("get", args[0])
	if err != nil {
		return nil, err
	}
	key := args[1]
	for _, pair := range cells {
		if len(pair.Cells) != 2 {
			return nil, fmt.Errorf("get: not a key/value pair: %s", pair)
		}
		if Equal(pair.Cells[0], key) {
			return pair.Cells[1], nil
		}
	}
	return Nil(), nil
}

func builtinLength(args []*Value) (*Value, error) {
	if args[0].Type == VString {
		return Int(int64(len(args[0].Str))), nil
	}
	cells, err := seqArg("length", args[0])
	if err != nil {
		return nil, err
	}
	return Int(int64(len(cells))), nil
}

func builtinReverse(args []*Value) (*Value, error) {
	cells, err := seqArg("reverse", args[0])
	if err != nil {
		return nil, err
	}
	out := make([]*Value, len(cells))
	for i, cell := range cells {
		out[len(cells)-1-i] = cell
	}
	return List(out), nil
}

func builtinConcat(args []*Value) (*Value, error) {
	var out []*Value
	for _, arg := range args {
		cells, err := seqArg("concat", arg)
		if err != nil {
			return nil, err
		}
		out = append(out, cells...)
	}
	return List(out), nil
}

func builtinMap(args []*Value) (*Value, error) {
	cells, err := seqArg("map", args[1])
	if err != nil {
		return nil, err
	}
	out := make([]*Value, len(cells))
	for i, cell := range cells {
		v, err := Apply(args[0], []*Value{cell})
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return List(out), nil
}

func builtinFilter(args []*Value) (*Value, error) {
	cells, err := seqArg("filter", args[1])
	if err != nil {
		return nil, err
	}
	var out []*Value
	for _, cell := range cells {
		keep, err := Apply(args[0], []*Value{cell})
		if err != nil {
			return nil, err
		}
		if keep.Truthy() {
			out = append(out, cell)
		}
	}
	return List(out), nil
}

func builtinReduce(args []*Value) (*Value, error) {
	cells, err := seqArg("reduce", args[2])
	if err != nil {
		return nil, err
	}
	acc := args[1]
	for _, cell := range cells {
		acc, err = Apply(args[0], []*Value{acc, cell})
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func builtinSum(args []*Value) (*Value, error) {
	cells, err := seqArg("sum", args[0])
	if err != nil {
		return nil, err
	}
	acc := Int(0)
	for _, cell := range cells {
		acc, err = arith("+", acc, cell)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func builtinDistinct(args []*Value) (*Value, error) {
	cells, err := seqArg("distinct", args[0])
	if err != nil {
		return nil, err
	}
	var out []*Value
	for _, cell := range cells {
		dup := false
		for _, seen := range out {
			if Equal(seen, cell) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, cell)
		}
	}
	return List(out), nil
}

func builtinSort(args []*Value) (*Value, error) {
	cells, err := seqArg("sort", args[0])
	if err != nil {
		return nil, err
	}
	out := make([]*Value, len(cells))
	copy(out, cells)
	var sortErr error
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Type == VString && b.Type == VString {
			return a.Str < b.Str
		}
		if !isNumber(a) || !isNumber(b) {
			sortErr = fmt.Errorf("sort: cannot order %s and %s", a.Type, b.Type)
			return false
		}
		return asFloat(a) < asFloat(b)
	})
	if sortErr != nil {
		return nil, sortErr
	}
	return List(out), nil
}

// builtinPartition splits a sequence by a predicate into a tuple of the
// matching and non-matching elements.
func builtinPartition(args []*Value) (*Value, error) {
	cells, err := seqArg("partition", args[1])
	if err != nil {
		return nil, err
	}
	var yes, no []*Value
	for _, cell := range cells {
		keep, err := Apply(args[0], []*Value{cell})
		if err != nil {
			return nil, err
		}
		if keep.Truthy() {
			yes = append(yes, cell)
		} else {
			no = append(no, cell)
		}
	}
	return Tuple([]*Value{List(yes), List(no)}), nil
}

func builtinInterleave(args []*Value) (*Value, error) {
	a, err := seqArg("interleave", args[0])
	if err != nil {
		return nil, err
	}
	b, err := seqArg("interleave", args[1])
	if err != nil {
		return nil, err
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]*Value, 0, 2*n)
	for i := 0; i < n; i++ {
		out = append(out, a[i], b[i])
	}
	return List(out), nil
}

func builtinRange(args []*Value) (*Value, error) {
	if args[0].Type != VInt || args[1].Type != VInt {
		return nil, fmt.Errorf("range: integers expected (got %s and %s)", args[0].Type, args[1].Type)
	}
	var out []*Value
	for i := args[0].Int; i < args[1].Int; i++ {
		out = append(out, Int(i))
	}
	return List(out), nil
}

func builtinGCD(args []*Value) (*Value, error) {
	if args[0].Type != VInt || args[1].Type != VInt {
		return nil, fmt.Errorf("gcd: integers expected (got %s and %s)", args[0].Type, args[1].Type)
	}
	a, b := args[0].Int, args[1].Int
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return Int(a), nil
}

func builtinIsNil(args []*Value) (*Value, error) {
	return Bool(args[0].Type == VNil), nil
}

func builtinIsEmpty(args []*Value) (*Value, error) {
	switch args[0].Type {
	case VNil:
		return Bool(true), nil
	case VString:
		return Bool(args[0].Str == ""), nil
	case VList, VVector, VTuple:
		return Bool(len(args[0].Cells) == 0), nil
	default:
		return nil, fmt.Errorf("empty?: not a sequence: %s", args[0].Type)
	}
}

func builtinIsList(args []*Value) (*Value, error) {
	return Bool(args[0].Type == VList), nil
}

func builtinIsAtom(args []*Value) (*Value, error) {
	switch args[0].Type {
	case VList, VVector, VTuple:
		return Bool(false), nil
	}
	return Bool(true), nil
}

func builtinIsNumber(args []*Value) (*Value, error) {
	return Bool(isNumber(args[0])), nil
}

func builtinIsString(args []*Value) (*Value, error) {
	return Bool(args[0].Type == VString), nil
}

func builtinStr(args []*Value) (*Value, error) {
	var buf strings.Builder
	for _, arg := range args {
		buf.WriteString(arg.Display())
	}
	return String(buf.String()), nil
}

func writeJoined(args []*Value) {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.Display()
	}
	io.WriteString(Stdout, strings.Join(parts, " "))
}

func builtinPrint(args []*Value) (*Value, error) {
	writeJoined(args)
	return Nil(), nil
}

func builtinPrintln(args []*Value) (*Value, error) {
	writeJoined(args)
	io.WriteString(Stdout, "\n")
	return Nil(), nil
}
