// Package runtime evaluates host syntax trees produced by the compiler and
// provides the standard library those trees call into.
package runtime

import (
	"strconv"
	"strings"

	"github.com/ggVGc/lisix/ast"
)

// Type is the runtime type of a Value.
type Type uint

// Possible Type values.
const (
	VInvalid Type = iota
	VInt
	VFloat
	VString
	VBool
	VNil
	VTag
	VList
	VVector
	VTuple
	VFunc
	VBuiltin
)

var typeStrings = []string{
	VInvalid: "INVALID",
	VInt:     "int",
	VFloat:   "float",
	VString:  "string",
	VBool:    "bool",
	VNil:     "nil",
	VTag:     "tag",
	VList:    "list",
	VVector:  "vector",
	VTuple:   "tuple",
	VFunc:    "function",
	VBuiltin: "builtin",
}

func (t Type) String() string {
	if int(t) >= len(typeStrings) {
		return typeStrings[VInvalid]
	}
	return typeStrings[t]
}

// Value is a runtime value.
type Value struct {
	Type    Type
	Int     int64
	Float   float64
	Str     string
	Bool    bool
	Cells   []*Value
	Fn      *Func
	Builtin *Builtin
}

// Func is a user-defined function value with one or more clauses closing over
// its defining scope.
type Func struct {
	Name    string // empty for lambdas
	Clauses []ast.Clause
	Scope   *Scope
	Private bool
}

// Int returns a Value representing the integer x.
func Int(x int64) *Value {
	return &Value{Type: VInt, Int: x}
}

// Float returns a Value representing the floating point number x.
func Float(x float64) *Value {
	return &Value{Type: VFloat, Float: x}
}

// String returns a Value representing the string s.
func String(s string) *Value {
	return &Value{Type: VString, Str: s}
}

// Bool returns a Value representing the boolean b.
func Bool(b bool) *Value {
	return &Value{Type: VBool, Bool: b}
}

// Nil returns the "no value" Value.
func Nil() *Value {
	return &Value{Type: VNil}
}

// Tag returns a Value representing the interned name tag.
func Tag(name string) *Value {
	return &Value{Type: VTag, Str: name}
}

// List returns a Value representing an ordered sequence.
func List(cells []*Value) *Value {
	return &Value{Type: VList, Cells: cells}
}

// Vector returns a Value representing a vector.
func Vector(cells []*Value) *Value {
	return &Value{Type: VVector, Cells: cells}
}

// Tuple returns a Value representing a fixed-size tuple.
func Tuple(cells []*Value) *Value {
	return &Value{Type: VTuple, Cells: cells}
}

// FuncVal returns a Value wrapping a user-defined function.
func FuncVal(fn *Func) *Value {
	return &Value{Type: VFunc, Fn: fn}
}

// BuiltinVal returns a Value wrapping a standard library function.
func BuiltinVal(b *Builtin) *Value {
	return &Value{Type: VBuiltin, Builtin: b}
}

// IsSeq returns true for the ordered sequence types.
func (v *Value) IsSeq() bool {
	return v.Type == VList || v.Type == VVector
}

// Truthy returns false only for nil and false, like the host's conditionals.
func (v *Value) Truthy() bool {
	switch v.Type {
	case VNil:
		return false
	case VBool:
		return v.Bool
	}
	return true
}

// Equal returns true when a and b are structurally equal.  Integers compare
// equal to floats of the same magnitude.
func Equal(a, b *Value) bool {
	if a.Type != b.Type {
		if isNumber(a) && isNumber(b) {
			return asFloat(a) == asFloat(b)
		}
		return false
	}
	switch a.Type {
	case VInt:
		return a.Int == b.Int
	case VFloat:
		return a.Float == b.Float
	case VString, VTag:
		return a.Str == b.Str
	case VBool:
		return a.Bool == b.Bool
	case VNil:
		return true
	case VList, VVector, VTuple:
		if len(a.Cells) != len(b.Cells) {
			return false
		}
		for i := range a.Cells {
			if !Equal(a.Cells[i], b.Cells[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// String renders the canonical readable form of the value.  Strings render
// quoted; use Display for unquoted text.
func (v *Value) String() string {
	var buf strings.Builder
	v.write(&buf, false)
	return buf.String()
}

// Display renders the value for textual output: strings render raw and tags
// render without the leading colon.
func (v *Value) Display() string {
	var buf strings.Builder
	v.write(&buf, true)
	return buf.String()
}

func (v *Value) write(buf *strings.Builder, display bool) {
	switch v.Type {
	case VInt:
		buf.WriteString(strconv.FormatInt(v.Int, 10))
	case VFloat:
		s := strconv.FormatFloat(v.Float, 'f', -1, 64)
		if !strings.ContainsRune(s, '.') {
			s += ".0"
		}
		buf.WriteString(s)
	case VString:
		if display {
			buf.WriteString(v.Str)
		} else {
			buf.WriteString(strconv.Quote(v.Str))
		}
	case VBool:
		buf.WriteString(strconv.FormatBool(v.Bool))
	case VNil:
		buf.WriteString("nil")
	case VTag:
		if display {
			buf.WriteString(v.Str)
		} else {
			buf.WriteByte(':')
			buf.WriteString(v.Str)
		}
	case VList:
		v.writeSeq(buf, "(", ")", display)
	case VVector:
		v.writeSeq(buf, "[", "]", display)
	case VTuple:
		v.writeSeq(buf, "{", "}", display)
	case VFunc:
		name := v.Fn.Name
		if name == "" {
			name = "lambda"
		}
		buf.WriteString("#<function " + name + ">")
	case VBuiltin:
		buf.WriteString("#<builtin " + v.Builtin.Name + ">")
	default:
		buf.WriteString("#<invalid>")
	}
}

func (v *Value) writeSeq(buf *strings.Builder, open, close string, display bool) {
	buf.WriteString(open)
	for i, cell := range v.Cells {
		if i > 0 {
			buf.WriteByte(' ')
		}
		cell.write(buf, display)
	}
	buf.WriteString(close)
}

func isNumber(v *Value) bool {
	return v.Type == VInt || v.Type == VFloat
}

func asFloat(v *Value) float64 {
	if v.Type == VInt {
		return float64(v.Int)
	}
	return v.Float
}
