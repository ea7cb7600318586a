// Package sexpr defines the S-expression tree produced by the reader and
// consumed by the compiler.  Nodes own their children outright and are never
// mutated after construction.
package sexpr

import (
	"strconv"
	"strings"

	"github.com/ggVGc/lisix/parser/token"
)

// Type is the type of an Sexpr node.
type Type uint

// Possible Type values.
const (
	SInvalid Type = iota
	SSymbol
	SKeyword
	SInt
	SFloat
	SString
	SBool
	SNil
	SList
	SVector
	STuple
	SQuote
	SQuasiquote
	SUnquote
	SSplice
	SInterp
)

var typeStrings = []string{
	SInvalid:    "INVALID",
	SSymbol:     "symbol",
	SKeyword:    "keyword",
	SInt:        "int",
	SFloat:      "float",
	SString:     "string",
	SBool:       "bool",
	SNil:        "nil",
	SList:       "list",
	SVector:     "vector",
	STuple:      "tuple",
	SQuote:      "quote",
	SQuasiquote: "quasiquote",
	SUnquote:    "unquote",
	SSplice:     "unquote-splicing",
	SInterp:     "interpolate",
}

func (t Type) String() string {
	if int(t) >= len(typeStrings) {
		return typeStrings[SInvalid]
	}
	return typeStrings[t]
}

// Sexpr is a node in an S-expression tree.  Str holds symbol, keyword,
// interpolation and string payloads.  Wrapper nodes (quote, quasiquote,
// unquote, splicing) hold their single operand in Cells[0].
type Sexpr struct {
	Type   Type
	Str    string
	Int    int64
	Float  float64
	Bool   bool
	Cells  []*Sexpr
	Source *token.Location
}

// Symbol returns an Sexpr representing the symbol name.
func Symbol(name string) *Sexpr {
	return &Sexpr{Type: SSymbol, Str: name}
}

// Keyword returns an Sexpr representing the keyword :name.
func Keyword(name string) *Sexpr {
	return &Sexpr{Type: SKeyword, Str: name}
}

// Int returns an Sexpr representing the integer x.
func Int(x int64) *Sexpr {
	return &Sexpr{Type: SInt, Int: x}
}

// Float returns an Sexpr representing the floating point number x.
func Float(x float64) *Sexpr {
	return &Sexpr{Type: SFloat, Float: x}
}

// String returns an Sexpr representing the string s.
func String(s string) *Sexpr {
	return &Sexpr{Type: SString, Str: s}
}

// Bool returns an Sexpr representing the boolean b.
func Bool(b bool) *Sexpr {
	return &Sexpr{Type: SBool, Bool: b}
}

// Nil returns an Sexpr representing nil.
func Nil() *Sexpr {
	return &Sexpr{Type: SNil}
}

// List returns an Sexpr representing a list of the given expressions.
func List(cells []*Sexpr) *Sexpr {
	return &Sexpr{Type: SList, Cells: cells}
}

// Vector returns an Sexpr representing a vector of the given expressions.
func Vector(cells []*Sexpr) *Sexpr {
	return &Sexpr{Type: SVector, Cells: cells}
}

// Tuple returns an Sexpr representing a tuple of the given expressions.
func Tuple(cells []*Sexpr) *Sexpr {
	return &Sexpr{Type: STuple, Cells: cells}
}

// Quote returns an Sexpr quoting x.
func Quote(x *Sexpr) *Sexpr {
	return &Sexpr{Type: SQuote, Cells: []*Sexpr{x}}
}

// Quasiquote returns an Sexpr quasiquoting x.
func Quasiquote(x *Sexpr) *Sexpr {
	return &Sexpr{Type: SQuasiquote, Cells: []*Sexpr{x}}
}

// Unquote returns an Sexpr unquoting x.
func Unquote(x *Sexpr) *Sexpr {
	return &Sexpr{Type: SUnquote, Cells: []*Sexpr{x}}
}

// Splice returns an Sexpr splice-unquoting x.
func Splice(x *Sexpr) *Sexpr {
	return &Sexpr{Type: SSplice, Cells: []*Sexpr{x}}
}

// Interp returns an Sexpr interpolating the outer-scope name.
func Interp(name string) *Sexpr {
	return &Sexpr{Type: SInterp, Str: name}
}

// Len returns the number of child cells of the node.
func (sx *Sexpr) Len() int {
	return len(sx.Cells)
}

// IsAtom returns true for leaf nodes, the nodes with no child cells.
func (sx *Sexpr) IsAtom() bool {
	switch sx.Type {
	case SSymbol, SKeyword, SInt, SFloat, SString, SBool, SNil, SInterp:
		return true
	}
	return false
}

// Equal returns true when sx and other are structurally equal.  Source
// locations are ignored.
func (sx *Sexpr) Equal(other *Sexpr) bool {
	if sx.Type != other.Type {
		return false
	}
	switch sx.Type {
	case SSymbol, SKeyword, SString, SInterp:
		return sx.Str == other.Str
	case SInt:
		return sx.Int == other.Int
	case SFloat:
		return sx.Float == other.Float
	case SBool:
		return sx.Bool == other.Bool
	case SNil:
		return true
	}
	if len(sx.Cells) != len(other.Cells) {
		return false
	}
	for i := range sx.Cells {
		if !sx.Cells[i].Equal(other.Cells[i]) {
			return false
		}
	}
	return true
}

// String renders the canonical, single-line textual form of the node.  The
// rendered text reads back as an equal tree.
func (sx *Sexpr) String() string {
	var buf strings.Builder
	sx.write(&buf)
	return buf.String()
}

func (sx *Sexpr) write(buf *strings.Builder) {
	switch sx.Type {
	case SSymbol:
		buf.WriteString(sx.Str)
	case SKeyword:
		buf.WriteByte(':')
		buf.WriteString(sx.Str)
	case SInt:
		buf.WriteString(strconv.FormatInt(sx.Int, 10))
	case SFloat:
		buf.WriteString(formatFloat(sx.Float))
	case SString:
		buf.WriteString(strconv.Quote(sx.Str))
	case SBool:
		buf.WriteString(strconv.FormatBool(sx.Bool))
	case SNil:
		buf.WriteString("nil")
	case SList:
		writeSeq(buf, "(", ")", sx.Cells)
	case SVector:
		writeSeq(buf, "[", "]", sx.Cells)
	case STuple:
		writeSeq(buf, "{", "}", sx.Cells)
	case SQuote:
		buf.WriteByte('\'')
		sx.Cells[0].write(buf)
	case SQuasiquote:
		buf.WriteByte('`')
		sx.Cells[0].write(buf)
	case SUnquote:
		buf.WriteByte('~')
		sx.Cells[0].write(buf)
	case SSplice:
		buf.WriteString("~@")
		sx.Cells[0].write(buf)
	case SInterp:
		buf.WriteString("~{")
		buf.WriteString(sx.Str)
		buf.WriteByte('}')
	default:
		buf.WriteString("#<invalid>")
	}
}

func writeSeq(buf *strings.Builder, open, close string, cells []*Sexpr) {
	buf.WriteString(open)
	for i, cell := range cells {
		if i > 0 {
			buf.WriteByte(' ')
		}
		cell.write(buf)
	}
	buf.WriteString(close)
}

// formatFloat renders a float so that it reads back as a FLOAT token.  The
// lexer has no exponent syntax so the plain decimal form is used, and a
// fractional part is always present.
func formatFloat(x float64) string {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
