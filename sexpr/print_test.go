package sexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatOneLine(t *testing.T) {
	tests := []struct {
		sx   *Sexpr
		want string
	}{
		{List(nil), "()"},
		{List([]*Sexpr{Symbol("+"), Int(1), Int(2)}), "(+ 1 2)"},
		{Vector([]*Sexpr{Int(1), Int(2), Int(3)}), "[1 2 3]"},
		{Tuple([]*Sexpr{Keyword("ok"), String("done")}), `{:ok "done"}`},
		{Quote(Symbol("x")), "'x"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, Format(test.sx))
	}
}

func TestFormatIndentsNestedSequences(t *testing.T) {
	sx := List([]*Sexpr{
		Symbol("defn"),
		Symbol("add"),
		List([]*Sexpr{Symbol("+"), Symbol("a"), Symbol("b")}),
	})
	assert.Equal(t, "(defn\n  add\n  (+ a b))", Format(sx))
}

func TestFormatIndentsLongSequences(t *testing.T) {
	sx := List([]*Sexpr{Symbol("list"), Int(1), Int(2), Int(3)})
	assert.Equal(t, "(list\n  1\n  2\n  3)", Format(sx))
}

func TestFormatFloatAlwaysFractional(t *testing.T) {
	assert.Equal(t, "5.0", Format(Float(5)))
	assert.Equal(t, "3.14", Format(Float(3.14)))
	assert.Equal(t, "-2.5", Format(Float(-2.5)))
}

func TestEqualIgnoresSource(t *testing.T) {
	a := List([]*Sexpr{Symbol("f"), Int(1)})
	b := List([]*Sexpr{Symbol("f"), Int(1)})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(List([]*Sexpr{Symbol("f"), Int(2)})))
	assert.False(t, a.Equal(Vector([]*Sexpr{Symbol("f"), Int(1)})))
	assert.False(t, Int(1).Equal(Float(1)))
}
