package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ggVGc/lisix/parser/token"
	"github.com/ggVGc/lisix/sexpr"
)

func parseProgram(t *testing.T, src string) []*sexpr.Sexpr {
	t.Helper()
	p := New(token.NewScanner("test", src))
	exprs, err := p.ParseProgram()
	require.NoError(t, err, "source %q", src)
	return exprs
}

func parseErr(t *testing.T, src string) error {
	t.Helper()
	p := New(token.NewScanner("test", src))
	_, err := p.ParseProgram()
	require.Error(t, err, "source %q", src)
	return err
}

func TestParseProgramEmpty(t *testing.T) {
	assert.Len(t, parseProgram(t, ""), 0)
	assert.Len(t, parseProgram(t, " ; nothing here\n"), 0)
}

func TestParseProgramCanonical(t *testing.T) {
	// Canonical rendering doubles as the structural check for parse trees.
	tests := []struct {
		source string
		want   string
	}{
		{"()", "()"},
		{"(+ 1 2)", "(+ 1 2)"},
		{"(* (+ 1 2) 3)", "(* (+ 1 2) 3)"},
		{"[1 2 3]", "[1 2 3]"},
		{"{:ok 1}", "{:ok 1}"},
		{"(f [a b] {x y})", "(f [a b] {x y})"},
		{"3.14", "3.14"},
		{"-2.5", "-2.5"},
		{"5.0", "5.0"},
		{`"hi"`, `"hi"`},
		{":name", ":name"},
		{"true", "true"},
		{"false", "false"},
		{"nil", "nil"},
		{"'x", "'x"},
		{"'(+ 1 2)", "'(+ 1 2)"},
		{"`(a ~b ~@c)", "`(a ~b ~@c)"},
		{"~{outer}", "~{outer}"},
		{"; comment\n(f ; inline\n 1)", "(f 1)"},
	}
	for _, test := range tests {
		exprs := parseProgram(t, test.source)
		require.Len(t, exprs, 1, "source %q", test.source)
		assert.Equal(t, test.want, exprs[0].String(), "source %q", test.source)
	}
}

func TestParseProgramMultipleForms(t *testing.T) {
	exprs := parseProgram(t, "(def x 1)\n(def y 2)\n(+ x y)")
	require.Len(t, exprs, 3)
	assert.Equal(t, "(def x 1)", exprs[0].String())
	assert.Equal(t, "(def y 2)", exprs[1].String())
	assert.Equal(t, "(+ x y)", exprs[2].String())
}

func TestParseNestedSequences(t *testing.T) {
	exprs := parseProgram(t, "(case x [[h|t] h] [_ nil])")
	require.Len(t, exprs, 1)
	form := exprs[0]
	require.Equal(t, sexpr.SList, form.Type)
	require.Equal(t, 4, form.Len())
	assert.Equal(t, sexpr.SVector, form.Cells[2].Type)
	assert.Equal(t, sexpr.SVector, form.Cells[2].Cells[0].Type)
}

func TestParseUnclosedSequences(t *testing.T) {
	tests := []struct {
		source string
		msg    string
	}{
		{"(+ 1 2", "unclosed list"},
		{"[1 2", "unclosed vector"},
		{"{:ok 1", "unclosed tuple"},
		{"(f (g 1)", "unclosed list"},
	}
	for _, test := range tests {
		err := parseErr(t, test.source)
		assert.Contains(t, err.Error(), test.msg, "source %q", test.source)
		assert.True(t, IsIncomplete(err), "source %q", test.source)
	}
}

func TestParsePrefixAtEOF(t *testing.T) {
	for _, src := range []string{"'", "`", "~", "~@", "(quote"} {
		err := parseErr(t, src)
		assert.True(t, IsIncomplete(err), "source %q", src)
	}
}

func TestParseMismatchedCloser(t *testing.T) {
	err := parseErr(t, "(+ 1 2]")
	assert.False(t, IsIncomplete(err))

	err = parseErr(t, ")")
	assert.False(t, IsIncomplete(err))
}

func TestParseLexErrorPropagates(t *testing.T) {
	err := parseErr(t, "(+ 1 #)")
	assert.Contains(t, err.Error(), "'#'")
}

func TestParseIntOverflow(t *testing.T) {
	err := parseErr(t, "99999999999999999999999999")
	assert.Contains(t, err.Error(), "overflows")
}

func TestIsIncomplete(t *testing.T) {
	assert.False(t, IsIncomplete(nil))
	assert.False(t, IsIncomplete(&ParseError{Msg: "x"}))
	assert.True(t, IsIncomplete(&ParseError{Msg: "x", Incomplete: true}))
}
