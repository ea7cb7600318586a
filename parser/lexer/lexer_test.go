package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ggVGc/lisix/parser/token"
)

func tokenTypes(toks []*token.Token) []token.Type {
	types := make([]token.Type, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	return types
}

func TestTokenizeEmpty(t *testing.T) {
	for _, src := range []string{"", "   ", "\t\r\n", "; just a comment"} {
		toks, err := Tokenize("test", src)
		require.NoError(t, err, "source %q", src)
		assert.Len(t, toks, 0, "source %q", src)
	}
}

func TestTokenizeDelimiters(t *testing.T) {
	toks, err := Tokenize("test", "()")
	require.NoError(t, err)
	assert.Equal(t, []token.Type{token.PAREN_L, token.PAREN_R}, tokenTypes(toks))

	toks, err = Tokenize("test", "[]{}")
	require.NoError(t, err)
	assert.Equal(t, []token.Type{
		token.BRACK_L, token.BRACK_R,
		token.BRACE_L, token.BRACE_R,
	}, tokenTypes(toks))
}

func TestTokenizeNumbers(t *testing.T) {
	toks, err := Tokenize("test", "(+ 3.14 -2.5)")
	require.NoError(t, err)
	require.Equal(t, []token.Type{
		token.PAREN_L, token.SYMBOL, token.FLOAT, token.FLOAT, token.PAREN_R,
	}, tokenTypes(toks))
	assert.Equal(t, "+", toks[1].Text)
	assert.Equal(t, "3.14", toks[2].Text)
	assert.Equal(t, "-2.5", toks[3].Text)

	toks, err = Tokenize("test", "42 -7")
	require.NoError(t, err)
	require.Equal(t, []token.Type{token.INT, token.INT}, tokenTypes(toks))
	assert.Equal(t, "42", toks[0].Text)
	assert.Equal(t, "-7", toks[1].Text)
}

func TestTokenizeSecondDotEndsNumber(t *testing.T) {
	toks, err := Tokenize("test", "1.2.3")
	require.NoError(t, err)
	require.Equal(t, []token.Type{token.FLOAT, token.SYMBOL}, tokenTypes(toks))
	assert.Equal(t, "1.2", toks[0].Text)
	assert.Equal(t, ".3", toks[1].Text)
}

func TestTokenizeLoneMinusIsSymbol(t *testing.T) {
	toks, err := Tokenize("test", "(- 1 2)")
	require.NoError(t, err)
	require.Equal(t, []token.Type{
		token.PAREN_L, token.SYMBOL, token.INT, token.INT, token.PAREN_R,
	}, tokenTypes(toks))
	assert.Equal(t, "-", toks[1].Text)
}

func TestTokenizeSymbols(t *testing.T) {
	toks, err := Tokenize("test", "foo-bar nil? <= h|t ns.member")
	require.NoError(t, err)
	require.Equal(t, []token.Type{
		token.SYMBOL, token.SYMBOL, token.SYMBOL, token.SYMBOL, token.SYMBOL,
	}, tokenTypes(toks))
	assert.Equal(t, "foo-bar", toks[0].Text)
	assert.Equal(t, "nil?", toks[1].Text)
	assert.Equal(t, "<=", toks[2].Text)
	assert.Equal(t, "h|t", toks[3].Text)
	assert.Equal(t, "ns.member", toks[4].Text)
}

func TestTokenizeWords(t *testing.T) {
	toks, err := Tokenize("test", "true false nil truthy")
	require.NoError(t, err)
	assert.Equal(t, []token.Type{
		token.TRUE, token.FALSE, token.NIL, token.SYMBOL,
	}, tokenTypes(toks))
}

func TestTokenizeKeyword(t *testing.T) {
	toks, err := Tokenize("test", ":name (:field x)")
	require.NoError(t, err)
	require.Equal(t, []token.Type{
		token.KEYWORD, token.PAREN_L, token.KEYWORD, token.SYMBOL, token.PAREN_R,
	}, tokenTypes(toks))
	assert.Equal(t, "name", toks[0].Text)
	assert.Equal(t, "field", toks[2].Text)
}

func TestTokenizeString(t *testing.T) {
	toks, err := Tokenize("test", `"hello\n\t\"quoted\"\\"`)
	require.NoError(t, err)
	require.Equal(t, []token.Type{token.STRING}, tokenTypes(toks))
	assert.Equal(t, "hello\n\t\"quoted\"\\", toks[0].Text)
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := Tokenize("test", `"never closed`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated string")
}

func TestTokenizeUnsupportedEscape(t *testing.T) {
	_, err := Tokenize("test", `"bad \x escape"`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escape")
}

func TestTokenizePrefixes(t *testing.T) {
	toks, err := Tokenize("test", "'x `y ~z ~@w")
	require.NoError(t, err)
	assert.Equal(t, []token.Type{
		token.QUOTE, token.SYMBOL,
		token.QUASIQUOTE, token.SYMBOL,
		token.UNQUOTE, token.SYMBOL,
		token.SPLICE, token.SYMBOL,
	}, tokenTypes(toks))
}

func TestTokenizeInterpolation(t *testing.T) {
	toks, err := Tokenize("test", "~{outer}")
	require.NoError(t, err)
	require.Equal(t, []token.Type{token.INTERP}, tokenTypes(toks))
	assert.Equal(t, "outer", toks[0].Text)

	_, err = Tokenize("test", "~{unclosed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated interpolation")
}

func TestTokenizeUnsupportedChar(t *testing.T) {
	_, err := Tokenize("test", "(+ 1 #)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'#'")

	for _, src := range []string{"$x", "a ^ b", `\`} {
		_, err := Tokenize("test", src)
		assert.Error(t, err, "source %q", src)
	}
}

func TestTokenizeComments(t *testing.T) {
	toks, err := Tokenize("test", "1 ; one\n2 ; two")
	require.NoError(t, err)
	assert.Equal(t, []token.Type{token.INT, token.INT}, tokenTypes(toks))
}

func TestTokenizeLocations(t *testing.T) {
	toks, err := Tokenize("test", "a\n  b")
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, 1, toks[0].Source.Line)
	assert.Equal(t, 2, toks[1].Source.Line)
}
