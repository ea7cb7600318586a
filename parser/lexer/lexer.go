package lexer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ggVGc/lisix/parser/token"
)

const miscSymbolRunes = "0123456789" + miscSymbolStart
const miscSymbolStart = "._+-*/=<>!?|&"

// LexError describes a failure tokenizing source text.
type LexError struct {
	Source *token.Location
	Msg    string
}

func (e *LexError) Error() string {
	if e.Source == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Msg)
}

// Lexer splits source text into tokens.  The zero value is not usable, use
// New.  Lexer never reads beyond local context and is total: malformed input
// produces an ERROR token, never non-termination.
type Lexer struct {
	scanner *token.Scanner
	ch      rune // current unicode rune
}

// New initializes and returns a new Lexer that reads source text from s.
func New(s *token.Scanner) *Lexer {
	return &Lexer{scanner: s}
}

// Tokenize scans all of src and returns its tokens.  COMMENT tokens are
// omitted and the trailing EOF token is not included.  The first malformed
// piece of input aborts the scan with a *LexError.
func Tokenize(file string, src string) ([]*token.Token, error) {
	lex := New(token.NewScanner(file, src))
	var toks []*token.Token
	for {
		tok := lex.NextToken()
		switch tok.Type {
		case token.EOF:
			return toks, nil
		case token.ERROR, token.INVALID:
			return nil, &LexError{Source: tok.Source, Msg: tok.Text}
		case token.COMMENT:
		default:
			toks = append(toks, tok)
		}
	}
}

// NextToken scans and returns the next token in the source text.  At the end
// of input NextToken returns an EOF token.  Malformed input produces an ERROR
// token describing the offending text.
func (lex *Lexer) NextToken() *token.Token {
	lex.skipWhitespace()
	if !lex.readChar() {
		return lex.scanner.EmitToken(token.EOF)
	}
	switch lex.ch {
	case '(':
		return lex.scanner.EmitToken(token.PAREN_L)
	case ')':
		return lex.scanner.EmitToken(token.PAREN_R)
	case '[':
		return lex.scanner.EmitToken(token.BRACK_L)
	case ']':
		return lex.scanner.EmitToken(token.BRACK_R)
	case '{':
		return lex.scanner.EmitToken(token.BRACE_L)
	case '}':
		return lex.scanner.EmitToken(token.BRACE_R)
	case '\'':
		return lex.scanner.EmitToken(token.QUOTE)
	case '`':
		return lex.scanner.EmitToken(token.QUASIQUOTE)
	case '~':
		return lex.readUnquote()
	case ';':
		return lex.readComment()
	case '"':
		return lex.readString()
	case ':':
		return lex.readKeyword()
	case '-':
		if isDigit(lex.peekRune()) {
			return lex.readNumber()
		}
		return lex.readSymbol()
	default:
		if isDigit(lex.ch) {
			return lex.readNumber()
		}
		if isSymbolStart(lex.ch) {
			return lex.readSymbol()
		}
		return lex.errorf("unsupported character %q", lex.ch)
	}
}

// readUnquote scans the forms following a '~' rune: "~@" splicing, "~{name}"
// interpolation, and plain "~" unquoting.
func (lex *Lexer) readUnquote() *token.Token {
	switch lex.peekRune() {
	case '@':
		lex.readChar()
		return lex.scanner.EmitToken(token.SPLICE)
	case '{':
		lex.readChar()
		var name strings.Builder
		for {
			if !lex.readChar() {
				return lex.errorf("unterminated interpolation")
			}
			if lex.ch == '}' {
				break
			}
			name.WriteRune(lex.ch)
		}
		if name.Len() == 0 {
			return lex.errorf("empty interpolation")
		}
		return lex.emit(token.INTERP, name.String())
	default:
		return lex.scanner.EmitToken(token.UNQUOTE)
	}
}

func (lex *Lexer) readComment() *token.Token {
	for {
		p := lex.peekRune()
		if p == '\n' || p == token.RuneEOF {
			return lex.scanner.EmitToken(token.COMMENT)
		}
		lex.readChar()
	}
}

func (lex *Lexer) readString() *token.Token {
	var text strings.Builder
	for {
		if !lex.readChar() {
			return lex.errorf("unterminated string literal")
		}
		switch lex.ch {
		case '"':
			return lex.emit(token.STRING, text.String())
		case '\\':
			if !lex.readChar() {
				return lex.errorf("unterminated string literal")
			}
			switch lex.ch {
			case '"':
				text.WriteByte('"')
			case 'n':
				text.WriteByte('\n')
			case 't':
				text.WriteByte('\t')
			case 'r':
				text.WriteByte('\r')
			case '\\':
				text.WriteByte('\\')
			default:
				return lex.errorf("unsupported escape \\%c in string literal", lex.ch)
			}
		default:
			text.WriteRune(lex.ch)
		}
	}
}

// readNumber scans an integer or floating point literal.  The current rune is
// either a leading '-' or the first digit.  A literal contains at most one
// '.', a second '.' terminates the number and is left for the next token.
func (lex *Lexer) readNumber() *token.Token {
	float := false
	for {
		p := lex.peekRune()
		if isDigit(p) {
			lex.readChar()
			continue
		}
		if p == '.' && !float {
			float = true
			lex.readChar()
			continue
		}
		break
	}
	if float {
		return lex.scanner.EmitToken(token.FLOAT)
	}
	return lex.scanner.EmitToken(token.INT)
}

func (lex *Lexer) readKeyword() *token.Token {
	n := 0
	for isSymbolRune(lex.peekRune()) {
		lex.readChar()
		n++
	}
	if n == 0 {
		return lex.errorf("empty keyword")
	}
	tok := lex.scanner.EmitToken(token.KEYWORD)
	tok.Text = tok.Text[1:] // strip the leading ':'
	return tok
}

// readSymbol scans a maximal run of symbol runes.  The literal words true,
// false and nil are reinterpreted after collection; symbol names are
// otherwise preserved exactly.
func (lex *Lexer) readSymbol() *token.Token {
	for isSymbolRune(lex.peekRune()) {
		lex.readChar()
	}
	switch lex.scanner.Text() {
	case "true":
		return lex.scanner.EmitToken(token.TRUE)
	case "false":
		return lex.scanner.EmitToken(token.FALSE)
	case "nil":
		return lex.scanner.EmitToken(token.NIL)
	}
	return lex.scanner.EmitToken(token.SYMBOL)
}

func (lex *Lexer) skipWhitespace() {
	for {
		switch lex.peekRune() {
		case ' ', '\t', '\r', '\n':
			lex.readChar()
		default:
			lex.scanner.Ignore()
			return
		}
	}
}

func (lex *Lexer) emit(typ token.Type, text string) *token.Token {
	tok := lex.scanner.EmitToken(typ)
	tok.Text = text
	return tok
}

func (lex *Lexer) errorf(format string, v ...interface{}) *token.Token {
	return lex.emit(token.ERROR, fmt.Sprintf(format, v...))
}

func (lex *Lexer) peekRune() rune {
	return lex.scanner.Peek()
}

func (lex *Lexer) readChar() bool {
	c, ok := lex.scanner.Scan()
	if !ok {
		return false
	}
	lex.ch = c
	return true
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isSymbolStart(c rune) bool {
	return unicode.IsLetter(c) || strings.ContainsRune(miscSymbolStart, c)
}

func isSymbolRune(c rune) bool {
	return unicode.IsLetter(c) || strings.ContainsRune(miscSymbolRunes, c)
}
