package token

import "fmt"

// Token is a single lexical unit of lisix source text.  For most token types
// Text holds the raw source text.  STRING tokens hold the unescaped string
// contents and INTERP tokens hold the name appearing between the braces.
type Token struct {
	Type   Type
	Text   string
	Source *Location
}

// Type identifies the kind of a Token.
type Type uint

// Type constants used by the lisix lexer and reader.
const (
	INVALID Type = iota
	ERROR
	EOF

	// Atomic expressions & literals
	SYMBOL
	INT
	FLOAT
	STRING
	KEYWORD
	TRUE
	FALSE
	NIL

	COMMENT

	// Prefix operators
	QUOTE
	QUASIQUOTE
	UNQUOTE
	SPLICE
	INTERP

	// Delimiters
	PAREN_L
	PAREN_R
	BRACK_L
	BRACK_R
	BRACE_L
	BRACE_R

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID:    "invalid",
		ERROR:      "error",
		EOF:        "EOF",
		SYMBOL:     "symbol",
		INT:        "int",
		FLOAT:      "float",
		STRING:     "string",
		KEYWORD:    "keyword",
		TRUE:       "true",
		FALSE:      "false",
		NIL:        "nil",
		COMMENT:    ";",
		QUOTE:      "'",
		QUASIQUOTE: "`",
		UNQUOTE:    "~",
		SPLICE:     "~@",
		INTERP:     "~{",
		PAREN_L:    "(",
		PAREN_R:    ")",
		BRACK_L:    "[",
		BRACK_R:    "]",
		BRACE_L:    "{",
		BRACE_R:    "}",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

// Location identifies a position within source text.
type Location struct {
	File string
	Pos  int
	Line int // line number (starting at 1 when tracked)
	Col  int // line column number (starting at 1 when tracked)
}

func (loc *Location) String() string {
	switch {
	case loc.Line == 0:
		return fmt.Sprintf("%s[%d]", loc.File, loc.Pos)
	case loc.Col == 0:
		return fmt.Sprintf("%s:%d", loc.File, loc.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Col)
	}
}
