package token

import "unicode/utf8"

// RuneEOF is returned by Scanner.Peek and Scanner.Scan when no input remains.
// It is distinct from the EOF token type.
const RuneEOF rune = -1

// Scanner facilitates construction of tokens from source text.  The lexer
// advances the scanner rune by rune and periodically emits the text consumed
// since the previous token as a new token.
type Scanner struct {
	file string
	src  string

	start     int // byte offset of the first byte of the current token
	pos       int // byte offset of the next rune to scan
	line      int // line number at pos
	startLine int // line number at start
}

// NewScanner initializes and returns a new Scanner reading from source text
// src.  The file name is only used to report token locations.
func NewScanner(file string, src string) *Scanner {
	return &Scanner{
		file:      file,
		src:       src,
		line:      1,
		startLine: 1,
	}
}

// Peek returns the next rune in the source text without consuming it.  Peek
// returns RuneEOF when no input remains.  An invalid utf-8 byte is returned
// as utf8.RuneError and consumed as a single byte by Scan.
func (s *Scanner) Peek() rune {
	if s.pos >= len(s.src) {
		return RuneEOF
	}
	c, _ := utf8.DecodeRuneInString(s.src[s.pos:])
	return c
}

// Scan consumes the next rune of source text and returns it.  Scan returns
// RuneEOF and a false second value when no input remains.
func (s *Scanner) Scan() (rune, bool) {
	if s.pos >= len(s.src) {
		return RuneEOF, false
	}
	c, n := utf8.DecodeRuneInString(s.src[s.pos:])
	s.pos += n
	if c == '\n' {
		s.line++
	}
	return c, true
}

// Text returns the text consumed since the last call to EmitToken or Ignore.
func (s *Scanner) Text() string {
	return s.src[s.start:s.pos]
}

// EmitToken returns a token containing the text scanned since the last call
// to either EmitToken or Ignore.
func (s *Scanner) EmitToken(typ Type) *Token {
	tok := &Token{
		Type:   typ,
		Text:   s.Text(),
		Source: s.LocStart(),
	}
	s.Ignore()
	return tok
}

// Ignore causes the scanner to skip all text scanned since the last call to
// either EmitToken or Ignore.
func (s *Scanner) Ignore() {
	s.start = s.pos
	s.startLine = s.line
}

// LocStart returns a Location referencing the beginning of the current token,
// just beyond the end of the previous token.
func (s *Scanner) LocStart() *Location {
	return &Location{
		File: s.file,
		Line: s.startLine,
		Pos:  s.start,
	}
}

// Loc returns a Location referencing the current scanner position.
func (s *Scanner) Loc() *Location {
	return &Location{
		File: s.file,
		Line: s.line,
		Pos:  s.pos,
	}
}
