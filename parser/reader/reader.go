// Package reader implements a single-pass recursive descent parser that turns
// the lexer's token stream into S-expression trees.
package reader

import (
	"fmt"
	"strconv"

	"github.com/ggVGc/lisix/parser/lexer"
	"github.com/ggVGc/lisix/parser/token"
	"github.com/ggVGc/lisix/sexpr"
)

// ParseError describes a failure reading a token stream.
type ParseError struct {
	Source *token.Location
	Msg    string

	// Incomplete marks errors caused by the input ending mid-form, the
	// cases where more input could still produce a valid parse.  The repl
	// uses it to decide whether to prompt for a continuation line.
	Incomplete bool
}

func (e *ParseError) Error() string {
	if e.Source == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Msg)
}

// IsIncomplete returns true when err is a ParseError caused by input ending
// in the middle of a form.
func IsIncomplete(err error) bool {
	perr, ok := err.(*ParseError)
	return ok && perr.Incomplete
}

// Parser reads S-expressions from a token stream.  Parsing is a single
// left-to-right pass with one token of lookahead and no backtracking.
type Parser struct {
	lex  *lexer.Lexer
	curr *token.Token
	peek *token.Token
}

// New initializes and returns a new Parser that reads tokens from scanner.
func New(scanner *token.Scanner) *Parser {
	p := &Parser{
		lex: lexer.New(scanner),
	}
	// Setup the peek token so the parser is in the proper state when the
	// first parse function is called.
	p.readToken()
	return p
}

// ParseProgram parses all top-level forms in the token stream and returns
// them in order.  An empty stream yields an empty slice.
func (p *Parser) ParseProgram() ([]*sexpr.Sexpr, error) {
	var exprs []*sexpr.Sexpr
	for {
		for p.expect(token.COMMENT) {
		}
		if p.expect(token.EOF) {
			return exprs, nil
		}
		x, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, x)
	}
}

// ParseExpression parses a single expression from the token stream.
func (p *Parser) ParseExpression() (*sexpr.Sexpr, error) {
	for p.expect(token.COMMENT) {
	}
	switch p.peekType() {
	case token.INT:
		return p.parseInt()
	case token.FLOAT:
		return p.parseFloat()
	case token.STRING:
		p.readToken()
		return p.leaf(sexpr.String(p.curr.Text)), nil
	case token.SYMBOL:
		p.readToken()
		return p.leaf(sexpr.Symbol(p.curr.Text)), nil
	case token.KEYWORD:
		p.readToken()
		return p.leaf(sexpr.Keyword(p.curr.Text)), nil
	case token.TRUE:
		p.readToken()
		return p.leaf(sexpr.Bool(true)), nil
	case token.FALSE:
		p.readToken()
		return p.leaf(sexpr.Bool(false)), nil
	case token.NIL:
		p.readToken()
		return p.leaf(sexpr.Nil()), nil
	case token.INTERP:
		p.readToken()
		return p.leaf(sexpr.Interp(p.curr.Text)), nil
	case token.QUOTE:
		return p.parsePrefix(sexpr.Quote)
	case token.QUASIQUOTE:
		return p.parsePrefix(sexpr.Quasiquote)
	case token.UNQUOTE:
		return p.parsePrefix(sexpr.Unquote)
	case token.SPLICE:
		return p.parsePrefix(sexpr.Splice)
	case token.PAREN_L:
		return p.parseSeq(token.PAREN_R, sexpr.List)
	case token.BRACK_L:
		return p.parseSeq(token.BRACK_R, sexpr.Vector)
	case token.BRACE_L:
		return p.parseSeq(token.BRACE_R, sexpr.Tuple)
	case token.ERROR, token.INVALID:
		p.readToken()
		return nil, &lexer.LexError{Source: p.curr.Source, Msg: p.curr.Text}
	case token.EOF:
		return nil, p.errorIncomplete("unexpected end of input")
	default:
		p.readToken()
		return nil, p.errorf("unexpected %s", p.curr.Type)
	}
}

func (p *Parser) parseInt() (*sexpr.Sexpr, error) {
	p.readToken()
	x, err := strconv.ParseInt(p.curr.Text, 10, 64)
	if err != nil {
		return nil, p.errorf("integer literal overflows int: %v", p.curr.Text)
	}
	return p.leaf(sexpr.Int(x)), nil
}

func (p *Parser) parseFloat() (*sexpr.Sexpr, error) {
	p.readToken()
	x, err := strconv.ParseFloat(p.curr.Text, 64)
	if err != nil {
		return nil, p.errorf("invalid floating point literal: %v", p.curr.Text)
	}
	return p.leaf(sexpr.Float(x)), nil
}

// parsePrefix parses the single expression following a quote, quasiquote,
// unquote or splicing token and wraps it with wrap.
func (p *Parser) parsePrefix(wrap func(*sexpr.Sexpr) *sexpr.Sexpr) (*sexpr.Sexpr, error) {
	p.readToken()
	open := p.curr
	x, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	wrapped := wrap(x)
	wrapped.Source = open.Source
	return wrapped, nil
}

// parseSeq parses expressions until the closing delimiter and builds the
// sequence with mk.
func (p *Parser) parseSeq(close token.Type, mk func([]*sexpr.Sexpr) *sexpr.Sexpr) (*sexpr.Sexpr, error) {
	p.readToken()
	open := p.curr
	var cells []*sexpr.Sexpr
	for {
		for p.expect(token.COMMENT) {
		}
		if p.expect(close) {
			seq := mk(cells)
			seq.Source = open.Source
			return seq, nil
		}
		if p.peekType() == token.EOF {
			return nil, &ParseError{
				Source:     open.Source,
				Msg:        fmt.Sprintf("unclosed %s: missing %s", seqName(open.Type), close),
				Incomplete: true,
			}
		}
		x, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		cells = append(cells, x)
	}
}

func seqName(open token.Type) string {
	switch open {
	case token.PAREN_L:
		return "list"
	case token.BRACK_L:
		return "vector"
	default:
		return "tuple"
	}
}

func (p *Parser) leaf(sx *sexpr.Sexpr) *sexpr.Sexpr {
	sx.Source = p.curr.Source
	return sx
}

func (p *Parser) readToken() *token.Token {
	p.curr = p.peek
	p.peek = p.lex.NextToken()
	return p.curr
}

func (p *Parser) peekType() token.Type {
	return p.peek.Type
}

func (p *Parser) expect(typ token.Type) bool {
	if p.peek.Type == typ {
		p.readToken()
		return true
	}
	return false
}

func (p *Parser) errorf(format string, v ...interface{}) *ParseError {
	return &ParseError{
		Source: p.curr.Source,
		Msg:    fmt.Sprintf(format, v...),
	}
}

func (p *Parser) errorIncomplete(msg string) *ParseError {
	return &ParseError{
		Source:     p.peek.Source,
		Msg:        msg,
		Incomplete: true,
	}
}
