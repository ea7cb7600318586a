/*
Package parser provides the lisix reader: a hand-rolled lexer and a
single-pass recursive descent parser over its token stream.

	expr     := seq | prefix | atom
	seq      := '(' expr* ')' | '[' expr* ']' | '{' expr* '}'
	prefix   := ( ' | ` | ~ | ~@ ) expr | '~{' name '}'
	atom     := number | string | symbol | keyword | true | false | nil
	number   := '-'? /[0-9]+/ fraction?
	fraction := '.' /[0-9]+/
*/
package parser

import (
	"github.com/ggVGc/lisix/parser/reader"
	"github.com/ggVGc/lisix/parser/token"
	"github.com/ggVGc/lisix/sexpr"
)

// Parse reads all top-level forms in source and returns them in order.  The
// name is used only to report locations in errors.
func Parse(name string, source string) ([]*sexpr.Sexpr, error) {
	p := reader.New(token.NewScanner(name, source))
	return p.ParseProgram()
}

// ParseExpr reads exactly one form from source.  Leftover forms after the
// first are an error, as is an empty source.
func ParseExpr(name string, source string) (*sexpr.Sexpr, error) {
	exprs, err := Parse(name, source)
	if err != nil {
		return nil, err
	}
	if len(exprs) == 0 {
		return nil, &reader.ParseError{Msg: "unexpected end of input", Incomplete: true}
	}
	if len(exprs) > 1 {
		return nil, &reader.ParseError{Source: exprs[1].Source, Msg: "unexpected tokens remaining"}
	}
	return exprs[0], nil
}
