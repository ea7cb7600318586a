package compile

import (
	"strings"

	"github.com/ggVGc/lisix/ast"
	"github.com/ggVGc/lisix/sexpr"
)

// pattern converts a parameter or case pattern into its host destructuring
// form.  Names introduced by the pattern are bound into env.
func pattern(sx *sexpr.Sexpr, env *Env) (ast.Pattern, error) {
	switch sx.Type {
	case sexpr.SSymbol:
		return symbolPattern(sx, env)
	case sexpr.SInt:
		return &ast.PatLit{Value: &ast.IntLit{Value: sx.Int}}, nil
	case sexpr.SFloat:
		return &ast.PatLit{Value: &ast.FloatLit{Value: sx.Float}}, nil
	case sexpr.SString:
		return &ast.PatLit{Value: &ast.StringLit{Value: sx.Str}}, nil
	case sexpr.SBool:
		return &ast.PatLit{Value: &ast.BoolLit{Value: sx.Bool}}, nil
	case sexpr.SNil:
		return &ast.PatLit{Value: &ast.NilLit{}}, nil
	case sexpr.SKeyword:
		return &ast.PatLit{Value: &ast.TagLit{Name: sx.Str}}, nil
	case sexpr.SQuote:
		lit, err := quoteData(sx.Cells[0], env)
		if err != nil {
			return nil, err
		}
		return &ast.PatLit{Value: lit}, nil
	case sexpr.SVector:
		elems, err := patternSeq(sx.Cells, env)
		if err != nil {
			return nil, err
		}
		return &ast.PatVector{Elems: elems}, nil
	case sexpr.STuple:
		elems, err := patternSeq(sx.Cells, env)
		if err != nil {
			return nil, err
		}
		return &ast.PatTuple{Elems: elems}, nil
	case sexpr.SList:
		elems, err := patternSeq(sx.Cells, env)
		if err != nil {
			return nil, err
		}
		return &ast.PatList{Elems: elems}, nil
	default:
		return nil, errorf(sx, "", "invalid pattern: %s", sx.Type)
	}
}

// symbolPattern handles plain names, the _ wildcard, and the head|tail rest
// pattern.
func symbolPattern(sx *sexpr.Sexpr, env *Env) (ast.Pattern, error) {
	name := sx.Str
	if name == "_" {
		return &ast.PatWildcard{}, nil
	}
	if head, tail, ok := strings.Cut(name, "|"); ok {
		if head == "" || tail == "" || strings.Contains(tail, "|") {
			return nil, errorf(sx, "", "invalid rest pattern: %s", name)
		}
		hp, err := symbolPattern(sexpr.Symbol(head), env)
		if err != nil {
			return nil, err
		}
		tp, err := symbolPattern(sexpr.Symbol(tail), env)
		if err != nil {
			return nil, err
		}
		return &ast.PatCons{Head: hp, Tail: tp}, nil
	}
	env.Bind(name)
	return &ast.PatVar{Name: name}, nil
}

func patternSeq(cells []*sexpr.Sexpr, env *Env) ([]ast.Pattern, error) {
	elems := make([]ast.Pattern, len(cells))
	for i, cell := range cells {
		p, err := pattern(cell, env)
		if err != nil {
			return nil, err
		}
		elems[i] = p
	}
	return elems, nil
}
