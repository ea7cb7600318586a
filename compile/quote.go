package compile

import (
	"github.com/ggVGc/lisix/ast"
	"github.com/ggVGc/lisix/sexpr"
)

// quoteData rewrites a quoted S-expression into a literal data value.
// Quoting suppresses evaluation so the general transformer is never invoked
// here; the one exception is interpolation, which always references the
// enclosing scope.
func quoteData(sx *sexpr.Sexpr, env *Env) (ast.Node, error) {
	switch sx.Type {
	case sexpr.SSymbol:
		return &ast.TagLit{Name: sx.Str}, nil
	case sexpr.SKeyword:
		return &ast.TagLit{Name: sx.Str}, nil
	case sexpr.SInt:
		return &ast.IntLit{Value: sx.Int}, nil
	case sexpr.SFloat:
		return &ast.FloatLit{Value: sx.Float}, nil
	case sexpr.SString:
		return &ast.StringLit{Value: sx.Str}, nil
	case sexpr.SBool:
		return &ast.BoolLit{Value: sx.Bool}, nil
	case sexpr.SNil:
		return &ast.NilLit{}, nil
	case sexpr.SInterp:
		return &ast.Var{Name: sx.Str}, nil
	case sexpr.SList:
		elems, err := quoteSeq(sx.Cells, env)
		if err != nil {
			return nil, err
		}
		return &ast.ListLit{Elems: elems}, nil
	case sexpr.SVector:
		elems, err := quoteSeq(sx.Cells, env)
		if err != nil {
			return nil, err
		}
		return &ast.VectorLit{Elems: elems}, nil
	case sexpr.STuple:
		elems, err := quoteSeq(sx.Cells, env)
		if err != nil {
			return nil, err
		}
		return &ast.TupleLit{Elems: elems}, nil
	case sexpr.SQuote:
		return quoteWrapped("quote", sx.Cells[0], env)
	case sexpr.SQuasiquote:
		return quoteWrapped("quasiquote", sx.Cells[0], env)
	case sexpr.SUnquote:
		return quoteWrapped("unquote", sx.Cells[0], env)
	case sexpr.SSplice:
		return quoteWrapped("unquote-splicing", sx.Cells[0], env)
	default:
		return nil, errorf(sx, "quote", "cannot quote %s", sx.Type)
	}
}

// quoteWrapped renders a nested prefix form as tagged list data.
func quoteWrapped(tag string, inner *sexpr.Sexpr, env *Env) (ast.Node, error) {
	data, err := quoteData(inner, env)
	if err != nil {
		return nil, err
	}
	return &ast.ListLit{Elems: []ast.Node{&ast.TagLit{Name: tag}, data}}, nil
}

func quoteSeq(cells []*sexpr.Sexpr, env *Env) ([]ast.Node, error) {
	elems := make([]ast.Node, len(cells))
	for i, cell := range cells {
		el, err := quoteData(cell, env)
		if err != nil {
			return nil, err
		}
		elems[i] = el
	}
	return elems, nil
}

// quasiquote walks the tree like quoteData except that unquote and splicing
// sub-nodes switch back to normal transformation at the point they occur.
func quasiquote(sx *sexpr.Sexpr, env *Env) (ast.Node, error) {
	switch sx.Type {
	case sexpr.SUnquote:
		return transform(sx.Cells[0], env)
	case sexpr.SSplice:
		return nil, errorf(sx, "quasiquote", "unquote-splicing outside of a sequence")
	case sexpr.SList:
		elems, err := quasiquoteSeq(sx.Cells, env)
		if err != nil {
			return nil, err
		}
		return &ast.ListLit{Elems: elems}, nil
	case sexpr.SVector:
		elems, err := quasiquoteSeq(sx.Cells, env)
		if err != nil {
			return nil, err
		}
		return &ast.VectorLit{Elems: elems}, nil
	case sexpr.STuple:
		elems, err := quasiquoteSeq(sx.Cells, env)
		if err != nil {
			return nil, err
		}
		return &ast.TupleLit{Elems: elems}, nil
	case sexpr.SQuasiquote:
		return quoteWrapped("quasiquote", sx.Cells[0], env)
	default:
		return quoteData(sx, env)
	}
}

// quasiquoteSeq transforms sequence elements, turning splicing elements into
// SpliceElem nodes whose results are flattened into the sequence at run time.
func quasiquoteSeq(cells []*sexpr.Sexpr, env *Env) ([]ast.Node, error) {
	elems := make([]ast.Node, len(cells))
	for i, cell := range cells {
		if cell.Type == sexpr.SSplice {
			x, err := transform(cell.Cells[0], env)
			if err != nil {
				return nil, err
			}
			elems[i] = &ast.SpliceElem{X: x}
			continue
		}
		el, err := quasiquote(cell, env)
		if err != nil {
			return nil, err
		}
		elems[i] = el
	}
	return elems, nil
}
