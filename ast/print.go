package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders a readable, indented textual form of a node.  The output is a
// debugging aid, not a serialization format.
func Print(n Node) string {
	var buf strings.Builder
	printNode(&buf, n, 0)
	return buf.String()
}

func printNode(buf *strings.Builder, n Node, depth int) {
	switch n := n.(type) {
	case *IntLit:
		fmt.Fprintf(buf, "(lit %d)", n.Value)
	case *FloatLit:
		fmt.Fprintf(buf, "(lit %s)", strconv.FormatFloat(n.Value, 'f', -1, 64))
	case *StringLit:
		fmt.Fprintf(buf, "(lit %q)", n.Value)
	case *BoolLit:
		fmt.Fprintf(buf, "(lit %t)", n.Value)
	case *NilLit:
		buf.WriteString("(lit nil)")
	case *TagLit:
		fmt.Fprintf(buf, "(tag %s)", n.Name)
	case *ListLit:
		printSeq(buf, "list", n.Elems, depth)
	case *VectorLit:
		printSeq(buf, "vector", n.Elems, depth)
	case *TupleLit:
		printSeq(buf, "tuple", n.Elems, depth)
	case *SpliceElem:
		printSeq(buf, "splice", []Node{n.X}, depth)
	case *Var:
		fmt.Fprintf(buf, "(var %s)", n.Name)
	case *Ident:
		fmt.Fprintf(buf, "(free %s)", n.Name)
	case *Call:
		printSeq(buf, "call "+n.Fn, n.Args, depth)
	case *QualCall:
		printSeq(buf, fmt.Sprintf("call %s.%s", n.Pkg, n.Name), n.Args, depth)
	case *Apply:
		printSeq(buf, "apply", append([]Node{n.Fn}, n.Args...), depth)
	case *Binop:
		printSeq(buf, "binop "+n.Op, []Node{n.LHS, n.RHS}, depth)
	case *Unop:
		printSeq(buf, "unop "+n.Op, []Node{n.X}, depth)
	case *If:
		printSeq(buf, "if", []Node{n.Cond, n.Then, n.Else}, depth)
	case *Cond:
		buf.WriteString("(cond")
		for _, arm := range n.Arms {
			newline(buf, depth+1)
			printSeq(buf, "arm", []Node{arm.Test, arm.Result}, depth+1)
		}
		buf.WriteString(")")
	case *Case:
		buf.WriteString("(case ")
		printNode(buf, n.Subject, depth)
		for _, arm := range n.Arms {
			newline(buf, depth+1)
			buf.WriteString("(arm ")
			printPattern(buf, arm.Pattern)
			if arm.Guard != nil {
				buf.WriteString(" when ")
				printNode(buf, arm.Guard, depth+1)
			}
			buf.WriteByte(' ')
			printNode(buf, arm.Body, depth+1)
			buf.WriteString(")")
		}
		buf.WriteString(")")
	case *FuncDef:
		name := "defn " + n.Name
		if n.Private {
			name = "defp " + n.Name
		}
		buf.WriteString("(" + name)
		for _, clause := range n.Clauses {
			newline(buf, depth+1)
			printClause(buf, clause, depth+1)
		}
		buf.WriteString(")")
	case *Def:
		printSeq(buf, "def "+n.Name, []Node{n.Value}, depth)
	case *Let:
		buf.WriteString("(let")
		for _, bind := range n.Bindings {
			newline(buf, depth+1)
			printSeq(buf, "bind "+bind.Name, []Node{bind.Value}, depth+1)
		}
		newline(buf, depth+1)
		printNode(buf, n.Body, depth+1)
		buf.WriteString(")")
	case *Lambda:
		buf.WriteString("(lambda ")
		printClause(buf, n.Clause, depth)
		buf.WriteString(")")
	case *Do:
		printSeq(buf, "do", n.Exprs, depth)
	case *Try:
		printSeq(buf, "try", []Node{n.Body}, depth)
	default:
		fmt.Fprintf(buf, "#<%T>", n)
	}
}

func printClause(buf *strings.Builder, clause Clause, depth int) {
	buf.WriteString("(clause [")
	for i, p := range clause.Params {
		if i > 0 {
			buf.WriteByte(' ')
		}
		printPattern(buf, p)
	}
	buf.WriteString("]")
	if clause.Guard != nil {
		buf.WriteString(" when ")
		printNode(buf, clause.Guard, depth)
	}
	buf.WriteByte(' ')
	printNode(buf, clause.Body, depth)
	buf.WriteString(")")
}

func printPattern(buf *strings.Builder, p Pattern) {
	switch p := p.(type) {
	case *PatVar:
		buf.WriteString(p.Name)
	case *PatWildcard:
		buf.WriteString("_")
	case *PatLit:
		printNode(buf, p.Value, 0)
	case *PatVector:
		printPatternSeq(buf, "[", "]", p.Elems)
	case *PatTuple:
		printPatternSeq(buf, "{", "}", p.Elems)
	case *PatList:
		printPatternSeq(buf, "(", ")", p.Elems)
	case *PatCons:
		printPattern(buf, p.Head)
		buf.WriteByte('|')
		printPattern(buf, p.Tail)
	}
}

func printPatternSeq(buf *strings.Builder, open, close string, elems []Pattern) {
	buf.WriteString(open)
	for i, p := range elems {
		if i > 0 {
			buf.WriteByte(' ')
		}
		printPattern(buf, p)
	}
	buf.WriteString(close)
}

func printSeq(buf *strings.Builder, head string, elems []Node, depth int) {
	buf.WriteString("(" + head)
	flat := len(elems) <= 3 && allLeaves(elems)
	for _, el := range elems {
		if flat {
			buf.WriteByte(' ')
		} else {
			newline(buf, depth+1)
		}
		printNode(buf, el, depth+1)
	}
	buf.WriteString(")")
}

func allLeaves(elems []Node) bool {
	for _, el := range elems {
		switch el.(type) {
		case *IntLit, *FloatLit, *StringLit, *BoolLit, *NilLit, *TagLit, *Var, *Ident:
		default:
			return false
		}
	}
	return true
}

func newline(buf *strings.Builder, depth int) {
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat("  ", depth))
}
