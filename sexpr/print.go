package sexpr

import "strings"

const indentWidth = 2

// Format renders a canonical, re-parseable multi-line form of the node.
// Sequences of at most three leaf elements render on one line; larger or
// nested sequences render indented with one child per line.
func Format(sx *Sexpr) string {
	var buf strings.Builder
	format(&buf, sx, 0)
	return buf.String()
}

func format(buf *strings.Builder, sx *Sexpr, depth int) {
	switch sx.Type {
	case SList:
		formatSeq(buf, "(", ")", sx.Cells, depth)
	case SVector:
		formatSeq(buf, "[", "]", sx.Cells, depth)
	case STuple:
		formatSeq(buf, "{", "}", sx.Cells, depth)
	case SQuote:
		buf.WriteByte('\'')
		format(buf, sx.Cells[0], depth)
	case SQuasiquote:
		buf.WriteByte('`')
		format(buf, sx.Cells[0], depth)
	case SUnquote:
		buf.WriteByte('~')
		format(buf, sx.Cells[0], depth)
	case SSplice:
		buf.WriteString("~@")
		format(buf, sx.Cells[0], depth)
	default:
		buf.WriteString(sx.String())
	}
}

func formatSeq(buf *strings.Builder, open, close string, cells []*Sexpr, depth int) {
	if fitsOneLine(cells) {
		writeSeq(buf, open, close, cells)
		return
	}
	buf.WriteString(open)
	for i, cell := range cells {
		if i == 0 {
			format(buf, cell, depth+1)
			continue
		}
		buf.WriteByte('\n')
		buf.WriteString(strings.Repeat(" ", (depth+1)*indentWidth))
		format(buf, cell, depth+1)
	}
	buf.WriteString(close)
}

func fitsOneLine(cells []*Sexpr) bool {
	if len(cells) > 3 {
		return false
	}
	for _, cell := range cells {
		if !cell.IsAtom() {
			return false
		}
	}
	return true
}
