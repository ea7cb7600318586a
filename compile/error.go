package compile

import (
	"fmt"

	"github.com/ggVGc/lisix/parser/token"
	"github.com/ggVGc/lisix/sexpr"
)

// TransformError describes a malformed or unrecognized form encountered while
// transforming an S-expression.
type TransformError struct {
	Source *token.Location
	Form   string
	Msg    string
}

func (e *TransformError) Error() string {
	msg := e.Msg
	if e.Form != "" {
		msg = fmt.Sprintf("%s: %s", e.Form, e.Msg)
	}
	if e.Source == nil {
		return msg
	}
	return fmt.Sprintf("%s: %s", e.Source, msg)
}

func errorf(sx *sexpr.Sexpr, form string, format string, v ...interface{}) *TransformError {
	return &TransformError{
		Source: sx.Source,
		Form:   form,
		Msg:    fmt.Sprintf(format, v...),
	}
}
