// Package ast defines the host syntax tree emitted by the compiler.  The node
// set is closed: consumers switch exhaustively over the concrete types below.
package ast

// Node is a node in the host syntax tree.
type Node interface {
	node()
}

// IntLit is an integer literal.
type IntLit struct {
	Value int64
}

// FloatLit is a floating point literal.
type FloatLit struct {
	Value float64
}

// StringLit is a string literal.
type StringLit struct {
	Value string
}

// BoolLit is a boolean literal.
type BoolLit struct {
	Value bool
}

// NilLit is the "no value" literal.
type NilLit struct{}

// TagLit is an interned name value, produced from keywords and from symbols
// appearing inside quoted data.
type TagLit struct {
	Name string
}

// ListLit constructs an ordered sequence, produced from quoted lists.
type ListLit struct {
	Elems []Node
}

// VectorLit constructs an ordered sequence from element expressions.
type VectorLit struct {
	Elems []Node
}

// TupleLit constructs a fixed-size heterogeneous record value.
type TupleLit struct {
	Elems []Node
}

// SpliceElem marks an element of a quasiquoted sequence whose evaluated
// result is spliced flatly into the enclosing sequence.
type SpliceElem struct {
	X Node
}

// Var references a name bound by an enclosing binding form.
type Var struct {
	Name string
}

// Ident is a free identifier left for the host's own name resolution.
type Ident struct {
	Name string
}

// Call applies the named function to the arguments.
type Call struct {
	Fn   string
	Args []Node
}

// QualCall applies a member of a named namespace to the arguments.
type QualCall struct {
	Pkg  string
	Name string
	Args []Node
}

// Apply applies a function value computed by Fn to the arguments.
type Apply struct {
	Fn   Node
	Args []Node
}

// Binop applies a binary operator.  Operators with more than two source
// arguments are reduced left to right into nested Binop nodes.
type Binop struct {
	Op  string
	LHS Node
	RHS Node
}

// Unop applies a unary operator.
type Unop struct {
	Op string
	X  Node
}

// If is a two-way conditional.  A missing else branch is a NilLit.
type If struct {
	Cond Node
	Then Node
	Else Node
}

// CondArm is one (test, result) arm of a Cond.
type CondArm struct {
	Test   Node
	Result Node
}

// Cond evaluates its arms in order; the first true test wins.
type Cond struct {
	Arms []CondArm
}

// CaseArm is one match arm of a Case.  Guard is nil when absent.
type CaseArm struct {
	Pattern Pattern
	Guard   Node
	Body    Node
}

// Case matches a subject value against arms in order.
type Case struct {
	Subject Node
	Arms    []CaseArm
}

// Clause is one arity/pattern clause of a function.  Guard is nil when
// absent.
type Clause struct {
	Params []Pattern
	Guard  Node
	Body   Node
}

// FuncDef defines a named function with one or more clauses.  Private
// definitions are not visible outside their defining scope.
type FuncDef struct {
	Name    string
	Clauses []Clause
	Private bool
}

// Def binds a name to a fixed value in the enclosing scope.
type Def struct {
	Name  string
	Value Node
}

// Binding is a single sequential binding of a Let.
type Binding struct {
	Name  string
	Value Node
}

// Let introduces bindings one at a time, left to right, then evaluates Body
// in the fully extended scope.
type Let struct {
	Bindings []Binding
	Body     Node
}

// Lambda is an anonymous single-clause function value.
type Lambda struct {
	Clause Clause
}

// Do sequences expressions, yielding the last one's value.
type Do struct {
	Exprs []Node
}

// Try evaluates Body in a guarded region; any fault inside is converted to an
// {:error, fault} tuple instead of propagating.
type Try struct {
	Body Node
}

func (*IntLit) node()     {}
func (*FloatLit) node()   {}
func (*StringLit) node()  {}
func (*BoolLit) node()    {}
func (*NilLit) node()     {}
func (*TagLit) node()     {}
func (*ListLit) node()    {}
func (*VectorLit) node()  {}
func (*TupleLit) node()   {}
func (*SpliceElem) node() {}
func (*Var) node()        {}
func (*Ident) node()      {}
func (*Call) node()       {}
func (*QualCall) node()   {}
func (*Apply) node()      {}
func (*Binop) node()      {}
func (*Unop) node()       {}
func (*If) node()         {}
func (*Cond) node()       {}
func (*Case) node()       {}
func (*FuncDef) node()    {}
func (*Def) node()        {}
func (*Let) node()        {}
func (*Lambda) node()     {}
func (*Do) node()         {}
func (*Try) node()        {}

// Pattern is a structural destructuring pattern used by function clauses and
// case arms.
type Pattern interface {
	pattern()
}

// PatVar binds the matched value to a name.
type PatVar struct {
	Name string
}

// PatWildcard matches any value without binding it.
type PatWildcard struct{}

// PatLit matches a value structurally equal to a literal.
type PatLit struct {
	Value Node
}

// PatVector matches a vector of the same length element-wise.
type PatVector struct {
	Elems []Pattern
}

// PatTuple matches a tuple of the same length element-wise.
type PatTuple struct {
	Elems []Pattern
}

// PatList matches a list of the same length element-wise.
type PatList struct {
	Elems []Pattern
}

// PatCons matches a non-empty sequence, binding its head and tail.
type PatCons struct {
	Head Pattern
	Tail Pattern
}

func (*PatVar) pattern()      {}
func (*PatWildcard) pattern() {}
func (*PatLit) pattern()      {}
func (*PatVector) pattern()   {}
func (*PatTuple) pattern()    {}
func (*PatList) pattern()     {}
func (*PatCons) pattern()     {}
