package compile

// Env tracks the names bound by enclosing binding forms during
// transformation.  It decides whether an atom becomes a variable reference or
// a free identifier; values are a runtime concern and never stored here.
//
// Entering a binding form creates a child Env so sibling branches never
// observe each other's bindings.  Only the newest scope is ever written.
type Env struct {
	scope  map[string]bool
	parent *Env
}

// NewEnv returns an empty environment extending parent.  The parent may be
// nil for the root environment.
func NewEnv(parent *Env) *Env {
	return &Env{
		scope:  make(map[string]bool),
		parent: parent,
	}
}

// Bind marks name as bound in the newest scope.
func (env *Env) Bind(name string) {
	env.scope[name] = true
}

// Bound returns true if name is bound in env or any enclosing scope.
func (env *Env) Bound(name string) bool {
	for e := env; e != nil; e = e.parent {
		if e.scope[name] {
			return true
		}
	}
	return false
}
