package runtime

// Scope is a lexical scope chain mapping names to values.
type Scope struct {
	vars   map[string]*Value
	parent *Scope
}

// NewScope returns an empty scope extending parent.  The parent may be nil
// for a global scope.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		vars:   make(map[string]*Value),
		parent: parent,
	}
}

// Get returns the value bound to name in the nearest enclosing scope.
func (sc *Scope) Get(name string) (*Value, bool) {
	for s := sc; s != nil; s = s.parent {
		if v, ok := s.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Define binds name to v in this scope, shadowing any outer binding.
func (sc *Scope) Define(name string, v *Value) {
	sc.vars[name] = v
}
