package csp

// Assignment maps variable names to the single value each currently
// holds. It grows and shrinks during search: a variable appears only
// while tentatively or finally assigned. An assignment is complete when
// every variable of the problem has an entry.
type Assignment map[string]Value

// Clone returns an independent shallow copy. Values themselves are
// opaque and never copied.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Complete reports whether every variable of p is assigned.
func (a Assignment) Complete(p *Problem) bool {
	for _, v := range p.variables {
		if _, ok := a[v.name]; !ok {
			return false
		}
	}
	return true
}
