package csp

// Value is a single candidate value for a variable. The engine treats
// values as opaque units: it stores them, hands them to constraint
// predicates, removes them from and restores them to domains, but never
// inspects or compares them itself.
type Value any

// Variable is a named slot requiring exactly one value from its domain
// in a complete assignment. The domain is ordered; search tries values
// in domain order.
type Variable struct {
	name   string
	domain []Value
}

// NewVariable creates a variable with the given name and candidate
// domain. The domain slice is copied so later mutation by the caller
// cannot alias the live domain owned by the problem.
func NewVariable(name string, domain []Value) *Variable {
	d := make([]Value, len(domain))
	copy(d, domain)
	return &Variable{name: name, domain: d}
}

// Name returns the variable's unique name.
func (v *Variable) Name() string { return v.name }

// Domain returns the variable's live domain. During forward checking the
// live domain shrinks and grows as values are pruned and restored; outside
// an active solve call it equals the domain the variable was built with.
// The returned slice is the live storage and must not be mutated by
// callers.
func (v *Variable) Domain() []Value { return v.domain }

// DomainSize returns the current number of candidate values.
func (v *Variable) DomainSize() int { return len(v.domain) }
