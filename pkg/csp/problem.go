package csp

import "fmt"

// Problem is a finite-domain CSP instance: an ordered set of variables
// plus, for every variable name, the unary constraints it owns and the
// (neighbor, predicate) binary constraints it owns.
//
// A Problem and its domains are constructed once before search. Domains
// are mutated in place only by the forward-checking solver, which always
// restores them before returning. A variable given no constraints is
// trivially satisfiable by any of its domain values.
type Problem struct {
	variables []*Variable
	index     map[string]*Variable
	unary     map[string][]UnaryConstraint
	binary    map[string][]BinaryConstraint

	// solvable is false when the builder detected structural
	// infeasibility (for example more required resources than available
	// units); solvers then fail immediately without searching.
	solvable bool
}

// NewProblem creates an empty problem, marked solvable.
func NewProblem() *Problem {
	return &Problem{
		index:    make(map[string]*Variable),
		unary:    make(map[string][]UnaryConstraint),
		binary:   make(map[string][]BinaryConstraint),
		solvable: true,
	}
}

// AddVariable appends a variable. Declaration order is the order in which
// search selects unassigned variables. Adding a second variable with the
// same name returns ErrDuplicateVariable.
func (p *Problem) AddVariable(v *Variable) error {
	if _, ok := p.index[v.name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateVariable, v.name)
	}
	p.variables = append(p.variables, v)
	p.index[v.name] = v
	return nil
}

// AddUnary attaches a unary constraint to the named variable.
func (p *Problem) AddUnary(name string, c UnaryConstraint) {
	p.unary[name] = append(p.unary[name], c)
}

// AddBinary attaches a directed binary constraint to the named variable.
// The constraint is evaluated whenever name has a candidate value and
// c.Neighbor is already assigned.
func (p *Problem) AddBinary(name string, c BinaryConstraint) {
	p.binary[name] = append(p.binary[name], c)
}

// SetSolvable records whether the instance is solvable a priori. Builders
// call SetSolvable(false) for structurally infeasible instances.
func (p *Problem) SetSolvable(ok bool) { p.solvable = ok }

// Solvable reports whether the instance may have a solution.
func (p *Problem) Solvable() bool { return p.solvable }

// Variables returns the variables in declaration order. The slice is the
// live storage and must not be mutated.
func (p *Problem) Variables() []*Variable { return p.variables }

// Variable returns the named variable, or nil if it does not exist.
func (p *Problem) Variable(name string) *Variable { return p.index[name] }

// Unary returns the unary constraints owned by the named variable.
func (p *Problem) Unary(name string) []UnaryConstraint { return p.unary[name] }

// Binary returns the binary constraints owned by the named variable.
func (p *Problem) Binary(name string) []BinaryConstraint { return p.binary[name] }

// Validate checks the structural invariants a well-formed instance must
// satisfy before search: every variable has a non-empty domain and every
// neighbor reference names an existing variable. A malformed instance is
// a caller contract violation; solvers fail fast on it rather than
// attempting recovery.
func (p *Problem) Validate() error {
	for _, v := range p.variables {
		if len(v.domain) == 0 {
			return fmt.Errorf("%w: %q", ErrEmptyDomain, v.name)
		}
	}
	for name, cs := range p.binary {
		if _, ok := p.index[name]; !ok {
			return fmt.Errorf("%w: constraint owner %q", ErrUnknownVariable, name)
		}
		for _, c := range cs {
			if _, ok := p.index[c.Neighbor]; !ok {
				return fmt.Errorf("%w: %q (neighbor of %q)", ErrUnknownVariable, c.Neighbor, name)
			}
		}
	}
	for name := range p.unary {
		if _, ok := p.index[name]; !ok {
			return fmt.Errorf("%w: constraint owner %q", ErrUnknownVariable, name)
		}
	}
	return nil
}
