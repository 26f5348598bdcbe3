package csp

// UnaryPredicate reports whether a single candidate value is acceptable
// for the variable owning the constraint.
type UnaryPredicate func(value Value) bool

// BinaryPredicate reports whether a pair of values may be held
// simultaneously. The first argument is always the owning variable's
// value, the second the neighbor's value.
//
// Predicates must be pure: no captured mutable state, no side effects.
// Builders that construct predicates inside loops must capture the loop
// parameters by value at construction time.
type BinaryPredicate func(value, neighbor Value) bool

// UnaryConstraint restricts the values a single variable may take.
type UnaryConstraint struct {
	// Name labels the constraint for tracing and diagnostics.
	Name string
	// Holds is the predicate; a candidate value violating it can never
	// appear in a returned assignment.
	Holds UnaryPredicate
}

// BinaryConstraint restricts the values a pair of variables may hold at
// the same time. Constraints are stored directed, attached to one
// endpoint, but are symmetric in effect: the engine evaluates a
// constraint whenever the owner has a candidate value and the neighbor
// is already assigned.
type BinaryConstraint struct {
	// Neighbor names the other endpoint. It must name a variable in the
	// same problem.
	Neighbor string
	// Name labels the constraint for tracing and diagnostics.
	Name string
	// Holds is the predicate, called as Holds(ownerValue, neighborValue).
	Holds BinaryPredicate
}
