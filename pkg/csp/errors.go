package csp

import "errors"

var (
	// ErrNoSolution is returned when exhaustive search explored every
	// branch without finding a complete consistent assignment.
	ErrNoSolution = errors.New("no solution: search space exhausted")

	// ErrUnsolvable is returned when the problem was marked structurally
	// unsolvable by its builder; search is skipped entirely.
	ErrUnsolvable = errors.New("problem marked unsolvable before search")

	// ErrUnknownVariable is returned by Validate when a binary constraint
	// references a neighbor name that is not a variable of the problem.
	ErrUnknownVariable = errors.New("constraint references unknown variable")

	// ErrEmptyDomain is returned by Validate when a variable has no
	// candidate values before search begins.
	ErrEmptyDomain = errors.New("variable has empty domain")

	// ErrDuplicateVariable is returned when two variables share a name.
	ErrDuplicateVariable = errors.New("duplicate variable name")
)
