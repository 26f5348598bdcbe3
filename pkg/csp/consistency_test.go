package csp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gocsp/pkg/csp"
)

func TestIsConsistentChecksUnaryConstraints(t *testing.T) {
	p := csp.NewProblem()
	require.NoError(t, p.AddVariable(csp.NewVariable("x", intDomain(-1, 1))))
	p.AddUnary("x", csp.UnaryConstraint{
		Name:  "positive",
		Holds: func(v csp.Value) bool { return v.(int) > 0 },
	})

	assignment := csp.Assignment{}
	assert.False(t, p.IsConsistent("x", -1, assignment))
	assert.True(t, p.IsConsistent("x", 1, assignment))
}

func TestIsConsistentSkipsUnassignedNeighbors(t *testing.T) {
	p := csp.NewProblem()
	require.NoError(t, p.AddVariable(csp.NewVariable("x", intDomain(1))))
	require.NoError(t, p.AddVariable(csp.NewVariable("y", intDomain(1))))
	p.AddBinary("x", csp.BinaryConstraint{Neighbor: "y", Name: "x!=y", Holds: notEqual})

	// y unassigned: the x!=y constraint is not evaluated yet.
	assert.True(t, p.IsConsistent("x", 1, csp.Assignment{}))
	// y assigned to the same value: violation.
	assert.False(t, p.IsConsistent("x", 1, csp.Assignment{"y": 1}))
}

// The check must re-validate the whole partial assignment, including
// constraints owned by previously committed variables against the
// tentative entry.
func TestIsConsistentRevalidatesCommittedEntries(t *testing.T) {
	p := csp.NewProblem()
	require.NoError(t, p.AddVariable(csp.NewVariable("x", intDomain(1))))
	require.NoError(t, p.AddVariable(csp.NewVariable("y", intDomain(1, 2))))
	// Constraint owned by x, referencing y. When y is the tentative
	// entry, only the re-validation of x's constraints can catch it.
	p.AddBinary("x", csp.BinaryConstraint{Neighbor: "y", Name: "x!=y", Holds: notEqual})

	assignment := csp.Assignment{"x": 1}
	assert.False(t, p.IsConsistent("y", 1, assignment))
	assert.True(t, p.IsConsistent("y", 2, assignment))
}

func TestIsConsistentLeavesNoSideEffects(t *testing.T) {
	p := csp.NewProblem()
	require.NoError(t, p.AddVariable(csp.NewVariable("x", intDomain(1))))
	require.NoError(t, p.AddVariable(csp.NewVariable("y", intDomain(1, 2))))
	p.AddBinary("x", csp.BinaryConstraint{Neighbor: "y", Name: "x!=y", Holds: notEqual})

	assignment := csp.Assignment{"x": 1}

	p.IsConsistent("y", 1, assignment) // rejected candidate
	assert.Equal(t, csp.Assignment{"x": 1}, assignment)

	p.IsConsistent("y", 2, assignment) // accepted candidate
	assert.Equal(t, csp.Assignment{"x": 1}, assignment)
}
