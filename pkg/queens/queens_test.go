package queens_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gocsp/pkg/csp"
	"github.com/gitrdm/gocsp/pkg/queens"
)

func assertNoAttacks(t *testing.T, solution csp.Assignment, n int) {
	t.Helper()
	positions := make([]queens.Position, 0, n)
	for i := 1; i <= n; i++ {
		v, ok := solution[queens.Name(i)]
		require.True(t, ok, "queen %d unassigned", i)
		positions = append(positions, v.(queens.Position))
	}
	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			a, b := positions[i], positions[j]
			assert.NotEqual(t, a.Row, b.Row, "queens %d and %d share a row", i+1, j+1)
			assert.NotEqual(t, a.Col, b.Col, "queens %d and %d share a column", i+1, j+1)
			dr, dc := a.Row-b.Row, a.Col-b.Col
			if dr < 0 {
				dr = -dr
			}
			if dc < 0 {
				dc = -dc
			}
			assert.NotEqual(t, dr, dc, "queens %d and %d share a diagonal", i+1, j+1)
		}
	}
}

func TestFourQueens(t *testing.T) {
	for name, solve := range map[string]func(*csp.Problem) (csp.Assignment, csp.Stats, error){
		"plain":            csp.NewSolver().Solve,
		"forward checking": csp.NewSolver().SolveForwardChecking,
	} {
		t.Run(name, func(t *testing.T) {
			fresh, err := queens.Build(4)
			require.NoError(t, err)

			solution, _, err := solve(fresh)
			require.NoError(t, err)
			assert.True(t, solution.Complete(fresh))
			assertNoAttacks(t, solution, 4)
		})
	}
}

func TestThreeQueensHasNoSolution(t *testing.T) {
	p, err := queens.Build(3)
	require.NoError(t, err)

	_, _, solveErr := csp.NewSolver().SolveForwardChecking(p)
	require.ErrorIs(t, solveErr, csp.ErrNoSolution)
}

func TestBuildRejectsNonPositiveSize(t *testing.T) {
	_, err := queens.Build(0)
	require.Error(t, err)
}

func TestRender(t *testing.T) {
	solution := csp.Assignment{
		queens.Name(1): queens.Position{Row: 1, Col: 2},
		queens.Name(2): queens.Position{Row: 2, Col: 4},
		queens.Name(3): queens.Position{Row: 3, Col: 1},
		queens.Name(4): queens.Position{Row: 4, Col: 3},
	}
	board := queens.Render(solution, 4)

	lines := strings.Split(strings.TrimRight(board, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, ". Q . .", lines[0])
	assert.Equal(t, ". . . Q", lines[1])
	assert.Equal(t, "Q . . .", lines[2])
	assert.Equal(t, ". . Q .", lines[3])
}
