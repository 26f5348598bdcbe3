// Package queens builds N-Queens instances for the CSP engine and
// renders solved boards.
//
// Each queen is one variable whose domain is every (row, column) square
// of the board. Every queen pair carries three binary constraints:
// distinct rows, distinct columns, and distinct diagonals.
package queens

import (
	"fmt"
	"strings"

	"github.com/gitrdm/gocsp/pkg/csp"
)

// Position is a board square. Rows and columns are 1-based.
type Position struct {
	Row int
	Col int
}

// Name returns the variable name of the i-th queen (1-based).
func Name(i int) string { return fmt.Sprintf("queen_%d", i) }

// Build constructs the N-Queens problem for an n×n board with n queens.
func Build(n int) (*csp.Problem, error) {
	if n <= 0 {
		return nil, fmt.Errorf("queens: board size must be positive, got %d", n)
	}

	p := csp.NewProblem()

	domain := make([]csp.Value, 0, n*n)
	for row := 1; row <= n; row++ {
		for col := 1; col <= n; col++ {
			domain = append(domain, Position{Row: row, Col: col})
		}
	}
	for i := 1; i <= n; i++ {
		if err := p.AddVariable(csp.NewVariable(Name(i), domain)); err != nil {
			return nil, err
		}
	}

	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			p.AddBinary(Name(i), csp.BinaryConstraint{
				Neighbor: Name(j),
				Name:     "distinct rows",
				Holds:    distinctRows,
			})
			p.AddBinary(Name(i), csp.BinaryConstraint{
				Neighbor: Name(j),
				Name:     "distinct columns",
				Holds:    distinctCols,
			})
			p.AddBinary(Name(i), csp.BinaryConstraint{
				Neighbor: Name(j),
				Name:     "distinct diagonals",
				Holds:    distinctDiagonals,
			})
		}
	}
	return p, nil
}

func distinctRows(a, b csp.Value) bool {
	return a.(Position).Row != b.(Position).Row
}

func distinctCols(a, b csp.Value) bool {
	return a.(Position).Col != b.(Position).Col
}

func distinctDiagonals(a, b csp.Value) bool {
	pa, pb := a.(Position), b.(Position)
	return abs(pa.Row-pb.Row) != abs(pa.Col-pb.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Render draws a solved board: 'Q' on occupied squares, '.' elsewhere.
func Render(solution csp.Assignment, n int) string {
	occupied := make(map[Position]bool, len(solution))
	for _, v := range solution {
		occupied[v.(Position)] = true
	}

	var sb strings.Builder
	for row := 1; row <= n; row++ {
		for col := 1; col <= n; col++ {
			if col > 1 {
				sb.WriteByte(' ')
			}
			if occupied[Position{Row: row, Col: col}] {
				sb.WriteByte('Q')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
