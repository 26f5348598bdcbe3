package csp

import "time"

// Stats captures the work a solve call performed.
type Stats struct {
	// Nodes is the number of candidate values tested against the
	// partial assignment.
	Nodes int
	// Backtracks is the number of commits that were undone.
	Backtracks int
	// Pruned is the total number of values removed from neighbor
	// domains by forward checking (all later restored).
	Pruned int
	// Duration is the wall-clock time of the solve call.
	Duration time.Duration
}

// Solver runs depth-first backtracking search over a Problem. A Solver
// holds no per-problem state and may be reused across solve calls, but
// it is not safe for concurrent use: search runs on a single goroutine.
type Solver struct {
	tracer Tracer
}

// Option configures a Solver.
type Option func(*Solver)

// WithTracer attaches a search-event observer.
func WithTracer(t Tracer) Option {
	return func(s *Solver) {
		if t != nil {
			s.tracer = t
		}
	}
}

// NewSolver creates a solver with the given options.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{tracer: nopTracer{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve searches p by plain backtracking: variables in declaration
// order, values in domain order, each candidate gated by IsConsistent.
// It returns the first complete consistent assignment found, or
// ErrNoSolution when the search space is exhausted, or ErrUnsolvable
// when the problem was marked infeasible by its builder. A malformed
// problem fails fast with the Validate error.
//
// Two calls with an identical problem return identical results: search
// order is fully determined by variable declaration order and domain
// order.
func (s *Solver) Solve(p *Problem) (Assignment, Stats, error) {
	start := time.Now()
	stats := Stats{}
	if !p.solvable {
		stats.Duration = time.Since(start)
		return nil, stats, ErrUnsolvable
	}
	if err := p.Validate(); err != nil {
		stats.Duration = time.Since(start)
		return nil, stats, err
	}

	assignment := make(Assignment, len(p.variables))
	ok := s.backtrack(p, assignment, 0, &stats)
	stats.Duration = time.Since(start)
	if !ok {
		return nil, stats, ErrNoSolution
	}
	s.tracer.Solution(assignment)
	return assignment, stats, nil
}

// backtrack is one frame of the plain search. It returns true when the
// assignment has been completed; on false the assignment is exactly as
// the caller left it.
func (s *Solver) backtrack(p *Problem, assignment Assignment, depth int, stats *Stats) bool {
	v := p.selectUnassigned(assignment)
	if v == nil {
		return true
	}

	for _, value := range v.domain {
		stats.Nodes++
		if !p.IsConsistent(v.name, value, assignment) {
			continue
		}
		assignment[v.name] = value
		s.tracer.Assign(depth, v.name, value)

		if s.backtrack(p, assignment, depth+1, stats) {
			return true
		}

		delete(assignment, v.name)
		stats.Backtracks++
		s.tracer.Unassign(depth, v.name)
	}
	return false
}

// selectUnassigned returns the first variable in declaration order that
// has no entry in assignment, or nil when the assignment is complete.
// Selection is deliberately static; the engine applies no ordering
// heuristics.
func (p *Problem) selectUnassigned(assignment Assignment) *Variable {
	for _, v := range p.variables {
		if _, ok := assignment[v.name]; !ok {
			return v
		}
	}
	return nil
}
