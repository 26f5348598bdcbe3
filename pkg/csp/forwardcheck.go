package csp

import "time"

// SolveForwardChecking searches p by backtracking with forward checking:
// after each tentative commit, values inconsistent with the committed
// value are pruned from the live domains of unassigned neighbors, so a
// dead branch is detected before recursing into it. Pruned values are
// always restored when the commit is undone, so after the call returns
// every domain holds exactly the values it held before the call, whether
// or not a solution was found.
//
// The failure contract matches Solve: ErrUnsolvable for an instance the
// builder marked infeasible (no search happens at all), ErrNoSolution
// when exhaustive search found nothing, the Validate error for a
// malformed instance. Domain wipe-out during pruning is internal: it
// backtracks the current branch exactly as a consistency failure would
// and never surfaces to the caller.
func (s *Solver) SolveForwardChecking(p *Problem) (Assignment, Stats, error) {
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
	ok := s.forwardCheck(p, assignment, 0, &stats)
	stats.Duration = time.Since(start)
	if !ok {
		return nil, stats, ErrNoSolution
	}
	s.tracer.Solution(assignment)
	return assignment, stats, nil
}

// forwardCheck is one frame of the forward-checking search. Each
// candidate commit is bracketed: prune neighbor domains, recurse unless
// a domain wiped out, then restore every pruned value on every exit
// path; on failure the commit itself is removed after the restore.
func (s *Solver) forwardCheck(p *Problem, assignment Assignment, depth int, stats *Stats) bool {
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

		pruned, wipedOut := s.prune(p, v.name, value, assignment, stats)

		solved := false
		if !wipedOut {
			solved = s.forwardCheck(p, assignment, depth+1, stats)
		}

		// Pruned values are restored on success as well: domains must
		// hold their pre-call contents when the solve returns. Only the
		// committed assignment entry survives a successful frame.
		s.restore(p, v.name, pruned)
		if solved {
			return true
		}

		delete(assignment, v.name)
		stats.Backtracks++
		s.tracer.Unassign(depth, v.name)
	}
	return false
}

// prune removes from every unassigned neighbor's live domain the values
// that cannot coexist with the just-committed (owner, value) pair, per
// the binary constraints the owner holds on that neighbor. It returns
// the ledger of removed values keyed by neighbor name, and whether some
// neighbor's domain became empty. On wipe-out pruning stops immediately;
// the ledger still records everything removed so far so the caller can
// restore it.
func (s *Solver) prune(p *Problem, owner string, value Value, assignment Assignment, stats *Stats) (map[string][]Value, bool) {
	pruned := make(map[string][]Value)

	for _, c := range p.binary[owner] {
		if _, assigned := assignment[c.Neighbor]; assigned {
			continue
		}
		neighbor := p.index[c.Neighbor]

		var removed []Value
		kept := neighbor.domain[:0]
		for _, candidate := range neighbor.domain {
			if c.Holds(value, candidate) {
				kept = append(kept, candidate)
			} else {
				removed = append(removed, candidate)
			}
		}
		neighbor.domain = kept

		if len(removed) > 0 {
			pruned[c.Neighbor] = append(pruned[c.Neighbor], removed...)
			stats.Pruned += len(removed)
			s.tracer.Prune(owner, c.Neighbor, removed)
		}
		if len(neighbor.domain) == 0 {
			s.tracer.Wipeout(owner, c.Neighbor)
			return pruned, true
		}
	}
	return pruned, false
}

// restore appends every value in the ledger back to its neighbor's live
// domain. Append suffices: predicate evaluation and membership are the
// only observable properties of a domain, so original positions need not
// be preserved, only the multiset of values.
func (s *Solver) restore(p *Problem, owner string, pruned map[string][]Value) {
	for name, values := range pruned {
		neighbor := p.index[name]
		neighbor.domain = append(neighbor.domain, values...)
		s.tracer.Restore(owner, name, values)
	}
}
