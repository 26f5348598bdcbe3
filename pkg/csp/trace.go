package csp

// Tracer observes search events. Implementations must be cheap and must
// not mutate the problem, the assignment, or any value handed to them;
// the engine calls them synchronously from inside the search loop.
//
// A tracer sees events in exactly the order the engine performs them.
// In particular, during forward checking all Prune events caused by a
// commit are emitted before the Assign event of the next variable, and
// the matching Restore events are emitted before the Unassign event of
// the commit that caused the pruning.
type Tracer interface {
	// Assign fires when a value is committed into the assignment at the
	// given recursion depth.
	Assign(depth int, name string, value Value)
	// Unassign fires when a commit is undone during backtracking.
	Unassign(depth int, name string)
	// Prune fires when forward checking removes values from an
	// unassigned neighbor's domain after committing owner.
	Prune(owner, neighbor string, removed []Value)
	// Wipeout fires when pruning emptied a neighbor's domain, forcing
	// the current branch to backtrack without recursing.
	Wipeout(owner, neighbor string)
	// Restore fires when pruned values are appended back to a neighbor's
	// domain while the commit that removed them is undone.
	Restore(owner, neighbor string, restored []Value)
	// Solution fires once when a complete consistent assignment is found.
	Solution(assignment Assignment)
}

// nopTracer is the default tracer; every callback is a no-op.
type nopTracer struct{}

func (nopTracer) Assign(int, string, Value)       {}
func (nopTracer) Unassign(int, string)            {}
func (nopTracer) Prune(string, string, []Value)   {}
func (nopTracer) Wipeout(string, string)          {}
func (nopTracer) Restore(string, string, []Value) {}
func (nopTracer) Solution(Assignment)             {}
