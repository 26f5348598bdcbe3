package csp

// IsConsistent reports whether tentatively assigning value to the named
// variable keeps the partial assignment consistent.
//
// The check re-validates the whole partial assignment, not only the new
// entry's direct constraints: for every assigned variable it evaluates
// that variable's unary constraints against its value and its binary
// constraints against every neighbor that is also assigned. The first
// violation found ends the check.
//
// The tentative entry is inserted into assignment for the duration of
// the check and removed before returning on every path, so the call has
// no observable side effects. The named variable must not already be
// assigned.
func (p *Problem) IsConsistent(name string, value Value, assignment Assignment) bool {
	assignment[name] = value
	defer delete(assignment, name)

	for state, val := range assignment {
		for _, c := range p.unary[state] {
			if !c.Holds(val) {
				return false
			}
		}
		for _, c := range p.binary[state] {
			neighborVal, ok := assignment[c.Neighbor]
			if !ok {
				continue
			}
			if !c.Holds(val, neighborVal) {
				return false
			}
		}
	}
	return true
}
