// Package csp implements a generic finite-domain constraint satisfaction
// engine: named variables with ordered candidate domains, unary and binary
// constraint predicates, and depth-first backtracking search with an
// optional forward-checking extension.
//
// Candidate values are opaque to the engine. The engine never inspects or
// compares a Value; only the constraint predicates supplied by a problem
// builder know a value's concrete shape. This lets the same engine solve
// problems whose values are simple coordinates (N-Queens) and problems
// whose values are structured records (resource/time-slot scheduling).
//
// The engine is single-threaded and purely synchronous. The only mutable
// state shared across recursive calls is each variable's live domain,
// which is mutated exclusively inside the forward-checking solver's
// commit/undo bracket: every value pruned during a tentative assignment
// is restored before the frame returns, on success and failure alike.
// After any solve call every domain holds exactly the values it held
// before the call.
//
// Search is exhaustive and deterministic: variables are tried in declared
// order, values in domain order, and the first complete consistent
// assignment found is returned. A problem with no consistent complete
// assignment yields ErrNoSolution; a problem marked structurally
// unsolvable by its builder yields ErrUnsolvable without any search.
package csp
