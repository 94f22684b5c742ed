// Package mus implements the deletion-based MUS Shrinker (§4.6): given a
// clause set already known UNSAT under a fixed set of assumptions, it
// repeatedly re-decides the problem with one clause hypothetically removed,
// using search.Solve as an UNSAT oracle, until every surviving clause has
// been shown essential. The result is subset-minimal, never
// cardinality-minimal (§9 Open Questions).
package mus

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/corewhy/unsatexplain/internal/cnf"
	"github.com/corewhy/unsatexplain/internal/search"
)

// Verbose, when non-nil, receives one line per deletion probe plus the
// falsified trail's debug dump whenever a probe stays UNSAT, in the style
// of the teacher's package-level `verbose` debug toggle. Off (nil) by
// default; the CLI's -v flag points it at os.Stderr, and a test can point
// it at a buffer to assert on the probe trace.
var Verbose io.Writer

// Result is the outcome of a Shrink call.
type Result struct {
	Clauses      []cnf.ClauseID // subset-minimal, ascending order
	HintFallback bool           // true if the hint-seeded subset probed SAT and the full candidate set was used instead
}

// Shrink finds a subset-minimal unsatisfiable subset of candidates under
// assumptions, optionally seeded by the hint-focused subset (§4.6 Seeding).
// store resolves clauses to check which mention a hint variable; ctx is
// checked between probes so a caller can cancel a long-running shrink
// (§5 Concurrency).
func Shrink(ctx context.Context, store *cnf.Store, candidates []cnf.ClauseID, assumptions []cnf.Literal, hintVars []int) (Result, error) {
	working, hintFallback, err := seed(ctx, store, candidates, assumptions, hintVars)
	if err != nil {
		return Result{}, err
	}

	ordered := append([]cnf.ClauseID(nil), working...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	set := make(map[cnf.ClauseID]bool, len(ordered))
	for _, cid := range ordered {
		set[cid] = true
	}

	for _, c := range ordered {
		if !set[c] {
			continue // already removed by an earlier probe in this pass
		}
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		probe := withoutOne(set, c)
		res, err := search.Solve(store.WithSubset(probe), assumptions, hintVars)
		if err != nil {
			return Result{}, err
		}
		if !res.Satisfiable {
			if Verbose != nil {
				fmt.Fprintf(Verbose, "mus: dropping clause %d, %d remain UNSAT\n", c, len(probe))
				fmt.Fprintf(Verbose, "mus: conflict trail: %s\n", res.Trail.DebugString())
			}
			delete(set, c) // c is not essential: the rest alone is already UNSAT
		} else if Verbose != nil {
			fmt.Fprintf(Verbose, "mus: keeping clause %d, dropping it makes the subset SAT\n", c)
		}
	}

	return Result{Clauses: setToSortedSlice(set), HintFallback: hintFallback}, nil
}

// seed returns the starting working set and whether the hint-focused subset
// had to fall back to the full candidate set (§4.6 Seeding).
func seed(ctx context.Context, store *cnf.Store, candidates []cnf.ClauseID, assumptions []cnf.Literal, hintVars []int) ([]cnf.ClauseID, bool, error) {
	if len(hintVars) == 0 {
		return candidates, false, nil
	}

	focused := hintFocusedSubset(store, candidates, hintVars)
	if len(focused) == 0 {
		return candidates, true, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	res, err := search.Solve(store.WithSubset(focused), assumptions, hintVars)
	if err != nil {
		return nil, false, err
	}
	if !res.Satisfiable {
		return focused, false, nil
	}
	return candidates, true, nil // HintIneffective (§7): the hint subset was SAT, fall back
}

// hintFocusedSubset returns the candidate clauses that mention any variable
// in hintVars, in the order candidates lists them.
func hintFocusedSubset(store *cnf.Store, candidates []cnf.ClauseID, hintVars []int) []cnf.ClauseID {
	wanted := make(map[int]bool, len(hintVars))
	for _, hv := range hintVars {
		wanted[cnf.Literal(hv).Var()] = true
	}

	var out []cnf.ClauseID
	for _, cid := range candidates {
		for _, l := range store.Get(cid).Literals {
			if wanted[l.Var()] {
				out = append(out, cid)
				break
			}
		}
	}
	return out
}

func withoutOne(set map[cnf.ClauseID]bool, drop cnf.ClauseID) []cnf.ClauseID {
	out := make([]cnf.ClauseID, 0, len(set))
	for cid := range set {
		if cid != drop {
			out = append(out, cid)
		}
	}
	return out
}

func setToSortedSlice(set map[cnf.ClauseID]bool) []cnf.ClauseID {
	out := make([]cnf.ClauseID, 0, len(set))
	for cid := range set {
		out = append(out, cid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
