// Package driver implements the Core Driver (§4.7): it runs the DPLL Search
// once over the full CNF and, on UNSAT, builds the causal Explanation and
// runs the MUS Shrinker, seeded from the explanation's involved clauses
// rather than the whole store. It is re-exported at the module root as
// package unsatexplain.
package driver

import (
	"context"
	"fmt"

	"github.com/corewhy/unsatexplain/internal/cnf"
	"github.com/corewhy/unsatexplain/internal/explain"
	"github.com/corewhy/unsatexplain/internal/mus"
	"github.com/corewhy/unsatexplain/internal/search"
)

// Outcome tags which of Sat/UnsatWithCore/Error a Result carries. This
// realizes §9's "dynamic list of anything" design note as a small Go sum
// type rather than a loosely typed map.
type Outcome int

const (
	Sat Outcome = iota
	UnsatWithCore
	Error
)

func (o Outcome) String() string {
	switch o {
	case Sat:
		return "sat"
	case UnsatWithCore:
		return "unsat_with_core"
	default:
		return "error"
	}
}

// Result is the sum type the Core Driver returns: exactly one of Model
// (Sat), Explanation+MUS (UnsatWithCore), or Err (Error) is meaningful,
// selected by Outcome.
type Result struct {
	Outcome Outcome

	Model map[int]bool // valid iff Outcome == Sat

	Explanation  explain.Explanation // valid iff Outcome == UnsatWithCore
	MUSClauses   []cnf.ClauseID      // valid iff Outcome == UnsatWithCore, ascending order
	HintFallback bool                // valid iff Outcome == UnsatWithCore
	HintsUsed    []int               // echoed as received, valid iff Outcome == UnsatWithCore

	Err error // valid iff Outcome == Error
}

// Explain orchestrates spec.md §4.7: Search once over the full store, then
// on UNSAT build the Explanation and shrink a MUS seeded from the
// explanation's involved clauses, falling back to the full store if that
// seed is not UNSAT on its own under the assumptions. The seed holds only
// clauses, so this can happen only when the conflict's cause chain runs
// through a search decision (reported as a pseudo-assumption) rather than
// ending at the caller's assumptions alone.
func Explain(ctx context.Context, store *cnf.Store, assumptions []cnf.Literal, hintVars []int) Result {
	res, err := search.Solve(store.Full(), assumptions, hintVars)
	if err != nil {
		return Result{Outcome: Error, Err: fmt.Errorf("driver: search: %w", err)}
	}

	if res.Satisfiable {
		return Result{Outcome: Sat, Model: res.Model}
	}

	exp, err := explain.Build(res.Conflict, res.Trail, store)
	if err != nil {
		return Result{Outcome: Error, Err: fmt.Errorf("driver: explain: %w", err)}
	}

	seed := candidateSeed(exp)
	if seedUnsat, err := isUnsat(store, seed, assumptions, hintVars); err != nil {
		return Result{Outcome: Error, Err: fmt.Errorf("driver: seed probe: %w", err)}
	} else if !seedUnsat {
		seed = store.AllCIDs()
	}

	shrunk, err := mus.Shrink(ctx, store, seed, assumptions, hintVars)
	if err != nil {
		return Result{Outcome: Error, Err: fmt.Errorf("driver: shrink: %w", err)}
	}

	return Result{
		Outcome:      UnsatWithCore,
		Explanation:  exp,
		MUSClauses:   shrunk.Clauses,
		HintFallback: shrunk.HintFallback,
		HintsUsed:    hintVars,
	}
}

// candidateSeed derives the Shrinker's starting candidate set as the union
// of the involved rules' clause ids plus the conflict clause (§4.7), deduped
// and in first-seen order (conflict clause first, not sorted). The conflict clause is always InvolvedRules[0] already (§4.5),
// so in practice this is just those clause ids; the explicit union guards
// against that invariant changing without this call site silently dropping
// the conflict clause.
func candidateSeed(exp explain.Explanation) []cnf.ClauseID {
	seen := make(map[cnf.ClauseID]bool, len(exp.InvolvedRules)+1)
	var out []cnf.ClauseID
	add := func(cid cnf.ClauseID) {
		if !seen[cid] {
			seen[cid] = true
			out = append(out, cid)
		}
	}
	if exp.ConflictClauseID >= 0 {
		add(exp.ConflictClauseID)
	}
	for _, r := range exp.InvolvedRules {
		add(r.ClauseID)
	}
	return out
}

func isUnsat(store *cnf.Store, cids []cnf.ClauseID, assumptions []cnf.Literal, hintVars []int) (bool, error) {
	if len(cids) == 0 {
		// A synthetic assumption conflict: no real clause is involved, the
		// empty candidate set is already UNSAT (the clash is in the
		// assumptions themselves, unaffected by which clauses are present).
		return true, nil
	}
	res, err := search.Solve(store.WithSubset(cids), assumptions, hintVars)
	if err != nil {
		return false, err
	}
	return !res.Satisfiable, nil
}
