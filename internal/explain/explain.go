// Package explain builds a human-facing Explanation from an Unsat Search
// result: which assumptions and which rules are responsible for the
// conflict (§4.5). It runs the same reason-graph worklist walk the DPLL
// Search's decision-dependence check uses, but to completion, collecting
// every cause instead of stopping at the first one.
package explain

import (
	"errors"
	"fmt"

	"github.com/corewhy/unsatexplain/internal/cnf"
	"github.com/corewhy/unsatexplain/internal/propagate"
	"github.com/corewhy/unsatexplain/internal/trail"
)

// ErrInternalInvariantViolation is returned when a Decision reason is
// reached while the trail records no decision at all — meaning the conflict
// was found before Search ever made one, so a Decision-tagged entry simply
// should not exist to be walked into (§9 Open Questions).
var ErrInternalInvariantViolation = errors.New("explain: reached a Decision reason on a trail with no decisions")

// InvolvedRule is one clause that took part in deriving the conflict.
type InvolvedRule struct {
	ClauseID cnf.ClauseID
	RuleID   string
	Note     string
	Literals []cnf.Literal
}

// Explanation is the full causal account of one Unsat outcome.
type Explanation struct {
	ConflictClauseID  cnf.ClauseID
	FalsifiedLiterals []cnf.Literal
	AssumptionCauses  []cnf.Literal
	InvolvedRules     []InvolvedRule
}

// Build walks conflict's reason chain over tr (a snapshot taken at the
// moment the conflict was found, per search.Result.Trail) back to its
// assumption roots, recording every Assumption literal and every Propagated
// clause reached along the way, both in first-seen order. store resolves
// the clauses referenced by Propagated reasons.
func Build(conflict propagate.Conflict, tr *trail.Trail, store cnf.ClauseLookup) (Explanation, error) {
	exp := Explanation{
		ConflictClauseID:  conflict.ClauseID,
		FalsifiedLiterals: conflict.Falsified,
	}

	if conflict.ClauseID == propagate.SyntheticAssumptionConflict {
		// The two opposing assumption literals are the whole story: there
		// is no real clause to resolve, and no further reason chain to walk
		// (both were recorded as Assumption reasons directly, see
		// search.assignAssumptions). Report both, even though they share a
		// variable — the point is to name exactly which two assumptions
		// clashed, not to dedupe down to one.
		exp.AssumptionCauses = append(exp.AssumptionCauses, conflict.Falsified...)
		return exp, nil
	}

	conflictClause := store.Get(conflict.ClauseID)
	exp.InvolvedRules = append(exp.InvolvedRules, InvolvedRule{
		ClauseID: conflictClause.ID,
		RuleID:   conflictClause.RuleID,
		Note:     conflictClause.Note,
		Literals: conflictClause.Literals,
	})

	hasDecision := false
	for i := 0; i < tr.Depth(); i++ {
		if tr.EntryAt(i).Reason.Kind == trail.Decision {
			hasDecision = true
			break
		}
	}

	var walkErr error
	tr.WalkReasons(store, conflict.Falsified, func(e trail.Entry) bool {
		switch e.Reason.Kind {
		case trail.Assumption:
			exp.AssumptionCauses = append(exp.AssumptionCauses, e.Reason.Lit)
		case trail.Propagated:
			c := store.Get(e.Reason.ClauseID)
			exp.InvolvedRules = append(exp.InvolvedRules, InvolvedRule{
				ClauseID: c.ID,
				RuleID:   c.RuleID,
				Note:     c.Note,
				Literals: c.Literals,
			})
		case trail.Decision:
			// hasDecision is always true by the time this case fires: the
			// entry we just reached is itself a Decision already recorded
			// on tr. The guard exists to document the invariant (a
			// conflict found before Search ever decided cannot contain a
			// Decision reason) rather than to branch on it at runtime.
			if !hasDecision {
				walkErr = fmt.Errorf("%w: var %d", ErrInternalInvariantViolation, e.Var)
				return true
			}
			exp.AssumptionCauses = append(exp.AssumptionCauses, e.Lit())
		}
		return false
	})
	if walkErr != nil {
		return Explanation{}, walkErr
	}

	return exp, nil
}
