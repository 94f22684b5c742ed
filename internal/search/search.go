// Package search implements the DPLL decision procedure: unit propagation
// to fixpoint, decide-both-polarities-and-backtrack recursion, and
// hint-priority variable ordering (§4.4). There is no clause learning, no
// restarts, and no nonchronological backjumping — every backtrack unwinds
// exactly one decision, which keeps the reason graph linear in the trail
// for the Explanation Builder.
package search

import (
	"fmt"

	"github.com/corewhy/unsatexplain/internal/cnf"
	"github.com/corewhy/unsatexplain/internal/propagate"
	"github.com/corewhy/unsatexplain/internal/trail"
)

// SyntheticAssumptionConflict re-exports propagate.SyntheticAssumptionConflict
// for callers that only import search.
const SyntheticAssumptionConflict = propagate.SyntheticAssumptionConflict

// Result is the outcome of a Solve call: exactly one of Sat or Unsat is
// populated.
type Result struct {
	Satisfiable bool
	Model       map[int]bool // valid iff Satisfiable

	Conflict propagate.Conflict // valid iff !Satisfiable
	Trail    *trail.Trail       // a snapshot of the trail at the moment Conflict was found
}

// Solve runs the DPLL procedure over view under the given assumptions,
// trying hint variables first when choosing decisions (§4.4).
func Solve(view *cnf.View, assumptions []cnf.Literal, hintVars []int) (Result, error) {
	tr := trail.New(view.MaxVar())

	if res, done, err := assignAssumptions(tr, assumptions); done || err != nil {
		return res, err
	}

	if conflict, err := propagate.Propagate(view, tr); err != nil {
		return Result{}, err
	} else if conflict != nil {
		return Result{Trail: tr.Snapshot(), Conflict: *conflict}, nil
	}

	order := NewOrder(view.MaxVar(), hintVars)
	return solveRec(view, tr, order)
}

// assignAssumptions assigns every assumption in order, reporting an
// AssumptionConflict as soon as one directly contradicts an earlier one.
// done is true if an outcome (always Unsat, in that case) was already
// decided and no further search is needed.
func assignAssumptions(tr *trail.Trail, assumptions []cnf.Literal) (res Result, done bool, err error) {
	for _, a := range assumptions {
		v := a.Var()
		if cur := tr.Value(v); cur != cnf.Unknown {
			curBool, _ := cur.Bool()
			if curBool != a.IsPositive() {
				prior := tr.Entry(v).Lit()
				return Result{
					Trail: tr.Snapshot(),
					Conflict: propagate.Conflict{
						ClauseID:  SyntheticAssumptionConflict,
						Falsified: []cnf.Literal{prior, a},
					},
				}, true, nil
			}
			continue // repeated assumption, no-op
		}
		if err := tr.Assign(v, a.IsPositive(), trail.AssumptionReason(a)); err != nil {
			return Result{}, true, err
		}
	}
	return Result{}, false, nil
}

// solveRec implements spec.md §4.4 steps 2-6.
func solveRec(view *cnf.View, tr *trail.Trail, order *Order) (Result, error) {
	conflict, err := propagate.Propagate(view, tr)
	if err != nil {
		return Result{}, err
	}
	if conflict != nil {
		return Result{Trail: tr.Snapshot(), Conflict: *conflict}, nil
	}

	if tr.AllAssigned(view.MaxVar()) {
		return Result{Satisfiable: true, Model: tr.Model(view.MaxVar())}, nil
	}

	v, ok := order.Next(tr)
	if !ok {
		return Result{}, fmt.Errorf("search: no conflict but no unassigned variable left")
	}

	mark := tr.Mark()

	if err := tr.Assign(v, true, trail.DecisionReason()); err != nil {
		return Result{}, err
	}
	posResult, err := solveRec(view, tr, order)
	if err != nil || posResult.Satisfiable {
		return posResult, err
	}

	dependsOnDecision := touchesPosition(view, posResult.Trail, posResult.Conflict, v)
	releaseFrom(tr, order, mark)
	tr.Rewind(mark)
	if !dependsOnDecision {
		// The conflict reproduces under either polarity of v, since it
		// never actually traced back to the decision itself: propagate it
		// upward unchanged instead of re-deriving it via the negated
		// branch (licensed by §4.4).
		return posResult, nil
	}

	if err := tr.Assign(v, false, trail.DecisionReason()); err != nil {
		return Result{}, err
	}
	negResult, err := solveRec(view, tr, order)
	if err != nil || negResult.Satisfiable {
		return negResult, err
	}
	releaseFrom(tr, order, mark)
	tr.Rewind(mark)

	return negResult, nil
}

// releaseFrom makes every variable assigned since mark selectable again,
// before the trail entries that recorded those assignments are discarded.
func releaseFrom(tr *trail.Trail, order *Order, mark trail.Token) {
	for i := int(mark); i < tr.Depth(); i++ {
		order.Release(tr.EntryAt(i).Var)
	}
}

// touchesPosition reports whether conflict's reason chain reaches
// decisionVar. snapshot is the trail as it stood at the moment conflict was
// found (Result.Trail), which is why this is safe to call even after the
// live trail has since been rewound past that point. A synthetic
// AssumptionConflict never depends on any decision, since it is only ever
// raised before the search makes its first one.
func touchesPosition(view *cnf.View, snapshot *trail.Trail, conflict propagate.Conflict, decisionVar int) bool {
	if conflict.ClauseID == SyntheticAssumptionConflict {
		return false
	}
	touched := false
	snapshot.WalkReasons(view, conflict.Falsified, func(e trail.Entry) bool {
		if e.Var == decisionVar {
			touched = true
			return true
		}
		return false
	})
	return touched
}
