// Package propagate implements unit propagation to fixpoint over a clause
// view and an assignment trail (§4.3). It is a full re-scan sweep rather
// than a watched-literal scheme: spec.md's Non-goals explicitly rule out
// needing watched literals, since peak performance is out of scope here.
package propagate

import (
	"github.com/corewhy/unsatexplain/internal/cnf"
	"github.com/corewhy/unsatexplain/internal/trail"
)

// Conflict records a clause that is entirely falsified under the trail at
// the moment it was detected.
type Conflict struct {
	ClauseID  cnf.ClauseID
	Falsified []cnf.Literal
}

// SyntheticAssumptionConflict is the ClauseID used for a Conflict
// manufactured directly from two contradicting assumption literals, with no
// real clause to blame (spec.md §7 AssumptionConflict). The DPLL Search
// produces it before propagation ever runs; the Explanation Builder
// recognizes it to skip looking up a clause that was never stored.
const SyntheticAssumptionConflict cnf.ClauseID = -1

// Propagate scans view to a fixpoint, assigning every clause that becomes
// unit and reporting the first clause found falsified. Scan order is
// deterministic — ascending ClauseID, each clause's literals in their
// original order — so that the conflict chosen is reproducible across runs
// and across MUS probes (§4.3, P6).
func Propagate(view *cnf.View, tr *trail.Trail) (conflict *Conflict, err error) {
	cids := view.CIDs()

	for {
		changed := false

		for _, cid := range cids {
			c := view.Get(cid)

			state, unitLit := classify(c, tr)
			switch state {
			case falsified:
				return &Conflict{ClauseID: cid, Falsified: falsifiedLiterals(c)}, nil
			case unit:
				if err := tr.Assign(unitLit.Var(), unitLit.IsPositive(), trail.PropagatedReason(cid)); err != nil {
					return nil, err
				}
				changed = true
			}
		}

		if !changed {
			return nil, nil
		}
	}
}

type clauseState int

const (
	pending clauseState = iota
	satisfied
	unit
	falsified
)

// classify returns the clause's current state under the trail and, if the
// state is unit, the single unassigned literal to propagate. An empty
// clause is always falsified (every literal is false vacuously).
func classify(c *cnf.Clause, tr *trail.Trail) (clauseState, cnf.Literal) {
	unassignedCount := 0
	var unassigned cnf.Literal

	for _, l := range c.Literals {
		switch tr.LitValue(l) {
		case cnf.True:
			return satisfied, 0
		case cnf.Unknown:
			unassignedCount++
			unassigned = l
		}
	}

	switch unassignedCount {
	case 0:
		return falsified, 0
	case 1:
		return unit, unassigned
	default:
		return pending, 0
	}
}

// falsifiedLiterals returns the literals of c in their original order; all
// are false under tr by construction since classify found the clause
// falsified.
func falsifiedLiterals(c *cnf.Clause) []cnf.Literal {
	out := make([]cnf.Literal, len(c.Literals))
	copy(out, c.Literals)
	return out
}
